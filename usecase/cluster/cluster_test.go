package cluster

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/repository"
	"github.com/junohq/backend/repository/memory"
)

type fixture struct {
	uc     *UseCase
	users  repository.UserRepository
	tasks  repository.TaskRepository
	events repository.CalendarEventRepository
	log    repository.UpdateLog
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	users := memory.NewUserRepository()
	tasks := memory.NewTaskRepository()
	events := memory.NewCalendarEventRepository()
	log := memory.NewUpdateLog(50)
	return &fixture{
		uc:     New(memory.NewClusterRepository(), users, tasks, events, log, nil, 50),
		users:  users,
		tasks:  tasks,
		events: events,
		log:    log,
	}
}

func (f *fixture) addUser(t *testing.T, id, firstName, lastName string) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Privacy:   domain.DefaultPrivacySettings(),
	}
	require.NoError(t, f.users.Upsert(context.Background(), user))
	return user
}

func (f *fixture) createAndJoin(t *testing.T, name, lastName string, userIDs ...string) *domain.Cluster {
	t.Helper()
	cluster, err := f.uc.CreateCluster(context.Background(), name, lastName)
	require.NoError(t, err)
	for _, id := range userIDs {
		require.NoError(t, f.uc.Join(context.Background(), cluster.ID, id))
	}
	return cluster
}

func TestJoinRequiresMatchingLastName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addUser(t, "u1", "Maria", "Santos")
	f.addUser(t, "u2", "Jan", "Kowalski")
	cluster := f.createAndJoin(t, "Santos Family", "Santos")

	require.NoError(t, f.uc.Join(ctx, cluster.ID, "u1"))
	err := f.uc.Join(ctx, cluster.ID, "u2")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))

	// Joining twice is a no-op.
	require.NoError(t, f.uc.Join(ctx, cluster.ID, "u1"))

	user, err := f.users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{cluster.ID}, user.Clusters)
}

func TestViewRequiresMembership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addUser(t, "u1", "Maria", "Santos")
	f.addUser(t, "u2", "Ana", "Santos")
	cluster := f.createAndJoin(t, "Santos Family", "Santos", "u1")

	// A matching last name alone is not enough; the viewer must have joined.
	_, err := f.uc.View(ctx, cluster.ID, "u2")
	assert.ErrorIs(t, err, domain.ErrClusterNotFound)

	view, err := f.uc.View(ctx, cluster.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, cluster.ID, view.ClusterID)
	require.Len(t, view.Members, 1)
}

func TestViewAppliesPrivacy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addUser(t, "u1", "Maria", "Santos")
	hidden := f.addUser(t, "u2", "Ana", "Santos")
	hidden.Privacy.ShareTasksWithClusters = false
	hidden.Privacy.ShareActivityStatus = false
	require.NoError(t, f.users.Upsert(ctx, hidden))

	cluster := f.createAndJoin(t, "Santos Family", "Santos", "u1", "u2")

	openTask, err := f.tasks.Create(ctx, &domain.Task{UserID: "u1", Title: "Groceries", Category: domain.CategoryLife})
	require.NoError(t, err)
	hiddenTask, err := f.tasks.Create(ctx, &domain.Task{UserID: "u2", Title: "Secret errand", Category: domain.CategoryLife})
	require.NoError(t, err)

	require.NoError(t, f.uc.ShareTask(ctx, cluster.ID, openTask.ID))
	require.NoError(t, f.uc.ShareTask(ctx, cluster.ID, hiddenTask.ID))

	view, err := f.uc.View(ctx, cluster.ID, "u1")
	require.NoError(t, err)
	require.Len(t, view.Members, 2)

	byID := map[string]domain.MemberView{}
	for _, m := range view.Members {
		byID[m.UserID] = m
	}
	assert.Len(t, byID["u1"].Tasks, 1)
	assert.True(t, byID["u1"].ActivityShared)
	assert.Empty(t, byID["u2"].Tasks, "tasks hidden when sharing is off")
	assert.False(t, byID["u2"].ActivityShared)

	// Calendar is off by default for everyone.
	_, err = f.events.Create(ctx, &domain.CalendarEvent{UserID: "u1", Title: "Dinner"})
	require.NoError(t, err)
	view, err = f.uc.View(ctx, cluster.ID, "u1")
	require.NoError(t, err)
	for _, m := range view.Members {
		assert.Empty(t, m.Events)
	}

	// Shared list re-checks the owner's toggle too.
	require.Len(t, view.SharedTasks, 1)
	assert.Equal(t, "Groceries", view.SharedTasks[0].Title)
}

func TestViewReportsStaleMembers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addUser(t, "u1", "Maria", "Santos")
	renamed := f.addUser(t, "u2", "Ana", "Santos")
	cluster := f.createAndJoin(t, "Santos Family", "Santos", "u1", "u2")

	renamed.LastName = "Ferreira"
	require.NoError(t, f.users.Upsert(ctx, renamed))

	view, err := f.uc.View(ctx, cluster.ID, "u1")
	require.NoError(t, err)
	require.Len(t, view.Members, 1)
	assert.Equal(t, "u1", view.Members[0].UserID)
	require.Len(t, view.Warnings, 1)
	assert.Contains(t, view.Warnings[0], "stale membership")
}

func TestShareTaskRequiresMemberOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addUser(t, "u1", "Maria", "Santos")
	f.addUser(t, "u2", "Jan", "Kowalski")
	cluster := f.createAndJoin(t, "Santos Family", "Santos", "u1")

	outsiderTask, err := f.tasks.Create(ctx, &domain.Task{UserID: "u2", Title: "Not yours", Category: domain.CategoryWork})
	require.NoError(t, err)

	err = f.uc.ShareTask(ctx, cluster.ID, outsiderTask.ID)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))

	memberTask, err := f.tasks.Create(ctx, &domain.Task{UserID: "u1", Title: "Mine", Category: domain.CategoryWork})
	require.NoError(t, err)
	require.NoError(t, f.uc.ShareTask(ctx, cluster.ID, memberTask.ID))
	// Sharing again is a no-op.
	require.NoError(t, f.uc.ShareTask(ctx, cluster.ID, memberTask.ID))
}

func TestViewUpdateLogNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addUser(t, "u1", "Maria", "Santos")
	cluster := f.createAndJoin(t, "Santos Family", "Santos", "u1")

	for i := 0; i < 60; i++ {
		task, err := f.tasks.Create(ctx, &domain.Task{
			UserID:   "u1",
			Title:    fmt.Sprintf("task-%d", i),
			Category: domain.CategoryWork,
		})
		require.NoError(t, err)
		require.NoError(t, f.uc.ShareTask(ctx, cluster.ID, task.ID))
	}

	view, err := f.uc.View(ctx, cluster.ID, "u1")
	require.NoError(t, err)
	require.Len(t, view.RecentUpdates, 50, "log is bounded")
	assert.Contains(t, view.RecentUpdates[0].Message, "task-59", "newest entry first")
}
