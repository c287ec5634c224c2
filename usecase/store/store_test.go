package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/repository/memory"
)

func newTestStore() *UseCase {
	return New(memory.NewTaskRepository(), nil, nil)
}

func TestCreateTaskDefaults(t *testing.T) {
	uc := newTestStore()

	created, err := uc.CreateTask(context.Background(), &domain.Task{
		UserID:   "u1",
		Title:    "Water plants",
		Category: domain.CategoryLife,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.PriorityMedium, created.Priority)
	assert.Equal(t, domain.CreatedByUser, created.CreatedBy)
	assert.False(t, created.Completed)
}

func TestCreateTaskRejectsInvalid(t *testing.T) {
	uc := newTestStore()

	_, err := uc.CreateTask(context.Background(), &domain.Task{
		UserID:   "u1",
		Title:    "Sell bike",
		Category: domain.CategoryMarketplace,
		Platform: domain.PlatformInstagram,
		Post:     &domain.PostContent{Text: "for sale"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTask)

	_, err = uc.CreateTask(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestListLaneRouting(t *testing.T) {
	uc := newTestStore()
	ctx := context.Background()

	mustCreate := func(title string, category domain.Category, extra func(*domain.Task)) {
		task := &domain.Task{UserID: "u1", Title: title, Category: category}
		if extra != nil {
			extra(task)
		}
		_, err := uc.CreateTask(ctx, task)
		require.NoError(t, err)
	}

	mustCreate("Report", domain.CategoryWork, nil)
	mustCreate("Post draft", domain.CategorySocial, func(task *domain.Task) {
		task.Platform = domain.PlatformInstagram
		task.Post = &domain.PostContent{Text: "hello"}
	})
	mustCreate("Sell desk", domain.CategoryMarketplace, func(task *domain.Task) {
		task.Listing = &domain.MarketplaceItem{Title: "Desk", Price: 80}
	})
	mustCreate("Pitch deck", domain.CategoryBusiness, nil)

	general, err := uc.ListLane(ctx, domain.LaneGeneral, "u1")
	require.NoError(t, err)
	require.Len(t, general, 1)
	assert.Equal(t, "Report", general[0].Title)

	social, err := uc.ListLane(ctx, domain.LaneSocial, "u1")
	require.NoError(t, err)
	require.Len(t, social, 2)
	assert.Equal(t, "Post draft", social[0].Title)
	assert.Equal(t, "Pitch deck", social[1].Title)

	marketplace, err := uc.ListLane(ctx, domain.LaneMarketplace, "u1")
	require.NoError(t, err)
	require.Len(t, marketplace, 1)
	assert.Equal(t, "Sell desk", marketplace[0].Title)
}

func TestUpdateTaskValidatesBeforeCommit(t *testing.T) {
	uc := newTestStore()
	ctx := context.Background()

	created, err := uc.CreateTask(ctx, &domain.Task{
		UserID:   "u1",
		Title:    "Post draft",
		Category: domain.CategorySocial,
		Platform: domain.PlatformTwitter,
		Post:     &domain.PostContent{Text: "hi"},
	})
	require.NoError(t, err)

	// Moving a post-carrying task to a general category must fail and leave
	// the stored task untouched.
	category := domain.CategoryWork
	_, err = uc.UpdateTask(ctx, created.ID, TaskPatch{Category: &category})
	assert.ErrorIs(t, err, domain.ErrInvalidTask)

	current, err := uc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CategorySocial, current.Category)
	require.NotNil(t, current.Post)

	// Clearing the post first makes the same move legal.
	_, err = uc.UpdateTask(ctx, created.ID, TaskPatch{Category: &category, ClearPost: true})
	require.NoError(t, err)

	current, err = uc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryWork, current.Category)
	assert.Nil(t, current.Post)
}

func TestUpdateTaskPatchFields(t *testing.T) {
	uc := newTestStore()
	ctx := context.Background()

	created, err := uc.CreateTask(ctx, &domain.Task{
		UserID:   "u1",
		Title:    "Initial",
		Category: domain.CategoryPersonal,
	})
	require.NoError(t, err)

	title := "Renamed"
	priority := domain.PriorityHigh
	due := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	updated, err := uc.UpdateTask(ctx, created.ID, TaskPatch{
		Title:    &title,
		Priority: &priority,
		DueDate:  &due,
		Tags:     []string{"home"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, domain.PriorityHigh, updated.Priority)
	require.NotNil(t, updated.DueDate)
	assert.True(t, updated.DueDate.Equal(due))
	assert.Equal(t, []string{"home"}, updated.Tags)
}

func TestSetCompletedIdempotent(t *testing.T) {
	uc := newTestStore()
	ctx := context.Background()

	created, err := uc.CreateTask(ctx, &domain.Task{
		UserID:   "u1",
		Title:    "Call dentist",
		Category: domain.CategoryPersonal,
	})
	require.NoError(t, err)

	done, err := uc.SetCompleted(ctx, created.ID, true)
	require.NoError(t, err)
	assert.True(t, done.Completed)

	again, err := uc.SetCompleted(ctx, created.ID, true)
	require.NoError(t, err)
	assert.True(t, again.Completed)
	assert.Equal(t, done.UpdatedAt, again.UpdatedAt, "repeat must be a no-op")
}

func TestToggleCompletion(t *testing.T) {
	uc := newTestStore()
	ctx := context.Background()

	created, err := uc.CreateTask(ctx, &domain.Task{
		UserID:   "u1",
		Title:    "Gym",
		Category: domain.CategoryLife,
	})
	require.NoError(t, err)

	toggled, err := uc.ToggleCompletion(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = uc.ToggleCompletion(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
}

func TestDeleteTask(t *testing.T) {
	uc := newTestStore()
	ctx := context.Background()

	created, err := uc.CreateTask(ctx, &domain.Task{
		UserID:   "u1",
		Title:    "Temp",
		Category: domain.CategoryWork,
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteTask(ctx, created.ID))
	assert.ErrorIs(t, uc.DeleteTask(ctx, created.ID), domain.ErrTaskNotFound)

	_, err = uc.GetTask(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
