package suggest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/repository"
	"github.com/junohq/backend/repository/memory"
	"github.com/junohq/backend/usecase/store"
)

type fixture struct {
	uc    *UseCase
	tasks *store.UseCase
	users repository.UserRepository
	log   repository.UpdateLog
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tasks := store.New(memory.NewTaskRepository(), nil, nil)
	users := memory.NewUserRepository()
	log := memory.NewUpdateLog(50)
	return &fixture{
		uc:    New(tasks, users, log, nil, 20),
		tasks: tasks,
		users: users,
		log:   log,
	}
}

func signal(title string, confidence int, urgency *time.Time) domain.Signal {
	return domain.Signal{
		Type:       domain.SignalPendingEmail,
		Title:      title,
		Confidence: confidence,
		Urgency:    urgency,
	}
}

func TestGenerateRanking(t *testing.T) {
	f := newFixture(t)
	soon := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	later := soon.Add(48 * time.Hour)

	out, err := f.uc.Generate(context.Background(), "u1", []domain.Signal{
		{Type: domain.SignalStaleDocument, Title: "low", Confidence: 40},
		signal("high-later", 90, &later),
		signal("high-soon", 90, &soon),
		signal("high-no-urgency", 90, nil),
		{Title: ""},
	})
	require.NoError(t, err)
	require.Len(t, out, 4, "empty titles are skipped")

	assert.Equal(t, "high-soon", out[0].Title)
	assert.Equal(t, "high-later", out[1].Title)
	assert.Equal(t, "high-no-urgency", out[2].Title, "missing urgency sorts after dated ties")
	assert.Equal(t, "low", out[3].Title)
}

func TestGenerateDefaultsAndReasoning(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Generate(context.Background(), "u1", []domain.Signal{
		{Type: domain.SignalUpcomingMeeting, Title: "Prep board meeting", Confidence: 150},
		{Type: "unknown_signal", Title: "Something", Confidence: -5},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, 100, out[0].Confidence)
	assert.Equal(t, reasonings[domain.SignalUpcomingMeeting], out[0].Reasoning)
	assert.Equal(t, domain.PriorityMedium, out[0].Priority)
	assert.Equal(t, domain.CategoryPersonal, out[0].Category)
	assert.Equal(t, domain.DispositionPending, out[0].Disposition)

	assert.Equal(t, 0, out[1].Confidence)
	assert.Equal(t, defaultReasoning, out[1].Reasoning)
}

func TestGenerateCapsOutput(t *testing.T) {
	tasks := store.New(memory.NewTaskRepository(), nil, nil)
	uc := New(tasks, memory.NewUserRepository(), memory.NewUpdateLog(50), nil, 3)

	signals := make([]domain.Signal, 10)
	for i := range signals {
		signals[i] = signal("sig", 50, nil)
	}
	out, err := uc.Generate(context.Background(), "u1", signals)
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestGenerateReplacesPendingSet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.uc.Generate(ctx, "u1", []domain.Signal{signal("old", 50, nil)})
	require.NoError(t, err)
	require.Len(t, first, 1)

	_, err = f.uc.Generate(ctx, "u1", []domain.Signal{signal("new", 60, nil)})
	require.NoError(t, err)

	pending := f.uc.Pending(ctx, "u1")
	require.Len(t, pending, 1)
	assert.Equal(t, "new", pending[0].Title)

	_, err = f.uc.Accept(ctx, first[0].ID)
	assert.ErrorIs(t, err, domain.ErrSuggestionNotFound, "replaced suggestions are gone")
}

func TestAcceptActivatesTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	due := time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC)

	out, err := f.uc.Generate(ctx, "u1", []domain.Signal{{
		Type:          domain.SignalUpcomingMeeting,
		Title:         "Prep client call",
		Description:   "review the deck",
		Priority:      domain.PriorityHigh,
		Category:      domain.CategoryWork,
		Confidence:    80,
		Urgency:       &due,
		EstimatedTime: "30 min",
	}})
	require.NoError(t, err)
	require.Len(t, out, 1)

	task, err := f.uc.Accept(ctx, out[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Prep client call", task.Title)
	assert.Equal(t, domain.CreatedByAgent, task.CreatedBy)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	require.NotNil(t, task.DueDate)
	assert.True(t, task.DueDate.Equal(due))

	board, err := f.tasks.ListLane(ctx, domain.LaneGeneral, "u1")
	require.NoError(t, err)
	require.Len(t, board, 1)

	assert.Empty(t, f.uc.Pending(ctx, "u1"))
}

func TestDispositionsAreExclusive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.uc.Generate(ctx, "u1", []domain.Signal{signal("a", 50, nil), signal("b", 40, nil)})
	require.NoError(t, err)
	require.Len(t, out, 2)

	_, err = f.uc.Accept(ctx, out[0].ID)
	require.NoError(t, err)
	_, err = f.uc.Accept(ctx, out[0].ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
	assert.ErrorIs(t, f.uc.Snooze(ctx, out[0].ID), domain.ErrAlreadyResolved)

	require.NoError(t, f.uc.Snooze(ctx, out[1].ID))
	_, err = f.uc.Accept(ctx, out[1].ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyResolved)

	_, err = f.uc.Accept(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSuggestionNotFound)
}

func TestConcurrentAcceptSingleWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.uc.Generate(ctx, "u1", []domain.Signal{signal("race", 70, nil)})
	require.NoError(t, err)
	require.Len(t, out, 1)

	const workers = 16
	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Accept(ctx, out[0].ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case domain.IsDomainError(err, domain.ErrCodeAlreadyResolved):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, workers-1, conflicts)

	board, err := f.tasks.ListLane(ctx, domain.LaneGeneral, "u1")
	require.NoError(t, err)
	assert.Len(t, board, 1, "exactly one task activated")
}

func TestDelegateAnnouncesToClusters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.users.Upsert(ctx, &domain.User{
		ID:        "u1",
		FirstName: "Maria",
		LastName:  "Santos",
		Clusters:  []string{"fam-1", "fam-2"},
	}))

	out, err := f.uc.Generate(ctx, "u1", []domain.Signal{signal("Book flights", 60, nil)})
	require.NoError(t, err)
	require.Len(t, out, 1)

	record, err := f.uc.Delegate(ctx, out[0].ID)
	require.NoError(t, err)
	assert.Equal(t, out[0].ID, record.SuggestionID)
	assert.Equal(t, "Book flights", record.Title)

	for _, clusterID := range []string{"fam-1", "fam-2"} {
		updates, err := f.log.Recent(ctx, clusterID, 10)
		require.NoError(t, err)
		require.Len(t, updates, 1)
		assert.Contains(t, updates[0].Message, "Maria delegated")
	}

	_, err = f.uc.Delegate(ctx, out[0].ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
}
