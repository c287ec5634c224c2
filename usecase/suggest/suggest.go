package suggest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/repository"
	"github.com/junohq/backend/usecase/store"
)

// reasonings maps each signal type to its fixed explanation template. The
// text is deterministic so ranked output is reproducible.
var reasonings = map[domain.SignalType]string{
	domain.SignalPendingEmail:      "Based on your email patterns, you typically respond within 2 hours",
	domain.SignalUpcomingMeeting:   "The meeting is on your calendar and preparation usually takes about this long",
	domain.SignalStaleDocument:     "You typically update docs weekly, and this one has gone longer than that",
	domain.SignalUnansweredMessage: "Pending messages older than a day tend to need a nudge",
	domain.SignalListingInterest:   "Buyers who reach out expect an answer the same day",
	domain.SignalPostDraft:         "A drafted post performs best when published on schedule",
}

const defaultReasoning = "This matches a recurring pattern in your activity"

// UseCase is the suggestion generator. It owns the pending set; dispositions
// are applied exactly once per suggestion id.
type UseCase struct {
	mu      sync.Mutex
	pending map[string]*domain.Suggestion
	order   []string

	tasks  *store.UseCase
	users  repository.UserRepository
	log    repository.UpdateLog
	logger *zap.Logger
	limit  int
}

func New(tasks *store.UseCase, users repository.UserRepository, log repository.UpdateLog, logger *zap.Logger, limit int) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limit <= 0 {
		limit = 20
	}
	return &UseCase{
		pending: make(map[string]*domain.Suggestion),
		tasks:   tasks,
		users:   users,
		log:     log,
		logger:  logger,
		limit:   limit,
	}
}

// Generate turns a pool of signals into a ranked suggestion list and replaces
// the user's pending set with it. Ranking is confidence descending, ties
// broken by earliest urgency, then by insertion order.
func (uc *UseCase) Generate(ctx context.Context, userID string, signals []domain.Signal) ([]domain.Suggestion, error) {
	if userID == "" {
		return nil, domain.ErrInvalidPayload
	}

	now := time.Now().UTC()
	suggestions := make([]*domain.Suggestion, 0, len(signals))
	for _, signal := range signals {
		if signal.Title == "" {
			continue
		}
		s := &domain.Suggestion{
			ID:            uuid.NewString(),
			UserID:        userID,
			Title:         signal.Title,
			Description:   signal.Description,
			Priority:      signal.Priority,
			Category:      signal.Category,
			EstimatedTime: signal.EstimatedTime,
			Confidence:    clampConfidence(signal.Confidence),
			Reasoning:     reasoningFor(signal.Type),
			Urgency:       signal.Urgency,
			Disposition:   domain.DispositionPending,
			CreatedAt:     now,
		}
		if s.Priority == "" {
			s.Priority = domain.PriorityMedium
		}
		if s.Category == "" {
			s.Category = domain.CategoryPersonal
		}
		suggestions = append(suggestions, s)
	}

	rank(suggestions)
	if len(suggestions) > uc.limit {
		suggestions = suggestions[:uc.limit]
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.dropPendingLocked(userID)
	out := make([]domain.Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		uc.pending[s.ID] = s
		uc.order = append(uc.order, s.ID)
		out = append(out, *s)
	}

	uc.logger.Info("suggestions generated",
		zap.String("user_id", userID),
		zap.Int("count", len(out)))
	return out, nil
}

// Pending returns the user's unresolved suggestions in ranked order.
func (uc *UseCase) Pending(ctx context.Context, userID string) []domain.Suggestion {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var out []domain.Suggestion
	for _, id := range uc.order {
		s, ok := uc.pending[id]
		if !ok || s.UserID != userID || s.Resolved() {
			continue
		}
		out = append(out, *s)
	}
	return out
}

// Accept resolves the suggestion and activates the underlying task on the
// user's board. The disposition and the task write happen under one lock so
// concurrent accepts of the same id see exactly one success.
func (uc *UseCase) Accept(ctx context.Context, id string) (*domain.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.takeLocked(id)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		UserID:        s.UserID,
		Title:         s.Title,
		Description:   s.Description,
		Priority:      s.Priority,
		Category:      s.Category,
		EstimatedTime: s.EstimatedTime,
		DueDate:       s.Urgency,
		CreatedBy:     domain.CreatedByAgent,
	}
	created, err := uc.tasks.CreateTask(ctx, task)
	if err != nil {
		return nil, err
	}

	s.Disposition = domain.DispositionAccepted
	uc.logger.Info("suggestion accepted", zap.String("suggestion_id", id), zap.String("task_id", created.ID))
	return created, nil
}

// Snooze resolves the suggestion without touching any task. Re-surfacing is
// an external scheduler's concern.
func (uc *UseCase) Snooze(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.takeLocked(id)
	if err != nil {
		return err
	}
	s.Disposition = domain.DispositionSnoozed
	uc.logger.Info("suggestion snoozed", zap.String("suggestion_id", id))
	return nil
}

// Delegate resolves the suggestion and emits a delegation record. The record
// also lands in the activity log of every cluster the owner belongs to;
// resolving the target member stays external.
func (uc *UseCase) Delegate(ctx context.Context, id string) (*domain.Delegation, error) {
	uc.mu.Lock()
	s, err := uc.takeLocked(id)
	if err != nil {
		uc.mu.Unlock()
		return nil, err
	}
	s.Disposition = domain.DispositionDelegated
	record := &domain.Delegation{
		ID:           uuid.NewString(),
		SuggestionID: s.ID,
		UserID:       s.UserID,
		Title:        s.Title,
		CreatedAt:    time.Now().UTC(),
	}
	uc.mu.Unlock()

	uc.announceDelegation(ctx, record)
	return record, nil
}

func (uc *UseCase) announceDelegation(ctx context.Context, record *domain.Delegation) {
	if uc.users == nil || uc.log == nil {
		return
	}
	owner, err := uc.users.GetByID(ctx, record.UserID)
	if err != nil {
		uc.logger.Warn("delegation owner lookup failed", zap.Error(err))
		return
	}
	message := fmt.Sprintf("%s delegated %q", owner.FirstName, record.Title)
	for _, clusterID := range owner.Clusters {
		if err := uc.log.Append(ctx, clusterID, domain.ClusterUpdate{Message: message, Timestamp: record.CreatedAt}); err != nil {
			uc.logger.Warn("delegation log append failed",
				zap.String("cluster_id", clusterID),
				zap.Error(err))
		}
	}
}

// takeLocked fetches a pending suggestion for disposition. Callers hold the
// mutex.
func (uc *UseCase) takeLocked(id string) (*domain.Suggestion, error) {
	s, ok := uc.pending[id]
	if !ok {
		return nil, domain.ErrSuggestionNotFound
	}
	if s.Resolved() {
		return nil, domain.ErrAlreadyResolved
	}
	return s, nil
}

func (uc *UseCase) dropPendingLocked(userID string) {
	kept := uc.order[:0]
	for _, id := range uc.order {
		s, ok := uc.pending[id]
		if !ok {
			continue
		}
		if s.UserID == userID && !s.Resolved() {
			delete(uc.pending, id)
			continue
		}
		kept = append(kept, id)
	}
	uc.order = kept
}

// rank sorts by confidence descending; equal confidence falls back to the
// earliest urgency, and a stable sort preserves insertion order beyond that.
func rank(suggestions []*domain.Suggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Confidence != suggestions[j].Confidence {
			return suggestions[i].Confidence > suggestions[j].Confidence
		}
		iu, ju := suggestions[i].Urgency, suggestions[j].Urgency
		switch {
		case iu == nil && ju == nil:
			return false
		case ju == nil:
			return true
		case iu == nil:
			return false
		default:
			return iu.Before(*ju)
		}
	})
}

func reasoningFor(t domain.SignalType) string {
	if reason, ok := reasonings[t]; ok {
		return reason
	}
	return defaultReasoning
}

func clampConfidence(c int) int {
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}
