package calendar

import (
	"context"

	"go.uber.org/zap"

	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/repository"
)

// UseCase owns a user's calendar entries. Events are shared into cluster
// views only through the privacy gate.
type UseCase struct {
	events repository.CalendarEventRepository
	logger *zap.Logger
}

func New(events repository.CalendarEventRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{events: events, logger: logger}
}

func (uc *UseCase) AddEvent(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	if event == nil || event.Title == "" || event.UserID == "" {
		return nil, domain.ErrInvalidPayload
	}
	if event.Type == "" {
		event.Type = domain.EventGeneric
	}
	return uc.events.Create(ctx, event)
}

func (uc *UseCase) ListEvents(ctx context.Context, userID string) ([]domain.CalendarEvent, error) {
	return uc.events.ListByUser(ctx, userID)
}

func (uc *UseCase) RemoveEvent(ctx context.Context, id string) error {
	return uc.events.Delete(ctx, id)
}
