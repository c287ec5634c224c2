package repository

import (
	"context"

	"github.com/junohq/backend/domain"
)

type CalendarEventRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CalendarEvent, error)
	Create(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error)
	Delete(ctx context.Context, id string) error
}
