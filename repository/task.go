package repository

import (
	"context"

	"github.com/junohq/backend/domain"
)

type TaskFilter struct {
	UserID    string
	Lane      domain.Lane
	Completed *bool
	Limit     int
	Offset    int
}

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
}
