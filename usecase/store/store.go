package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/repository"
	"github.com/junohq/backend/usecase"
)

// TaskPatch carries the fields of a partial task update. Nil fields are left
// untouched. Clearing a channel payload is expressed by setting the matching
// Clear flag.
type TaskPatch struct {
	Title         *string
	Description   *string
	Priority      *domain.Priority
	DueDate       *time.Time
	Category      *domain.Category
	Tags          []string
	EstimatedTime *string
	Platform      *domain.SocialPlatform
	Post          *domain.PostContent
	ClearPost     bool
	Listing       *domain.MarketplaceItem
	ClearListing  bool
}

// UseCase is the task store: the only component permitted to mutate tasks.
type UseCase struct {
	tasks  repository.TaskRepository
	buffer usecase.OperationBuffer
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		buffer: buffer,
		logger: logger,
	}
}

// CreateTask validates and persists a new task.
func (uc *UseCase) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	task.Normalize()
	if err := task.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationCreate, task) {
			return task, nil
		}
		return nil, err
	}
	return created, nil
}

func (uc *UseCase) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, id)
}

// ListLane returns the tasks routed to a workflow lane, in insertion order.
func (uc *UseCase) ListLane(ctx context.Context, lane domain.Lane, userID string) ([]domain.Task, error) {
	return uc.tasks.List(ctx, repository.TaskFilter{UserID: userID, Lane: lane})
}

// UpdateTask applies a partial update. The merged task must still satisfy the
// category/payload rules; otherwise the store is left unchanged.
func (uc *UseCase) UpdateTask(ctx context.Context, id string, patch TaskPatch) (*domain.Task, error) {
	current, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := applyPatch(*current, patch)
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	if err := uc.tasks.Update(ctx, &merged); err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, &merged) {
			return &merged, nil
		}
		return nil, err
	}
	return &merged, nil
}

// SetCompleted moves a task into or out of the completed state. Requesting
// the state the task is already in is a no-op returning the unchanged task.
func (uc *UseCase) SetCompleted(ctx context.Context, id string, completed bool) (*domain.Task, error) {
	current, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Completed == completed {
		return current, nil
	}

	current.Completed = completed
	if err := uc.tasks.Update(ctx, current); err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, current) {
			return current, nil
		}
		return nil, err
	}
	return current, nil
}

// ToggleCompletion flips the completion checkbox.
func (uc *UseCase) ToggleCompletion(ctx context.Context, id string) (*domain.Task, error) {
	current, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Completed = !current.Completed
	if err := uc.tasks.Update(ctx, current); err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, current) {
			return current, nil
		}
		return nil, err
	}
	return current, nil
}

func (uc *UseCase) DeleteTask(ctx context.Context, id string) error {
	if err := uc.tasks.Delete(ctx, id); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return err
		}
		task := &domain.Task{ID: id}
		if uc.shouldBuffer(ctx, usecase.OperationDelete, task) {
			return nil
		}
		return err
	}
	return nil
}

func (uc *UseCase) shouldBuffer(ctx context.Context, operation string, task *domain.Task) bool {
	if uc.buffer == nil {
		return false
	}
	if err := uc.buffer.BufferTask(ctx, operation, task); err != nil {
		uc.logger.Error("failed to buffer task operation", zap.String("operation", operation), zap.Error(err))
		return false
	}
	uc.logger.Warn("task operation buffered", zap.String("operation", operation))
	return true
}

func applyPatch(task domain.Task, patch TaskPatch) domain.Task {
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		due := *patch.DueDate
		task.DueDate = &due
	}
	if patch.Category != nil {
		task.Category = *patch.Category
	}
	if patch.Tags != nil {
		task.Tags = append([]string(nil), patch.Tags...)
	}
	if patch.EstimatedTime != nil {
		task.EstimatedTime = *patch.EstimatedTime
	}
	if patch.Platform != nil {
		task.Platform = *patch.Platform
	}
	if patch.ClearPost {
		task.Post = nil
	} else if patch.Post != nil {
		post := *patch.Post
		task.Post = &post
	}
	if patch.ClearListing {
		task.Listing = nil
	} else if patch.Listing != nil {
		listing := *patch.Listing
		task.Listing = &listing
	}
	return task
}
