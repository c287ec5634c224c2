package usecase

import (
	"context"

	"github.com/junohq/backend/domain"
)

// Operation names mirror the buffer item operations.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// OperationBuffer abstracts the write buffer so use cases stay storage-agnostic.
type OperationBuffer interface {
	BufferProfile(ctx context.Context, operation string, user *domain.User) error
	BufferTask(ctx context.Context, operation string, task *domain.Task) error
}
