package repository

import (
	"context"

	"github.com/junohq/backend/domain"
)

type ClusterRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Cluster, error)
	Save(ctx context.Context, cluster *domain.Cluster) error
}

// UpdateLog keeps the bounded, newest-first activity feed of a cluster.
// Appends beyond the cap evict the oldest entries.
type UpdateLog interface {
	Append(ctx context.Context, clusterID string, update domain.ClusterUpdate) error
	Recent(ctx context.Context, clusterID string, limit int) ([]domain.ClusterUpdate, error)
}
