package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/repository"
)

type clusterRepository struct {
	mu       sync.RWMutex
	clusters map[string]domain.Cluster
}

// NewClusterRepository returns an in-memory implementation of ClusterRepository.
func NewClusterRepository() repository.ClusterRepository {
	return &clusterRepository{clusters: make(map[string]domain.Cluster)}
}

func (r *clusterRepository) GetByID(ctx context.Context, id string) (*domain.Cluster, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cluster, ok := r.clusters[id]
	if !ok {
		return nil, domain.ErrClusterNotFound
	}
	return cloneCluster(&cluster), nil
}

func (r *clusterRepository) Save(ctx context.Context, cluster *domain.Cluster) error {
	if cluster == nil {
		return domain.ErrInvalidPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if cluster.ID == "" {
		cluster.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if existing, ok := r.clusters[cluster.ID]; ok {
		cluster.CreatedAt = existing.CreatedAt
	} else if cluster.CreatedAt.IsZero() {
		cluster.CreatedAt = now
	}
	cluster.UpdatedAt = now

	r.clusters[cluster.ID] = *cloneCluster(cluster)
	return nil
}

func cloneCluster(c *domain.Cluster) *domain.Cluster {
	if c == nil {
		return nil
	}
	out := *c
	out.MemberIDs = append([]string(nil), c.MemberIDs...)
	out.SharedTasks = append([]string(nil), c.SharedTasks...)
	return &out
}
