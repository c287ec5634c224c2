package memory

import (
	"context"
	"sync"
	"time"

	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/repository"
)

type updateLog struct {
	mu      sync.RWMutex
	cap     int
	entries map[string][]domain.ClusterUpdate
}

// NewUpdateLog returns an in-memory bounded update log. Entries are kept
// newest-first; appends past the cap evict the oldest.
func NewUpdateLog(cap int) repository.UpdateLog {
	if cap <= 0 {
		cap = 50
	}
	return &updateLog{
		cap:     cap,
		entries: make(map[string][]domain.ClusterUpdate),
	}
}

func (l *updateLog) Append(ctx context.Context, clusterID string, update domain.ClusterUpdate) error {
	if clusterID == "" || update.Message == "" {
		return domain.ErrInvalidPayload
	}
	if update.Timestamp.IsZero() {
		update.Timestamp = time.Now().UTC()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entries := append([]domain.ClusterUpdate{update}, l.entries[clusterID]...)
	if len(entries) > l.cap {
		entries = entries[:l.cap]
	}
	l.entries[clusterID] = entries
	return nil
}

func (l *updateLog) Recent(ctx context.Context, clusterID string, limit int) ([]domain.ClusterUpdate, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := l.entries[clusterID]
	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}
	out := make([]domain.ClusterUpdate, limit)
	copy(out, entries[:limit])
	return out, nil
}
