package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/repository"
)

type updateLog struct {
	client *redislib.Client
	prefix string
	cap    int
}

// NewUpdateLog creates a Redis-backed bounded cluster activity log. Entries
// are pushed to the head of a list and trimmed to the cap, so reads come
// back newest-first.
func NewUpdateLog(client *redislib.Client, cap int) repository.UpdateLog {
	if cap <= 0 {
		cap = 50
	}
	return &updateLog{
		client: client,
		prefix: "cluster:updates:",
		cap:    cap,
	}
}

func (l *updateLog) Append(ctx context.Context, clusterID string, update domain.ClusterUpdate) error {
	if clusterID == "" || update.Message == "" {
		return domain.ErrInvalidPayload
	}
	if update.Timestamp.IsZero() {
		update.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(update)
	if err != nil {
		return err
	}

	key := l.key(clusterID)
	pipe := l.client.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, int64(l.cap-1))
	_, err = pipe.Exec(ctx)
	return err
}

func (l *updateLog) Recent(ctx context.Context, clusterID string, limit int) ([]domain.ClusterUpdate, error) {
	if limit <= 0 || limit > l.cap {
		limit = l.cap
	}

	raw, err := l.client.LRange(ctx, l.key(clusterID), 0, int64(limit-1)).Result()
	if err != nil {
		if err == redislib.Nil {
			return nil, nil
		}
		return nil, err
	}

	updates := make([]domain.ClusterUpdate, 0, len(raw))
	for _, entry := range raw {
		var update domain.ClusterUpdate
		if err := json.Unmarshal([]byte(entry), &update); err != nil {
			continue
		}
		updates = append(updates, update)
	}
	return updates, nil
}

func (l *updateLog) key(clusterID string) string {
	return fmt.Sprintf("%s%s", l.prefix, clusterID)
}
