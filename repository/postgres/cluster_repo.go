package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/repository"
)

type clusterRepository struct {
	pool *pgxpool.Pool
}

// NewClusterRepository creates a Postgres-backed ClusterRepository implementation.
func NewClusterRepository(pool *pgxpool.Pool) repository.ClusterRepository {
	return &clusterRepository{pool: pool}
}

func (r *clusterRepository) GetByID(ctx context.Context, id string) (*domain.Cluster, error) {
	const query = `
	SELECT id, name, last_name, member_ids, shared_task_ids, created_at, updated_at
	FROM clusters
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var cluster domain.Cluster
	var members, shared []byte

	if err := row.Scan(
		&cluster.ID,
		&cluster.Name,
		&cluster.LastName,
		&members,
		&shared,
		&cluster.CreatedAt,
		&cluster.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClusterNotFound
		}
		return nil, err
	}

	if len(members) > 0 {
		_ = json.Unmarshal(members, &cluster.MemberIDs)
	}
	if len(shared) > 0 {
		_ = json.Unmarshal(shared, &cluster.SharedTasks)
	}

	return &cluster, nil
}

func (r *clusterRepository) Save(ctx context.Context, cluster *domain.Cluster) error {
	if cluster == nil {
		return domain.ErrInvalidPayload
	}
	if cluster.ID == "" {
		cluster.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO clusters (id, name, last_name, member_ids, shared_task_ids, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, COALESCE($6, NOW()), NOW())
	ON CONFLICT (id) DO UPDATE
	SET name = EXCLUDED.name,
		last_name = EXCLUDED.last_name,
		member_ids = EXCLUDED.member_ids,
		shared_task_ids = EXCLUDED.shared_task_ids,
		updated_at = NOW()
	RETURNING created_at, updated_at;
	`

	var createdAt, updatedAt time.Time

	if err := r.pool.QueryRow(ctx, query,
		cluster.ID,
		cluster.Name,
		cluster.LastName,
		marshalStrings(cluster.MemberIDs),
		marshalStrings(cluster.SharedTasks),
		nullTime(cluster.CreatedAt),
	).Scan(&createdAt, &updatedAt); err != nil {
		return err
	}

	cluster.CreatedAt = createdAt
	cluster.UpdatedAt = updatedAt
	return nil
}
