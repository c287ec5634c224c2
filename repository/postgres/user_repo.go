package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/repository"
)

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository instantiates a Postgres-backed user repository.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
		SELECT id, first_name, last_name, email, agent_name, personality, clusters, privacy, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var user domain.User
	var (
		personality string
		clusters    []byte
		privacy     []byte
	)

	if err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.AgentName,
		&personality,
		&clusters,
		&privacy,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user.Personality = domain.NormalizePersonality(domain.AgentPersonality(personality))
	if len(clusters) > 0 {
		_ = json.Unmarshal(clusters, &user.Clusters)
	}
	user.Privacy = domain.DefaultPrivacySettings()
	if len(privacy) > 0 {
		_ = json.Unmarshal(privacy, &user.Privacy)
	}

	return &user, nil
}

func (r *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	if user == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO users (id, first_name, last_name, email, agent_name, personality, clusters, privacy, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, NOW()), NOW())
	ON CONFLICT (id) DO UPDATE
	SET first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name,
		email = EXCLUDED.email,
		agent_name = EXCLUDED.agent_name,
		personality = EXCLUDED.personality,
		clusters = EXCLUDED.clusters,
		privacy = EXCLUDED.privacy,
		updated_at = NOW()
	RETURNING created_at, updated_at;
	`

	var createdAt, updatedAt time.Time

	if err := r.pool.QueryRow(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.AgentName,
		string(user.Personality),
		marshalStrings(user.Clusters),
		marshalJSON(user.Privacy),
		nullTime(user.CreatedAt),
	).Scan(&createdAt, &updatedAt); err != nil {
		return err
	}

	user.CreatedAt = createdAt
	user.UpdatedAt = updatedAt
	return nil
}
