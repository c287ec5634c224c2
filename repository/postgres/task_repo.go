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

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

const taskColumns = `id, user_id, title, description, completed, priority, due_date, created_by,
	category, tags, estimated_time, social_platform, post_content, marketplace_item, created_at, updated_at`

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)
	return scanTask(row)
}

func (r *taskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	query := `
	SELECT ` + taskColumns + `
	FROM tasks
	WHERE ($1 = '' OR user_id = $1)
	  AND ($2 = '' OR category = ANY(string_to_array($3, ',')))
	  AND ($4::boolean IS NULL OR completed = $4)
	ORDER BY created_at ASC
	LIMIT $5 OFFSET $6
	`
	rows, err := r.pool.Query(ctx, query,
		filter.UserID,
		string(filter.Lane),
		laneCategories(filter.Lane),
		filter.Completed,
		clampLimit(filter.Limit),
		filter.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO tasks (id, user_id, title, description, completed, priority, due_date, created_by,
		category, tags, estimated_time, social_platform, post_content, marketplace_item)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	RETURNING created_at, updated_at
	`

	var due interface{}
	if task.DueDate != nil {
		due = *task.DueDate
	}

	if err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		task.Completed,
		string(task.Priority),
		due,
		string(task.CreatedBy),
		string(task.Category),
		marshalStrings(task.Tags),
		task.EstimatedTime,
		string(task.Platform),
		marshalPayload(task.Post),
		marshalPayload(task.Listing),
	).Scan(&task.CreatedAt, &task.UpdatedAt); err != nil {
		return nil, err
	}

	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE tasks
	SET title = $2,
		description = $3,
		completed = $4,
		priority = $5,
		due_date = $6,
		category = $7,
		tags = $8,
		estimated_time = $9,
		social_platform = $10,
		post_content = $11,
		marketplace_item = $12,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`

	var due interface{}
	if task.DueDate != nil {
		due = *task.DueDate
	}

	if err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.Title,
		task.Description,
		task.Completed,
		string(task.Priority),
		due,
		string(task.Category),
		marshalStrings(task.Tags),
		task.EstimatedTime,
		string(task.Platform),
		marshalPayload(task.Post),
		marshalPayload(task.Listing),
	).Scan(&task.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTaskNotFound
		}
		return err
	}

	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func scanTask(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Task, error) {
	var task domain.Task
	var (
		due      *time.Time
		tags     []byte
		post     []byte
		listing  []byte
		priority string
		creator  string
		category string
		platform string
	)

	if err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&priority,
		&due,
		&creator,
		&category,
		&tags,
		&task.EstimatedTime,
		&platform,
		&post,
		&listing,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task.Priority = domain.Priority(priority)
	task.CreatedBy = domain.Creator(creator)
	task.Category = domain.Category(category)
	task.Platform = domain.SocialPlatform(platform)
	task.DueDate = due
	if len(tags) > 0 {
		_ = json.Unmarshal(tags, &task.Tags)
	}
	if len(post) > 0 {
		task.Post = &domain.PostContent{}
		_ = json.Unmarshal(post, task.Post)
	}
	if len(listing) > 0 {
		task.Listing = &domain.MarketplaceItem{}
		_ = json.Unmarshal(listing, task.Listing)
	}

	return &task, nil
}

func marshalPayload(v interface{}) []byte {
	switch payload := v.(type) {
	case *domain.PostContent:
		if payload == nil {
			return nil
		}
	case *domain.MarketplaceItem:
		if payload == nil {
			return nil
		}
	}
	return marshalJSON(v)
}

// laneCategories expands a lane into the comma-separated category list the
// routing table assigns to it.
func laneCategories(lane domain.Lane) string {
	switch lane {
	case domain.LaneMarketplace:
		return "marketplace"
	case domain.LaneSocial:
		return "social,business"
	case domain.LaneGeneral:
		return "work,personal,life"
	default:
		return ""
	}
}
