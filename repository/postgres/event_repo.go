package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/repository"
)

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewCalendarEventRepository creates a Postgres-backed CalendarEventRepository.
func NewCalendarEventRepository(pool *pgxpool.Pool) repository.CalendarEventRepository {
	return &eventRepository{pool: pool}
}

func (r *eventRepository) ListByUser(ctx context.Context, userID string) ([]domain.CalendarEvent, error) {
	const query = `
	SELECT id, user_id, title, starts_at, type, attendees, created_at
	FROM calendar_events
	WHERE user_id = $1
	ORDER BY starts_at ASC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.CalendarEvent
	for rows.Next() {
		var event domain.CalendarEvent
		var (
			kind      string
			attendees []byte
		)
		if err := rows.Scan(
			&event.ID,
			&event.UserID,
			&event.Title,
			&event.StartsAt,
			&kind,
			&attendees,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}
		event.Type = domain.EventType(kind)
		if len(attendees) > 0 {
			_ = json.Unmarshal(attendees, &event.Attendees)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *eventRepository) Create(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	if event == nil {
		return nil, domain.ErrInvalidPayload
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO calendar_events (id, user_id, title, starts_at, type, attendees)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING created_at
	`

	if err := r.pool.QueryRow(ctx, query,
		event.ID,
		event.UserID,
		event.Title,
		event.StartsAt,
		string(event.Type),
		marshalStrings(event.Attendees),
	).Scan(&event.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM calendar_events WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
