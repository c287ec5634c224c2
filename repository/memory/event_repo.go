package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/repository"
)

type eventRepository struct {
	mu     sync.RWMutex
	events map[string]domain.CalendarEvent
}

// NewCalendarEventRepository returns an in-memory implementation of
// CalendarEventRepository.
func NewCalendarEventRepository() repository.CalendarEventRepository {
	return &eventRepository{events: make(map[string]domain.CalendarEvent)}
}

func (r *eventRepository) ListByUser(ctx context.Context, userID string) ([]domain.CalendarEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var events []domain.CalendarEvent
	for _, event := range r.events {
		if event.UserID == userID {
			events = append(events, event)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].StartsAt.Before(events[j].StartsAt)
	})
	return events, nil
}

func (r *eventRepository) Create(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	if event == nil || event.Title == "" {
		return nil, domain.ErrInvalidPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	copied := *event
	copied.Attendees = append([]string(nil), event.Attendees...)
	r.events[event.ID] = copied
	return event, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}
