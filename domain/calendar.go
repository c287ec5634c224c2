package domain

import "time"

// EventType classifies a calendar entry.
type EventType string

const (
	EventMeeting  EventType = "meeting"
	EventReminder EventType = "reminder"
	EventGeneric  EventType = "event"
)

// CalendarEvent is a scheduled entry on a user's calendar. Events reach
// cluster views only when the owner shares their calendar.
type CalendarEvent struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	StartsAt  time.Time `json:"starts_at"`
	Type      EventType `json:"type"`
	Attendees []string  `json:"attendees,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
