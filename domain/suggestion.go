package domain

import "time"

// SignalType classifies the raw observation a suggestion is derived from.
type SignalType string

const (
	SignalPendingEmail      SignalType = "pending_email"
	SignalUpcomingMeeting   SignalType = "upcoming_meeting"
	SignalStaleDocument     SignalType = "stale_document"
	SignalUnansweredMessage SignalType = "unanswered_message"
	SignalListingInterest   SignalType = "listing_interest"
	SignalPostDraft         SignalType = "post_draft"
)

// Signal is an already-materialized observation handed in by an external
// collector. The core never fetches signals itself.
type Signal struct {
	Type          SignalType `json:"type"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Priority      Priority   `json:"priority"`
	Category      Category   `json:"category"`
	Confidence    int        `json:"confidence"`
	Urgency       *time.Time `json:"urgency,omitempty"`
	EstimatedTime string     `json:"estimated_time,omitempty"`
}

// Disposition is the lifecycle state of a suggestion. Pending is the only
// state that admits commands; the other three are terminal.
type Disposition string

const (
	DispositionPending   Disposition = "pending"
	DispositionAccepted  Disposition = "accepted"
	DispositionSnoozed   Disposition = "snoozed"
	DispositionDelegated Disposition = "delegated"
)

// Suggestion is a system-proposed, not-yet-committed task.
type Suggestion struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	Title         string      `json:"title"`
	Description   string      `json:"description,omitempty"`
	Priority      Priority    `json:"priority"`
	Category      Category    `json:"category"`
	EstimatedTime string      `json:"estimated_time,omitempty"`
	Confidence    int         `json:"confidence"`
	Reasoning     string      `json:"reasoning"`
	Urgency       *time.Time  `json:"urgency,omitempty"`
	Disposition   Disposition `json:"disposition"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Resolved reports whether a disposition command was already applied.
func (s *Suggestion) Resolved() bool {
	return s != nil && s.Disposition != DispositionPending
}

// Delegation records that a suggestion was handed off. Resolving the target
// member is an external concern; the core only keeps the record.
type Delegation struct {
	ID           string    `json:"id"`
	SuggestionID string    `json:"suggestion_id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	CreatedAt    time.Time `json:"created_at"`
}
