package privacy

import "github.com/junohq/backend/domain"

// Field names a category of disclosable data. Each field is governed by one
// privacy toggle.
type Field string

const (
	FieldTasks     Field = "tasks"
	FieldCalendar  Field = "calendar"
	FieldInsights  Field = "insights"
	FieldActivity  Field = "activity"
	FieldMessages  Field = "messages"
	FieldEncrypted Field = "encrypted_messages"
)

// toggleFor maps a field to the toggle that governs it.
func toggleFor(field Field) (domain.PrivacyToggle, bool) {
	switch field {
	case FieldTasks:
		return domain.ToggleShareTasks, true
	case FieldCalendar:
		return domain.ToggleShareCalendar, true
	case FieldInsights:
		return domain.ToggleClusterInsights, true
	case FieldActivity:
		return domain.ToggleActivityStatus, true
	case FieldMessages:
		return domain.ToggleDirectMessages, true
	case FieldEncrypted:
		return domain.ToggleMessagesEncrypted, true
	default:
		return "", false
	}
}

// Engine evaluates, per field and per viewing cluster, whether a piece of a
// user's data may be disclosed. It is stateless and never mutates settings.
type Engine struct{}

// New returns a policy engine.
func New() Engine {
	return Engine{}
}

// CanDisclose applies the evaluation order: locked fields keep their fixed
// value, then the owner's toggle must be on, then the viewing cluster must be
// among the owner's memberships.
func (Engine) CanDisclose(settings domain.PrivacySettings, memberships []string, field Field, clusterID string) bool {
	toggle, ok := toggleFor(field)
	if !ok {
		return false
	}
	if settings.Locked(toggle) {
		return settings.Value(toggle)
	}
	if !settings.Value(toggle) {
		return false
	}
	for _, id := range memberships {
		if id == clusterID {
			return true
		}
	}
	return false
}
