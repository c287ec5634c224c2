package domain

// PrivacyToggle names a user-controlled sharing switch.
type PrivacyToggle string

const (
	ToggleShareTasks        PrivacyToggle = "share_tasks_with_clusters"
	ToggleShareCalendar     PrivacyToggle = "share_calendar_with_clusters"
	ToggleClusterInsights   PrivacyToggle = "allow_cluster_insights"
	ToggleMessagesEncrypted PrivacyToggle = "private_messages_encrypted"
	ToggleActivityStatus    PrivacyToggle = "share_activity_status"
	ToggleDirectMessages    PrivacyToggle = "allow_direct_messages"
)

// PrivacySettings holds a user's sharing switches. Locked toggles keep their
// fixed value no matter what the caller sends.
type PrivacySettings struct {
	ShareTasksWithClusters    bool `json:"share_tasks_with_clusters"`
	ShareCalendarWithClusters bool `json:"share_calendar_with_clusters"`
	AllowClusterInsights      bool `json:"allow_cluster_insights"`
	PrivateMessagesEncrypted  bool `json:"private_messages_encrypted"`
	ShareActivityStatus       bool `json:"share_activity_status"`
	AllowDirectMessages       bool `json:"allow_direct_messages"`
}

// DefaultPrivacySettings mirrors the defaults a fresh account starts with.
func DefaultPrivacySettings() PrivacySettings {
	return PrivacySettings{
		ShareTasksWithClusters:    true,
		ShareCalendarWithClusters: false,
		AllowClusterInsights:      true,
		PrivateMessagesEncrypted:  true,
		ShareActivityStatus:       true,
		AllowDirectMessages:       true,
	}
}

// Locked reports whether a toggle is fixed and cannot be changed by the user.
// End-to-end encryption is always on.
func (PrivacySettings) Locked(key PrivacyToggle) bool {
	return key == ToggleMessagesEncrypted
}

// Value reads the current state of a toggle. Unknown keys read as false.
func (s PrivacySettings) Value(key PrivacyToggle) bool {
	switch key {
	case ToggleShareTasks:
		return s.ShareTasksWithClusters
	case ToggleShareCalendar:
		return s.ShareCalendarWithClusters
	case ToggleClusterInsights:
		return s.AllowClusterInsights
	case ToggleMessagesEncrypted:
		return s.PrivateMessagesEncrypted
	case ToggleActivityStatus:
		return s.ShareActivityStatus
	case ToggleDirectMessages:
		return s.AllowDirectMessages
	default:
		return false
	}
}

// Set writes a toggle and reports whether the key was recognized. Locked
// toggles are refused.
func (s *PrivacySettings) Set(key PrivacyToggle, value bool) error {
	if s == nil {
		return ErrInvalidPayload
	}
	if s.Locked(key) {
		return ErrLockedField
	}
	switch key {
	case ToggleShareTasks:
		s.ShareTasksWithClusters = value
	case ToggleShareCalendar:
		s.ShareCalendarWithClusters = value
	case ToggleClusterInsights:
		s.AllowClusterInsights = value
	case ToggleActivityStatus:
		s.ShareActivityStatus = value
	case ToggleDirectMessages:
		s.AllowDirectMessages = value
	default:
		return ErrInvalidPayload
	}
	return nil
}
