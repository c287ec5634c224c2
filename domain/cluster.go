package domain

import "time"

// Cluster is a sharing group keyed by a common last name. Members whose last
// name drifts away from the cluster's are treated as stale and filtered out
// of views.
type Cluster struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	LastName    string    `json:"last_name"`
	MemberIDs   []string  `json:"member_ids,omitempty"`
	SharedTasks []string  `json:"shared_task_ids,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ClusterUpdate is one entry of a cluster's bounded activity log.
type ClusterUpdate struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// MemberView is the privacy-filtered slice of one member visible to a cluster.
type MemberView struct {
	UserID         string          `json:"user_id"`
	FirstName      string          `json:"first_name"`
	AgentName      string          `json:"agent_name"`
	ActivityShared bool            `json:"activity_shared"`
	AllowsMessages bool            `json:"allows_messages"`
	AllowsInsights bool            `json:"allows_insights"`
	Tasks          []Task          `json:"tasks,omitempty"`
	Events         []CalendarEvent `json:"events,omitempty"`
}

// ClusterView is the read-side merge of a cluster's shared state.
type ClusterView struct {
	ClusterID     string          `json:"cluster_id"`
	Name          string          `json:"name"`
	LastName      string          `json:"last_name"`
	Members       []MemberView    `json:"members"`
	SharedTasks   []Task          `json:"shared_tasks,omitempty"`
	RecentUpdates []ClusterUpdate `json:"recent_updates,omitempty"`
	Warnings      []string        `json:"warnings,omitempty"`
}
