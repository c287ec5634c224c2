package transport

import "github.com/junohq/backend/domain"

type CreateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type PersonalityRequest struct {
	Personality string `json:"personality"`
}

type PrivacyRequest struct {
	Key   string `json:"key"`
	Value bool   `json:"value"`
}

type TaskRequest struct {
	ID            string                  `json:"id"`
	Title         string                  `json:"title"`
	Description   string                  `json:"description"`
	Priority      string                  `json:"priority"`
	DueDate       string                  `json:"due_date"`
	Category      string                  `json:"category"`
	Tags          []string                `json:"tags"`
	EstimatedTime string                  `json:"estimated_time"`
	Platform      string                  `json:"social_platform"`
	Post          *domain.PostContent     `json:"post_content"`
	Listing       *domain.MarketplaceItem `json:"marketplace_item"`
}

type TaskPatchRequest struct {
	Title         *string                 `json:"title"`
	Description   *string                 `json:"description"`
	Priority      *string                 `json:"priority"`
	DueDate       *string                 `json:"due_date"`
	Category      *string                 `json:"category"`
	Tags          []string                `json:"tags"`
	EstimatedTime *string                 `json:"estimated_time"`
	Platform      *string                 `json:"social_platform"`
	Post          *domain.PostContent     `json:"post_content"`
	ClearPost     bool                    `json:"clear_post_content"`
	Listing       *domain.MarketplaceItem `json:"marketplace_item"`
	ClearListing  bool                    `json:"clear_marketplace_item"`
}

type SignalsRequest struct {
	Signals []domain.Signal `json:"signals"`
}

type ComposeRequest struct {
	Kind        string `json:"kind"`
	Personality string `json:"personality"`
	FirstName   string `json:"first_name"`
	Hour        int    `json:"hour"`
}

type ClusterRequest struct {
	Name     string `json:"name"`
	LastName string `json:"last_name"`
}

type ShareTaskRequest struct {
	TaskID string `json:"task_id"`
}

type EventRequest struct {
	Title     string   `json:"title"`
	StartsAt  string   `json:"starts_at"`
	Type      string   `json:"type"`
	Attendees []string `json:"attendees"`
}
