package domain

import "time"

// Priority buckets a task by urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Category tags a task with the area of life it belongs to.
type Category string

const (
	CategoryWork        Category = "work"
	CategoryPersonal    Category = "personal"
	CategoryLife        Category = "life"
	CategoryBusiness    Category = "business"
	CategorySocial      Category = "social"
	CategoryMarketplace Category = "marketplace"
)

// Lane is the workflow board a task is routed to.
type Lane string

const (
	LaneGeneral     Lane = "general"
	LaneSocial      Lane = "social"
	LaneMarketplace Lane = "marketplace"
)

// LaneFor routes a category to exactly one lane. The table is fixed:
// marketplace goes to the marketplace board, social and business go to the
// social-media board, everything else lands on the general task board.
func LaneFor(category Category) Lane {
	switch category {
	case CategoryMarketplace:
		return LaneMarketplace
	case CategorySocial, CategoryBusiness:
		return LaneSocial
	default:
		return LaneGeneral
	}
}

// Creator identifies who created a task.
type Creator string

const (
	CreatedByUser  Creator = "user"
	CreatedByAgent Creator = "agent"
)

// SocialPlatform names the network a social or marketplace task targets.
type SocialPlatform string

const (
	PlatformFacebook    SocialPlatform = "facebook"
	PlatformInstagram   SocialPlatform = "instagram"
	PlatformLinkedIn    SocialPlatform = "linkedin"
	PlatformTwitter     SocialPlatform = "twitter"
	PlatformMarketplace SocialPlatform = "marketplace"
)

// PostContent carries the draft for a scheduled social-media post.
type PostContent struct {
	Text          string     `json:"text"`
	Hashtags      []string   `json:"hashtags,omitempty"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	MediaURLs     []string   `json:"media_urls,omitempty"`
}

// ItemCondition grades a marketplace listing.
type ItemCondition string

const (
	ConditionNew     ItemCondition = "new"
	ConditionLikeNew ItemCondition = "like-new"
	ConditionGood    ItemCondition = "good"
	ConditionFair    ItemCondition = "fair"
	ConditionPoor    ItemCondition = "poor"
)

// MarketplaceItem carries the listing details for a marketplace task.
type MarketplaceItem struct {
	Title       string        `json:"title"`
	Price       float64       `json:"price"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Condition   ItemCondition `json:"condition"`
	Images      []string      `json:"images,omitempty"`
	Location    string        `json:"location,omitempty"`
}

// Task represents a user- or agent-owned activity item. A task carries at
// most one channel payload, and only when its category admits that channel.
type Task struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty"`
	Completed     bool             `json:"completed"`
	Priority      Priority         `json:"priority"`
	DueDate       *time.Time       `json:"due_date,omitempty"`
	CreatedBy     Creator          `json:"created_by"`
	Category      Category         `json:"category"`
	Tags          []string         `json:"tags,omitempty"`
	EstimatedTime string           `json:"estimated_time,omitempty"`
	Platform      SocialPlatform   `json:"social_platform,omitempty"`
	Post          *PostContent     `json:"post_content,omitempty"`
	Listing       *MarketplaceItem `json:"marketplace_item,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// Lane returns the board this task is routed to, derived from its category.
func (t *Task) Lane() Lane {
	if t == nil {
		return LaneGeneral
	}
	return LaneFor(t.Category)
}

// Validate checks the category/payload invariant. A post draft is only legal
// on a social or business task with a platform set; a listing is only legal
// on a marketplace task; the two payloads are mutually exclusive.
func (t *Task) Validate() error {
	if t == nil || t.Title == "" {
		return ErrInvalidPayload
	}
	if !validCategory(t.Category) {
		return ErrInvalidTask
	}
	if t.Post != nil && t.Listing != nil {
		return ErrInvalidTask
	}
	if t.Post != nil {
		if t.Category != CategorySocial && t.Category != CategoryBusiness {
			return ErrInvalidTask
		}
		if t.Platform == "" || t.Platform == PlatformMarketplace {
			return ErrInvalidTask
		}
	}
	if t.Listing != nil && t.Category != CategoryMarketplace {
		return ErrInvalidTask
	}
	return nil
}

// Normalize fills defaults for optional enum fields.
func (t *Task) Normalize() {
	if t == nil {
		return
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if t.CreatedBy == "" {
		t.CreatedBy = CreatedByUser
	}
}

func validCategory(c Category) bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryLife, CategoryBusiness, CategorySocial, CategoryMarketplace:
		return true
	}
	return false
}
