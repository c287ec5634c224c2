package domain

import (
	"fmt"
	"time"
)

// AgentPersonality selects the voice the assistant speaks with.
type AgentPersonality string

const (
	PersonalityFriendly     AgentPersonality = "friendly"
	PersonalityProfessional AgentPersonality = "professional"
	PersonalityCasual       AgentPersonality = "casual"
	PersonalityExpert       AgentPersonality = "expert"
)

// NormalizePersonality maps any unknown value onto the friendly default.
func NormalizePersonality(p AgentPersonality) AgentPersonality {
	switch p {
	case PersonalityFriendly, PersonalityProfessional, PersonalityCasual, PersonalityExpert:
		return p
	default:
		return PersonalityFriendly
	}
}

// User represents an account and its personal agent.
type User struct {
	ID          string           `json:"id"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	Email       string           `json:"email,omitempty"`
	AgentName   string           `json:"agent_name"`
	Personality AgentPersonality `json:"personality"`
	Clusters    []string         `json:"clusters,omitempty"`
	Privacy     PrivacySettings  `json:"privacy"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// AgentNameFor derives the display name of a user's agent. It is recomputed
// whenever the last name changes.
func AgentNameFor(brand, lastName string) string {
	if lastName == "" {
		return fmt.Sprintf("%s – Your Personal Agent", brand)
	}
	return fmt.Sprintf("%s – Works for %s", brand, lastName)
}

// MemberOf reports whether the user belongs to the given cluster.
func (u *User) MemberOf(clusterID string) bool {
	if u == nil {
		return false
	}
	for _, id := range u.Clusters {
		if id == clusterID {
			return true
		}
	}
	return false
}
