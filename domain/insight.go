package domain

import "time"

// InsightType classifies an assistant insight.
type InsightType string

const (
	InsightSuggestion InsightType = "suggestion"
	InsightReminder   InsightType = "reminder"
	InsightAnalysis   InsightType = "analysis"
)

// Insight is a read-only observation surfaced to the user. Insights are
// never mutated after creation.
type Insight struct {
	ID          string      `json:"id"`
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Actionable  bool        `json:"actionable"`
	Timestamp   time.Time   `json:"timestamp"`
}
