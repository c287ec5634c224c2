package insight

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/junohq/backend/domain"
)

// Picker selects an index in [0, n). Injecting it keeps chat replies
// reproducible; the default rotates through the pool.
type Picker func(n int) int

// UseCase composes personality-conditioned text and materializes the
// read-only insight feed from analytics signals.
type UseCase struct {
	mu     sync.Mutex
	cursor int
	picker Picker
	logger *zap.Logger
}

func New(picker Picker, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		picker: picker,
		logger: logger,
	}
}

func (uc *UseCase) pick(n int) int {
	if n <= 0 {
		return 0
	}
	if uc.picker != nil {
		if i := uc.picker(n); i >= 0 && i < n {
			return i
		}
		return 0
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	i := uc.cursor % n
	uc.cursor++
	return i
}

// insightTypeFor classifies a signal into the insight taxonomy.
func insightTypeFor(t domain.SignalType) domain.InsightType {
	switch t {
	case domain.SignalPendingEmail, domain.SignalUnansweredMessage:
		return domain.InsightReminder
	case domain.SignalStaleDocument:
		return domain.InsightAnalysis
	default:
		return domain.InsightSuggestion
	}
}

// BuildInsights turns already-materialized analytics signals into the
// immutable insight feed. Analysis entries are informational only.
func (uc *UseCase) BuildInsights(signals []domain.Signal) []domain.Insight {
	now := time.Now().UTC()
	insights := make([]domain.Insight, 0, len(signals))
	for _, signal := range signals {
		if signal.Title == "" {
			continue
		}
		kind := insightTypeFor(signal.Type)
		insights = append(insights, domain.Insight{
			ID:          uuid.NewString(),
			Type:        kind,
			Title:       signal.Title,
			Description: signal.Description,
			Actionable:  kind != domain.InsightAnalysis,
			Timestamp:   now,
		})
	}
	uc.logger.Debug("insights built", zap.Int("count", len(insights)))
	return insights
}
