package insight

import (
	"fmt"

	"github.com/junohq/backend/domain"
)

// Kind selects which piece of wrapper text to compose.
type Kind string

const (
	KindGreeting     Kind = "greeting"
	KindInsightIntro Kind = "insight_intro"
	KindChatReply    Kind = "chat_reply"
)

// TimeBucket is the coarse time-of-day slot greetings are keyed by.
type TimeBucket string

const (
	BucketMorning   TimeBucket = "morning"
	BucketAfternoon TimeBucket = "afternoon"
	BucketEvening   TimeBucket = "evening"
)

// BucketForHour maps an hour of day onto its greeting bucket: morning before
// 12, afternoon before 17, evening after.
func BucketForHour(hour int) TimeBucket {
	switch {
	case hour < 12:
		return BucketMorning
	case hour < 17:
		return BucketAfternoon
	default:
		return BucketEvening
	}
}

// Context carries everything a template may be parameterized with. The
// composer never reads store state; all data arrives here.
type Context struct {
	FirstName string
	Hour      int
}

// greetings holds one template per personality. The %s slots are time bucket
// and first name; casual ignores the bucket entirely.
var greetings = map[domain.AgentPersonality]string{
	domain.PersonalityFriendly:     "Good %s, %s! Ready to make today amazing?",
	domain.PersonalityProfessional: "Good %s, %s. Let's optimize your productivity.",
	domain.PersonalityCasual:       "Hey %s! What's on the agenda today?",
	domain.PersonalityExpert:       "Good %s, %s. Your performance metrics are ready.",
}

var insightIntros = map[domain.AgentPersonality]string{
	domain.PersonalityFriendly:     "Here's what I've noticed for you today!",
	domain.PersonalityProfessional: "Strategic insights and recommendations:",
	domain.PersonalityCasual:       "Just a heads up on a few things:",
	domain.PersonalityExpert:       "Data-driven insights and analytical findings:",
}

var chatReplies = map[domain.AgentPersonality][]string{
	domain.PersonalityFriendly: {
		"I'd be happy to help you with that!",
		"Great question! Let me think about the best way to approach this.",
		"I love helping you figure things out! Here's what I suggest...",
	},
	domain.PersonalityProfessional: {
		"I'll analyze this request and provide you with optimal solutions.",
		"Based on your requirements, here are my recommendations:",
		"Let me process this information and deliver actionable insights.",
	},
	domain.PersonalityCasual: {
		"Sure thing! Let me see what I can do for you.",
		"No problem! Here's what I'm thinking...",
		"Got it! Let me help you sort this out.",
	},
	domain.PersonalityExpert: {
		"Analyzing your query using advanced pattern recognition...",
		"Based on comprehensive data analysis, I recommend:",
		"Applying machine learning insights to your specific use case...",
	},
}

// Compose renders the wrapper text for a kind/personality pair. Unknown
// personalities fall back to friendly; unknown kinds render empty.
func (uc *UseCase) Compose(kind Kind, personality domain.AgentPersonality, tctx Context) string {
	p := domain.NormalizePersonality(personality)

	switch kind {
	case KindGreeting:
		if p == domain.PersonalityCasual {
			return fmt.Sprintf(greetings[p], tctx.FirstName)
		}
		return fmt.Sprintf(greetings[p], BucketForHour(tctx.Hour), tctx.FirstName)
	case KindInsightIntro:
		return insightIntros[p]
	case KindChatReply:
		pool := chatReplies[p]
		return pool[uc.pick(len(pool))]
	default:
		return ""
	}
}
