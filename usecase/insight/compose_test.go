package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/junohq/backend/domain"
)

func TestBucketForHour(t *testing.T) {
	assert.Equal(t, BucketMorning, BucketForHour(0))
	assert.Equal(t, BucketMorning, BucketForHour(11))
	assert.Equal(t, BucketAfternoon, BucketForHour(12))
	assert.Equal(t, BucketAfternoon, BucketForHour(16))
	assert.Equal(t, BucketEvening, BucketForHour(17))
	assert.Equal(t, BucketEvening, BucketForHour(23))
}

func TestComposeGreeting(t *testing.T) {
	uc := New(nil, nil)

	cases := []struct {
		personality domain.AgentPersonality
		hour        int
		want        string
	}{
		{domain.PersonalityProfessional, 9, "Good morning, Alex. Let's optimize your productivity."},
		{domain.PersonalityFriendly, 14, "Good afternoon, Alex! Ready to make today amazing?"},
		{domain.PersonalityExpert, 20, "Good evening, Alex. Your performance metrics are ready."},
		{domain.PersonalityCasual, 9, "Hey Alex! What's on the agenda today?"},
		{domain.PersonalityCasual, 21, "Hey Alex! What's on the agenda today?"},
	}
	for _, tc := range cases {
		got := uc.Compose(KindGreeting, tc.personality, Context{FirstName: "Alex", Hour: tc.hour})
		assert.Equal(t, tc.want, got)
	}
}

func TestComposeUnknownPersonalityFallsBack(t *testing.T) {
	uc := New(nil, nil)
	got := uc.Compose(KindGreeting, "sarcastic", Context{FirstName: "Alex", Hour: 9})
	assert.Equal(t, "Good morning, Alex! Ready to make today amazing?", got)
}

func TestComposeInsightIntro(t *testing.T) {
	uc := New(nil, nil)
	assert.Equal(t, "Strategic insights and recommendations:",
		uc.Compose(KindInsightIntro, domain.PersonalityProfessional, Context{}))
	assert.Equal(t, "Here's what I've noticed for you today!",
		uc.Compose(KindInsightIntro, domain.PersonalityFriendly, Context{}))
}

func TestComposeChatReplyRotation(t *testing.T) {
	uc := New(nil, nil)
	pool := chatReplies[domain.PersonalityCasual]

	for i := 0; i < 2*len(pool); i++ {
		got := uc.Compose(KindChatReply, domain.PersonalityCasual, Context{})
		assert.Equal(t, pool[i%len(pool)], got)
	}
}

func TestComposeChatReplyInjectedPicker(t *testing.T) {
	uc := New(func(n int) int { return n - 1 }, nil)
	pool := chatReplies[domain.PersonalityExpert]
	got := uc.Compose(KindChatReply, domain.PersonalityExpert, Context{})
	assert.Equal(t, pool[len(pool)-1], got)
}

func TestComposeUnknownKind(t *testing.T) {
	uc := New(nil, nil)
	assert.Empty(t, uc.Compose("poem", domain.PersonalityFriendly, Context{}))
}
