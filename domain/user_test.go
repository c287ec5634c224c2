package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgentNameFor(t *testing.T) {
	assert.Equal(t, "JUNO – Works for Rodriguez", AgentNameFor("JUNO", "Rodriguez"))
	assert.Equal(t, "JUNO – Your Personal Agent", AgentNameFor("JUNO", ""))
}

func TestNormalizePersonality(t *testing.T) {
	assert.Equal(t, PersonalityExpert, NormalizePersonality(PersonalityExpert))
	assert.Equal(t, PersonalityFriendly, NormalizePersonality("sassy"))
	assert.Equal(t, PersonalityFriendly, NormalizePersonality(""))
}

func TestUserMemberOf(t *testing.T) {
	user := &User{Clusters: []string{"c1", "c2"}}
	assert.True(t, user.MemberOf("c2"))
	assert.False(t, user.MemberOf("c3"))

	var nilUser *User
	assert.False(t, nilUser.MemberOf("c1"))
}
