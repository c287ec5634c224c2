package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/repository/memory"
)

func newTestAccount() *UseCase {
	return New(memory.NewUserRepository(), nil, nil, "JUNO")
}

func TestCreateUser(t *testing.T) {
	uc := newTestAccount()

	user, err := uc.CreateUser(context.Background(), "Maria", "Santos", "maria@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "JUNO – Works for Santos", user.AgentName)
	assert.Equal(t, domain.PersonalityFriendly, user.Personality)
	assert.Equal(t, domain.DefaultPrivacySettings(), user.Privacy)

	_, err = uc.CreateUser(context.Background(), "", "Santos", "")
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestSetPersonalityNormalizes(t *testing.T) {
	uc := newTestAccount()
	ctx := context.Background()

	user, err := uc.CreateUser(ctx, "Maria", "Santos", "")
	require.NoError(t, err)

	updated, err := uc.SetPersonality(ctx, user.ID, domain.PersonalityExpert)
	require.NoError(t, err)
	assert.Equal(t, domain.PersonalityExpert, updated.Personality)

	updated, err = uc.SetPersonality(ctx, user.ID, "grumpy")
	require.NoError(t, err)
	assert.Equal(t, domain.PersonalityFriendly, updated.Personality)
}

func TestRenameRecomputesAgentName(t *testing.T) {
	uc := newTestAccount()
	ctx := context.Background()

	user, err := uc.CreateUser(ctx, "Maria", "Santos", "")
	require.NoError(t, err)

	// First-name-only change leaves the agent name alone.
	updated, err := uc.Rename(ctx, user.ID, "Mari", "")
	require.NoError(t, err)
	assert.Equal(t, "Mari", updated.FirstName)
	assert.Equal(t, "JUNO – Works for Santos", updated.AgentName)

	updated, err = uc.Rename(ctx, user.ID, "", "Ferreira")
	require.NoError(t, err)
	assert.Equal(t, "Mari", updated.FirstName)
	assert.Equal(t, "JUNO – Works for Ferreira", updated.AgentName)
}

func TestUpdatePrivacySetting(t *testing.T) {
	uc := newTestAccount()
	ctx := context.Background()

	user, err := uc.CreateUser(ctx, "Maria", "Santos", "")
	require.NoError(t, err)

	updated, err := uc.UpdatePrivacySetting(ctx, user.ID, domain.ToggleShareCalendar, true)
	require.NoError(t, err)
	assert.True(t, updated.Privacy.ShareCalendarWithClusters)

	_, err = uc.UpdatePrivacySetting(ctx, user.ID, domain.ToggleMessagesEncrypted, false)
	assert.ErrorIs(t, err, domain.ErrLockedField)

	current, err := uc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, current.Privacy.PrivateMessagesEncrypted)
}

func TestGetUserNotFound(t *testing.T) {
	uc := newTestAccount()
	_, err := uc.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
