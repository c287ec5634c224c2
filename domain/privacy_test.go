package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPrivacySettings(t *testing.T) {
	s := DefaultPrivacySettings()
	assert.True(t, s.ShareTasksWithClusters)
	assert.False(t, s.ShareCalendarWithClusters)
	assert.True(t, s.AllowClusterInsights)
	assert.True(t, s.PrivateMessagesEncrypted)
	assert.True(t, s.ShareActivityStatus)
	assert.True(t, s.AllowDirectMessages)
}

func TestPrivacySettingsSet(t *testing.T) {
	t.Run("regular toggle flips", func(t *testing.T) {
		s := DefaultPrivacySettings()
		require.NoError(t, s.Set(ToggleShareTasks, false))
		assert.False(t, s.Value(ToggleShareTasks))
	})

	t.Run("locked toggle refused", func(t *testing.T) {
		s := DefaultPrivacySettings()
		err := s.Set(ToggleMessagesEncrypted, false)
		assert.ErrorIs(t, err, ErrLockedField)
		assert.True(t, s.Value(ToggleMessagesEncrypted), "locked value must stay fixed")
	})

	t.Run("unknown key refused", func(t *testing.T) {
		s := DefaultPrivacySettings()
		assert.ErrorIs(t, s.Set("share_everything", true), ErrInvalidPayload)
	})
}

func TestPrivacySettingsValue(t *testing.T) {
	s := DefaultPrivacySettings()
	assert.False(t, s.Value("unknown_toggle"))
	assert.True(t, s.Locked(ToggleMessagesEncrypted))
	assert.False(t, s.Locked(ToggleShareTasks))
}
