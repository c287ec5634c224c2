package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/junohq/backend/domain"
)

func TestCanDisclose(t *testing.T) {
	engine := New()
	memberships := []string{"fam-1"}

	t.Run("toggle on and member discloses", func(t *testing.T) {
		settings := domain.DefaultPrivacySettings()
		assert.True(t, engine.CanDisclose(settings, memberships, FieldTasks, "fam-1"))
	})

	t.Run("toggle off denies even for members", func(t *testing.T) {
		settings := domain.DefaultPrivacySettings()
		settings.ShareTasksWithClusters = false
		assert.False(t, engine.CanDisclose(settings, memberships, FieldTasks, "fam-1"))
	})

	t.Run("non-member denied even with toggle on", func(t *testing.T) {
		settings := domain.DefaultPrivacySettings()
		assert.False(t, engine.CanDisclose(settings, memberships, FieldTasks, "fam-2"))
	})

	t.Run("calendar hidden by default", func(t *testing.T) {
		settings := domain.DefaultPrivacySettings()
		assert.False(t, engine.CanDisclose(settings, memberships, FieldCalendar, "fam-1"))
		settings.ShareCalendarWithClusters = true
		assert.True(t, engine.CanDisclose(settings, memberships, FieldCalendar, "fam-1"))
	})

	t.Run("locked field keeps its fixed value regardless of membership", func(t *testing.T) {
		settings := domain.DefaultPrivacySettings()
		assert.True(t, engine.CanDisclose(settings, nil, FieldEncrypted, "fam-9"))
	})

	t.Run("unknown field denied", func(t *testing.T) {
		settings := domain.DefaultPrivacySettings()
		assert.False(t, engine.CanDisclose(settings, memberships, Field("location"), "fam-1"))
	})
}
