package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junohq/backend/domain"
)

func TestUpdateLogBoundedNewestFirst(t *testing.T) {
	log := NewUpdateLog(5)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		require.NoError(t, log.Append(ctx, "c1", domain.ClusterUpdate{Message: fmt.Sprintf("update-%d", i)}))
	}

	updates, err := log.Recent(ctx, "c1", 10)
	require.NoError(t, err)
	require.Len(t, updates, 5)
	assert.Equal(t, "update-7", updates[0].Message)
	assert.Equal(t, "update-3", updates[4].Message)

	limited, err := log.Recent(ctx, "c1", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "update-7", limited[0].Message)
}

func TestUpdateLogRejectsEmpty(t *testing.T) {
	log := NewUpdateLog(5)
	ctx := context.Background()

	assert.ErrorIs(t, log.Append(ctx, "", domain.ClusterUpdate{Message: "x"}), domain.ErrInvalidPayload)
	assert.ErrorIs(t, log.Append(ctx, "c1", domain.ClusterUpdate{}), domain.ErrInvalidPayload)

	updates, err := log.Recent(ctx, "empty", 10)
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestUpdateLogIsolatesClusters(t *testing.T) {
	log := NewUpdateLog(5)
	ctx := context.Background()

	require.NoError(t, log.Append(ctx, "c1", domain.ClusterUpdate{Message: "only c1"}))
	updates, err := log.Recent(ctx, "c2", 10)
	require.NoError(t, err)
	assert.Empty(t, updates)
}
