package buffer

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "buffer.db"), "buffer")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestEnqueueAndDrainOrder(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Enqueue(Item{
		ID:        "low",
		Entity:    EntityTask,
		Operation: OperationCreate,
		Data:      json.RawMessage(`{"id":"t1"}`),
		Priority:  5,
	}))
	require.NoError(t, store.Enqueue(Item{
		ID:        "high",
		Entity:    EntityProfile,
		Operation: OperationUpdate,
		Data:      json.RawMessage(`{"id":"u1"}`),
		Priority:  1,
	}))

	size, err := store.Size()
	require.NoError(t, err)
	assert.Equal(t, 2, size)

	items, err := store.GetBatch(10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "high", items[0].ID, "lower priority value drains first")
	assert.Equal(t, "low", items[1].ID)
}

func TestRemoveAndRequeue(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Enqueue(Item{
		ID:        "item-1",
		Entity:    EntityTask,
		Operation: OperationDelete,
		Data:      json.RawMessage(`{}`),
	}))

	items, err := store.GetBatch(1)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, store.Remove(items[0]))
	size, err := store.Size()
	require.NoError(t, err)
	assert.Equal(t, 0, size)

	retry := items[0]
	retry.Retries = 1
	require.NoError(t, store.Requeue(retry))

	items, err = store.GetBatch(1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "item-1", items[0].ID)
	assert.Equal(t, 1, items[0].Retries)
}

func TestItemNormalizeDefaults(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Enqueue(Item{
		Entity:    EntityTask,
		Operation: OperationCreate,
		Data:      json.RawMessage(`{}`),
		Priority:  9,
	}))

	items, err := store.GetBatch(1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0].ID)
	assert.Equal(t, 3, items[0].Priority)
	assert.False(t, items[0].Timestamp.IsZero())
}
