package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hector17rock/SeatServe/pkg/logger"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:  logger.LevelError,
		Format: "text",
		Output: "stderr",
	})
}

func testStoreContract(t *testing.T, store Store) {
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "greeting", "hello"))
	value, ok, err := store.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hello", value)

	require.NoError(t, store.Set(ctx, "greeting", "goodbye"))
	value, _, err = store.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "goodbye", value)

	require.NoError(t, store.Delete(ctx, "greeting"))
	_, ok, err = store.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error
	require.NoError(t, store.Delete(ctx, "missing"))
}

func TestMemoryStore(t *testing.T) {
	testStoreContract(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store, err := NewFileStore(path, newTestLogger())
	require.NoError(t, err)

	testStoreContract(t, store)
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := NewFileStore(path, newTestLogger())
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, KeyUser, "fan@example.com"))

	reopened, err := NewFileStore(path, newTestLogger())
	require.NoError(t, err)

	value, ok, err := reopened.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "fan@example.com", value)
}

func TestFileStoreCorruptedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := NewFileStore(path, newTestLogger())
	require.NoError(t, err)

	_, ok, err := store.Get(context.Background(), KeyUser)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store, err := NewRedisStore("redis://"+mr.Addr(), "seatserve_test", newTestLogger())
	require.NoError(t, err)
	defer store.Close()

	testStoreContract(t, store)
}

func TestRedisStoreNamespacesKeys(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store, err := NewRedisStore("redis://"+mr.Addr(), "ns", newTestLogger())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set(context.Background(), KeyUser, "fan"))

	raw, err := mr.Get("ns:" + KeyUser)
	require.NoError(t, err)
	assert.Equal(t, "fan", raw)
}

func TestRedisStoreRejectsBadURL(t *testing.T) {
	_, err := NewRedisStore("not-a-url", "ns", newTestLogger())
	assert.Error(t, err)
}
