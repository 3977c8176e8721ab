package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swamyslabs/storefront/internal/storage"
)

func TestFileKV(t *testing.T) {
	ctx := context.Background()

	t.Run("Set then Get round-trips a value", func(t *testing.T) {
		// Arrange
		kv := storage.NewFileKV(filepath.Join(t.TempDir(), "store.json"))

		// Act
		require.NoError(t, kv.Set(ctx, "cart", []string{"a", "b"}))

		var got []string
		found, err := kv.Get(ctx, "cart", &got)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("Get on a missing file reports not found", func(t *testing.T) {
		kv := storage.NewFileKV(filepath.Join(t.TempDir(), "missing.json"))

		var got []string
		found, err := kv.Get(ctx, "cart", &got)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Get on a missing key reports not found", func(t *testing.T) {
		kv := storage.NewFileKV(filepath.Join(t.TempDir(), "store.json"))
		require.NoError(t, kv.Set(ctx, "other", 1))

		var got int
		found, err := kv.Get(ctx, "cart", &got)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Corrupt file surfaces an error on Get", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.json")
		require.NoError(t, os.WriteFile(path, []byte("][garbage"), 0o600))

		kv := storage.NewFileKV(path)

		var got []string
		found, err := kv.Get(ctx, "cart", &got)

		assert.Error(t, err)
		assert.False(t, found)
	})

	t.Run("Set over a corrupt file recovers", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.json")
		require.NoError(t, os.WriteFile(path, []byte("][garbage"), 0o600))

		kv := storage.NewFileKV(path)
		require.NoError(t, kv.Set(ctx, "cart", 7))

		var got int
		found, err := kv.Get(ctx, "cart", &got)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 7, got)
	})

	t.Run("Delete removes only the named key", func(t *testing.T) {
		kv := storage.NewFileKV(filepath.Join(t.TempDir(), "store.json"))
		require.NoError(t, kv.Set(ctx, "cart", 1))
		require.NoError(t, kv.Set(ctx, "other", 2))

		require.NoError(t, kv.Delete(ctx, "cart"))

		var got int
		found, err := kv.Get(ctx, "cart", &got)
		require.NoError(t, err)
		assert.False(t, found)

		found, err = kv.Get(ctx, "other", &got)
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("Last write wins across two handles on the same file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.json")
		first := storage.NewFileKV(path)
		second := storage.NewFileKV(path)

		require.NoError(t, first.Set(ctx, "cart", "from-first"))
		require.NoError(t, second.Set(ctx, "cart", "from-second"))

		var got string
		found, err := first.Get(ctx, "cart", &got)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "from-second", got)
	})
}
