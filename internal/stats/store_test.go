package stats

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	store, err := New(context.Background(), &Config{
		Path:   filepath.Join(dir, "stats.json"),
		Logger: zap.NewNop().Sugar(),
	})
	require.NoError(t, err)
	return store
}

func TestReadAbsentReturnsZeroValue(t *testing.T) {
	store := newTestStore(t)

	record, err := store.Read()
	require.NoError(t, err)
	require.Equal(t, 0, record.TotalDocs)
	require.Equal(t, Version, record.Version)
}

func TestIncrementBumpsTotalDocs(t *testing.T) {
	store := newTestStore(t)

	for i := 1; i <= 3; i++ {
		require.NoError(t, store.Increment())
		record, err := store.Read()
		require.NoError(t, err)
		require.Equal(t, i, record.TotalDocs)
	}
}
