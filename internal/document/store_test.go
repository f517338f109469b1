package document

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/arjunv/ferret/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	store, err := New(context.Background(), &Config{
		DocumentsDir: filepath.Join(dir, "documents"),
		Logger:       zap.NewNop().Sugar(),
	})
	require.NoError(t, err)
	return store
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	payload := map[string]any{"text": "hello world"}
	require.NoError(t, store.Save("doc1", payload))

	got, err := store.Load("doc1")
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestLoadMissingDocumentReturnsNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load("missing")
	require.Error(t, err)
	require.Equal(t, errors.ErrorCodeNotFound, errors.GetErrorCode(err))
}

func TestSaveOverwritesPreviousPayload(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("doc1", map[string]any{"text": "first"}))
	require.NoError(t, store.Save("doc1", map[string]any{"text": "second"}))

	got, err := store.Load("doc1")
	require.NoError(t, err)
	require.Equal(t, "second", got["text"])
}
