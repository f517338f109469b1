package indexer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/arjunv/ferret/internal/document"
	"github.com/arjunv/ferret/internal/segment"
	"github.com/arjunv/ferret/internal/stats"
	"github.com/arjunv/ferret/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestIndexer(t *testing.T) *Indexer {
	t.Helper()
	dir := t.TempDir()
	log := zap.NewNop().Sugar()

	docs, err := document.New(context.Background(), &document.Config{
		DocumentsDir: filepath.Join(dir, "documents"),
		Logger:       log,
	})
	require.NoError(t, err)

	segs, err := segment.New(context.Background(), &segment.Config{
		IndexDir: filepath.Join(dir, "index"),
		Logger:   log,
	})
	require.NoError(t, err)

	st, err := stats.New(context.Background(), &stats.Config{
		Path:   filepath.Join(dir, "stats.json"),
		Logger: log,
	})
	require.NoError(t, err)

	ix, err := New(&Config{Documents: docs, Segments: segs, Stats: st, Logger: log})
	require.NoError(t, err)
	return ix
}

func TestIndexRejectsMissingTextField(t *testing.T) {
	ix := newTestIndexer(t)

	err := ix.Index(context.Background(), "doc1", map[string]any{"title": "no text here"})
	require.Error(t, err)
	require.Equal(t, errors.ErrorCodeInvalidInput, errors.GetErrorCode(err))
}

func TestIndexPersistsTermsAndStats(t *testing.T) {
	ix := newTestIndexer(t)

	require.NoError(t, ix.Index(context.Background(), "doc1", map[string]any{"text": "hello world"}))

	posting, err := ix.segments.Load("hello")
	require.NoError(t, err)
	require.Contains(t, posting, "doc1")

	record, err := ix.stats.Read()
	require.NoError(t, err)
	require.Equal(t, 1, record.TotalDocs)
}
