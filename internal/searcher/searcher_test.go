package searcher

import (
	"context"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arjunv/ferret/internal/document"
	"github.com/arjunv/ferret/internal/indexer"
	"github.com/arjunv/ferret/internal/segment"
	"github.com/arjunv/ferret/internal/stats"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type harness struct {
	indexer  *indexer.Indexer
	searcher *Searcher
}

func newHarness(t *testing.T) *harness {
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

	ix, err := indexer.New(&indexer.Config{Documents: docs, Segments: segs, Stats: st, Logger: log})
	require.NoError(t, err)

	sr, err := New(&Config{Segments: segs, Documents: docs, Stats: st, Logger: log})
	require.NoError(t, err)

	return &harness{indexer: ix, searcher: sr}
}

func ids(result Result) []string {
	out := make([]string, 0, len(result.Hits))
	for _, hit := range result.Hits {
		out = append(out, hit.ID)
	}
	sort.Strings(out)
	return out
}

func TestOfficeSpaceCorpus(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	docs := map[string]string{
		"email_1": "Peter, I'm going to need those TPS reports on my desk first thing tomorrow! And clean up your desk! Lumbergh",
		"email_2": "Everyone, M-m-m-m-my red stapler has gone missing. H-h-has a-an-anyone seen it? Milton",
		"email_3": "Peter, Yeah, I'm going to need you to come in on Saturday. Don't forget those reports. Lumbergh",
		"email_4": "How do you feel about becoming Management? The Bobs",
	}

	for id, text := range docs {
		require.NoError(t, h.indexer.Index(ctx, id, map[string]any{"text": text}))
	}

	cases := []struct {
		query string
		want  []string
	}{
		{"peter", []string{"email_1", "email_3"}},
		{"desk", []string{"email_1"}},
		{"you", []string{"email_1", "email_3", "email_4"}},
	}

	for _, tc := range cases {
		result, err := h.searcher.Search(ctx, tc.query, 0, 10)
		require.NoError(t, err)
		require.Equal(t, tc.want, ids(result), "query %q", tc.query)
	}

	noHit, err := h.searcher.Search(ctx, "wunderkind", 0, 10)
	require.NoError(t, err)
	require.Equal(t, 0, noHit.TotalHits)
}

func TestSearchEmptyQueryReturnsNoResults(t *testing.T) {
	h := newHarness(t)

	result, err := h.searcher.Search(context.Background(), "", 0, 10)
	require.NoError(t, err)
	require.Equal(t, 0, result.TotalHits)
	require.Empty(t, result.Hits)
}

func TestSearchEmptyIndexReturnsNoResults(t *testing.T) {
	h := newHarness(t)

	result, err := h.searcher.Search(context.Background(), "anything", 0, 10)
	require.NoError(t, err)
	require.Equal(t, 0, result.TotalHits)
	require.Empty(t, result.Hits)
}
