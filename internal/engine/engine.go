// Package engine provides the core coordinator for a ferret instance.
//
// The engine owns the on-disk directory layout and wires together the four
// subsystems that do the real work:
//   - Stats:    the small counter record tracking how many documents have been indexed
//   - Document: persists raw document payloads, sharded by hash
//   - Segment:  persists the inverted index, sharded by hash, one term-record file per shard
//   - Indexer / Searcher: orchestrate the write and read paths over the above
//
// It implements a thread-safe lifecycle (open/close) using atomic operations,
// the same way the rest of this module does, even though nothing here
// currently runs a background goroutine that close needs to stop.
package engine

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"

	"github.com/arjunv/ferret/internal/document"
	"github.com/arjunv/ferret/internal/indexer"
	"github.com/arjunv/ferret/internal/searcher"
	"github.com/arjunv/ferret/internal/segment"
	"github.com/arjunv/ferret/internal/stats"
	"github.com/arjunv/ferret/pkg/options"
	"go.uber.org/zap"
)

// ErrEngineClosed is returned when attempting to perform operations on a
// closed engine.
var ErrEngineClosed = errors.New("operation failed: cannot access closed engine")

// Engine coordinates all subsystems of a ferret instance and is the primary
// interface the public API package delegates to.
type Engine struct {
	options  *options.Options
	log      *zap.SugaredLogger
	closed   atomic.Bool
	indexer  *indexer.Indexer
	searcher *searcher.Searcher
}

// Config holds all the parameters needed to initialize a new Engine instance.
type Config struct {
	Options *options.Options
	Logger  *zap.SugaredLogger
}

// New creates and initializes a new Engine instance, bootstrapping the
// on-disk directory layout and wiring its subsystems bottom-up: stats and
// the document/segment stores first, since they have no dependencies on one
// another, then the indexer and searcher that compose them.
func New(ctx context.Context, config *Config) (*Engine, error) {
	if config == nil || config.Options == nil || config.Logger == nil {
		return nil, errors.New("invalid configuration")
	}

	config.Logger.Infow("Initializing engine", "dataDir", config.Options.DataDir)

	statsStore, err := stats.New(ctx, &stats.Config{
		Path:   config.Options.StatsFile(),
		Logger: config.Logger,
	})
	if err != nil {
		return nil, err
	}

	documentStore, err := document.New(ctx, &document.Config{
		DocumentsDir: config.Options.DocumentsDir(),
		Logger:       config.Logger,
	})
	if err != nil {
		return nil, err
	}

	segmentStore, err := segment.New(ctx, &segment.Config{
		IndexDir: config.Options.IndexDir(),
		Logger:   config.Logger,
	})
	if err != nil {
		return nil, err
	}

	ix, err := indexer.New(&indexer.Config{
		Documents: documentStore,
		Segments:  segmentStore,
		Stats:     statsStore,
		Logger:    config.Logger,
	})
	if err != nil {
		return nil, err
	}

	sr, err := searcher.New(&searcher.Config{
		Segments:  segmentStore,
		Documents: documentStore,
		Stats:     statsStore,
		ScorerK:   config.Options.ScorerK,
		Logger:    config.Logger,
	})
	if err != nil {
		return nil, err
	}

	config.Logger.Infow("Engine initialized successfully", "indexDir", filepath.Clean(config.Options.IndexDir()))

	return &Engine{
		options:  config.Options,
		log:      config.Logger,
		indexer:  ix,
		searcher: sr,
	}, nil
}

// Index persists docID's payload and folds its analyzed terms into the
// segment store.
func (e *Engine) Index(ctx context.Context, docID string, doc map[string]any) error {
	if e.closed.Load() {
		return ErrEngineClosed
	}
	return e.indexer.Index(ctx, docID, doc)
}

// Search analyzes query and returns the ranked, hydrated results in the
// [offset, offset+limit) window.
func (e *Engine) Search(ctx context.Context, query string, offset, limit int) (searcher.Result, error) {
	if e.closed.Load() {
		return searcher.Result{}, ErrEngineClosed
	}
	return e.searcher.Search(ctx, query, offset, limit)
}

// Close transitions the engine to a closed state. Subsequent Index/Search
// calls return ErrEngineClosed. There are no open file handles held between
// operations in this design, so Close exists for lifecycle symmetry and
// use-after-close rejection rather than to flush state.
func (e *Engine) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return ErrEngineClosed
	}
	e.log.Infow("Engine closed")
	return nil
}
