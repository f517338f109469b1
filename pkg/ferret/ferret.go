// Package ferret is the public entry point for embedding a full-text search
// engine in a Go program: build an Instance, Index documents into it, and
// Search it with ranked keyword queries.
package ferret

import (
	"context"

	"github.com/arjunv/ferret/internal/engine"
	"github.com/arjunv/ferret/internal/searcher"
	"github.com/arjunv/ferret/pkg/logger"
	"github.com/arjunv/ferret/pkg/options"
	"go.uber.org/zap"
)

// Instance wraps a running engine together with the logger and options it
// was configured with.
type Instance struct {
	service string
	engine  *engine.Engine
	log     *zap.SugaredLogger
	options *options.Options
}

// NewInstance builds a ferret Instance rooted at the directory supplied
// through WithDataDir (or the default data directory if none is given).
// service names the caller for log correlation; it has no effect on the
// on-disk layout.
func NewInstance(ctx context.Context, service string, opts ...options.OptionFunc) (*Instance, error) {
	log, err := logger.New(false)
	if err != nil {
		return nil, err
	}

	o := options.NewDefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	eng, err := engine.New(ctx, &engine.Config{Options: &o, Logger: log})
	if err != nil {
		return nil, err
	}

	log.Infow("ferret instance ready", "service", service, "dataDir", o.DataDir)

	return &Instance{service: service, engine: eng, log: log, options: &o}, nil
}

// Index analyzes document and folds it into the instance's index under
// docID. document must contain a "text" string field.
func (i *Instance) Index(ctx context.Context, docID string, document map[string]any) error {
	return i.engine.Index(ctx, docID, document)
}

// Search runs a ranked keyword query against the instance's index, returning
// up to limit hits starting at offset.
func (i *Instance) Search(ctx context.Context, query string, offset, limit int) (searcher.Result, error) {
	return i.engine.Search(ctx, query, offset, limit)
}

// Close shuts the instance down. Subsequent Index/Search calls fail.
func (i *Instance) Close(ctx context.Context) error {
	return i.engine.Close()
}
