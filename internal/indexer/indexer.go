// Package indexer orchestrates a single Index call: validate the document,
// persist its payload, analyze its text field, fold the resulting terms into
// the segment store, and bump the stats counter.
package indexer

import (
	"context"

	"github.com/arjunv/ferret/internal/analyzer"
	"github.com/arjunv/ferret/internal/document"
	"github.com/arjunv/ferret/internal/segment"
	"github.com/arjunv/ferret/internal/stats"
	"github.com/arjunv/ferret/pkg/errors"
	"go.uber.org/zap"
)

// Indexer wires together the document store, segment store, and stats store
// for the write path.
type Indexer struct {
	documents *document.Store
	segments  *segment.Store
	stats     *stats.Store
	log       *zap.SugaredLogger
}

// Config encapsulates the subsystems an Indexer delegates to.
type Config struct {
	Documents *document.Store
	Segments  *segment.Store
	Stats     *stats.Store
	Logger    *zap.SugaredLogger
}

// New creates an Indexer from its dependent subsystems.
func New(config *Config) (*Indexer, error) {
	if config == nil || config.Documents == nil || config.Segments == nil || config.Stats == nil || config.Logger == nil {
		return nil, errors.NewConfigurationValidationError("config", "documents, segments, stats, and logger are required")
	}

	return &Indexer{
		documents: config.Documents,
		segments:  config.Segments,
		stats:     config.Stats,
		log:       config.Logger,
	}, nil
}

// Index saves document under docID, analyzes its "text" field, and merges
// the resulting terms into the segment store.
func (ix *Indexer) Index(ctx context.Context, docID string, doc map[string]any) error {
	text, ok := doc["text"].(string)
	if !ok {
		return errors.NewSchemaError(docID)
	}

	if err := ix.documents.Save(docID, doc); err != nil {
		return err
	}

	tokens := analyzer.Tokenize(text)
	terms := analyzer.Ngramize(tokens)

	for term, positions := range terms {
		posting := segment.Posting{docID: positions}
		if err := ix.segments.Save(term, posting, segment.ModeMerge); err != nil {
			return err
		}
	}

	if err := ix.stats.Increment(); err != nil {
		return err
	}

	ix.log.Infow("Indexed document", "docID", docID, "termCount", len(terms))
	return nil
}
