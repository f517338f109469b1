// Package searcher orchestrates a single Search call: analyze the query,
// collect postings for every resulting term, score every candidate
// document, sort by relevance, paginate, and hydrate the survivors from the
// document store.
package searcher

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/arjunv/ferret/internal/analyzer"
	"github.com/arjunv/ferret/internal/document"
	"github.com/arjunv/ferret/internal/scorer"
	"github.com/arjunv/ferret/internal/segment"
	"github.com/arjunv/ferret/internal/stats"
	"github.com/arjunv/ferret/pkg/errors"
	"go.uber.org/zap"
)

// Hit is one ranked, hydrated search result: the stored document fields with
// "id" and "score" merged in as siblings, not nested under an envelope key.
type Hit struct {
	ID      string
	Score   float64
	Payload map[string]any
}

// MarshalJSON flattens Payload and merges id/score into it as top-level
// keys, matching the document's original on-disk shape instead of wrapping
// it in an envelope.
func (h Hit) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(h.Payload)+2)
	for k, v := range h.Payload {
		out[k] = v
	}
	out["id"] = h.ID
	out["score"] = h.Score
	return json.Marshal(out)
}

// Result is the outcome of a Search call.
type Result struct {
	TotalHits int   `json:"total_hits"`
	Hits      []Hit `json:"hits"`
}

// Searcher wires together the segment store, document store, and stats
// store for the read path.
type Searcher struct {
	segments  *segment.Store
	documents *document.Store
	stats     *stats.Store
	scorerK   float64
	log       *zap.SugaredLogger
}

// Config encapsulates the subsystems a Searcher delegates to.
type Config struct {
	Segments  *segment.Store
	Documents *document.Store
	Stats     *stats.Store
	ScorerK   float64
	Logger    *zap.SugaredLogger
}

// New creates a Searcher from its dependent subsystems.
func New(config *Config) (*Searcher, error) {
	if config == nil || config.Segments == nil || config.Documents == nil || config.Stats == nil || config.Logger == nil {
		return nil, errors.NewConfigurationValidationError("config", "segments, documents, stats, and logger are required")
	}

	k := config.ScorerK
	if k <= 0 {
		k = scorer.DefaultK
	}

	return &Searcher{
		segments:  config.Segments,
		documents: config.Documents,
		stats:     config.Stats,
		scorerK:   k,
		log:       config.Logger,
	}, nil
}

// candidate tracks one document's accumulated term-frequency counts while
// postings are being collected, before scoring.
type candidate struct {
	docID string
	tf    map[string]int
}

// Search analyzes query, scores every document whose postings match a query
// term, and returns the top results in the [offset, offset+limit) window.
func (sr *Searcher) Search(ctx context.Context, query string, offset, limit int) (Result, error) {
	tokens := analyzer.Tokenize(query)
	if len(tokens) == 0 {
		return Result{TotalHits: 0, Hits: []Hit{}}, nil
	}

	terms := distinctTerms(tokens)

	record, err := sr.stats.Read()
	if err != nil {
		return Result{}, err
	}
	n := record.TotalDocs
	if n == 0 {
		return Result{TotalHits: 0, Hits: []Hit{}}, nil
	}

	df := make(map[string]int, len(terms))
	candidates := make(map[string]*candidate)

	for _, term := range terms {
		posting, err := sr.segments.Load(term)
		if err != nil {
			return Result{}, err
		}

		df[term] = len(posting)
		for docID, positions := range posting {
			c, ok := candidates[docID]
			if !ok {
				c = &candidate{docID: docID, tf: make(map[string]int)}
				candidates[docID] = c
			}
			c.tf[term] = len(positions)
		}
	}

	if len(candidates) == 0 {
		return Result{TotalHits: 0, Hits: []Hit{}}, nil
	}

	scored := make([]Hit, 0, len(candidates))
	for docID, c := range candidates {
		score := scorer.Score(terms, df, c.tf, n, sr.scorerK)
		scored = append(scored, Hit{ID: docID, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].ID < scored[j].ID
	})

	total := len(scored)
	window := paginate(scored, offset, limit)

	hits := make([]Hit, 0, len(window))
	for _, hit := range window {
		payload, err := sr.documents.Load(hit.ID)
		if err != nil {
			return Result{}, err
		}
		hit.Payload = payload
		hits = append(hits, hit)
	}

	sr.log.Infow("Search completed", "query", query, "totalHits", total, "returned", len(hits))
	return Result{TotalHits: total, Hits: hits}, nil
}

// distinctTerms collects the unique analyzer terms across a query's tokens.
func distinctTerms(tokens []string) []string {
	postings := analyzer.Ngramize(tokens)
	terms := make([]string, 0, len(postings))
	for term := range postings {
		terms = append(terms, term)
	}
	return terms
}

// paginate slices hits into the [offset, offset+limit) window, clamping to
// the slice bounds. A non-positive limit returns every hit from offset on.
func paginate(hits []Hit, offset, limit int) []Hit {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(hits) {
		return []Hit{}
	}

	end := len(hits)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return hits[offset:end]
}
