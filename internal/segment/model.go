package segment

import (
	"go.uber.org/zap"
)

// SaveMode controls how Store.Save reconciles a new posting with whatever is
// already on disk for a term.
type SaveMode int

const (
	// ModeOverwrite replaces the record for a term outright.
	ModeOverwrite SaveMode = iota
	// ModeMerge unions the new posting's positions into the existing record,
	// per document id.
	ModeMerge
)

// Posting maps a document id to the set of token positions (sorted,
// deduplicated) at which a term's token occurred in that document.
type Posting map[string][]int

// Store manages the sharded, sorted-line segment files that back the
// inverted index. Every operation addresses a single term; there is no
// in-memory index held between calls (see DESIGN.md).
type Store struct {
	indexDir string
	log      *zap.SugaredLogger
}

// Config encapsulates the parameters required to initialize a Store.
type Config struct {
	IndexDir string
	Logger   *zap.SugaredLogger
}
