// Package options provides data structures and functions for configuring a
// ferret instance. It defines the parameters that control where the index
// and document store live on disk and the constants the scorer uses at
// query time.
package options

import (
	"path/filepath"
	"strings"
)

// Options holds the configuration for a ferret instance. The on-disk layout
// (index directory, document directory, stats file) is part of the engine's
// external contract, so those paths are derived from DataDir rather than
// independently configurable.
type Options struct {
	// Specifies the base path where the index, documents, and stats file
	// will be stored.
	//
	// Default: "/var/lib/ferret"
	DataDir string `json:"dataDir"`

	// ScorerK is the saturation constant used by the relevance scorer.
	//
	// Default: 1.2
	ScorerK float64 `json:"scorerK"`
}

// IndexDir returns the directory holding per-term segment shard files.
func (o *Options) IndexDir() string {
	return filepath.Join(o.DataDir, "index")
}

// DocumentsDir returns the directory holding hash-sharded document payloads.
func (o *Options) DocumentsDir() string {
	return filepath.Join(o.DataDir, "documents")
}

// StatsFile returns the path of the stats record.
func (o *Options) StatsFile() string {
	return filepath.Join(o.DataDir, "stats.json")
}

// OptionFunc is a function type that modifies a ferret instance's configuration.
type OptionFunc func(*Options)

// WithDefaultOptions applies a predefined set of default configuration values
// to the Options struct.
func WithDefaultOptions() OptionFunc {
	return func(o *Options) {
		opts := NewDefaultOptions()
		o.DataDir = opts.DataDir
		o.ScorerK = opts.ScorerK
	}
}

// WithDataDir sets the primary data directory for a ferret instance.
func WithDataDir(directory string) OptionFunc {
	return func(o *Options) {
		directory = strings.TrimSpace(directory)
		if directory != "" {
			o.DataDir = directory
		}
	}
}

// WithScorerK overrides the relevance scorer's saturation constant.
func WithScorerK(k float64) OptionFunc {
	return func(o *Options) {
		if k > 0 {
			o.ScorerK = k
		}
	}
}
