package stats

import "go.uber.org/zap"

// Version is the stats record schema version written by this module.
const Version = "1.0.0"

// Record is the small JSON counter record persisted at the stats file path.
type Record struct {
	Version   string `json:"version"`
	TotalDocs int    `json:"total_docs"`
}

// Store manages the single stats record for an engine instance.
type Store struct {
	path string
	log  *zap.SugaredLogger
}

// Config encapsulates the parameters required to initialize a Store.
type Config struct {
	Path   string
	Logger *zap.SugaredLogger
}
