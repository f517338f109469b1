// Package document persists the raw JSON payload submitted for each indexed
// document, sharded into hash-addressed directories so no single directory
// ever needs to list an unbounded number of entries.
package document

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/arjunv/ferret/pkg/errors"
	"github.com/arjunv/ferret/pkg/filesys"
	"github.com/arjunv/ferret/pkg/shardpath"
	"go.uber.org/zap"
)

// New creates and initializes a new Store, creating the documents root
// directory if it does not already exist.
func New(ctx context.Context, config *Config) (*Store, error) {
	if config == nil || config.DocumentsDir == "" || config.Logger == nil {
		return nil, errors.NewConfigurationValidationError("config", "documentsDir and logger are required")
	}

	config.Logger.Infow("Initializing document store", "documentsDir", config.DocumentsDir)

	if err := filesys.CreateDir(config.DocumentsDir, 0755, true); err != nil {
		return nil, errors.ClassifyDirectoryCreationError(err, config.DocumentsDir)
	}

	return &Store{documentsDir: config.DocumentsDir, log: config.Logger}, nil
}

// Save writes payload to the document id's shard directory, creating that
// directory on demand.
func (s *Store) Save(docID string, payload map[string]any) error {
	dir := shardpath.DocumentDir(s.documentsDir, docID)
	if err := filesys.CreateDir(dir, 0755, true); err != nil {
		return errors.ClassifyDirectoryCreationError(err, dir)
	}

	contents, err := json.Marshal(payload)
	if err != nil {
		return errors.NewIndexError(err, errors.ErrorCodeInternal, "failed to marshal document payload").
			WithKey(docID).WithOperation("Index")
	}

	path := shardpath.DocumentPath(s.documentsDir, docID)
	if err := filesys.WriteFile(path, 0644, contents); err != nil {
		return errors.ClassifyFileOpenError(err, path, filepath.Base(path))
	}

	s.log.Infow("Saved document", "docID", docID, "path", path)
	return nil
}

// Load reads back the payload stored for docID. A missing document yields a
// NotFound IndexError.
func (s *Store) Load(docID string) (map[string]any, error) {
	path := shardpath.DocumentPath(s.documentsDir, docID)

	contents, err := filesys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewDocumentNotFoundError(docID, err)
		}
		return nil, errors.ClassifyFileOpenError(err, path, filepath.Base(path))
	}

	var payload map[string]any
	if err := json.Unmarshal(contents, &payload); err != nil {
		return nil, errors.NewCorruptRecordError(docID, string(contents), err)
	}

	return payload, nil
}
