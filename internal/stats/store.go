// Package stats persists the small counter record that tracks how many
// documents have been indexed.
package stats

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/arjunv/ferret/pkg/errors"
	"github.com/arjunv/ferret/pkg/filesys"
	"go.uber.org/zap"
)

// New creates a Store for the stats record at config.Path.
func New(ctx context.Context, config *Config) (*Store, error) {
	if config == nil || config.Path == "" || config.Logger == nil {
		return nil, errors.NewConfigurationValidationError("config", "path and logger are required")
	}

	return &Store{path: config.Path, log: config.Logger}, nil
}

// Read returns the current stats record, or a fresh zero-value record if the
// stats file does not exist yet — mirroring the bootstrap-on-absence
// convention used throughout this engine.
func (s *Store) Read() (Record, error) {
	contents, err := filesys.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{Version: Version, TotalDocs: 0}, nil
		}
		return Record{}, errors.ClassifyFileOpenError(err, s.path, filepath.Base(s.path))
	}

	var record Record
	if err := json.Unmarshal(contents, &record); err != nil {
		return Record{}, errors.NewCorruptRecordError("stats", string(contents), err)
	}
	return record, nil
}

// Write overwrites the stats record unconditionally.
func (s *Store) Write(record Record) error {
	contents, err := json.Marshal(record)
	if err != nil {
		return errors.NewIndexError(err, errors.ErrorCodeInternal, "failed to marshal stats record").
			WithOperation("Stats")
	}

	if err := filesys.WriteFile(s.path, 0644, contents); err != nil {
		return errors.ClassifyFileOpenError(err, s.path, filepath.Base(s.path))
	}

	s.log.Infow("Wrote stats record", "totalDocs", record.TotalDocs)
	return nil
}

// Increment performs a read-modify-write that bumps TotalDocs by one. This
// is intentionally not made atomic under concurrent writers — the engine's
// single-writer contract covers that (see SPEC_FULL.md).
func (s *Store) Increment() error {
	record, err := s.Read()
	if err != nil {
		return err
	}
	record.Version = Version
	record.TotalDocs++
	return s.Write(record)
}
