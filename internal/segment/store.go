// Package segment implements the sharded inverted-index segment store: one
// sorted, human-readable text file per content hash shard, updated through
// an atomic rewrite-and-rename protocol so a reader always sees either the
// fully-old or the fully-new content, never a partial write.
//
// Unlike an append-only log, a segment file here is rewritten as a whole every
// time one of its terms changes. The rewrite streams the old file line by
// line into a temporary file in the same directory, substituting or
// inserting the line for the target term, then renames the temporary file
// over the original.
package segment

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arjunv/ferret/pkg/errors"
	"github.com/arjunv/ferret/pkg/filesys"
	"github.com/arjunv/ferret/pkg/shardpath"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// New creates and initializes a new Store, creating the index directory if
// it does not already exist.
func New(ctx context.Context, config *Config) (*Store, error) {
	if config == nil || config.IndexDir == "" || config.Logger == nil {
		return nil, errors.NewConfigurationValidationError("config", "indexDir and logger are required")
	}

	config.Logger.Infow("Initializing segment store", "indexDir", config.IndexDir)

	if err := filesys.CreateDir(config.IndexDir, 0755, true); err != nil {
		return nil, errors.ClassifyDirectoryCreationError(err, config.IndexDir)
	}

	return &Store{indexDir: config.IndexDir, log: config.Logger}, nil
}

// Load returns the posting stored for term, or an empty Posting if the shard
// or the term within it does not exist. A shard line that cannot be parsed
// surfaces a CorruptRecord error.
func (s *Store) Load(term string) (Posting, error) {
	path := shardpath.SegmentPath(s.indexDir, term)

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Posting{}, nil
		}
		return nil, errors.ClassifyFileOpenError(err, path, filepath.Base(path))
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		lineTerm, value, ok := splitRecord(line)
		if !ok {
			return nil, errors.NewCorruptRecordError(term, line, nil)
		}
		if lineTerm != term {
			continue
		}

		var posting Posting
		if err := json.Unmarshal([]byte(value), &posting); err != nil {
			return nil, errors.NewCorruptRecordError(term, scanner.Text(), err)
		}
		return posting, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.ClassifyFileOpenError(err, path, filepath.Base(path))
	}

	return Posting{}, nil
}

// Save reconciles posting into the record for term according to mode,
// rewriting the shard file atomically.
func (s *Store) Save(term string, posting Posting, mode SaveMode) error {
	path := shardpath.SegmentPath(s.indexDir, term)

	if err := ensureFile(path); err != nil {
		return errors.ClassifyFileOpenError(err, path, filepath.Base(path))
	}

	s.log.Infow("Rewriting segment shard", "term", term, "path", path, "mode", mode)
	return rewriteSegment(path, term, posting, mode)
}

// ensureFile creates an empty shard file the first time a term hashes to a
// shard that has never been written before.
func ensureFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0644)
	if err != nil {
		return err
	}
	return file.Close()
}

// rewriteSegment streams the existing shard file into a fresh temporary
// file, inserting, merging, or passing through each line, then atomically
// renames the temporary file over the original. On any failure before the
// rename the temporary file is removed and the original segment is left
// untouched.
func rewriteSegment(path, term string, posting Posting, mode SaveMode) (err error) {
	dir := filepath.Dir(path)

	src, err := os.Open(path)
	if err != nil {
		return errors.ClassifyFileOpenError(err, path, filepath.Base(path))
	}
	defer src.Close()

	tmpName := ".tmp-" + uuid.New().String()
	tmp, err := os.CreateTemp(dir, tmpName)
	if err != nil {
		return errors.ClassifyFileOpenError(err, dir, tmpName)
	}
	tmpPath := tmp.Name()
	tmpClosed := false

	defer func() {
		if err != nil {
			// Both the close and the unlink can independently fail during
			// cleanup; join them so neither failure is silently dropped.
			var closeErr error
			if !tmpClosed {
				closeErr = tmp.Close()
			}
			err = multierr.Append(err, multierr.Combine(closeErr, os.Remove(tmpPath)))
		}
	}()

	writer := bufio.NewWriter(tmp)
	scanner := bufio.NewScanner(src)
	written := false

	for scanner.Scan() {
		line := scanner.Text()
		lineTerm, value, ok := splitRecord(line)
		if !ok {
			return errors.NewCorruptRecordError(term, line, nil)
		}

		switch {
		case lineTerm < term:
			if _, werr := fmt.Fprintln(writer, line); werr != nil {
				return errors.ClassifySyncError(werr, filepath.Base(tmpPath), tmpPath, 0)
			}

		case lineTerm == term:
			merged, merr := reconcile(value, posting, mode, term, line)
			if merr != nil {
				return merr
			}
			if werr := writeRecord(writer, term, merged); werr != nil {
				return errors.ClassifySyncError(werr, filepath.Base(tmpPath), tmpPath, 0)
			}
			written = true

		default: // lineTerm > term
			if !written {
				if werr := writeRecord(writer, term, posting); werr != nil {
					return errors.ClassifySyncError(werr, filepath.Base(tmpPath), tmpPath, 0)
				}
				written = true
			}
			if _, werr := fmt.Fprintln(writer, line); werr != nil {
				return errors.ClassifySyncError(werr, filepath.Base(tmpPath), tmpPath, 0)
			}
		}
	}
	if serr := scanner.Err(); serr != nil {
		return errors.ClassifyFileOpenError(serr, path, filepath.Base(path))
	}

	if !written {
		if werr := writeRecord(writer, term, posting); werr != nil {
			return errors.ClassifySyncError(werr, filepath.Base(tmpPath), tmpPath, 0)
		}
	}

	if werr := writer.Flush(); werr != nil {
		return errors.ClassifySyncError(werr, filepath.Base(tmpPath), tmpPath, 0)
	}
	if cerr := tmp.Close(); cerr != nil {
		return errors.ClassifySyncError(cerr, filepath.Base(tmpPath), tmpPath, 0)
	}
	tmpClosed = true

	if rerr := os.Rename(tmpPath, path); rerr != nil {
		// A small number of platforms don't clobber an existing destination.
		// Remove it once and retry before giving up.
		if remErr := os.Remove(path); remErr == nil {
			if rerr = os.Rename(tmpPath, path); rerr == nil {
				return nil
			}
		}
		return errors.NewStorageError(rerr, errors.ErrorCodeIO, "failed to rename segment into place").
			WithPath(path).WithFileName(filepath.Base(path))
	}

	return nil
}

// reconcile combines an existing record's raw JSON value with a new posting
// according to mode.
func reconcile(existingRaw string, posting Posting, mode SaveMode, term, line string) (Posting, error) {
	if mode == ModeOverwrite {
		return posting, nil
	}

	var existing Posting
	if err := json.Unmarshal([]byte(existingRaw), &existing); err != nil {
		return nil, errors.NewCorruptRecordError(term, line, err)
	}

	merged := make(Posting, len(existing))
	for docID, positions := range existing {
		merged[docID] = append([]int(nil), positions...)
	}
	for docID, positions := range posting {
		merged[docID] = unionSorted(merged[docID], positions)
	}
	return merged, nil
}

// unionSorted merges two already-deduplicated position slices into one
// sorted, deduplicated slice.
func unionSorted(a, b []int) []int {
	seen := make(map[int]struct{}, len(a)+len(b))
	out := make([]int, 0, len(a)+len(b))
	for _, v := range a {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	for _, v := range b {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// writeRecord writes one `<term>\t<json-object>\n` line.
func writeRecord(w *bufio.Writer, term string, posting Posting) error {
	payload, err := json.Marshal(posting)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\t%s\n", term, payload)
	return err
}

// splitRecord splits a segment line on its first tab into (term, json value).
func splitRecord(line string) (term, value string, ok bool) {
	idx := strings.IndexByte(line, '\t')
	if idx < 0 {
		return "", "", false
	}
	return line[:idx], line[idx+1:], true
}
