// Package shardpath computes the content-hash based shard addressing used by
// the segment store and the document store. Every term and every document id
// maps deterministically to a 6 hex character shard name, so a reader never
// needs an in-memory directory to find the file a key lives in.
package shardpath

import (
	"crypto/md5"
	"encoding/hex"
	"path/filepath"
)

// HashLength is the number of hex characters kept from the MD5 digest.
const HashLength = 6

// Hash returns the first HashLength hex characters of the lowercase MD5 hex
// digest of key's ASCII-clean bytes. Non-ASCII bytes are dropped before
// hashing so the digest is computed over a stable byte sequence regardless of
// the input's original encoding.
func Hash(key string) string {
	clean := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		if key[i] < 0x80 {
			clean = append(clean, key[i])
		}
	}

	sum := md5.Sum(clean)
	return hex.EncodeToString(sum[:])[:HashLength]
}

// SegmentPath returns the path of the segment shard file a term belongs to.
func SegmentPath(indexDir, term string) string {
	return filepath.Join(indexDir, Hash(term)+".index")
}

// DocumentDir returns the shard directory a document id belongs to.
func DocumentDir(documentsDir, docID string) string {
	return filepath.Join(documentsDir, Hash(docID))
}

// DocumentPath returns the path of the document payload file for docID.
func DocumentPath(documentsDir, docID string) string {
	return filepath.Join(DocumentDir(documentsDir, docID), docID+".json")
}
