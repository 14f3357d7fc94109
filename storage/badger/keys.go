package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/vecshuffle/core"
)

// Key prefixes for different data types
const (
	placeholderPrefix = "plhrec"
	tokenIndexPrefix  = "plhtok"
	snapshotPrefix    = "plhsnap"
)

// makePlaceholderKey generates a key for a placeholder record by ID.
func makePlaceholderKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", placeholderPrefix, id))
}

// makeTokenKey generates a key for the token index.
// Format: prefix:token
func makeTokenKey(token string) []byte {
	return []byte(tokenIndexPrefix + ":" + token)
}

// makeSnapshotKey generates a composite key for a training snapshot.
// Format: prefix:placeholderID:step
func makeSnapshotKey(placeholderID core.ID, step int) []byte {
	prefix := snapshotPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for placeholder ID + 8 bytes for step
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(placeholderID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(step))
	return buf
}

// makePartialSnapshotKey generates a partial key for iterating all snapshots
// of one placeholder.
// Format: prefix:placeholderID
func makePartialSnapshotKey(placeholderID core.ID) []byte {
	prefix := snapshotPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for placeholder ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(placeholderID))
	return buf
}
