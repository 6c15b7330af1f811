package pipeline

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewJobID returns a new lexicographically sortable job identifier.
func NewJobID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Now(), entropy).String()
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}

// DocIDFromHash derives a stable document ID from a content hash.
func DocIDFromHash(hash string) string {
	if len(hash) > 16 {
		return "doc_" + hash[:16]
	}
	return "doc_" + hash
}
