package driver

import (
	"crypto/sha256"
	"sync"

	"github.com/romarionagy/pylint/internal/snapshot"
)

// Digest identifies snapshot file content.
type Digest = [sha256.Size]byte

// minimal per-process cache by snapshot path + content hash
type cached struct {
	content Digest
	doc     *snapshot.Document
}

// SnapshotCache keeps decoded snapshot documents so repeated runs over
// unchanged files skip the msgpack decode. Materialization is not cached;
// spans carry the FileID of the run's own FileSet.
type SnapshotCache struct {
	mu     sync.RWMutex
	byPath map[string]cached
}

// NewSnapshotCache creates a SnapshotCache with the given capacity hint.
func NewSnapshotCache(capHint int) *SnapshotCache {
	return &SnapshotCache{byPath: make(map[string]cached, capHint)}
}

// Get retrieves a document by its snapshot path and content hash.
func (c *SnapshotCache) Get(path string, content Digest) (*snapshot.Document, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	rec, ok := c.byPath[path]
	c.mu.RUnlock()
	if !ok || rec.content != content {
		return nil, false
	}
	return rec.doc, true
}

// Put inserts a decoded document.
func (c *SnapshotCache) Put(path string, content Digest, doc *snapshot.Document) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.byPath[path] = cached{content: content, doc: doc}
	c.mu.Unlock()
}
