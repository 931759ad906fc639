package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/synergytrade/backend/internal/application/docproc"
)

// MemoryDocumentArchive keeps scanned documents in process memory. It is the
// demo default and disappears with the session, like the rest of the store.
type MemoryDocumentArchive struct {
	mu      sync.RWMutex
	objects map[string]archivedObject
}

type archivedObject struct {
	contentType string
	content     []byte
}

// NewMemoryDocumentArchive creates a new MemoryDocumentArchive
func NewMemoryDocumentArchive() *MemoryDocumentArchive {
	return &MemoryDocumentArchive{objects: make(map[string]archivedObject)}
}

// Store keeps a copy of the document under the given key
func (a *MemoryDocumentArchive) Store(_ context.Context, storageKey, contentType string, content []byte) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	buf := make([]byte, len(content))
	copy(buf, content)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.objects[storageKey] = archivedObject{contentType: contentType, content: buf}
	return nil
}

// Get returns a stored document and its content type
func (a *MemoryDocumentArchive) Get(storageKey string) ([]byte, string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	obj, ok := a.objects[storageKey]
	if !ok {
		return nil, "", false
	}
	out := make([]byte, len(obj.content))
	copy(out, obj.content)
	return out, obj.contentType, true
}

// Len returns the number of archived documents
func (a *MemoryDocumentArchive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.objects)
}

var _ docproc.DocumentArchiver = (*MemoryDocumentArchive)(nil)
