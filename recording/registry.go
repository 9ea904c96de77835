package recording

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// BackendFactory creates a new backend instance.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes a backend available under name, which doubles as the
// file extension the backend writes. Names are case-insensitive.
// Register panics on a nil factory or a duplicate name, so that mistakes
// surface during program initialization.
func Register(name string, factory BackendFactory) {
	name = strings.ToLower(name)

	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	backends[name] = factory
}

// NewBackend creates a backend by name. The error for an unknown name
// hints at a forgotten blank import of the backend package.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[strings.ToLower(name)]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// BackendForFile creates the backend registered for the extension of path.
func BackendForFile(path string) (Backend, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, fmt.Errorf("recording: %q has no file extension", path)
	}
	return NewBackend(ext)
}

// IsRegistered reports whether a backend is registered under name.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[strings.ToLower(name)]
	return ok
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return slices.Sorted(maps.Keys(backends))
}
