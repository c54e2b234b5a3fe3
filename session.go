package digitalsee

import (
	"context"
	"sync"
)

// Ensure Session implements LibraryService at compile time.
var _ LibraryService = (*Session)(nil)

// Session owns the loaded library for one process. The library is an
// explicit, re-creatable value: Reload builds a replacement and swaps the
// pointer, so readers always see a complete, immutable library.
type Session struct {
	loader Loader
	dir    string

	mu  sync.RWMutex
	lib *Library
}

// NewSession creates a session that loads from dir using loader.
func NewSession(loader Loader, dir string) *Session {
	return &Session{loader: loader, dir: dir}
}

// Library returns the currently loaded library, or nil before the first
// Reload.
func (s *Session) Library() *Library {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lib
}

// Reload runs a load pass over the source directory and replaces the current
// library. On error the previous library is kept.
func (s *Session) Reload(ctx context.Context) (*Library, error) {
	lib, err := s.loader.Load(ctx, s.dir)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.lib = lib
	s.mu.Unlock()
	return lib, nil
}
