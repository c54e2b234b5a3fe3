package mock

import (
	"context"

	digitalsee "github.com/Bestroi150/digitalsee-tei-navigator"
)

var _ digitalsee.Loader = (*Loader)(nil)

// Loader is a mock implementation of digitalsee.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, dir string) (*digitalsee.Library, error)
}

func (l *Loader) Load(ctx context.Context, dir string) (*digitalsee.Library, error) {
	return l.LoadFn(ctx, dir)
}

var _ digitalsee.LibraryService = (*LibraryService)(nil)

// LibraryService is a mock implementation of digitalsee.LibraryService.
type LibraryService struct {
	LibraryFn func() *digitalsee.Library
	ReloadFn  func(ctx context.Context) (*digitalsee.Library, error)
}

func (s *LibraryService) Library() *digitalsee.Library {
	return s.LibraryFn()
}

func (s *LibraryService) Reload(ctx context.Context) (*digitalsee.Library, error) {
	return s.ReloadFn(ctx)
}
