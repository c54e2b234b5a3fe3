package digitalsee

import "context"

// Loader produces a Library from a directory of TEI XML files.
//
// Load enumerates XML files directly in dir (non-recursive) and parses each
// into a Document. A file that fails to parse is skipped and recorded as a
// ParseWarning on the returned library; the batch never aborts because of
// one bad file. A missing or unreadable directory returns an ENOTFOUND or
// EINTERNAL coded error and no library. A directory with no XML files
// returns an empty library and no error.
type Loader interface {
	Load(ctx context.Context, dir string) (*Library, error)
}

// LibraryService provides access to the currently loaded library and the
// ability to replace it with a fresh load pass.
type LibraryService interface {
	// Library returns the current library, or nil before the first load.
	Library() *Library

	// Reload runs a load pass and replaces the current library wholesale.
	Reload(ctx context.Context) (*Library, error)
}
