package watch_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	digitalsee "github.com/Bestroi150/digitalsee-tei-navigator"
	"github.com/Bestroi150/digitalsee-tei-navigator/mock"
	"github.com/Bestroi150/digitalsee-tei-navigator/watch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWatcher_Run(t *testing.T) {
	t.Parallel()

	t.Run("reloads after an XML file is written", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		reloaded := make(chan struct{}, 1)

		session := &mock.LibraryService{
			ReloadFn: func(_ context.Context) (*digitalsee.Library, error) {
				select {
				case reloaded <- struct{}{}:
				default:
				}
				return digitalsee.NewLibrary(dir), nil
			},
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		watcher := watch.NewWatcher(session, dir, discardLogger())
		done := make(chan error, 1)
		go func() { done <- watcher.Run(ctx) }()

		// Give the watcher a moment to register before writing.
		time.Sleep(100 * time.Millisecond)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "new.xml"), []byte("<TEI/>"), 0644))

		select {
		case <-reloaded:
		case <-time.After(5 * time.Second):
			t.Fatal("watcher did not reload after file write")
		}

		cancel()
		assert.ErrorIs(t, <-done, context.Canceled)
	})

	t.Run("ignores non-XML files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		reloaded := make(chan struct{}, 1)

		session := &mock.LibraryService{
			ReloadFn: func(_ context.Context) (*digitalsee.Library, error) {
				select {
				case reloaded <- struct{}{}:
				default:
				}
				return digitalsee.NewLibrary(dir), nil
			},
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		watcher := watch.NewWatcher(session, dir, discardLogger())
		done := make(chan error, 1)
		go func() { done <- watcher.Run(ctx) }()

		time.Sleep(100 * time.Millisecond)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not xml"), 0644))

		select {
		case <-reloaded:
			t.Fatal("watcher reloaded for a non-XML file")
		case <-time.After(watch.DefaultDebounce + 500*time.Millisecond):
		}

		cancel()
		assert.ErrorIs(t, <-done, context.Canceled)
	})

	t.Run("fails for a missing directory", func(t *testing.T) {
		t.Parallel()

		watcher := watch.NewWatcher(&mock.LibraryService{}, filepath.Join(t.TempDir(), "missing"), discardLogger())

		err := watcher.Run(context.Background())
		assert.Error(t, err)
	})
}
