// Package watch reloads the document library when the source directory
// changes on disk.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	digitalsee "github.com/Bestroi150/digitalsee-tei-navigator"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last filesystem
// event before reloading, so a burst of writes triggers one load pass.
const DefaultDebounce = 500 * time.Millisecond

// Watcher observes a source directory and reloads the session whenever XML
// files are created, written, removed, or renamed.
type Watcher struct {
	session  digitalsee.LibraryService
	dir      string
	debounce time.Duration
	logger   *slog.Logger
}

// NewWatcher creates a watcher for dir that reloads session on changes.
func NewWatcher(session digitalsee.LibraryService, dir string, logger *slog.Logger) *Watcher {
	return &Watcher{
		session:  session,
		dir:      dir,
		debounce: DefaultDebounce,
		logger:   logger,
	}
}

// Run blocks, reloading the session on directory changes, until the context
// is canceled. The context error is returned on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return err
	}

	var timer *time.Timer
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "dir", w.dir, "error", err)

		case <-pending:
			pending = nil
			lib, err := w.session.Reload(ctx)
			if err != nil {
				w.logger.Error("reload after change failed", "dir", w.dir, "error", err)
				continue
			}
			w.logger.Info("reloaded after change",
				"load_id", lib.LoadID,
				"documents", lib.Len(),
			)
		}
	}
}

// relevant reports whether the event concerns an XML file and a change that
// alters the loaded set.
func relevant(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), ".xml") {
		return false
	}
	return event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Remove) ||
		event.Op.Has(fsnotify.Rename)
}
