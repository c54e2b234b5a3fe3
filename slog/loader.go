// Package slog provides logging decorators for digitalsee services.
package slog

import (
	"context"
	"log/slog"
	"time"

	digitalsee "github.com/Bestroi150/digitalsee-tei-navigator"
)

// Ensure LoggingLoader implements digitalsee.Loader.
var _ digitalsee.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with structured logging for load passes.
type LoggingLoader struct {
	next   digitalsee.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next digitalsee.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader, logging the outcome of the pass and
// one warning line per skipped file.
func (l *LoggingLoader) Load(ctx context.Context, dir string) (*digitalsee.Library, error) {
	begin := time.Now()
	lib, err := l.next.Load(ctx, dir)
	if err != nil {
		l.logger.Error("load pass failed",
			"dir", dir,
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}

	for _, w := range lib.Warnings {
		l.logger.Warn("skipped unparseable file",
			"load_id", lib.LoadID,
			"file", w.File,
			"error", w.Err,
		)
	}
	l.logger.Info("load pass complete",
		"load_id", lib.LoadID,
		"dir", dir,
		"documents", lib.Len(),
		"skipped", len(lib.Warnings),
		"duration", time.Since(begin),
	)
	return lib, nil
}
