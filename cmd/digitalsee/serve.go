package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	digitalsee "github.com/Bestroi150/digitalsee-tei-navigator"
	dshttp "github.com/Bestroi150/digitalsee-tei-navigator/http"
	"github.com/Bestroi150/digitalsee-tei-navigator/watch"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// server receives a stop signal.
const shutdownTimeout = 5 * time.Second

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	session := digitalsee.NewSession(deps.Loader, c.Dir)

	// The initial load pass is fatal on error; nothing can be served
	// without a library.
	lib, err := session.Reload(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", digitalsee.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Loaded %d documents from %s\n", lib.Len(), c.Dir)

	srv := &http.Server{
		Addr:    c.Addr,
		Handler: dshttp.NewServer(session, deps.Logger),
	}

	g, ctx := errgroup.WithContext(deps.Ctx)

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		fmt.Fprintf(deps.Stdout, "Listening on %s\n", c.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if c.Watch {
		watcher := watch.NewWatcher(session, c.Dir, deps.Logger)
		g.Go(func() error {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	return g.Wait()
}
