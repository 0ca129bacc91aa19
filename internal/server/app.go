// Package server wires the development backend: configuration, logging, the
// local data set with its optional database mirror, and the HTTP server with
// graceful shutdown on SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/marketadmin/internal/client/fallback"
	"github.com/dmitrijs2005/marketadmin/internal/client/repositories/mirror"
	"github.com/dmitrijs2005/marketadmin/internal/logging"
	"github.com/dmitrijs2005/marketadmin/internal/server/config"
	"github.com/dmitrijs2005/marketadmin/internal/server/devapi"
	"github.com/jmoiron/sqlx"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  *fallback.Set
	db     *sqlx.DB
}

// NewApp builds the application. Logs go to w.
func NewApp(ctx context.Context, c *config.Config, w io.Writer) (*App, error) {
	logger := logging.New(c.Log, w)

	var opts []fallback.Option
	opts = append(opts, fallback.WithLogger(logger))

	app := &App{config: c, logger: logger}
	if c.MirrorDSN != "" {
		db, err := mirror.Open(ctx, c.MirrorDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		app.db = db
		opts = append(opts, fallback.WithMirror(mirror.NewRepository(db)))
	}
	app.store = fallback.NewSet(opts...)

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := devapi.New(app.config, app.store, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Warn(ctx, "close mirror", "error", err)
		}
	}
	app.logger.Info(ctx, "App stopped")
}
