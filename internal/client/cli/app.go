package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/marketadmin/internal/client/client"
	"github.com/dmitrijs2005/marketadmin/internal/client/config"
	"github.com/dmitrijs2005/marketadmin/internal/client/export"
	"github.com/dmitrijs2005/marketadmin/internal/client/failover"
	"github.com/dmitrijs2005/marketadmin/internal/client/fallback"
	"github.com/dmitrijs2005/marketadmin/internal/client/repositories/mirror"
	"github.com/dmitrijs2005/marketadmin/internal/client/services"
	"github.com/dmitrijs2005/marketadmin/internal/client/tokens"
	"github.com/dmitrijs2005/marketadmin/internal/logging"
	"github.com/jmoiron/sqlx"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pinger is the health probe used by the online watcher.
type pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	api      pinger
	services *services.Services
	tables   map[string]table
	sink     services.ExportSink
	session  *tokens.Memory
	db       *sqlx.DB

	mu   sync.Mutex
	mode Mode

	scanner *bufio.Scanner
	out     io.Writer
}

// NewApp wires the client stack from c. Logs go to stderr so they do not
// interleave with command output.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.Log, os.Stderr)

	session := &tokens.Memory{}
	chain := tokens.Chain{session}
	if c.TokenFile != "" {
		chain = append(chain, tokens.File{Path: c.TokenFile})
	}
	if c.TokenEnv != "" {
		chain = append(chain, tokens.Env(c.TokenEnv))
	}

	api, err := client.NewHTTPClient(c.APIBaseURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithRetry(c.RetryAttempts, c.RetryBackoff),
		client.WithTokens(chain),
		client.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	opts := []fallback.Option{fallback.WithLogger(logger)}
	var db *sqlx.DB
	if c.Mirror.DSN != "" {
		if db, err = mirror.Open(ctx, c.Mirror.DSN); err != nil {
			return nil, fmt.Errorf("error initializing database: %w", err)
		}
		opts = append(opts, fallback.WithMirror(mirror.NewRepository(db), c.Mirror.Resources...))
	}

	sink, err := export.New(ctx, c.Export)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	svc := services.New(services.Deps{
		Client:   api,
		Local:    fallback.NewSet(opts...),
		Policies: c.Policies(),
		Logger:   logger,
	})

	app := newApp(c, svc, api, sink, os.Stdin, os.Stdout)
	app.logger = logger
	app.session = session
	app.db = db
	return app, nil
}

// newApp assembles an App around ready collaborators.
func newApp(c *config.Config, svc *services.Services, api pinger, sink services.ExportSink, in io.Reader, out io.Writer) *App {
	return &App{
		config:   c,
		logger:   logging.NewNop(),
		api:      api,
		services: svc,
		tables:   newTables(svc),
		sink:     sink,
		session:  &tokens.Memory{},
		scanner:  bufio.NewScanner(in),
		out:      out,
	}
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		fmt.Fprintf(a.out, "Switched to %s mode\n", mode)
	}
}

func (a *App) onConnectivity(online bool) {
	if online {
		a.setMode(ModeOnline)
	} else {
		a.setMode(ModeOffline)
	}
}

// probe checks the backend once.
func (a *App) probe(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, failover.ProbeTimeout)
	defer cancel()
	a.onConnectivity(a.api.Ping(pctx) == nil)
}

func (a *App) getStatus() string {
	if m := a.Mode(); m != "" {
		return fmt.Sprintf("(%s)", m)
	}
	return ""
}

// Run probes the backend, starts the online watcher and blocks in the REPL
// until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.close()

	fmt.Fprintln(a.out, "Welcome to the marketplace admin CLI (type 'help' for commands)")
	a.probe(ctx)

	if a.config.OnlineCheckInterval > 0 {
		go failover.Watch(ctx, a.config.OnlineCheckInterval, a.api.Ping, a.onConnectivity, a.services.States()...)
	}

	runREPL(ctx, a, a.getStatus, a.scanner)
}

func (a *App) close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn(context.Background(), "close mirror", "error", err)
	}
}
