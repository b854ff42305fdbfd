package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/coursecatalog/internal/client/api"
	"github.com/dmitrijs2005/coursecatalog/internal/client/config"
	"github.com/dmitrijs2005/coursecatalog/internal/client/models"
	"github.com/dmitrijs2005/coursecatalog/internal/client/repositories/kv"
	"github.com/dmitrijs2005/coursecatalog/internal/client/stores"
	"github.com/dmitrijs2005/coursecatalog/internal/filex"
	"github.com/dmitrijs2005/coursecatalog/internal/logging"
	"golang.org/x/sync/errgroup"
)

type Mode string

const (
	ModeUnknown Mode = ""
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// maxPingTimeout caps a single connectivity probe.
const maxPingTimeout = 3 * time.Second

// pinger is the part of the API the connectivity watcher needs.
type pinger interface {
	Ping(ctx context.Context) error
}

// App composes the stores and drives them from an interactive prompt.
type App struct {
	config *config.Config
	logger logging.Logger

	session  *stores.SessionStore
	catalog  *stores.CatalogStore
	settings *stores.SettingsStore
	pinger   pinger
	repo     kv.Repository
	closers  []io.Closer
	unwatch  []func()

	reader *bufio.Reader
	out    io.Writer

	mu   sync.Mutex
	mode Mode
}

// NewApp opens local storage, builds the API client and the stores.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.LogLevel, os.Stderr)

	dsn, err := filex.ResolveDataFile(c.DataDir, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	repo, err := kv.Open(ctx, dsn)
	if err != nil {
		logger.Error(ctx, "error initializing database", "dsn", dsn, "error", err)
		return nil, err
	}

	client, err := api.NewHTTPClient(api.Options{
		BaseURL:         c.APIBaseURL,
		ListLimit:       c.CourseListLimit,
		TokenTTLMinutes: c.TokenTTLMinutes,
		Timeout:         c.RequestTimeout,
		Logger:          logger.With("component", "api"),
	})
	if err != nil {
		_ = repo.Close()
		return nil, err
	}

	a := newApp(c, logger, client, repo, os.Stdin, os.Stdout)
	a.closers = []io.Closer{client, repo}
	return a, nil
}

// newApp wires the stores explicitly; tests use it with fakes.
func newApp(c *config.Config, logger logging.Logger, client api.Client, repo kv.Repository, in io.Reader, out io.Writer) *App {
	opts := []stores.Option{
		stores.WithLogger(logger.With("component", "stores")),
		stores.WithRejectExpiredSession(c.RejectExpiredSession),
	}
	a := &App{
		config:   c,
		logger:   logger,
		session:  stores.NewSessionStore(client, repo, opts...),
		catalog:  stores.NewCatalogStore(client, repo, opts...),
		settings: stores.NewSettingsStore(repo, opts...),
		pinger:   client,
		repo:     repo,
		reader:   bufio.NewReader(in),
		out:      out,
	}
	a.watchStores()
	return a
}

// watchStores logs session transitions, catalog errors and settings
// changes as the stores publish them.
func (a *App) watchStores() {
	ctx := context.Background()

	var lastStatus models.SessionStatus
	a.unwatch = append(a.unwatch, a.session.Subscribe(func(s models.Session) {
		if s.Status == lastStatus {
			return
		}
		lastStatus = s.Status
		args := []any{"status", string(s.Status)}
		if s.User != nil {
			args = append(args, "user", s.User.Username)
		}
		if s.Error != "" {
			args = append(args, "error", s.Error)
		}
		a.logger.Info(ctx, "session changed", args...)
	}))

	var lastErr string
	a.unwatch = append(a.unwatch, a.catalog.Subscribe(func(c stores.Catalog) {
		if c.Error != "" && c.Error != lastErr {
			a.logger.Debug(ctx, "catalog error", "error", c.Error)
		}
		lastErr = c.Error
	}))

	a.unwatch = append(a.unwatch, a.settings.Subscribe(func(s models.Settings) {
		a.logger.Debug(ctx, "settings changed", "theme", s.Preferences.Theme, "language", s.Preferences.Language)
	}))
}

// Bootstrap restores the session, the favorites and the settings from local
// storage and probes the server, all concurrently.
func (a *App) Bootstrap(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.session.CheckSession(gctx)
		return nil
	})
	g.Go(func() error {
		a.catalog.LoadFavorites(gctx)
		return nil
	})
	g.Go(func() error {
		a.settings.Load(gctx)
		return nil
	})
	g.Go(func() error {
		a.checkOnline(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Run bootstraps the stores, starts the connectivity watcher and blocks in
// the prompt until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.Bootstrap(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.Root(ctx)
	return nil
}

// Close releases the API client and local storage.
func (a *App) Close() error {
	for _, cancel := range a.unwatch {
		cancel()
	}
	a.unwatch = nil

	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
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
		a.logger.Info(context.Background(), "switched mode", "mode", string(mode))
	}
}

func (a *App) checkOnline(ctx context.Context) {
	timeout := maxPingTimeout
	if iv := a.config.OnlineCheckInterval; iv > 0 && iv < timeout {
		timeout = iv
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := a.pinger.Ping(ctx); err != nil {
		a.logger.Debug(ctx, "ping failed", "error", err)
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher probes the server every interval and switches
// between online and offline mode until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().IsAuthenticated()
}
