package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/folioadmin/internal/client/api"
	"github.com/iudanet/folioadmin/internal/client/app"
	"github.com/iudanet/folioadmin/internal/client/auth"
	"github.com/iudanet/folioadmin/internal/client/iocli"
	"github.com/iudanet/folioadmin/internal/client/modal"
	"github.com/iudanet/folioadmin/internal/client/notify"
	"github.com/iudanet/folioadmin/internal/client/storage"
	"github.com/iudanet/folioadmin/internal/client/storage/boltdb"
	"github.com/iudanet/folioadmin/internal/client/ui"
	"github.com/iudanet/folioadmin/internal/clock"
	"github.com/iudanet/folioadmin/internal/config"
)

// ErrNotLoggedIn is returned when a command needs a session and none is stored.
var ErrNotLoggedIn = errors.New("not authenticated. Please run 'folioadmin login' first")

// Cli holds everything one command invocation needs: the local store, the gateway,
// the terminal views and the controllers behind them.
type Cli struct {
	cfg    *config.Config
	io     iocli.IO
	term   *iocli.Terminal
	store  *boltdb.Storage
	client *api.Client
	auth   *auth.Service
	app    *app.App
	logger *slog.Logger
}

// New создает CLI поверх конфигурации и терминала
func New(cfg *config.Config, io iocli.IO) *Cli {
	return &Cli{
		cfg:    cfg,
		io:     io,
		term:   iocli.NewTerminal(io),
		logger: slog.Default().With("component", "cli"),
	}
}

// Open opens the local database and wires the gateway, the UI context and the app.
func (c *Cli) Open(ctx context.Context) error {
	store, err := boltdb.New(ctx, c.cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	c.store = store

	jar, err := auth.NewJar(c.cfg.APIBaseURL, store)
	if err != nil {
		_ = store.Close()
		return fmt.Errorf("failed to create cookie jar: %w", err)
	}

	center := notify.NewCenter(c.term, clock.Real{}, c.cfg.NotificationDuration.Duration)
	c.client = api.NewClient(c.cfg.APIBaseURL,
		api.WithCookieJar(jar),
		api.WithNotifier(center),
		api.WithNavigator(c.term),
		api.WithTimeout(c.cfg.Timeout.Duration),
		api.WithRedirectDelay(c.cfg.RedirectDelay.Duration),
		api.WithLogger(slog.Default()),
	)

	uictx := &ui.Context{
		Gateway:  c.client,
		Notifier: center,
		Modal:    modal.New(c.term.Presenter()),
		Confirm:  c.term,
	}
	loc, err := c.cfg.Location()
	if err != nil {
		_ = store.Close()
		return err
	}
	c.app = app.New(uictx, app.Views{List: c.term, Counts: c.term, Profile: c.term}, c.term, loc)
	c.app.Bind()
	c.auth = auth.NewService(c.client, jar, store)
	return nil
}

// Close closes the local database.
func (c *Cli) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}

// Terminal returns the terminal views.
func (c *Cli) Terminal() *iocli.Terminal {
	return c.term
}

// resume loads the stored session into the cookie jar.
func (c *Cli) resume(ctx context.Context) error {
	username, err := c.auth.Resume(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) || errors.Is(err, auth.ErrOtherBackend) {
			return ErrNotLoggedIn
		}
		return fmt.Errorf("failed to load session: %w", err)
	}
	c.logger.Debug("session resumed", "username", username)
	return nil
}

// finish runs after every command that talked to the backend. An expired session
// waits for the scheduled redirect and is forgotten; otherwise rotated cookies are saved.
func (c *Cli) finish(ctx context.Context) error {
	if c.client.Expired() {
		select {
		case <-c.client.Redirected():
		case <-time.After(c.cfg.RedirectDelay.Duration + time.Second):
		}
		if err := c.auth.Forget(ctx); err != nil {
			c.logger.Warn("failed to forget session", "error", err)
		}
		return app.ErrSessionExpired
	}
	if err := c.auth.Persist(ctx); err != nil {
		c.logger.Warn("failed to persist session", "error", err)
	}
	return nil
}

// run resumes the session, runs fn and finishes.
func (c *Cli) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := c.resume(ctx); err != nil {
		return err
	}
	err := fn(ctx)
	if errors.Is(err, app.ErrNotAuthenticated) {
		// бэкенд больше не знает эту сессию
		if ferr := c.auth.Forget(ctx); ferr != nil {
			c.logger.Warn("failed to forget session", "error", ferr)
		}
		return err
	}
	if ferr := c.finish(ctx); ferr != nil {
		return ferr
	}
	return err
}
