package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/folioadmin/internal/client/api"
	"github.com/iudanet/folioadmin/internal/client/dashboard"
	"github.com/iudanet/folioadmin/internal/client/inbox"
	"github.com/iudanet/folioadmin/internal/client/profile"
	"github.com/iudanet/folioadmin/internal/client/resource"
	"github.com/iudanet/folioadmin/internal/client/ui"
	pkgapi "github.com/iudanet/folioadmin/pkg/api"
)

var (
	// ErrNotAuthenticated is returned by Start when the backend reports no session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSessionExpired is returned when the auth check itself answered 401.
	ErrSessionExpired = errors.New("session expired")
)

const msgLogoutFailed = "Couldn't log you out. Please try again."

// Views are the render targets of the dashboard page.
type Views struct {
	List    ui.ListView
	Counts  ui.CountsView
	Profile ui.ProfileView
}

// App wires every controller to one shared UI context and guards the session.
type App struct {
	ui         *ui.Context
	dispatcher *ui.Dispatcher
	navigator  api.Navigator
	resources  map[string]*resource.Controller
	inbox      *inbox.Controller
	profile    *profile.Controller
	dashboard  *dashboard.Aggregator
	logger     *slog.Logger
	bindOnce   sync.Once
}

// New создает приложение. Если в контексте нет CountsRefresher, им становится агрегатор.
func New(uictx *ui.Context, views Views, navigator api.Navigator, loc *time.Location) *App {
	a := &App{
		ui:         uictx,
		dispatcher: ui.NewDispatcher(),
		navigator:  navigator,
		resources:  make(map[string]*resource.Controller),
		logger:     slog.Default().With("component", "app"),
	}

	a.dashboard = dashboard.NewAggregator(uictx, views.Counts)
	if uictx.Counts == nil {
		uictx.Counts = a.dashboard
	}
	for _, kind := range resource.All() {
		a.resources[kind.Name] = resource.NewController(kind, uictx, views.List)
	}
	a.inbox = inbox.NewController(uictx, views.List, loc)
	a.profile = profile.NewController(uictx, views.Profile)
	return a
}

// Bind fills the dispatch table. Repeated calls are no-ops.
func (a *App) Bind() {
	a.bindOnce.Do(func() {
		for _, name := range resource.Names() {
			a.resources[name].Bind(a.dispatcher)
		}
		a.inbox.Bind(a.dispatcher)
		a.profile.Bind(a.dispatcher)
	})
}

// Start binds the UI, checks the session and runs every initial load.
func (a *App) Start(ctx context.Context) error {
	a.Bind()
	if err := a.CheckSession(ctx); err != nil {
		return err
	}
	a.LoadAll(ctx)
	return nil
}

// CheckSession asks the backend whether the session is valid. It fails closed: an
// unreadable answer counts as not authenticated.
func (a *App) CheckSession(ctx context.Context) error {
	resp, err := a.ui.Gateway.Get(ctx, "/api/auth/check")
	if err != nil {
		a.ui.Notifier.Error(ui.MsgUnreachable)
		return fmt.Errorf("failed to check session: %w", err)
	}
	// 401 уже обработан шлюзом: уведомление и отложенный редирект
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrSessionExpired
	}

	var check pkgapi.AuthCheckResponse
	if !api.DecodeJSONSafe(resp, &check) || !check.IsAuthenticated {
		a.logger.Info("not authenticated, redirecting to login")
		if a.navigator != nil {
			a.navigator.Redirect(api.LoginTarget)
		}
		return ErrNotAuthenticated
	}
	return nil
}

// LoadAll fires the aggregator, the profile, the five lists and the inbox at once
// and waits for all of them. Each load reports its own failures.
func (a *App) LoadAll(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error {
		a.dashboard.RefreshCounts(ctx)
		return nil
	})
	g.Go(func() error {
		a.profile.Load(ctx)
		return nil
	})
	for _, name := range resource.Names() {
		c := a.resources[name]
		g.Go(func() error {
			c.List(ctx)
			return nil
		})
	}
	g.Go(func() error {
		a.inbox.List(ctx)
		return nil
	})
	_ = g.Wait()
}

// Logout ends the backend session and navigates to the login surface.
func (a *App) Logout(ctx context.Context) error {
	_, err := a.ui.Gateway.Request(ctx, "/api/auth/logout", api.RequestOptions{
		Method:     http.MethodPost,
		SkipExpiry: true,
	})
	if err != nil {
		a.ui.Notifier.Error(msgLogoutFailed)
		return fmt.Errorf("failed to log out: %w", err)
	}
	if a.navigator != nil {
		a.navigator.Redirect(api.LoginTarget)
	}
	return nil
}

// Dispatch routes a UI event through the dispatch table.
func (a *App) Dispatch(ctx context.Context, ev ui.Event) error {
	a.Bind()
	return a.dispatcher.Dispatch(ctx, ev)
}

// UI returns the shared UI context.
func (a *App) UI() *ui.Context {
	return a.ui
}

// Resource возвращает контроллер коллекции по имени
func (a *App) Resource(name string) (*resource.Controller, bool) {
	c, ok := a.resources[name]
	return c, ok
}

func (a *App) Inbox() *inbox.Controller {
	return a.inbox
}

func (a *App) Profile() *profile.Controller {
	return a.profile
}

func (a *App) Dashboard() *dashboard.Aggregator {
	return a.dashboard
}
