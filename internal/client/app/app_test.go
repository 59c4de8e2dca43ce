package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/folioadmin/internal/client/api"
	"github.com/iudanet/folioadmin/internal/client/form"
	"github.com/iudanet/folioadmin/internal/client/modal"
	"github.com/iudanet/folioadmin/internal/client/notify"
	"github.com/iudanet/folioadmin/internal/client/ui"
	"github.com/iudanet/folioadmin/internal/testutil"
)

type harness struct {
	backend *testutil.Backend
	sched   *testutil.ManualScheduler
	nav     *api.NavigatorMock
	list    *ui.ListViewMock
	counts  *ui.CountsViewMock
	profile *ui.ProfileViewMock
	app     *App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		backend: testutil.NewBackend(t),
		sched:   testutil.NewManualScheduler(),
		nav:     &api.NavigatorMock{RedirectFunc: func(target string) {}},
		list:    &ui.ListViewMock{RenderFunc: func(kind string, cards []ui.Card) {}},
		counts:  &ui.CountsViewMock{SetCountFunc: func(kind string, n int) {}},
		profile: &ui.ProfileViewMock{
			ShowProfileFunc: func(f *form.Form, image, resume string) {},
			SetImageFunc:    func(src string) {},
			SetResumeFunc:   func(href string, visible bool) {},
		},
	}
	center := notify.NewCenter(nil, h.sched, 0)
	uictx := &ui.Context{
		Gateway: api.NewClient(h.backend.URL(),
			api.WithNotifier(center),
			api.WithNavigator(h.nav),
			api.WithScheduler(h.sched),
		),
		Notifier: center,
		Modal:    modal.New(nil),
		Confirm:  &ui.ConfirmerMock{ConfirmFunc: func(prompt string) bool { return true }},
	}
	h.app = New(uictx, Views{List: h.list, Counts: h.counts, Profile: h.profile}, h.nav, nil)
	return h
}

func (h *harness) renderedKinds() map[string]int {
	out := make(map[string]int)
	for _, c := range h.list.RenderCalls() {
		out[c.Kind]++
	}
	return out
}

func TestApp_Start(t *testing.T) {
	h := newHarness(t)
	h.backend.Seed("skills", map[string]any{"id": "s1", "name": "Go"})

	require.NoError(t, h.app.Start(context.Background()))

	assert.Equal(t, map[string]int{
		"skills":     1,
		"projects":   1,
		"experience": 1,
		"blogs":      1,
		"education":  1,
		"messages":   1,
	}, h.renderedKinds())
	assert.Len(t, h.profile.ShowProfileCalls(), 1)
	assert.GreaterOrEqual(t, len(h.counts.SetCountCalls()), 6)
	assert.Empty(t, h.nav.RedirectCalls())

	// UI привязан до загрузки
	assert.True(t, h.app.dispatcher.Bound(ui.ActionEdit, "skills"))
	assert.True(t, h.app.dispatcher.Bound(ui.ActionToggle, "messages"))
}

func TestApp_StartNotAuthenticated(t *testing.T) {
	h := newHarness(t)
	h.backend.SetAuthenticated(false)

	err := h.app.Start(context.Background())

	require.ErrorIs(t, err, ErrNotAuthenticated)
	require.Len(t, h.nav.RedirectCalls(), 1)
	assert.Equal(t, api.LoginTarget, h.nav.RedirectCalls()[0].Target)
	assert.Len(t, h.backend.Requests(), 1)
	assert.Empty(t, h.list.RenderCalls())
	assert.True(t, h.app.dispatcher.Bound(ui.ActionDelete, "blogs"))
}

func TestApp_StartMalformedCheckFailsClosed(t *testing.T) {
	h := newHarness(t)
	h.backend.Override("GET /api/auth/check", testutil.Status(http.StatusOK, "<html>"))

	err := h.app.Start(context.Background())

	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Len(t, h.nav.RedirectCalls(), 1)
}

func TestApp_StartSessionExpired(t *testing.T) {
	h := newHarness(t)
	h.backend.Override("GET /api/auth/check", testutil.Status(http.StatusUnauthorized, `{"error":"Unauthorized"}`))

	err := h.app.Start(context.Background())

	require.ErrorIs(t, err, ErrSessionExpired)
	n, ok := h.app.UI().Notifier.Current()
	require.True(t, ok)
	assert.Equal(t, api.SessionExpiredMessage, n.Message)

	// редирект только после задержки
	assert.Empty(t, h.nav.RedirectCalls())
	h.sched.FireAll(false)
	assert.Len(t, h.nav.RedirectCalls(), 1)
	assert.Len(t, h.backend.Requests(), 1)
}

func TestApp_StartUnreachable(t *testing.T) {
	h := newHarness(t)
	h.backend.Override("GET /api/auth/check", testutil.Hijack())

	err := h.app.Start(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotAuthenticated)
	n, ok := h.app.UI().Notifier.Current()
	require.True(t, ok)
	assert.Equal(t, ui.MsgUnreachable, n.Message)
	assert.Empty(t, h.list.RenderCalls())
}

func TestApp_StartPartialFailure(t *testing.T) {
	h := newHarness(t)
	h.backend.Override("GET /api/projects", testutil.Hijack())

	require.NoError(t, h.app.Start(context.Background()))

	kinds := h.renderedKinds()
	assert.NotContains(t, kinds, "projects")
	assert.Len(t, kinds, 5)
	assert.Len(t, h.profile.ShowProfileCalls(), 1)
}

func TestApp_Logout(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.app.Logout(context.Background()))

	assert.Len(t, h.backend.RequestsFor(http.MethodPost, "/api/auth/logout"), 1)
	require.Len(t, h.nav.RedirectCalls(), 1)
	assert.Equal(t, api.LoginTarget, h.nav.RedirectCalls()[0].Target)
}

func TestApp_LogoutFailure(t *testing.T) {
	h := newHarness(t)
	h.backend.Override("POST /api/auth/logout", testutil.Hijack())

	require.Error(t, h.app.Logout(context.Background()))

	assert.Empty(t, h.nav.RedirectCalls())
	n, _ := h.app.UI().Notifier.Current()
	assert.Equal(t, "Couldn't log you out. Please try again.", n.Message)
}

func TestApp_Dispatch(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	require.NoError(t, h.app.Dispatch(ctx, ui.Event{Action: ui.ActionCreate, Kind: "skills"}))
	assert.True(t, h.app.UI().Modal.IsOpen())
	assert.Equal(t, "Add New Skill", h.app.UI().Modal.Title())

	require.Error(t, h.app.Dispatch(ctx, ui.Event{Action: ui.ActionToggle, Kind: "skills"}))
}

func TestApp_CountsRefresherDefaultsToAggregator(t *testing.T) {
	h := newHarness(t)
	assert.Same(t, h.app.Dashboard(), h.app.UI().Counts)
}
