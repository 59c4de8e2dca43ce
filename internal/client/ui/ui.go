package ui

import (
	"context"

	"github.com/iudanet/folioadmin/internal/client/api"
	"github.com/iudanet/folioadmin/internal/client/form"
	"github.com/iudanet/folioadmin/internal/client/modal"
	"github.com/iudanet/folioadmin/internal/client/notify"
)

// MsgUnreachable is shown when a request never reached the backend.
const MsgUnreachable = "Couldn't reach the server. Please try again."

// Tone is the colour class of a badge.
type Tone string

const (
	TonePrimary Tone = "primary"
	ToneSuccess Tone = "success"
	ToneGray    Tone = "gray"
)

// Badge - короткая метка на карточке
type Badge struct {
	Text string
	Tone Tone
}

// Button is an affordance on a card. Its Event holds the plain data attributes
// (action, kind, id) that the dispatcher routes on.
type Button struct {
	Label string
	Event Event
}

// Card is the summary of one record in a list region.
type Card struct {
	ID      string
	Kind    string
	Title   string
	Lines   []string
	Badges  []Badge
	Buttons []Button
}

//go:generate moq -out ui_mock.go . ListView CountsView ProfileView Confirmer CountsRefresher

// ListView renders one list region per resource kind. An empty slice is the
// "no items" state.
type ListView interface {
	Render(kind string, cards []Card)
}

// CountsView renders dashboard summary counts.
type CountsView interface {
	SetCount(kind string, n int)
}

// ProfileView renders the profile form and its two previews. ShowProfile draws the
// whole profile at once; image and resume are absolute URLs, "" when not set.
// SetImage and SetResume patch only a preview after an upload.
type ProfileView interface {
	ShowProfile(f *form.Form, image, resume string)
	SetImage(src string)
	SetResume(href string, visible bool)
}

// Confirmer asks the operator to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// CountsRefresher обновляет счетчики дашборда после изменений
type CountsRefresher interface {
	RefreshCounts(ctx context.Context)
}

// Context is the shared UI state handed to every controller. It is created once at
// bootstrap and lives for the whole process.
type Context struct {
	Gateway  *api.Client
	Notifier *notify.Center
	Modal    *modal.Controller
	Confirm  Confirmer
	Counts   CountsRefresher
}

// RefreshCounts is a nil-safe shortcut to Counts.RefreshCounts.
func (c *Context) RefreshCounts(ctx context.Context) {
	if c.Counts != nil {
		c.Counts.RefreshCounts(ctx)
	}
}

// Confirmed is a nil-safe shortcut: without a Confirmer nothing is confirmed.
func (c *Context) Confirmed(prompt string) bool {
	if c.Confirm == nil {
		return false
	}
	return c.Confirm.Confirm(prompt)
}
