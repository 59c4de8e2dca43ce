package modal

import (
	"context"
	"sync"

	"github.com/iudanet/folioadmin/internal/client/form"
)

// Action is the handler bound to the modal's primary button.
type Action func(ctx context.Context)

// Event is a user interaction with the modal chrome.
type Event string

const (
	// EventClose - явная кнопка закрытия
	EventClose Event = "close"
	// EventBackdrop - клик вне тела модального окна
	EventBackdrop Event = "backdrop"
	// EventSubmit - нативная отправка формы, всегда подавляется
	EventSubmit Event = "submit"
)

//go:generate moq -out modal_mock.go . Presenter

// Presenter renders the single modal slot.
type Presenter interface {
	Show(title string, f *form.Form)
	Hide()
}

// Controller owns the one modal slot. Opening replaces the content in place.
type Controller struct {
	presenter Presenter
	form      *form.Form
	action    Action
	title     string
	mu        sync.Mutex
	open      bool
}

// New создает контроллер модального окна
func New(p Presenter) *Controller {
	return &Controller{presenter: p}
}

// Open renders title and form into the slot and binds action to the primary button.
func (c *Controller) Open(title string, f *form.Form, action Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title = title
	c.form = f
	c.action = action
	c.open = true
	if c.presenter != nil {
		c.presenter.Show(title, f)
	}
}

// Close deactivates the modal and discards uncommitted input.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
}

// CloseForm closes the modal only while f is still the form on screen. A late result
// for a form the operator already dismissed or replaced is a no-op.
func (c *Controller) CloseForm(f *form.Form) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open || c.form != f {
		return
	}
	c.closeLocked()
}

func (c *Controller) closeLocked() {
	if !c.open {
		return
	}
	c.open = false
	c.form = nil
	c.action = nil
	c.title = ""
	if c.presenter != nil {
		c.presenter.Hide()
	}
}

// IsOpen сообщает, открыто ли окно
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Title возвращает заголовок открытого окна
func (c *Controller) Title() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.title
}

// Form returns the open form or nil.
func (c *Controller) Form() *form.Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Submit handles native form submission. It is always suppressed: persistence only
// happens through Trigger.
func (c *Controller) Submit() bool {
	return false
}

// Trigger runs the action bound to the primary button. It reports false when the
// modal is closed or has no action.
func (c *Controller) Trigger(ctx context.Context) bool {
	c.mu.Lock()
	action := c.action
	open := c.open
	c.mu.Unlock()

	if !open || action == nil {
		return false
	}
	action(ctx)
	return true
}

// HandleEvent maps chrome interactions: backdrop click and the close affordance close
// the modal, native submit is swallowed.
func (c *Controller) HandleEvent(ev Event) {
	switch ev {
	case EventClose, EventBackdrop:
		c.Close()
	case EventSubmit:
		c.Submit()
	}
}
