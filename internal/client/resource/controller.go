package resource

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/folioadmin/internal/client/api"
	"github.com/iudanet/folioadmin/internal/client/form"
	"github.com/iudanet/folioadmin/internal/client/ui"
)

// Controller runs the list / create / edit / delete workflow for one kind.
// Failures are reported through the notification center, never returned.
type Controller struct {
	ui     *ui.Context
	view   ui.ListView
	logger *slog.Logger
	kind   Kind
}

// NewController создает контроллер для вида ресурса
func NewController(kind Kind, uictx *ui.Context, view ui.ListView) *Controller {
	return &Controller{
		kind:   kind,
		ui:     uictx,
		view:   view,
		logger: slog.Default().With("kind", kind.Name),
	}
}

// Kind returns the schema the controller works on.
func (c *Controller) Kind() Kind {
	return c.kind
}

// List fetches the whole collection and re-renders the list region. When the
// response cannot be read the previous rendering stays as it was.
func (c *Controller) List(ctx context.Context) {
	resp, err := c.ui.Gateway.Get(ctx, c.kind.Path())
	if err != nil {
		c.logger.Debug("list failed", "error", err)
		c.ui.Notifier.Error(c.kind.loadFailed())
		return
	}

	records, ok := ParseResponse(resp)
	if !ok {
		c.ui.Notifier.Error(c.kind.loadFailed())
		return
	}

	cards := make([]ui.Card, 0, len(records))
	for _, r := range records {
		cards = append(cards, c.kind.RenderCard(r))
	}
	c.view.Render(c.kind.Name, cards)
	if c.kind.CountsOnList {
		c.ui.RefreshCounts(ctx)
	}
}

// OpenCreateForm opens an empty form bound to a create action.
func (c *Controller) OpenCreateForm() {
	f := c.kind.NewForm(false)
	c.ui.Modal.Open(c.kind.CreateTitle, f, func(ctx context.Context) {
		c.Save(ctx, "", f)
	})
}

// OpenEditForm re-fetches the collection so the form shows current server state,
// then opens it bound to an update of the same id. A missing id does nothing.
func (c *Controller) OpenEditForm(ctx context.Context, id string) {
	record, ok := c.FetchOne(ctx, id)
	if !ok {
		return
	}

	f := c.kind.NewForm(true)
	f.Populate(record)
	c.ui.Modal.Open(c.kind.EditTitle, f, func(ctx context.Context) {
		c.Save(ctx, id, f)
	})
}

// Save persists f: POST when id is empty, PUT to the record otherwise. On success the
// modal showing f is closed and the list and counts are refreshed; on failure the
// modal stays open so the input is not lost. Values that break a field constraint
// are refused before any request. The result reports whether the record was saved.
func (c *Controller) Save(ctx context.Context, id string, f *form.Form) bool {
	edit := id != ""

	if violations := f.Invalid(); len(violations) > 0 {
		msgs := make([]string, 0, len(violations))
		for _, v := range violations {
			msgs = append(msgs, v.Message)
		}
		c.ui.Notifier.Error(strings.Join(msgs, " "))
		return false
	}

	body, err := c.kind.Encode(f)
	if err != nil {
		// например, выбранный файл не читается
		c.logger.Warn("failed to encode form", "error", err)
		c.ui.Notifier.Error(c.kind.saveFailed())
		return false
	}

	method, path := http.MethodPost, c.kind.Path()
	if edit {
		method, path = http.MethodPut, c.kind.ItemPath(id)
	}

	resp, err := c.ui.Gateway.Send(ctx, method, path, body)
	if err != nil {
		c.logger.Debug("save failed", "error", err)
		c.ui.Notifier.Error(ui.MsgUnreachable)
		return false
	}

	data := api.ReadJSONSafe(resp)
	if !api.Succeeded(data) {
		c.ui.Notifier.Error(api.ErrorMessage(resp, data, c.kind.saveFailed()))
		return false
	}

	c.ui.Notifier.Success(c.kind.saved(edit))
	c.ui.Modal.CloseForm(f)
	c.refresh(ctx)
	return true
}

// Remove deletes a record after explicit confirmation. Without confirmation no
// request is made. The result is false only when the delete was attempted and failed.
func (c *Controller) Remove(ctx context.Context, id string) bool {
	if !c.ui.Confirmed(c.kind.deletePrompt()) {
		return true
	}

	resp, err := c.ui.Gateway.Delete(ctx, c.kind.ItemPath(id))
	if err != nil {
		c.logger.Debug("delete failed", "error", err)
		c.ui.Notifier.Error(ui.MsgUnreachable)
		return false
	}

	data := api.ReadJSONSafe(resp)
	if !api.Succeeded(data) {
		c.ui.Notifier.Error(api.ErrorMessage(resp, data, c.kind.deleteFailed()))
		return false
	}

	c.ui.Notifier.Success(c.kind.deleted())
	c.refresh(ctx)
	return true
}

// refresh re-renders the list and the dashboard counts once.
func (c *Controller) refresh(ctx context.Context) {
	c.List(ctx)
	if !c.kind.CountsOnList {
		c.ui.RefreshCounts(ctx)
	}
}

// Bind registers the controller's card and toolbar affordances.
func (c *Controller) Bind(d *ui.Dispatcher) {
	d.Bind(ui.ActionCreate, c.kind.Name, func(ctx context.Context, ev ui.Event) {
		c.OpenCreateForm()
	})
	d.Bind(ui.ActionEdit, c.kind.Name, func(ctx context.Context, ev ui.Event) {
		c.OpenEditForm(ctx, ev.ID)
	})
	d.Bind(ui.ActionDelete, c.kind.Name, func(ctx context.Context, ev ui.Event) {
		c.Remove(ctx, ev.ID)
	})
	d.Bind(ui.ActionRefresh, c.kind.Name, func(ctx context.Context, ev ui.Event) {
		c.List(ctx)
	})
}

// FetchOne re-reads the collection and finds id. Transport failures are reported;
// an unreadable body or a missing id is a silent no-op.
func (c *Controller) FetchOne(ctx context.Context, id string) (Record, bool) {
	resp, err := c.ui.Gateway.Get(ctx, c.kind.Path())
	if err != nil {
		c.logger.Debug("fetch failed", "error", err)
		c.ui.Notifier.Error(ui.MsgUnreachable)
		return nil, false
	}

	records, ok := ParseResponse(resp)
	if !ok {
		return nil, false
	}

	record := Find(records, id)
	if record == nil {
		c.logger.Debug("record not found", "id", id)
		return nil, false
	}
	return record, true
}
