package inbox

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/folioadmin/internal/client/api"
	"github.com/iudanet/folioadmin/internal/client/form"
	"github.com/iudanet/folioadmin/internal/client/resource"
	"github.com/iudanet/folioadmin/internal/client/ui"
	pkgapi "github.com/iudanet/folioadmin/pkg/api"
)

const (
	// Collection is the messages collection name and list region.
	Collection = "messages"

	// PreviewLen is the number of runes of the message body shown on a card.
	PreviewLen = 90

	// DefaultZone is the zone message timestamps are shown in.
	DefaultZone = "Asia/Kolkata"

	// TimestampLayout matches the en-IN short date-time format.
	TimestampLayout = "02 Jan 2006, 03:04 pm"
)

const (
	msgUpdated      = "Message updated."
	msgUpdateFailed = "Couldn't update that message. Please try again."
	noSubject       = "No subject"
	detailTitle     = "Message"
)

// Controller is the message inbox: read-only records that can only be viewed,
// marked read or unread, and deleted. Listing and deleting go through a
// resource controller over the messages collection.
type Controller struct {
	ui      *ui.Context
	records *resource.Controller
	loc     *time.Location
	logger  *slog.Logger
}

// NewController создает контроллер входящих сообщений.
// loc задает часовой пояс для дат, nil означает Asia/Kolkata.
func NewController(uictx *ui.Context, view ui.ListView, loc *time.Location) *Controller {
	if loc == nil {
		loc = DefaultLocation()
	}
	c := &Controller{
		ui:     uictx,
		loc:    loc,
		logger: slog.Default().With("kind", Collection),
	}
	c.records = resource.NewController(resource.Kind{
		Name:         Collection,
		Label:        "Message",
		Noun:         "message",
		Plural:       "messages",
		CountsOnList: true,
		Card:         c.Card,
	}, uictx, view)
	return c
}

// DefaultLocation returns Asia/Kolkata, or a fixed +05:30 zone when the tz
// database is not available.
func DefaultLocation() *time.Location {
	loc, err := time.LoadLocation(DefaultZone)
	if err != nil {
		return time.FixedZone("IST", 5*60*60+30*60)
	}
	return loc
}

// List fetches the inbox, renders it and then refreshes the dashboard counts,
// since the unread count may have changed.
func (c *Controller) List(ctx context.Context) {
	c.records.List(ctx)
}

// View opens the detail modal of a message. An unread message is first marked
// read with a silent toggle, so the modal opens already showing it as read.
// Viewing a read message makes no update call.
func (c *Controller) View(ctx context.Context, id string) {
	record, ok := c.records.FetchOne(ctx, id)
	if !ok {
		return
	}

	read := record.Bool("read")
	if !read {
		read = c.toggle(ctx, id, false, true, nil)
	}

	f := DetailForm(record, read)
	c.ui.Modal.Open(detailTitle, f, func(ctx context.Context) {
		c.toggle(ctx, id, read, false, f)
	})
}

// ToggleRead flips the read flag. Unless silent, success is announced and the
// modal is closed; the inbox is then re-rendered. The result reports whether the
// backend accepted the update.
func (c *Controller) ToggleRead(ctx context.Context, id string, current, silent bool) bool {
	return c.toggle(ctx, id, current, silent, nil) != current
}

// toggle reports the read state after the call. When f is set only the modal
// still showing f is closed.
func (c *Controller) toggle(ctx context.Context, id string, current, silent bool, f *form.Form) bool {
	path := c.records.Kind().ItemPath(id)
	resp, err := c.ui.Gateway.SendJSON(ctx, http.MethodPut, path, pkgapi.ReadToggleRequest{Read: !current})
	if err != nil {
		c.logger.Debug("toggle failed", "error", err)
		c.ui.Notifier.Error(ui.MsgUnreachable)
		return current
	}

	data := api.ReadJSONSafe(resp)
	if !api.Succeeded(data) {
		c.ui.Notifier.Error(api.ErrorMessage(resp, data, msgUpdateFailed))
		return current
	}

	if !silent {
		c.ui.Notifier.Success(msgUpdated)
		if f != nil {
			c.ui.Modal.CloseForm(f)
		} else {
			c.ui.Modal.Close()
		}
	}
	c.List(ctx)
	return !current
}

// Remove deletes a message after confirmation. The result is false only when
// the delete was attempted and failed.
func (c *Controller) Remove(ctx context.Context, id string) bool {
	return c.records.Remove(ctx, id)
}

// Bind registers the inbox affordances.
func (c *Controller) Bind(d *ui.Dispatcher) {
	d.Bind(ui.ActionView, Collection, func(ctx context.Context, ev ui.Event) {
		c.View(ctx, ev.ID)
	})
	d.Bind(ui.ActionToggle, Collection, func(ctx context.Context, ev ui.Event) {
		c.ToggleRead(ctx, ev.ID, ev.Read, false)
	})
	d.Bind(ui.ActionDelete, Collection, func(ctx context.Context, ev ui.Event) {
		c.Remove(ctx, ev.ID)
	})
	d.Bind(ui.ActionRefresh, Collection, func(ctx context.Context, ev ui.Event) {
		c.List(ctx)
	})
}

// Card renders the inbox summary of one message.
func (c *Controller) Card(r resource.Record) ui.Card {
	read := r.Bool("read")
	status := ui.Badge{Text: "New", Tone: ui.ToneSuccess}
	toggle := "✅"
	if read {
		status = ui.Badge{Text: "Read", Tone: ui.ToneGray}
		toggle = "📩"
	}

	id := r.ID()
	return ui.Card{
		ID:    id,
		Kind:  Collection,
		Title: subject(r),
		Lines: []string{
			r.String("name") + " • " + r.String("email"),
			Preview(r.String("message")),
		},
		Badges: []ui.Badge{
			status,
			{Text: FormatTimestamp(r["createdAt"], c.loc), Tone: ui.ToneGray},
		},
		Buttons: []ui.Button{
			{Label: "👁️", Event: ui.Event{Action: ui.ActionView, Kind: Collection, ID: id}},
			{Label: toggle, Event: ui.Event{Action: ui.ActionToggle, Kind: Collection, ID: id, Read: read}},
			{Label: "🗑️", Event: ui.Event{Action: ui.ActionDelete, Kind: Collection, ID: id}},
		},
	}
}

// DetailForm builds the read-only message view. Its submit label offers the
// opposite of the read state it was opened with.
func DetailForm(r resource.Record, read bool) *form.Form {
	submit := "Mark as Read"
	if read {
		submit = "Mark as Unread"
	}
	f := form.New([]form.Field{
		{Name: "from", Label: "From", Input: form.InputStatic},
		{Name: "subject", Label: "Subject", Input: form.InputStatic},
		{Name: "message", Label: "Message", Input: form.InputStatic},
	}, submit)
	f.Set("from", fmt.Sprintf("%s (%s)", r.String("name"), r.String("email")))
	f.Set("subject", subject(r))
	f.Set("message", r.String("message"))
	return f
}

// Preview shortens a message body to PreviewLen runes, adding an ellipsis when cut.
func Preview(s string) string {
	runes := []rune(s)
	if len(runes) <= PreviewLen {
		return s
	}
	return string(runes[:PreviewLen]) + "…"
}

// FormatTimestamp formats a createdAt value (RFC 3339 string or epoch
// milliseconds) in loc. Unparseable values yield "".
func FormatTimestamp(v any, loc *time.Location) string {
	t, ok := parseTimestamp(v)
	if !ok {
		return ""
	}
	if loc == nil {
		loc = DefaultLocation()
	}
	return t.In(loc).Format(TimestampLayout)
}

func parseTimestamp(v any) (time.Time, bool) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"} {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts, true
			}
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.UnixMilli(ms), true
		}
		return time.Time{}, false
	case float64:
		return time.UnixMilli(int64(t)), true
	default:
		return time.Time{}, false
	}
}

func subject(r resource.Record) string {
	if s := r.String("subject"); s != "" {
		return s
	}
	return noSubject
}
