package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/folioadmin/internal/client/inbox"
	"github.com/iudanet/folioadmin/internal/client/ui"
)

// ViewMessage shows one message. Viewing an unread message marks it read.
// With toggle the read state is flipped from the detail view afterwards.
func (c *Cli) ViewMessage(ctx context.Context, id string, toggle bool) error {
	if err := c.app.Dispatch(ctx, ui.Event{Action: ui.ActionView, Kind: inbox.Collection, ID: id}); err != nil {
		return err
	}
	m := c.app.UI().Modal
	if !m.IsOpen() {
		return fmt.Errorf("%w: message %s", ErrNotFound, id)
	}
	if toggle {
		f := m.Form()
		m.Trigger(ctx)
		if m.IsOpen() && m.Form() == f {
			m.Close()
			return ErrNotSaved
		}
	}
	m.Close()
	return nil
}

// ToggleMessage flips the read state of a message as its card affordance does.
func (c *Cli) ToggleMessage(ctx context.Context, id string) error {
	if err := c.List(ctx, inbox.Collection); err != nil {
		return err
	}
	ev, ok := c.findToggle(id)
	if !ok {
		return fmt.Errorf("%w: message %s", ErrNotFound, id)
	}
	if !c.app.Inbox().ToggleRead(ctx, ev.ID, ev.Read, false) {
		return ErrNotSaved
	}
	return nil
}
