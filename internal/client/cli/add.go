package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/folioadmin/internal/client/ui"
)

// Add opens the create form of a resource kind, fills it and saves it.
func (c *Cli) Add(ctx context.Context, name string, opts FormOptions) error {
	kind, err := lookupKind(name)
	if err != nil {
		return err
	}
	if err := c.app.Dispatch(ctx, ui.Event{Action: ui.ActionCreate, Kind: kind.Name}); err != nil {
		return err
	}
	return c.submitModal(ctx, opts)
}

// Edit re-fetches a record, opens its edit form prefilled, fills it and saves it.
func (c *Cli) Edit(ctx context.Context, name, id string, opts FormOptions) error {
	kind, err := lookupKind(name)
	if err != nil {
		return err
	}
	if err := c.app.Dispatch(ctx, ui.Event{Action: ui.ActionEdit, Kind: kind.Name, ID: id}); err != nil {
		return err
	}
	if !c.app.UI().Modal.IsOpen() {
		return fmt.Errorf("%w: %s %s", ErrNotFound, kind.Noun, id)
	}
	return c.submitModal(ctx, opts)
}
