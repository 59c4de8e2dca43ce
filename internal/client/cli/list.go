package cli

import (
	"context"

	"github.com/iudanet/folioadmin/internal/client/dashboard"
	"github.com/iudanet/folioadmin/internal/client/ui"
)

// List renders one collection: a resource kind or messages.
func (c *Cli) List(ctx context.Context, name string) error {
	if err := listable(name); err != nil {
		return err
	}
	return c.app.Dispatch(ctx, ui.Event{Action: ui.ActionRefresh, Kind: name})
}

// Dashboard runs the full page bootstrap: session check, then every list, the
// profile and the counts.
func (c *Cli) Dashboard(ctx context.Context) error {
	if err := c.app.Start(ctx); err != nil {
		return err
	}
	c.io.Println("== Dashboard ==")
	c.term.PrintCounts(dashboard.Collections)
	return nil
}
