package cli

import (
	"context"
	"errors"

	"github.com/iudanet/folioadmin/internal/client/app"
	"github.com/iudanet/folioadmin/internal/client/dashboard"
)

// Status prints the backend, the portfolio link, the session state and the counts.
func (c *Cli) Status(ctx context.Context) error {
	c.io.Printf("Backend:   %s\n", c.cfg.APIBaseURL)
	if c.cfg.FrontendURL != "" {
		c.io.Printf("Portfolio: %s\n", c.cfg.FrontendURL)
	}

	err := c.run(ctx, func(ctx context.Context) error {
		if err := c.app.CheckSession(ctx); err != nil {
			return err
		}
		c.io.Printf("Status:    logged in as %s\n", c.auth.Username())
		c.app.Dashboard().RefreshCounts(ctx)
		c.term.PrintCounts(dashboard.Collections)
		return nil
	})
	switch {
	case errors.Is(err, ErrNotLoggedIn), errors.Is(err, app.ErrNotAuthenticated):
		c.io.Println("Status:    not logged in")
		return nil
	default:
		return err
	}
}
