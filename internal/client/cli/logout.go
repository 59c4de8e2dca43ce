package cli

import (
	"context"
	"errors"
	"fmt"
)

// Logout ends the backend session and removes the local one.
func (c *Cli) Logout(ctx context.Context) error {
	if err := c.resume(ctx); err != nil {
		if errors.Is(err, ErrNotLoggedIn) {
			c.io.Println("Not logged in.")
			return nil
		}
		return err
	}

	if err := c.app.Logout(ctx); err != nil {
		return err
	}
	if err := c.auth.Forget(ctx); err != nil {
		return fmt.Errorf("failed to clear local session: %w", err)
	}
	c.io.Println("Logged out.")
	return nil
}
