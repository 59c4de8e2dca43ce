package cli

import (
	"context"
	"fmt"
)

// Login asks for credentials and stores the new session. The username defaults to
// the configured one, then to the last successful login on this machine.
func (c *Cli) Login(ctx context.Context, username string) error {
	if username == "" {
		username = c.cfg.Username
	}
	if username == "" {
		last := c.auth.LastUsername(ctx)
		prompt := "Username: "
		if last != "" {
			prompt = fmt.Sprintf("Username [%s]: ", last)
		}
		input, err := c.io.ReadInput(prompt)
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
		if input == "" {
			input = last
		}
		username = input
	}

	// Пароль из окружения имеет приоритет над интерактивным вводом
	password := c.cfg.Password
	if password == "" {
		var err error
		if password, err = c.io.ReadPassword("Password: "); err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}

	if err := c.auth.Login(ctx, username, password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	c.io.Printf("Logged in as %s\n", username)
	return nil
}
