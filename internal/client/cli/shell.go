package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iudanet/folioadmin/internal/client/dashboard"
	"github.com/iudanet/folioadmin/internal/client/inbox"
)

const shellHelp = `Commands:
  list <kind>               show skills, projects, experience, blogs, education or messages
  add <kind>                add a record
  edit <kind> <id>          edit a record
  delete <kind> <id>        delete a record
  view <id>                 read a message (marks it read)
  toggle <id>               mark a message read or unread
  profile                   show the profile
  profile edit              edit the profile
  upload-image <path>       replace the profile image
  upload-resume <path>      replace the resume
  counts                    show the dashboard counts
  help                      show this help
  quit                      leave the shell`

// Shell runs the whole dashboard bootstrap and then reads commands until quit,
// end of input or an expired session.
func (c *Cli) Shell(ctx context.Context) error {
	if err := c.Dashboard(ctx); err != nil {
		return err
	}
	c.io.Println(`Type "help" for commands.`)

	for {
		if c.client.Expired() {
			return nil
		}
		line, err := c.io.ReadInput("folioadmin> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			return nil
		}
		if err := c.exec(ctx, args); err != nil {
			c.io.Printf("Error: %v\n", err)
		}
	}
}

func (c *Cli) exec(ctx context.Context, args []string) error {
	need := func(n int) error {
		if len(args) < n+1 {
			return fmt.Errorf("%s: expected %d argument(s), see help", args[0], n)
		}
		return nil
	}

	switch args[0] {
	case "help":
		c.io.Println(shellHelp)
		return nil
	case "list", "ls":
		if err := need(1); err != nil {
			return err
		}
		return c.List(ctx, args[1])
	case "add":
		if err := need(1); err != nil {
			return err
		}
		return c.Add(ctx, args[1], FormOptions{})
	case "edit":
		if err := need(2); err != nil {
			return err
		}
		return c.Edit(ctx, args[1], args[2], FormOptions{})
	case "delete", "rm":
		if err := need(2); err != nil {
			return err
		}
		return c.Delete(ctx, args[1], args[2])
	case "view":
		if err := need(1); err != nil {
			return err
		}
		return c.ViewMessage(ctx, args[1], false)
	case "toggle":
		if err := need(1); err != nil {
			return err
		}
		return c.ToggleMessage(ctx, args[1])
	case "messages":
		return c.List(ctx, inbox.Collection)
	case "profile":
		if len(args) > 1 && args[1] == "edit" {
			return c.EditProfile(ctx, FormOptions{})
		}
		return c.ShowProfile(ctx)
	case "upload-image":
		if err := need(1); err != nil {
			return err
		}
		return c.UploadImage(ctx, args[1])
	case "upload-resume":
		if err := need(1); err != nil {
			return err
		}
		return c.UploadResume(ctx, args[1])
	case "counts", "dashboard":
		c.app.Dashboard().RefreshCounts(ctx)
		c.term.PrintCounts(dashboard.Collections)
		return nil
	default:
		return fmt.Errorf("unknown command %q, type help", args[0])
	}
}
