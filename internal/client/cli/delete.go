package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/folioadmin/internal/client/inbox"
)

// Delete removes a record after confirmation. Messages are accepted too.
// A declined confirmation is not an error.
func (c *Cli) Delete(ctx context.Context, name, id string) error {
	if err := listable(name); err != nil {
		return err
	}

	var ok bool
	if name == inbox.Collection {
		ok = c.app.Inbox().Remove(ctx, id)
	} else {
		ctrl, found := c.app.Resource(name)
		if !found {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		ok = ctrl.Remove(ctx, id)
	}
	if !ok {
		return ErrNotSaved
	}
	return nil
}
