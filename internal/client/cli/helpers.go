package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/folioadmin/internal/client/form"
	"github.com/iudanet/folioadmin/internal/client/inbox"
	"github.com/iudanet/folioadmin/internal/client/iocli"
	"github.com/iudanet/folioadmin/internal/client/resource"
	"github.com/iudanet/folioadmin/internal/client/ui"
)

var (
	// ErrNotSaved is returned when a change was attempted and failed; the reason was already shown.
	ErrNotSaved = errors.New("changes were not saved")
	// ErrNotFound is returned when a record id does not exist.
	ErrNotFound = errors.New("record not found")
)

// FormOptions control how a modal form is filled before it is submitted.
type FormOptions struct {
	// Set holds name=value pairs applied before prompting.
	Set []string
	// NoPrompt submits the form with only the Set values.
	NoPrompt bool
}

// lookupKind validates a resource kind argument.
func lookupKind(name string) (resource.Kind, error) {
	kind, ok := resource.Lookup(name)
	if !ok {
		return resource.Kind{}, fmt.Errorf("unknown resource %q. Use one of: %s", name, strings.Join(resource.Names(), ", "))
	}
	return kind, nil
}

// listable reports whether name can be listed: a resource kind or messages.
func listable(name string) error {
	if name == inbox.Collection {
		return nil
	}
	_, err := lookupKind(name)
	return err
}

// applySet applies name=value pairs to f. Checkbox fields take true/false,
// file fields take a path.
func applySet(f *form.Form, pairs []string) error {
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q, expected name=value", pair)
		}
		fld, ok := f.Field(name)
		if !ok {
			return fmt.Errorf("unknown field %q", name)
		}
		switch fld.Input {
		case form.InputCheckbox:
			f.SetChecked(name, value == "true" || value == "y" || value == "yes" || value == "1")
		case form.InputFile:
			f.SetFile(name, value)
		default:
			f.Set(name, value)
		}
	}
	return nil
}

// submitModal fills the open modal form and triggers its primary action. The modal
// stays open when the backend rejected the input.
func (c *Cli) submitModal(ctx context.Context, opts FormOptions) error {
	m := c.app.UI().Modal
	f := m.Form()
	if !m.IsOpen() || f == nil {
		return ErrNotFound
	}
	if err := applySet(f, opts.Set); err != nil {
		m.Close()
		return err
	}
	if !opts.NoPrompt {
		if err := iocli.FillForm(c.io, f); err != nil {
			m.Close()
			return err
		}
	} else if missing := f.Missing(); len(missing) > 0 {
		m.Close()
		return fmt.Errorf("%w: %s", iocli.ErrRequired, strings.Join(missing, ", "))
	} else if err := f.Validate(); err != nil {
		m.Close()
		return err
	}

	m.Trigger(ctx)
	if m.IsOpen() && m.Form() == f {
		m.Close()
		return ErrNotSaved
	}
	return nil
}

// findToggle returns the toggle event of a rendered message card.
func (c *Cli) findToggle(id string) (ui.Event, bool) {
	for _, card := range c.term.Cards(inbox.Collection) {
		if card.ID != id {
			continue
		}
		for _, btn := range card.Buttons {
			if btn.Event.Action == ui.ActionToggle {
				return btn.Event, true
			}
		}
	}
	return ui.Event{}, false
}
