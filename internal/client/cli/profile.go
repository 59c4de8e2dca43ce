package cli

import (
	"context"
	"errors"

	"github.com/iudanet/folioadmin/internal/client/iocli"
	"github.com/iudanet/folioadmin/internal/client/profile"
	"github.com/iudanet/folioadmin/internal/client/ui"
)

// ShowProfile loads and prints the profile.
func (c *Cli) ShowProfile(ctx context.Context) error {
	return c.app.Dispatch(ctx, ui.Event{Action: ui.ActionRefresh, Kind: profile.Region})
}

// EditProfile loads the profile, lets the operator change it and saves it.
func (c *Cli) EditProfile(ctx context.Context, opts FormOptions) error {
	if err := c.ShowProfile(ctx); err != nil {
		return err
	}
	if !c.app.Profile().Loaded() {
		return errors.New("profile could not be loaded, nothing was changed")
	}
	f := c.app.Profile().Form()
	if err := applySet(f, opts.Set); err != nil {
		return err
	}
	if !opts.NoPrompt {
		if err := iocli.FillForm(c.io, f); err != nil {
			return err
		}
	} else if err := f.Validate(); err != nil {
		return err
	}
	if !c.app.Profile().Save(ctx) {
		return ErrNotSaved
	}
	return nil
}

// UploadImage replaces the profile image.
func (c *Cli) UploadImage(ctx context.Context, path string) error {
	if !c.app.Profile().UploadImage(ctx, path) {
		return ErrNotSaved
	}
	return nil
}

// UploadResume replaces the resume.
func (c *Cli) UploadResume(ctx context.Context, path string) error {
	if !c.app.Profile().UploadResume(ctx, path) {
		return ErrNotSaved
	}
	return nil
}
