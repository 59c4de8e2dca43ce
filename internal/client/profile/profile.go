package profile

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/iudanet/folioadmin/internal/client/api"
	"github.com/iudanet/folioadmin/internal/client/form"
	"github.com/iudanet/folioadmin/internal/client/ui"
	pkgapi "github.com/iudanet/folioadmin/pkg/api"
)

// Region is the name of the profile region in the dispatch table.
const Region = "profile"

const (
	msgLoadFailed    = "Couldn't load your profile right now. Please refresh and try again."
	msgUpdated       = "Profile updated."
	msgUpdateFailed  = "Couldn't update your profile. Please try again."
	msgImageUpdated  = "Profile image updated."
	msgImageFailed   = "Couldn't upload that image. Please try again."
	msgResumeUpdated = "Resume uploaded."
	msgResumeFailed  = "Couldn't upload the resume. Please try again."
)

// Fields is the profile form schema. image and resume are replaced only through uploads.
var Fields = []form.Field{
	{Name: "name", Label: "Name", Input: form.InputText},
	{Name: "role", Label: "Role", Input: form.InputText},
	{Name: "bio", Label: "Bio", Input: form.InputTextarea},
	{Name: "email", Label: "Email", Input: form.InputText},
	{Name: "phone", Label: "Phone", Input: form.InputText},
	{Name: "location", Label: "Location", Input: form.InputText},
	{Name: "github", Label: "GitHub", Input: form.InputText},
	{Name: "linkedin", Label: "LinkedIn", Input: form.InputText},
}

// Controller manages the singleton profile: no id, no delete, two uploads.
type Controller struct {
	ui     *ui.Context
	view   ui.ProfileView
	form   *form.Form
	logger *slog.Logger
	mu     sync.Mutex
	loaded bool
}

// NewController создает контроллер профиля
func NewController(uictx *ui.Context, view ui.ProfileView) *Controller {
	return &Controller{
		ui:     uictx,
		view:   view,
		form:   form.New(Fields, "Save Profile"),
		logger: slog.Default().With("kind", Region),
	}
}

// Form returns the profile form the operator edits before Save.
func (c *Controller) Form() *form.Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Loaded reports whether the form holds the server profile. Saving an unloaded
// form would blank every field.
func (c *Controller) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Load fetches the profile and fills the form and both previews.
func (c *Controller) Load(ctx context.Context) {
	resp, err := c.ui.Gateway.Get(ctx, "/api/profile")
	if err != nil {
		c.logger.Debug("load failed", "error", err)
		c.ui.Notifier.Error(msgLoadFailed)
		return
	}

	var p pkgapi.Profile
	if !api.DecodeJSONSafe(resp, &p) {
		c.ui.Notifier.Error(msgLoadFailed)
		return
	}

	f := form.New(Fields, "Save Profile")
	f.Populate(map[string]any{
		"name":     p.Name,
		"role":     p.Role,
		"bio":      p.Bio,
		"email":    p.Email,
		"phone":    p.Phone,
		"location": p.Location,
		"github":   p.GitHub,
		"linkedin": p.LinkedIn,
	})

	c.mu.Lock()
	c.form = f
	c.loaded = true
	c.mu.Unlock()

	var image, resume string
	if p.Image != "" {
		image = c.ui.Gateway.URL(p.Image)
	}
	if p.Resume != "" {
		resume = c.ui.Gateway.URL(p.Resume)
	}
	c.view.ShowProfile(f, image, resume)
}

// Save PUTs the whole profile form as JSON and reports whether the backend accepted it.
func (c *Controller) Save(ctx context.Context) bool {
	f := c.Form()
	p := pkgapi.Profile{
		Name:     f.Value("name"),
		Role:     f.Value("role"),
		Bio:      f.Value("bio"),
		Email:    f.Value("email"),
		Phone:    f.Value("phone"),
		Location: f.Value("location"),
		GitHub:   f.Value("github"),
		LinkedIn: f.Value("linkedin"),
	}

	resp, err := c.ui.Gateway.SendJSON(ctx, http.MethodPut, "/api/profile", p)
	if err != nil {
		c.logger.Debug("save failed", "error", err)
		c.ui.Notifier.Error(ui.MsgUnreachable)
		return false
	}

	data := api.ReadJSONSafe(resp)
	if !api.Succeeded(data) {
		c.ui.Notifier.Error(api.ErrorMessage(resp, data, msgUpdateFailed))
		return false
	}
	c.ui.Notifier.Success(msgUpdated)
	return true
}

// UploadImage replaces the profile image. Only the preview is patched on success.
// An empty path means no file was chosen and does nothing. The result reports
// whether a file was uploaded.
func (c *Controller) UploadImage(ctx context.Context, path string) bool {
	result, ok := c.upload(ctx, "image", path, msgImageFailed)
	if !ok {
		return false
	}
	c.view.SetImage(c.ui.Gateway.URL(result.ImagePath))
	c.ui.Notifier.Success(msgImageUpdated)
	return true
}

// UploadResume replaces the resume and shows its link.
func (c *Controller) UploadResume(ctx context.Context, path string) bool {
	result, ok := c.upload(ctx, "resume", path, msgResumeFailed)
	if !ok {
		return false
	}
	c.view.SetResume(c.ui.Gateway.URL(result.ResumePath), true)
	c.ui.Notifier.Success(msgResumeUpdated)
	return true
}

// Bind registers the profile affordances.
func (c *Controller) Bind(d *ui.Dispatcher) {
	d.Bind(ui.ActionRefresh, Region, func(ctx context.Context, ev ui.Event) {
		c.Load(ctx)
	})
	d.Bind(ui.ActionEdit, Region, func(ctx context.Context, ev ui.Event) {
		c.Save(ctx)
	})
}

func (c *Controller) upload(ctx context.Context, field, path, fallback string) (pkgapi.UploadResponse, bool) {
	var result pkgapi.UploadResponse
	if path == "" {
		return result, false
	}

	body, err := form.FileMultipart(field, path)
	if err != nil {
		c.logger.Warn("failed to read upload", "field", field, "error", err)
		c.ui.Notifier.Error(fallback)
		return result, false
	}

	resp, err := c.ui.Gateway.Send(ctx, http.MethodPost, "/api/profile/"+field, body)
	if err != nil {
		c.logger.Debug("upload failed", "field", field, "error", err)
		c.ui.Notifier.Error(ui.MsgUnreachable)
		return result, false
	}

	data := api.ReadJSONSafe(resp)
	if !api.Succeeded(data) || !api.DecodeJSONSafe(resp, &result) {
		c.ui.Notifier.Error(api.ErrorMessage(resp, data, fallback))
		return result, false
	}
	return result, true
}
