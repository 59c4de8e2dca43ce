package cli

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/folioadmin/internal/client/api"
	"github.com/iudanet/folioadmin/internal/client/app"
	"github.com/iudanet/folioadmin/internal/client/form"
	"github.com/iudanet/folioadmin/internal/client/iocli"
	"github.com/iudanet/folioadmin/internal/config"
	"github.com/iudanet/folioadmin/internal/testutil"
)

type env struct {
	backend *testutil.Backend
	dir     string
	dbPath  string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	for _, key := range []string{
		config.EnvAPIBaseURL, config.EnvFrontendURL, config.EnvDB, config.EnvUsername,
		config.EnvPassword, config.EnvTimeZone, config.EnvLogLevel,
	} {
		t.Setenv(key, "")
	}
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := t.TempDir()
	e := &env{
		backend: testutil.NewBackend(t),
		dir:     dir,
		dbPath:  filepath.Join(dir, "folioadmin.db"),
	}
	e.backend.RequireSession("admin", "pw")
	return e
}

// run executes one CLI invocation with input as the operator's keystrokes.
func (e *env) run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand(BuildInfo{Version: "test", BuildDate: "today", GitCommit: "abc"},
		iocli.NewStream(strings.NewReader(input), &out))
	root.SetArgs(append([]string{
		"--api", e.backend.URL(),
		"--db", e.dbPath,
		"--env-file", filepath.Join(e.dir, ".env"),
		"--log-level", "ERROR",
	}, args...))
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (e *env) login(t *testing.T) {
	t.Helper()
	out, err := e.run(t, "admin\npw\n", "login")
	require.NoError(t, err)
	require.Contains(t, out, "Logged in as admin")
}

func TestLoginAndList(t *testing.T) {
	e := newEnv(t)
	e.backend.Seed("skills", map[string]any{"id": "s1", "name": "Go", "category": "Backend", "level": 90})

	e.login(t)

	// сессия из bbolt переживает процесс
	out, err := e.run(t, "", "list", "skills")
	require.NoError(t, err)
	assert.Contains(t, out, "== Skills (1) ==")
	assert.Contains(t, out, "- [s1] Go")
}

func TestLogin_UsesLastUsername(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	out, err := e.run(t, "\npw\n", "login")
	require.NoError(t, err)
	assert.Contains(t, out, "Username [admin]: ")
	assert.Contains(t, out, "Logged in as admin")
}

func TestLogin_Rejected(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "admin\nwrong\n", "login")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")

	_, err = e.run(t, "", "list", "skills")
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestList_NotLoggedIn(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "", "list", "skills")
	require.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Empty(t, e.backend.Requests())
}

func TestList_UnknownKind(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	_, err := e.run(t, "", "list", "hobbies")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skills, projects, experience, blogs, education")
}

func TestAdd_NoPrompt(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	out, err := e.run(t, "", "add", "skills",
		"--set", "name=Go", "--set", "category=Backend", "--set", "level=90", "--no-prompt")
	require.NoError(t, err)
	assert.Contains(t, out, "✔ Skill added.")

	posts := e.backend.RequestsFor(http.MethodPost, "/api/skills")
	require.Len(t, posts, 1)
	assert.Equal(t, map[string]any{"name": "Go", "category": "Backend", "level": float64(90)}, posts[0].JSON())
	assert.Len(t, e.backend.Collection("skills"), 1)
}

func TestAdd_Interactive(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	out, err := e.run(t, "Go\nBackend\n85\n", "add", "skills")
	require.NoError(t, err)
	assert.Contains(t, out, "── Add New Skill ──")
	assert.Equal(t, "Go", e.backend.Collection("skills")[0]["name"])
}

func TestAdd_MissingRequired(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	_, err := e.run(t, "", "add", "skills", "--set", "name=Go", "--no-prompt")
	require.ErrorIs(t, err, iocli.ErrRequired)
	assert.Empty(t, e.backend.RequestsFor(http.MethodPost, "/api/skills"))
}

func TestAdd_Rejected(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	e.backend.Override("POST /api/skills", testutil.Status(http.StatusBadRequest, `{"success":false,"error":"Name taken"}`))

	out, err := e.run(t, "", "add", "skills",
		"--set", "name=Go", "--set", "category=Backend", "--set", "level=90", "--no-prompt")
	require.ErrorIs(t, err, ErrNotSaved)
	assert.Contains(t, out, "✖ Name taken")
}

func TestAdd_OutOfRange(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	_, err := e.run(t, "", "add", "skills",
		"--set", "name=Go", "--set", "category=Backend", "--set", "level=150", "--no-prompt")
	require.ErrorIs(t, err, form.ErrInvalid)
	assert.Contains(t, err.Error(), "Level (%) must be between 0 and 100.")
	assert.Empty(t, e.backend.RequestsFor(http.MethodPost, "/api/skills"))
}

func TestAdd_WrongFileType(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	path := filepath.Join(e.dir, "cover.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o600))

	_, err := e.run(t, "", "add", "blogs",
		"--set", "title=Hello", "--set", "content=Body", "--set", "image="+path, "--no-prompt")
	require.ErrorIs(t, err, form.ErrInvalid)
	assert.Empty(t, e.backend.RequestsFor(http.MethodPost, "/api/blogs"))
}

func TestEdit(t *testing.T) {
	e := newEnv(t)
	e.backend.Seed("skills", map[string]any{"id": "s1", "name": "Go", "category": "Backend", "level": 90})
	e.login(t)

	_, err := e.run(t, "", "edit", "skills", "s1", "--set", "level=95", "--no-prompt")
	require.NoError(t, err)

	puts := e.backend.RequestsFor(http.MethodPut, "/api/skills/s1")
	require.Len(t, puts, 1)
	assert.Equal(t, map[string]any{"name": "Go", "category": "Backend", "level": float64(95)}, puts[0].JSON())
}

func TestEdit_Missing(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	_, err := e.run(t, "", "edit", "skills", "ghost", "--no-prompt")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	e := newEnv(t)
	e.backend.Seed("skills", map[string]any{"id": "s1", "name": "Go"})
	e.login(t)

	out, err := e.run(t, "n\n", "delete", "skills", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, "Delete this skill? This can't be undone. [y/N]: ")
	assert.Empty(t, e.backend.RequestsFor(http.MethodDelete, "/api/skills/s1"))

	_, err = e.run(t, "", "--yes", "delete", "skills", "s1")
	require.NoError(t, err)
	assert.Empty(t, e.backend.Collection("skills"))
}

func TestDelete_Rejected(t *testing.T) {
	e := newEnv(t)
	e.backend.Seed("skills", map[string]any{"id": "s1", "name": "Go"})
	e.login(t)
	e.backend.Override("DELETE /api/skills/s1", testutil.Status(http.StatusConflict, `{"success":false,"error":"locked"}`))

	out, err := e.run(t, "", "--yes", "delete", "skills", "s1")
	require.ErrorIs(t, err, ErrNotSaved)
	assert.Contains(t, out, "✖ locked")
	assert.Len(t, e.backend.Collection("skills"), 1)
}

func TestDelete_MessageRejected(t *testing.T) {
	e := newEnv(t)
	e.backend.Seed("messages", map[string]any{"id": "m1", "read": false})
	e.login(t)
	e.backend.Override("DELETE /api/messages/m1", testutil.Status(http.StatusInternalServerError, ""))

	out, err := e.run(t, "", "--yes", "delete", "messages", "m1")
	require.ErrorIs(t, err, ErrNotSaved)
	assert.Contains(t, out, "✖ Couldn't delete that message. Please try again. (HTTP 500)")
}

func TestMessages_ViewMarksRead(t *testing.T) {
	e := newEnv(t)
	e.backend.Seed("messages", map[string]any{
		"id": "m1", "name": "Asha", "email": "asha@example.com",
		"subject": "Hello", "message": "Loved it", "read": false,
	})
	e.login(t)

	out, err := e.run(t, "", "messages", "view", "m1")
	require.NoError(t, err)
	assert.Contains(t, out, "── Message ──")
	assert.Contains(t, out, "Loved it")
	assert.Equal(t, true, e.backend.Collection("messages")[0]["read"])
}

func TestMessages_Toggle(t *testing.T) {
	e := newEnv(t)
	e.backend.Seed("messages", map[string]any{"id": "m1", "read": true})
	e.login(t)

	out, err := e.run(t, "", "messages", "toggle", "m1")
	require.NoError(t, err)
	assert.Contains(t, out, "✔ Message updated.")
	assert.Equal(t, false, e.backend.Collection("messages")[0]["read"])

	_, err = e.run(t, "", "messages", "toggle", "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMessages_ToggleRejected(t *testing.T) {
	e := newEnv(t)
	e.backend.Seed("messages", map[string]any{"id": "m1", "read": true})
	e.login(t)
	e.backend.Override("PUT /api/messages/m1", testutil.Status(http.StatusConflict, `{"success":false,"error":"locked"}`))

	out, err := e.run(t, "", "messages", "toggle", "m1")
	require.ErrorIs(t, err, ErrNotSaved)
	assert.Contains(t, out, "✖ locked")
	assert.Equal(t, true, e.backend.Collection("messages")[0]["read"])

	_, err = e.run(t, "", "messages", "view", "m1", "--toggle")
	require.ErrorIs(t, err, ErrNotSaved)
}

func TestProfile_Edit(t *testing.T) {
	e := newEnv(t)
	e.backend.SetProfile(map[string]any{"name": "Ravi", "role": "Engineer"})
	e.login(t)

	out, err := e.run(t, "", "profile", "edit", "--set", "bio=Builds things", "--no-prompt")
	require.NoError(t, err)
	assert.Contains(t, out, "✔ Profile updated.")
	assert.Equal(t, "Builds things", e.backend.Profile()["bio"])
	assert.Equal(t, "Ravi", e.backend.Profile()["name"])
}

func TestProfile_UploadResume(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	path := filepath.Join(e.dir, "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o600))

	out, err := e.run(t, "", "profile", "upload-resume", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Resume:    "+e.backend.URL()+"/uploads/cv.pdf")
	assert.Contains(t, out, "✔ Resume uploaded.")
}

func TestProfile_EditRejected(t *testing.T) {
	e := newEnv(t)
	e.backend.SetProfile(map[string]any{"name": "Ravi"})
	e.login(t)
	e.backend.Override("PUT /api/profile", testutil.Status(http.StatusBadRequest, `{"success":false,"error":"Bio too long"}`))

	out, err := e.run(t, "", "profile", "edit", "--set", "bio=x", "--no-prompt")
	require.ErrorIs(t, err, ErrNotSaved)
	assert.Contains(t, out, "✖ Bio too long")
}

func TestProfile_UploadMissingFile(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	out, err := e.run(t, "", "profile", "upload-image", filepath.Join(e.dir, "missing.png"))
	require.ErrorIs(t, err, ErrNotSaved)
	assert.Contains(t, out, "✖ Couldn't upload that image. Please try again.")
	assert.Empty(t, e.backend.RequestsFor(http.MethodPost, "/api/profile/image"))

	_, err = e.run(t, "", "profile", "upload-resume", filepath.Join(e.dir, "missing.pdf"))
	require.ErrorIs(t, err, ErrNotSaved)
}

func TestSessionExpired(t *testing.T) {
	e := newEnv(t)
	cfgPath := filepath.Join(e.dir, "folioadmin.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`redirect_delay = "10ms"`), 0o600))
	e.login(t)
	e.backend.ExpireSession()

	out, err := e.run(t, "", "--config", cfgPath, "list", "skills")
	require.ErrorIs(t, err, app.ErrSessionExpired)
	assert.Contains(t, out, api.SessionExpiredMessage)
	assert.Contains(t, out, "folioadmin login")

	// локальная сессия забыта
	_, err = e.run(t, "", "list", "skills")
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestStatus(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Status:    not logged in")

	e.backend.Seed("messages", map[string]any{"id": "m1", "read": false})
	e.login(t)
	out, err = e.run(t, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Status:    logged in as admin")
	assert.Contains(t, out, "Unread messages  1")
}

func TestLogout(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	out, err := e.run(t, "", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out.")
	assert.Len(t, e.backend.RequestsFor(http.MethodPost, "/api/auth/logout"), 1)

	_, err = e.run(t, "", "list", "skills")
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestDashboard(t *testing.T) {
	e := newEnv(t)
	e.backend.Seed("blogs", map[string]any{"id": "b1", "title": "Hi"})
	e.login(t)

	out, err := e.run(t, "", "dashboard")
	require.NoError(t, err)
	for _, heading := range []string{"== Skills (0) ==", "== Blogs (1) ==", "== Messages (0) ==", "== Profile ==", "== Dashboard =="} {
		assert.Contains(t, out, heading)
	}
}

func TestShell(t *testing.T) {
	e := newEnv(t)
	e.backend.Seed("skills", map[string]any{"id": "s1", "name": "Go"})
	e.login(t)

	out, err := e.run(t, "help\nlist skills\nbogus\nedit skills\nquit\n", "shell")
	require.NoError(t, err)
	assert.Contains(t, out, `Type "help" for commands.`)
	assert.Contains(t, out, "upload-resume <path>")
	assert.Contains(t, out, `Error: unknown command "bogus"`)
	assert.Contains(t, out, "Error: edit: expected 2 argument(s)")
}

func TestVersion(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    test")
	assert.Contains(t, out, "Git Commit: abc")
}
