package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout.Duration)
	assert.Equal(t, 3*time.Second, cfg.NotificationDuration.Duration)
	assert.Equal(t, 1200*time.Millisecond, cfg.RedirectDelay.Duration)
	require.NoError(t, cfg.Validate())
}

func TestRead(t *testing.T) {
	input := `
api_base_url = "https://admin.example.com"
frontend_url = "https://example.com"
timeout = "5s"
redirect_delay = "0s"
username = "admin"
`
	cfg, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "https://admin.example.com", cfg.APIBaseURL)
	assert.Equal(t, "https://example.com", cfg.FrontendURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout.Duration)
	assert.Equal(t, time.Duration(0), cfg.RedirectDelay.Duration)
	assert.Equal(t, "admin", cfg.Username)
	// не заданное в файле остается по умолчанию
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
	assert.Equal(t, 3*time.Second, cfg.NotificationDuration.Duration)
}

func TestRead_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "syntax", input: `api_base_url = `},
		{name: "bad duration", input: `timeout = "soon"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			require.Error(t, err)
		})
	}
}

func TestReadFromFile_Missing(t *testing.T) {
	_, err := ReadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvAPIBaseURL: "http://localhost:9999",
		EnvPassword:   "secret",
		EnvLogLevel:   "debug",
		EnvDB:         "",
	}
	cfg := Default()
	cfg.ApplyEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})

	assert.Equal(t, "http://localhost:9999", cfg.APIBaseURL)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "bad api url", mutate: func(c *Config) { c.APIBaseURL = "ftp://x" }},
		{name: "empty api url", mutate: func(c *Config) { c.APIBaseURL = "" }},
		{name: "bad frontend url", mutate: func(c *Config) { c.FrontendURL = "not a url" }},
		{name: "empty db", mutate: func(c *Config) { c.DBPath = "" }},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout.Duration = 0 }},
		{name: "negative delay", mutate: func(c *Config) { c.RedirectDelay.Duration = -time.Second }},
		{name: "unknown zone", mutate: func(c *Config) { c.TimeZone = "Mars/Olympus" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestLocation_DefaultZone(t *testing.T) {
	loc, err := Default().Location()
	require.NoError(t, err)
	_, offset := time.Date(2026, 1, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, 5*60*60+30*60, offset)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "folioadmin.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`api_base_url = "https://file.example.com"`), 0o600))
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("FOLIOADMIN_USERNAME=from-dotenv\n"), 0o600))

	t.Setenv(EnvUsername, "")
	require.NoError(t, os.Unsetenv(EnvUsername))
	t.Setenv(EnvAPIBaseURL, "https://env.example.com")

	cfg, err := Load(cfgPath, envPath)
	require.NoError(t, err)

	// окружение важнее файла
	assert.Equal(t, "https://env.example.com", cfg.APIBaseURL)
	assert.Equal(t, "from-dotenv", cfg.Username)
}

func TestLoad_MissingEnvFileIsFine(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "")
	cfg, err := Load("", filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`timeout = "never"`), 0o600))

	_, err := Load(path, "")
	require.Error(t, err)
}
