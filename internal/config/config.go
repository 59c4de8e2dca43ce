package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/iudanet/folioadmin/internal/validation"
)

// Переменные окружения, перекрывающие файл конфигурации
const (
	EnvAPIBaseURL  = "FOLIOADMIN_API_BASE_URL"
	EnvFrontendURL = "FOLIOADMIN_FRONTEND_URL"
	EnvDB          = "FOLIOADMIN_DB"
	EnvUsername    = "FOLIOADMIN_USERNAME"
	EnvPassword    = "FOLIOADMIN_PASSWORD"
	EnvTimeZone    = "FOLIOADMIN_TIME_ZONE"
	EnvLogLevel    = "LOG_LEVEL"
)

// Defaults
const (
	DefaultAPIBaseURL           = "http://127.0.0.1:3000"
	DefaultDBPath               = "folioadmin.db"
	DefaultLogLevel             = "INFO"
	DefaultTimeZone             = "Asia/Kolkata"
	DefaultTimeout              = 30 * time.Second
	DefaultNotificationDuration = 3 * time.Second
	DefaultRedirectDelay        = 1200 * time.Millisecond
)

// Duration is a time.Duration written as "30s" or "1.2s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config represents the client configuration.
type Config struct {
	APIBaseURL           string   `toml:"api_base_url"`
	FrontendURL          string   `toml:"frontend_url"` // ссылка на публичный сайт портфолио
	DBPath               string   `toml:"db_path"`
	LogLevel             string   `toml:"log_level"`
	TimeZone             string   `toml:"time_zone"`
	Username             string   `toml:"username"`
	Password             string   `toml:"-"` // только из окружения
	Timeout              Duration `toml:"timeout"`
	NotificationDuration Duration `toml:"notification_duration"`
	RedirectDelay        Duration `toml:"redirect_delay"`
}

// Default returns a Config filled with defaults.
func Default() *Config {
	return &Config{
		APIBaseURL:           DefaultAPIBaseURL,
		DBPath:               DefaultDBPath,
		LogLevel:             DefaultLogLevel,
		TimeZone:             DefaultTimeZone,
		Timeout:              Duration{DefaultTimeout},
		NotificationDuration: Duration{DefaultNotificationDuration},
		RedirectDelay:        Duration{DefaultRedirectDelay},
	}
}

// Read decodes TOML from r over the defaults.
func Read(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	cfg, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// Load builds the effective configuration: defaults, then the TOML file at path
// (skipped when empty), then the .env file, then the environment. The result is validated.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = ReadFromFile(path); err != nil {
			return nil, err
		}
	}

	if err := LoadEnvFile(envFile); err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnvFile loads variables from a .env file without overriding ones already set.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from the environment. lookup is os.LookupEnv in production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(EnvAPIBaseURL, &c.APIBaseURL)
	set(EnvFrontendURL, &c.FrontendURL)
	set(EnvDB, &c.DBPath)
	set(EnvUsername, &c.Username)
	set(EnvPassword, &c.Password)
	set(EnvTimeZone, &c.TimeZone)
	set(EnvLogLevel, &c.LogLevel)
}

// Validate checks URLs, durations and the time zone.
func (c *Config) Validate() error {
	if err := validation.ValidateBaseURL(c.APIBaseURL); err != nil {
		return fmt.Errorf("api_base_url: %w", err)
	}
	if c.FrontendURL != "" {
		if err := validation.ValidateBaseURL(c.FrontendURL); err != nil {
			return fmt.Errorf("frontend_url: %w", err)
		}
	}
	if c.DBPath == "" {
		return errors.New("db_path cannot be empty")
	}
	if c.Timeout.Duration <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.NotificationDuration.Duration <= 0 {
		return fmt.Errorf("notification_duration must be positive, got %s", c.NotificationDuration)
	}
	if c.RedirectDelay.Duration < 0 {
		return fmt.Errorf("redirect_delay must not be negative, got %s", c.RedirectDelay)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location returns the zone message timestamps are shown in.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		// без tzdata в системе Asia/Kolkata все равно доступна как фиксированный пояс
		if c.TimeZone == DefaultTimeZone {
			return time.FixedZone("IST", 5*60*60+30*60), nil
		}
		return nil, fmt.Errorf("invalid time_zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}
