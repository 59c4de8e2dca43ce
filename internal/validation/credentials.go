package validation

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

const (
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 64
)

// ValidateUsername проверяет имя оператора перед отправкой на /api/auth/login.
// Формат имени задает бэкенд, здесь отсекается только заведомо неверный ввод.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if username != strings.TrimSpace(username) {
		return fmt.Errorf("username must not start or end with spaces")
	}

	for _, r := range username {
		if unicode.IsControl(r) {
			return fmt.Errorf("username must not contain control characters")
		}
	}

	return nil
}

// ValidatePassword rejects an empty password; strength rules belong to the backend.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	return nil
}

// ValidateBaseURL checks that an API or frontend address is an absolute http(s) URL.
func ValidateBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("url cannot be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must use http or https", raw)
	}

	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}

	return nil
}
