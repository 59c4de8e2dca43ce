package storage

import (
	"context"
)

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage хранит cookie сессии между запусками CLI.
// Содержимое cookie клиент не разбирает: значения сохраняются и возвращаются как есть.
type SessionStorage interface {
	// SaveSession replaces the stored session.
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession returns the stored session or ErrSessionNotFound.
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session (logout). Missing session is not an error.
	DeleteSession(ctx context.Context) error

	// HasSession reports whether any session is stored.
	HasSession(ctx context.Context) (bool, error)
}

// SessionData is what survives between commands: the backend it belongs to and
// the opaque cookies that backend set.
type SessionData struct {
	Username string   `json:"username"`
	BaseURL  string   `json:"base_url"`
	Cookies  []Cookie `json:"cookies"`
	SavedAt  int64    `json:"saved_at"`
}

// Cookie is a persisted session cookie.
type Cookie struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Path     string `json:"path,omitempty"`
	Domain   string `json:"domain,omitempty"`
	Expires  int64  `json:"expires,omitempty"`
	Secure   bool   `json:"secure,omitempty"`
	HttpOnly bool   `json:"http_only,omitempty"`
}
