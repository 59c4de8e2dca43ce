package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastLogin remembers who logged in last and when
	SaveLastLogin(ctx context.Context, login LastLogin) error

	// GetLastLogin returns the zero value if nobody has logged in yet
	GetLastLogin(ctx context.Context) (LastLogin, error)
}

// LastLogin подставляется как имя пользователя по умолчанию при следующем входе
type LastLogin struct {
	Username string `json:"username"`
	BaseURL  string `json:"base_url"`
	At       int64  `json:"at"`
}
