package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/folioadmin/internal/client/storage"
)

const (
	keyLastLogin = "last_login"
)

// SaveLastLogin remembers the last successful login
func (s *Storage) SaveLastLogin(ctx context.Context, login storage.LastLogin) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data, err := json.Marshal(login)
		if err != nil {
			return fmt.Errorf("failed to marshal last login: %w", err)
		}

		if err := bucket.Put([]byte(keyLastLogin), data); err != nil {
			return fmt.Errorf("failed to save last login: %w", err)
		}

		return nil
	})
}

// GetLastLogin retrieves the last successful login
// Returns the zero value if nobody has logged in yet
func (s *Storage) GetLastLogin(ctx context.Context) (storage.LastLogin, error) {
	var login storage.LastLogin

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data := bucket.Get([]byte(keyLastLogin))
		if data == nil {
			// первый вход
			return nil
		}

		return json.Unmarshal(data, &login)
	})

	if err != nil {
		return storage.LastLogin{}, fmt.Errorf("failed to get last login: %w", err)
	}

	return login, nil
}
