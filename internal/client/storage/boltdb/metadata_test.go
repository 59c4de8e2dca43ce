package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/folioadmin/internal/client/storage"
)

func TestSaveAndGetLastLogin(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Изначально никто не входил
	got, err := store.GetLastLogin(ctx)
	require.NoError(t, err)
	assert.Equal(t, storage.LastLogin{}, got)

	want := storage.LastLogin{Username: "admin", BaseURL: "http://127.0.0.1:3000", At: 1234567890}
	require.NoError(t, store.SaveLastLogin(ctx, want))

	got, err = store.GetLastLogin(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLastLogin_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	})
	require.NoError(t, err)

	_, err = store.GetLastLogin(ctx)
	assert.ErrorContains(t, err, "metadata bucket not found")

	err = store.SaveLastLogin(ctx, storage.LastLogin{Username: "admin"})
	assert.ErrorContains(t, err, "metadata bucket not found")
}
