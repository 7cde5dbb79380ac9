package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBlobStoreContract runs the logical storage contract against a live
// S3-compatible endpoint. Skipped unless BLOB_TEST_ENDPOINT is set, e.g.:
//
//	BLOB_TEST_ENDPOINT=localhost:9000 BLOB_TEST_ACCESS_KEY=minioadmin \
//	BLOB_TEST_SECRET_KEY=minioadmin go test ./internal/storage/
func TestBlobStoreContract(t *testing.T) {
	endpoint := os.Getenv("BLOB_TEST_ENDPOINT")
	if endpoint == "" {
		t.Skip("BLOB_TEST_ENDPOINT not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := NewBlobStore(ctx, BlobConfig{
		Endpoint:  endpoint,
		AccessKey: os.Getenv("BLOB_TEST_ACCESS_KEY"),
		SecretKey: os.Getenv("BLOB_TEST_SECRET_KEY"),
		Bucket:    "xrpl-documents-test",
		Prefix:    "contract",
		UseSSL:    false,
	})
	require.NoError(t, err)

	// Same contract the local backend satisfies: save/load round trip,
	// ErrNotFound on absent documents, list, delete.
	_, err = s.Load(ctx, "missing.json")
	assert.ErrorIs(t, err, ErrNotFound)

	doc := []byte(`{"network":"testnet","wallets":[]}`)
	require.NoError(t, s.Save(ctx, "wallet.json", doc))

	loaded, err := s.Load(ctx, "wallet.json")
	require.NoError(t, err)
	assert.JSONEq(t, string(doc), string(loaded))

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "wallet.json")

	require.NoError(t, s.Delete(ctx, "wallet.json"))
	_, err = s.Load(ctx, "wallet.json")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "wallet.json"), ErrNotFound)
}
