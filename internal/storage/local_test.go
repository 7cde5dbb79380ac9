package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestLocalStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc := map[string]interface{}{
		"network":   "testnet",
		"sourceTag": float64(845921),
		"wallets":   []interface{}{map[string]interface{}{"role": "issuer", "address": "rIssuer"}},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "wallet.json", data))

	loaded, err := s.Load(ctx, "wallet.json")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(loaded, &got))
	assert.Equal(t, doc, got)
}

func TestLocalStoreLoadAbsent(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load(context.Background(), "missing.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStoreDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "doc.json", []byte(`{}`)))
	require.NoError(t, s.Delete(ctx, "doc.json"))

	_, err := s.Load(ctx, "doc.json")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "doc.json"), ErrNotFound)
}

func TestLocalStoreList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "wallet.json", []byte(`{}`)))
	require.NoError(t, s.Save(ctx, "nft-log.json", []byte(`{}`)))

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"wallet.json", "nft-log.json"}, names)
}

// TestLocalStoreListSkipsTempFiles verifies a temp file left behind by a
// crashed Save is not reported as a document.
func TestLocalStoreListSkipsTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "wallet.json", []byte(`{}`)))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tmp-1234"), []byte(`{"partial":`), 0o644))

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"wallet.json"}, names)
}

func TestLocalStoreOverwrite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "doc.json", []byte(`{"v":1}`)))
	require.NoError(t, s.Save(ctx, "doc.json", []byte(`{"v":2}`)))

	data, err := s.Load(ctx, "doc.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(data))
}

// TestLocalStoreUpdateConcurrent verifies the per-name lock: concurrent
// appends to the same document must not lose entries.
func TestLocalStoreUpdateConcurrent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := s.Update(ctx, "log.json", func(current []byte) ([]byte, error) {
				var entries []string
				if current != nil {
					if err := json.Unmarshal(current, &entries); err != nil {
						return nil, err
					}
				}
				entries = append(entries, fmt.Sprintf("entry-%d", i))
				return json.Marshal(entries)
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	data, err := s.Load(ctx, "log.json")
	require.NoError(t, err)

	var entries []string
	require.NoError(t, json.Unmarshal(data, &entries))
	assert.Len(t, entries, n)
}

func TestLocalStoreUpdateCallbackError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	wantErr := fmt.Errorf("no document to update")
	err := s.Update(ctx, "doc.json", func(current []byte) ([]byte, error) {
		assert.Nil(t, current)
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	// A failed update must not create the document
	_, err = s.Load(ctx, "doc.json")
	assert.ErrorIs(t, err, ErrNotFound)
}
