package cachestore_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/core/cachestore"
)

func TestMemoryStorePayloads(t *testing.T) {
	store := cachestore.NewMemoryStore()
	ctx := context.Background()
	d := cachestore.Descriptor{Language: "en", Endpoint: "https://cdn.example.com/p"}

	t.Run("miss", func(t *testing.T) {
		_, err := store.Load(ctx, d)
		assert.ErrorIs(t, err, cachestore.ErrNotFound)
	})

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, d, []byte(`{"k": "v"}`)))
		data, err := store.Load(ctx, d)
		require.NoError(t, err)
		assert.JSONEq(t, `{"k": "v"}`, string(data))
	})

	t.Run("empty payload rejected", func(t *testing.T) {
		assert.ErrorIs(t, store.Save(ctx, d, nil), cachestore.ErrEmptyPayload)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		data, err := store.Load(ctx, d)
		require.NoError(t, err)
		data[0] = 'X'

		again, err := store.Load(ctx, d)
		require.NoError(t, err)
		assert.JSONEq(t, `{"k": "v"}`, string(again))
	})

	t.Run("app versions are isolated", func(t *testing.T) {
		versioned := d
		versioned.AppVersion = "2.0.0"
		_, err := store.Load(ctx, versioned)
		assert.ErrorIs(t, err, cachestore.ErrNotFound)
	})
}

func TestMemoryStoreEtagsAndVersion(t *testing.T) {
	store := cachestore.NewMemoryStore()
	ctx := context.Background()
	endpoint := "https://cdn.example.com/p"

	d := cachestore.EtagDescriptor{Language: "en", Endpoint: endpoint}
	_, err := store.LoadEtag(ctx, d)
	assert.ErrorIs(t, err, cachestore.ErrNotFound)

	require.NoError(t, store.SaveEtag(ctx, d, `"abc123"`))
	etag, err := store.LoadEtag(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, `"abc123"`, etag)

	_, err = store.Version(ctx, endpoint, "en")
	assert.ErrorIs(t, err, cachestore.ErrNotFound)

	require.NoError(t, store.SetVersion(ctx, endpoint, "en", "1.2.3"))
	version, err := store.Version(ctx, endpoint, "en")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

func TestMemoryStoreClearAll(t *testing.T) {
	store := cachestore.NewMemoryStore()
	ctx := context.Background()
	keep := "https://cdn.example.com/keep"
	wipe := "https://cdn.example.com/wipe"

	require.NoError(t, store.Save(ctx, cachestore.Descriptor{Language: "en", Endpoint: keep}, []byte(`{}`+"\n")))
	require.NoError(t, store.Save(ctx, cachestore.Descriptor{Language: "en", Endpoint: wipe}, []byte(`{}`+"\n")))
	require.NoError(t, store.SaveEtag(ctx, cachestore.EtagDescriptor{Language: "en", Endpoint: wipe}, `"e"`))
	require.NoError(t, store.SetVersion(ctx, wipe, "en", "1.0.0"))

	require.NoError(t, store.ClearAll(ctx, wipe))

	_, err := store.Load(ctx, cachestore.Descriptor{Language: "en", Endpoint: wipe})
	assert.ErrorIs(t, err, cachestore.ErrNotFound)
	_, err = store.LoadEtag(ctx, cachestore.EtagDescriptor{Language: "en", Endpoint: wipe})
	assert.ErrorIs(t, err, cachestore.ErrNotFound)
	_, err = store.Version(ctx, wipe, "en")
	assert.ErrorIs(t, err, cachestore.ErrNotFound)

	// The other endpoint is untouched.
	_, err = store.Load(ctx, cachestore.Descriptor{Language: "en", Endpoint: keep})
	assert.NoError(t, err)
}

func TestMemoryStoreConcurrency(t *testing.T) {
	store := cachestore.NewMemoryStore()
	ctx := context.Background()
	d := cachestore.Descriptor{Language: "en", Endpoint: "https://cdn.example.com/p"}
	require.NoError(t, store.Save(ctx, d, []byte(`{"k": "v"}`)))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = store.Save(ctx, d, []byte(`{"k": "v"}`))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				data, err := store.Load(ctx, d)
				assert.NoError(t, err)
				assert.NotEmpty(t, data)
			}
		}()
	}
	wg.Wait()
}
