package cdnsync_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/core/cachestore"
	"github.com/dmitrymomot/localize/core/catalog"
	"github.com/dmitrymomot/localize/core/cdnsync"
)

// cdnFile is one servable catalog file for the fake CDN.
type cdnFile struct {
	body   string
	etag   string
	status int // 0 means 200
}

// newCDN serves files keyed by request path ("/en.json", "/checkout/en.json")
// with conditional revalidation, counting requests per path.
func newCDN(t *testing.T, files map[string]cdnFile) (*httptest.Server, *atomic.Int64) {
	t.Helper()

	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		file, ok := files[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if file.status != 0 {
			w.WriteHeader(file.status)
			return
		}
		if file.etag != "" {
			if r.Header.Get("If-None-Match") == file.etag {
				w.WriteHeader(http.StatusNotModified)
				return
			}
			w.Header().Set("ETag", file.etag)
		}
		_, _ = w.Write([]byte(file.body))
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func newEngine(t *testing.T) (*cdnsync.Engine, *cachestore.FileStore) {
	t.Helper()
	store, err := cachestore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	engine, err := cdnsync.New(store)
	require.NoError(t, err)
	return engine, store
}

func TestNew(t *testing.T) {
	t.Run("requires a store", func(t *testing.T) {
		_, err := cdnsync.New(nil)
		assert.ErrorIs(t, err, cdnsync.ErrStoreNil)
	})
}

func TestSyncValidation(t *testing.T) {
	engine, _ := newEngine(t)
	ctx := context.Background()

	_, err := engine.Sync(ctx, cdnsync.Request{Endpoint: "https://cdn.example.com", Language: " "})
	assert.ErrorIs(t, err, cdnsync.ErrLanguageEmpty)

	_, err = engine.Sync(ctx, cdnsync.Request{Endpoint: "not a url", Language: "en"})
	assert.ErrorIs(t, err, cdnsync.ErrInvalidEndpoint)

	_, err = engine.Sync(ctx, cdnsync.Request{Endpoint: "", Language: "en"})
	assert.ErrorIs(t, err, cdnsync.ErrInvalidEndpoint)
}

func TestSyncFetchesAllTables(t *testing.T) {
	srv, _ := newCDN(t, map[string]cdnFile{
		"/en.json":          {body: `{"hello": "Hello"}`, etag: `"base-v1"`},
		"/checkout/en.json": {body: `{"pay": "Pay now"}`, etag: `"checkout-v1"`},
	})
	engine, store := newEngine(t)

	result, err := engine.Sync(context.Background(), cdnsync.Request{
		Endpoint:   srv.URL,
		Language:   "en",
		Namespaces: []string{"checkout"},
	})
	require.NoError(t, err)

	require.Len(t, result.Tables, 2)
	assert.Equal(t, "Hello", result.Tables[""]["hello"].Text())
	assert.Equal(t, "Pay now", result.Tables["checkout"]["pay"].Text())
	assert.Equal(t, `"base-v1"`, result.Etags[""])
	assert.Equal(t, `"checkout-v1"`, result.Etags["checkout"])

	// Bytes and tokens land in the cache store off-thread.
	require.Eventually(t, func() bool {
		data, err := store.Load(context.Background(), cachestore.Descriptor{
			Language: "en", Namespace: "checkout", Endpoint: srv.URL,
		})
		if err != nil {
			return false
		}
		etag, err := store.LoadEtag(context.Background(), cachestore.EtagDescriptor{
			Language: "en", Namespace: "checkout", Endpoint: srv.URL,
		})
		return err == nil && etag == `"checkout-v1"` && string(data) == `{"pay": "Pay now"}`
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSyncConditionalRevalidation(t *testing.T) {
	srv, requests := newCDN(t, map[string]cdnFile{
		"/en.json": {body: `{"hello": "Hello"}`, etag: `"v1"`},
	})
	engine, _ := newEngine(t)
	ctx := context.Background()

	first, err := engine.Sync(ctx, cdnsync.Request{Endpoint: srv.URL, Language: "en"})
	require.NoError(t, err)
	require.Len(t, first.Tables, 1)

	// Second run with the cached token: the server answers 304 and the delta
	// is empty.
	second, err := engine.Sync(ctx, cdnsync.Request{
		Endpoint: srv.URL,
		Language: "en",
		Etags:    map[string]string{"": first.Etags[""]},
		Current:  first.Tables,
	})
	require.NoError(t, err)
	assert.Empty(t, second.Tables)
	assert.Empty(t, second.Etags)
	assert.Equal(t, int64(2), requests.Load())
}

func TestSyncEqualContentElided(t *testing.T) {
	// Server re-deployed the same content under a new token: no catalog
	// mutation, but the fresh token is reported.
	srv, _ := newCDN(t, map[string]cdnFile{
		"/en.json": {body: `{"hello": "Hello"}`, etag: `"v2"`},
	})
	engine, _ := newEngine(t)

	current := catalog.Table{"hello": catalog.Simple("Hello")}
	result, err := engine.Sync(context.Background(), cdnsync.Request{
		Endpoint: srv.URL,
		Language: "en",
		Etags:    map[string]string{"": `"v1"`},
		Current:  map[string]catalog.Table{"": current},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Tables)
	assert.Equal(t, `"v2"`, result.Etags[""])
}

func TestSyncPartialFailure(t *testing.T) {
	t.Run("namespace missing, base succeeds", func(t *testing.T) {
		srv, _ := newCDN(t, map[string]cdnFile{
			"/en.json": {body: `{"hello": "Hello"}`},
		})
		engine, _ := newEngine(t)

		result, err := engine.Sync(context.Background(), cdnsync.Request{
			Endpoint:   srv.URL,
			Language:   "en",
			Namespaces: []string{"checkout"},
		})
		require.NoError(t, err)
		require.Len(t, result.Tables, 1)
		assert.Contains(t, result.Tables, "")
		assert.NotContains(t, result.Tables, "checkout")
	})

	t.Run("server error skipped", func(t *testing.T) {
		srv, _ := newCDN(t, map[string]cdnFile{
			"/en.json":          {status: http.StatusInternalServerError},
			"/checkout/en.json": {body: `{"pay": "Pay"}`},
		})
		engine, _ := newEngine(t)

		result, err := engine.Sync(context.Background(), cdnsync.Request{
			Endpoint:   srv.URL,
			Language:   "en",
			Namespaces: []string{"checkout"},
		})
		require.NoError(t, err)
		require.Len(t, result.Tables, 1)
		assert.Contains(t, result.Tables, "checkout")
	})

	t.Run("malformed payload skipped", func(t *testing.T) {
		srv, _ := newCDN(t, map[string]cdnFile{
			"/en.json": {body: `["not", "a", "catalog"]`},
		})
		engine, _ := newEngine(t)

		result, err := engine.Sync(context.Background(), cdnsync.Request{
			Endpoint: srv.URL,
			Language: "en",
		})
		require.NoError(t, err)
		assert.Empty(t, result.Tables)
	})

	t.Run("unreachable server absorbs every file", func(t *testing.T) {
		srv, _ := newCDN(t, nil)
		srv.Close()
		engine, _ := newEngine(t)

		result, err := engine.Sync(context.Background(), cdnsync.Request{
			Endpoint:   srv.URL,
			Language:   "en",
			Namespaces: []string{"checkout"},
		})
		require.NoError(t, err)
		assert.Empty(t, result.Tables)
	})
}

func TestSyncConcurrentFetch(t *testing.T) {
	// All files are requested in parallel: with a per-file delay of 100ms and
	// five files, a serial engine would need 500ms.
	delay := 100 * time.Millisecond
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(delay)
		_, _ = w.Write([]byte(`{"k": "v"}`))
	}))
	t.Cleanup(srv.Close)
	engine, _ := newEngine(t)

	start := time.Now()
	result, err := engine.Sync(context.Background(), cdnsync.Request{
		Endpoint:   srv.URL,
		Language:   "en",
		Namespaces: []string{"a", "b", "c", "d"},
	})
	require.NoError(t, err)
	assert.Len(t, result.Tables, 5)
	assert.Less(t, time.Since(start), 3*delay)
}
