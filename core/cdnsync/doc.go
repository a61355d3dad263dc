// Package cdnsync keeps local translation catalogs consistent with a remote
// CDN source.
//
// One Sync call fetches the base table ("{language}.json") and every
// configured namespace table ("{namespace}/{language}.json") concurrently.
// Each request is conditional: the last known ETag is sent as If-None-Match,
// and a 304 response, or a 200 carrying the same token, counts as
// unchanged. Changed tables are parsed, compared against the currently held
// in-memory tables to elide no-op updates, and collected into a single result
// once every file has resolved. Raw bytes and fresh ETags are persisted to
// the cache store off the calling goroutine; persistence failures are logged
// and never fail the sync.
//
// Per-file failures (transport errors, error statuses, malformed payloads)
// are absorbed and logged: the table is simply absent from the result and the
// caller retains whatever it already had. Sync returns an error only when the
// request itself is unusable and no file could be evaluated.
//
// # Usage
//
//	engine, err := cdnsync.New(store, cdnsync.WithHTTPClient(client))
//	if err != nil { ... }
//
//	result, err := engine.Sync(ctx, cdnsync.Request{
//		Endpoint:   "https://cdn.example.com/project",
//		Language:   "en",
//		Namespaces: []string{"checkout"},
//		Etags:      etags,
//		Current:    current,
//	})
//
// The engine enforces no timeout of its own; deadline policy belongs to the
// injected http.Client or the caller's context.
package cdnsync
