// Package translator owns the in-memory translation catalog and sequences
// cache preload, CDN synchronization, and key resolution.
//
// A Service is created around a cache store and initialized once with a
// Config. Init preloads every configured table from the cache, publishes the
// catalog, and kicks off an asynchronous sync; afterwards Translate resolves
// keys synchronously against an immutable catalog snapshot and never blocks.
// Fetch revalidates against the CDN and is dropped while a sync is already in
// flight. A miss falls through to the Fallback collaborator, which by default
// returns the key itself.
//
// All catalog mutations are confined to one owner goroutine; results of
// concurrent syncs, language switches, and cache preloads are serialized
// through it, so readers always observe a consistent snapshot and a failed
// sync never removes previously loaded entries.
//
// # Usage
//
//	store, _ := cachestore.NewFileStore(dir)
//	svc, err := translator.New(store)
//	if err != nil { ... }
//	defer svc.Close()
//
//	if err := svc.Init(ctx, translator.Config{
//		Endpoint:   "https://cdn.example.com/project",
//		Language:   "en",
//		Namespaces: []string{"checkout"},
//		AppVersion: buildVersion,
//	}); err != nil { ... }
//
//	svc.Translate("welcome", nil, "", "")          // base table, active language
//	svc.Translate("apples", []any{5}, "", "en")    // plural resolution
//
// Wire the host's lifecycle signal to OnEnterForeground to refresh the
// catalog when the application becomes active.
package translator
