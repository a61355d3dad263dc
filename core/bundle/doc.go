// Package bundle provides a compile-time fallback catalog backed by go-i18n
// message files. It is the safety net behind the remote catalog: when a key is
// missing from every synced table, the translator asks the bundle before
// giving up and returning the key itself.
//
// # Usage
//
//	b, err := bundle.New("en")
//	if err != nil {
//		return err
//	}
//	if err := b.LoadFS(localeFS, "active.en.toml", "active.fr.toml"); err != nil {
//		return err
//	}
//
//	svc, err := translator.New(store, translator.WithFallback(b))
//
// Message files are the go-i18n formats, TOML or JSON, selected by file
// extension. Namespaced keys are looked up as "namespace.key" first and fall
// back to the bare key.
//
// # Miss Behavior
//
// Lookup never fails: when neither the requested locale nor the default
// locale carries the message, the key itself is returned so the UI always has
// something to render.
package bundle
