package translator

// Fallback resolves keys absent from the remote catalog, typically against
// the application's shipped resource bundle. Implementations must always
// return some string and never fail; returning the key itself when nothing
// is found is the convention.
type Fallback interface {
	Lookup(key, table, locale string) string
}

// FallbackFunc adapts a plain function to the Fallback interface.
type FallbackFunc func(key, table, locale string) string

// Lookup implements Fallback.
func (f FallbackFunc) Lookup(key, table, locale string) string {
	return f(key, table, locale)
}

// keyFallback is the default Fallback: it echoes the key back.
type keyFallback struct{}

func (keyFallback) Lookup(key, _, _ string) string {
	return key
}
