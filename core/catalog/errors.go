package catalog

import "errors"

// Catalog parsing errors. Use errors.Is() to distinguish malformed server
// payloads from transport-level failures.
var (
	ErrMalformedCatalog = errors.New("malformed catalog")
)
