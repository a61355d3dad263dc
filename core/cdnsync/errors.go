package cdnsync

import "errors"

// Sync errors. Per-file failures are absorbed within Sync; these surface only
// when no file could be evaluated at all.
var (
	ErrStoreNil        = errors.New("cache store cannot be nil")
	ErrInvalidEndpoint = errors.New("invalid source endpoint")
	ErrLanguageEmpty   = errors.New("language cannot be empty")
)
