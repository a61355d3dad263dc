package translator

import "errors"

// Service lifecycle errors.
var (
	ErrStoreNil       = errors.New("cache store cannot be nil")
	ErrLanguageEmpty  = errors.New("language cannot be empty")
	ErrNotInitialized = errors.New("translator is not initialized")
	ErrClosed         = errors.New("translator is closed")
)
