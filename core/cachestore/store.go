package cachestore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// Cache store errors. Use errors.Is() to distinguish a plain miss from an IO
// failure.
var (
	ErrNotFound     = errors.New("cache entry not found")
	ErrEmptyPayload = errors.New("empty cache payload")
)

// Descriptor identifies one cached catalog payload. Identity spans all four
// fields; two descriptors differing in any field address different payloads.
type Descriptor struct {
	Language   string // catalog language, e.g. "en"
	Namespace  string // namespace table, empty for the base table
	AppVersion string // consuming application's build signature, may be empty
	Endpoint   string // remote source the payload came from
}

// EtagDescriptor identifies the last validation token seen for one remote
// file. Unlike Descriptor it carries no app version: a token identifies a
// file revision on the server, independent of the consuming build.
type EtagDescriptor struct {
	Language  string
	Namespace string
	Endpoint  string
}

// Store is a durable key-value mapping for catalog payloads and ETags.
// Implementations must never return a torn payload: a Save interrupted by a
// crash either fully applies or leaves the previous payload intact.
// Last write wins for concurrent saves under the same descriptor.
type Store interface {
	// Load returns the payload for the descriptor, or ErrNotFound.
	Load(ctx context.Context, d Descriptor) ([]byte, error)

	// Save durably persists the payload under the descriptor.
	Save(ctx context.Context, d Descriptor, data []byte) error

	// LoadEtag returns the last saved validation token, or ErrNotFound.
	LoadEtag(ctx context.Context, d EtagDescriptor) (string, error)

	// SaveEtag durably persists the validation token.
	SaveEtag(ctx context.Context, d EtagDescriptor, etag string) error

	// Version returns the app-version marker for a language, or ErrNotFound.
	Version(ctx context.Context, endpoint, language string) (string, error)

	// SetVersion records the app-version marker for a language.
	SetVersion(ctx context.Context, endpoint, language, version string) error

	// ClearAll removes every entry stored under the endpoint.
	ClearAll(ctx context.Context, endpoint string) error
}

// tableName maps the empty base-table namespace to a stable storage name.
func tableName(namespace string) string {
	if namespace == "" {
		return "default"
	}
	return sanitize(namespace)
}

// endpointKey derives a filesystem- and key-safe identifier for a source
// endpoint. Different endpoints must map to different keys, so a short
// content hash backs the readable prefix.
func endpointKey(endpoint string) string {
	trimmed := strings.ToLower(strings.TrimSpace(endpoint))
	trimmed = strings.TrimPrefix(trimmed, "https://")
	trimmed = strings.TrimPrefix(trimmed, "http://")
	trimmed = strings.Trim(trimmed, "/")

	readable := sanitize(trimmed)
	if len(readable) > 48 {
		readable = readable[:48]
	}

	sum := sha256.Sum256([]byte(endpoint))
	return readable + "_" + hex.EncodeToString(sum[:4])
}

// versionHash shortens an arbitrary app-version signature into a key-safe
// segment. Empty signatures map to a fixed marker so cache files keep a
// predictable shape.
func versionHash(version string) string {
	if version == "" {
		return "none"
	}
	sum := sha256.Sum256([]byte(version))
	return hex.EncodeToString(sum[:4])
}

// sanitize replaces anything outside [a-z0-9.-] with underscores.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
