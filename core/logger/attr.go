package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// This allows calls like log.Warn("msg", logger.Error(err)) without explicit
// nil checks, following the principle of making zero values useful.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// SyncID creates an attribute correlating log lines of one sync run.
func SyncID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("sync_id", id)
}

// Language creates an attribute for the active catalog language.
func Language(lang string) slog.Attr {
	return slog.String("language", lang)
}

// Table creates an attribute for a catalog table. The base table logs as
// "default".
func Table(namespace string) slog.Attr {
	if namespace == "" {
		namespace = "default"
	}
	return slog.String("table", namespace)
}

// TranslationKey creates an attribute for a translation key.
func TranslationKey(key string) slog.Attr {
	return slog.String("key", key)
}

// Etag creates an attribute for a CDN validation token.
func Etag(etag string) slog.Attr {
	if etag == "" {
		return slog.Attr{}
	}
	return slog.String("etag", etag)
}

// Endpoint creates an attribute for the remote source endpoint.
func Endpoint(url string) slog.Attr {
	return slog.String("endpoint", url)
}

// StatusCode creates an attribute for HTTP status codes.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// Version creates an attribute for app-version signatures.
func Version(v string) slog.Attr {
	if v == "" {
		return slog.Attr{}
	}
	return slog.String("version", v)
}
