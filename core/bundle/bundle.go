package bundle

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/localize/core/logger"
	"github.com/dmitrymomot/localize/core/translator"
)

var (
	// ErrInvalidLocale is returned when the default locale is not a parseable
	// BCP 47 tag.
	ErrInvalidLocale = errors.New("bundle: invalid default locale")

	// ErrLoadMessageFile is returned when a message file cannot be read or
	// parsed.
	ErrLoadMessageFile = errors.New("bundle: failed to load message file")
)

// Ensure Bundle satisfies the translator's fallback contract.
var _ translator.Fallback = (*Bundle)(nil)

// Bundle holds compile-time messages loaded from go-i18n files and resolves
// keys the remote catalog misses. Load all files before handing the bundle to
// the translator; Lookup is safe for concurrent use once loading is done.
type Bundle struct {
	bundle        *i18n.Bundle
	defaultLocale string
	log           *slog.Logger
}

// Option configures the Bundle during construction.
type Option func(*Bundle)

// WithLogger sets the bundle logger.
func WithLogger(log *slog.Logger) Option {
	return func(b *Bundle) {
		if log != nil {
			b.log = log.With(logger.Component("bundle"))
		}
	}
}

// New creates a Bundle whose default locale terminates every lookup chain.
func New(defaultLocale string, opts ...Option) (*Bundle, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, errors.Join(ErrInvalidLocale, err)
	}

	ib := i18n.NewBundle(tag)
	ib.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	ib.RegisterUnmarshalFunc("json", json.Unmarshal)

	b := &Bundle{
		bundle:        ib,
		defaultLocale: tag.String(),
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// LoadFS loads the given message files from fsys. The locale and format are
// derived from the file name, the go-i18n convention ("active.en.toml").
// Loading stops at the first failure.
func (b *Bundle) LoadFS(fsys fs.FS, paths ...string) error {
	for _, path := range paths {
		if _, err := b.bundle.LoadMessageFileFS(fsys, path); err != nil {
			return errors.Join(ErrLoadMessageFile, err)
		}
	}
	return nil
}

// LoadMessageBytes parses raw message data in the given format ("toml" or
// "json") under the given BCP 47 file name, e.g. "active.en.toml".
func (b *Bundle) LoadMessageBytes(data []byte, path string) error {
	if _, err := b.bundle.ParseMessageFileBytes(data, path); err != nil {
		return errors.Join(ErrLoadMessageFile, err)
	}
	return nil
}

// Lookup resolves a key for the given locale, trying the namespace-qualified
// ID first, then the bare key, then the default locale, and finally returns
// the key itself. It never fails.
func (b *Bundle) Lookup(key, table, locale string) string {
	if key == "" {
		return ""
	}

	locales := make([]string, 0, 2)
	if locale != "" {
		locales = append(locales, locale)
	}
	locales = append(locales, b.defaultLocale)
	localizer := i18n.NewLocalizer(b.bundle, locales...)

	ids := []string{key}
	if table != "" {
		ids = []string{table + "." + key, key}
	}
	for _, id := range ids {
		msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
		if err == nil {
			return msg
		}
	}

	b.log.Debug("bundle miss", logger.TranslationKey(key), logger.Table(table), logger.Language(locale))
	return key
}
