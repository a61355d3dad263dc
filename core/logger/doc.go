// Package logger provides slog attribute helpers shared across the module.
//
// Helpers follow the empty-Attr pattern: passing a nil error or empty string
// yields an attribute that slog drops silently, so call sites never need nil
// checks:
//
//	log.Warn("table skipped",
//		logger.Table(namespace),
//		logger.Language(lang),
//		logger.Error(err),
//	)
//
// Domain attributes (Language, Table, TranslationKey, Etag, SyncID) keep log
// keys consistent between the sync engine and the orchestrator.
package logger
