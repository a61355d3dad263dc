package catalog

import (
	"maps"

	"github.com/dmitrymomot/localize/core/plural"
)

// Entry is a single translation: either a literal string or a set of plural
// variants. Entries are immutable after creation and safe for concurrent use.
type Entry struct {
	text     string
	variants map[plural.Category]string
}

// Simple creates a literal-string entry.
func Simple(text string) Entry {
	return Entry{text: text}
}

// PluralEntry creates an entry with plural variants. The map is copied.
// A well-formed plural entry carries at least the "other" variant; missing
// categories fall back to it at lookup time.
func PluralEntry(variants map[plural.Category]string) Entry {
	return Entry{variants: maps.Clone(variants)}
}

// IsPlural reports whether the entry carries plural variants.
func (e Entry) IsPlural() bool {
	return e.variants != nil
}

// Text returns the literal text of a simple entry, or the "other" variant of
// a plural entry.
func (e Entry) Text() string {
	if e.IsPlural() {
		return e.variants[plural.Other]
	}
	return e.text
}

// Variant returns the text for a plural category, falling back to "other"
// when the category is absent. For simple entries it returns the literal text.
func (e Entry) Variant(c plural.Category) string {
	if !e.IsPlural() {
		return e.text
	}
	if text, ok := e.variants[c]; ok {
		return text
	}
	return e.variants[plural.Other]
}

// Equal reports whether two entries carry identical content.
func (e Entry) Equal(other Entry) bool {
	if e.IsPlural() != other.IsPlural() {
		return false
	}
	if e.IsPlural() {
		return maps.Equal(e.variants, other.variants)
	}
	return e.text == other.text
}

// Table maps translation keys to entries for one language and namespace.
type Table map[string]Entry

// Equal reports whether two tables carry identical content, used to elide
// redundant catalog updates after a sync.
func (t Table) Equal(other Table) bool {
	return maps.EqualFunc(t, other, Entry.Equal)
}
