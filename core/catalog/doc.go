// Package catalog models translation tables: parsing raw per-language JSON
// documents into entries and formatting entries with runtime arguments.
//
// A table maps translation keys to entries. An entry is either a literal
// string or a set of plural variants keyed by CLDR category:
//
//	{
//	  "welcome": "Welcome back",
//	  "apples": {"one": "I have # apple", "other": "I have # apples"}
//	}
//
// Formatting selects the plural variant via the core/plural resolver and
// substitutes placeholders: indexed braces ({0}, {1}, ...) map to positional
// arguments, printf-style markers (%s, %d, %u, %f) map to the first argument,
// and the # token in plural texts renders the count. Unmatched placeholders
// stay verbatim; formatting never fails.
//
// # Usage
//
//	entries, err := catalog.ParseTable(raw)
//	if err != nil { ... }
//	text := catalog.Format(entries["apples"], []any{5}, "en") // "I have 5 apples"
package catalog
