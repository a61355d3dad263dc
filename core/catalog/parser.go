package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dmitrymomot/localize/core/plural"
)

// ParseTable decodes a raw per-language JSON document into a table.
//
// Two value shapes are accepted: a plain string (stored as a simple entry)
// and an object carrying plural variants keyed by CLDR category names (stored
// as a plural entry). Objects without any recognized category are skipped for
// forward compatibility rather than rejected. Anything else, a non-object top
// level (JSON null included) or a value that is neither string nor object,
// fails with ErrMalformedCatalog. An empty top-level object parses to an empty table.
func ParseTable(raw []byte) (Table, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCatalog, err)
	}
	// Unmarshal treats a null document as a no-op success, leaving the map
	// nil. A real object, even an empty one, always allocates.
	if doc == nil {
		return nil, fmt.Errorf("%w: document is null", ErrMalformedCatalog)
	}

	table := make(Table, len(doc))
	for key, value := range doc {
		entry, ok, err := parseEntry(value)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %w", ErrMalformedCatalog, key, err)
		}
		if ok {
			table[key] = entry
		}
	}

	return table, nil
}

// parseEntry decodes a single value. ok is false for tolerated-but-unknown
// object shapes, which the caller skips.
func parseEntry(raw json.RawMessage) (Entry, bool, error) {
	// A null value would decode as a no-op into both the string and the
	// object shape; reject the token itself.
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return Entry{}, false, fmt.Errorf("value is null")
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return Simple(text), true, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return Entry{}, false, fmt.Errorf("value is neither string nor object")
	}

	variants := make(map[plural.Category]string, len(obj))
	for name, v := range obj {
		category, ok := plural.ParseCategory(name)
		if !ok {
			continue
		}
		var variant string
		if err := json.Unmarshal(v, &variant); err != nil {
			// Non-string variant inside an otherwise valid container.
			continue
		}
		variants[category] = variant
	}

	if len(variants) == 0 {
		// Unrecognized object shape, tolerated for forward compatibility.
		return Entry{}, false, nil
	}

	return PluralEntry(variants), true, nil
}
