package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/localize/core/plural"
)

// Format renders an entry with positional arguments for a locale.
//
// Simple entries pass through unchanged when no arguments are given,
// otherwise a single substitution pass runs over the text. Plural entries
// take the first argument as the count: the CLDR category is resolved via the
// locale's language code, the matching variant is selected (falling back to
// "other", also used when no arguments are supplied or the count is not
// numeric), the # token and numeric markers render the count, and the same
// substitution pass then applies the full argument list. Missing indices and
// unrecognized markers stay verbatim; Format never fails.
func Format(entry Entry, args []any, locale string) string {
	if !entry.IsPlural() {
		if len(args) == 0 {
			return entry.Text()
		}
		return substitute(entry.Text(), args, nil)
	}

	if len(args) == 0 {
		return entry.Variant(plural.Other)
	}

	count, category := resolveCount(args[0], locale)
	return substitute(entry.Variant(category), args, &count)
}

// resolveCount renders the plural count argument and classifies it.
// Non-numeric counts classify as "other" and render verbatim.
func resolveCount(arg any, locale string) (string, plural.Category) {
	switch v := arg.(type) {
	case string:
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			return v, plural.Other
		}
		// Classify from the string form so "1.0" keeps its fraction digits.
		return strings.TrimSpace(v), plural.ResolveDecimal(locale, v)
	case int:
		return strconv.Itoa(v), plural.Resolve(locale, float64(v))
	case int8:
		return strconv.FormatInt(int64(v), 10), plural.Resolve(locale, float64(v))
	case int16:
		return strconv.FormatInt(int64(v), 10), plural.Resolve(locale, float64(v))
	case int32:
		return strconv.FormatInt(int64(v), 10), plural.Resolve(locale, float64(v))
	case int64:
		return strconv.FormatInt(v, 10), plural.Resolve(locale, float64(v))
	case uint:
		return strconv.FormatUint(uint64(v), 10), plural.Resolve(locale, float64(v))
	case uint8:
		return strconv.FormatUint(uint64(v), 10), plural.Resolve(locale, float64(v))
	case uint16:
		return strconv.FormatUint(uint64(v), 10), plural.Resolve(locale, float64(v))
	case uint32:
		return strconv.FormatUint(uint64(v), 10), plural.Resolve(locale, float64(v))
	case uint64:
		return strconv.FormatUint(v, 10), plural.Resolve(locale, float64(v))
	case float32:
		return formatFloat(float64(v)), plural.Resolve(locale, float64(v))
	case float64:
		return formatFloat(v), plural.Resolve(locale, v)
	default:
		return fmt.Sprintf("%v", arg), plural.Other
	}
}

// formatFloat renders a float count; integral values drop the decimal point.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// substitute runs the single substitution pass. count is non-nil only for
// plural texts, where it replaces the # token and numeric markers. Indexed
// braces ({0}, {1}, ...) map to positional arguments; printf-style markers
// map to the first argument. Substituted content is never rescanned.
func substitute(text string, args []any, count *string) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		switch text[i] {
		case '#':
			if count != nil {
				b.WriteString(*count)
				i++
				continue
			}
			b.WriteByte(text[i])
			i++

		case '{':
			if repl, width, ok := indexedArg(text[i:], args); ok {
				b.WriteString(repl)
				i += width
				continue
			}
			b.WriteByte(text[i])
			i++

		case '%':
			if i+1 < len(text) {
				switch text[i+1] {
				case 'd', 'u', 'f':
					if count != nil {
						b.WriteString(*count)
						i += 2
						continue
					}
					fallthrough
				case 's':
					if len(args) > 0 {
						b.WriteString(render(args[0]))
						i += 2
						continue
					}
				}
			}
			b.WriteByte(text[i])
			i++

		default:
			b.WriteByte(text[i])
			i++
		}
	}

	return b.String()
}

// indexedArg parses a leading {N} placeholder and resolves it against args.
// width is the placeholder length in bytes. ok is false when the braces do
// not contain a bare decimal index or the index is out of range.
func indexedArg(text string, args []any) (string, int, bool) {
	end := strings.IndexByte(text, '}')
	if end < 2 {
		return "", 0, false
	}

	idx := text[1:end]
	for i := 0; i < len(idx); i++ {
		if idx[i] < '0' || idx[i] > '9' {
			return "", 0, false
		}
	}

	n, err := strconv.Atoi(idx)
	if err != nil || n >= len(args) {
		return "", 0, false
	}

	return render(args[n]), end + 1, true
}

// render stringifies an argument for substitution.
func render(arg any) string {
	switch v := arg.(type) {
	case string:
		return v
	case float64:
		return formatFloat(v)
	case float32:
		return formatFloat(float64(v))
	default:
		return fmt.Sprintf("%v", arg)
	}
}
