package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize/core/catalog"
	"github.com/dmitrymomot/localize/core/plural"
)

func TestParseTable(t *testing.T) {
	t.Run("simple and plural entries", func(t *testing.T) {
		raw := []byte(`{
			"welcome": "Welcome back",
			"apples": {"one": "I have # apple", "other": "I have # apples"}
		}`)

		table, err := catalog.ParseTable(raw)
		require.NoError(t, err)
		require.Len(t, table, 2)

		assert.False(t, table["welcome"].IsPlural())
		assert.Equal(t, "Welcome back", table["welcome"].Text())

		assert.True(t, table["apples"].IsPlural())
		assert.Equal(t, "I have # apple", table["apples"].Variant(plural.One))
		assert.Equal(t, "I have # apples", table["apples"].Variant(plural.Other))
	})

	t.Run("empty object is an empty table", func(t *testing.T) {
		table, err := catalog.ParseTable([]byte(`{}`))
		require.NoError(t, err)
		assert.Empty(t, table)
	})

	t.Run("non-object top level fails", func(t *testing.T) {
		_, err := catalog.ParseTable([]byte(`["a","b"]`))
		assert.ErrorIs(t, err, catalog.ErrMalformedCatalog)

		_, err = catalog.ParseTable([]byte(`not json`))
		assert.ErrorIs(t, err, catalog.ErrMalformedCatalog)
	})

	t.Run("non-string non-object value fails", func(t *testing.T) {
		_, err := catalog.ParseTable([]byte(`{"count": 42}`))
		assert.ErrorIs(t, err, catalog.ErrMalformedCatalog)
	})

	t.Run("null document fails", func(t *testing.T) {
		_, err := catalog.ParseTable([]byte(`null`))
		assert.ErrorIs(t, err, catalog.ErrMalformedCatalog)

		_, err = catalog.ParseTable([]byte("  null\n"))
		assert.ErrorIs(t, err, catalog.ErrMalformedCatalog)
	})

	t.Run("null value fails", func(t *testing.T) {
		_, err := catalog.ParseTable([]byte(`{"k": null}`))
		assert.ErrorIs(t, err, catalog.ErrMalformedCatalog)
	})

	t.Run("unknown object shape is skipped", func(t *testing.T) {
		table, err := catalog.ParseTable([]byte(`{
			"meta": {"version": "2"},
			"greeting": "hi"
		}`))
		require.NoError(t, err)
		require.Len(t, table, 1)
		assert.Equal(t, "hi", table["greeting"].Text())
	})

	t.Run("unknown keys inside plural container are ignored", func(t *testing.T) {
		table, err := catalog.ParseTable([]byte(`{
			"apples": {"one": "one apple", "other": "many apples", "context": "fruit"}
		}`))
		require.NoError(t, err)
		assert.Equal(t, "one apple", table["apples"].Variant(plural.One))
	})
}

func TestEntry(t *testing.T) {
	t.Run("missing category falls back to other", func(t *testing.T) {
		e := catalog.PluralEntry(map[plural.Category]string{
			plural.Other: "items",
		})
		assert.Equal(t, "items", e.Variant(plural.Few))
		assert.Equal(t, "items", e.Variant(plural.One))
	})

	t.Run("equality", func(t *testing.T) {
		a := catalog.Simple("x")
		b := catalog.Simple("x")
		c := catalog.PluralEntry(map[plural.Category]string{plural.Other: "x"})

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})
}

func TestTableEqual(t *testing.T) {
	a := catalog.Table{"k": catalog.Simple("v")}
	b := catalog.Table{"k": catalog.Simple("v")}
	c := catalog.Table{"k": catalog.Simple("w")}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(catalog.Table{}))
}

func TestFormat(t *testing.T) {
	t.Run("simple without args passes through", func(t *testing.T) {
		assert.Equal(t, "x", catalog.Format(catalog.Simple("x"), nil, "en"))
	})

	t.Run("round-trip parse then format", func(t *testing.T) {
		table, err := catalog.ParseTable([]byte(`{"k": "x"}`))
		require.NoError(t, err)
		assert.Equal(t, "x", catalog.Format(table["k"], nil, "en"))
	})

	t.Run("indexed placeholders", func(t *testing.T) {
		e := catalog.Simple("Hello {0}, meet {1}")
		assert.Equal(t, "Hello Ann, meet Bob", catalog.Format(e, []any{"Ann", "Bob"}, "en"))
	})

	t.Run("printf markers map to the first argument", func(t *testing.T) {
		e := catalog.Simple("Hello %s")
		assert.Equal(t, "Hello Ann", catalog.Format(e, []any{"Ann"}, "en"))

		e = catalog.Simple("Code %d")
		assert.Equal(t, "Code 7", catalog.Format(e, []any{7}, "en"))
	})

	t.Run("missing index stays verbatim", func(t *testing.T) {
		e := catalog.Simple("Hello {3}")
		assert.Equal(t, "Hello {3}", catalog.Format(e, []any{"Ann"}, "en"))
	})

	t.Run("unrecognized markers stay verbatim", func(t *testing.T) {
		e := catalog.Simple("100%x done {a}")
		assert.Equal(t, "100%x done {a}", catalog.Format(e, []any{"Ann"}, "en"))
	})

	t.Run("substitution does not recurse", func(t *testing.T) {
		e := catalog.Simple("{0}")
		assert.Equal(t, "{0} again", catalog.Format(e, []any{"{0} again"}, "en"))
	})
}

func TestFormatPlural(t *testing.T) {
	apples := catalog.PluralEntry(map[plural.Category]string{
		plural.One:   "I have # apple",
		plural.Other: "I have # apples",
	})

	t.Run("english counts", func(t *testing.T) {
		assert.Equal(t, "I have 1 apple", catalog.Format(apples, []any{1}, "en"))
		assert.Equal(t, "I have 5 apples", catalog.Format(apples, []any{5}, "en"))
		assert.Equal(t, "I have 0 apples", catalog.Format(apples, []any{0}, "en"))
	})

	t.Run("no args returns other", func(t *testing.T) {
		assert.Equal(t, "I have # apples", catalog.Format(apples, nil, "en"))
	})

	t.Run("float count", func(t *testing.T) {
		assert.Equal(t, "I have 2.5 apples", catalog.Format(apples, []any{2.5}, "en"))
	})

	t.Run("numeric string count", func(t *testing.T) {
		assert.Equal(t, "I have 1 apple", catalog.Format(apples, []any{"1"}, "en"))
	})

	t.Run("non-numeric string count defaults to other", func(t *testing.T) {
		assert.Equal(t, "I have some apples", catalog.Format(apples, []any{"some"}, "en"))
	})

	t.Run("missing category falls back to other", func(t *testing.T) {
		e := catalog.PluralEntry(map[plural.Category]string{
			plural.Other: "# dni",
		})
		assert.Equal(t, "2 dni", catalog.Format(e, []any{2}, "pl"))
	})

	t.Run("locale drives the category", func(t *testing.T) {
		dni := catalog.PluralEntry(map[plural.Category]string{
			plural.One:   "# dzien",
			plural.Few:   "# dni",
			plural.Many:  "# dni wiele",
			plural.Other: "# dnia",
		})
		assert.Equal(t, "1 dzien", catalog.Format(dni, []any{1}, "pl"))
		assert.Equal(t, "3 dni", catalog.Format(dni, []any{3}, "pl"))
		assert.Equal(t, "5 dni wiele", catalog.Format(dni, []any{5}, "pl"))
		assert.Equal(t, "1.5 dnia", catalog.Format(dni, []any{1.5}, "pl"))
	})

	t.Run("numeric markers render the count", func(t *testing.T) {
		e := catalog.PluralEntry(map[plural.Category]string{
			plural.One:   "%d item",
			plural.Other: "%d items",
		})
		assert.Equal(t, "3 items", catalog.Format(e, []any{3}, "en"))
	})

	t.Run("plural text may reference later arguments", func(t *testing.T) {
		e := catalog.PluralEntry(map[plural.Category]string{
			plural.One:   "# message for {1}",
			plural.Other: "# messages for {1}",
		})
		assert.Equal(t, "2 messages for Ann", catalog.Format(e, []any{2, "Ann"}, "en"))
	})
}
