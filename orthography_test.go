package letterfreq_test

import (
	"testing"

	"github.com/fwojciec/letterfreq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("lowercases and drops whitespace, punctuation and digits", func(t *testing.T) {
		t.Parallel()

		got := letterfreq.Filter("Ana are 3 mere!\n\t(Da.)")

		assert.Equal(t, []rune("anaaremereda"), got)
	})

	t.Run("drops encoding artifacts", func(t *testing.T) {
		t.Parallel()

		got := letterfreq.Filter("„Bună”\u00a0—\u00adzi…’«»")

		assert.Equal(t, []rune("bunăzi"), got)
	})

	t.Run("keeps Romanian diacritics", func(t *testing.T) {
		t.Parallel()

		got := letterfreq.Filter("ŞȘŢȚÎÂĂ")

		assert.Equal(t, []rune("şșţțîâă"), got)
	})

	t.Run("lowers each rune to a single rune", func(t *testing.T) {
		t.Parallel()

		got := letterfreq.Filter("Cİ")

		assert.Equal(t, []rune("ci"), got)
		assert.Equal(t, map[string]int{"ç": 1, "i": 1}, letterfreq.Count(got).Map())
	})

	t.Run("returns empty slice for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, letterfreq.Filter(""))
	})

	t.Run("is idempotent on clean input", func(t *testing.T) {
		t.Parallel()

		first := letterfreq.Filter("Pe o margine de lume, unde soarele apune.")
		second := letterfreq.Filter(string(first))

		assert.Equal(t, first, second)
	})

	t.Run("never grows the input", func(t *testing.T) {
		t.Parallel()

		inputs := []string{"", "abc", "  ", "A-B-C", "ţara… mea"}
		for _, in := range inputs {
			assert.LessOrEqual(t, len(letterfreq.Filter(in)), len([]rune(in)), in)
		}
	})
}

func TestCount(t *testing.T) {
	t.Parallel()

	t.Run("soft c before e", func(t *testing.T) {
		t.Parallel()

		table := letterfreq.Count([]rune("ce"))

		assert.Equal(t, map[string]int{"ç": 1, "e": 1}, table.Map())
	})

	t.Run("hard c before a", func(t *testing.T) {
		t.Parallel()

		table := letterfreq.Count([]rune("ca"))

		assert.Equal(t, map[string]int{"c": 1, "a": 1}, table.Map())
	})

	t.Run("single c has no lookahead", func(t *testing.T) {
		t.Parallel()

		table := letterfreq.Count([]rune("c"))

		assert.Equal(t, map[string]int{"c": 1}, table.Map())
	})

	t.Run("soft g before i", func(t *testing.T) {
		t.Parallel()

		table := letterfreq.Count([]rune("gi"))

		assert.Equal(t, map[string]int{"ģ": 1, "i": 1}, table.Map())
	})

	t.Run("uppercase consonants are softened too", func(t *testing.T) {
		t.Parallel()

		table := letterfreq.Count([]rune("CeGi"))

		assert.Equal(t, map[string]int{"ç": 1, "e": 1, "ģ": 1, "i": 1}, table.Map())
	})

	t.Run("last character never triggers the soft rule", func(t *testing.T) {
		t.Parallel()

		table := letterfreq.Count([]rune("eg"))

		assert.Equal(t, map[string]int{"e": 1, "g": 1}, table.Map())
	})

	t.Run("lookahead reads the original sequence", func(t *testing.T) {
		t.Parallel()

		// The second c becomes soft; the first c looks at a plain c.
		table := letterfreq.Count([]rune("cce"))

		assert.Equal(t, map[string]int{"c": 1, "ç": 1, "e": 1}, table.Map())
	})

	t.Run("uppercase trigger does not soften", func(t *testing.T) {
		t.Parallel()

		table := letterfreq.Count([]rune("cE"))

		assert.Equal(t, map[string]int{"c": 1, "E": 1}, table.Map())
	})

	for _, tc := range []struct {
		name      string
		canonical string
		variants  string
	}{
		{name: "sibilant", canonical: "ş", variants: "şșŞȘ"},
		{name: "affricate", canonical: "ţ", variants: "ţțŢȚ"},
		{name: "circumflex vowel", canonical: "î", variants: "îâÎÂ"},
	} {
		t.Run(tc.name+" variants unify", func(t *testing.T) {
			t.Parallel()

			for _, v := range tc.variants {
				table := letterfreq.Count([]rune{v})
				assert.Equal(t, map[string]int{tc.canonical: 1}, table.Map(), string(v))
			}
		})
	}

	t.Run("total equals input length", func(t *testing.T) {
		t.Parallel()

		chars := letterfreq.Filter("Cei care gîndesc şi ţin cîntecele în inimă, cântă.")
		table := letterfreq.Count(chars)

		assert.Equal(t, len(chars), table.Total())

		keys := table.Keys()
		seen := make(map[rune]bool)
		for _, k := range keys {
			require.False(t, seen[k], "duplicate key %q", string(k))
			seen[k] = true
			assert.Positive(t, table.Count(k))
		}
	})

	t.Run("empty sequence yields empty table", func(t *testing.T) {
		t.Parallel()

		table := letterfreq.Count(nil)

		assert.Equal(t, 0, table.Len())
		assert.Equal(t, 0, table.Total())
	})
}

func TestNewOrthography(t *testing.T) {
	t.Parallel()

	t.Run("applies custom tables", func(t *testing.T) {
		t.Parallel()

		o := letterfreq.NewOrthography(
			[]rune{'x'},
			map[rune]rune{'k': 'q'},
			[]rune{'u'},
			[]letterfreq.GlyphGroup{{Name: "a", Canonical: 'a', Variants: []rune{'á', 'à'}}},
		)

		chars := o.Filter("xkuàx")
		table := o.Count(chars)

		assert.Equal(t, []rune("kuà"), chars)
		assert.Equal(t, map[string]int{"q": 1, "u": 1, "a": 1}, table.Map())
	})

	t.Run("first group wins for a glyph listed twice", func(t *testing.T) {
		t.Parallel()

		o := letterfreq.NewOrthography(nil, nil, nil, []letterfreq.GlyphGroup{
			{Name: "first", Canonical: '1', Variants: []rune{'z'}},
			{Name: "second", Canonical: '2', Variants: []rune{'z'}},
		})

		assert.Equal(t, '1', o.Key([]rune("z"), 0))
	})
}
