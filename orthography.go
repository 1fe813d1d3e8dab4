package letterfreq

import "unicode"

// GlyphGroup is a set of variant glyphs counted under one canonical glyph.
type GlyphGroup struct {
	Name      string
	Canonical rune
	Variants  []rune
}

// Orthography holds the lookup tables used to filter and count text.
// Use NewOrthography to build one; the zero value is not usable.
type Orthography struct {
	// Artifacts are characters left behind by encoding mismatches
	// (typographic dashes, quotes, no-break spaces). They are dropped.
	Artifacts []rune

	// SoftConsonants maps a consonant to its soft form, used when the
	// following character is one of SoftTriggers.
	SoftConsonants map[rune]rune
	SoftTriggers   []rune

	// Groups are checked in order after the soft consonant rule.
	Groups []GlyphGroup

	artifacts map[rune]struct{}
	triggers  map[rune]struct{}
	canonical map[rune]rune
}

// NewOrthography builds the lookup indexes for the given rule tables.
func NewOrthography(artifacts []rune, soft map[rune]rune, triggers []rune, groups []GlyphGroup) *Orthography {
	o := &Orthography{
		Artifacts:      artifacts,
		SoftConsonants: soft,
		SoftTriggers:   triggers,
		Groups:         groups,
		artifacts:      make(map[rune]struct{}, len(artifacts)),
		triggers:       make(map[rune]struct{}, len(triggers)),
		canonical:      make(map[rune]rune),
	}
	for _, r := range artifacts {
		o.artifacts[r] = struct{}{}
	}
	for _, r := range triggers {
		o.triggers[r] = struct{}{}
	}
	for _, g := range groups {
		for _, v := range g.Variants {
			// An earlier group keeps a glyph listed twice.
			if _, ok := o.canonical[v]; !ok {
				o.canonical[v] = g.Canonical
			}
		}
	}
	return o
}

// Romanian is the orthography of the texts published on biblior.net.
var Romanian = NewOrthography(
	[]rune{
		'\u2014', // em dash
		'\u00a0', // no-break space
		'\u2013', // en dash
		'\u201e', // double low-9 quotation mark
		'\u2022', // bullet
		'\u201d', // right double quotation mark
		'\u00ab', // left guillemet
		'\u00bb', // right guillemet
		'\u00ad', // soft hyphen
		'\u00b0', // degree sign
		'\u00a3', // pound sign
		'\u2026', // ellipsis
		'\u2019', // right single quotation mark
		'\u201c', // left double quotation mark
		'\u201a', // single low-9 quotation mark
		'\u00bd', // one half
		'\u02dd', // double acute accent
	},
	map[rune]rune{
		'c': 'ç', 'C': 'ç',
		'g': 'ģ', 'G': 'ģ',
	},
	[]rune{'e', 'i'},
	[]GlyphGroup{
		{Name: "sibilant", Canonical: 'ş', Variants: []rune{'ş', 'ș', 'Ş', 'Ș'}},
		{Name: "affricate", Canonical: 'ţ', Variants: []rune{'ţ', 'ț', 'Ţ', 'Ț'}},
		{Name: "circumflex vowel", Canonical: 'î', Variants: []rune{'î', 'â', 'Î', 'Â'}},
	},
)

// Filter lowercases text and keeps only the characters worth counting.
// ASCII whitespace, punctuation and digits are dropped, as are artifacts.
func (o *Orthography) Filter(text string) []rune {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if isASCIISpace(r) || isASCIIPunct(r) || isASCIIDigit(r) {
			continue
		}
		if _, ok := o.artifacts[r]; ok {
			continue
		}
		// Simple case mapping: one rune in, one rune out, so İ lowers to i.
		out = append(out, unicode.ToLower(r))
	}
	return out
}

// Key returns the counting key of chars[i]. The soft consonant rule looks
// at chars[i+1] as given, never at its normalised key.
func (o *Orthography) Key(chars []rune, i int) rune {
	r := chars[i]
	if i < len(chars)-1 {
		if soft, ok := o.SoftConsonants[r]; ok {
			if _, ok := o.triggers[chars[i+1]]; ok {
				return soft
			}
		}
	}
	if c, ok := o.canonical[r]; ok {
		return c
	}
	return r
}

// Count builds a frequency table from a filtered character sequence.
// The table's total always equals len(chars).
func (o *Orthography) Count(chars []rune) *Table {
	t := NewTable()
	for i := range chars {
		t.Add(o.Key(chars, i), 1)
	}
	return t
}

// Filter filters text using the Romanian orthography.
func Filter(text string) []rune {
	return Romanian.Filter(text)
}

// Count counts chars using the Romanian orthography.
func Count(chars []rune) *Table {
	return Romanian.Count(chars)
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isASCIIPunct(r rune) bool {
	return (r >= '!' && r <= '/') ||
		(r >= ':' && r <= '@') ||
		(r >= '[' && r <= '`') ||
		(r >= '{' && r <= '~')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
