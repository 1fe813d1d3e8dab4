package letterfreq

import "slices"

// Frequency is one entry of a sorted frequency table.
type Frequency struct {
	Key   rune
	Count int
}

// Table is a frequency table that remembers the order in which keys were
// first added. It is not safe for concurrent use.
type Table struct {
	counts map[rune]int
	order  []rune
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{counts: make(map[rune]int)}
}

// Add increments the count of key by n. Non-positive n is ignored so that
// every stored count stays positive.
func (t *Table) Add(key rune, n int) {
	if n <= 0 {
		return
	}
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key] += n
}

// Merge adds every count of other into t. Keys new to t are appended in
// other's first-seen order.
func (t *Table) Merge(other *Table) {
	if other == nil {
		return
	}
	for _, key := range other.order {
		t.Add(key, other.counts[key])
	}
}

// Count returns the count of key, or 0 if the key was never added.
func (t *Table) Count(key rune) int {
	return t.counts[key]
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.order)
}

// Total returns the sum of all counts.
func (t *Table) Total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Keys returns the keys in first-seen order.
func (t *Table) Keys() []rune {
	return slices.Clone(t.order)
}

// Map returns a copy of the counts keyed by character.
func (t *Table) Map() map[string]int {
	m := make(map[string]int, len(t.counts))
	for k, n := range t.counts {
		m[string(k)] = n
	}
	return m
}

// Sorted returns the entries ordered by descending count. Keys with equal
// counts keep their first-seen order.
func (t *Table) Sorted() Frequencies {
	out := make(Frequencies, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, Frequency{Key: key, Count: t.counts[key]})
	}
	slices.SortStableFunc(out, func(a, b Frequency) int {
		return b.Count - a.Count
	})
	return out
}
