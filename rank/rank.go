// Package rank orders tag counts by frequency.
package rank

import (
	"sort"

	"github.com/revelaction/tagfreq/tag"
)

// List is a ranking, highest count first.
type List []tag.Entry

// Rank sorts the entries of t by descending count. Equal counts keep the
// order in which the keys were first seen in the doc.
func Rank(t *tag.Table) List {
	l := List(t.Entries())
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Count > l[j].Count
	})
	return l
}

// Top returns the first n entries of l. When n is not smaller than the
// length of l the whole list is returned, and short reports whether l has
// fewer than n entries. A non positive n returns an empty list.
func Top(l List, n int) (top List, short bool) {
	if n <= 0 {
		return List{}, false
	}

	if n >= len(l) {
		return l, len(l) < n
	}

	return l[:n], false
}

// Total is the sum of the counts of l.
func (l List) Total() int {
	total := 0
	for _, e := range l {
		total += e.Count
	}
	return total
}
