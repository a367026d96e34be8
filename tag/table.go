package tag

import (
	"encoding/json"
	"strconv"
	"strings"
)

// keySeparator joins the parts of a key into its map index. It cannot
// appear in a CoNLL-U column value.
const keySeparator = "\x1f"

// Key groups the occurrences of a tag. Simple tags have one part, a feature
// set has one part per feature.
type Key struct {
	parts []string
}

func NewKey(parts ...string) Key {
	return Key{parts: append([]string(nil), parts...)}
}

// Parts returns a copy of the key parts.
func (k Key) Parts() []string {
	return append([]string(nil), k.parts...)
}

// String joins the parts like a FEATS column.
func (k Key) String() string {
	return strings.Join(k.parts, "|")
}

func (k Key) Equal(o Key) bool {
	return k.index() == o.index()
}

// index is the map index of the key. The part count prefix keeps the empty
// key apart from a key with one empty part.
func (k Key) index() string {
	return strconv.Itoa(len(k.parts)) + keySeparator + strings.Join(k.parts, keySeparator)
}

func (k Key) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Entry is a key with its count.
type Entry struct {
	Key   Key `json:"key"`
	Count int `json:"count"`
}

// Table counts keys and remembers the order in which they were first seen.
type Table struct {
	index   map[string]int
	entries []Entry
	total   int
}

func NewTable() *Table {
	return &Table{index: map[string]int{}}
}

// Add increments the count of k, starting at 1 on first sight.
func (t *Table) Add(k Key) {
	t.total++

	idx := k.index()
	if i, ok := t.index[idx]; ok {
		t.entries[i].Count++
		return
	}

	t.index[idx] = len(t.entries)
	t.entries = append(t.entries, Entry{Key: k, Count: 1})
}

// Count returns the count of k, 0 if never added.
func (t *Table) Count(k Key) int {
	if i, ok := t.index[k.index()]; ok {
		return t.entries[i].Count
	}
	return 0
}

// Len is the number of distinct keys.
func (t *Table) Len() int {
	return len(t.entries)
}

// Total is the sum of all counts.
func (t *Table) Total() int {
	return t.total
}

// Entries returns a copy of the entries in first-seen order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
