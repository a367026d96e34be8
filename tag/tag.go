// Package tag counts annotation tags of a sentence.Doc.
//
// All categories go through Count, a single pass over the tokens of the doc
// that asks a KeyFunc for the keys each token contributes.
package tag

import (
	"errors"
	"fmt"
	"strings"

	sent "github.com/revelaction/tagfreq/sentence"
)

// Category is a kind of tag that can be counted.
type Category string

const (
	Upos      Category = "upos"
	Xpos      Category = "xpos"
	Deprel    Category = "deprel"
	Feats     Category = "feats"
	IndiFeats Category = "indi_feats"
)

var ErrUnknownCategory = errors.New("unknown tag category")

// Categories returns all categories in report order.
func Categories() []Category {
	return []Category{Upos, Xpos, Deprel, Feats, IndiFeats}
}

// ParseCategory accepts the category names and "indi-feats".
func ParseCategory(s string) (Category, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, c := range Categories() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Label is the human name of the category used in report headings.
func (c Category) Label() string {
	if c == IndiFeats {
		return "individual feats"
	}
	return string(c)
}

// Options for Extract.
type Options struct {
	// SortFeatures orders the features of a feats key by name. By default
	// the key keeps the order of the FEATS column.
	SortFeatures bool
}

// KeyFunc returns the keys a token contributes to the count, none, one or
// many.
type KeyFunc func(sent.Token) ([]Key, error)

// FieldKey uses the value of the string column name as the single key of a
// token.
func FieldKey(name string) KeyFunc {
	return func(t sent.Token) ([]Key, error) {
		v, err := t.Field(name)
		if err != nil {
			return nil, err
		}
		return []Key{NewKey(v)}, nil
	}
}

// FeatureSetKey uses the whole feature set as the key. Tokens without
// features contribute nothing.
func FeatureSetKey(sorted bool) KeyFunc {
	return func(t sent.Token) ([]Key, error) {
		if t.Feats.IsEmpty() {
			return nil, nil
		}

		fs := t.Feats
		if sorted {
			fs = fs.Sorted()
		}
		return []Key{NewKey(fs.Pairs()...)}, nil
	}
}

// FeatureKeys contributes one key per name=value feature of the token.
func FeatureKeys() KeyFunc {
	return func(t sent.Token) ([]Key, error) {
		pairs := t.Feats.Pairs()
		if len(pairs) == 0 {
			return nil, nil
		}

		keys := make([]Key, len(pairs))
		for i, p := range pairs {
			keys[i] = NewKey(p)
		}
		return keys, nil
	}
}

// KeyFuncFor returns the KeyFunc of a category.
func KeyFuncFor(c Category, opts Options) (KeyFunc, error) {
	switch c {
	case Upos, Xpos, Deprel:
		return FieldKey(string(c)), nil
	case Feats:
		return FeatureSetKey(opts.SortFeatures), nil
	case IndiFeats:
		return FeatureKeys(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
}

// Count walks every token of every sentence once and increments the keys
// returned by fn.
func Count(doc sent.Doc, fn KeyFunc) (*Table, error) {
	t := NewTable()
	for _, s := range doc.Sentences {
		for _, tok := range s.Tokens {
			keys, err := fn(tok)
			if err != nil {
				return nil, fmt.Errorf("sentence %d token %s: %w", s.Id, tok.Id, err)
			}
			for _, k := range keys {
				t.Add(k)
			}
		}
	}
	return t, nil
}

// Extract counts the tags of category c.
func Extract(doc sent.Doc, c Category, opts Options) (*Table, error) {
	fn, err := KeyFuncFor(c, opts)
	if err != nil {
		return nil, err
	}
	return Count(doc, fn)
}

// CountField counts the values of the string column name, f.ex. "upos".
func CountField(doc sent.Doc, name string) (*Table, error) {
	return Count(doc, FieldKey(name))
}

// CountFeatureSets counts whole feature sets.
func CountFeatureSets(doc sent.Doc, sorted bool) (*Table, error) {
	return Count(doc, FeatureSetKey(sorted))
}

// CountFeatures counts individual name=value features.
func CountFeatures(doc sent.Doc) (*Table, error) {
	return Count(doc, FeatureKeys())
}
