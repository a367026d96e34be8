package sentence

import (
	"errors"
	"fmt"
	"strings"
)

// Placeholder is the CoNLL-U value of an unspecified column.
const Placeholder = "_"

// ErrUnknownField is returned by Token.Field for a name that is not a
// string column of the token.
var ErrUnknownField = errors.New("unknown token field")

// Doc is one parsed annotation file.
type Doc struct {
	Title string `json:"title"`

	Sentences []Sentence `json:"sentences"`
}

// NumTokens returns the number of tokens of all sentences.
func (d Doc) NumTokens() int {
	n := 0
	for _, s := range d.Sentences {
		n += len(s.Tokens)
	}
	return n
}

// Sentence is an ordered sequence of tokens, with the comment lines that
// preceded them.
type Sentence struct {
	// The index of the sentence in the doc, starting at 0.
	Id int `json:"id"`

	Comments []string `json:"comments,omitempty"`
	Tokens   []Token  `json:"tokens"`
}

// Kind tells a syntactic word from the two other CoNLL-U line types.
type Kind int

const (
	Word Kind = iota
	// Multiword token range, f.ex. "1-2"
	Range
	// Empty node, f.ex. "8.1"
	Empty
)

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	// the ID column, kept verbatim since it may be a range or a decimal
	Id string `json:"id"`

	// The unmodified word
	Form string `json:"form"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// Universal POS tag
	Upos string `json:"upos"`

	// Language specific POS tag
	Xpos string `json:"xpos"`

	Feats FeatureSet `json:"feats"`

	Head   string `json:"head"`
	Deprel string `json:"deprel"`
	Deps   string `json:"deps"`
	Misc   string `json:"misc"`
}

func (t Token) Kind() Kind {
	switch {
	case strings.Contains(t.Id, "-"):
		return Range
	case strings.Contains(t.Id, "."):
		return Empty
	}
	return Word
}

// Field returns the value of the string column called name. The names are
// the lowercase CoNLL-U column names.
func (t Token) Field(name string) (string, error) {
	switch name {
	case "id":
		return t.Id, nil
	case "form":
		return t.Form, nil
	case "lemma":
		return t.Lemma, nil
	case "upos":
		return t.Upos, nil
	case "xpos":
		return t.Xpos, nil
	case "head":
		return t.Head, nil
	case "deprel":
		return t.Deprel, nil
	case "deps":
		return t.Deps, nil
	case "misc":
		return t.Misc, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}
