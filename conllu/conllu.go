// Package conllu reads CoNLL-U files into sentence.Doc values.
//
// See https://universaldependencies.org/format.html for the format. Every
// token line has ten tab separated columns, comment lines start with '#' and
// a blank line ends a sentence. Multiword token ranges ("1-2") and empty
// nodes ("8.1") are kept as tokens unless WithWordsOnly is given.
package conllu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	sent "github.com/revelaction/tagfreq/sentence"

	"golang.org/x/text/unicode/norm"
)

const (
	fieldSeparator    = "\t"
	numFields         = 10
	featuresSeparator = "|"
	featureSeparator  = "="

	bom         = "\ufeff"
	maxLineSize = 16 * 1024 * 1024
)

var (
	ErrFieldCount       = errors.New("wrong number of fields")
	ErrMissingID        = errors.New("empty ID field")
	ErrMalformedFeature = errors.New("malformed feature")
)

// ParseError reports the input line that could not be parsed.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("conllu line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Option configures Parse.
type Option func(*parser)

// WithWordsOnly drops multiword token ranges and empty nodes.
func WithWordsOnly() Option {
	return func(p *parser) {
		p.wordsOnly = true
	}
}

// WithNormalization converts every line to Unicode NFC before splitting it.
func WithNormalization() Option {
	return func(p *parser) {
		p.normalize = true
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(p *parser) {
		if l != nil {
			p.logger = l
		}
	}
}

type parser struct {
	wordsOnly bool
	normalize bool
	logger    *slog.Logger

	doc     sent.Doc
	current sent.Sentence
	skipped int
}

// Parse reads a whole CoNLL-U document from r.
func Parse(r io.Reader, opts ...Option) (sent.Doc, error) {
	p := &parser{logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if line == 1 {
			text = strings.TrimPrefix(text, bom)
		}

		if p.normalize {
			text = norm.NFC.String(text)
		}

		if strings.TrimSpace(text) == "" {
			p.flush()
			continue
		}

		if strings.HasPrefix(text, "#") {
			p.current.Comments = append(p.current.Comments, text)
			continue
		}

		token, err := parseToken(text)
		if err != nil {
			return sent.Doc{}, &ParseError{Line: line, Err: err}
		}

		if p.wordsOnly && token.Kind() != sent.Word {
			p.skipped++
			continue
		}

		p.current.Tokens = append(p.current.Tokens, token)
	}

	if err := scanner.Err(); err != nil {
		return sent.Doc{}, fmt.Errorf("reading conllu at line %d: %w", line+1, err)
	}

	// the last sentence may lack the closing blank line
	p.flush()

	p.logger.Debug("parsed conllu",
		"lines", line,
		"sentences", len(p.doc.Sentences),
		"tokens", p.doc.NumTokens(),
		"skipped", p.skipped,
	)

	return p.doc, nil
}

// flush closes the current sentence. Sentences without tokens are not
// added to the doc.
func (p *parser) flush() {
	if len(p.current.Tokens) == 0 {
		if len(p.current.Comments) > 0 {
			p.logger.Debug("dropping comments without tokens", "comments", len(p.current.Comments))
		}
		p.current = sent.Sentence{}
		return
	}

	p.current.Id = len(p.doc.Sentences)
	p.doc.Sentences = append(p.doc.Sentences, p.current)
	p.current = sent.Sentence{}
}

func parseToken(line string) (sent.Token, error) {
	record := strings.Split(line, fieldSeparator)
	if len(record) != numFields {
		return sent.Token{}, fmt.Errorf("%w: expected %d, got %d", ErrFieldCount, numFields, len(record))
	}

	if record[0] == "" {
		return sent.Token{}, ErrMissingID
	}

	feats, err := ParseFeatures(record[5])
	if err != nil {
		return sent.Token{}, err
	}

	return sent.Token{
		Id:     record[0],
		Form:   record[1],
		Lemma:  record[2],
		Upos:   record[3],
		Xpos:   record[4],
		Feats:  feats,
		Head:   record[6],
		Deprel: record[7],
		Deps:   record[8],
		Misc:   record[9],
	}, nil
}

// ParseFeatures parses a FEATS column. "_" is the empty set.
func ParseFeatures(s string) (sent.FeatureSet, error) {
	if s == sent.Placeholder {
		return sent.FeatureSet{}, nil
	}

	pairs := strings.Split(s, featuresSeparator)
	features := make([]sent.Feature, 0, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, featureSeparator)
		if !ok || name == "" || value == "" {
			return sent.FeatureSet{}, fmt.Errorf("%w: %q", ErrMalformedFeature, pair)
		}
		features = append(features, sent.Feature{Name: name, Value: value})
	}

	return sent.NewFeatureSet(features...), nil
}
