package tag

import (
	"errors"
	"testing"

	sent "github.com/revelaction/tagfreq/sentence"
)

func feats(pairs ...string) sent.FeatureSet {
	fs := make([]sent.Feature, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		fs = append(fs, sent.Feature{Name: pairs[i], Value: pairs[i+1]})
	}
	return sent.NewFeatureSet(fs...)
}

// testDoc has 6 tokens, 4 of them with features (8 feature pairs).
func testDoc() sent.Doc {
	return sent.Doc{Sentences: []sent.Sentence{
		{Id: 0, Tokens: []sent.Token{
			{Id: "1", Upos: "DET", Xpos: "DA0FP0", Deprel: "det", Feats: feats("Gender", "Fem", "Number", "Plur", "PronType", "Art")},
			{Id: "2", Upos: "NOUN", Xpos: "NCFP000", Deprel: "root", Feats: feats("Gender", "Fem", "Number", "Plur")},
			{Id: "3", Upos: "PUNCT", Xpos: "Fp", Deprel: "punct"},
		}},
		{Id: 1, Tokens: []sent.Token{
			{Id: "1", Upos: "NOUN", Xpos: "_", Deprel: "nsubj", Feats: feats("Number", "Plur", "Gender", "Fem")},
			{Id: "2", Upos: "VERB", Xpos: "_", Deprel: "root", Feats: feats("Mood", "Ind")},
			{Id: "3", Upos: "", Xpos: "_", Deprel: "punct"},
		}},
	}}
}

func TestCountFieldScenario(t *testing.T) {
	doc := sent.Doc{Sentences: []sent.Sentence{{Tokens: []sent.Token{
		{Upos: "NOUN"}, {Upos: "VERB"}, {Upos: "NOUN"},
	}}}}

	table, err := CountField(doc, "upos")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if table.Len() != 2 {
		t.Fatalf("expected 2 keys, got %d", table.Len())
	}
	if c := table.Count(NewKey("NOUN")); c != 2 {
		t.Errorf("expected NOUN 2, got %d", c)
	}
	if c := table.Count(NewKey("VERB")); c != 1 {
		t.Errorf("expected VERB 1, got %d", c)
	}
}

func TestSimpleFieldTotals(t *testing.T) {
	doc := testDoc()

	for _, c := range []Category{Upos, Xpos, Deprel} {
		t.Run(string(c), func(t *testing.T) {
			table, err := Extract(doc, c, Options{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if table.Total() != doc.NumTokens() {
				t.Errorf("expected total %d, got %d", doc.NumTokens(), table.Total())
			}

			sum := 0
			for _, e := range table.Entries() {
				sum += e.Count
			}
			if sum != table.Total() {
				t.Errorf("entries sum %d differs from total %d", sum, table.Total())
			}
		})
	}
}

func TestEmptyStringIsAKey(t *testing.T) {
	table, err := CountField(testDoc(), "upos")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c := table.Count(NewKey("")); c != 1 {
		t.Errorf("expected empty upos counted once, got %d", c)
	}
	if c := table.Count(NewKey()); c != 0 {
		t.Errorf("the key without parts must differ from the empty string key, got %d", c)
	}
}

func TestFeatureSetAndIndividualScenario(t *testing.T) {
	doc := sent.Doc{Sentences: []sent.Sentence{{Tokens: []sent.Token{
		{Feats: feats("Number", "Sing", "Case", "Nom")},
	}}}}

	full, err := CountFeatureSets(doc, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if full.Len() != 1 || full.Count(NewKey("Number=Sing", "Case=Nom")) != 1 {
		t.Errorf("unexpected feature set table %+v", full.Entries())
	}

	indi, err := CountFeatures(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if indi.Len() != 2 || indi.Total() != 2 {
		t.Fatalf("expected 2 keys and 2 increments, got %d and %d", indi.Len(), indi.Total())
	}
	if indi.Count(NewKey("Number=Sing")) != 1 || indi.Count(NewKey("Case=Nom")) != 1 {
		t.Errorf("unexpected individual table %+v", indi.Entries())
	}
}

func TestFeatureSetOrderMatters(t *testing.T) {
	doc := testDoc()

	table, err := Extract(doc, Feats, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Gender=Fem|Number=Plur and Number=Plur|Gender=Fem are different keys
	if table.Len() != 4 {
		t.Errorf("expected 4 keys, got %d", table.Len())
	}
	if table.Count(NewKey("Gender=Fem", "Number=Plur")) != 1 || table.Count(NewKey("Number=Plur", "Gender=Fem")) != 1 {
		t.Errorf("unexpected table %+v", table.Entries())
	}

	// tokens with at least one feature
	if table.Total() != 4 {
		t.Errorf("expected total 4, got %d", table.Total())
	}
}

func TestFeatureSetSorted(t *testing.T) {
	table, err := Extract(testDoc(), Feats, Options{SortFeatures: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if table.Len() != 3 {
		t.Errorf("expected 3 keys, got %d", table.Len())
	}
	if c := table.Count(NewKey("Gender=Fem", "Number=Plur")); c != 2 {
		t.Errorf("expected Gender=Fem|Number=Plur 2, got %d", c)
	}
}

func TestIndividualFeaturesTotal(t *testing.T) {
	doc := testDoc()

	table, err := Extract(doc, IndiFeats, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pairs := 0
	for _, s := range doc.Sentences {
		for _, tok := range s.Tokens {
			pairs += tok.Feats.Len()
		}
	}

	if table.Total() != pairs {
		t.Errorf("expected total %d, got %d", pairs, table.Total())
	}
	if c := table.Count(NewKey("Gender=Fem")); c != 3 {
		t.Errorf("expected Gender=Fem 3, got %d", c)
	}
}

func TestEmptyDoc(t *testing.T) {
	for _, c := range Categories() {
		table, err := Extract(sent.Doc{}, c, Options{})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c, err)
		}
		if table.Len() != 0 || table.Total() != 0 {
			t.Errorf("%s: expected empty table, got %d keys", c, table.Len())
		}
	}
}

func TestFirstSeenOrder(t *testing.T) {
	table, err := CountField(testDoc(), "deprel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"det", "root", "punct", "nsubj"}
	entries := table.Entries()
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, w := range want {
		if entries[i].Key.String() != w {
			t.Errorf("entry %d: expected %q, got %q", i, w, entries[i].Key)
		}
	}
}

func TestUnknownField(t *testing.T) {
	_, err := CountField(testDoc(), "feats")
	if !errors.Is(err, sent.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"upos", Upos},
		{"XPOS", Xpos},
		{" deprel ", Deprel},
		{"feats", Feats},
		{"indi_feats", IndiFeats},
		{"indi-feats", IndiFeats},
	}

	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %s, got %s", tt.in, tt.want, got)
		}
	}

	if _, err := ParseCategory("lemma"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestKeyString(t *testing.T) {
	k := NewKey("Number=Sing", "Case=Nom")
	if k.String() != "Number=Sing|Case=Nom" {
		t.Errorf("unexpected key string %q", k)
	}
	if !k.Equal(NewKey("Number=Sing", "Case=Nom")) {
		t.Errorf("expected equal keys")
	}
	if k.Equal(NewKey("Case=Nom", "Number=Sing")) {
		t.Errorf("expected different keys")
	}
}
