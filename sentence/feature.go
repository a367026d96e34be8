package sentence

import (
	"sort"
	"strings"
)

// Feature is one name=value entry of the FEATS column.
type Feature struct {
	Name  string
	Value string
}

func (f Feature) String() string {
	return f.Name + "=" + f.Value
}

// FeatureSet is the FEATS column of a token. The zero value is the empty
// set ("_"). A present set keeps the features in the order the file lists
// them.
type FeatureSet struct {
	features []Feature
}

// NewFeatureSet returns a set with fs in the given order. A later feature
// with an already seen name replaces the value in the first position.
func NewFeatureSet(fs ...Feature) FeatureSet {
	var set FeatureSet
	for _, f := range fs {
		set = set.with(f)
	}
	return set
}

func (s FeatureSet) with(f Feature) FeatureSet {
	for i, e := range s.features {
		if e.Name == f.Name {
			s.features[i].Value = f.Value
			return s
		}
	}
	s.features = append(s.features, f)
	return s
}

func (s FeatureSet) IsEmpty() bool {
	return len(s.features) == 0
}

func (s FeatureSet) Len() int {
	return len(s.features)
}

// Features returns a copy of the features.
func (s FeatureSet) Features() []Feature {
	if s.IsEmpty() {
		return nil
	}
	out := make([]Feature, len(s.features))
	copy(out, s.features)
	return out
}

// Value returns the value of the feature called name.
func (s FeatureSet) Value(name string) (string, bool) {
	for _, f := range s.features {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Pairs returns the "name=value" strings in set order.
func (s FeatureSet) Pairs() []string {
	if s.IsEmpty() {
		return nil
	}
	pairs := make([]string, len(s.features))
	for i, f := range s.features {
		pairs[i] = f.String()
	}
	return pairs
}

// Sorted returns a copy of the set ordered by feature name.
func (s FeatureSet) Sorted() FeatureSet {
	fs := s.Features()
	sort.SliceStable(fs, func(i, j int) bool {
		return fs[i].Name < fs[j].Name
	})
	return FeatureSet{features: fs}
}

// String renders the set as a FEATS column.
func (s FeatureSet) String() string {
	if s.IsEmpty() {
		return Placeholder
	}
	return strings.Join(s.Pairs(), "|")
}

func (s FeatureSet) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
