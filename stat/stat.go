package stat

import (
	sent "github.com/revelaction/tagfreq/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences int `json:"sentences"`
	NumTokens    int `json:"tokens"`

	// tokens with a non empty FEATS column
	NumFeatureTokens int `json:"feature_tokens"`
	// name=value pairs of all FEATS columns
	NumFeaturePairs int `json:"feature_pairs"`

	TokensPerSentenceMean int         `json:"tokens_per_sentence_mean"`
	TokensPerSentenceDis  map[int]int `json:"tokens_per_sentence_dis"`
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the sentences of doc to the stats.
func (h *Handler) Aggregate(doc sent.Doc) {
	h.stats.NumSentences += len(doc.Sentences)

	for _, sentence := range doc.Sentences {
		h.stats.NumTokens += len(sentence.Tokens)
		h.stats.TokensPerSentenceDis[len(sentence.Tokens)]++

		for _, token := range sentence.Tokens {
			if token.Feats.IsEmpty() {
				continue
			}
			h.stats.NumFeatureTokens++
			h.stats.NumFeaturePairs += token.Feats.Len()
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}

// Of returns the stats of one doc.
func Of(doc sent.Doc) Stats {
	h := NewHandler()
	h.Aggregate(doc)
	return h.Get()
}
