package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/tagfreq/report"
	"github.com/revelaction/tagfreq/stat"
)

// JSONRenderer writes the reports as one JSON object to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

type jsonDoc struct {
	Title   string       `json:"title"`
	Stats   stat.Stats   `json:"stats"`
	Reports []jsonReport `json:"reports"`
}

type jsonReport struct {
	Category string      `json:"category"`
	Top      int         `json:"top"`
	Short    bool        `json:"short"`
	Total    int         `json:"total"`
	Distinct int         `json:"distinct"`
	Entries  []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	Rank  int    `json:"rank"`
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Render serializes the reports, with 1-based ranks.
func (r *JSONRenderer) Render(title string, st stat.Stats, reports []report.Report) error {
	out := jsonDoc{Title: title, Stats: st, Reports: make([]jsonReport, len(reports))}

	for i, rp := range reports {
		jr := jsonReport{
			Category: string(rp.Category),
			Top:      rp.Top,
			Short:    rp.Short,
			Total:    rp.Total,
			Distinct: rp.Distinct,
			Entries:  make([]jsonEntry, len(rp.Entries)),
		}
		for j, e := range rp.Entries {
			jr.Entries[j] = jsonEntry{Rank: j + 1, Key: e.Key.String(), Count: e.Count}
		}
		out.Reports[i] = jr
	}

	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
