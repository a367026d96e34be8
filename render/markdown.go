package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/revelaction/tagfreq/report"
	"github.com/revelaction/tagfreq/stat"
)

// MarkdownRenderer writes the reports as a Markdown document, one table per
// category.
type MarkdownRenderer struct {
	W io.Writer
}

func NewMarkdownRenderer(w io.Writer) *MarkdownRenderer {
	return &MarkdownRenderer{W: w}
}

func (r *MarkdownRenderer) Render(title string, st stat.Stats, reports []report.Report) error {
	md := markdown.NewMarkdown(r.W)

	md.H1("Tag counts of " + title)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Sentences", strconv.Itoa(st.NumSentences)},
			{"Tokens", strconv.Itoa(st.NumTokens)},
			{"Tokens per sentence", strconv.Itoa(st.TokensPerSentenceMean)},
			{"Tokens with feats", strconv.Itoa(st.NumFeatureTokens)},
			{"Feature pairs", strconv.Itoa(st.NumFeaturePairs)},
		},
	})
	md.PlainText("")

	for _, rp := range reports {
		r.writeReport(md, rp)
	}

	return md.Build()
}

func (r *MarkdownRenderer) writeReport(md *markdown.Markdown, rp report.Report) {
	if rp.Top > 0 {
		md.H2(fmt.Sprintf("Top %d %s", rp.Top, rp.Category.Label()))
	} else {
		md.H2("All " + rp.Category.Label())
	}
	md.PlainText("")

	if rp.Short {
		md.Note(fmt.Sprintf("This list has less than %d entries.", rp.Top))
		md.PlainText("")
	}

	if len(rp.Entries) == 0 {
		md.Tip("No tags found.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(rp.Entries))
	for i, e := range rp.Entries {
		rows[i] = []string{strconv.Itoa(i + 1), escapeCell(e.Key.String()), strconv.Itoa(e.Count)}
	}

	md.Table(markdown.TableSet{
		Header: []string{"#", "Tag", "Count"},
		Rows:   rows,
	})
	md.PlainText("")
}

// escapeCell keeps the '|' of feature set keys from splitting the cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// compile-time interface check
var _ Renderer = (*MarkdownRenderer)(nil)
