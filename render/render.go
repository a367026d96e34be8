package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/tagfreq/report"
	"github.com/revelaction/tagfreq/stat"
)

const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

var (
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Off       = "\033[0m"
)

// Renderer writes the reports of one doc.
type Renderer interface {
	Render(title string, st stat.Stats, reports []report.Report) error
}

func SupportedFormats() []string {
	return []string{FormatText, FormatJSON, FormatMarkdown}
}

// Formats is an alias of SupportedFormats.
func Formats() []string {
	return SupportedFormats()
}

// New returns the renderer of format writing to w.
func New(format string, w io.Writer) (Renderer, error) {
	switch format {
	case FormatText:
		return NewTextRenderer(w), nil
	case FormatJSON:
		return NewJSONRenderer(w), nil
	case FormatMarkdown:
		return NewMarkdownRenderer(w), nil
	}
	return nil, fmt.Errorf("unknown format %q, allowed values are %s", format, strings.Join(SupportedFormats(), ", "))
}

// NextFormat returns the format following f, in the SupportedFormats()
// order.
func NextFormat(f string) string {
	supported := SupportedFormats()
	for i, format := range supported {
		if format == f {
			return supported[(i+1)%len(supported)]
		}
	}
	return supported[0]
}

// TextRenderer writes numbered "key: count" lines under a heading per
// category.
type TextRenderer struct {
	W io.Writer

	HasColor bool

	// HasStats prints the doc summary before the reports
	HasStats bool
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w}
}

func (r *TextRenderer) Render(title string, st stat.Stats, reports []report.Report) error {
	var b strings.Builder

	if r.HasStats {
		b.WriteString(r.color(Grey256, Summary(st)))
		b.WriteString("\n\n")
	}

	for _, rp := range reports {
		b.WriteString(r.color(Yellow256, Heading(rp, title)))
		b.WriteString("\n")

		if rp.Short {
			fmt.Fprintf(&b, "This list has less than %d entries!\n", rp.Top)
		}

		for i, e := range rp.Entries {
			fmt.Fprintf(&b, "%d. %s: %d\n", i+1, e.Key, e.Count)
		}

		b.WriteString("\n")
	}

	_, err := io.WriteString(r.W, b.String())
	return err
}

func (r *TextRenderer) color(c, s string) string {
	if !r.HasColor {
		return s
	}
	return c + s + Off
}

// Heading is the title line of a report.
func Heading(rp report.Report, title string) string {
	if rp.Top > 0 {
		return fmt.Sprintf("Retrieving top %d %s counts from %s:", rp.Top, rp.Category.Label(), title)
	}
	return fmt.Sprintf("Retrieving all %s counts from %s:", rp.Category.Label(), title)
}

// Summary is the one line description of the doc stats.
func Summary(st stat.Stats) string {
	return fmt.Sprintf("Num sentences %d, num tokens %d, num tokens per sentence %d, num tokens with feats %d",
		st.NumSentences, st.NumTokens, st.TokensPerSentenceMean, st.NumFeatureTokens)
}

// compile-time interface check
var _ Renderer = (*TextRenderer)(nil)
