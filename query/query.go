package query

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/tagfreq/render"
	"github.com/revelaction/tagfreq/report"
	sent "github.com/revelaction/tagfreq/sentence"
	"github.com/revelaction/tagfreq/stat"
	"github.com/revelaction/tagfreq/tag"
)

const (
	cmdAll    = "all"
	cmdFormat = "format"
	cmdStats  = "stats"
	cmdHelp   = "help"
	cmdQuit   = "quit"
	cmdExit   = "exit"
)

var ErrInvalidTop = errors.New("the number of entries must be a positive integer")

const usage = `<category> [N]   show the ranking of upos, xpos, deprel, feats or indi_feats
all [N]          show the ranking of every category
format           switch the output format (Ctrl+F)
stats            show the doc summary
quit             leave`

type Handler struct {
	Doc   sent.Doc
	Stats stat.Stats

	// Output format, one of render.SupportedFormats()
	Format string

	SortFeatures bool

	Out    io.Writer
	Logger *slog.Logger
}

func NewHandler(doc sent.Doc, format string, out io.Writer) *Handler {
	return &Handler{
		Doc:    doc,
		Stats:  stat.Of(doc),
		Format: format,
		Out:    out,
		Logger: slog.Default(),
	}
}

func (h *Handler) Run() error {

	fmt.Fprintf(h.Out, "📖 %s: %s\n", h.Doc.Title, render.Summary(h.Stats))
	fmt.Fprintln(h.Out, "🔑 Ctrl+F: next Format, 🔧 help, quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🔖 ", h.completer(),
			prompt.OptionTitle("tagfreq query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.nextFormat(h.Out)
				}}),
		)

		history = append(history, in)

		quit, err := h.Exec(in, h.Out)
		if err != nil {
			fmt.Fprintf(h.Out, "✍  %v\n", err)
			continue
		}

		if quit {
			return nil
		}
	}
}

// Exec runs one prompt line and writes its output to w. It returns true
// when the line asks to leave.
func (h *Handler) Exec(line string, w io.Writer) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case cmdQuit, cmdExit:
		return true, nil
	case cmdFormat:
		h.nextFormat(w)
		return false, nil
	case cmdStats:
		_, err := fmt.Fprintln(w, render.Summary(h.Stats))
		return false, err
	case cmdHelp:
		_, err := fmt.Fprintln(w, usage)
		return false, err
	}

	if len(fields) > 2 {
		return false, fmt.Errorf("too many arguments: %q", line)
	}

	var categories []tag.Category
	if fields[0] == cmdAll {
		categories = tag.Categories()
	} else {
		c, err := tag.ParseCategory(fields[0])
		if err != nil {
			return false, err
		}
		categories = []tag.Category{c}
	}

	top := 0
	if len(fields) == 2 {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n <= 0 {
			return false, fmt.Errorf("%w: %q", ErrInvalidTop, fields[1])
		}
		top = n
	}

	reports, err := report.Build(context.Background(), h.Doc, report.Options{
		Categories:   categories,
		Top:          top,
		SortFeatures: h.SortFeatures,
		Logger:       h.Logger,
	})
	if err != nil {
		return false, err
	}

	r, err := render.New(h.Format, w)
	if err != nil {
		return false, err
	}

	return false, r.Render(h.Doc.Title, h.Stats, reports)
}

func (h *Handler) nextFormat(w io.Writer) {
	h.Format = render.NextFormat(h.Format)
	fmt.Fprintln(w, "Format set to: "+h.Format)
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		befCursor := in.TextBeforeCursor()

		// Only one character in line
		if "" == befCursor {
			return []prompt.Suggest{}
		}

		// complete only the first word
		if strings.Contains(befCursor, " ") {
			return []prompt.Suggest{}
		}

		return prompt.FilterHasPrefix(suggestions(), befCursor, true)
	}
}

func suggestions() []prompt.Suggest {
	s := []prompt.Suggest{}
	for _, c := range tag.Categories() {
		s = append(s, prompt.Suggest{Text: string(c), Description: c.Label() + " counts"})
	}

	s = append(s,
		prompt.Suggest{Text: cmdAll, Description: "every category"},
		prompt.Suggest{Text: cmdFormat, Description: "next output format"},
		prompt.Suggest{Text: cmdStats, Description: "doc summary"},
		prompt.Suggest{Text: cmdHelp, Description: "commands"},
		prompt.Suggest{Text: cmdQuit, Description: "leave"},
	)
	return s
}
