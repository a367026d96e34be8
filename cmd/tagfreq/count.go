package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/tagfreq/config"
	"github.com/revelaction/tagfreq/conllu"
	"github.com/revelaction/tagfreq/file"
	"github.com/revelaction/tagfreq/render"
	"github.com/revelaction/tagfreq/report"
	"github.com/revelaction/tagfreq/stat"
	"github.com/revelaction/tagfreq/tag"
)

// categoryFlags maps each category to its flag.
var categoryFlags = []struct {
	category tag.Category
	flag     *cli.BoolFlag
}{
	{tag.Upos, &cli.BoolFlag{Name: "upos", Usage: "count universal part-of-speech tags"}},
	{tag.Xpos, &cli.BoolFlag{Name: "xpos", Usage: "count language-specific part-of-speech tags"}},
	{tag.Deprel, &cli.BoolFlag{Name: "deprel", Usage: "count dependency relations"}},
	{tag.Feats, &cli.BoolFlag{Name: "feats", Usage: "count full feature sets"}},
	{tag.IndiFeats, &cli.BoolFlag{Name: "indi-feats", Aliases: []string{"indi_feats"}, Usage: "count individual features"}},
}

func countCommand(e *env) *cli.Command {
	flags := []cli.Flag{}
	for _, cf := range categoryFlags {
		flags = append(flags, cf.flag)
	}

	flags = append(flags,
		&cli.BoolFlag{
			Name:  "all",
			Usage: "count every category",
		},
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "show only the first `N` entries of each category",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "output format: " + strings.Join(render.SupportedFormats(), ", "),
		},
		&cli.BoolFlag{
			Name:  "sort-feats",
			Usage: "order the features of a set by name before counting",
		},
		&cli.BoolFlag{
			Name:  "words-only",
			Usage: "skip multiword ranges and empty nodes",
		},
		&cli.BoolFlag{
			Name:  "nfc",
			Usage: "normalize the columns to Unicode NFC",
		},
		&cli.BoolFlag{
			Name:  "color",
			Usage: "color the text output",
		},
		&cli.BoolFlag{
			Name:  "stats",
			Usage: "print the doc summary before the text output",
		},
		&cli.BoolFlag{
			Name:  "progress",
			Usage: "show a progress bar on stderr",
		},
	)

	return &cli.Command{
		Name:      "count",
		Usage:     "rank the tags of the selected categories",
		ArgsUsage: "FILE.conllu",
		Flags:     flags,
		Action:    e.count,
	}
}

func (e *env) count(c *cli.Context) error {
	path, err := argPath(c)
	if err != nil {
		return err
	}

	cfg, err := mergeCountFlags(c, *e.cfg)
	if err != nil {
		return err
	}

	categories, err := selectCategories(c, cfg)
	if err != nil {
		return err
	}

	doc, err := file.ReadDoc(path, parseOptions(cfg, e)...)
	if err != nil {
		return err
	}

	opts := report.Options{
		Categories:   categories,
		Top:          cfg.Top,
		SortFeatures: cfg.SortFeatures,
		Logger:       e.logger,
	}

	if c.Bool("progress") {
		progress := uiprogress.New()
		progress.SetOut(e.ui.Err)
		bar := progress.AddBar(len(categories))
		bar.AppendCompleted()
		bar.PrependElapsed()

		progress.Start()
		defer progress.Stop()

		opts.OnDone = func(tag.Category) {
			bar.Incr()
		}
	}

	reports, err := report.Build(c.Context, doc, opts)
	if err != nil {
		return err
	}

	r, err := newRenderer(cfg, c.Bool("stats"), e.ui)
	if err != nil {
		return err
	}

	return r.Render(doc.Title, stat.Of(doc), reports)
}

// mergeCountFlags overrides the configuration with the flags set on the
// command line.
func mergeCountFlags(c *cli.Context, cfg config.Config) (config.Config, error) {
	if c.IsSet("count") {
		n := c.Int("count")
		if n <= 0 {
			return cfg, fmt.Errorf("%w: --count %d", config.ErrInvalidTop, n)
		}
		cfg.Top = n
	}

	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}

	cfg.SortFeatures = cfg.SortFeatures || c.Bool("sort-feats")
	cfg.WordsOnly = cfg.WordsOnly || c.Bool("words-only")
	cfg.Normalize = cfg.Normalize || c.Bool("nfc")
	cfg.Color = cfg.Color || c.Bool("color")

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// selectCategories returns the categories of the flags, in the fixed
// category order, or the configured ones when no flag is set.
func selectCategories(c *cli.Context, cfg config.Config) ([]tag.Category, error) {
	if c.Bool("all") {
		return tag.Categories(), nil
	}

	var categories []tag.Category
	for _, cf := range categoryFlags {
		if c.Bool(cf.flag.Name) && !slices.Contains(categories, cf.category) {
			categories = append(categories, cf.category)
		}
	}

	if len(categories) > 0 {
		return categories, nil
	}

	categories, err := cfg.TagCategories()
	if err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: use --upos, --xpos, --deprel, --feats, --indi-feats or --all", report.ErrNoCategory)
	}

	return categories, nil
}

func parseOptions(cfg config.Config, e *env) []conllu.Option {
	opts := []conllu.Option{conllu.WithLogger(e.logger)}
	if cfg.WordsOnly {
		opts = append(opts, conllu.WithWordsOnly())
	}
	if cfg.Normalize {
		opts = append(opts, conllu.WithNormalization())
	}
	return opts
}

func newRenderer(cfg config.Config, hasStats bool, ui UI) (render.Renderer, error) {
	r, err := render.New(cfg.Format, ui.Out)
	if err != nil {
		return nil, err
	}

	if tr, ok := r.(*render.TextRenderer); ok {
		tr.HasColor = cfg.Color
		tr.HasStats = hasStats
	}

	return r, nil
}
