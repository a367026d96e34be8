package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/tagfreq/file"
	sent "github.com/revelaction/tagfreq/sentence"
	"github.com/revelaction/tagfreq/stat"
)

func statCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "print the sentence and token totals of a file",
		ArgsUsage: "FILE.conllu",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "sentence",
				Aliases: []string{"s"},
				Usage:   "restrict to the sentence at `INDEX`",
			},
			&cli.BoolFlag{
				Name:  "dis",
				Usage: "print the tokens per sentence distribution",
			},
		},
		Action: e.stat,
	}
}

func (e *env) stat(c *cli.Context) error {
	path, err := argPath(c)
	if err != nil {
		return err
	}

	doc, err := file.ReadDoc(path, parseOptions(*e.cfg, e)...)
	if err != nil {
		return err
	}

	if c.IsSet("sentence") {
		sentId := c.Int("sentence")
		if sentId < 0 || sentId >= len(doc.Sentences) {
			return fmt.Errorf("sentence index %d out of bounds (doc has %d sentences)", sentId, len(doc.Sentences))
		}
		doc = sent.Doc{Title: doc.Title, Sentences: []sent.Sentence{doc.Sentences[sentId]}}
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(doc)

	stats := hdl.Get()
	fmt.Fprintf(e.ui.Out, "Num sentences %d, num tokens %d, num tokens per sentence %d\n", stats.NumSentences, stats.NumTokens, stats.TokensPerSentenceMean)
	fmt.Fprintf(e.ui.Out, "Num tokens with feats %d, num feature pairs %d\n", stats.NumFeatureTokens, stats.NumFeaturePairs)

	if c.Bool("dis") {
		for _, n := range slices.Sorted(maps.Keys(stats.TokensPerSentenceDis)) {
			fmt.Fprintf(e.ui.Out, "%d tokens: %d sentences\n", n, stats.TokensPerSentenceDis[n])
		}
	}

	return nil
}
