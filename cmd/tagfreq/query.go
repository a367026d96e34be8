package main

import (
	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/tagfreq/file"
	"github.com/revelaction/tagfreq/query"
)

// Query command
func queryCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "rank tags interactively",
		ArgsUsage: "FILE.conllu",
		Action:    e.query,
	}
}

func (e *env) query(c *cli.Context) error {
	path, err := argPath(c)
	if err != nil {
		return err
	}

	progress := uiprogress.New()
	progress.SetOut(e.ui.Err)
	bar := progress.AddBar(1)
	bar.PrependElapsed()
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		return path
	})

	progress.Start()
	doc, err := file.ReadDoc(path, parseOptions(*e.cfg, e)...)
	bar.Incr()
	progress.Stop()

	if err != nil {
		return err
	}

	// now present the REPL
	h := query.NewHandler(doc, e.cfg.Format, e.ui.Out)
	h.SortFeatures = e.cfg.SortFeatures
	h.Logger = e.logger
	return h.Run()
}
