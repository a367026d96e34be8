package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/tagfreq/config"
	"github.com/revelaction/tagfreq/log"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "tagfreq: %v\n", err)
}

// env is shared by the commands of one run.
type env struct {
	ui     UI
	logger *slog.Logger
	cfg    *config.Config
}

func newApp(ui UI) *cli.App {
	e := &env{ui: ui, logger: log.Discard()}

	return &cli.App{
		Name:      "tagfreq",
		Usage:     "count and rank the tags of a CoNLL-U file",
		Writer:    ui.Out,
		ErrWriter: ui.Err,

		EnableBashCompletion: true,

		// errors are printed once, by main
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML configuration `FILE`",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log at debug level",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "log JSON records",
			},
		},
		Before: e.before,
		Commands: []*cli.Command{
			countCommand(e),
			statCommand(e),
			queryCommand(e),
			versionCommand(e),
			bashCommand(e),
		},
	}
}

// before sets up the logger and loads the configuration.
func (e *env) before(c *cli.Context) error {
	verbose := c.Bool("verbose")
	if c.Bool("log-json") {
		e.logger = log.NewJSONLogger(e.ui.Err, verbose)
	} else {
		e.logger = log.NewLogger(e.ui.Err, verbose)
	}

	cfg, err := config.Resolve(c.String("config"))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	e.logger.Debug("config loaded", "format", cfg.Format, "top", cfg.Top, "categories", cfg.Categories)
	e.cfg = cfg
	return nil
}

// argPath returns the single FILE argument of a command.
func argPath(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("%s: expected one FILE argument, got %d", c.Command.Name, c.NArg())
	}
	return c.Args().First(), nil
}
