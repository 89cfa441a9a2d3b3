package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/paperbank/exam-parser/internal/db"
	"github.com/paperbank/exam-parser/internal/export"
	"github.com/paperbank/exam-parser/internal/mergekey"
	"github.com/paperbank/exam-parser/internal/parse"
	"github.com/paperbank/exam-parser/pkg/artifacts"
	"github.com/paperbank/exam-parser/pkg/help"
)

func main() {
	app := &cli.App{
		Name:  "exam-parser",
		Usage: "extract structured quiz questions from LaTeX and markdown exam papers",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "parse",
				Usage: "parse exam documents into question records",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "sources",
						Usage:    "comma-separated file paths or URLs",
						Required: false,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "number of concurrent workers",
						Value: 4,
					},
					&cli.StringFlag{
						Name:  "dialect",
						Usage: "input dialect: auto, latex, or markdown",
						Value: "auto",
					},
					&cli.StringFlag{
						Name:  "default-subject",
						Usage: "subject to assign when no signal is found",
					},
					&cli.StringFlag{
						Name:  "subject-ranges",
						Usage: `number ranges per subject, e.g. "1-25:Physics,26-50:Chemistry,51-75:Mathematics"`,
					},
					&cli.IntFlag{
						Name:  "min-block-len",
						Usage: "minimum block length to count as a question",
					},
					&cli.IntFlag{
						Name:  "max-option-len",
						Usage: "maximum option text length before rejection",
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Usage: "results directory",
						Value: artifacts.DefaultBaseDir,
					},
					&cli.StringFlag{
						Name:  "cache-dir",
						Usage: "download cache directory",
						Value: "exam-cache",
					},
					&cli.StringFlag{
						Name:  "cache-ttl",
						Usage: "how long fetched documents stay fresh",
						Value: "168h",
					},
					&cli.BoolFlag{
						Name:  "force-fetch",
						Usage: "ignore the download cache",
					},
					&cli.BoolFlag{
						Name:  "no-db",
						Usage: "skip recording the run in the database",
					},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
				Action: parse.Action,
			},
			{
				Name:  "export",
				Usage: "wrap a parsed paper in the tutorial envelope",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "source", Usage: "source the paper was parsed from", Required: true},
					&cli.StringFlag{Name: "board", Usage: "exam board name, e.g. \"JEE Main\"", Required: true},
					&cli.StringFlag{Name: "exam-id", Usage: "authority exam identifier", Required: true},
					&cli.StringFlag{Name: "state", Usage: "state or region"},
					&cli.StringFlag{Name: "conducted-by", Usage: "conducting authority"},
					&cli.StringFlag{Name: "description", Usage: "override the generated description"},
					&cli.StringFlag{
						Name:  "id-style",
						Usage: "question ID style: year-number or year-subject-index",
						Value: "year-number",
					},
					&cli.StringFlag{Name: "format", Usage: "output format: json or yaml", Value: "json"},
					&cli.StringFlag{Name: "output", Usage: "output file, - for stdout", Value: "-"},
					&cli.StringFlag{Name: "output-dir", Usage: "results directory", Value: artifacts.DefaultBaseDir},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
				Action: export.Action,
			},
			{
				Name:  "merge-key",
				Usage: "apply a reviewed answer key to a parsed paper",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "source", Usage: "source the paper was parsed from", Required: true},
					&cli.StringFlag{Name: "key", Usage: "answer key file (yaml or json)", Required: true},
					&cli.StringFlag{Name: "output-dir", Usage: "results directory", Value: artifacts.DefaultBaseDir},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
				Action: mergekey.Action,
			},
			{
				Name:  "db",
				Usage: "inspect recorded papers and parse runs",
				Subcommands: []*cli.Command{
					{
						Name:   "papers",
						Usage:  "list known papers",
						Action: db.PapersAction,
					},
					{
						Name:  "runs",
						Usage: "list parse runs",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "source", Usage: "only runs for this source"},
						},
						Action: db.RunsAction,
					},
					{
						Name:      "show",
						Usage:     "print the questions stored for a run",
						ArgsUsage: "[run-id]",
						Action:    db.ShowAction,
					},
					{
						Name:   "review",
						Usage:  "count questions that still need review",
						Action: db.ReviewAction,
					},
				},
			},
			{
				Name:  "formats",
				Usage: "describe the input shapes the parser understands",
				Action: func(c *cli.Context) error {
					fmt.Print(help.FormatsYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
