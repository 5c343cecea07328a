// wwlens augments captured WaterlooWorks pages the way the in-browser
// enhancement does: it extracts the posting's priority fields, injects a
// summary panel, and tracks detail/listing lifecycle across recorded
// snapshots.
package main

import (
	"fmt"
	"os"

	"github.com/Tpypan/wwlens/internal/enhance"
	"github.com/Tpypan/wwlens/internal/replay"
	"github.com/Tpypan/wwlens/internal/store"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "wwlens",
		Usage: "extract, summarize, and track WaterlooWorks job postings",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
			&cli.StringFlag{
				Name:  "settings",
				Value: "wwlens.yaml",
				Usage: "path to the settings file",
			},
			&cli.StringFlag{
				Name:  "db",
				Value: "wwlens.db",
				Usage: "path to the local shortlist store",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "enhance",
				Usage: "inject the priority summary panel into a captured posting page",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Required: true,
						Usage:    "captured posting page (HTML)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "enhanced page destination (stdout when omitted)",
					},
				},
				Action: enhance.EnhanceAction,
			},
			{
				Name:  "inspect",
				Usage: "print extracted fields, priority items, and a posting overview",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Required: true,
						Usage:    "captured posting page (HTML)",
					},
					&cli.StringFlag{
						Name:  "url",
						Usage: "original page URL (improves overview extraction)",
					},
				},
				Action: enhance.InspectAction,
			},
			{
				Name:  "replay",
				Usage: "run the lifecycle tracker over a directory of DOM snapshots",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "snapshots",
						Required: true,
						Usage:    "directory of ordered *.html snapshots",
					},
				},
				Action: replay.ReplayAction,
			},
			{
				Name:  "shortlist",
				Usage: "manage the locally persisted shortlist",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "print shortlisted posting ids",
						Action: store.ListAction,
					},
					{
						Name:      "toggle",
						Usage:     "flip the shortlist state of posting ids",
						ArgsUsage: "<posting-id>...",
						Action:    store.ToggleAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
