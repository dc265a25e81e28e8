package cli

import (
	"strings"

	"github.com/idilsaglam/dragsort/internal/ui"
	"github.com/urfave/cli/v3"
)

// Version is stamped into the root command.
var Version = "0.1.0"

// rootFlags are declared once on the root; subcommands inherit them, so
// they may appear before or after the subcommand name.
func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   defaultConfigPath,
		},
		&cli.StringFlag{
			Name:  "theme",
			Usage: "Color theme (" + strings.Join(ui.ThemeNames, ", ") + ")",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Log at debug level",
		},
		&cli.StringFlag{
			Name:  "log",
			Usage: "File receiving logs and the reorder listing of the interactive list",
		},
		&cli.BoolFlag{
			Name:  "no-drag",
			Usage: "Disable drag interaction in the interactive list",
		},
	}
}

// Command builds the root command. Without a subcommand it runs the terminal UI.
func (r *Runner) Command() *cli.Command {
	return &cli.Command{
		Name:      "dragsort",
		Usage:     "Reorder a list by dragging its rows",
		Version:   Version,
		Writer:    r.output,
		ErrWriter: r.errOutput,
		Flags:     rootFlags(),
		Action:    r.TUI,
		Commands: []*cli.Command{
			{
				Name:   "tui",
				Usage:  "Open the interactive list",
				Action: r.TUI,
			},
			{
				Name:    "ls",
				Aliases: []string{"list"},
				Usage:   "Print the list",
				Action:  r.List,
			},
			{
				Name:      "mv",
				Aliases:   []string{"move"},
				Usage:     "Move the row at <source> to <destination> and print the result",
				ArgsUsage: "<source> <destination>",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "source"},
					&cli.StringArg{Name: "destination"},
				},
				Action: r.Move,
			},
			{
				Name:      "drag",
				Usage:     "Print the drag payload of <row>",
				ArgsUsage: "<row>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "copy",
						Usage: "Also place the payload on the clipboard",
					},
				},
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "row"},
				},
				Action: r.Drag,
			},
			{
				Name:   "init",
				Usage:  "Write an example configuration file",
				Action: r.Init,
			},
		},
	}
}
