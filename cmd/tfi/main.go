// cmd/tfi/main.go
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/urfave/cli.v1"

	"tfi/cmd/tfi/commands"

	"github.com/fatih/color"
)

const version = "1.0.0"

func main() {
	// Colored diagnostics only when stderr is a terminal.
	color.NoColor = color.NoColor || !isatty.IsTerminal(os.Stderr.Fd())

	app := cli.NewApp()
	app.Name = "tfi"
	app.Usage = "compile TFI programs to JavaScript and run them with node"
	app.Version = version
	app.ArgsUsage = "[file.tfi]"
	app.Action = commands.Compile
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "output, o",
			Usage: "output JavaScript file (default: <input>.js)",
		},
		cli.BoolFlag{
			Name:  "format, f",
			Usage: "format the output JavaScript code",
		},
		cli.BoolFlag{
			Name:  "comments, c",
			Usage: "add source comments to the output",
		},
		cli.BoolFlag{
			Name:  "strict, s",
			Usage: "enable strict mode",
		},
		cli.BoolFlag{
			Name:  "minify, m",
			Usage: "minify the output",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "check",
			Usage:     "parse and validate a TFI file without generating output",
			ArgsUsage: "file.tfi",
			Action:    commands.Check,
		},
		{
			Name:      "stats",
			Usage:     "show statement statistics for a TFI file",
			ArgsUsage: "file.tfi",
			Action:    commands.Stats,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
