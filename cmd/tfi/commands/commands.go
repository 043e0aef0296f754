// cmd/tfi/commands/commands.go
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"

	"tfi/internal/compiler"
	"tfi/internal/parser"
	"tfi/internal/runner"
	"tfi/internal/validator"
)

// Compile is the default action: compile the input file, write the output,
// report warnings and stats, then run the result with node.
func Compile(ctx *cli.Context) error {
	input, err := inputFile(ctx)
	if err != nil {
		return err
	}

	output := ctx.String("output")
	if output == "" {
		output = defaultOutputFile(input)
	}

	opts := compiler.NewOptions()
	if ctx.Bool("format") {
		opts = opts.WithFormatting()
	}
	if ctx.Bool("comments") {
		opts = opts.WithComments()
	}
	if ctx.Bool("strict") {
		opts = opts.WithStrictMode()
	}
	if ctx.Bool("minify") {
		opts = opts.WithMinification()
	}

	source, err := os.ReadFile(input)
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "reading source file").Error(), 1)
	}

	result, err := compiler.CompileWithOptions(string(source), opts)
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		return cli.NewExitError("compilation failed", 1)
	}

	if err := os.WriteFile(output, []byte(result.Code), 0644); err != nil {
		return cli.NewExitError(errors.Wrap(err, "writing output file").Error(), 1)
	}
	fmt.Printf("Compiled successfully! Output written to: %s\n", output)

	if result.HasWarnings() {
		yellow := color.New(color.FgYellow)
		yellow.Fprintln(os.Stderr, "Compilation warnings:")
		for _, warning := range result.Warnings {
			yellow.Fprintf(os.Stderr, "  %s\n", warning)
		}
	}

	if stats, err := compiler.GetStats(string(source)); err == nil {
		fmt.Println(stats.Summary())
	}

	if !runner.Available() {
		fmt.Fprintln(os.Stderr, "node not found on PATH; skipping execution")
		return nil
	}
	return runner.Run(output)
}

// Check parses and validates without producing an output file. Every
// validation failure is reported, not just the first.
func Check(ctx *cli.Context) error {
	input, err := inputFile(ctx)
	if err != nil {
		return err
	}

	source, err := os.ReadFile(input)
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "reading source file").Error(), 1)
	}

	program, perr := parser.ParseProgram(string(source))
	if perr != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, perr)
		return cli.NewExitError("syntax check failed", 1)
	}

	if errs := validator.ValidateAll(program); len(errs) > 0 {
		red := color.New(color.FgRed)
		for _, e := range errs {
			red.Fprintln(os.Stderr, e)
		}
		return cli.NewExitError(fmt.Sprintf("%d validation error(s)", len(errs)), 1)
	}

	fmt.Printf("%s: no problems found\n", input)
	return nil
}

// Stats prints per-kind statement counts as a table.
func Stats(ctx *cli.Context) error {
	input, err := inputFile(ctx)
	if err != nil {
		return err
	}

	source, err := os.ReadFile(input)
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "reading source file").Error(), 1)
	}

	stats, err := compiler.GetStats(string(source))
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		return cli.NewExitError("stats failed", 1)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Construct", "Count"})
	table.Append([]string{"Print statements", strconv.Itoa(stats.PrintStatements)})
	table.Append([]string{"Const declarations", strconv.Itoa(stats.ConstDeclarations)})
	table.Append([]string{"Let declarations", strconv.Itoa(stats.LetDeclarations)})
	table.Append([]string{"If statements", strconv.Itoa(stats.IfStatements)})
	table.Append([]string{"While loops", strconv.Itoa(stats.WhileLoops)})
	table.Append([]string{"For loops", strconv.Itoa(stats.ForLoops)})
	table.SetFooter([]string{"Top-level total", strconv.Itoa(stats.TotalStatements)})
	table.Render()
	return nil
}

func inputFile(ctx *cli.Context) (string, error) {
	input := ctx.Args().First()
	if input == "" {
		input = "main.tfi"
	}
	if !strings.HasSuffix(input, ".tfi") {
		return "", cli.NewExitError("input file must have a .tfi extension (e.g. main.tfi)", 1)
	}
	return input, nil
}

func defaultOutputFile(input string) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return stem + ".js"
}
