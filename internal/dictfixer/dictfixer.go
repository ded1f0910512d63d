package dictfixer

import (
	"errors"
	"fmt"
	"github.com/creekorful/dictfixer/internal/util/logging"
	"github.com/creekorful/dictfixer/internal/wordlist"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"io"
)

const (
	version = "0.1.0"

	helpArg     = "-h"
	summaryFlag = "summary"
)

// GetApp returns the dictfixer CLI app
func GetApp() *cli.App {
	return &cli.App{
		Name:      "dictfixer",
		Version:   version,
		Usage:     "Dictionary Fixer",
		ArgsUsage: "<input file> <output file>",
		Description: "Given an input file, strip out all words that contain an apostrophe.\n\n" +
			"input file: new line delimited dictionary to be read in.\n" +
			"output file: file to be created/overwritten with the valid words of input file.",
		Flags: []cli.Flag{
			logging.GetLogFlag(),
			&cli.BoolFlag{
				Name:  summaryFlag,
				Usage: "Print a summary table once the dictionary is fixed",
			},
		},
		Authors: []*cli.Author{
			{
				Name:  "Aloïs Micard",
				Email: "alois@micard.lu",
			},
		},
		Before: before,
		Action: fix,
	}
}

func before(ctx *cli.Context) error {
	logging.ConfigureLogger(ctx)
	return nil
}

func fix(c *cli.Context) error {
	// leading -h is handled by cli, but not once positional arguments started
	if c.NArg() != 2 || hasHelpArg(c.Args().Slice()) {
		return cli.ShowAppHelp(c)
	}

	input := c.Args().Get(0)
	output := c.Args().Get(1)

	log.Info().Str("input", input).Str("output", output).Msg("Fixing dictionary")

	summary, err := NewFixer(wordlist.NewLocalStorage()).Fix(input, output)
	if err != nil {
		logError(err)
		return err
	}

	log.Info().
		Int("removed", summary.Removed).
		Int("written", summary.Written).
		Msg("Successfully fixed dictionary")

	if c.Bool(summaryFlag) {
		writeSummary(c.App.Writer, input, output, summary)
	}

	return nil
}

func logError(err error) {
	var readErr *wordlist.ReadError
	var writeErr *wordlist.WriteError

	switch {
	case errors.As(err, &readErr):
		log.Err(readErr.Err).Str("path", readErr.Path).Msg("Failed to read in file")
	case errors.As(err, &writeErr):
		log.Err(writeErr.Err).Str("path", writeErr.Path).Msg("Did not write to file")
	default:
		log.Err(err).Msg("Error while fixing dictionary")
	}
}

func hasHelpArg(args []string) bool {
	for _, arg := range args {
		if arg == helpArg {
			return true
		}
	}

	return false
}

func writeSummary(w io.Writer, input, output string, summary Summary) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Input", "Output", "Read", "Removed", "Written"})
	table.Append([]string{
		input,
		output,
		fmt.Sprintf("%d", summary.Read),
		fmt.Sprintf("%d", summary.Removed),
		fmt.Sprintf("%d", summary.Written),
	})
	table.Render()
}
