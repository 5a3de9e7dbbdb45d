package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"icsfilter/src-cli/ical"
	"icsfilter/src-cli/utils"
	"icsfilter/src-cli/wizard"

	"github.com/urfave/cli"
)

func FilterCmd(as *utils.AppState) cli.Command {
	return cli.Command{
		Name:  "filter",
		Usage: "Remove calendar events that start before a cutoff date",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input, i",
				Usage: "Path of the calendar file to read",
			},
			&cli.StringFlag{
				Name:  "output, o",
				Usage: "Path of the calendar file to write",
			},
			&cli.StringFlag{
				Name:  "cutoff, c",
				Usage: "Cutoff date; events starting before it are removed",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Report what would happen without writing anything",
			},
		},
		Action: FilterAction(as),
	}
}

func FilterAction(as *utils.AppState) func(c *cli.Context) error {
	return func(c *cli.Context) error {
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println("ICS Calendar Event Filter")
		fmt.Println(strings.Repeat("=", 60))

		// #region - collect & normalize the input path
		inputRaw := c.String("input")
		if inputRaw == "" {
			var err error
			inputRaw, err = wizard.Ask("Enter input calendar file path:", "~/calendar.ics")
			if err != nil {
				return fmt.Errorf("can't read input path: %w", err)
			}
		}
		if inputRaw == "" {
			return fmt.Errorf("input file path cannot be empty")
		}
		input, err := utils.NormalizePath(inputRaw)
		if err != nil {
			return fmt.Errorf("invalid input path: %w", err)
		}
		// #endregion

		// #region - collect & parse the cutoff date
		cutoffRaw := c.String("cutoff")
		if cutoffRaw == "" {
			var err error
			cutoffRaw, err = wizard.Ask(
				"Enter cutoff date (events before this date will be removed)\n"+
					"Formats: 2025-11-01, 2025/11/01, 01-11-2025, or natural language:",
				"2025-11-01")
			if err != nil {
				return fmt.Errorf("can't read cutoff date: %w", err)
			}
		}
		cutoff, ok := as.ParseCutoff(cutoffRaw)
		if !ok {
			return fmt.Errorf("could not parse date '%s'", cutoffRaw)
		}
		// #endregion

		// #region - collect the output path, defaulting to the first suggestion
		suggestions := utils.SuggestOutputs(input, as.Config.GetOutputSuffix())
		output := c.String("output")
		if output == "" {
			fmt.Println("Suggested output filenames:")
			for i, s := range suggestions {
				fmt.Printf("  %d. %s\n", i+1, filepath.Base(s))
			}
			var err error
			output, err = wizard.Ask(
				"Enter output calendar file path (or press Enter for option 1):", filepath.Base(suggestions[0]))
			if err != nil {
				return fmt.Errorf("can't read output path: %w", err)
			}
		}
		switch {
		case output == "":
			output = suggestions[0]
		case filepath.IsAbs(output) || strings.HasPrefix(output, "~"):
			output, err = utils.NormalizePath(output)
			if err != nil {
				return fmt.Errorf("invalid output path: %w", err)
			}
		default:
			// bare filename lands next to the input file
			output = filepath.Join(filepath.Dir(input), output)
		}
		// #endregion

		fmt.Println(strings.Repeat("=", 60))
		fmt.Println("Filtering calendar events...")
		fmt.Printf("Cutoff date: %s\n", cutoff.Format("January 02, 2006"))
		fmt.Printf("Input file: %s\n", input)
		fmt.Printf("Output file: %s\n", output)
		fmt.Println(strings.Repeat("=", 60))

		startTimer := time.Now()
		lines, cerr := ical.FromFile(input)
		if cerr != nil {
			return cerr
		}

		filtered, summary := ical.Filter(lines, cutoff)
		if c.Bool("dry-run") {
			slog.Info("dry run, nothing written", "would_keep", summary.Kept, "would_remove", summary.Removed)
			fmt.Printf("Dry run: %d events would be kept, %d removed\n", summary.Kept, summary.Removed)
			return nil
		}

		if cerr := ical.WriteFile(output, filtered); cerr != nil {
			return cerr
		}
		slog.Debug("filter run finished",
			"input", input,
			"output", output,
			"kept", summary.Kept,
			"removed", summary.Removed,
			"took", time.Since(startTimer))

		fmt.Println("Filtering complete!")
		fmt.Printf("Events kept: %d\n", summary.Kept)
		fmt.Printf("Events removed: %d\n", summary.Removed)
		fmt.Printf("Output written to: %s\n", output)
		return nil
	}
}
