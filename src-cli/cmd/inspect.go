package cmd

import (
	"fmt"
	"time"

	"icsfilter/src-cli/ical"
	"icsfilter/src-cli/utils"
	"icsfilter/src-cli/wizard"

	"github.com/urfave/cli"
)

func InspectCmd(as *utils.AppState) cli.Command {
	return cli.Command{
		Name:  "inspect",
		Usage: "Report what a calendar file contains without writing anything",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input, i",
				Usage: "Path of the calendar file to read",
			},
			&cli.StringFlag{
				Name:  "cutoff, c",
				Usage: "Optional cutoff date to preview a filter run against",
			},
		},
		Action: inspectAction(as),
	}
}

func inspectAction(as *utils.AppState) func(c *cli.Context) error {
	return func(c *cli.Context) error {
		inputRaw := c.String("input")
		if inputRaw == "" {
			var err error
			inputRaw, err = wizard.Ask("Enter calendar file path:", "~/calendar.ics")
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

		lines, cerr := ical.FromFile(input)
		if cerr != nil {
			return cerr
		}

		blocks := ical.Events(lines)
		var earliest, latest time.Time
		parseable := 0
		for _, block := range blocks {
			start, ok := ical.EventStart(block)
			if !ok {
				continue
			}
			if parseable == 0 || start.Before(earliest) {
				earliest = start
			}
			if parseable == 0 || start.After(latest) {
				latest = start
			}
			parseable++
		}

		fmt.Printf("File: %s\n", input)
		fmt.Printf("Total lines: %d\n", len(lines))
		fmt.Printf("Events: %d\n", len(blocks))
		fmt.Printf("Events with a parseable start: %d\n", parseable)
		if parseable > 0 {
			fmt.Printf("Earliest start: %s\n", earliest.Format("2006-01-02 15:04"))
			fmt.Printf("Latest start: %s\n", latest.Format("2006-01-02 15:04"))
		}

		if cutoffRaw := c.String("cutoff"); cutoffRaw != "" {
			cutoff, ok := as.ParseCutoff(cutoffRaw)
			if !ok {
				return fmt.Errorf("could not parse date '%s'", cutoffRaw)
			}
			_, summary := ical.Filter(lines, cutoff)
			fmt.Printf("Filtering at %s would keep %d and remove %d events\n",
				cutoff.Format("2006-01-02"), summary.Kept, summary.Removed)
		}

		return nil
	}
}
