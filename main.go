package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"icsfilter/src-cli/cmd"
	"icsfilter/src-cli/utils"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/urfave/cli"
)

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Debug(err.Error())
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevelFromEnv(),
			TimeFormat: time.RFC1123Z,
		}),
	))
}

// The handler is installed before the Config exists, so the level comes
// straight from the environment here. Config re-reads the same variable.
func logLevelFromEnv() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	as := utils.NewAppState()

	app := cli.App{
		Name:    cmd.AppName,
		Version: cmd.AppVersion,
		Usage:   "Remove calendar events that start before a cutoff date",
		Commands: []cli.Command{
			cmd.FilterCmd(as),
			cmd.InspectCmd(as),
		},
		// bare invocation runs the interactive filter flow
		Action: cmd.FilterAction(as),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
