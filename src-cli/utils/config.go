package utils

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	logLevel slog.Level

	location *time.Location

	outputSuffix string
}

func NewConfig() *Config {
	return &Config{
		logLevel: func() slog.Level {
			logLevel := os.Getenv("LOG_LEVEL")
			if logLevel == "" {
				logLevel = "info"
			}
			var level slog.Level
			switch strings.ToLower(logLevel) {
			case "debug":
				level = slog.LevelDebug
			case "info":
				level = slog.LevelInfo
			case "warn":
				level = slog.LevelWarn
			case "error":
				level = slog.LevelError
			default:
				slog.Warn("invalid LOG_LEVEL, using info", "LOG_LEVEL", logLevel)
				level = slog.LevelInfo
			}
			slog.Debug("env", "LOG_LEVEL", logLevel)
			return level
		}(),

		location: func() *time.Location {
			timezoneStr := os.Getenv("TIMEZONE")
			var loc *time.Location
			var err error
			switch timezoneStr {
			case "":
				loc = time.Local
			case "UTC":
				loc = time.UTC
			default:
				loc, err = time.LoadLocation(timezoneStr)
				if err != nil {
					slog.Error("invalid timezone", "timezone", timezoneStr, "error", err)
					os.Exit(1)
				}
			}
			slog.Debug("env", "TIMEZONE", timezoneStr)
			return loc
		}(),

		outputSuffix: func() string {
			outputSuffix := os.Getenv("OUTPUT_SUFFIX")
			if outputSuffix == "" {
				outputSuffix = "_filtered"
			}
			slog.Debug("env", "OUTPUT_SUFFIX", outputSuffix)
			return outputSuffix
		}(),
	}
}

// Get LOG_LEVEL env, default to info
func (c *Config) GetLogLevel() slog.Level {
	return c.logLevel
}

// Get TIMEZONE env, default to the local timezone
func (c *Config) GetLocation() *time.Location {
	return c.location
}

// Get OUTPUT_SUFFIX env, default to "_filtered"
func (c *Config) GetOutputSuffix() string {
	return c.outputSuffix
}
