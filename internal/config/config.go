package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// ColorMode controls whether ANSI colors are emitted
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Flags carries the raw command line values before environment defaults are applied
type Flags struct {
	Since     string
	Author    string
	Verbose   bool
	DataPath  string
	OutputDir string
	HTML      bool
	Color     string
}

// Config holds all configuration for a single standup run
type Config struct {
	Since     string // raw --since value, empty means "last working day"
	Author    string // empty means "git config user.email"
	Verbose   bool
	DataPath  string // YAML standup data, empty uses the built-in example
	OutputDir string
	HTML      bool
	Color     ColorMode
	Now       time.Time
}

// FromEnvAndFlags creates a Config from environment variables and CLI flags.
// Flags always win over the environment.
func FromEnvAndFlags(flags Flags, now time.Time) (*Config, error) {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Since:     flags.Since,
		Author:    flags.Author,
		Verbose:   flags.Verbose,
		DataPath:  flags.DataPath,
		OutputDir: flags.OutputDir,
		HTML:      flags.HTML,
		Now:       now,
	}

	if config.Author == "" {
		config.Author = os.Getenv("GIT_STANDUP_AUTHOR")
	}
	if config.DataPath == "" {
		config.DataPath = os.Getenv("GIT_STANDUP_DATA")
	}
	if config.OutputDir == "" {
		config.OutputDir = os.Getenv("GIT_STANDUP_OUTPUT_DIR")
	}
	if config.OutputDir == "" {
		config.OutputDir = "."
	}

	mode, err := parseColorMode(flags.Color)
	if err != nil {
		return nil, err
	}
	config.Color = mode

	return config, nil
}

func parseColorMode(raw string) (ColorMode, error) {
	switch ColorMode(raw) {
	case "":
		// https://no-color.org
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return ColorNever, nil
		}
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return ColorMode(raw), nil
	default:
		return "", fmt.Errorf("invalid color mode %q: must be 'auto', 'always' or 'never'", raw)
	}
}

// UseColor resolves the color mode against whether the output is a terminal
func (c *Config) UseColor(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}
