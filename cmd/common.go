package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/Attamusc/git-standup/internal/config"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// setupLogger creates a logger for progress output on w
func setupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	// Use stderr for progress so stdout stays clean for output
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time stamps for cleaner progress output
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// setupColor applies the configured color mode to our own output and returns
// whether git should be asked for colors. git writes into a pipe, so it has to
// be told explicitly.
func setupColor(cfg *config.Config, out io.Writer) bool {
	enabled := cfg.UseColor(isTerminal(out))
	color.NoColor = !enabled
	return enabled
}
