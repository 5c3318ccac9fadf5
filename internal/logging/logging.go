// Package logging wires the slog default logger for CLI diagnostics.
// Everything goes to stderr: stdout belongs to the table output and the
// TUI must never be interleaved with log lines.
package logging

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"golang.org/x/term"
)

// Setup installs a tint handler on stderr as the slog default. Verbose
// enables debug level; color is dropped when stderr is not a terminal.
func Setup(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !term.IsTerminal(int(os.Stderr.Fd())),
	}))

	slog.SetDefault(logger)

	return logger
}
