package errors

import (
	"fmt"
	"io"
	"log/slog"
)

// CLIAdapter handles error presentation and exit code determination for the
// command line entry point. Every failure is terminal, so the exit surface is
// fixed at 0 (success) / 1 (any error).
type CLIAdapter struct {
	program string
	stderr  io.Writer
}

// NewCLIAdapter creates a new CLI error adapter writing to stderr.
func NewCLIAdapter(program string, stderr io.Writer) *CLIAdapter {
	return &CLIAdapter{program: program, stderr: stderr}
}

// Format returns the single operator-visible error line for err.
func (a *CLIAdapter) Format(err error) string {
	return fmt.Sprintf("%s error: %v", a.program, err)
}

// Report writes the formatted error line to the error stream and returns the
// process exit code. A nil error reports nothing and returns 0.
func (a *CLIAdapter) Report(err error) int {
	if err == nil {
		return 0
	}
	if cat := CategoryOf(err); cat != "" {
		slog.Debug("build failed", slog.String("category", string(cat)), slog.String("error", err.Error()))
	}
	fmt.Fprintln(a.stderr, a.Format(err))
	return 1
}
