package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitegen/internal/build"
	siteerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

const programName = "sitegen"

var CLI struct {
	InputDir string `arg:"" type:"existingdir" help:"Input directory containing config.json, a templates/ directory, and an optional static/ tree."`
	Output   string `short:"o" help:"Output directory. Defaults to <input_dir>/html. Must not already exist."`
	Verbose  bool   `short:"v" help:"Print one line per copied file and rendered page."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name(programName),
		kong.Description("Templated static website generator."),
	)

	// Diagnostics go to stderr so verbose progress lines own stdout.
	logLevel := slog.LevelWarn
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	_, err := build.Run(build.Options{
		InputDir: CLI.InputDir,
		Output:   CLI.Output,
		Verbose:  CLI.Verbose,
		Stdout:   os.Stdout,
	})

	adapter := siteerrors.NewCLIAdapter(programName, os.Stderr)
	os.Exit(adapter.Report(err))
}
