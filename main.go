// Package main implements the main entry point for a firmware memory layout viewer
// for Espressif chips.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/espmemmap/internal/chip"
	"github.com/retroenv/espmemmap/internal/cli"
	"github.com/retroenv/espmemmap/internal/config"
	"github.com/retroenv/espmemmap/internal/fileprocessor"
	"github.com/retroenv/espmemmap/internal/loader"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Exit codes of the program.
const (
	exitOK = iota
	exitUsage
	exitUnsupportedChip
	exitMissingFlashSize
	exitFileError
)

func main() {
	ctx := app.Context()

	opts, layoutOpts, err := cli.ParseFlags()
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			if msg := usageErr.Error(); msg != "" {
				fmt.Fprintf(os.Stderr, "espmemmap: %s\n\n", msg)
			}
			usageErr.ShowUsage()
		} else {
			fmt.Fprintf(os.Stderr, "espmemmap: %s\n", err)
		}
		os.Exit(exitCode(err))
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "espmemmap: %s\n", err)
		os.Exit(exitUsage)
	}

	if err := fileprocessor.ProcessFiles(ctx, logger, files, opts, layoutOpts, os.Stdout); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Debug("Processing failed", log.Err(err))
		fmt.Fprintf(os.Stderr, "espmemmap: %s\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode returns the process exit code for the error.
func exitCode(err error) int {
	var readErr *loader.ReadError
	var decodeErr *loader.DecodeError

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, chip.ErrUnsupportedChip):
		return exitUnsupportedChip
	case errors.Is(err, chip.ErrMissingFlashSize):
		return exitMissingFlashSize
	case errors.As(err, &readErr), errors.As(err, &decodeErr):
		return exitFileError
	default:
		return exitUsage
	}
}
