// Package fileprocessor handles file selection and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/retroenv/espmemmap/internal/options"
	"github.com/retroenv/espmemmap/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFiles runs the pipeline for every file and writes the layouts to
// the writer. With more than one file every layout is preceded by a header
// line naming the file. Processing stops at the first failing file.
func ProcessFiles(ctx context.Context, logger *log.Logger, files []string,
	opts options.Program, layoutOpts options.Layout, writer io.Writer) error {

	pipe := pipeline.New(logger)

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		if len(files) > 1 {
			if i > 0 {
				_, _ = fmt.Fprintln(writer)
			}
			_, _ = fmt.Fprintf(writer, "==> %s <==\n", file)
		}

		opts.Input = file
		if err := pipe.Execute(ctx, opts, layoutOpts, writer); err != nil {
			return fmt.Errorf("processing file %s: %w", file, err)
		}
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match batch pattern '%s'", opts.Batch)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// PrintBanner logs application version information. The report is written
// to stdout, so the banner is only shown in debug mode.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if !opts.Debug || opts.Quiet {
		return
	}

	logger.Debug("espmemmap", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Debug("Build", log.String("date", date))
	}
}
