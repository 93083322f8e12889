// Package detector handles firmware file format detection.
package detector

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/espmemmap/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles file format detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new format detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the file format from options or file auto-detection.
// It first checks if a format is explicitly specified in options, otherwise
// the format is detected from the input filename extension.
func (d *Detector) Detect(opts options.Program) (options.Format, error) {
	if opts.Format != "" {
		format := options.Format(strings.ToLower(opts.Format))
		switch format {
		case options.FormatELF, options.FormatHex:
			return format, nil
		default:
			return "", fmt.Errorf("unsupported input format '%s', valid formats: %s, %s",
				opts.Format, options.FormatELF, options.FormatHex)
		}
	}

	format := d.detectFromFile(opts.Input)
	d.logger.Debug("Auto-detected input format",
		log.String("format", string(format)),
		log.String("file", opts.Input))
	return format, nil
}

// detectFromFile determines the file format based on the file extension.
func (d *Detector) detectFromFile(filename string) options.Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".hex", ".ihex", ".ihx":
		return options.FormatHex
	default:
		// ESP-IDF and esp-hal builds produce ELF files without extension
		return options.FormatELF
	}
}
