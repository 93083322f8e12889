// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/espmemmap/internal/chip"
	"github.com/retroenv/espmemmap/internal/config"
	"github.com/retroenv/espmemmap/internal/options"
	"github.com/retroenv/espmemmap/internal/render"
	"github.com/retroenv/espmemmap/internal/terminal"
)

// ParseFlags parses command line flags and returns program and layout options
func ParseFlags() (options.Program, options.Layout, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts, config.ReadDefaults())

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, options.Layout{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Layout{}, err
	}

	if opts.Input == "" && opts.Batch == "" {
		opts.Input = args[0]
	}

	layoutOptions, err := createLayoutOptions(flags, opts)
	if err != nil {
		return opts, options.Layout{}, err
	}

	return opts, layoutOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage text and the flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: espmemmap [options] <firmware file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after firmware file, please pass the firmware file as last argument", arg),
			}
		}
	}
	return nil
}

// createLayoutOptions resolves the chip, flash size and bar width options.
func createLayoutOptions(flags *flag.FlagSet, opts options.Program) (options.Layout, error) {
	if opts.Chip == "" {
		return options.Layout{}, &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("no chip selected, supported chips: %s", strings.Join(chip.ChipNames(), ", ")),
		}
	}

	c, err := chip.ParseChip(opts.Chip)
	if err != nil {
		return options.Layout{}, err
	}

	flash, err := chip.ParseFlashSize(opts.Flash)
	if err != nil {
		return options.Layout{}, err
	}

	width := opts.Width
	if opts.Fit {
		if columns, ok := terminal.Columns(os.Stdout); ok {
			width = render.FitWidth(columns)
		}
	}
	if width < 1 {
		return options.Layout{}, fmt.Errorf("invalid bar width %d, it has to be at least 1", width)
	}

	return options.Layout{
		Chip:     c,
		Flash:    flash,
		Width:    width,
		Summary:  opts.Summary,
		Unmapped: opts.Unmapped,
	}, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program, defaults config.Defaults) {
	flags.StringVar(&opts.Input, "i", "", "name of the input firmware file")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask, for example build/*.elf")
	flags.StringVar(&opts.Chip, "c", defaults.Chip,
		fmt.Sprintf("chip of the firmware (%s)", strings.Join(chip.ChipNames(), "/")))
	flags.StringVar(&opts.Flash, "f", defaults.Flash,
		fmt.Sprintf("flash size (%s), uses the chip default if not set", strings.Join(chip.FlashSizeNames(), "/")))
	flags.StringVar(&opts.Format, "format", "", "input file format (elf/hex) - if not auto-detected from file extension")
	flags.IntVar(&opts.Width, "w", defaults.Width, "bar width in characters")
	flags.BoolVar(&opts.Fit, "fit", false, "fit the bar width to the terminal width")
	flags.BoolVar(&opts.Summary, "summary", false, "print the used bytes of every region")
	flags.BoolVar(&opts.Unmapped, "unmapped", false, "list sections that are outside of all known regions")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
