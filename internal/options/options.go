// Package options contains the program options.
package options

import (
	"github.com/retroenv/espmemmap/internal/chip"
)

// Format is the file format of a firmware file.
type Format string

// Supported firmware file formats.
const (
	FormatELF Format = "elf"
	FormatHex Format = "hex"
)

// Parameters contains file path options.
type Parameters struct {
	Input string // firmware file to inspect
	Batch string // glob pattern of firmware files to inspect
}

// Flags contains behavior options.
type Flags struct {
	Chip   string // chip name as given by the user
	Flash  string // flash size as given by the user
	Format string // input format, auto-detected if empty
	Debug  bool
	Quiet  bool
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	Width    int
	Fit      bool // fit the bar width to the terminal
	Summary  bool
	Unmapped bool
}

// Program options of the memory map viewer.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Layout defines the resolved options used to compute and draw the memory
// layout.
type Layout struct {
	Chip  chip.Chip
	Flash chip.FlashSize // chip.FlashUnset selects the chip default

	Width    int
	Summary  bool
	Unmapped bool
}
