package chip

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedChip is matched by UnsupportedChipError.
	ErrUnsupportedChip = errors.New("unsupported chip")
	// ErrMissingFlashSize is matched by MissingFlashSizeError.
	ErrMissingFlashSize = errors.New("missing flash size")
	// ErrInvalidFlashSize is returned for unknown flash size values.
	ErrInvalidFlashSize = errors.New("invalid flash size")
)

// UnsupportedChipError is returned for chip names or values that are not
// part of the region table.
type UnsupportedChipError struct {
	Name string
}

func (e *UnsupportedChipError) Error() string {
	return fmt.Sprintf("unsupported chip '%s', supported chips: %s",
		e.Name, strings.Join(ChipNames(), ", "))
}

// Is makes the error match ErrUnsupportedChip.
func (e *UnsupportedChipError) Is(target error) bool {
	return target == ErrUnsupportedChip
}

// MissingFlashSizeError is returned when a chip needs a flash size to
// compute its flash mapped regions and has no default.
type MissingFlashSizeError struct {
	Chip Chip
}

func (e *MissingFlashSizeError) Error() string {
	return fmt.Sprintf("chip %s has no default flash size, a flash size has to be selected (%s)",
		e.Chip, strings.Join(FlashSizeNames(), ", "))
}

// Is makes the error match ErrMissingFlashSize.
func (e *MissingFlashSizeError) Is(target error) bool {
	return target == ErrMissingFlashSize
}
