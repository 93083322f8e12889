package chip

import (
	"fmt"
	"strings"
)

// FlashSize is a supported size of the external flash chip.
type FlashSize uint8

// Supported flash sizes. FlashUnset means that no size was selected.
const (
	FlashUnset FlashSize = iota
	Flash256KB
	Flash512KB
	Flash1MB
	Flash2MB
	Flash4MB
	Flash8MB
	Flash16MB
	Flash32MB
	Flash64MB
	Flash128MB
	Flash256MB
)

const (
	kb = 1024
	mb = 1024 * kb
)

var flashBytes = [...]uint64{
	FlashUnset: 0,
	Flash256KB: 256 * kb,
	Flash512KB: 512 * kb,
	Flash1MB:   1 * mb,
	Flash2MB:   2 * mb,
	Flash4MB:   4 * mb,
	Flash8MB:   8 * mb,
	Flash16MB:  16 * mb,
	Flash32MB:  32 * mb,
	Flash64MB:  64 * mb,
	Flash128MB: 128 * mb,
	Flash256MB: 256 * mb,
}

var flashNames = [...]string{
	FlashUnset: "",
	Flash256KB: "256KB",
	Flash512KB: "512KB",
	Flash1MB:   "1MB",
	Flash2MB:   "2MB",
	Flash4MB:   "4MB",
	Flash8MB:   "8MB",
	Flash16MB:  "16MB",
	Flash32MB:  "32MB",
	Flash64MB:  "64MB",
	Flash128MB: "128MB",
	Flash256MB: "256MB",
}

// Bytes returns the flash size in bytes, 0 for FlashUnset.
// The result is 64 bit wide as 256MB and more do not fit the window
// computations in 32 bit.
func (f FlashSize) Bytes() uint64 {
	if !f.valid() {
		return 0
	}
	return flashBytes[f]
}

// String returns the flash size as used on the command line, for example 4MB.
func (f FlashSize) String() string {
	if !f.valid() {
		return fmt.Sprintf("FlashSize(%d)", uint8(f))
	}
	return flashNames[f]
}

func (f FlashSize) valid() bool {
	return int(f) < len(flashBytes)
}

// FlashSizes returns all selectable flash sizes in ascending order.
func FlashSizes() []FlashSize {
	sizes := make([]FlashSize, 0, len(flashNames)-1)
	for f := Flash256KB; f <= Flash256MB; f++ {
		sizes = append(sizes, f)
	}
	return sizes
}

// FlashSizeNames returns the names of all selectable flash sizes.
func FlashSizeNames() []string {
	sizes := FlashSizes()
	names := make([]string, 0, len(sizes))
	for _, f := range sizes {
		names = append(names, f.String())
	}
	return names
}

// ParseFlashSize parses a flash size like 4MB, 4mb, 4M or 512K.
// An empty string returns FlashUnset.
func ParseFlashSize(s string) (FlashSize, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return FlashUnset, nil
	}
	if strings.HasSuffix(s, "K") || strings.HasSuffix(s, "M") {
		s += "B"
	}

	for _, f := range FlashSizes() {
		if f.String() == s {
			return f, nil
		}
	}
	return FlashUnset, fmt.Errorf("%w: %s (valid: %s)", ErrInvalidFlashSize, s,
		strings.Join(FlashSizeNames(), ", "))
}
