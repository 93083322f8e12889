// Package loader handles firmware file loading operations.
package loader

import (
	"bytes"
	"debug/elf"
	"fmt"
	"math"
	"os"

	"github.com/marcinbor85/gohex"
	"github.com/retroenv/espmemmap/internal/options"
	"github.com/retroenv/espmemmap/internal/section"
)

// ReadError is returned when the firmware file can not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading file %s: %s", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when the firmware file content can not be decoded.
type DecodeError struct {
	Format options.Format
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s file: %s", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Loader handles loading firmware files from disk.
type Loader struct{}

// New creates a new firmware loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the input file of the options and decodes its sections.
func (l *Loader) Load(opts options.Program, format options.Format) ([]section.Section, error) {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, &ReadError{Path: opts.Input, Err: err}
	}
	return l.LoadFromBytes(data, format)
}

// LoadFromBytes decodes the sections of an in-memory firmware file.
// ELF files return all sections of the section header table except the
// null section, Intel HEX files return one section per contiguous data
// segment.
func (l *Loader) LoadFromBytes(data []byte, format options.Format) ([]section.Section, error) {
	var sections []section.Section
	var err error

	switch format {
	case options.FormatELF:
		sections, err = decodeELF(data)
	case options.FormatHex:
		sections, err = decodeHex(data)
	default:
		err = fmt.Errorf("unsupported format '%s'", format)
	}
	if err != nil {
		return nil, &DecodeError{Format: format, Err: err}
	}
	return sections, nil
}

// decodeELF skips sections that do not fit into the 32 bit address space,
// they can not belong to any of the supported chips.
func decodeELF(data []byte) ([]section.Section, error) {
	f, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sections := make([]section.Section, 0, len(f.Sections))
	for _, s := range f.Sections {
		if s.Type == elf.SHT_NULL {
			continue
		}
		if s.Addr > math.MaxUint32 || s.Size > math.MaxUint32 {
			continue
		}

		sections = append(sections, section.Section{
			Name:    s.Name,
			Address: uint32(s.Addr),
			Size:    uint32(s.Size),
			Type:    s.Type.String(),
		})
	}
	return sections, nil
}

func decodeHex(data []byte) ([]section.Section, error) {
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	segments := mem.GetDataSegments()
	sections := make([]section.Section, 0, len(segments))
	for i, segment := range segments {
		sections = append(sections, section.Section{
			Name:    fmt.Sprintf("segment%d", i),
			Address: segment.Address,
			Size:    uint32(len(segment.Data)),
		})
	}
	return sections, nil
}
