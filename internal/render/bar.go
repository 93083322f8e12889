// Package render draws the proportional section bars of the memory regions.
package render

import (
	"fmt"
	"strings"

	"github.com/retroenv/espmemmap/internal/chip"
	"github.com/retroenv/espmemmap/internal/classify"
)

// LabelWidth is the column width that section names are truncated or
// padded to.
const LabelWidth = 12

const (
	fullGlyph  = '█' // U+2588
	thinGlyph  = '▏' // U+258F
	emptyGlyph = ' '
)

// BarRow is the rendered representation of one classified section.
type BarRow struct {
	Label   string
	Address uint32
	Size    uint32
	Kind    chip.RegionKind

	Offset int  // first character of the bar
	Width  int  // number of bar characters
	Thin   bool // section is too small for a full character
	Bar    string
}

// RenderRow computes the position and size of the section bar relative to
// the span of its region, scaled to width characters. The offset is rounded
// down, the size is rounded to the nearest character. Every section with a
// non zero size gets at least one character, drawn as a thin glyph if the
// rounded size is 0. The bar never exceeds width characters. A width
// below 1 is treated as 1.
func RenderRow(sec classify.Classified, width int) BarRow {
	if width < 1 {
		width = 1
	}
	offset, size, thin := scale(sec, uint64(width))

	return BarRow{
		Label:   label(sec.Name),
		Address: sec.Address,
		Size:    sec.Size,
		Kind:    sec.Region.Kind,
		Offset:  int(offset),
		Width:   int(size),
		Thin:    thin,
		Bar:     drawBar(width, int(offset), int(size), thin),
	}
}

// String returns the row in the output line format.
func (r BarRow) String() string {
	return fmt.Sprintf("%s %8x %7d %-5s [%s]", r.Label, r.Address, r.Size, r.Kind, r.Bar)
}

func scale(sec classify.Classified, width uint64) (offset, size uint64, thin bool) {
	span := uint64(sec.Region.Span())
	if span == 0 {
		return 0, 0, false
	}

	var relative uint64
	if sec.Address > sec.Region.Start {
		relative = uint64(sec.Address - sec.Region.Start)
	}
	offset = relative * width / span
	if offset > width-1 {
		offset = width - 1
	}

	if sec.Size == 0 {
		return offset, 0, false
	}

	// round half up: floor((2*size*width + span) / (2*span))
	size = (2*uint64(sec.Size)*width + span) / (2 * span)
	if size == 0 {
		size = 1
		thin = true
	}
	if offset+size > width {
		size = width - offset
	}
	return offset, size, thin
}

func drawBar(width, offset, size int, thin bool) string {
	var sb strings.Builder
	sb.Grow(width * 3)

	for i := 0; i < width; i++ {
		switch {
		case i < offset || i >= offset+size:
			sb.WriteRune(emptyGlyph)
		case thin:
			sb.WriteRune(thinGlyph)
		default:
			sb.WriteRune(fullGlyph)
		}
	}
	return sb.String()
}

func label(name string) string {
	return fmt.Sprintf("%-*.*s", LabelWidth, LabelWidth, name)
}
