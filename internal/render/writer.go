package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/retroenv/espmemmap/internal/classify"
	"github.com/retroenv/espmemmap/internal/section"
)

// DefaultWidth is the default bar width in characters.
const DefaultWidth = 120

// rowOverhead is the number of characters of a row besides the bar:
// label, address, size, region kind, separators and brackets.
const rowOverhead = LabelWidth + 1 + 8 + 1 + 7 + 1 + 5 + 1 + 2

// FitWidth returns the bar width that makes rows fill the given number of
// terminal columns, at least 1.
func FitWidth(columns int) int {
	if columns-rowOverhead < 1 {
		return 1
	}
	return columns - rowOverhead
}

// Options controls the output of Write.
type Options struct {
	Width   int  // bar width in characters
	Summary bool // print the region usage after every block
}

// Write outputs one block per occupied region of the layout, blocks are
// separated by an empty line. Unmapped sections are listed in a final block
// without bars if any are passed.
func Write(w io.Writer, layout classify.Layout, unmapped []section.Section, opts Options) error {
	bw := bufio.NewWriter(w)

	for i, group := range layout {
		if i > 0 {
			_, _ = fmt.Fprintln(bw)
		}
		for _, sec := range group.Sections {
			row := RenderRow(sec, opts.Width)
			_, _ = fmt.Fprintln(bw, row.String())
		}
		if opts.Summary {
			writeSummary(bw, group)
		}
	}

	if len(unmapped) > 0 {
		if len(layout) > 0 {
			_, _ = fmt.Fprintln(bw)
		}
		for _, sec := range unmapped {
			_, _ = fmt.Fprintf(bw, "%s %8x %7d\n", label(sec.Name), sec.Address, sec.Size)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func writeSummary(w io.Writer, group classify.Group) {
	used := group.Used()
	span := uint64(group.Region.Span())
	percent := 100 * float64(used) / float64(span)
	_, _ = fmt.Fprintf(w, "%-5s used %d of %d bytes (%.1f%%)\n", group.Region.Kind, used, span, percent)
}
