// Package classify assigns firmware sections to the memory regions of a chip.
package classify

import (
	"github.com/retroenv/espmemmap/internal/chip"
	"github.com/retroenv/espmemmap/internal/section"
)

// Classified is a section together with the region that contains its
// start address.
type Classified struct {
	section.Section
	Region chip.Region
}

// Group contains all sections of one region in input order.
type Group struct {
	Region   chip.Region
	Sections []Classified
}

// Layout is the list of occupied regions in region table order.
type Layout []Group

// Classify assigns every section with a non zero size to the first region
// that contains its start address. Sections outside of all regions are
// dropped, regions without sections are not part of the result.
func Classify(sections []section.Section, regions []chip.Region) Layout {
	groups := make([]Group, len(regions))
	for i, r := range regions {
		groups[i].Region = r
	}

	for _, sec := range sections {
		i, ok := find(sec, regions)
		if !ok {
			continue
		}
		groups[i].Sections = append(groups[i].Sections, Classified{
			Section: sec,
			Region:  regions[i],
		})
	}

	layout := make(Layout, 0, len(groups))
	for _, g := range groups {
		if len(g.Sections) > 0 {
			layout = append(layout, g)
		}
	}
	return layout
}

// Unmapped returns the sections with a non zero size that are not inside
// any of the regions, in input order.
func Unmapped(sections []section.Section, regions []chip.Region) []section.Section {
	var unmapped []section.Section
	for _, sec := range sections {
		if sec.Size == 0 {
			continue
		}
		if _, ok := find(sec, regions); !ok {
			unmapped = append(unmapped, sec)
		}
	}
	return unmapped
}

// find returns the index of the first region containing the section start.
func find(sec section.Section, regions []chip.Region) (int, bool) {
	if sec.Size == 0 {
		return 0, false
	}
	for i, r := range regions {
		if r.Contains(sec.Address) {
			return i, true
		}
	}
	return 0, false
}

// Used returns the number of region bytes occupied by the sections of the
// group. Sections sharing a start address are aliases and are counted once
// with the largest size, bytes past the region end are not counted.
func (g Group) Used() uint64 {
	sizes := make(map[uint32]uint64, len(g.Sections))
	for _, sec := range g.Sections {
		size := sec.End()
		if end := uint64(g.Region.End); size > end {
			size = end
		}
		size -= uint64(sec.Address)
		if size > sizes[sec.Address] {
			sizes[sec.Address] = size
		}
	}

	var used uint64
	for _, size := range sizes {
		used += size
	}
	return used
}
