package classify

import (
	"testing"

	"github.com/retroenv/espmemmap/internal/chip"
	"github.com/retroenv/espmemmap/internal/section"
	"github.com/retroenv/retrogolib/assert"
)

var testRegions = []chip.Region{
	{Kind: chip.DROM, Start: 0x3C000000, End: 0x3C400000},
	{Kind: chip.DRAM, Start: 0x3FC80000, End: 0x3FCD0000},
	{Kind: chip.IRAM, Start: 0x4037C000, End: 0x403E0000},
	{Kind: chip.IROM, Start: 0x42000000, End: 0x42400000},
}

//nolint:funlen // test functions can be long
func TestClassify(t *testing.T) {
	t.Run("zero size sections are dropped", func(t *testing.T) {
		sections := []section.Section{
			{Name: ".rodata", Address: 0x3C000020, Size: 0},
			{Name: ".data", Address: 0x3FC80000, Size: 0},
		}
		layout := Classify(sections, testRegions)
		assert.Equal(t, 0, len(layout))
	})

	t.Run("sections outside all regions are dropped", func(t *testing.T) {
		sections := []section.Section{
			{Name: ".comment", Address: 0, Size: 100},
			{Name: ".rtc.text", Address: 0x50000000, Size: 16},
			{Name: ".flash.text", Address: 0x42400000, Size: 16},
		}
		layout := Classify(sections, testRegions)
		assert.Equal(t, 0, len(layout))
		assert.Equal(t, 3, len(Unmapped(sections, testRegions)))
	})

	t.Run("section is assigned to the containing region only", func(t *testing.T) {
		sections := []section.Section{
			{Name: ".iram0.text", Address: 0x4037C100, Size: 0x200},
		}
		layout := Classify(sections, testRegions)
		assert.Equal(t, 1, len(layout))
		assert.Equal(t, chip.IRAM, layout[0].Region.Kind)
		assert.Equal(t, 1, len(layout[0].Sections))
		assert.Equal(t, ".iram0.text", layout[0].Sections[0].Name)
		assert.Equal(t, chip.IRAM, layout[0].Sections[0].Region.Kind)
	})

	t.Run("region start is inclusive and end exclusive", func(t *testing.T) {
		sections := []section.Section{
			{Name: "first", Address: 0x3FC80000, Size: 4},
			{Name: "past", Address: 0x3FCD0000, Size: 4},
		}
		layout := Classify(sections, testRegions)
		assert.Equal(t, 1, len(layout))
		assert.Equal(t, chip.DRAM, layout[0].Region.Kind)
		assert.Equal(t, 1, len(layout[0].Sections))
		assert.Equal(t, "first", layout[0].Sections[0].Name)
	})

	t.Run("input order is kept within a region", func(t *testing.T) {
		sections := []section.Section{
			{Name: ".bss", Address: 0x3FC90000, Size: 0x100},
			{Name: ".data", Address: 0x3FC80000, Size: 0x100},
			{Name: ".flash.text", Address: 0x42000020, Size: 0x1000},
			{Name: ".noinit", Address: 0x3FC88000, Size: 0x10},
		}
		layout := Classify(sections, testRegions)
		assert.Equal(t, 2, len(layout))

		assert.Equal(t, chip.DRAM, layout[0].Region.Kind)
		assert.Equal(t, 3, len(layout[0].Sections))
		assert.Equal(t, ".bss", layout[0].Sections[0].Name)
		assert.Equal(t, ".data", layout[0].Sections[1].Name)
		assert.Equal(t, ".noinit", layout[0].Sections[2].Name)

		assert.Equal(t, chip.IROM, layout[1].Region.Kind)
	})

	t.Run("groups follow region table order", func(t *testing.T) {
		sections := []section.Section{
			{Name: ".flash.text", Address: 0x42000020, Size: 0x1000},
			{Name: ".iram0.text", Address: 0x4037C000, Size: 0x100},
			{Name: ".flash.rodata", Address: 0x3C000020, Size: 0x100},
		}
		layout := Classify(sections, testRegions)
		assert.Equal(t, 3, len(layout))
		assert.Equal(t, chip.DROM, layout[0].Region.Kind)
		assert.Equal(t, chip.IRAM, layout[1].Region.Kind)
		assert.Equal(t, chip.IROM, layout[2].Region.Kind)
	})

	t.Run("first matching region wins for overlapping regions", func(t *testing.T) {
		overlapping := []chip.Region{
			{Kind: chip.DRAM, Start: 0x1000, End: 0x3000},
			{Kind: chip.IRAM, Start: 0x2000, End: 0x4000},
		}
		sections := []section.Section{
			{Name: "shared", Address: 0x2800, Size: 8},
		}
		layout := Classify(sections, overlapping)
		assert.Equal(t, 1, len(layout))
		assert.Equal(t, chip.DRAM, layout[0].Region.Kind)
	})

	t.Run("sections with the same start address are all kept", func(t *testing.T) {
		sections := []section.Section{
			{Name: ".dram0.bss", Address: 0x3FC80000, Size: 0x100},
			{Name: ".dram0.alias", Address: 0x3FC80000, Size: 0x80},
		}
		layout := Classify(sections, testRegions)
		assert.Equal(t, 1, len(layout))
		assert.Equal(t, 2, len(layout[0].Sections))
		assert.Equal(t, ".dram0.bss", layout[0].Sections[0].Name)
		assert.Equal(t, ".dram0.alias", layout[0].Sections[1].Name)
	})
}

func TestGroupUsed(t *testing.T) {
	region := chip.Region{Kind: chip.DRAM, Start: 0x1000, End: 0x2000}

	t.Run("sums section sizes", func(t *testing.T) {
		g := Group{Region: region, Sections: []Classified{
			{Section: section.Section{Address: 0x1000, Size: 0x100}, Region: region},
			{Section: section.Section{Address: 0x1100, Size: 0x200}, Region: region},
		}}
		assert.Equal(t, uint64(0x300), g.Used())
	})

	t.Run("aliases are counted once", func(t *testing.T) {
		g := Group{Region: region, Sections: []Classified{
			{Section: section.Section{Address: 0x1000, Size: 0x80}, Region: region},
			{Section: section.Section{Address: 0x1000, Size: 0x100}, Region: region},
		}}
		assert.Equal(t, uint64(0x100), g.Used())
	})

	t.Run("bytes past the region end are ignored", func(t *testing.T) {
		g := Group{Region: region, Sections: []Classified{
			{Section: section.Section{Address: 0x1f00, Size: 0x400}, Region: region},
		}}
		assert.Equal(t, uint64(0x100), g.Used())
	})
}
