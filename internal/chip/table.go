package chip

import "sort"

// window is a flash mapped region whose size depends on the flash size,
// limited by the maximum amount of flash that the chip can map at Base.
type window struct {
	kind RegionKind
	base uint32
	max  uint32
}

func (w window) region(flash FlashSize) Region {
	size := flash.Bytes()
	if size > uint64(w.max) {
		size = uint64(w.max)
	}
	return Region{Kind: w.kind, Start: w.base, End: w.base + uint32(size)}
}

type profile struct {
	ram          []Region
	windows      []window
	defaultFlash FlashSize // FlashUnset if the flash size has to be given
}

// profiles is built once and never modified.
var profiles = map[Chip]profile{
	ESP8266: {
		ram: []Region{
			{Kind: DRAM, Start: 0x3FFE8000, End: 0x3FFE8000 + 80*kb},
			{Kind: IRAM, Start: 0x40100000, End: 0x40100000 + 32*kb},
		},
		windows: []window{
			{kind: FLASH, base: 0x40200000, max: 1 * mb},
		},
	},
	ESP32: {
		ram: []Region{
			{Kind: DRAM, Start: 0x3FFB0000, End: 0x3FFB0000 + 176*kb},
			{Kind: IRAM, Start: 0x40080000, End: 0x40080000 + 128*kb},
		},
		windows: []window{
			{kind: DROM, base: 0x3F400000, max: 4 * mb},
			{kind: IROM, base: 0x400D0000, max: 0x40400000 - 0x400D0000},
		},
		defaultFlash: Flash4MB,
	},
	ESP32S2: {
		ram: []Region{
			{Kind: DRAM, Start: 0x3FFB0000, End: 0x3FFB0000 + 320*kb},
			{Kind: IRAM, Start: 0x40020000, End: 0x40020000 + 320*kb},
		},
		windows: []window{
			{kind: DROM, base: 0x3F000000, max: 0x3F3F0000 - 0x3F000000},
			{kind: IROM, base: 0x40080000, max: 0x40800000 - 0x40080000},
		},
		defaultFlash: Flash4MB,
	},
	ESP32S3: {
		ram: []Region{
			{Kind: DRAM, Start: 0x3FC88000, End: 0x3FCF0000},
			{Kind: IRAM, Start: 0x40378000, End: 0x403E0000},
		},
		windows: []window{
			{kind: DROM, base: 0x3C000000, max: 32 * mb},
			{kind: IROM, base: 0x42000000, max: 32 * mb},
		},
		defaultFlash: Flash4MB,
	},
	ESP32C2: {
		ram: []Region{
			{Kind: DRAM, Start: 0x3FCA0000, End: 0x3FCA0000 + 256*kb},
			{Kind: IRAM, Start: 0x4037C000, End: 0x4037C000 + 272*kb},
		},
		windows: []window{
			{kind: DROM, base: 0x3C000000, max: 4 * mb},
			{kind: IROM, base: 0x42000000, max: 4 * mb},
		},
		defaultFlash: Flash4MB,
	},
	ESP32C3: {
		ram: []Region{
			{Kind: DRAM, Start: 0x3FC80000, End: 0x3FC80000 + 0x50000},
			{Kind: IRAM, Start: 0x4037C000, End: 0x4037C000 + 400*kb},
		},
		windows: []window{
			{kind: DROM, base: 0x3C000000, max: 8 * mb},
			{kind: IROM, base: 0x42000000, max: 8 * mb},
		},
		defaultFlash: Flash4MB,
	},
	ESP32C6: {
		// instruction and data bus share the HP SRAM, it is listed once as DRAM
		ram: []Region{
			{Kind: DRAM, Start: 0x40800000, End: 0x40800000 + 512*kb},
		},
		windows: []window{
			{kind: DROM, base: 0x42800000, max: 8 * mb},
			{kind: IROM, base: 0x42000000, max: 8 * mb},
		},
		defaultFlash: Flash4MB,
	},
	ESP32H2: {
		ram: []Region{
			{Kind: DRAM, Start: 0x40800000, End: 0x40800000 + 256*kb},
		},
		windows: []window{
			{kind: DROM, base: 0x42800000, max: 4 * mb},
			{kind: IROM, base: 0x42000000, max: 4 * mb},
		},
		defaultFlash: Flash4MB,
	},
}

// DefaultFlashSize returns the flash size that RegionsFor uses for the chip
// when no flash size is given. It returns FlashUnset for chips that require
// an explicit flash size.
func DefaultFlashSize(c Chip) FlashSize {
	return profiles[c].defaultFlash
}

// RegionsFor returns the memory regions of the chip, ordered by region kind
// display order and start address. Flash mapped regions are sized by the
// flash size, limited to what the chip can map. If flash is FlashUnset the
// default flash size of the chip is used, chips without default return a
// MissingFlashSizeError.
func RegionsFor(c Chip, flash FlashSize) ([]Region, error) {
	p, ok := profiles[c]
	if !ok {
		return nil, &UnsupportedChipError{Name: c.String()}
	}
	if !flash.valid() {
		return nil, ErrInvalidFlashSize
	}

	if flash == FlashUnset && len(p.windows) > 0 {
		if p.defaultFlash == FlashUnset {
			return nil, &MissingFlashSizeError{Chip: c}
		}
		flash = p.defaultFlash
	}

	regions := make([]Region, 0, len(p.ram)+len(p.windows))
	regions = append(regions, p.ram...)
	for _, w := range p.windows {
		regions = append(regions, w.region(flash))
	}

	sort.SliceStable(regions, func(i, j int) bool {
		if regions[i].Kind != regions[j].Kind {
			return regions[i].Kind < regions[j].Kind
		}
		return regions[i].Start < regions[j].Start
	})
	return regions, nil
}
