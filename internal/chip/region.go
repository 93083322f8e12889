package chip

import "fmt"

// RegionKind describes the role of a memory region. The order of the
// constants is the order in which regions are displayed.
type RegionKind uint8

// Memory region kinds.
const (
	DROM  RegionKind = iota // flash mapped read-only data
	FLASH                   // flash mapped window of the ESP8266 family
	DRAM                    // data RAM
	IRAM                    // instruction RAM
	IROM                    // flash mapped instructions
)

var kindNames = [...]string{
	DROM:  "DROM",
	FLASH: "FLASH",
	DRAM:  "DRAM",
	IRAM:  "IRAM",
	IROM:  "IROM",
}

// String returns the label of the region kind.
func (k RegionKind) String() string {
	if int(k) >= len(kindNames) {
		return fmt.Sprintf("RegionKind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Region is a contiguous address range [Start, End) of one kind of memory.
type Region struct {
	Kind  RegionKind
	Start uint32
	End   uint32
}

// Span returns the number of bytes covered by the region.
func (r Region) Span() uint32 {
	return r.End - r.Start
}

// Contains returns whether the address is inside the region.
func (r Region) Contains(address uint32) bool {
	return r.Start <= address && address < r.End
}

// Overlaps returns whether the two regions share at least one address.
func (r Region) Overlaps(other Region) bool {
	return r.Start < other.End && other.Start < r.End
}

func (r Region) String() string {
	return fmt.Sprintf("%s [0x%08x, 0x%08x)", r.Kind, r.Start, r.End)
}
