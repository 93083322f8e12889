// Package section contains the section description that the loaders
// produce from firmware files.
package section

import "fmt"

// Section is a named, contiguous chunk of a firmware image as laid out by
// the linker.
type Section struct {
	Name    string
	Address uint32
	Size    uint32
	Type    string // ELF section type like SHT_PROGBITS, empty if unknown
}

// End returns the first address after the section. The result is 64 bit
// wide as sections at the top of the address space can end at 2^32.
func (s Section) End() uint64 {
	return uint64(s.Address) + uint64(s.Size)
}

func (s Section) String() string {
	return fmt.Sprintf("%s 0x%08x %d", s.Name, s.Address, s.Size)
}
