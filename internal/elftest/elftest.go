// Package elftest builds minimal 32 bit little endian ELF files for tests.
package elftest

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
)

const (
	headerSize        = 52
	sectionHeaderSize = 40
)

// Section describes a section of the generated file. Sections of type
// SHT_NOBITS get no file content, all others are filled with zero bytes.
type Section struct {
	Name    string
	Type    elf.SectionType
	Address uint32
	Size    uint32
}

// Build returns an ELF executable for the given machine containing a null
// section, a section name string table and the given sections.
func Build(machine elf.Machine, sections ...Section) []byte {
	names := []byte{0}
	nameOffset := func(name string) uint32 {
		offset := uint32(len(names))
		names = append(names, name...)
		names = append(names, 0)
		return offset
	}

	shstrtabName := nameOffset(".shstrtab")
	sectionNames := make([]uint32, len(sections))
	for i, sec := range sections {
		sectionNames[i] = nameOffset(sec.Name)
	}

	var content bytes.Buffer
	offset := uint32(headerSize)

	headers := []elf.Section32{
		{}, // null section
		{
			Name:      shstrtabName,
			Type:      uint32(elf.SHT_STRTAB),
			Off:       offset,
			Size:      uint32(len(names)),
			Addralign: 1,
		},
	}
	content.Write(names)
	offset += uint32(len(names))

	for i, sec := range sections {
		header := elf.Section32{
			Name:      sectionNames[i],
			Type:      uint32(sec.Type),
			Flags:     uint32(elf.SHF_ALLOC),
			Addr:      sec.Address,
			Size:      sec.Size,
			Addralign: 1,
		}
		if sec.Type != elf.SHT_NOBITS {
			header.Off = offset
			content.Write(make([]byte, sec.Size))
			offset += sec.Size
		}
		headers = append(headers, header)
	}

	fileHeader := elf.Header32{
		Type:      uint16(elf.ET_EXEC),
		Machine:   uint16(machine),
		Version:   uint32(elf.EV_CURRENT),
		Shoff:     offset,
		Ehsize:    headerSize,
		Shentsize: sectionHeaderSize,
		Shnum:     uint16(len(headers)),
		Shstrndx:  1,
	}
	copy(fileHeader.Ident[:], elf.ELFMAG)
	fileHeader.Ident[elf.EI_CLASS] = byte(elf.ELFCLASS32)
	fileHeader.Ident[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	fileHeader.Ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)

	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, fileHeader)
	buf.Write(content.Bytes())
	_ = binary.Write(&buf, binary.LittleEndian, headers)
	return buf.Bytes()
}
