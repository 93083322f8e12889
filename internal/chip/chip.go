// Package chip contains the memory region table of the supported Espressif
// chip variants.
package chip

import (
	"strings"
)

// Chip is a supported chip variant.
type Chip uint8

// Supported chip variants.
const (
	ESP8266 Chip = iota + 1
	ESP32
	ESP32S2
	ESP32S3
	ESP32C2
	ESP32C3
	ESP32C6
	ESP32H2
)

var chipNames = map[Chip]string{
	ESP8266: "esp8266",
	ESP32:   "esp32",
	ESP32S2: "esp32s2",
	ESP32S3: "esp32s3",
	ESP32C2: "esp32c2",
	ESP32C3: "esp32c3",
	ESP32C6: "esp32c6",
	ESP32H2: "esp32h2",
}

// String returns the canonical lower case name of the chip.
func (c Chip) String() string {
	name, ok := chipNames[c]
	if !ok {
		return "unknown"
	}
	return name
}

// Chips returns all supported chips in declaration order.
func Chips() []Chip {
	return []Chip{ESP8266, ESP32, ESP32S2, ESP32S3, ESP32C2, ESP32C3, ESP32C6, ESP32H2}
}

// ChipNames returns the names of all supported chips, usable for usage texts.
func ChipNames() []string {
	chips := Chips()
	names := make([]string, 0, len(chips))
	for _, c := range chips {
		names = append(names, c.String())
	}
	return names
}

// ParseChip returns the chip for the given name. The comparison ignores case
// as well as dashes, underscores and spaces, so "ESP32-C3" and "esp32c3"
// resolve to the same chip.
func ParseChip(name string) (Chip, error) {
	normalized := normalizeName(name)
	for _, c := range Chips() {
		if c.String() == normalized {
			return c, nil
		}
	}
	return 0, &UnsupportedChipError{Name: name}
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
}
