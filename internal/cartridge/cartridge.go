// Package cartridge provides the ROM container the memory bus maps
// into CPU address space (spec.md sec 6.7). It does not parse cartridge
// headers (copier headers, ROM-makeup byte, checksum) — callers supply
// already-stripped ROM bytes plus the mapping mode to use.
package cartridge

// Mapping selects how a 24-bit CPU address decodes into the ROM byte
// array.
type Mapping int

const (
	// LoROM: bank in $00-$7D or $80-$FF, offset >= $8000.
	LoROM Mapping = iota
	// HiROM: bank in $40-$7D or $C0-$FF, full 64KiB bank window.
	HiROM
)

// Cartridge is a flat ROM image plus the mapping mode used to decode
// CPU addresses into offsets within it.
type Cartridge struct {
	rom     []byte
	mapping Mapping
}

// New wraps rom (already stripped of any copier header) under the given
// mapping. An empty rom is valid; all reads from it return 0 since the
// modulo wrap of a zero-length slice is defined as 0 by Read.
func New(rom []byte, mapping Mapping) *Cartridge {
	return &Cartridge{rom: rom, mapping: mapping}
}

// Mapping reports the active mapping mode.
func (c *Cartridge) Mapping() Mapping { return c.mapping }

// Len reports the raw ROM size in bytes.
func (c *Cartridge) Len() int { return len(c.rom) }

// Read maps a 24-bit address (bank<<16 | offset) to a ROM byte per
// spec.md sec 6.7. All ROM reads wrap modulo the actual ROM size; a
// zero-length ROM always reads 0x00.
func (c *Cartridge) Read(bank uint8, offset uint16) uint8 {
	if len(c.rom) == 0 {
		return 0
	}
	idx := c.index(bank, offset)
	return c.rom[idx%len(c.rom)]
}

func (c *Cartridge) index(bank uint8, offset uint16) int {
	switch c.mapping {
	case HiROM:
		return int(bank&0x7F)*0x10000 + int(offset)
	default: // LoROM
		return int(bank&0x7F)*0x8000 + int(offset-0x8000)
	}
}

// MapsBank reports whether this mapping claims the given bank/offset
// pair as ROM space (as opposed to leaving it to WRAM/MMIO decode in
// the bus). Banks outside either mapping's defined set are not ROM.
func (c *Cartridge) MapsBank(bank uint8, offset uint16) bool {
	switch c.mapping {
	case HiROM:
		return (bank >= 0x40 && bank <= 0x7D) || bank >= 0xC0
	default: // LoROM
		return (bank <= 0x7D || bank >= 0x80) && offset >= 0x8000
	}
}
