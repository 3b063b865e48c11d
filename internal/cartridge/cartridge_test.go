package cartridge

import "testing"

func TestLoROMIndex(t *testing.T) {
	rom := make([]byte, 0x8000*2)
	rom[0] = 0xAA
	rom[0x8000] = 0xBB
	c := New(rom, LoROM)

	if got := c.Read(0x00, 0x8000); got != 0xAA {
		t.Fatalf("bank 0 offset 0x8000 = %#x, want 0xAA", got)
	}
	if got := c.Read(0x01, 0x8000); got != 0xBB {
		t.Fatalf("bank 1 offset 0x8000 = %#x, want 0xBB", got)
	}
	if got := c.Read(0x80, 0x8000); got != 0xAA {
		t.Fatalf("mirrored bank 0x80 = %#x, want 0xAA", got)
	}
}

func TestHiROMIndex(t *testing.T) {
	rom := make([]byte, 0x10000*2)
	rom[0x1234] = 0xCC
	rom[0x10000+0x1234] = 0xDD
	c := New(rom, HiROM)

	if got := c.Read(0x40, 0x1234); got != 0xCC {
		t.Fatalf("bank 0x40 offset 0x1234 = %#x, want 0xCC", got)
	}
	if got := c.Read(0x41, 0x1234); got != 0xDD {
		t.Fatalf("bank 0x41 offset 0x1234 = %#x, want 0xDD", got)
	}
}

func TestReadWrapsModuloROMSize(t *testing.T) {
	rom := make([]byte, 0x100)
	rom[0] = 0x42
	c := New(rom, LoROM)

	if got := c.Read(0x10, 0x8000); got != 0x42 {
		t.Fatalf("wrapped read = %#x, want 0x42", got)
	}
}

func TestEmptyROMReadsZero(t *testing.T) {
	c := New(nil, LoROM)
	if got := c.Read(0x00, 0x8000); got != 0 {
		t.Fatalf("empty ROM read = %#x, want 0", got)
	}
}

func TestMapsBank(t *testing.T) {
	lo := New(make([]byte, 0x8000), LoROM)
	if lo.MapsBank(0x7E, 0x8000) {
		t.Fatalf("bank 0x7E must not be claimed as LoROM (WRAM bank)")
	}
	if !lo.MapsBank(0x00, 0x8000) {
		t.Fatalf("bank 0x00 offset 0x8000 should be LoROM")
	}
	if lo.MapsBank(0x00, 0x7FFF) {
		t.Fatalf("bank 0x00 offset below 0x8000 should not be LoROM")
	}

	hi := New(make([]byte, 0x10000), HiROM)
	if !hi.MapsBank(0x40, 0x0000) {
		t.Fatalf("bank 0x40 offset 0x0000 should be HiROM")
	}
	if hi.MapsBank(0x00, 0x8000) {
		t.Fatalf("bank 0x00 should not be HiROM")
	}
}
