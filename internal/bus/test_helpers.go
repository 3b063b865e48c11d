package bus

import (
	"gosnes/internal/apu"
	"gosnes/internal/cartridge"
	"gosnes/internal/controller"
	"gosnes/internal/ppu"
)

// newTestBus wires a bus with an empty LoROM cartridge and fresh
// collaborators, matching the construction every test in this package
// needs.
func newTestBus(romSize int) *Bus {
	cart := cartridge.New(make([]byte, romSize), cartridge.LoROM)
	p := ppu.New()
	a := apu.New()
	pad := &controller.Pad{}
	return New(cart, p, a, pad)
}

// newCartridgeForTest wraps rom under LoROM, for tests that need to
// swap in a populated image after construction.
func newCartridgeForTest(rom []byte) *cartridge.Cartridge {
	return cartridge.New(rom, cartridge.LoROM)
}
