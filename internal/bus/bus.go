// Package bus implements the memory bus that decodes the 65C816's
// 24-bit address space into WRAM, cartridge ROM, MMIO registers, and
// the PPU/APU/controller collaborators it owns (spec.md sec 3.2, sec
// 4.3). It is the sole mutable owner of WRAM, DMA channel state,
// mailbox buffers, controller shift state, math registers, the NMI
// latch, and the WRAM data-port cursor (spec.md sec 5).
package bus

import (
	"gosnes/internal/apu"
	"gosnes/internal/cartridge"
	"gosnes/internal/controller"
	"gosnes/internal/ppu"
	"gosnes/internal/trace"
)

const wramSize = 128 * 1024 // banks $7E-$7F

// lastMathOp records which of WRMPYA/B or WRDIV last ran, selecting
// whether $4216/$4217 read back a product or a remainder (spec.md
// sec 4.3).
type lastMathOp int

const (
	mathNone lastMathOp = iota
	mathMul
	mathDiv
)

// Bus is the concrete memory bus. It satisfies cpu.Bus.
type Bus struct {
	wram [wramSize]byte
	cart *cartridge.Cartridge
	ppu  *ppu.PPU
	apu  *apu.APU
	pad  *controller.Pad

	hook trace.Hook

	// WRAM data port ($2180-$2183).
	wramCursor uint32

	// CPU I/O.
	nmitimen   uint8
	nmiOccurred bool

	// Math registers ($4202-$4206, $4214-$4217).
	wrmpyA, wrmpyB uint8
	product        uint16
	dividendLo     uint8
	dividendHi     uint8
	divisor        uint8
	quotient       uint16
	remainder      uint16
	lastMath       lastMathOp

	// Controller strobe latch ($4016 write bit 0).
	padStrobe bool

	dma [8]dmaChannel
}

// New wires a bus around the given cartridge and PPU/APU collaborators.
// A nil pad is legal; $4016 reads then always return 1.
func New(cart *cartridge.Cartridge, p *ppu.PPU, a *apu.APU, pad *controller.Pad) *Bus {
	return &Bus{cart: cart, ppu: p, apu: a, pad: pad}
}

// SetHook installs (or clears, with nil) the trace hook invoked on MMIO
// reads/writes (SPEC_FULL.md sec 4 "MMIO logging").
func (b *Bus) SetHook(h trace.Hook) { b.hook = h }

// PulseNMI sets the $4210 RDNMI latch; the scheduler calls this at
// V-blank entry before deciding whether to invoke cpu.NMI() (spec.md
// sec 4.6).
func (b *Bus) PulseNMI() { b.nmiOccurred = true }

// NMIEnabled reports $4200 bit 7, the scheduler's gate on whether to
// actually deliver the NMI it just pulsed.
func (b *Bus) NMIEnabled() bool { return b.nmitimen&0x80 != 0 }

// Read8 decodes a 24-bit address into the appropriate region (spec.md
// sec 4.3). Memory accesses never fail; unmapped reads are open bus
// (spec.md sec 6.8).
func (b *Bus) Read8(addr uint32) uint8 {
	bank := uint8(addr >> 16)
	offset := uint16(addr)

	if isWRAMBank(bank) || (offset < 0x2000 && isSystemBank(bank)) {
		return b.wram[wramIndex(bank, offset)]
	}

	if isSystemBank(bank) {
		if offset >= 0x2100 && offset <= 0x213F {
			v := b.ppu.ReadRegister(offset)
			b.trace(offset, v, false)
			return v
		}
		if offset >= 0x2140 && offset <= 0x2143 {
			v := b.apu.ReadMailbox(int(offset - 0x2140))
			b.trace(offset, v, false)
			return v
		}
		if offset >= 0x2180 && offset <= 0x2183 {
			v := b.readWRAMPort(offset)
			b.trace(offset, v, false)
			return v
		}
		if offset == 0x4016 {
			return b.readController()
		}
		if offset >= 0x4200 && offset <= 0x421F {
			v := b.readCPUIO(offset)
			b.trace(offset, v, false)
			return v
		}
		if offset >= 0x4300 && offset <= 0x437F {
			v := b.readDMA(offset)
			b.trace(offset, v, false)
			return v
		}
	}

	if b.cart != nil && b.cart.MapsBank(bank, offset) {
		return b.cart.Read(bank, offset)
	}

	return 0x00
}

// Write8 decodes a 24-bit address and routes the write; out-of-range
// writes are silently ignored (spec.md sec 6.8, sec 7).
func (b *Bus) Write8(addr uint32, v uint8) {
	bank := uint8(addr >> 16)
	offset := uint16(addr)

	if isWRAMBank(bank) || (offset < 0x2000 && isSystemBank(bank)) {
		b.wram[wramIndex(bank, offset)] = v
		return
	}

	if isSystemBank(bank) {
		switch {
		case offset >= 0x2100 && offset <= 0x213F:
			b.trace(offset, v, true)
			b.ppu.WriteRegister(offset, v)
			return
		case offset >= 0x2140 && offset <= 0x2143:
			b.trace(offset, v, true)
			b.apu.WriteMailbox(int(offset-0x2140), v)
			return
		case offset >= 0x2180 && offset <= 0x2183:
			b.trace(offset, v, true)
			b.writeWRAMPort(offset, v)
			return
		case offset == 0x4016:
			b.writeController(v)
			return
		case offset == 0x420B:
			// MDMAEN: falls inside the $4200-$421F CPU I/O block but
			// triggers the general-purpose DMA engine instead of being
			// a plain register (spec.md sec 4.4), so it must be matched
			// before the broader range below.
			b.trace(offset, v, true)
			b.runGeneralDMA(v)
			return
		case offset >= 0x4200 && offset <= 0x421F:
			b.trace(offset, v, true)
			b.writeCPUIO(offset, v)
			return
		case offset >= 0x4300 && offset <= 0x437F:
			b.trace(offset, v, true)
			b.writeDMA(offset, v)
			return
		}
	}

	// ROM is read-only; cartridge writes (e.g. mapper bank-switch
	// registers) are out of scope (SPEC_FULL.md sec 1) and ignored.
}

func (b *Bus) trace(offset uint16, v uint8, write bool) {
	if b.hook != nil {
		b.hook.OnMMIOAccess(offset, v, write)
	}
}

// isWRAMBank reports whether bank is one of the two full WRAM banks
// ($7E-$7F).
func isWRAMBank(bank uint8) bool { return bank == 0x7E || bank == 0x7F }

// isSystemBank reports whether bank is one of banks $00-$3F (or their
// $80-$BF mirrors) where low addresses expose WRAM mirror + MMIO rather
// than ROM.
func isSystemBank(bank uint8) bool {
	b := bank &^ 0x80
	return b <= 0x3F
}

// wramIndex maps a bank/offset pair that targets WRAM (direct banks or
// the low-address mirror in banks $00-$3F/$80-$BF) to a flat index.
func wramIndex(bank uint8, offset uint16) int {
	if isWRAMBank(bank) {
		return int(bank-0x7E)*0x10000 + int(offset)
	}
	return int(offset) % 0x2000
}
