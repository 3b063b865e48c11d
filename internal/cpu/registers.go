// Package cpu implements the 65C816 CPU interpreter at the heart of the
// SNES core: the register file, addressing modes, and opcode dispatch.
package cpu

// Status register bit masks (NVMXDIZC).
const (
	flagN uint8 = 1 << 7 // Negative
	flagV uint8 = 1 << 6 // Overflow
	flagM uint8 = 1 << 5 // Accumulator width (1 = 8-bit); unused as "B" in E-mode
	flagX uint8 = 1 << 4 // Index width (1 = 8-bit); unused as break-on-stack in E-mode
	flagD uint8 = 1 << 3 // Decimal
	flagI uint8 = 1 << 2 // IRQ disable
	flagZ uint8 = 1 << 1 // Zero
	flagC uint8 = 1 << 0 // Carry
)

// Interrupt vectors, bank 0.
const (
	vecNativeCOP = 0xFFE4
	vecNativeBRK = 0xFFE6
	vecNativeNMI = 0xFFEA
	vecNativeIRQ = 0xFFEE
	vecEmuCOP    = 0xFFF4
	vecEmuNMI    = 0xFFFA
	vecEmuReset  = 0xFFFC
	vecEmuIRQ    = 0xFFFE
	vecEmuBRK    = 0xFFFE
)

// Registers holds the 65C816 register file. A and the index registers are
// always stored at their full 16-bit width; the M/X flags only govern
// which accesses are width-sensitive, per spec.md sec 3.1.
type Registers struct {
	A   uint16
	X   uint16
	Y   uint16
	D   uint16
	S   uint16
	PC  uint16
	DBR uint8
	PBR uint8
	P   uint8
	E   bool
}

// Runstate is the CPU's cooperative execution state (spec.md sec 4.2 "CPU
// State Machine").
type Runstate int

const (
	Running Runstate = iota
	Waiting
	Stopped
)

func (r *Registers) flag(mask uint8) bool { return r.P&mask != 0 }

func (r *Registers) setFlag(mask uint8, v bool) {
	if v {
		r.P |= mask
	} else {
		r.P &^= mask
	}
}

// widthM reports whether the accumulator is 8-bit (E forces this true).
func (r *Registers) widthM() bool { return r.E || r.flag(flagM) }

// widthX reports whether X/Y are 8-bit (E forces this true).
func (r *Registers) widthX() bool { return r.E || r.flag(flagX) }

// applyEInvariants enforces the E=1 => M=1,X=1,S.high=0x01 invariant
// (spec.md sec 3.1) and zero-extends X/Y when 8-bit index width is entered.
func (r *Registers) applyEInvariants() {
	if r.E {
		r.P |= flagM | flagX
		r.S = 0x0100 | (r.S & 0x00FF)
	}
	if r.flag(flagX) {
		r.X &= 0x00FF
		r.Y &= 0x00FF
	}
}

// reset loads the power-up/reset register state (spec.md sec 6.1).
func (r *Registers) reset(resetVector uint16) {
	r.E = true
	r.P = flagM | flagX | flagI
	r.D = 0
	r.DBR = 0
	r.PBR = 0
	r.S = 0x01FF
	r.PC = resetVector
	r.A, r.X, r.Y = 0, 0, 0
}
