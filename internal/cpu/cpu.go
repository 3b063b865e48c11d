package cpu

import "fmt"

// Fault is raised when the dispatcher fetches an opcode with no
// implementation (spec.md sec 7 "UnknownOpcode"). Memory accesses never
// fail; this is the CPU's only error condition.
type Fault struct {
	PBR     uint8
	PC      uint16
	Opcode  uint8
	P       uint8
	E, M, X bool
}

func (f *Fault) Error() string {
	return fmt.Sprintf("cpu: unknown opcode $%02X at %02X:%04X (P=$%02X E=%t M=%t X=%t)",
		f.Opcode, f.PBR, f.PC, f.P, f.E, f.M, f.X)
}

// CPU is the 65C816 fetch-decode-execute core. It owns the register file
// exclusively and consumes a Bus for every data and code access
// (spec.md sec 2, sec 5).
type CPU struct {
	Registers

	bus   Bus
	hook  Hook
	state Runstate
}

// New constructs a CPU wired to the given bus. Install a Hook with
// SetHook for tracing; the zero value runs with no observer.
func New(bus Bus) *CPU {
	return &CPU{bus: bus}
}

// SetHook installs or clears the trace/MMIO-log observer.
func (c *CPU) SetHook(h Hook) { c.hook = h }

// State reports the current Running/Waiting/Stopped state.
func (c *CPU) State() Runstate { return c.state }

// Reset performs a hardware reset (spec.md sec 6.1): forces emulation
// mode, 8-bit A/X/Y, D=0, S=$01FF, PBR=0, and loads PC from the reset
// vector.
func (c *CPU) Reset() {
	vector := c.read16(0, vecEmuReset)
	c.Registers.reset(vector)
	c.state = Running
}

// fetch8 reads the next instruction byte and advances PC, wrapping at 16
// bits within PBR (spec.md sec 3.1: PC increments do not carry into PBR).
func (c *CPU) fetch8() uint8 {
	v := c.bus.Read8(addr24(c.PBR, c.PC))
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(lo) | uint16(hi)<<8
}

// fetch24split reads a 3-byte long operand (bank last) as bank + offset.
func (c *CPU) fetch24split() (bank uint8, off uint16) {
	off = c.fetch16()
	bank = c.fetch8()
	return bank, off
}

// fetchImmM reads an operand whose width follows the accumulator's M
// flag.
func (c *CPU) fetchImmM() uint16 {
	if c.widthM() {
		return uint16(c.fetch8())
	}
	return c.fetch16()
}

// fetchImmX reads an operand whose width follows the index X flag.
func (c *CPU) fetchImmX() uint16 {
	if c.widthX() {
		return uint16(c.fetch8())
	}
	return c.fetch16()
}

// Step executes exactly one instruction; while Waiting or Stopped it
// advances no state at all (spec.md sec 4.2 "CPU State Machine").
func (c *CPU) Step() error {
	if c.state != Running {
		return nil
	}

	if c.hook != nil {
		opcode := c.bus.Read8(addr24(c.PBR, c.PC))
		c.hook.OnFetch(c.PBR, c.PC, opcode)
		saved := c.bus
		c.bus = tracingBus{inner: saved, hook: c.hook}
		defer func() { c.bus = saved }()
	}

	opcode := c.fetch8()
	entry := opcodeTable[opcode]
	if entry == nil {
		pc := c.PC - 1
		return &Fault{
			PBR: c.PBR, PC: pc, Opcode: opcode,
			P: c.P, E: c.E, M: c.widthM(), X: c.widthX(),
		}
	}

	entry(c)
	c.applyEInvariants()
	return nil
}

// push8/pull8 implement the stack engine. In E-mode only the low byte of
// S ever varies (spec.md sec 3.1/4.2 "Stack page invariant"); the wrap
// must hold mid-sequence, not just after the instruction completes, so
// it is applied on every single push/pull rather than deferred to
// applyEInvariants.
func (c *CPU) push8(v uint8) {
	c.bus.Write8(addr24(0, c.S), v)
	c.S--
	if c.E {
		c.S = 0x0100 | (c.S & 0xFF)
	}
}

func (c *CPU) pull8() uint8 {
	c.S++
	if c.E {
		c.S = 0x0100 | (c.S & 0xFF)
	}
	return c.bus.Read8(addr24(0, c.S))
}

func (c *CPU) push16(v uint16) {
	c.push8(uint8(v >> 8))
	c.push8(uint8(v))
}

func (c *CPU) pull16() uint16 {
	lo := c.pull8()
	hi := c.pull8()
	return uint16(lo) | uint16(hi)<<8
}

// NMI delivers a non-maskable interrupt between instructions. It cancels
// WAI; it is ignored while Stopped (spec.md sec 4.2/5).
func (c *CPU) NMI() {
	if c.state == Stopped {
		return
	}
	c.state = Running
	c.enterInterrupt(vecEmuNMI, vecNativeNMI)
}

// IRQ delivers a maskable interrupt if I=0. It cancels WAI; it is
// ignored while Stopped.
func (c *CPU) IRQ() {
	if c.state == Stopped {
		return
	}
	if c.flag(flagI) {
		return
	}
	c.state = Running
	c.enterInterrupt(vecEmuIRQ, vecNativeIRQ)
}

// enterInterrupt pushes return state and vectors, per spec.md sec 4.2
// "Interrupt entry (NMI, IRQ)" and sec 6.1. PBR is never altered on
// entry; native mode additionally pushes PBR onto the stack.
func (c *CPU) enterInterrupt(emuVector, nativeVector uint16) {
	if c.E {
		c.push16(c.PC)
		c.push8(c.P)
	} else {
		c.push8(c.PBR)
		c.push16(c.PC)
		c.push8(c.P)
	}
	c.setFlag(flagI, true)
	c.setFlag(flagD, false)
	if c.E {
		c.PC = c.read16(0, emuVector)
	} else {
		c.PC = c.read16(0, nativeVector)
	}
}
