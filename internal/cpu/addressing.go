package cpu

// Bus is the memory bus contract the CPU relies on (spec.md sec 4.3). The
// CPU never touches WRAM/ROM/MMIO directly; every data and code access
// goes through this interface.
type Bus interface {
	Read8(addr uint32) uint8
	Write8(addr uint32, v uint8)
}

// addr24 packs a bank and a 16-bit offset into the CPU's 24-bit address
// space.
func addr24(bank uint8, offset uint16) uint32 {
	return uint32(bank)<<16 | uint32(offset)
}

func splitAddr(a uint32) (bank uint8, offset uint16) {
	return uint8(a >> 16), uint16(a)
}

// read16 reads a little-endian 16-bit value, wrapping the offset within
// the given bank (no bank carry) per spec.md sec 4.1.
func (c *CPU) read16(bank uint8, offset uint16) uint16 {
	lo := c.bus.Read8(addr24(bank, offset))
	hi := c.bus.Read8(addr24(bank, offset+1))
	return uint16(lo) | uint16(hi)<<8
}

// read16Long reads a little-endian 16-bit value at a fully linear 24-bit
// address, carrying into the next bank if the offset wraps.
func (c *CPU) read16Long(a uint32) uint16 {
	lo := c.bus.Read8(a)
	hi := c.bus.Read8(a + 1)
	return uint16(lo) | uint16(hi)<<8
}

// read24Long reads a 24-bit little-endian pointer at a linear address.
func (c *CPU) read24Long(a uint32) uint32 {
	lo := c.bus.Read8(a)
	mid := c.bus.Read8(a + 1)
	hi := c.bus.Read8(a + 2)
	return uint32(lo) | uint32(mid)<<8 | uint32(hi)<<16
}

// dpBase returns the direct-page linear base used for indirect-pointer
// fetches. Per the recommended convention in spec.md sec 4.1/9, pointer
// tables use D as a linear base; single-byte dp operand addressing uses
// hardware page-wrap (dpPageOffset below).
func (c *CPU) dpBase() uint32 {
	return uint32(c.D)
}

// dpPageOffset computes the hardware-accurate, page-wrapped direct-page
// effective address used by single-operand dp instructions (LDA dp, STA
// dp, INC dp, ...). Bank is always 0.
func (c *CPU) dpPageOffset(dp uint8) uint16 {
	if c.E {
		return uint16(dp)
	}
	return (c.D & 0xFF00) | uint16(dp)
}

// eaDirectPage: dp
func (c *CPU) eaDirectPage(dp uint8) uint32 {
	return addr24(0, c.dpPageOffset(dp))
}

// eaDirectPageIndexed: dp,X or dp,Y. The index contributes only its low 8
// bits even when 16-bit wide, matching SNES hardware (spec.md sec 4.1).
func (c *CPU) eaDirectPageIndexed(dp uint8, index uint16) uint32 {
	pageBase := uint16(0)
	if !c.E {
		pageBase = c.D & 0xFF00
	}
	off := (uint16(dp) + (index & 0xFF)) & 0xFF
	return addr24(0, pageBase+off)
}

// dpIndirectPointer computes the 16-bit pointer for (dp), honoring the
// E-mode page-wrap quirk when DL=0 and dp=0xFF (spec.md sec 4.1).
func (c *CPU) dpIndirectPointer(dp uint8) uint16 {
	if c.E && (c.D&0xFF) == 0 && dp == 0xFF {
		lo := c.bus.Read8(addr24(0, c.D|0xFF))
		hi := c.bus.Read8(addr24(0, c.D|0x00))
		return uint16(lo) | uint16(hi)<<8
	}
	return c.read16Long(c.dpBase() + uint32(dp))
}

// eaDPIndirect: (dp) -> DBR:pointer
func (c *CPU) eaDPIndirect(dp uint8) uint32 {
	ptr := c.dpIndirectPointer(dp)
	return addr24(c.DBR, ptr)
}

// eaDPIndirectX: (dp,X) -> DBR:pointer
func (c *CPU) eaDPIndirectX(dp uint8) uint32 {
	xlow := c.X & 0xFF
	var ptr uint16
	switch {
	case !c.E:
		prime := (uint16(dp) + xlow) & 0xFF
		page := c.D & 0xFF00
		lo := c.bus.Read8(addr24(0, page|prime))
		hi := c.bus.Read8(addr24(0, page|((prime+1)&0xFF)))
		ptr = uint16(lo) | uint16(hi)<<8
	case (c.D & 0xFF) == 0:
		prime := (uint16(dp) + xlow) & 0xFF
		lo := c.bus.Read8(addr24(0, c.D|prime))
		hi := c.bus.Read8(addr24(0, c.D|((prime+1)&0xFF)))
		ptr = uint16(lo) | uint16(hi)<<8
	default:
		// 9-bit pre-index with the xFF high-byte special case (spec.md
		// sec 4.1/9 - preserved pending conflicting documentation).
		prime := c.D + uint16(dp) + xlow
		lo := c.bus.Read8(addr24(0, prime))
		var hiAddr uint16
		if prime&0xFF == 0xFF {
			hiAddr = prime &^ 0xFF
		} else {
			hiAddr = prime + 1
		}
		hi := c.bus.Read8(addr24(0, hiAddr))
		ptr = uint16(lo) | uint16(hi)<<8
	}
	return addr24(c.DBR, ptr)
}

// eaDPIndirectY: (dp),Y -> DBR:(pointer+Y), no bank carry.
func (c *CPU) eaDPIndirectY(dp uint8) uint32 {
	ptr := c.dpIndirectPointer(dp)
	return addr24(c.DBR, ptr+c.Y)
}

// eaDPIndirectLong: [dp] -> 24-bit pointer read linearly from D+dp.
func (c *CPU) eaDPIndirectLong(dp uint8) uint32 {
	return c.read24Long(c.dpBase() + uint32(dp))
}

// eaDPIndirectLongY: [dp],Y -> 24-bit add, may carry into the bank.
func (c *CPU) eaDPIndirectLongY(dp uint8) uint32 {
	ptr := c.eaDPIndirectLong(dp)
	return (ptr + uint32(c.Y)) & 0xFFFFFF
}

// eaAbsolute: DBR:imm16
func (c *CPU) eaAbsolute(imm16 uint16) uint32 {
	return addr24(c.DBR, imm16)
}

// eaAbsoluteIndexed: DBR:(imm16+index), 16-bit add, no bank carry.
func (c *CPU) eaAbsoluteIndexed(imm16 uint16, index uint16) uint32 {
	return addr24(c.DBR, imm16+index)
}

// eaAbsoluteIndirect: (abs), JMP only. Pointer bytes from bank 0; the high
// byte wraps within the page (6502 quirk), per spec.md sec 4.1.
func (c *CPU) eaAbsoluteIndirectJMP(imm16 uint16) uint32 {
	lo := c.bus.Read8(addr24(0, imm16))
	hiAddr := (imm16 & 0xFF00) | ((imm16 + 1) & 0xFF)
	hi := c.bus.Read8(addr24(0, hiAddr))
	return addr24(0, uint16(lo)|uint16(hi)<<8)
}

// eaAbsoluteIndirectX: (abs,X) for JMP/JSR. Pointer fetched from PBR, no
// page-wrap quirk.
func (c *CPU) eaAbsoluteIndirectX(imm16 uint16) uint32 {
	eff := imm16 + c.X
	ptr := c.read16(c.PBR, eff)
	return addr24(0, ptr)
}

// eaAbsoluteIndirectLong: [abs], JML only. Pointer bytes from bank 0.
func (c *CPU) eaAbsoluteIndirectLong(imm16 uint16) uint32 {
	return c.read24Long(addr24(0, imm16))
}

// eaLong: 24-bit literal address.
func (c *CPU) eaLong(bank uint8, off uint16) uint32 {
	return addr24(bank, off)
}

// eaLongX: long,X. A 24-bit add that may carry into the bank.
func (c *CPU) eaLongX(bank uint8, off uint16) uint32 {
	base := addr24(bank, off)
	return (base + uint32(c.X)) & 0xFFFFFF
}

// srOffset computes the stack-relative operand's low-16 address
// (spec.md sec 4.1).
func (c *CPU) srOffset(sr uint8) uint16 {
	if c.E {
		return 0x0100 | ((c.S&0xFF + uint16(sr)) & 0xFF)
	}
	return c.S + uint16(sr)
}

// eaStackRelative: sr -> bank 0.
func (c *CPU) eaStackRelative(sr uint8) uint32 {
	return addr24(0, c.srOffset(sr))
}

// eaStackRelativeIndirectY: (sr),Y -> DBR:(pointer+Y), no bank carry.
func (c *CPU) eaStackRelativeIndirectY(sr uint8) uint32 {
	ptr := c.read16(0, c.srOffset(sr))
	return addr24(c.DBR, ptr+c.Y)
}
