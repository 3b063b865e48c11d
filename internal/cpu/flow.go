package cpu

// Branches take a sign-extended 8-bit offset from the PC just past the
// operand; PBR is never affected (spec.md sec 4.2 "Branches").
func (c *CPU) branch(taken bool) {
	disp := int8(c.fetch8())
	if taken {
		c.PC = uint16(int32(c.PC) + int32(disp))
	}
}

func (c *CPU) bra()  { c.branch(true) }
func (c *CPU) bcc()  { c.branch(!c.flag(flagC)) }
func (c *CPU) bcs()  { c.branch(c.flag(flagC)) }
func (c *CPU) beq()  { c.branch(c.flag(flagZ)) }
func (c *CPU) bne()  { c.branch(!c.flag(flagZ)) }
func (c *CPU) bpl()  { c.branch(!c.flag(flagN)) }
func (c *CPU) bmi()  { c.branch(c.flag(flagN)) }
func (c *CPU) bvc()  { c.branch(!c.flag(flagV)) }
func (c *CPU) bvs()  { c.branch(c.flag(flagV)) }

// brl takes a 16-bit signed displacement within PBR.
func (c *CPU) brl() {
	disp := int16(c.fetch16())
	c.PC = uint16(int32(c.PC) + int32(disp))
}

func (c *CPU) jmpAbs() {
	c.PC = c.fetch16()
}

func (c *CPU) jmpAbsIndirect() {
	imm := c.fetch16()
	_, off := splitAddr(c.eaAbsoluteIndirectJMP(imm))
	c.PC = off
}

func (c *CPU) jmpAbsIndirectX() {
	imm := c.fetch16()
	_, off := splitAddr(c.eaAbsoluteIndirectX(imm))
	c.PC = off
}

func (c *CPU) jml() {
	bank, off := c.fetch24split()
	c.PBR = bank
	c.PC = off
}

func (c *CPU) jmlIndirect() {
	imm := c.fetch16()
	ptr := c.eaAbsoluteIndirectLong(imm)
	bank, off := splitAddr(ptr)
	c.PBR = bank
	c.PC = off
}

// jsr pushes (PC-1) high then low, where PC is the address of the
// instruction after JSR; the target stays within the current PBR.
func (c *CPU) jsr() {
	target := c.fetch16()
	c.push16(c.PC - 1)
	c.PC = target
}

func (c *CPU) jsrAbsIndirectX() {
	imm := c.fetch16()
	_, off := splitAddr(c.eaAbsoluteIndirectX(imm))
	c.push16(c.PC - 1)
	c.PC = off
}

// jsl pushes PBR, then (PC-1) high then low, and sets PBR:PC to the
// 24-bit target.
func (c *CPU) jsl() {
	bank, off := c.fetch24split()
	c.push8(c.PBR)
	c.push16(c.PC - 1)
	c.PBR = bank
	c.PC = off
}

func (c *CPU) rts() {
	lo := c.pull8()
	hi := c.pull8()
	c.PC = (uint16(lo) | uint16(hi)<<8) + 1
}

func (c *CPU) rtl() {
	lo := c.pull8()
	hi := c.pull8()
	bank := c.pull8()
	c.PC = ((uint16(lo) | uint16(hi)<<8) + 1) & 0xFFFF
	c.PBR = bank
}

// brkCOP implements BRK/COP entry: a 2-byte instruction (opcode plus an
// unused signature byte); PC has advanced past the signature byte
// before the return address is pushed (spec.md sec 4.2 "BRK/COP").
func (c *CPU) brkCOP(emuVector, nativeVector uint16) {
	c.fetch8() // signature byte
	if c.E {
		c.push16(c.PC)
		c.push8(c.P)
		c.PC = c.read16(0, emuVector)
	} else {
		c.push8(c.PBR)
		c.push16(c.PC)
		c.push8(c.P)
		c.PC = c.read16(0, nativeVector)
	}
	c.setFlag(flagI, true)
	c.setFlag(flagD, false)
}

func (c *CPU) brk() { c.brkCOP(vecEmuBRK, vecNativeBRK) }
func (c *CPU) cop() { c.brkCOP(vecEmuCOP, vecNativeCOP) }

// rti pulls P (respecting width updates applied by the caller after this
// returns), then PCL, PCH; native mode additionally pulls PBR.
func (c *CPU) rti() {
	c.P = c.pull8()
	lo := c.pull8()
	hi := c.pull8()
	c.PC = uint16(lo) | uint16(hi)<<8
	if !c.E {
		c.PBR = c.pull8()
	}
}
