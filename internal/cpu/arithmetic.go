package cpu

// adc/sbc/and/ora/eor/cmp/cpx/cpy/bit/tsb/trb dispatch an addressing
// mode to the width-generic ALU routines in alu.go (spec.md sec 4.2).

func (c *CPU) adcImm() {
	if c.widthM() {
		c.adc8(c.fetch8())
	} else {
		c.adc16(c.fetch16())
	}
}

func (c *CPU) adc(m mode) {
	ea := c.operandAddr(m)
	if c.widthM() {
		c.adc8(uint8(c.loadWidth(ea, m, true)))
	} else {
		c.adc16(c.loadWidth(ea, m, false))
	}
}

func (c *CPU) sbcImm() {
	if c.widthM() {
		c.sbc8(c.fetch8())
	} else {
		c.sbc16(c.fetch16())
	}
}

func (c *CPU) sbc(m mode) {
	ea := c.operandAddr(m)
	if c.widthM() {
		c.sbc8(uint8(c.loadWidth(ea, m, true)))
	} else {
		c.sbc16(c.loadWidth(ea, m, false))
	}
}

// logicKind selects AND/ORA/EOR; logic8/logic16 apply it
// width-sensitively, setting Z and N.
type logicKind int

const (
	logicAND logicKind = iota
	logicORA
	logicEOR
)

func (c *CPU) logic8(kind logicKind, operand uint8) {
	a := uint8(c.A)
	var r uint8
	switch kind {
	case logicAND:
		r = a & operand
	case logicORA:
		r = a | operand
	case logicEOR:
		r = a ^ operand
	}
	c.A = uint16(r)
	c.setNZ8(r)
}

func (c *CPU) logic16(kind logicKind, operand uint16) {
	a := c.A
	var r uint16
	switch kind {
	case logicAND:
		r = a & operand
	case logicORA:
		r = a | operand
	case logicEOR:
		r = a ^ operand
	}
	c.A = r
	c.setNZ16(r)
}

func (c *CPU) logicImm(kind logicKind) {
	if c.widthM() {
		c.logic8(kind, c.fetch8())
	} else {
		c.logic16(kind, c.fetch16())
	}
}

func (c *CPU) logic(kind logicKind, m mode) {
	ea := c.operandAddr(m)
	if c.widthM() {
		c.logic8(kind, uint8(c.loadWidth(ea, m, true)))
	} else {
		c.logic16(kind, c.loadWidth(ea, m, false))
	}
}

func (c *CPU) cmpImm() {
	if c.widthM() {
		c.cmp8(uint8(c.A), c.fetch8())
	} else {
		c.cmp16(c.A, c.fetch16())
	}
}

func (c *CPU) cmp(m mode) {
	ea := c.operandAddr(m)
	if c.widthM() {
		c.cmp8(uint8(c.A), uint8(c.loadWidth(ea, m, true)))
	} else {
		c.cmp16(c.A, c.loadWidth(ea, m, false))
	}
}

func (c *CPU) cpxImm() {
	if c.widthX() {
		c.cmp8(uint8(c.X), c.fetch8())
	} else {
		c.cmp16(c.X, c.fetch16())
	}
}

func (c *CPU) cpx(m mode) {
	ea := c.operandAddr(m)
	if c.widthX() {
		c.cmp8(uint8(c.X), uint8(c.loadWidth(ea, m, true)))
	} else {
		c.cmp16(c.X, c.loadWidth(ea, m, false))
	}
}

func (c *CPU) cpyImm() {
	if c.widthX() {
		c.cmp8(uint8(c.Y), c.fetch8())
	} else {
		c.cmp16(c.Y, c.fetch16())
	}
}

func (c *CPU) cpy(m mode) {
	ea := c.operandAddr(m)
	if c.widthX() {
		c.cmp8(uint8(c.Y), uint8(c.loadWidth(ea, m, true)))
	} else {
		c.cmp16(c.Y, c.loadWidth(ea, m, false))
	}
}

func (c *CPU) bitImm() {
	if c.widthM() {
		c.bitImm8(c.fetch8())
	} else {
		c.bitImm16(c.fetch16())
	}
}

func (c *CPU) bit(m mode) {
	ea := c.operandAddr(m)
	if c.widthM() {
		c.bitMem8(uint8(c.loadWidth(ea, m, true)))
	} else {
		c.bitMem16(c.loadWidth(ea, m, false))
	}
}

// tsb/trb: Z from (A&M); write M|A (TSB) or M&^A (TRB), per spec.md
// sec 4.2.
func (c *CPU) tsb(m mode) {
	ea := c.operandAddr(m)
	if c.widthM() {
		a := uint8(c.A)
		mem := uint8(c.loadWidth(ea, m, true))
		c.setFlag(flagZ, a&mem == 0)
		c.storeWidth(ea, m, true, uint16(mem|a))
	} else {
		a := c.A
		mem := c.loadWidth(ea, m, false)
		c.setFlag(flagZ, a&mem == 0)
		c.storeWidth(ea, m, false, mem|a)
	}
}

func (c *CPU) trb(m mode) {
	ea := c.operandAddr(m)
	if c.widthM() {
		a := uint8(c.A)
		mem := uint8(c.loadWidth(ea, m, true))
		c.setFlag(flagZ, a&mem == 0)
		c.storeWidth(ea, m, true, uint16(mem&^a))
	} else {
		a := c.A
		mem := c.loadWidth(ea, m, false)
		c.setFlag(flagZ, a&mem == 0)
		c.storeWidth(ea, m, false, mem&^a)
	}
}
