package cpu

// rmw8/rmw16 implement the generic read-modify-write shape shared by
// ASL/LSR/ROL/ROR/INC/DEC on memory operands.
func (c *CPU) rmw8(m mode, op func(uint8) uint8) {
	ea := c.operandAddr(m)
	v := op(uint8(c.loadWidth(ea, m, true)))
	c.setNZ8(v)
	c.storeWidth(ea, m, true, uint16(v))
}

func (c *CPU) rmw16(m mode, op func(uint16) uint16) {
	ea := c.operandAddr(m)
	v := op(c.loadWidth(ea, m, false))
	c.setNZ16(v)
	c.storeWidth(ea, m, false, v)
}

func (c *CPU) rmw(m mode, op8 func(uint8) uint8, op16 func(uint16) uint16) {
	if c.widthM() {
		c.rmw8(m, op8)
	} else {
		c.rmw16(m, op16)
	}
}

func (c *CPU) aslA() {
	if c.widthM() {
		c.A = uint16(c.asl8(uint8(c.A)))
	} else {
		c.A = c.asl16(c.A)
	}
}

func (c *CPU) lsrA() {
	if c.widthM() {
		c.A = uint16(c.lsr8(uint8(c.A)))
	} else {
		c.A = c.lsr16(c.A)
	}
}

func (c *CPU) rolA() {
	if c.widthM() {
		c.A = uint16(c.rol8(uint8(c.A)))
	} else {
		c.A = c.rol16(c.A)
	}
}

func (c *CPU) rorA() {
	if c.widthM() {
		c.A = uint16(c.ror8(uint8(c.A)))
	} else {
		c.A = c.ror16(c.A)
	}
}

func (c *CPU) asl(m mode) { c.rmw(m, c.asl8, c.asl16) }
func (c *CPU) lsr(m mode) { c.rmw(m, c.lsr8, c.lsr16) }
func (c *CPU) rol(m mode) { c.rmw(m, c.rol8, c.rol16) }
func (c *CPU) ror(m mode) { c.rmw(m, c.ror8, c.ror16) }

func inc8(v uint8) uint8   { return v + 1 }
func inc16(v uint16) uint16 { return v + 1 }
func dec8(v uint8) uint8   { return v - 1 }
func dec16(v uint16) uint16 { return v - 1 }

func (c *CPU) inc(m mode) { c.rmw(m, inc8, inc16) }
func (c *CPU) dec(m mode) { c.rmw(m, dec8, dec16) }

func (c *CPU) ina() {
	if c.widthM() {
		v := inc8(uint8(c.A))
		c.A = uint16(v)
		c.setNZ8(v)
	} else {
		v := inc16(c.A)
		c.A = v
		c.setNZ16(v)
	}
}

func (c *CPU) dea() {
	if c.widthM() {
		v := dec8(uint8(c.A))
		c.A = uint16(v)
		c.setNZ8(v)
	} else {
		v := dec16(c.A)
		c.A = v
		c.setNZ16(v)
	}
}

func (c *CPU) inx() {
	if c.widthX() {
		v := inc8(uint8(c.X))
		c.X = uint16(v)
		c.setNZ8(v)
	} else {
		v := inc16(c.X)
		c.X = v
		c.setNZ16(v)
	}
}

func (c *CPU) dex() {
	if c.widthX() {
		v := dec8(uint8(c.X))
		c.X = uint16(v)
		c.setNZ8(v)
	} else {
		v := dec16(c.X)
		c.X = v
		c.setNZ16(v)
	}
}

func (c *CPU) iny() {
	if c.widthX() {
		v := inc8(uint8(c.Y))
		c.Y = uint16(v)
		c.setNZ8(v)
	} else {
		v := inc16(c.Y)
		c.Y = v
		c.setNZ16(v)
	}
}

func (c *CPU) dey() {
	if c.widthX() {
		v := dec8(uint8(c.Y))
		c.Y = uint16(v)
		c.setNZ8(v)
	} else {
		v := dec16(c.Y)
		c.Y = v
		c.setNZ16(v)
	}
}
