package cpu

// lda/ldx/ldy load the named register from mode m, width-sensitive on M
// (A) or X (X/Y), per spec.md sec 4.2 "Loads/Stores".
func (c *CPU) ldaImm() {
	if c.widthM() {
		v := uint8(c.fetch8())
		c.A = uint16(v)
		c.setNZ8(v)
	} else {
		v := c.fetch16()
		c.A = v
		c.setNZ16(v)
	}
}

func (c *CPU) lda(m mode) {
	ea := c.operandAddr(m)
	if c.widthM() {
		v := uint8(c.loadWidth(ea, m, true))
		c.A = uint16(v)
		c.setNZ8(v)
	} else {
		v := c.loadWidth(ea, m, false)
		c.A = v
		c.setNZ16(v)
	}
}

func (c *CPU) ldxImm() {
	if c.widthX() {
		v := uint8(c.fetch8())
		c.X = uint16(v)
		c.setNZ8(v)
	} else {
		v := c.fetch16()
		c.X = v
		c.setNZ16(v)
	}
}

func (c *CPU) ldx(m mode) {
	ea := c.operandAddr(m)
	if c.widthX() {
		v := uint8(c.loadWidth(ea, m, true))
		c.X = uint16(v)
		c.setNZ8(v)
	} else {
		v := c.loadWidth(ea, m, false)
		c.X = v
		c.setNZ16(v)
	}
}

func (c *CPU) ldyImm() {
	if c.widthX() {
		v := uint8(c.fetch8())
		c.Y = uint16(v)
		c.setNZ8(v)
	} else {
		v := c.fetch16()
		c.Y = v
		c.setNZ16(v)
	}
}

func (c *CPU) ldy(m mode) {
	ea := c.operandAddr(m)
	if c.widthX() {
		v := uint8(c.loadWidth(ea, m, true))
		c.Y = uint16(v)
		c.setNZ8(v)
	} else {
		v := c.loadWidth(ea, m, false)
		c.Y = v
		c.setNZ16(v)
	}
}

func (c *CPU) sta(m mode) {
	ea := c.operandAddr(m)
	c.storeWidth(ea, m, c.widthM(), c.A)
}

func (c *CPU) stx(m mode) {
	ea := c.operandAddr(m)
	c.storeWidth(ea, m, c.widthX(), c.X)
}

func (c *CPU) sty(m mode) {
	ea := c.operandAddr(m)
	c.storeWidth(ea, m, c.widthX(), c.Y)
}

func (c *CPU) stz(m mode) {
	ea := c.operandAddr(m)
	c.storeWidth(ea, m, c.widthM(), 0)
}
