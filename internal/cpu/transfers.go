package cpu

// Transfers: widths follow the destination register's width rule except
// TCD/TDC/TSC which are always 16-bit, and TCS/TXS which move the full
// 16-bit stack pointer (spec.md sec 4.2 "Transfers").

func (c *CPU) tax() {
	if c.widthX() {
		v := uint8(c.A)
		c.X = uint16(v)
		c.setNZ8(v)
	} else {
		c.X = c.A
		c.setNZ16(c.X)
	}
}

func (c *CPU) tay() {
	if c.widthX() {
		v := uint8(c.A)
		c.Y = uint16(v)
		c.setNZ8(v)
	} else {
		c.Y = c.A
		c.setNZ16(c.Y)
	}
}

func (c *CPU) txa() {
	if c.widthM() {
		// B (A's high byte) is preserved across an 8-bit-A transfer; only
		// XBA swaps it (spec.md sec 3.1).
		v := uint8(c.X)
		c.A = (c.A &^ 0x00FF) | uint16(v)
		c.setNZ8(v)
	} else {
		c.A = c.X
		c.setNZ16(c.A)
	}
}

func (c *CPU) tya() {
	if c.widthM() {
		v := uint8(c.Y)
		c.A = (c.A &^ 0x00FF) | uint16(v)
		c.setNZ8(v)
	} else {
		c.A = c.Y
		c.setNZ16(c.A)
	}
}

func (c *CPU) tsx() {
	if c.widthX() {
		v := uint8(c.S)
		c.X = uint16(v)
		c.setNZ8(v)
	} else {
		c.X = c.S
		c.setNZ16(c.X)
	}
}

// txs moves X into S verbatim; applyEInvariants re-clamps S.high to
// 0x01 in E-mode afterward (spec.md sec 4.2).
func (c *CPU) txs() {
	c.S = c.X
}

func (c *CPU) tcd() {
	c.D = c.A
	c.setNZ16(c.D)
}

func (c *CPU) tdc() {
	c.A = c.D
	c.setNZ16(c.A)
}

// tcs moves A into S verbatim; does not affect flags.
func (c *CPU) tcs() {
	c.S = c.A
}

func (c *CPU) tsc() {
	c.A = c.S
	c.setNZ16(c.A)
}

func (c *CPU) txy() {
	if c.widthX() {
		v := uint8(c.X)
		c.Y = uint16(v)
		c.setNZ8(v)
	} else {
		c.Y = c.X
		c.setNZ16(c.Y)
	}
}

func (c *CPU) tyx() {
	if c.widthX() {
		v := uint8(c.Y)
		c.X = uint16(v)
		c.setNZ8(v)
	} else {
		c.X = c.Y
		c.setNZ16(c.X)
	}
}
