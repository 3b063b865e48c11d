package cpu

// Stack operations (spec.md sec 4.2 "Stack"). PHA/PLA follow the
// accumulator's M width; PHX/PLX/PHY/PLY follow X width; PHP/PLP/PHK/
// PHB/PLB are always 8-bit; PHD/PLD are always 16-bit.

func (c *CPU) pha() {
	if c.widthM() {
		c.push8(uint8(c.A))
	} else {
		c.push16(c.A)
	}
}

func (c *CPU) pla() {
	if c.widthM() {
		v := c.pull8()
		c.A = uint16(v)
		c.setNZ8(v)
	} else {
		v := c.pull16()
		c.A = v
		c.setNZ16(v)
	}
}

func (c *CPU) phx() {
	if c.widthX() {
		c.push8(uint8(c.X))
	} else {
		c.push16(c.X)
	}
}

func (c *CPU) plx() {
	if c.widthX() {
		v := c.pull8()
		c.X = uint16(v)
		c.setNZ8(v)
	} else {
		v := c.pull16()
		c.X = v
		c.setNZ16(v)
	}
}

func (c *CPU) phy() {
	if c.widthX() {
		c.push8(uint8(c.Y))
	} else {
		c.push16(c.Y)
	}
}

func (c *CPU) ply() {
	if c.widthX() {
		v := c.pull8()
		c.Y = uint16(v)
		c.setNZ8(v)
	} else {
		v := c.pull16()
		c.Y = v
		c.setNZ16(v)
	}
}

func (c *CPU) php() { c.push8(c.P) }
func (c *CPU) plp() { c.P = c.pull8() }

func (c *CPU) phk() { c.push8(c.PBR) }

func (c *CPU) phb() { c.push8(c.DBR) }
func (c *CPU) plb() {
	c.DBR = c.pull8()
	c.setNZ8(c.DBR)
}

func (c *CPU) phd() { c.push16(c.D) }
func (c *CPU) pld() {
	c.D = c.pull16()
	c.setNZ16(c.D)
}

// pea pushes an immediate 16-bit value, high then low.
func (c *CPU) pea() {
	v := c.fetch16()
	c.push16(v)
}

// pei pushes the 16-bit value pointed to by a direct-page operand,
// using a linear D+dp read (spec.md sec 4.2 "PEI").
func (c *CPU) pei() {
	dp := c.fetch8()
	v := c.read16Long(c.dpBase() + uint32(dp))
	c.push16(v)
}

// per pushes PC + the signed 16-bit displacement, relative to the PC
// just past the operand (spec.md sec 4.2 "PER").
func (c *CPU) per() {
	disp := int16(c.fetch16())
	v := c.PC + uint16(disp)
	c.push16(v)
}
