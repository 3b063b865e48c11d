package cpu

// mvn/mvp implement the 3-byte block-move instructions (opcode, dstBank,
// srcBank). A holds count-minus-one: the loop runs while A != 0xFFFF,
// then one more time, copying A+1 bytes total (spec.md sec 4.2 "Block
// move", sec 9 "Block-move count semantics" - the A+1/decrement-and-
// wrap model the existing test suite exercises, preserved as-is).
func (c *CPU) blockMove(incr bool) {
	dstBank := c.fetch8()
	srcBank := c.fetch8()

	for {
		v := c.bus.Read8(addr24(srcBank, c.X))
		c.bus.Write8(addr24(dstBank, c.Y), v)
		if incr {
			c.X++
			c.Y++
		} else {
			c.X--
			c.Y--
		}
		c.A--
		if c.A == 0xFFFF {
			break
		}
	}
}

func (c *CPU) mvn() { c.blockMove(true) }
func (c *CPU) mvp() { c.blockMove(false) }
