package z80

// execCB dispatches one CB-prefixed opcode: rotate/shift (x=0), BIT (x=1),
// RES (x=2), SET (x=3), each over r[z] (with z=6 addressing (HL)).
func (c *CPU) execCB(op byte) {
	x, y, _, _, _ := decompose(op)
	z := op & 7

	switch x {
	case 0:
		v := c.readReg8(z)
		var r byte
		switch y {
		case 0:
			r, c.F = Rlc8(v)
		case 1:
			r, c.F = Rrc8(v)
		case 2:
			r, c.F = Rl8(v, c.F)
		case 3:
			r, c.F = Rr8(v, c.F)
		case 4:
			r, c.F = Sla8(v)
		case 5:
			r, c.F = Sra8(v)
		case 6:
			r, c.F = Sll8(v)
		default:
			r, c.F = Srl8(v)
		}
		if z == reg8HL {
			c.contendReadNoMreq(c.HL())
		}
		c.writeReg8(z, r)
	case 1:
		v := c.readReg8(z)
		if z == reg8HL {
			c.WZ = c.HL()
		}
		c.execBit(y, v, z == reg8HL)
		if z == reg8HL {
			c.contendReadNoMreq(c.HL())
		}
	case 2:
		v := c.readReg8(z) &^ (1 << y)
		if z == reg8HL {
			c.contendReadNoMreq(c.HL())
		}
		c.writeReg8(z, v)
	case 3:
		v := c.readReg8(z) | (1 << y)
		if z == reg8HL {
			c.contendReadNoMreq(c.HL())
		}
		c.writeReg8(z, v)
	}
}

// execBit computes the flags for BIT b,<operand>. For register-form
// operands the undocumented X/Y flags come from the tested register
// itself; for (HL)/(IX+d)/(IY+d) forms they come from the high byte of WZ
// instead, per original_source/src/cpu/instructions.rs's update_xyflags_bit.
func (c *CPU) execBit(bit byte, v byte, fromMemory bool) {
	bitSet := v&(1<<bit) != 0
	f := (c.F & FlagC) | FlagH
	if !bitSet {
		f |= FlagP | FlagZ
	}
	if bit == 7 && bitSet {
		f |= FlagS
	}
	if fromMemory {
		f |= byte(c.WZ>>8) & (FlagX | FlagY)
	} else {
		f |= v & (FlagX | FlagY)
	}
	c.F = f
}
