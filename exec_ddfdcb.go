package z80

// execIndexedCB executes the 4-byte DDCB/FDCB form: prefix, CB, displacement,
// final opcode. addr is the already-computed (idx+d) address (WZ has also
// already been set to it by the caller). Grounded on
// original_source/src/cpu/instructions_ddcb.rs's pattern: the instruction
// always operates on the memory operand, and for every non-BIT form (rotate/
// shift/RES/SET) the result is also copied into the z-named register when
// z != 6 — the well-known undocumented "copy to register" side effect of
// this opcode form.
func (c *CPU) execIndexedCB(idx *uint16, addr uint16, op byte) {
	x, y, z, _, _ := decompose(op)

	v := c.readByte(addr)
	c.contendReadNoMreq(addr)

	switch x {
	case 0:
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
		c.writeByte(addr, r)
		if z != reg8HL {
			c.writeReg8(z, r)
		}
	case 1:
		c.execBit(y, v, true)
	case 2:
		r := v &^ (1 << y)
		c.writeByte(addr, r)
		if z != reg8HL {
			c.writeReg8(z, r)
		}
	case 3:
		r := v | (1 << y)
		c.writeByte(addr, r)
		if z != reg8HL {
			c.writeReg8(z, r)
		}
	}
}
