package z80

// Bit-decomposition helpers for an opcode byte, following the well-known
// x/y/z/p/q breakdown (x=op>>6, y=(op>>3)&7, z=op&7, p=y>>1, q=y&1). Every
// exec_*.go dispatcher switches on these fields instead of using one
// struct/function per opcode, per spec's explicit endorsement of "a single
// large switch per page" dispatch.
func decompose(op byte) (x, y, z, p, q byte) {
	x = op >> 6
	y = (op >> 3) & 7
	z = op & 7
	p = y >> 1
	q = y & 1
	return
}

// reg8HL is the (HL) slot in the z/y-field encoding of an 8-bit operand
// register in the base and CB-prefixed pages: 0=B 1=C 2=D 3=E 4=H 5=L
// 6=(HL) 7=A.
const reg8HL = 6

func (c *CPU) readReg8(idx byte) byte {
	switch idx {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.readByte(c.HL())
	default:
		return c.A
	}
}

func (c *CPU) writeReg8(idx byte, v byte) {
	switch idx {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		c.writeByte(c.HL(), v)
	default:
		c.A = v
	}
}

// reg16SP encodes BC/DE/HL/SP (the p-field table used by the base page for
// 16-bit load/inc/dec/add groups).
func (c *CPU) readReg16SP(p byte) uint16 {
	switch p {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.SP
	}
}

func (c *CPU) writeReg16SP(p byte, v uint16) {
	switch p {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHL(v)
	default:
		c.SP = v
	}
}

// reg16AF encodes BC/DE/HL/AF (the p-field table used by PUSH/POP).
func (c *CPU) readReg16AF(p byte) uint16 {
	switch p {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.AF()
	}
}

func (c *CPU) writeReg16AF(p byte, v uint16) {
	switch p {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHL(v)
	default:
		c.SetAF(v)
	}
}

// testCond evaluates one of the 8 standard Z80 condition codes encoded in
// the y field (0=NZ 1=Z 2=NC 3=C 4=PO 5=PE 6=P 7=M).
func (c *CPU) testCond(y byte) bool {
	switch y {
	case 0:
		return c.F&FlagZ == 0
	case 1:
		return c.F&FlagZ != 0
	case 2:
		return c.F&FlagC == 0
	case 3:
		return c.F&FlagC != 0
	case 4:
		return c.F&FlagP == 0
	case 5:
		return c.F&FlagP != 0
	case 6:
		return c.F&FlagS == 0
	default:
		return c.F&FlagS != 0
	}
}
