package z80

// execBase dispatches one un-prefixed opcode. The x/y/z/p/q decomposition
// and case layout follow the standard Z80 opcode table (as documented in
// original_source/src/instructions.rs's INSTR_TABLE, flattened here into a
// switch instead of a 256-entry struct table per spec's dispatch guidance).
func (c *CPU) execBase(op byte) {
	x, y, z, p, q := decompose(op)

	switch x {
	case 0:
		c.execBaseX0(op, y, z, p, q)
	case 1:
		if z == reg8HL && y == reg8HL {
			c.Halted = true
			return
		}
		c.writeReg8(y, c.readReg8(z))
	case 2:
		c.execAlu(y, c.readReg8(z))
	case 3:
		c.execBaseX3(op, y, z, p, q)
	}
}

func (c *CPU) execBaseX0(op byte, y, z, p, q byte) {
	switch z {
	case 0:
		switch {
		case y == 0:
			// NOP
		case y == 1:
			c.ExAF()
		case y == 2:
			c.contendReadNoMreq(c.IR())
			c.B--
			d := int8(c.fetchByte())
			if c.B != 0 {
				for i := 0; i < 5; i++ {
					c.contendReadNoMreq(c.PC - 1)
				}
				target := uint16(int32(c.PC) + int32(d))
				c.WZ = target
				c.PC = target
			}
		case y == 3:
			d := int8(c.fetchByte())
			for i := 0; i < 5; i++ {
				c.contendReadNoMreq(c.PC - 1)
			}
			target := uint16(int32(c.PC) + int32(d))
			c.WZ = target
			c.PC = target
		default:
			d := int8(c.fetchByte())
			if c.testCond(y - 4) {
				for i := 0; i < 5; i++ {
					c.contendReadNoMreq(c.PC - 1)
				}
				target := uint16(int32(c.PC) + int32(d))
				c.WZ = target
				c.PC = target
			}
		}
	case 1:
		if q == 0 {
			nn := c.fetchWord()
			c.writeReg16SP(p, nn)
		} else {
			hl := c.HL()
			ss := c.readReg16SP(p)
			ir := c.IR()
			for i := 0; i < 7; i++ {
				c.contendReadNoMreq(ir)
			}
			res, f := AddHL16(hl, ss, c.F)
			c.SetHL(res)
			c.F = f
			c.WZ = hl + 1
		}
	case 2:
		switch {
		case q == 0 && p == 0:
			c.writeByte(c.BC(), c.A)
			c.WZ = (uint16(c.A) << 8) | uint16(byte(c.BC()+1))
		case q == 0 && p == 1:
			c.writeByte(c.DE(), c.A)
			c.WZ = (uint16(c.A) << 8) | uint16(byte(c.DE()+1))
		case q == 0 && p == 2:
			nn := c.fetchWord()
			c.writeByte(nn, c.L)
			c.writeByte(nn+1, c.H)
			c.WZ = nn + 1
		case q == 0 && p == 3:
			nn := c.fetchWord()
			c.writeByte(nn, c.A)
			c.WZ = (uint16(c.A) << 8) | uint16(byte(nn+1))
		case q == 1 && p == 0:
			addr := c.BC()
			c.A = c.readByte(addr)
			c.WZ = addr + 1
		case q == 1 && p == 1:
			addr := c.DE()
			c.A = c.readByte(addr)
			c.WZ = addr + 1
		case q == 1 && p == 2:
			nn := c.fetchWord()
			lo := c.readByte(nn)
			hi := c.readByte(nn + 1)
			c.SetHL(uint16(hi)<<8 | uint16(lo))
			c.WZ = nn + 1
		default: // q==1 && p==3
			nn := c.fetchWord()
			c.A = c.readByte(nn)
			c.WZ = nn + 1
		}
	case 3:
		ir := c.IR()
		c.contendReadNoMreq(ir)
		c.contendReadNoMreq(ir)
		if q == 0 {
			c.writeReg16SP(p, c.readReg16SP(p)+1)
		} else {
			c.writeReg16SP(p, c.readReg16SP(p)-1)
		}
	case 4:
		if y == reg8HL {
			v := c.readReg8(y)
			c.contendReadNoMreq(c.HL())
			r, f := AluInc8(v, c.F)
			c.writeReg8(y, r)
			c.F = f
		} else {
			v := c.readReg8(y)
			r, f := AluInc8(v, c.F)
			c.writeReg8(y, r)
			c.F = f
		}
	case 5:
		if y == reg8HL {
			v := c.readReg8(y)
			c.contendReadNoMreq(c.HL())
			r, f := AluDec8(v, c.F)
			c.writeReg8(y, r)
			c.F = f
		} else {
			v := c.readReg8(y)
			r, f := AluDec8(v, c.F)
			c.writeReg8(y, r)
			c.F = f
		}
	case 6:
		n := c.fetchByte()
		c.writeReg8(y, n)
	case 7:
		switch y {
		case 0:
			c.A, c.F = Rlca(c.A, c.F)
		case 1:
			c.A, c.F = Rrca(c.A, c.F)
		case 2:
			c.A, c.F = Rla(c.A, c.F)
		case 3:
			c.A, c.F = Rra(c.A, c.F)
		case 4:
			c.A, c.F = AluDaa(c.A, c.F)
		case 5:
			c.A, c.F = AluCpl(c.A, c.F)
		case 6:
			c.F = AluScf(c.A, c.F)
		case 7:
			c.F = AluCcf(c.A, c.F)
		}
	}
}

func (c *CPU) execBaseX3(op byte, y, z, p, q byte) {
	switch z {
	case 0:
		c.contendReadNoMreq(c.IR())
		if c.testCond(y) {
			c.PC = c.popWord()
			c.WZ = c.PC
		}
	case 1:
		if q == 0 {
			c.writeReg16AF(p, c.popWord())
		} else {
			switch p {
			case 0:
				c.PC = c.popWord()
				c.WZ = c.PC
			case 1:
				c.ExX()
			case 2:
				c.PC = c.HL()
			default:
				ir := c.IR()
				c.contendReadNoMreq(ir)
				c.contendReadNoMreq(ir)
				c.SP = c.HL()
			}
		}
	case 2:
		nn := c.fetchWord()
		c.WZ = nn
		if c.testCond(y) {
			c.PC = nn
		}
	case 3:
		switch y {
		case 0:
			nn := c.fetchWord()
			c.WZ = nn
			c.PC = nn
		case 2:
			n := c.fetchByte()
			port := uint16(c.A)<<8 | uint16(n)
			c.outPort(port, c.A)
			c.WZ = (uint16(c.A) << 8) | uint16(byte(n+1))
		case 3:
			n := c.fetchByte()
			port := uint16(c.A)<<8 | uint16(n)
			c.A = c.inPort(port)
			c.WZ = port + 1
		case 4:
			lo := c.readByte(c.SP)
			hi := c.readByte(c.SP + 1)
			c.contendReadNoMreq(c.SP + 1)
			h, l := c.H, c.L
			c.writeByte(c.SP+1, h)
			c.writeByte(c.SP, l)
			c.contendWriteNoMreq(c.SP)
			c.contendWriteNoMreq(c.SP)
			c.SetHL(uint16(hi)<<8 | uint16(lo))
			c.WZ = c.HL()
		case 5:
			de, hl := c.DE(), c.HL()
			c.SetDE(hl)
			c.SetHL(de)
		case 6:
			c.IFF1 = false
			c.IFF2 = false
		default:
			c.IFF1 = true
			c.IFF2 = true
		}
	case 4:
		nn := c.fetchWord()
		c.WZ = nn
		if c.testCond(y) {
			c.contendReadNoMreq(c.SP - 1)
			c.pushWord(c.PC)
			c.PC = nn
		}
	case 5:
		if q == 0 {
			ir := c.IR()
			c.contendReadNoMreq(ir)
			c.pushWord(c.readReg16AF(p))
		} else {
			switch p {
			case 0:
				nn := c.fetchWord()
				c.WZ = nn
				c.contendReadNoMreq(c.SP - 1)
				c.pushWord(c.PC)
				c.PC = nn
			case 1:
				// handled by runOpcode before reaching here
			case 2:
				// handled by runOpcode before reaching here
			default:
				// handled by runOpcode before reaching here
			}
		}
	case 6:
		n := c.fetchByte()
		c.execAlu(y, n)
	case 7:
		c.contendReadNoMreq(c.IR())
		c.pushWord(c.PC)
		c.PC = uint16(y) * 8
		c.WZ = c.PC
	}
}

// execAlu applies one of the 8 ALU operations (ADD,ADC,SUB,SBC,AND,XOR,OR,CP)
// to A and operand, per the y-field encoding shared by both "alu r" and
// "alu n" opcode groups.
func (c *CPU) execAlu(y byte, operand byte) {
	switch y {
	case 0:
		c.A, c.F = AluAdd8(c.A, operand)
	case 1:
		c.A, c.F = AluAdc8(c.A, operand, c.F&FlagC != 0)
	case 2:
		c.A, c.F = AluSub8(c.A, operand)
	case 3:
		c.A, c.F = AluSbc8(c.A, operand, c.F&FlagC != 0)
	case 4:
		c.A, c.F = AluAnd8(c.A, operand)
	case 5:
		c.A, c.F = AluXor8(c.A, operand)
	case 6:
		c.A, c.F = AluOr8(c.A, operand)
	case 7:
		c.F = AluCp8(c.A, operand)
	}
}
