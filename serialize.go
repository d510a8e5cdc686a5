package z80

import (
	"encoding/binary"
	"errors"
)

// cpuSerializeVersion/cpuSerializeSize follow the teacher's serialize.go
// convention exactly: a leading version byte followed by a fixed-size
// encoding/binary.BigEndian layout of every register-file field plus the
// running T-state counter.
const cpuSerializeVersion = 1

// cpuSerializeSize is the exact byte length Serialize writes and
// Deserialize expects: 1 (version) + 20 (8-bit regs incl. I/R/IM/Halted) +
// 10 (IX,IY,SP,PC,WZ = 5 uint16) + 2 (IFF1,IFF2) + 8 (tcycles).
const cpuSerializeSize = 1 + 20 + 10 + 2 + 8

// SerializeSize returns the exact number of bytes Serialize writes.
func (c *CPU) SerializeSize() int { return cpuSerializeSize }

// Serialize encodes the complete CPU state (register file plus running
// T-state counter) into buf, which must be at least SerializeSize() bytes.
func (c *CPU) Serialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("z80: serialize buffer too small")
	}

	i := 0
	buf[i] = cpuSerializeVersion
	i++

	for _, v := range []byte{
		c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L,
		c.A_, c.F_, c.B_, c.C_, c.D_, c.E_, c.H_, c.L_,
		c.I, c.R, c.IM, boolByte(c.Halted),
	} {
		buf[i] = v
		i++
	}

	for _, v := range []uint16{c.IX, c.IY, c.SP, c.PC, c.WZ} {
		binary.BigEndian.PutUint16(buf[i:], v)
		i += 2
	}

	buf[i] = boolByte(c.IFF1)
	i++
	buf[i] = boolByte(c.IFF2)
	i++

	binary.BigEndian.PutUint64(buf[i:], c.tcycles)
	i += 8

	return nil
}

// Deserialize restores CPU state previously written by Serialize.
func (c *CPU) Deserialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("z80: deserialize buffer too small")
	}
	if buf[0] != cpuSerializeVersion {
		return errors.New("z80: unsupported serialize version")
	}

	i := 1
	fields := []*byte{
		&c.A, &c.F, &c.B, &c.C, &c.D, &c.E, &c.H, &c.L,
		&c.A_, &c.F_, &c.B_, &c.C_, &c.D_, &c.E_, &c.H_, &c.L_,
		&c.I, &c.R, &c.IM,
	}
	for _, f := range fields {
		*f = buf[i]
		i++
	}
	halted := buf[i] != 0
	i++
	c.Halted = halted

	for _, f := range []*uint16{&c.IX, &c.IY, &c.SP, &c.PC, &c.WZ} {
		*f = binary.BigEndian.Uint16(buf[i:])
		i += 2
	}

	c.IFF1 = buf[i] != 0
	i++
	c.IFF2 = buf[i] != 0
	i++

	c.tcycles = binary.BigEndian.Uint64(buf[i:])
	i += 8

	return nil
}

// SerializeSize returns the byte length of Memory.Serialize's output, which
// encodes the full banked RAM and ROM contents plus the current paging
// selection. Grounded on the same teacher convention as CPU.Serialize;
// original_source/src/snapshot.rs confirms the original program restored
// memory state the same way when loading a .z80 snapshot.
func (m *Memory) SerializeSize() int {
	return 1 + 2*BankSize + NumRAMBanks*BankSize + 2
}

func (m *Memory) Serialize(buf []byte) error {
	if len(buf) < m.SerializeSize() {
		return errors.New("z80: serialize buffer too small")
	}
	i := 0
	buf[i] = cpuSerializeVersion
	i++
	i += copy(buf[i:], m.rom0[:])
	i += copy(buf[i:], m.rom1[:])
	for _, b := range m.bank {
		i += copy(buf[i:], b[:])
	}
	buf[i] = m.romSel
	i++
	buf[i] = m.c000Bank
	i++
	return nil
}

func (m *Memory) Deserialize(buf []byte) error {
	if len(buf) < m.SerializeSize() {
		return errors.New("z80: deserialize buffer too small")
	}
	if buf[0] != cpuSerializeVersion {
		return errors.New("z80: unsupported serialize version")
	}
	i := 1
	i += copy(m.rom0[:], buf[i:i+BankSize])
	i += copy(m.rom1[:], buf[i:i+BankSize])
	for b := range m.bank {
		i += copy(m.bank[b][:], buf[i:i+BankSize])
	}
	m.romSel = buf[i]
	i++
	m.c000Bank = buf[i]
	i++
	return nil
}
