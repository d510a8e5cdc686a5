package z80

// CPU is a cycle-accurate Z80 interpreter core for a 128K ZX Spectrum.
// It owns the register file and the running T-state counter; all memory,
// port, and contention concerns are delegated to a Bus.
//
// Grounded on the teacher's cpu.go (New/Reset/exported Registers()
// snapshot shape) generalized from the M68K's flat opcode table to the
// Z80's prefix-chained dispatch, and on original_source/src/cpu.rs for
// exact instruction-fetch and interrupt semantics.
type CPU struct {
	Registers
	bus Bus

	tcycles uint64
}

// New builds a CPU wired to bus. The register file starts in its power-on
// state; call Reset again later to re-enter that state (e.g. after a soft
// reset from a host UI).
func New(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.Reset()
	return c
}

// Reset restores the register file to its power-on state. Unlike the
// teacher's M68K Reset (which reads the initial SP/PC from the reset
// vector at address 0/4), the Z80 always starts at PC=0 with no vector
// fetch, so this only needs to reset the register file.
func (c *CPU) Reset() {
	c.Registers.Reset()
}

// TCycles returns the running T-state counter since the last frame
// boundary wrap inside HandleInterrupts.
func (c *CPU) TCycles() uint64 { return c.tcycles }

func (c *CPU) fetchOp() byte {
	addr := c.PC
	delay := c.bus.ContendRead(addr, c.tcycles, 4)
	c.tcycles += uint64(delay)
	v := c.bus.ReadMem(addr)
	c.PC++
	c.IncR(1)
	return v
}

// readByte reads a byte as an operand (not an opcode fetch): 3 T-states
// baseline plus contention.
func (c *CPU) readByte(addr uint16) byte {
	delay := c.bus.ContendRead(addr, c.tcycles, 3)
	c.tcycles += uint64(delay)
	return c.bus.ReadMem(addr)
}

// writeByte writes an operand byte. The original source charges write
// accesses identically to reads (3 T-states baseline plus contention); see
// original_source/src/cpu.rs's write_word, which calls contend_read before
// the actual memory write.
func (c *CPU) writeByte(addr uint16, val byte) {
	delay := c.bus.ContendRead(addr, c.tcycles, 3)
	c.tcycles += uint64(delay)
	c.bus.WriteMem(addr, val)
}

func (c *CPU) contendReadNoMreq(addr uint16) {
	c.tcycles += uint64(c.bus.ContendReadNoMreq(addr, c.tcycles))
}

func (c *CPU) contendWriteNoMreq(addr uint16) {
	c.tcycles += uint64(c.bus.ContendWriteNoMreq(addr, c.tcycles))
}

func (c *CPU) inPort(port uint16) byte {
	c.tcycles += uint64(c.bus.ContendPortEarly(port, c.tcycles))
	c.tcycles += uint64(c.bus.ContendPortLate(port, c.tcycles))
	return c.bus.ReadPort(port)
}

func (c *CPU) outPort(port uint16, val byte) {
	c.tcycles += uint64(c.bus.ContendPortEarly(port, c.tcycles))
	c.bus.WritePort(port, val)
	c.tcycles += uint64(c.bus.ContendPortLate(port, c.tcycles))
}

func (c *CPU) fetchByte() byte {
	v := c.readByte(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetchWord() uint16 {
	lo := c.fetchByte()
	hi := c.fetchByte()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) pushWord(v uint16) {
	c.SP--
	c.writeByte(c.SP, byte(v>>8))
	c.SP--
	c.writeByte(c.SP, byte(v))
}

func (c *CPU) popWord() uint16 {
	lo := c.readByte(c.SP)
	c.SP++
	hi := c.readByte(c.SP)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// HandleInterrupts checks the frame-boundary maskable interrupt condition
// and services it if IFF1 is set. It must be called once per instruction,
// before RunInstruction, matching the canonical loop in
// original_source/src/machine.rs::Machine::run (handle_interrupts then
// run_instruction). Returns true if an interrupt was serviced.
func (c *CPU) HandleInterrupts() bool {
	if c.tcycles < FrameTStates {
		return false
	}
	c.tcycles -= FrameTStates

	if !c.IFF1 {
		return false
	}

	c.Halted = false
	c.IFF1 = false
	c.IFF2 = false
	c.IncR(1)
	c.tcycles += 7

	c.pushWord(c.PC)

	switch c.IM {
	case 0, 1:
		c.PC = 0x0038
	case 2:
		addr := uint16(c.I)<<8 | 0x00FF
		lo := c.readByte(addr)
		hi := c.readByte(addr + 1)
		c.PC = uint16(hi)<<8 | uint16(lo)
	}
	return true
}

// RunInstruction fetches and executes exactly one instruction (including
// resolving any DD/CB/ED/FD/DDCB/FDCB prefix chain) and returns the number
// of T-states it consumed.
func (c *CPU) RunInstruction() uint32 {
	before := c.tcycles

	if c.Halted {
		c.fetchNop()
		return uint32(c.tcycles - before)
	}

	c.runOpcode(c.fetchOp())
	return uint32(c.tcycles - before)
}

// fetchNop charges a plain NOP fetch without advancing PC, modeling the Z80
// re-executing a NOP every cycle while halted. PC already points at the
// byte after the HALT opcode, and that is the address fetched.
func (c *CPU) fetchNop() {
	delay := c.bus.ContendRead(c.PC, c.tcycles, 4)
	c.tcycles += uint64(delay)
	c.IncR(1)
}

// runOpcode dispatches a fetched base-page opcode byte, chasing DD/FD/CB/ED
// prefixes as needed. Grounded on original_source/src/cpu.rs's
// run_instruction: a DD or FD prefix immediately followed by another DD or
// FD is consumed with no effect of its own (only the fetch cost applies)
// and redecoded in the new prefix mode; a DD/FD followed by CB enters the
// 4-byte DDCB/FDCB form.
func (c *CPU) runOpcode(op byte) {
	switch op {
	case 0xCB:
		c.execCB(c.fetchOp())
	case 0xED:
		c.execED(c.fetchOp())
	case 0xDD:
		c.runIndexed(&c.IX)
	case 0xFD:
		c.runIndexed(&c.IY)
	default:
		c.execBase(op)
	}
}

func (c *CPU) runIndexed(idx *uint16) {
	op := c.fetchOp()
	switch op {
	case 0xDD:
		c.runIndexed(&c.IX)
	case 0xFD:
		c.runIndexed(&c.IY)
	case 0xCB:
		d := int8(c.fetchByte())
		addr := uint16(int32(*idx) + int32(d))
		c.WZ = addr
		final := c.readByte(c.PC)
		c.contendReadNoMreq(c.PC)
		c.contendReadNoMreq(c.PC)
		c.PC++
		c.execIndexedCB(idx, addr, final)
	default:
		if !c.execIndexed(idx, op) {
			// Opcode has no indexed-register variant: it behaves exactly
			// like its un-prefixed base-page form (the prefix is wasted).
			c.execBase(op)
		}
	}
}
