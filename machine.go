package z80

// Machine wires a CPU to its Memory/AY/ULA peripherals behind one
// Interconnect, equivalent to original_source/src/machine.rs's
// Machine::new wiring minus the SDL window/event loop (out of scope).
type Machine struct {
	CPU          *CPU
	Memory       *Memory
	AY           *AY
	ULA          *ULA
	Interconnect *Interconnect
}

// NewMachine builds a complete 128K Spectrum core: rom0/rom1 are the two
// 16KiB ROM images, contentionMREQ/contentionNoMREQ are the two
// FrameTStates-entry contention tables. No file I/O happens here; loading
// ROM/table bytes from disk is left to the host, matching the boundary the
// teacher draws around its Bus constructor argument.
func NewMachine(rom0, rom1, contentionMREQ, contentionNoMREQ []byte) (*Machine, error) {
	mem, err := NewMemory(rom0, rom1)
	if err != nil {
		return nil, err
	}
	ay := NewAY()
	ula := NewULA()
	tables := &ContentionTables{MREQ: contentionMREQ, NoMREQ: contentionNoMREQ}
	ic := NewInterconnect(mem, ay, ula, tables)
	cpu := New(ic)

	return &Machine{
		CPU:          cpu,
		Memory:       mem,
		AY:           ay,
		ULA:          ula,
		Interconnect: ic,
	}, nil
}

// Step advances the machine by exactly one instruction, servicing a
// frame-boundary interrupt first if one is due. This is the same two-call
// sequence original_source/src/machine.rs::Machine::run drives every
// iteration of its event loop (handle_interrupts then run_instruction).
func (m *Machine) Step() uint32 {
	m.CPU.HandleInterrupts()
	return m.CPU.RunInstruction()
}

// Reset clears RAM and restores the CPU's power-on register state.
func (m *Machine) Reset() {
	m.Interconnect.Reset()
	m.CPU.Reset()
}
