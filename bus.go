package z80

// Bus is everything the CPU core needs from its surrounding system: memory
// and port access, each contention-aware. Grounded on the teacher's Bus/
// CycleBus split in cpu.go, generalized from M68K bus-cycle costing to the
// Z80/ULA contention model of original_source/src/interconnect.rs.
type Bus interface {
	ReadMem(addr uint16) byte
	WriteMem(addr uint16, val byte)
	ReadPort(port uint16) byte
	WritePort(port uint16, val byte)

	// IsContended reports whether addr falls in a ULA-contended page given
	// the bus's current memory paging state.
	IsContended(addr uint16) bool

	// Contend* mirror ContentionTables' methods, letting the CPU charge
	// T-states without knowing the table layout itself.
	ContendRead(addr uint16, tcycle uint64, base uint32) uint32
	ContendReadNoMreq(addr uint16, tcycle uint64) uint32
	ContendWriteNoMreq(addr uint16, tcycle uint64) uint32
	ContendPortEarly(port uint16, tcycle uint64) uint32
	ContendPortLate(port uint16, tcycle uint64) uint32
}

// Interconnect wires Memory and the port-mapped peripherals behind a single
// Bus, applying ULA contention. Grounded on original_source/src/
// interconnect.rs, which is the "clean" stateless-delay version of the
// contention model (as opposed to cpu.rs's duplicated inline copy) and is
// the version spec.md §4.2 describes as canonical.
type Interconnect struct {
	Memory *Memory
	AY     *AY
	ULA    *ULA

	tables *ContentionTables
}

// NewInterconnect wires memory and peripherals behind contention tables.
func NewInterconnect(mem *Memory, ay *AY, ula *ULA, tables *ContentionTables) *Interconnect {
	return &Interconnect{Memory: mem, AY: ay, ULA: ula, tables: tables}
}

func (ic *Interconnect) ReadMem(addr uint16) byte          { return ic.Memory.ReadByte(addr) }
func (ic *Interconnect) WriteMem(addr uint16, val byte)     { ic.Memory.WriteByte(addr, val) }

func (ic *Interconnect) IsContended(addr uint16) bool {
	return IsAddrContended(addr, ic.Memory.C000Bank())
}

func (ic *Interconnect) ContendRead(addr uint16, tcycle uint64, base uint32) uint32 {
	return ic.tables.ContendRead(ic.IsContended(addr), tcycle, base)
}

func (ic *Interconnect) ContendReadNoMreq(addr uint16, tcycle uint64) uint32 {
	return ic.tables.ContendReadNoMreq(ic.IsContended(addr), tcycle)
}

func (ic *Interconnect) ContendWriteNoMreq(addr uint16, tcycle uint64) uint32 {
	return ic.tables.ContendWriteNoMreq(ic.IsContended(addr), tcycle)
}

func (ic *Interconnect) ContendPortEarly(port uint16, tcycle uint64) uint32 {
	return ic.tables.ContendPortEarly(ic.IsContended(port), tcycle)
}

func (ic *Interconnect) ContendPortLate(port uint16, tcycle uint64) uint32 {
	bit0Set := port&0x01 != 0
	contended := ic.IsContended(port)
	return ic.tables.ContendPortLate(contended, bit0Set, tcycle)
}

// ReadPort routes an IN access to the owning peripheral by the classic
// Spectrum bit-0 + high-byte decode: any port with bit 0 clear hits the ULA,
// 0x7FFD reads as zero (matching original_source: the paging register is
// write-only), 0xFFFD reads the AY, and every other port reads 0xFF.
func (ic *Interconnect) ReadPort(port uint16) byte {
	switch {
	case port&0x01 == 0:
		return ic.ULA.ReadPort(port)
	case port == 0x7FFD:
		return 0
	case port&0xC002 == 0xC000:
		return ic.AY.ReadPort(port)
	default:
		return 0xFF
	}
}

// WritePort routes an OUT access like ReadPort does, except that both
// 0xFFFD and 0xBFFD reach the AY and 0x7FFD drives memory paging; writes to
// any other port with bit 0 set are ignored.
func (ic *Interconnect) WritePort(port uint16, val byte) {
	switch {
	case port&0x01 == 0:
		ic.ULA.WritePort(port, val)
	case port == 0x7FFD:
		ic.Memory.WritePort(val)
	case port&0xC002 == 0xC000 || port&0x8002 == 0x8000:
		ic.AY.WritePort(port, val)
	}
}

// Reset clears RAM, matching original_source/src/interconnect.rs's reset().
func (ic *Interconnect) Reset() {
	ic.Memory.Clear()
}
