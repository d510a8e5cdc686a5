package z80

// testBus is a flat, uncontended 64KiB memory double used by the CPU unit
// tests, in the same spirit as the teacher's cpu_test.go testBus fixture
// (a plain array standing in for the full Memory/Interconnect wiring).
type testBus struct {
	mem   [0x10000]byte
	ports [0x10000]byte
}

func newTestBus() *testBus { return &testBus{} }

func (b *testBus) ReadMem(addr uint16) byte      { return b.mem[addr] }
func (b *testBus) WriteMem(addr uint16, v byte)  { b.mem[addr] = v }
func (b *testBus) ReadPort(port uint16) byte     { return b.ports[port] }
func (b *testBus) WritePort(port uint16, v byte) { b.ports[port] = v }
func (b *testBus) IsContended(addr uint16) bool  { return false }

func (b *testBus) ContendRead(addr uint16, tcycle uint64, base uint32) uint32 { return base }
func (b *testBus) ContendReadNoMreq(addr uint16, tcycle uint64) uint32        { return 1 }
func (b *testBus) ContendWriteNoMreq(addr uint16, tcycle uint64) uint32       { return 1 }
func (b *testBus) ContendPortEarly(port uint16, tcycle uint64) uint32         { return 1 }
func (b *testBus) ContendPortLate(port uint16, tcycle uint64) uint32          { return 2 }

func (b *testBus) load(addr uint16, code ...byte) {
	for i, v := range code {
		b.mem[int(addr)+i] = v
	}
}
