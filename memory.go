package z80

import "errors"

// BankSize is the size in bytes of each of the four 16KiB address pages.
const BankSize = 0x4000

// NumRAMBanks is the number of switchable 16KiB RAM banks in a 128K machine.
const NumRAMBanks = 8

// Memory implements the 128K Spectrum's four-page banked address map:
//
//	0x0000-0x3FFF  ROM0 or ROM1, selected by port 0x7FFD bit 4
//	0x4000-0x7FFF  RAM bank 5 (fixed)
//	0x8000-0xBFFF  RAM bank 2 (fixed)
//	0xC000-0xFFFF  RAM bank N, selected by port 0x7FFD bits 0-2
//
// Grounded on original_source/src/peripherals/memory.rs.
type Memory struct {
	rom0, rom1 [BankSize]byte
	bank       [NumRAMBanks][BankSize]byte

	romSel   byte // 0 or 1, port 0x7FFD bit 4
	c000Bank byte // 0-7, port 0x7FFD bits 0-2

	WritableROM bool // test-fixture escape hatch; production carts are read-only
}

// NewMemory builds a Memory with bank 5 and bank 2 fixed as the spec
// requires, ROM0 selected, and bank 0 paged into 0xC000.
func NewMemory(rom0, rom1 []byte) (*Memory, error) {
	m := &Memory{}
	if len(rom0) > BankSize || len(rom1) > BankSize {
		return nil, errors.New("z80: rom image larger than 16KiB page")
	}
	copy(m.rom0[:], rom0)
	copy(m.rom1[:], rom1)
	return m, nil
}

func (m *Memory) C000Bank() int { return int(m.c000Bank) }

// ReadByte reads a single byte through the paged map.
func (m *Memory) ReadByte(addr uint16) byte {
	switch {
	case addr < 0x4000:
		if m.romSel == 0 {
			return m.rom0[addr]
		}
		return m.rom1[addr]
	case addr < 0x8000:
		return m.bank[5][addr-0x4000]
	case addr < 0xC000:
		return m.bank[2][addr-0x8000]
	default:
		return m.bank[m.c000Bank][addr-0xC000]
	}
}

// WriteByte writes a single byte through the paged map. Writes to ROM are
// silently dropped unless WritableROM is set (used by tests that need to
// seed ROM content directly).
func (m *Memory) WriteByte(addr uint16, val byte) {
	switch {
	case addr < 0x4000:
		if !m.WritableROM {
			return
		}
		if m.romSel == 0 {
			m.rom0[addr] = val
		} else {
			m.rom1[addr] = val
		}
	case addr < 0x8000:
		m.bank[5][addr-0x4000] = val
	case addr < 0xC000:
		m.bank[2][addr-0x8000] = val
	default:
		m.bank[m.c000Bank][addr-0xC000] = val
	}
}

// WritePort handles port 0x7FFD: bits 0-2 select the 0xC000 RAM bank, bit 4
// selects the ROM page. The other bits (screen selection, paging lock) are
// not modeled; this core does not implement +2A/+3 paging lock semantics.
func (m *Memory) WritePort(val byte) {
	m.c000Bank = val & 0x07
	m.romSel = (val >> 4) & 0x01
}

// Clear zeroes every RAM bank. ROM is zeroed too only when WritableROM is
// set, mirroring original_source/src/peripherals/memory.rs's clear().
func (m *Memory) Clear() {
	for i := range m.bank {
		m.bank[i] = [BankSize]byte{}
	}
	if m.WritableROM {
		m.rom0 = [BankSize]byte{}
		m.rom1 = [BankSize]byte{}
	}
}
