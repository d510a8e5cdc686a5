package z80

// FrameTStates is the number of T-states in one 128K Spectrum video frame;
// the interrupt check and contention tables are both driven off it.
const FrameTStates = 70908

// ContentionTables holds the two precomputed per-T-state delay tables the
// ULA imposes on contended memory and I/O accesses: one for ordinary
// (MREQ-driven) accesses and one for internal ("no MREQ") cycles. Each is
// indexed by T-state within the current frame and has FrameTStates entries.
//
// Grounded on original_source/src/interconnect.rs, which loads the same two
// tables from ulacontention.bin/ulacontentionnomreq.bin via include_bytes!
// at build time. This core takes the equivalent bytes as a constructor
// argument instead (see NewMachine in SPEC_FULL.md §2) so the core itself
// never does file I/O.
type ContentionTables struct {
	MREQ   []byte
	NoMREQ []byte
}

// IsAddrContended reports whether addr falls in a ULA-contended page: the
// screen/attribute range 0x4000-0x7FFF is always contended, and the banked
// range 0xC000-0xFFFF is contended only when an odd RAM bank is paged in.
func IsAddrContended(addr uint16, c000Bank int) bool {
	if addr >= 0x4000 && addr < 0x8000 {
		return true
	}
	return addr >= 0xC000 && c000Bank%2 != 0
}

func (t *ContentionTables) delay(tbl []byte, tstate uint64) uint32 {
	if len(tbl) == 0 {
		return 0
	}
	idx := tstate % FrameTStates
	return uint32(tbl[idx])
}

// ContendRead returns the T-states consumed fetching or reading addr at the
// given tcycle: the base cost plus any ULA contention delay.
func (t *ContentionTables) ContendRead(contended bool, tcycle uint64, base uint32) uint32 {
	if !contended {
		return base
	}
	return t.delay(t.MREQ, tcycle) + base
}

// ContendReadNoMreq returns the delay for one internal ("no MREQ") T-state
// held at addr.
func (t *ContentionTables) ContendReadNoMreq(contended bool, tcycle uint64) uint32 {
	if !contended {
		return 1
	}
	return t.delay(t.NoMREQ, tcycle) + 1
}

// ContendWriteNoMreq is identical in shape to ContendReadNoMreq: the ULA
// does not distinguish internal read/write holds for contention purposes.
func (t *ContentionTables) ContendWriteNoMreq(contended bool, tcycle uint64) uint32 {
	return t.ContendReadNoMreq(contended, tcycle)
}

// ContendPortEarly returns the delay for the first contended T-state of an
// IN/OUT access.
func (t *ContentionTables) ContendPortEarly(contended bool, tcycle uint64) uint32 {
	if !contended {
		return 1
	}
	return t.delay(t.NoMREQ, tcycle) + 1
}

// ContendPortLate returns the staged delay for the remaining T-states of an
// IN/OUT access, which differ depending on whether the port address has bit
// 0 clear (ULA-decoded: one contention lookup plus 2 T-states) or set
// (bit0Set: three chained contended holds when the page itself is
// contended, or a flat 2 T-states otherwise).
func (t *ContentionTables) ContendPortLate(contended bool, bit0Set bool, tcycle uint64) uint32 {
	if !bit0Set {
		return t.delay(t.NoMREQ, tcycle) + 2
	}
	if !contended {
		return 2
	}
	d := tcycle
	total := uint32(0)
	for i := 0; i < 3; i++ {
		step := t.delay(t.NoMREQ, d)
		if i < 2 {
			step++
		}
		total += step
		d += uint64(step)
	}
	return total + 1
}
