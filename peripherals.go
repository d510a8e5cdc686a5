package z80

// Peripheral is the port-mapped device interface the Interconnect routes
// IN/OUT accesses to, matching original_source/src/peripherals/mod.rs's
// Peripheral trait.
type Peripheral interface {
	ReadPort(port uint16) byte
	WritePort(port uint16, val byte)
}

// AY is a stub AY-3-8912 sound chip: it latches the last value written and
// always reads back 0xFF. Full synthesis is out of scope (spec Non-goals);
// this keeps the port decode/latch contract a real AY would have so a host
// can later swap in a synthesizing implementation without touching the
// interconnect. Grounded on original_source/src/peripherals/ay.rs.
type AY struct {
	value byte
}

func NewAY() *AY { return &AY{} }

func (a *AY) ReadPort(uint16) byte        { return 0xFF }
func (a *AY) WritePort(_ uint16, v byte) { a.value = v }

// SpectrumKey identifies one key's half-row and bit position in the 8x5 keyboard
// matrix scanned through port 0xFE. Grounded on the KEYBOARD_PORTS table
// in original_source/src/peripherals/ula.rs.
type SpectrumKey struct {
	halfRow int
	bit     byte
}

var (
	KeyNone = SpectrumKey{-1, 0}

	KeyCaps = SpectrumKey{0, 0x01}
	KeyZ    = SpectrumKey{0, 0x02}
	KeyX    = SpectrumKey{0, 0x04}
	KeyC    = SpectrumKey{0, 0x08}
	KeyV    = SpectrumKey{0, 0x10}

	KeyA = SpectrumKey{1, 0x01}
	KeyS = SpectrumKey{1, 0x02}
	KeyD = SpectrumKey{1, 0x04}
	KeyF = SpectrumKey{1, 0x08}
	KeyG = SpectrumKey{1, 0x10}

	KeyQ = SpectrumKey{2, 0x01}
	KeyW = SpectrumKey{2, 0x02}
	KeyE = SpectrumKey{2, 0x04}
	KeyR = SpectrumKey{2, 0x08}
	KeyT = SpectrumKey{2, 0x10}

	Key1 = SpectrumKey{3, 0x01}
	Key2 = SpectrumKey{3, 0x02}
	Key3 = SpectrumKey{3, 0x04}
	Key4 = SpectrumKey{3, 0x08}
	Key5 = SpectrumKey{3, 0x10}

	Key0 = SpectrumKey{4, 0x01}
	Key9 = SpectrumKey{4, 0x02}
	Key8 = SpectrumKey{4, 0x04}
	Key7 = SpectrumKey{4, 0x08}
	Key6 = SpectrumKey{4, 0x10}

	KeyP      = SpectrumKey{5, 0x01}
	KeyO      = SpectrumKey{5, 0x02}
	KeyI      = SpectrumKey{5, 0x04}
	KeyU      = SpectrumKey{5, 0x08}
	KeyY      = SpectrumKey{5, 0x10}

	KeyEnter = SpectrumKey{6, 0x01}
	KeyL     = SpectrumKey{6, 0x02}
	KeyK     = SpectrumKey{6, 0x04}
	KeyJ     = SpectrumKey{6, 0x08}
	KeyH     = SpectrumKey{6, 0x10}

	KeySpace  = SpectrumKey{7, 0x01}
	KeySymbol = SpectrumKey{7, 0x02}
	KeyM      = SpectrumKey{7, 0x04}
	KeyN      = SpectrumKey{7, 0x08}
	KeyB      = SpectrumKey{7, 0x10}
)

// ULA models the port-0xFE-visible half of the display/sound chip: keyboard
// matrix reads and a latch of the speaker bit of the last port write. The
// border colour and MIC bit are not stored. The raster display itself is
// out of scope (spec Non-goals); VRAM scan-out is a host concern that reads
// Memory directly using the layout documented in spec.md §6.
type ULA struct {
	value         byte
	keyboardPorts [8]byte
}

func NewULA() *ULA {
	u := &ULA{}
	for i := range u.keyboardPorts {
		u.keyboardPorts[i] = 0xFF
	}
	return u
}

func (u *ULA) KeyDown(k SpectrumKey) {
	if k.halfRow < 0 {
		return
	}
	u.keyboardPorts[k.halfRow] &^= k.bit
}

func (u *ULA) KeyUp(k SpectrumKey) {
	if k.halfRow < 0 {
		return
	}
	u.keyboardPorts[k.halfRow] |= k.bit
}

// ReadPort ANDs together the half-rows selected by the clear bits of the
// port's high byte, matching the Z80 keyboard scan convention.
func (u *ULA) ReadPort(port uint16) byte {
	result := byte(0xFF)
	hi := byte(port >> 8)
	for row := 0; row < 8; row++ {
		if hi&(1<<row) == 0 {
			result &= u.keyboardPorts[row]
		}
	}
	return result
}

// WritePort keeps only bit 4 (speaker) of the last written byte: the latch
// becomes 0xFF when bit 4 is set and 0xBF when it is clear. The border
// colour (bits 0-2) and MIC bit (bit 3) are discarded, and no waveform is
// produced.
func (u *ULA) WritePort(_ uint16, v byte) {
	if v&0x10 != 0 {
		u.value = 0xFF
	} else {
		u.value = 0xBF
	}
}
