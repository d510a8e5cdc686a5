package z80

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRomSelection(t *testing.T) {
	rom0 := make([]byte, BankSize)
	rom1 := make([]byte, BankSize)
	rom0[0] = 0x11
	rom1[0] = 0x22

	m, err := NewMemory(rom0, rom1)
	require.NoError(t, err)

	assert.Equal(t, byte(0x11), m.ReadByte(0x0000))
	m.WritePort(0x10) // bit 4 set -> ROM1
	assert.Equal(t, byte(0x22), m.ReadByte(0x0000))
}

func TestMemoryFixedBanks(t *testing.T) {
	m, err := NewMemory(nil, nil)
	require.NoError(t, err)

	m.WriteByte(0x4000, 0xAA)
	m.WriteByte(0x8000, 0xBB)
	assert.Equal(t, byte(0xAA), m.ReadByte(0x4000))
	assert.Equal(t, byte(0xBB), m.ReadByte(0x8000))
}

func TestMemoryC000BankSwitching(t *testing.T) {
	m, err := NewMemory(nil, nil)
	require.NoError(t, err)

	m.WritePort(0x03) // select bank 3 at 0xC000
	m.WriteByte(0xC000, 0x99)
	assert.Equal(t, 3, m.C000Bank())

	m.WritePort(0x05) // select bank 5 at 0xC000; previous write stays in bank 3
	assert.NotEqual(t, byte(0x99), m.ReadByte(0xC000))

	m.WritePort(0x03)
	assert.Equal(t, byte(0x99), m.ReadByte(0xC000))
}

func TestMemoryRomWritesAreDropped(t *testing.T) {
	m, err := NewMemory(nil, nil)
	require.NoError(t, err)

	m.WriteByte(0x0000, 0x55)
	assert.Equal(t, byte(0), m.ReadByte(0x0000), "ROM writes must be silently dropped by default")

	m.WritableROM = true
	m.WriteByte(0x0000, 0x55)
	assert.Equal(t, byte(0x55), m.ReadByte(0x0000))
}

func TestMemoryOversizeRomRejected(t *testing.T) {
	_, err := NewMemory(make([]byte, BankSize+1), nil)
	assert.Error(t, err)
}

func TestMemoryClear(t *testing.T) {
	m, err := NewMemory(nil, nil)
	require.NoError(t, err)

	m.WriteByte(0x4000, 0xFF)
	m.Clear()
	assert.Equal(t, byte(0), m.ReadByte(0x4000))
}

func TestContendedAddressRanges(t *testing.T) {
	assert.True(t, IsAddrContended(0x4000, 0))
	assert.True(t, IsAddrContended(0x7FFF, 0))
	assert.False(t, IsAddrContended(0x8000, 0))
	assert.False(t, IsAddrContended(0xBFFF, 0))

	assert.True(t, IsAddrContended(0xC000, 1), "odd C000 bank is contended")
	assert.False(t, IsAddrContended(0xC000, 0), "even C000 bank is not contended")
	assert.False(t, IsAddrContended(0x0000, 0), "ROM is never contended")
}
