package z80

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMachineRunsAProgram(t *testing.T) {
	rom0 := make([]byte, BankSize)
	rom0[0] = 0x3E // LD A,n
	rom0[1] = 0x07
	rom0[2] = 0x76 // HALT

	tables := make([]byte, FrameTStates)
	m, err := NewMachine(rom0, nil, tables, tables)
	require.NoError(t, err)

	m.Step()
	assert.Equal(t, byte(0x07), m.CPU.A)

	m.Step()
	assert.True(t, m.CPU.Halted)
}

func TestMachineResetClearsRAM(t *testing.T) {
	m, err := NewMachine(nil, nil, nil, nil)
	require.NoError(t, err)

	m.Memory.WriteByte(0x4000, 0xAB)
	m.CPU.A = 0x99

	m.Reset()
	assert.Equal(t, byte(0), m.Memory.ReadByte(0x4000))
	assert.Equal(t, byte(0xFF), m.CPU.A)
}

func TestMachineOversizeRomRejected(t *testing.T) {
	_, err := NewMachine(make([]byte, BankSize+1), nil, nil, nil)
	assert.Error(t, err)
}
