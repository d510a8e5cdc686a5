package z80

import "testing"

import "github.com/stretchr/testify/assert"

func TestRegisterPairs(t *testing.T) {
	var r Registers
	r.SetBC(0x1234)
	assert.Equal(t, byte(0x12), r.B)
	assert.Equal(t, byte(0x34), r.C)
	assert.Equal(t, uint16(0x1234), r.BC())
}

func TestIndexHighLow(t *testing.T) {
	var r Registers
	r.IX = 0xABCD
	assert.Equal(t, byte(0xAB), r.IXH())
	assert.Equal(t, byte(0xCD), r.IXL())

	r.SetIXH(0x11)
	r.SetIXL(0x22)
	assert.Equal(t, uint16(0x1122), r.IX)
}

func TestExXAndExAF(t *testing.T) {
	var r Registers
	r.SetBC(0x1111)
	r.B_, r.C_ = 0x22, 0x33
	r.ExX()
	assert.Equal(t, uint16(0x2233), r.BC())

	r.A, r.F = 0x01, 0x02
	r.A_, r.F_ = 0x03, 0x04
	r.ExAF()
	assert.Equal(t, byte(0x03), r.A)
	assert.Equal(t, byte(0x04), r.F)
}

func TestIncRPreservesBit7(t *testing.T) {
	var r Registers
	r.R = 0x80
	r.IncR(1)
	assert.Equal(t, byte(0x81), r.R)

	r.R = 0xFF
	r.IncR(1)
	assert.Equal(t, byte(0x80), r.R)

	r.R = 0x7F
	r.IncR(1)
	assert.Equal(t, byte(0x00), r.R)
}

func TestResetState(t *testing.T) {
	var r Registers
	r.PC = 0x1234
	r.Reset()
	assert.Equal(t, byte(0xFF), r.A)
	assert.Equal(t, byte(0xFF), r.F)
	assert.Equal(t, uint16(0xFFFF), r.SP)
	assert.Equal(t, uint16(0), r.PC)
	assert.False(t, r.IFF1)
	assert.False(t, r.IFF2)
}
