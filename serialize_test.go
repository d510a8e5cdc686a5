package z80

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPUSerializeRoundTrip(t *testing.T) {
	c, bus := newTestCPU()
	bus.load(0, 0x3E, 0x42) // LD A,0x42
	c.RunInstruction()
	c.IX = 0x1234
	c.WZ = 0xBEEF
	c.IFF1 = true

	buf := make([]byte, c.SerializeSize())
	require.NoError(t, c.Serialize(buf))

	var restored CPU
	restored.bus = bus
	require.NoError(t, restored.Deserialize(buf))

	assert.Equal(t, c.A, restored.A)
	assert.Equal(t, c.IX, restored.IX)
	assert.Equal(t, c.WZ, restored.WZ)
	assert.Equal(t, c.IFF1, restored.IFF1)
	assert.Equal(t, c.TCycles(), restored.TCycles())
}

func TestCPUSerializeBufferTooSmall(t *testing.T) {
	c, _ := newTestCPU()
	buf := make([]byte, 1)
	assert.Error(t, c.Serialize(buf))
	assert.Error(t, c.Deserialize(buf))
}

func TestCPUDeserializeRejectsBadVersion(t *testing.T) {
	c, _ := newTestCPU()
	buf := make([]byte, c.SerializeSize())
	require.NoError(t, c.Serialize(buf))
	buf[0] = 0xFF
	assert.Error(t, c.Deserialize(buf))
}

func TestMemorySerializeRoundTrip(t *testing.T) {
	m, err := NewMemory(nil, nil)
	require.NoError(t, err)
	m.WriteByte(0x4000, 0xAB)
	m.WritePort(0x05)

	buf := make([]byte, m.SerializeSize())
	require.NoError(t, m.Serialize(buf))

	m2, err := NewMemory(nil, nil)
	require.NoError(t, err)
	require.NoError(t, m2.Deserialize(buf))

	assert.Equal(t, byte(0xAB), m2.ReadByte(0x4000))
	assert.Equal(t, 5, m2.C000Bank())
}
