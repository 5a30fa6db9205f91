package joypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrobeHighContinuouslyReportsButtonA(t *testing.T) {
	j := New()
	j.SetButton(0, A, true)
	j.SetButton(0, B, true)
	j.Write(0x01) // strobe high
	assert.Equal(t, uint8(1), j.Read(0)&0x01)
	assert.Equal(t, uint8(1), j.Read(0)&0x01, "while strobe is high, every read reloads and returns A")
}

func TestStrobeFallingEdgeLatchesSnapshotForShifting(t *testing.T) {
	j := New()
	j.SetButton(0, A, true)
	j.SetButton(0, Select, true) // bit 2
	j.Write(0x01)
	j.Write(0x00) // falling edge: latch snapshot

	bits := make([]uint8, 8)
	for i := range bits {
		bits[i] = j.Read(0) & 0x01
	}
	assert.Equal(t, uint8(1), bits[0], "A reads first")
	assert.Equal(t, uint8(0), bits[1], "B not pressed")
	assert.Equal(t, uint8(1), bits[2], "Select reads third")
}

func TestReadPastEighthBitReturnsOnes(t *testing.T) {
	j := New()
	j.Write(0x00)
	for i := 0; i < 8; i++ {
		j.Read(0)
	}
	assert.Equal(t, uint8(1), j.Read(0)&0x01, "shift register fills with 1s past the 8th read")
}

func TestPortsAreIndependent(t *testing.T) {
	j := New()
	j.SetButton(0, A, true)
	j.SetButton(1, A, false)
	j.Write(0x01)
	j.Write(0x00)
	assert.Equal(t, uint8(1), j.Read(0)&0x01)
	assert.Equal(t, uint8(0), j.Read(1)&0x01)
}
