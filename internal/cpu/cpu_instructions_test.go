package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSRPushesReturnAddressMinusOne(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x8000] = 0x20 // JSR
	mem.ram[0x8001] = 0x34
	mem.ram[0x8002] = 0x12
	c.Step()
	assert.Equal(t, uint16(0x1234), c.PC)
	hi := mem.ram[0x0100+uint16(c.SP)+2]
	lo := mem.ram[0x0100+uint16(c.SP)+1]
	ret := uint16(lo) | uint16(hi)<<8
	assert.Equal(t, uint16(0x8002), ret)
}

func TestRTSPopsAndIncrements(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x8000] = 0x20 // JSR $9000
	mem.ram[0x8001] = 0x00
	mem.ram[0x8002] = 0x90
	mem.ram[0x9000] = 0x60 // RTS
	c.Step()
	c.Step()
	assert.Equal(t, uint16(0x8003), c.PC)
}

func TestBRKHaltsExecution(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x8000] = 0x00 // BRK
	mem.ram[0x8001] = 0xEA // NOP, should never execute
	cyclesBRK := c.Step()
	require.True(t, c.Halted())
	require.Equal(t, uint64(7), cyclesBRK)
	cyclesAfter := c.Step()
	assert.Equal(t, uint64(0), cyclesAfter, "Step is a no-op once halted")
}

func TestUnofficialLAXLoadsBothRegisters(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x0010] = 0x77
	mem.ram[0x8000] = 0xA7 // LAX ZeroPage
	mem.ram[0x8001] = 0x10
	c.Step()
	assert.Equal(t, uint8(0x77), c.A)
	assert.Equal(t, uint8(0x77), c.X)
}

func TestUnofficialSAXStoresAANDX(t *testing.T) {
	c, mem := newTestCPU()
	c.A = 0xF0
	c.X = 0x0F
	mem.ram[0x8000] = 0x87 // SAX ZeroPage
	mem.ram[0x8001] = 0x20
	c.Step()
	assert.Equal(t, uint8(0x00), mem.ram[0x0020])
}

func TestUnknownOpcodeRaisesEmulationFault(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x8000] = 0x02 // JAM/KIL, deliberately undefined here
	assert.Panics(t, func() { c.Step() })
}

func TestShiftAccumulatorVersusMemoryForm(t *testing.T) {
	c, mem := newTestCPU()
	c.A = 0x81
	mem.ram[0x8000] = 0x0A // ASL A
	c.Step()
	assert.Equal(t, uint8(0x02), c.A)
	assert.True(t, c.flag(FlagC))

	mem.ram[0x0030] = 0x81
	mem.ram[0x8001] = 0x06 // ASL ZeroPage
	mem.ram[0x8002] = 0x30
	c.Step()
	assert.Equal(t, uint8(0x02), mem.ram[0x0030])
}

func TestIncDecWrapAndSetFlags(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x0040] = 0xFF
	mem.ram[0x8000] = 0xE6 // INC ZeroPage
	mem.ram[0x8001] = 0x40
	c.Step()
	assert.Equal(t, uint8(0x00), mem.ram[0x0040])
	assert.True(t, c.flag(FlagZ))
}
