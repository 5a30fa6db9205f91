package cpu

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBranchNotTakenCostsBaseCyclesOnly(t *testing.T) {
	c, mem := newTestCPU()
	c.Status &^= FlagZ
	mem.ram[0x8000] = 0xF0 // BEQ, not taken since Z is clear
	mem.ram[0x8001] = 0x10
	cycles := c.Step()
	assert.Equal(t, uint64(2), cycles)
	assert.Equal(t, uint16(0x8002), c.PC)
}

func TestBranchTakenSamePageCostsOneExtraCycle(t *testing.T) {
	c, mem := newTestCPU()
	c.Status |= FlagZ
	mem.ram[0x8000] = 0xF0 // BEQ, taken
	mem.ram[0x8001] = 0x10
	cycles := c.Step()
	assert.Equal(t, uint64(3), cycles)
	assert.Equal(t, uint16(0x8012), c.PC)
}

func TestBranchTakenAcrossPageCostsTwoExtraCycles(t *testing.T) {
	c, mem := newTestCPU()
	c.PC = 0x80F0
	c.Status |= FlagZ
	mem.ram[0x80F0] = 0xF0 // BEQ
	mem.ram[0x80F1] = 0x20 // $80F2 + 0x20 = $8112, crosses page
	cycles := c.Step()
	assert.Equal(t, uint64(4), cycles)
}

func TestCyclesAccumulateAcrossSteps(t *testing.T) {
	c, mem := newTestCPU()
	mem.ram[0x8000] = 0xEA // NOP
	mem.ram[0x8001] = 0xEA // NOP
	c.Step()
	c.Step()
	assert.Equal(t, uint64(4), c.Cycles())
}

func TestTraceSinkReceivesOneLinePerStep(t *testing.T) {
	c, mem := newTestCPU()
	var buf bytes.Buffer
	c.SetTraceSink(&buf)
	mem.ram[0x8000] = 0xEA
	mem.ram[0x8001] = 0xEA
	c.Step()
	c.Step()
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}
