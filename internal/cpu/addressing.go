package cpu

// decodeOperand resolves the effective address (or, for Immediate, the
// operand's own address so execute can read it with mem.Read) for an
// instruction starting its operand bytes at operandAddr. It never mutates
// PC; the caller decides afterward what PC should become. It returns the
// decoded operand address/value-address, any page-cross penalty cycles for
// addressing modes that incur one on reads, and the PC value a straight-line
// (non-branching, non-jumping) instruction should advance to.
func (c *CPU) decodeOperand(mode Mode, operandAddr uint16, length uint8) (operand uint16, extraCycles uint8, nextPC uint16) {
	nextPC = operandAddr - 1 + uint16(length)

	switch mode {
	case None:
		return 0, 0, nextPC

	case Immediate:
		return operandAddr, 0, nextPC

	case ZeroPage:
		return uint16(c.mem.Read(operandAddr)), 0, nextPC

	case ZeroPageX:
		return uint16(uint8(c.mem.Read(operandAddr) + c.X)), 0, nextPC

	case ZeroPageY:
		return uint16(uint8(c.mem.Read(operandAddr) + c.Y)), 0, nextPC

	case Absolute:
		return c.read16(operandAddr), 0, nextPC

	case AbsoluteX:
		base := c.read16(operandAddr)
		addr := base + uint16(c.X)
		if pageCrossed(base, addr) {
			extraCycles = 1
		}
		return addr, extraCycles, nextPC

	case AbsoluteY:
		base := c.read16(operandAddr)
		addr := base + uint16(c.Y)
		if pageCrossed(base, addr) {
			extraCycles = 1
		}
		return addr, extraCycles, nextPC

	case IndirectX:
		zp := c.mem.Read(operandAddr) + c.X
		lo := uint16(c.mem.Read(uint16(zp)))
		hi := uint16(c.mem.Read(uint16(zp + 1)))
		return lo | hi<<8, 0, nextPC

	case IndirectY:
		zp := c.mem.Read(operandAddr)
		lo := uint16(c.mem.Read(uint16(zp)))
		hi := uint16(c.mem.Read(uint16(zp + 1)))
		base := lo | hi<<8
		addr := base + uint16(c.Y)
		if pageCrossed(base, addr) {
			extraCycles = 1
		}
		return addr, extraCycles, nextPC

	case Indirect:
		ptr := c.read16(operandAddr)
		// Hardware page-wrap bug: if the low byte of ptr is 0xFF, the high
		// byte is fetched from the start of the same page, not the next.
		lo := uint16(c.mem.Read(ptr))
		var hiAddr uint16
		if ptr&0x00FF == 0x00FF {
			hiAddr = ptr & 0xFF00
		} else {
			hiAddr = ptr + 1
		}
		hi := uint16(c.mem.Read(hiAddr))
		return lo | hi<<8, 0, nextPC
	}

	return 0, 0, nextPC
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}
