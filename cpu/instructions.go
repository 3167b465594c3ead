package cpu

// all function signatures were generated from
// https://www.nesdev.org/obelisk-6502-guide/reference.html
//
// One method per mnemonic. Each Exec routine reads its operand from c.M
// (resolve() has already fetched it before Exec runs) and returns the
// number of extra cycles incurred — only a taken branch returns nonzero;
// every other instruction's extra cycles (page-crossing) are already
// tallied by resolve() itself.
//
// how to read obelisk guide:
// A,Z,N = A&M
// [target],[flags...] = [op]

// ADC - Add with Carry
//
// A,Z,C,N,V = A+M+C. Carry reflects unsigned carry-out of the 9-bit sum;
// Overflow reflects signed overflow, computed from the pre-operation A:
// ((~(A^M)) & (A^R)) & 0x80 != 0.
func (c *CPU) ADC() byte {
	a := c.A
	m := c.M
	carryIn := uint16(0)
	if c.IsStatusFlagSet(FlagCarry) {
		carryIn = 1
	}
	sum := uint16(a) + uint16(m) + carryIn
	result := byte(sum)

	c.SetFlag(FlagCarry, sum > 0xff)
	c.SetFlag(FlagOverflow, (^(a^m)&(a^result))&0x80 != 0)
	c.A = result
	c.setZN(c.A)
	return 0
}

// AND - Logical AND
//
// A,Z,N = A&M
func (c *CPU) AND() byte {
	c.A &= c.M
	c.setZN(c.A)
	return 0
}

// ASL - Arithmetic Shift Left
//
// A,Z,C,N = M<<1 (or A<<1 in Accumulator mode).
func (c *CPU) ASL() byte {
	old := c.M
	result := old << 1
	c.SetFlag(FlagCarry, old&0x80 != 0)
	c.setZN(result)
	c.writeBack(result)
	return 0
}

// BCC - Branch if Carry Clear
func (c *CPU) BCC() byte { return c.branch(!c.IsStatusFlagSet(FlagCarry)) }

// BCS - Branch if Carry Set
func (c *CPU) BCS() byte { return c.branch(c.IsStatusFlagSet(FlagCarry)) }

// BEQ - Branch if Equal
func (c *CPU) BEQ() byte { return c.branch(c.IsStatusFlagSet(FlagZero)) }

// BIT - Bit Test
//
// Z = A&M==0, N = M bit 7, V = M bit 6.
func (c *CPU) BIT() byte {
	result := c.A & c.M
	c.SetFlag(FlagZero, result == 0)
	c.SetFlag(FlagOverflow, c.M&0x40 != 0)
	c.SetFlag(FlagNegative, c.M&0x80 != 0)
	return 0
}

// BMI - Branch if Minus
func (c *CPU) BMI() byte { return c.branch(c.IsStatusFlagSet(FlagNegative)) }

// BNE - Branch if Not Equal
func (c *CPU) BNE() byte { return c.branch(!c.IsStatusFlagSet(FlagZero)) }

// BPL - Branch if Positive
func (c *CPU) BPL() byte { return c.branch(!c.IsStatusFlagSet(FlagNegative)) }

// BRK - Force Interrupt
//
// This core treats BRK as a termination sentinel rather than a real
// software interrupt: Step halts the Cpu and rewinds PC onto the BRK byte.
// All of that lives in Step; the routine itself does nothing.
func (c *CPU) BRK() byte { return 0 }

// BVC - Branch if Overflow Clear
func (c *CPU) BVC() byte { return c.branch(!c.IsStatusFlagSet(FlagOverflow)) }

// BVS - Branch if Overflow Set
func (c *CPU) BVS() byte { return c.branch(c.IsStatusFlagSet(FlagOverflow)) }

// branch jumps PC to the already-resolved AbsAddress when taken; otherwise
// PC is left exactly where resolve() advanced it, past the operand byte. A
// taken branch costs one extra cycle.
func (c *CPU) branch(taken bool) byte {
	if !taken {
		return 0
	}
	c.PC = c.AbsAddress
	return 1
}

// CLC - Clear Carry Flag
func (c *CPU) CLC() byte { c.SetFlag(FlagCarry, false); return 0 }

// CLD - Clear Decimal Mode
func (c *CPU) CLD() byte { c.SetFlag(FlagDecimal, false); return 0 }

// CLI - Clear Interrupt Disable
func (c *CPU) CLI() byte { c.SetFlag(FlagInterruptDisable, false); return 0 }

// CLV - Clear Overflow Flag
func (c *CPU) CLV() byte { c.SetFlag(FlagOverflow, false); return 0 }

// CMP - Compare Accumulator
func (c *CPU) CMP() byte { c.compare(c.A); return 0 }

// CPX - Compare X Register
func (c *CPU) CPX() byte { c.compare(c.X); return 0 }

// CPY - Compare Y Register
func (c *CPU) CPY() byte { c.compare(c.Y); return 0 }

// compare computes reg-M (mod 256) without storing it anywhere: Carry is
// set if reg >= M (unsigned), Zero if reg == M, Negative from bit 7 of the
// difference.
func (c *CPU) compare(reg byte) {
	result := reg - c.M
	c.SetFlag(FlagCarry, reg >= c.M)
	c.SetFlag(FlagZero, reg == c.M)
	c.SetFlag(FlagNegative, result&0x80 != 0)
}

// DEC - Decrement Memory
func (c *CPU) DEC() byte {
	result := c.M - 1
	c.setZN(result)
	c.writeBack(result)
	return 0
}

// DEX - Decrement X Register
func (c *CPU) DEX() byte { c.X--; c.setZN(c.X); return 0 }

// DEY - Decrement Y Register
func (c *CPU) DEY() byte { c.Y--; c.setZN(c.Y); return 0 }

// EOR - Exclusive OR
//
// A,Z,N = A^M
func (c *CPU) EOR() byte {
	c.A ^= c.M
	c.setZN(c.A)
	return 0
}

// INC - Increment Memory
func (c *CPU) INC() byte {
	result := c.M + 1
	c.setZN(result)
	c.writeBack(result)
	return 0
}

// INX - Increment X Register
func (c *CPU) INX() byte { c.X++; c.setZN(c.X); return 0 }

// INY - Increment Y Register
func (c *CPU) INY() byte { c.Y++; c.setZN(c.Y); return 0 }

// JMP - Jump
//
// resolve() has already placed the target in AbsAddress (Absolute reads it
// directly; Indirect dereferences the pointer operand without the
// page-wrap bug). Step does not post-advance PC for JMP.
func (c *CPU) JMP() byte {
	c.PC = c.AbsAddress
	return 0
}

// JSR - Jump to Subroutine
//
// resolve() has already advanced PC past the 2-byte operand, so PC here
// points at the instruction following JSR. The return address pushed is
// PC-1 — the address of JSR's own last byte — high byte first.
func (c *CPU) JSR() byte {
	c.push16(c.PC - 1)
	c.PC = c.AbsAddress
	return 0
}

// LDA - Load Accumulator
func (c *CPU) LDA() byte {
	c.A = c.M
	c.setZN(c.A)
	return 0
}

// LDX - Load X Register
func (c *CPU) LDX() byte {
	c.X = c.M
	c.setZN(c.X)
	return 0
}

// LDY - Load Y Register
func (c *CPU) LDY() byte {
	c.Y = c.M
	c.setZN(c.Y)
	return 0
}

// LSR - Logical Shift Right
//
// A,Z,C,N = M>>1 (or A>>1 in Accumulator mode). Bit 7 of the result is
// always 0, so Negative is always cleared.
func (c *CPU) LSR() byte {
	old := c.M
	result := old >> 1
	c.SetFlag(FlagCarry, old&0x01 != 0)
	c.setZN(result)
	c.writeBack(result)
	return 0
}

// NOP - No Operation
func (c *CPU) NOP() byte { return 0 }

// ORA - Logical Inclusive OR
//
// A,Z,N = A|M
func (c *CPU) ORA() byte {
	c.A |= c.M
	c.setZN(c.A)
	return 0
}

// PHA - Push Accumulator
func (c *CPU) PHA() byte { c.push(c.A); return 0 }

// PHP - Push Processor Status
//
// The byte pushed always has the B flag and the reserved bit set to 1,
// regardless of their live state — software only ever observes the B flag
// through a pushed copy, never through the live P register.
func (c *CPU) PHP() byte {
	c.push(c.StatusByte() | 0x30)
	return 0
}

// PLA - Pull Accumulator
func (c *CPU) PLA() byte {
	c.A = c.pull()
	c.setZN(c.A)
	return 0
}

// PLP - Pull Processor Status
//
// Restores the six condition flags from the pulled byte; bits 4 and 5 of
// the pulled byte are discarded (see LoadStatusByte), so a PHP;PLP round
// trip restores P exactly even though PHP forced them in the pushed copy.
func (c *CPU) PLP() byte {
	c.LoadStatusByte(c.pull())
	return 0
}

// ROL - Rotate Left
//
// Carry moves into bit 0; the old bit 7 becomes the new Carry.
func (c *CPU) ROL() byte {
	old := c.M
	carryIn := byte(0)
	if c.IsStatusFlagSet(FlagCarry) {
		carryIn = 1
	}
	result := old<<1 | carryIn
	c.SetFlag(FlagCarry, old&0x80 != 0)
	c.setZN(result)
	c.writeBack(result)
	return 0
}

// ROR - Rotate Right
//
// Carry moves into bit 7; the old bit 0 becomes the new Carry.
func (c *CPU) ROR() byte {
	old := c.M
	carryIn := byte(0)
	if c.IsStatusFlagSet(FlagCarry) {
		carryIn = 0x80
	}
	result := old>>1 | carryIn
	c.SetFlag(FlagCarry, old&0x01 != 0)
	c.setZN(result)
	c.writeBack(result)
	return 0
}

// RTI - Return from Interrupt
//
// Pulls P (without restoring B, see LoadStatusByte), then PC low byte then
// high byte — unlike RTS, the pulled PC is used as-is, with no +1.
func (c *CPU) RTI() byte {
	c.LoadStatusByte(c.pull())
	c.PC = c.pull16()
	return 0
}

// RTS - Return from Subroutine
//
// Pulls the return address and adds 1, undoing JSR's PC-1 push.
func (c *CPU) RTS() byte {
	c.PC = c.pull16() + 1
	return 0
}

// SBC - Subtract with Carry
//
// Identical to ADC with the operand one's-complemented (M' = M^0xFF); the
// same 9-bit-sum carry rule and signed-overflow rule then apply unchanged.
func (c *CPU) SBC() byte {
	c.M ^= 0xff
	return c.ADC()
}

// SEC - Set Carry Flag
func (c *CPU) SEC() byte { c.SetFlag(FlagCarry, true); return 0 }

// SED - Set Decimal Flag
func (c *CPU) SED() byte { c.SetFlag(FlagDecimal, true); return 0 }

// SEI - Set Interrupt Disable
func (c *CPU) SEI() byte { c.SetFlag(FlagInterruptDisable, true); return 0 }

// STA - Store Accumulator
func (c *CPU) STA() byte { c.Write(c.AbsAddress, c.A); return 0 }

// STX - Store X Register
func (c *CPU) STX() byte { c.Write(c.AbsAddress, c.X); return 0 }

// STY - Store Y Register
func (c *CPU) STY() byte { c.Write(c.AbsAddress, c.Y); return 0 }

// TAX - Transfer Accumulator to X
func (c *CPU) TAX() byte { c.X = c.A; c.setZN(c.X); return 0 }

// TAY - Transfer Accumulator to Y
func (c *CPU) TAY() byte { c.Y = c.A; c.setZN(c.Y); return 0 }

// TSX - Transfer Stack Pointer to X
func (c *CPU) TSX() byte { c.X = c.SP; c.setZN(c.X); return 0 }

// TXA - Transfer X to Accumulator
func (c *CPU) TXA() byte { c.A = c.X; c.setZN(c.A); return 0 }

// TXS - Transfer X to Stack Pointer
//
// Unlike every other transfer, TXS does not touch Z/N.
func (c *CPU) TXS() byte { c.SP = c.X; return 0 }

// TYA - Transfer Y to Accumulator
func (c *CPU) TYA() byte { c.A = c.Y; c.setZN(c.A); return 0 }

// writeBack stores v through AbsAddress for memory-mode shift/inc/dec
// instructions, or into A when the current instruction is Accumulator-mode.
func (c *CPU) writeBack(v byte) {
	if c.accumulatorMode {
		c.A = v
		return
	}
	c.Write(c.AbsAddress, v)
}
