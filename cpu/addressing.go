package cpu

// An AddressingMode tells the Cpu where to find the operand for an
// instruction. There are 13 possible modes; two of them, Implicit and
// Accumulator, have no effective address: resolve() is still called for
// them, but computes none and reads no operand bytes.
type AddressingMode int

const (
	Implicit AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

// unreachableAddressingMode reports the programming error of asking resolve()
// for a mode value outside the 13 defined above.
type unreachableAddressingMode struct {
	Mode AddressingMode
}

func (e *unreachableAddressingMode) Error() string {
	return "addressing mode resolver called for a mode with no effective address"
}

// resolve computes the effective address for mode, reading operand bytes
// from memory starting at PC and advancing PC past them (0 to 2 bytes,
// depending on mode). It stores the effective address in c.AbsAddress and
// the byte at that address in c.M (Accumulator mode stores c.A in c.M
// instead, and Implicit mode touches neither). A page boundary crossed by
// AbsoluteX, AbsoluteY, or IndirectY adds one extra cycle, tracked in
// c.Cycles for instrumentation.
func (c *CPU) resolve(mode AddressingMode) {
	c.accumulatorMode = mode == Accumulator

	switch mode {

	case Implicit:
		return

	case Accumulator:
		c.M = c.A
		return

	case Immediate:
		c.AbsAddress = c.PC
		c.PC++

	case ZeroPage:
		c.AbsAddress = uint16(c.Read(c.PC))
		c.PC++

	case ZeroPageX:
		c.AbsAddress = uint16(c.Read(c.PC) + c.X) // wraps within page 0
		c.PC++

	case ZeroPageY:
		c.AbsAddress = uint16(c.Read(c.PC) + c.Y)
		c.PC++

	case Relative:
		// The operand is a signed 8-bit displacement, relative to the
		// PC value immediately after the operand byte itself.
		rel := int8(c.Read(c.PC))
		c.PC++
		c.AbsAddress = uint16(int32(c.PC) + int32(rel))

	case Absolute:
		c.AbsAddress = c.Read16(c.PC)
		c.PC += 2

	case AbsoluteX:
		base := c.Read16(c.PC)
		c.PC += 2
		c.AbsAddress = base + uint16(c.X)
		c.addExtraCycleOnPageCross(base, c.AbsAddress)

	case AbsoluteY:
		base := c.Read16(c.PC)
		c.PC += 2
		c.AbsAddress = base + uint16(c.Y)
		c.addExtraCycleOnPageCross(base, c.AbsAddress)

	case Indirect:
		ptr := c.Read16(c.PC)
		c.PC += 2
		c.AbsAddress = c.Read16(ptr)

	case IndirectX:
		ptr := c.Read(c.PC) + c.X // zero-page wrap before dereference
		c.PC++
		lo := uint16(c.Read(uint16(ptr)))
		hi := uint16(c.Read(uint16(ptr + 1))) // +1 also wraps within page 0
		c.AbsAddress = hi<<8 | lo

	case IndirectY:
		ptr := c.Read(c.PC)
		c.PC++
		lo := uint16(c.Read(uint16(ptr)))
		hi := uint16(c.Read(uint16(ptr + 1)))
		base := hi<<8 | lo
		c.AbsAddress = base + uint16(c.Y)
		c.addExtraCycleOnPageCross(base, c.AbsAddress)

	default:
		panic(&unreachableAddressingMode{Mode: mode})
	}

	c.M = c.Read(c.AbsAddress)
}

// Read16 reads a little-endian 16-bit value from memory via Mem.
func (c *CPU) Read16(addr uint16) uint16 { return c.Mem.Read16(addr) }

func (c *CPU) addExtraCycleOnPageCross(base, resolved uint16) {
	if base&0xff00 != resolved&0xff00 {
		c.pageCrossExtra++
	}
}
