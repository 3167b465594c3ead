package cpu

import "github.com/hejops/gone6502/mask"

// Flag names one bit of the processor status register P.
//
// 7654 3210
// NV1B DIZC
//
// P is kept as a single byte rather than six booleans, since PHP/PLP/RTI
// need byte-granular access anyway; Flag values below map to mask.ByteIndex
// positions (1-indexed from the MSB) so that reads and writes go through the
// mask package's bit helpers instead of ad hoc shifts.
type Flag = byte

const (
	FlagNegative         Flag = iota // bit 7
	FlagOverflow                     // bit 6
	flagUnused                       // bit 5, always 1, not independently settable
	FlagBreak                        // bit 4, software-visible only on pushes
	FlagDecimal                      // bit 3, inert for arithmetic
	FlagInterruptDisable             // bit 2
	FlagZero                         // bit 1
	FlagCarry                        // bit 0
)

// flagBit maps a Flag to its mask.ByteIndex position (I1 = bit 7 .. I8 = bit 0).
var flagBit = [...]byte{
	FlagNegative:         1,
	FlagOverflow:         2,
	flagUnused:           3,
	FlagBreak:            4,
	FlagDecimal:          5,
	FlagInterruptDisable: 6,
	FlagZero:             7,
	FlagCarry:            8,
}

func bitPos(f Flag) mask.ByteIndex { return mask.ByteIndex(flagBit[f]) }

// IsStatusFlagSet reports whether f is set in P.
func (c *CPU) IsStatusFlagSet(f Flag) bool {
	return mask.IsSet(c.P, bitPos(f))
}

// SetFlag sets or clears f in P. The B flag and the reserved bit are not
// exposed through this API: they are only ever touched by the push/pull
// machinery in instructions.go.
func (c *CPU) SetFlag(f Flag, v bool) {
	if f == FlagBreak || f == flagUnused {
		return
	}
	pos := bitPos(f)
	if v {
		c.P = mask.Set(c.P, pos, 1)
	} else {
		c.P = mask.Unset(c.P, pos, pos)
	}
}

// setZN sets Zero and Negative from v, the pattern shared by every
// load/transfer/logical/arithmetic/shift/increment/decrement instruction
// (compare sets Z and N itself).
func (c *CPU) setZN(v byte) {
	c.SetFlag(FlagZero, v == 0)
	c.SetFlag(FlagNegative, v&0x80 != 0)
}

// StatusByte returns the full status byte, for PHP.
func (c *CPU) StatusByte() byte { return c.P }

// LoadStatusByte replaces the six condition flags of P from a pulled byte,
// for PLP/RTI. The B flag is not a real flip-flop on the chip: PHP/BRK force
// it to 1 only in the pushed copy, and a pull ignores whatever the stack
// byte carries in bits 4 and 5 — the live B bit survives and bit 5 reads
// back as 1. This is what keeps a PHP;PLP round trip exact: forcing bits
// 4/5 on push must not leak into the live P on pull.
func (c *CPU) LoadStatusByte(v byte) {
	const b = 0x10 // bit 4
	c.P = v&^b | c.P&b | 0x20
}
