// Package cpu implements the MOS Technology 6502 microprocessor, as used in
// the NES. It reproduces the documented instruction set (56 mnemonics, 151
// opcodes across 13 addressing modes) bit-for-bit, including the flag edge
// cases of ADC/SBC, shifts/rotates, and the stack discipline behind
// JSR/RTS/PHA/PLA/PHP/PLP/BRK/RTI.
//
// Decimal (BCD) mode, unofficial opcodes, and hardware interrupts beyond the
// software BRK path are not implemented, matching the NES variant of the
// chip. Cartridge parsing, PPU, APU, controller input, and bus timing are
// external collaborators; this package only consumes a Memory port (see
// Memory below).
package cpu

import (
	"fmt"
)

// PRGBase is where a program image is loaded by Load, and where the reset
// vector points after Load.
const PRGBase = 0x8000

// TestLoadBase is where TestLoad places a program image — used by tests that
// want a small, easy-to-read base address instead of the full PRG-ROM range.
const TestLoadBase = 0x0600

// Well-known addresses.
const (
	resetVector = 0xfffc
	stackPage   = 0x0100
	stackReset  = 0xfd
	statusReset = 0x24 // 0b0010_0100: I and the reserved bit set
)

// Memory is the port the Cpu consumes for all reads and writes. mem.Bus
// (2 kB mirrored NES RAM) and mem.Flat (unmirrored, for tests) both satisfy
// it; anything else — a full bus with PPU/APU/cartridge wired in — can too.
type Memory interface {
	Read8(addr uint16) byte
	Write8(addr uint16, data byte)
	Read16(addr uint16) uint16
	Write16(addr uint16, v uint16)
}

// RunState reports whether the Cpu is still executing or has halted on BRK.
type RunState int

const (
	Running RunState = iota
	Halted
)

// IllegalOpcodeError is returned (and, at the Run boundary, panicked with)
// when Step decodes a byte outside the 151 documented opcodes.
type IllegalOpcodeError struct {
	Opcode byte
	PC     uint16
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02x at PC=0x%04x", e.Opcode, e.PC)
}

// CPU holds all programmer-visible 6502 state. It owns no memory of its
// own — every read and write goes through Mem.
type CPU struct {
	Mem Memory

	A  byte // accumulator
	X  byte
	Y  byte
	SP byte // stack pointer; logical stack lives at 0x0100 + SP
	P  byte // status register: N V 1 B D I Z C (bit 7 -> bit 0)
	PC uint16

	// M and AbsAddress are scratch state set by the addressing-mode
	// resolver and consumed by the instruction routine dispatched for
	// the current opcode. AbsAddress is meaningless for Implicit and
	// Accumulator modes, for which the resolver leaves it untouched.
	M          byte
	AbsAddress uint16

	// Cycles is set to the opcode's base cycle count (plus one if a page
	// boundary was crossed by an indexed/indirect addressing mode, and plus
	// one for a taken branch) after every Step. It is tracked for instrumentation only and never gates
	// execution; Run does not wait on it.
	Cycles byte

	// pageCrossExtra accumulates the +1-cycle penalty resolve() applies
	// when AbsoluteX/AbsoluteY/IndirectY cross a page boundary; Step
	// folds it into Cycles and resets it before the next fetch.
	pageCrossExtra byte

	// accumulatorMode is set by resolve() when the current instruction's
	// mode is Accumulator, so that ASL/LSR/ROL/ROR know to write their
	// result back into A instead of through AbsAddress.
	accumulatorMode bool

	State RunState
}

// New constructs a Cpu wired to mem, with registers zeroed and SP/P at their
// post-reset values.
func New(mem Memory) *CPU {
	c := &CPU{Mem: mem}
	c.Reset()
	return c
}

// Load copies image into memory starting at PRGBase and points the reset
// vector at PRGBase.
func (c *CPU) Load(image []byte) {
	c.loadAt(image, PRGBase)
}

// TestLoad copies image into memory starting at TestLoadBase and points the
// reset vector at TestLoadBase.
func (c *CPU) TestLoad(image []byte) {
	c.loadAt(image, TestLoadBase)
}

// LoadAt copies image into memory starting at base and points the reset
// vector at base. Debug uses this to load a program at an arbitrary offset
// instead of the fixed PRGBase/TestLoadBase addresses.
func (c *CPU) LoadAt(image []byte, base uint16) {
	c.loadAt(image, base)
}

func (c *CPU) loadAt(image []byte, base uint16) {
	for i, b := range image {
		c.Mem.Write8(base+uint16(i), b)
	}
	c.Mem.Write16(resetVector, base)
}

// Reset clears A, X, Y, sets SP and P to their power-up values, and loads PC
// from the reset vector.
func (c *CPU) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = stackReset
	c.P = statusReset
	c.M = 0
	c.AbsAddress = 0
	c.Cycles = 0
	c.State = Running
	if c.Mem != nil {
		c.PC = c.Mem.Read16(resetVector)
	}
}

// LoadAndRun loads image at PRGBase, resets, then runs to completion.
func (c *CPU) LoadAndRun(image []byte) {
	c.Load(image)
	c.Reset()
	c.Run()
}

// Run executes instructions until BRK halts the Cpu. It panics on an
// illegal opcode.
func (c *CPU) Run() {
	c.RunWithCallback(nil)
}

// RunWithCallback behaves like Run, additionally invoking cb (if non-nil)
// with a pointer to the Cpu after every non-BRK instruction. cb must not
// re-enter Step.
func (c *CPU) RunWithCallback(cb func(*CPU)) {
	c.State = Running
	for c.State == Running {
		halted, err := c.Step()
		if err != nil {
			panic(err)
		}
		if !halted && cb != nil {
			cb(c)
		}
	}
}

// Step performs one fetch-decode-execute cycle: fetch the opcode at PC,
// decode its descriptor, resolve its addressing mode, dispatch its
// instruction routine. It reports whether the Cpu halted this step (on BRK,
// or on an illegal opcode), and any illegal-opcode error.
//
// resolve() reads exactly as many operand bytes as the opcode's addressing
// mode calls for and advances PC past them, so by the time Exec runs PC
// already sits at the start of the next instruction for every mnemonic
// that doesn't itself redirect control flow. JMP, JSR, and taken branches
// overwrite PC directly inside their Exec routine; nothing here needs to
// special-case them.
func (c *CPU) Step() (halted bool, err error) {
	opByte := c.Mem.Read8(c.PC)
	pcAtFetch := c.PC
	c.PC++

	desc, ok := Opcodes[opByte]
	if !ok {
		c.State = Halted
		return true, &IllegalOpcodeError{Opcode: opByte, PC: pcAtFetch}
	}

	c.pageCrossExtra = 0
	c.resolve(desc.Mode)

	extra := desc.Exec(c)
	c.Cycles = desc.Cycles + extra + c.pageCrossExtra

	if desc.Mnemonic == "BRK" {
		c.PC = pcAtFetch
		c.State = Halted
		return true, nil
	}

	return false, nil
}

// Read reads one byte via Mem.
func (c *CPU) Read(addr uint16) byte { return c.Mem.Read8(addr) }

// Write writes one byte via Mem.
func (c *CPU) Write(addr uint16, data byte) { c.Mem.Write8(addr, data) }

// push writes v to the stack page at SP, then decrements SP (mod 256).
func (c *CPU) push(v byte) {
	c.Mem.Write8(stackPage+uint16(c.SP), v)
	c.SP--
}

// pull increments SP (mod 256), then reads the stack page at SP.
func (c *CPU) pull() byte {
	c.SP++
	return c.Mem.Read8(stackPage + uint16(c.SP))
}

// push16 pushes v high-byte-first, matching JSR's stack layout.
func (c *CPU) push16(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

// pull16 pulls low-byte-first (the inverse of push16).
func (c *CPU) pull16() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return hi<<8 | lo
}
