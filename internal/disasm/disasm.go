// Package disasm renders a one-line, human-readable disassembly of the
// instruction at a given address, reading straight out of the same
// cpu.Opcodes table the Cpu itself dispatches through. It adds no opcode
// semantics of its own; it only formats what is already there.
package disasm

import (
	"fmt"

	"github.com/hejops/gone6502/cpu"
)

// Step renders the instruction at pc as one line ("$0600  A9 C0     LDA #$C0")
// and returns its length in bytes, so a caller can advance pc by the
// returned amount to walk a program linearly. An unrecognized opcode byte
// is rendered as ".byte" with length 1, so a disassembly pass can keep
// going through data embedded in code.
func Step(pc uint16, mem cpu.Memory) (line string, length int) {
	opByte := mem.Read8(pc)
	desc, ok := cpu.Opcodes[opByte]
	if !ok {
		return fmt.Sprintf("$%04X  %02X        .byte $%02X", pc, opByte, opByte), 1
	}

	operand := ""
	switch desc.Length {
	case 2:
		b := mem.Read8(pc + 1)
		operand = operandString(desc.Mode, uint16(b))
	case 3:
		w := mem.Read16(pc + 1)
		operand = operandString(desc.Mode, w)
	}

	raw := fmt.Sprintf("%02X", opByte)
	for i := 1; i < int(desc.Length); i++ {
		raw += fmt.Sprintf(" %02X", mem.Read8(pc+uint16(i)))
	}

	return fmt.Sprintf("$%04X  %-9s %s %s", pc, raw, desc.Mnemonic, operand), int(desc.Length)
}

// operandString renders an operand the way the addressing mode's assembler
// syntax normally shows it. It is read-only formatting, not a reimplementation
// of resolve(): IndirectX/IndirectY render the raw zero-page pointer byte,
// not the dereferenced effective address, matching what an assembler listing
// shows.
func operandString(mode cpu.AddressingMode, v uint16) string {
	switch mode {
	case cpu.Immediate:
		return fmt.Sprintf("#$%02X", v)
	case cpu.ZeroPage:
		return fmt.Sprintf("$%02X", v)
	case cpu.ZeroPageX:
		return fmt.Sprintf("$%02X,X", v)
	case cpu.ZeroPageY:
		return fmt.Sprintf("$%02X,Y", v)
	case cpu.Relative:
		return fmt.Sprintf("*%+d", int8(v))
	case cpu.Absolute:
		return fmt.Sprintf("$%04X", v)
	case cpu.AbsoluteX:
		return fmt.Sprintf("$%04X,X", v)
	case cpu.AbsoluteY:
		return fmt.Sprintf("$%04X,Y", v)
	case cpu.Indirect:
		return fmt.Sprintf("($%04X)", v)
	case cpu.IndirectX:
		return fmt.Sprintf("($%02X,X)", v)
	case cpu.IndirectY:
		return fmt.Sprintf("($%02X),Y", v)
	default:
		return ""
	}
}
