// Package trace renders cpu.StepInfo into the nestest reference log's line
// format, so golden-log conformance tests can compare this core's output
// byte-for-byte against a captured reference trace. Generalized from a
// closed case-statement over opcode bytes to render directly off the
// shared opcode table in cpu.opcodes, so mnemonic/mode data has one
// source of truth.
package trace

import (
	"fmt"
	"strings"

	"github.com/nes6502/core/cpu"
)

// Line renders one nestest-format trace line for the instruction described
// by info, emitted before execution (info carries pre-execution register
// state). Example:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD
func Line(info cpu.StepInfo) string {
	bytes := instructionBytes(info)
	disasm := fmt.Sprintf("%s %s", info.Mnemonic, operandText(info))
	disasm = strings.TrimRight(disasm, " ")

	return fmt.Sprintf("%04X  %-8s  %-32sA:%02X X:%02X Y:%02X P:%02X SP:%02X",
		info.PC, bytes, disasm, info.A, info.X, info.Y, info.P, info.S)
}

// instructionBytes renders the opcode byte followed by its operand bytes,
// separated by single spaces, e.g. "4C F5 C5" or "EA".
func instructionBytes(info cpu.StepInfo) string {
	parts := make([]string, 0, 1+len(info.Operands))
	parts = append(parts, fmt.Sprintf("%02X", info.Opcode))
	for _, b := range info.Operands {
		parts = append(parts, fmt.Sprintf("%02X", b))
	}
	return strings.Join(parts, " ")
}

// operandText renders the disassembled operand for the addressing mode
// actually dispatched, using the raw operand bytes (not the resolved
// runtime address) for every mode except Relative, whose target depends on
// PC and so is taken from info.Resolved.
func operandText(info cpu.StepInfo) string {
	ops := info.Operands
	switch info.Mode {
	case cpu.Implied:
		return ""
	case cpu.Accumulator:
		return "A"
	case cpu.Immediate:
		return fmt.Sprintf("#$%02X", ops[0])
	case cpu.ZeroPage:
		return fmt.Sprintf("$%02X", ops[0])
	case cpu.ZeroPageX:
		return fmt.Sprintf("$%02X,X", ops[0])
	case cpu.ZeroPageY:
		return fmt.Sprintf("$%02X,Y", ops[0])
	case cpu.Absolute:
		return fmt.Sprintf("$%02X%02X", ops[1], ops[0])
	case cpu.AbsoluteX:
		return fmt.Sprintf("$%02X%02X,X", ops[1], ops[0])
	case cpu.AbsoluteY:
		return fmt.Sprintf("$%02X%02X,Y", ops[1], ops[0])
	case cpu.Indirect:
		return fmt.Sprintf("($%02X%02X)", ops[1], ops[0])
	case cpu.IndirectX:
		return fmt.Sprintf("($%02X,X)", ops[0])
	case cpu.IndirectY:
		return fmt.Sprintf("($%02X),Y", ops[0])
	case cpu.Relative:
		return fmt.Sprintf("$%04X", info.Resolved.Addr)
	default:
		return ""
	}
}
