// Package cpu implements a MOS 6502 (Ricoh 2A03 integer subset)
// instruction interpreter: register file, status flags, the 13 addressing
// modes, and a fetch/decode/execute loop driven by the dense opcode table
// in opcodes.go. Decimal mode, cycle-accurate timing, and interrupt
// scheduling beyond a single explicit NMI/BRK vector are not modeled.
package cpu

import "fmt"

// IRQVector is the address of the little-endian IRQ/BRK vector.
const IRQVector = 0xFFFE

// ResetVector is the address of the little-endian reset vector consulted
// by Reset.
const ResetVector = 0xFFFC

// NMIVector is the address of the little-endian NMI vector. This core never
// schedules an NMI on its own; it is exposed so a host can drive one
// explicitly via TriggerNMI.
const NMIVector = 0xFFFA

// Bus is the memory interface the CPU executes against. It is satisfied by
// memory.NES and memory.Flat.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
	Read16(addr uint16) uint16
}

// CPU holds the complete architectural state of one 6502 core: the register
// file, and the bus it executes instructions against. It carries no
// scheduling state of its own - Step always executes exactly one
// instruction to completion.
type CPU struct {
	A, X, Y uint8
	S       uint8
	PC      uint16
	P       uint8

	Bus Bus

	// Halted is set by the HLT/JAM/KIL family of unofficial opcodes, which
	// lock the real processor until a reset. Step returns HaltedError on
	// every call after this becomes true.
	Halted bool

	// Cycles counts the 6502 base cycle cost of every instruction executed
	// so far. It is advisory only: this core does not enforce cycle-exact
	// timing (extra cycles for page-crossing reads and taken branches are
	// not added), so Cycles is a lower bound suitable for rough instruction
	// budgeting, not a cycle-accurate clock.
	Cycles uint64
}

// New constructs a CPU wired to bus. Callers must call Reset (or set PC
// directly) before the first Step.
func New(bus Bus) *CPU {
	return &CPU{Bus: bus}
}

// Reset loads PC from ResetVector, sets the power-on flag state, and
// initializes S to its post-reset value of 0xFD, matching real hardware.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFD
	c.P = powerOnP
	c.Halted = false
	c.Cycles = 0
	c.PC = c.Bus.Read16(ResetVector)
}

// UnknownOpcodeError is returned by Step if opcodes does not bind the
// fetched opcode byte to a table entry. Because the table is a dense
// 256-entry array every byte value has a definition (many as HLT or NOP),
// so in practice this only fires if the table was built incorrectly; see
// opcodes_test.go's coverage check.
type UnknownOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// HaltedError is returned by Step once the processor has executed a
// HLT/JAM/KIL opcode; the 6502 has no recovery from this state short of a
// reset.
type HaltedError struct {
	PC uint16
}

func (e *HaltedError) Error() string {
	return fmt.Sprintf("cpu: halted at PC=0x%04X", e.PC)
}

// baseCycles gives the 6502's documented base cycle count per opcode,
// ignoring the conditional +1s for taken branches and page-crossing reads
// that a cycle-accurate core would add (see Cycles's doc comment).
var baseCycles = [256]uint8{
	0x00: 7, 0x01: 6, 0x02: 2, 0x03: 8, 0x04: 3, 0x05: 3, 0x06: 5, 0x07: 5,
	0x08: 3, 0x09: 2, 0x0A: 2, 0x0B: 2, 0x0C: 4, 0x0D: 4, 0x0E: 6, 0x0F: 6,
	0x10: 2, 0x11: 5, 0x12: 2, 0x13: 8, 0x14: 4, 0x15: 4, 0x16: 6, 0x17: 6,
	0x18: 2, 0x19: 4, 0x1A: 2, 0x1B: 7, 0x1C: 4, 0x1D: 4, 0x1E: 7, 0x1F: 7,
	0x20: 6, 0x21: 6, 0x22: 2, 0x23: 8, 0x24: 3, 0x25: 3, 0x26: 5, 0x27: 5,
	0x28: 4, 0x29: 2, 0x2A: 2, 0x2B: 2, 0x2C: 4, 0x2D: 4, 0x2E: 6, 0x2F: 6,
	0x30: 2, 0x31: 5, 0x32: 2, 0x33: 8, 0x34: 4, 0x35: 4, 0x36: 6, 0x37: 6,
	0x38: 2, 0x39: 4, 0x3A: 2, 0x3B: 7, 0x3C: 4, 0x3D: 4, 0x3E: 7, 0x3F: 7,
	0x40: 6, 0x41: 6, 0x42: 2, 0x43: 8, 0x44: 3, 0x45: 3, 0x46: 5, 0x47: 5,
	0x48: 3, 0x49: 2, 0x4A: 2, 0x4B: 2, 0x4C: 3, 0x4D: 4, 0x4E: 6, 0x4F: 6,
	0x50: 2, 0x51: 5, 0x52: 2, 0x53: 8, 0x54: 4, 0x55: 4, 0x56: 6, 0x57: 6,
	0x58: 2, 0x59: 4, 0x5A: 2, 0x5B: 7, 0x5C: 4, 0x5D: 4, 0x5E: 7, 0x5F: 7,
	0x60: 6, 0x61: 6, 0x62: 2, 0x63: 8, 0x64: 3, 0x65: 3, 0x66: 5, 0x67: 5,
	0x68: 4, 0x69: 2, 0x6A: 2, 0x6B: 2, 0x6C: 5, 0x6D: 4, 0x6E: 6, 0x6F: 6,
	0x70: 2, 0x71: 5, 0x72: 2, 0x73: 8, 0x74: 4, 0x75: 4, 0x76: 6, 0x77: 6,
	0x78: 2, 0x79: 4, 0x7A: 2, 0x7B: 7, 0x7C: 4, 0x7D: 4, 0x7E: 7, 0x7F: 7,
	0x80: 2, 0x81: 6, 0x82: 2, 0x83: 6, 0x84: 3, 0x85: 3, 0x86: 3, 0x87: 3,
	0x88: 2, 0x89: 2, 0x8A: 2, 0x8B: 2, 0x8C: 4, 0x8D: 4, 0x8E: 4, 0x8F: 4,
	0x90: 2, 0x91: 6, 0x92: 2, 0x93: 6, 0x94: 4, 0x95: 4, 0x96: 4, 0x97: 4,
	0x98: 2, 0x99: 5, 0x9A: 2, 0x9B: 5, 0x9C: 5, 0x9D: 5, 0x9E: 5, 0x9F: 5,
	0xA0: 2, 0xA1: 6, 0xA2: 2, 0xA3: 6, 0xA4: 3, 0xA5: 3, 0xA6: 3, 0xA7: 3,
	0xA8: 2, 0xA9: 2, 0xAA: 2, 0xAB: 2, 0xAC: 4, 0xAD: 4, 0xAE: 4, 0xAF: 4,
	0xB0: 2, 0xB1: 5, 0xB2: 2, 0xB3: 5, 0xB4: 4, 0xB5: 4, 0xB6: 4, 0xB7: 4,
	0xB8: 2, 0xB9: 4, 0xBA: 2, 0xBB: 4, 0xBC: 4, 0xBD: 4, 0xBE: 4, 0xBF: 4,
	0xC0: 2, 0xC1: 6, 0xC2: 2, 0xC3: 8, 0xC4: 3, 0xC5: 3, 0xC6: 5, 0xC7: 5,
	0xC8: 2, 0xC9: 2, 0xCA: 2, 0xCB: 2, 0xCC: 4, 0xCD: 4, 0xCE: 6, 0xCF: 6,
	0xD0: 2, 0xD1: 5, 0xD2: 2, 0xD3: 8, 0xD4: 4, 0xD5: 4, 0xD6: 6, 0xD7: 6,
	0xD8: 2, 0xD9: 4, 0xDA: 2, 0xDB: 7, 0xDC: 4, 0xDD: 4, 0xDE: 7, 0xDF: 7,
	0xE0: 2, 0xE1: 6, 0xE2: 2, 0xE3: 8, 0xE4: 3, 0xE5: 3, 0xE6: 5, 0xE7: 5,
	0xE8: 2, 0xE9: 2, 0xEA: 2, 0xEB: 2, 0xEC: 4, 0xED: 4, 0xEE: 6, 0xEF: 6,
	0xF0: 2, 0xF1: 5, 0xF2: 2, 0xF3: 8, 0xF4: 4, 0xF5: 4, 0xF6: 6, 0xF7: 6,
	0xF8: 2, 0xF9: 4, 0xFA: 2, 0xFB: 7, 0xFC: 4, 0xFD: 4, 0xFE: 7, 0xFF: 7,
}

// StepInfo describes the instruction Step just executed, sufficient to
// produce a nestest-style trace line without re-decoding the bus.
type StepInfo struct {
	PC       uint16
	Opcode   uint8
	Operands []uint8 // raw operand bytes, length 0-2
	Mnemonic string
	Mode     Mode
	// Resolved is the effective address/value computed for this
	// instruction's addressing mode, for modes that reference one.
	Resolved operand
	A, X, Y  uint8
	P        uint8
	S        uint8
}

// Step fetches, decodes, and executes exactly one instruction at PC,
// returning a description of what ran. It returns HaltedError without
// consuming a byte if the processor already executed a HLT-family opcode,
// and UnknownOpcodeError if the table has no entry for the fetched byte
// (unreachable for a correctly built table, since opcodes is a dense
// 256-entry array).
func (c *CPU) Step() (StepInfo, error) {
	if c.Halted {
		return StepInfo{}, &HaltedError{PC: c.PC}
	}

	startPC := c.PC
	opcode := c.Bus.Read(c.PC)
	entry := opcodes[opcode]
	if entry.Exec == nil {
		return StepInfo{}, &UnknownOpcodeError{Opcode: opcode, PC: startPC}
	}

	info := StepInfo{
		PC: startPC, Opcode: opcode, Mnemonic: entry.Mnemonic, Mode: entry.Mode,
		A: c.A, X: c.X, Y: c.Y, P: c.P, S: c.S,
	}

	operandLen := entry.Length - 1
	operandBytes := make([]uint8, operandLen)
	for i := uint8(0); i < operandLen; i++ {
		operandBytes[i] = c.Bus.Read(c.PC + 1 + uint16(i))
	}
	info.Operands = operandBytes

	c.PC += uint16(entry.Length)

	o := c.resolve(entry.Mode, operandBytes, c.PC)
	info.Resolved = o

	if err := entry.Exec(c, entry.Mode, o); err != nil {
		return info, err
	}

	c.Cycles += uint64(baseCycles[opcode])
	return info, nil
}

// TriggerNMI pushes PC and P (with B clear) and loads PC from NMIVector, as
// real hardware does on the falling edge of the NMI line. This core never
// raises one on its own (PPU vblank timing is out of scope); a host
// emulator composing this package with a PPU calls this explicitly between
// instructions.
func (c *CPU) TriggerNMI() {
	c.push(uint8(c.PC >> 8))
	c.push(uint8(c.PC))
	c.push(pushPInterrupt(c.P))
	c.P = setFlag(c.P, FlagInterrupt, true)
	c.PC = c.Bus.Read16(NMIVector)
}
