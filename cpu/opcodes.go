// Package-level opcode table: a dense 256-entry literal mapping each opcode
// byte to its mnemonic, addressing mode, instruction length (opcode byte +
// operand bytes), and the function implementing its effect. Built once as a
// plain data literal per the table-driven architecture called for in the
// design notes (no class hierarchy, no reflection-based registry).
//
// Layout matches the documented NMOS 6502 opcode matrix, including the
// "unofficial" opcodes exercised by real NES software and by nestest:
// http://www.oxyron.de/html/opcodes02.html
// http://nesdev.com/6502_cpu.txt
package cpu

// execFunc is the per-opcode handler. m is the addressing mode actually
// dispatched (needed by ASL/LSR/ROL/ROR to distinguish Accumulator from a
// memory operand) and o is the resolved operand.
type execFunc func(c *CPU, m Mode, o operand) error

// opcodeEntry is one slot of the 256-entry opcode table.
type opcodeEntry struct {
	Mnemonic string
	Mode     Mode
	Length   uint8
	Exec     execFunc
}

// opcodes is the full 256-entry dense opcode table, indexed by opcode byte.
var opcodes = [256]opcodeEntry{
	0x00: {"BRK", Implied, 2, (*CPU).opBRK},
	0x01: {"ORA", IndirectX, 2, (*CPU).opORA},
	0x02: {"HLT", Implied, 1, (*CPU).opHLT},
	0x03: {"SLO", IndirectX, 2, (*CPU).opSLO},
	0x04: {"NOP", ZeroPage, 2, (*CPU).opNOP},
	0x05: {"ORA", ZeroPage, 2, (*CPU).opORA},
	0x06: {"ASL", ZeroPage, 2, (*CPU).opASL},
	0x07: {"SLO", ZeroPage, 2, (*CPU).opSLO},
	0x08: {"PHP", Implied, 1, (*CPU).opPHP},
	0x09: {"ORA", Immediate, 2, (*CPU).opORA},
	0x0A: {"ASL", Accumulator, 1, (*CPU).opASL},
	0x0B: {"ANC", Immediate, 2, (*CPU).opANC},
	0x0C: {"NOP", Absolute, 3, (*CPU).opNOP},
	0x0D: {"ORA", Absolute, 3, (*CPU).opORA},
	0x0E: {"ASL", Absolute, 3, (*CPU).opASL},
	0x0F: {"SLO", Absolute, 3, (*CPU).opSLO},
	0x10: {"BPL", Relative, 2, (*CPU).opBPL},
	0x11: {"ORA", IndirectY, 2, (*CPU).opORA},
	0x12: {"HLT", Implied, 1, (*CPU).opHLT},
	0x13: {"SLO", IndirectY, 2, (*CPU).opSLO},
	0x14: {"NOP", ZeroPageX, 2, (*CPU).opNOP},
	0x15: {"ORA", ZeroPageX, 2, (*CPU).opORA},
	0x16: {"ASL", ZeroPageX, 2, (*CPU).opASL},
	0x17: {"SLO", ZeroPageX, 2, (*CPU).opSLO},
	0x18: {"CLC", Implied, 1, (*CPU).opCLC},
	0x19: {"ORA", AbsoluteY, 3, (*CPU).opORA},
	0x1A: {"NOP", Implied, 1, (*CPU).opNOP},
	0x1B: {"SLO", AbsoluteY, 3, (*CPU).opSLO},
	0x1C: {"NOP", AbsoluteX, 3, (*CPU).opNOP},
	0x1D: {"ORA", AbsoluteX, 3, (*CPU).opORA},
	0x1E: {"ASL", AbsoluteX, 3, (*CPU).opASL},
	0x1F: {"SLO", AbsoluteX, 3, (*CPU).opSLO},
	0x20: {"JSR", Absolute, 3, (*CPU).opJSR},
	0x21: {"AND", IndirectX, 2, (*CPU).opAND},
	0x22: {"HLT", Implied, 1, (*CPU).opHLT},
	0x23: {"RLA", IndirectX, 2, (*CPU).opRLA},
	0x24: {"BIT", ZeroPage, 2, (*CPU).opBIT},
	0x25: {"AND", ZeroPage, 2, (*CPU).opAND},
	0x26: {"ROL", ZeroPage, 2, (*CPU).opROL},
	0x27: {"RLA", ZeroPage, 2, (*CPU).opRLA},
	0x28: {"PLP", Implied, 1, (*CPU).opPLP},
	0x29: {"AND", Immediate, 2, (*CPU).opAND},
	0x2A: {"ROL", Accumulator, 1, (*CPU).opROL},
	0x2B: {"ANC", Immediate, 2, (*CPU).opANC},
	0x2C: {"BIT", Absolute, 3, (*CPU).opBIT},
	0x2D: {"AND", Absolute, 3, (*CPU).opAND},
	0x2E: {"ROL", Absolute, 3, (*CPU).opROL},
	0x2F: {"RLA", Absolute, 3, (*CPU).opRLA},
	0x30: {"BMI", Relative, 2, (*CPU).opBMI},
	0x31: {"AND", IndirectY, 2, (*CPU).opAND},
	0x32: {"HLT", Implied, 1, (*CPU).opHLT},
	0x33: {"RLA", IndirectY, 2, (*CPU).opRLA},
	0x34: {"NOP", ZeroPageX, 2, (*CPU).opNOP},
	0x35: {"AND", ZeroPageX, 2, (*CPU).opAND},
	0x36: {"ROL", ZeroPageX, 2, (*CPU).opROL},
	0x37: {"RLA", ZeroPageX, 2, (*CPU).opRLA},
	0x38: {"SEC", Implied, 1, (*CPU).opSEC},
	0x39: {"AND", AbsoluteY, 3, (*CPU).opAND},
	0x3A: {"NOP", Implied, 1, (*CPU).opNOP},
	0x3B: {"RLA", AbsoluteY, 3, (*CPU).opRLA},
	0x3C: {"NOP", AbsoluteX, 3, (*CPU).opNOP},
	0x3D: {"AND", AbsoluteX, 3, (*CPU).opAND},
	0x3E: {"ROL", AbsoluteX, 3, (*CPU).opROL},
	0x3F: {"RLA", AbsoluteX, 3, (*CPU).opRLA},
	0x40: {"RTI", Implied, 1, (*CPU).opRTI},
	0x41: {"EOR", IndirectX, 2, (*CPU).opEOR},
	0x42: {"HLT", Implied, 1, (*CPU).opHLT},
	0x43: {"SRE", IndirectX, 2, (*CPU).opSRE},
	0x44: {"NOP", ZeroPage, 2, (*CPU).opNOP},
	0x45: {"EOR", ZeroPage, 2, (*CPU).opEOR},
	0x46: {"LSR", ZeroPage, 2, (*CPU).opLSR},
	0x47: {"SRE", ZeroPage, 2, (*CPU).opSRE},
	0x48: {"PHA", Implied, 1, (*CPU).opPHA},
	0x49: {"EOR", Immediate, 2, (*CPU).opEOR},
	0x4A: {"LSR", Accumulator, 1, (*CPU).opLSR},
	0x4B: {"ALR", Immediate, 2, (*CPU).opALR},
	0x4C: {"JMP", Absolute, 3, (*CPU).opJMP},
	0x4D: {"EOR", Absolute, 3, (*CPU).opEOR},
	0x4E: {"LSR", Absolute, 3, (*CPU).opLSR},
	0x4F: {"SRE", Absolute, 3, (*CPU).opSRE},
	0x50: {"BVC", Relative, 2, (*CPU).opBVC},
	0x51: {"EOR", IndirectY, 2, (*CPU).opEOR},
	0x52: {"HLT", Implied, 1, (*CPU).opHLT},
	0x53: {"SRE", IndirectY, 2, (*CPU).opSRE},
	0x54: {"NOP", ZeroPageX, 2, (*CPU).opNOP},
	0x55: {"EOR", ZeroPageX, 2, (*CPU).opEOR},
	0x56: {"LSR", ZeroPageX, 2, (*CPU).opLSR},
	0x57: {"SRE", ZeroPageX, 2, (*CPU).opSRE},
	0x58: {"CLI", Implied, 1, (*CPU).opCLI},
	0x59: {"EOR", AbsoluteY, 3, (*CPU).opEOR},
	0x5A: {"NOP", Implied, 1, (*CPU).opNOP},
	0x5B: {"SRE", AbsoluteY, 3, (*CPU).opSRE},
	0x5C: {"NOP", AbsoluteX, 3, (*CPU).opNOP},
	0x5D: {"EOR", AbsoluteX, 3, (*CPU).opEOR},
	0x5E: {"LSR", AbsoluteX, 3, (*CPU).opLSR},
	0x5F: {"SRE", AbsoluteX, 3, (*CPU).opSRE},
	0x60: {"RTS", Implied, 1, (*CPU).opRTS},
	0x61: {"ADC", IndirectX, 2, (*CPU).opADC},
	0x62: {"HLT", Implied, 1, (*CPU).opHLT},
	0x63: {"RRA", IndirectX, 2, (*CPU).opRRA},
	0x64: {"NOP", ZeroPage, 2, (*CPU).opNOP},
	0x65: {"ADC", ZeroPage, 2, (*CPU).opADC},
	0x66: {"ROR", ZeroPage, 2, (*CPU).opROR},
	0x67: {"RRA", ZeroPage, 2, (*CPU).opRRA},
	0x68: {"PLA", Implied, 1, (*CPU).opPLA},
	0x69: {"ADC", Immediate, 2, (*CPU).opADC},
	0x6A: {"ROR", Accumulator, 1, (*CPU).opROR},
	0x6B: {"ARR", Immediate, 2, (*CPU).opARR},
	0x6C: {"JMP", Indirect, 3, (*CPU).opJMP},
	0x6D: {"ADC", Absolute, 3, (*CPU).opADC},
	0x6E: {"ROR", Absolute, 3, (*CPU).opROR},
	0x6F: {"RRA", Absolute, 3, (*CPU).opRRA},
	0x70: {"BVS", Relative, 2, (*CPU).opBVS},
	0x71: {"ADC", IndirectY, 2, (*CPU).opADC},
	0x72: {"HLT", Implied, 1, (*CPU).opHLT},
	0x73: {"RRA", IndirectY, 2, (*CPU).opRRA},
	0x74: {"NOP", ZeroPageX, 2, (*CPU).opNOP},
	0x75: {"ADC", ZeroPageX, 2, (*CPU).opADC},
	0x76: {"ROR", ZeroPageX, 2, (*CPU).opROR},
	0x77: {"RRA", ZeroPageX, 2, (*CPU).opRRA},
	0x78: {"SEI", Implied, 1, (*CPU).opSEI},
	0x79: {"ADC", AbsoluteY, 3, (*CPU).opADC},
	0x7A: {"NOP", Implied, 1, (*CPU).opNOP},
	0x7B: {"RRA", AbsoluteY, 3, (*CPU).opRRA},
	0x7C: {"NOP", AbsoluteX, 3, (*CPU).opNOP},
	0x7D: {"ADC", AbsoluteX, 3, (*CPU).opADC},
	0x7E: {"ROR", AbsoluteX, 3, (*CPU).opROR},
	0x7F: {"RRA", AbsoluteX, 3, (*CPU).opRRA},
	0x80: {"NOP", Immediate, 2, (*CPU).opNOP},
	0x81: {"STA", IndirectX, 2, (*CPU).opSTA},
	0x82: {"NOP", Immediate, 2, (*CPU).opNOP},
	0x83: {"SAX", IndirectX, 2, (*CPU).opSAX},
	0x84: {"STY", ZeroPage, 2, (*CPU).opSTY},
	0x85: {"STA", ZeroPage, 2, (*CPU).opSTA},
	0x86: {"STX", ZeroPage, 2, (*CPU).opSTX},
	0x87: {"SAX", ZeroPage, 2, (*CPU).opSAX},
	0x88: {"DEY", Implied, 1, (*CPU).opDEY},
	0x89: {"NOP", Immediate, 2, (*CPU).opNOP},
	0x8A: {"TXA", Implied, 1, (*CPU).opTXA},
	0x8B: {"XAA", Immediate, 2, (*CPU).opXAA},
	0x8C: {"STY", Absolute, 3, (*CPU).opSTY},
	0x8D: {"STA", Absolute, 3, (*CPU).opSTA},
	0x8E: {"STX", Absolute, 3, (*CPU).opSTX},
	0x8F: {"SAX", Absolute, 3, (*CPU).opSAX},
	0x90: {"BCC", Relative, 2, (*CPU).opBCC},
	0x91: {"STA", IndirectY, 2, (*CPU).opSTA},
	0x92: {"HLT", Implied, 1, (*CPU).opHLT},
	0x93: {"AHX", IndirectY, 2, (*CPU).opAHX},
	0x94: {"STY", ZeroPageX, 2, (*CPU).opSTY},
	0x95: {"STA", ZeroPageX, 2, (*CPU).opSTA},
	0x96: {"STX", ZeroPageY, 2, (*CPU).opSTX},
	0x97: {"SAX", ZeroPageY, 2, (*CPU).opSAX},
	0x98: {"TYA", Implied, 1, (*CPU).opTYA},
	0x99: {"STA", AbsoluteY, 3, (*CPU).opSTA},
	0x9A: {"TXS", Implied, 1, (*CPU).opTXS},
	0x9B: {"TAS", AbsoluteY, 3, (*CPU).opTAS},
	0x9C: {"SHY", AbsoluteX, 3, (*CPU).opSHY},
	0x9D: {"STA", AbsoluteX, 3, (*CPU).opSTA},
	0x9E: {"SHX", AbsoluteY, 3, (*CPU).opSHX},
	0x9F: {"AHX", AbsoluteY, 3, (*CPU).opAHX},
	0xA0: {"LDY", Immediate, 2, (*CPU).opLDY},
	0xA1: {"LDA", IndirectX, 2, (*CPU).opLDA},
	0xA2: {"LDX", Immediate, 2, (*CPU).opLDX},
	0xA3: {"LAX", IndirectX, 2, (*CPU).opLAX},
	0xA4: {"LDY", ZeroPage, 2, (*CPU).opLDY},
	0xA5: {"LDA", ZeroPage, 2, (*CPU).opLDA},
	0xA6: {"LDX", ZeroPage, 2, (*CPU).opLDX},
	0xA7: {"LAX", ZeroPage, 2, (*CPU).opLAX},
	0xA8: {"TAY", Implied, 1, (*CPU).opTAY},
	0xA9: {"LDA", Immediate, 2, (*CPU).opLDA},
	0xAA: {"TAX", Implied, 1, (*CPU).opTAX},
	0xAB: {"OAL", Immediate, 2, (*CPU).opOAL},
	0xAC: {"LDY", Absolute, 3, (*CPU).opLDY},
	0xAD: {"LDA", Absolute, 3, (*CPU).opLDA},
	0xAE: {"LDX", Absolute, 3, (*CPU).opLDX},
	0xAF: {"LAX", Absolute, 3, (*CPU).opLAX},
	0xB0: {"BCS", Relative, 2, (*CPU).opBCS},
	0xB1: {"LDA", IndirectY, 2, (*CPU).opLDA},
	0xB2: {"HLT", Implied, 1, (*CPU).opHLT},
	0xB3: {"LAX", IndirectY, 2, (*CPU).opLAX},
	0xB4: {"LDY", ZeroPageX, 2, (*CPU).opLDY},
	0xB5: {"LDA", ZeroPageX, 2, (*CPU).opLDA},
	0xB6: {"LDX", ZeroPageY, 2, (*CPU).opLDX},
	0xB7: {"LAX", ZeroPageY, 2, (*CPU).opLAX},
	0xB8: {"CLV", Implied, 1, (*CPU).opCLV},
	0xB9: {"LDA", AbsoluteY, 3, (*CPU).opLDA},
	0xBA: {"TSX", Implied, 1, (*CPU).opTSX},
	0xBB: {"LAS", AbsoluteY, 3, (*CPU).opLAS},
	0xBC: {"LDY", AbsoluteX, 3, (*CPU).opLDY},
	0xBD: {"LDA", AbsoluteX, 3, (*CPU).opLDA},
	0xBE: {"LDX", AbsoluteY, 3, (*CPU).opLDX},
	0xBF: {"LAX", AbsoluteY, 3, (*CPU).opLAX},
	0xC0: {"CPY", Immediate, 2, (*CPU).opCPY},
	0xC1: {"CMP", IndirectX, 2, (*CPU).opCMP},
	0xC2: {"NOP", Immediate, 2, (*CPU).opNOP},
	0xC3: {"DCP", IndirectX, 2, (*CPU).opDCP},
	0xC4: {"CPY", ZeroPage, 2, (*CPU).opCPY},
	0xC5: {"CMP", ZeroPage, 2, (*CPU).opCMP},
	0xC6: {"DEC", ZeroPage, 2, (*CPU).opDEC},
	0xC7: {"DCP", ZeroPage, 2, (*CPU).opDCP},
	0xC8: {"INY", Implied, 1, (*CPU).opINY},
	0xC9: {"CMP", Immediate, 2, (*CPU).opCMP},
	0xCA: {"DEX", Implied, 1, (*CPU).opDEX},
	0xCB: {"AXS", Immediate, 2, (*CPU).opAXS},
	0xCC: {"CPY", Absolute, 3, (*CPU).opCPY},
	0xCD: {"CMP", Absolute, 3, (*CPU).opCMP},
	0xCE: {"DEC", Absolute, 3, (*CPU).opDEC},
	0xCF: {"DCP", Absolute, 3, (*CPU).opDCP},
	0xD0: {"BNE", Relative, 2, (*CPU).opBNE},
	0xD1: {"CMP", IndirectY, 2, (*CPU).opCMP},
	0xD2: {"HLT", Implied, 1, (*CPU).opHLT},
	0xD3: {"DCP", IndirectY, 2, (*CPU).opDCP},
	0xD4: {"NOP", ZeroPageX, 2, (*CPU).opNOP},
	0xD5: {"CMP", ZeroPageX, 2, (*CPU).opCMP},
	0xD6: {"DEC", ZeroPageX, 2, (*CPU).opDEC},
	0xD7: {"DCP", ZeroPageX, 2, (*CPU).opDCP},
	0xD8: {"CLD", Implied, 1, (*CPU).opCLD},
	0xD9: {"CMP", AbsoluteY, 3, (*CPU).opCMP},
	0xDA: {"NOP", Implied, 1, (*CPU).opNOP},
	0xDB: {"DCP", AbsoluteY, 3, (*CPU).opDCP},
	0xDC: {"NOP", AbsoluteX, 3, (*CPU).opNOP},
	0xDD: {"CMP", AbsoluteX, 3, (*CPU).opCMP},
	0xDE: {"DEC", AbsoluteX, 3, (*CPU).opDEC},
	0xDF: {"DCP", AbsoluteX, 3, (*CPU).opDCP},
	0xE0: {"CPX", Immediate, 2, (*CPU).opCPX},
	0xE1: {"SBC", IndirectX, 2, (*CPU).opSBC},
	0xE2: {"NOP", Immediate, 2, (*CPU).opNOP},
	0xE3: {"ISB", IndirectX, 2, (*CPU).opISB},
	0xE4: {"CPX", ZeroPage, 2, (*CPU).opCPX},
	0xE5: {"SBC", ZeroPage, 2, (*CPU).opSBC},
	0xE6: {"INC", ZeroPage, 2, (*CPU).opINC},
	0xE7: {"ISB", ZeroPage, 2, (*CPU).opISB},
	0xE8: {"INX", Implied, 1, (*CPU).opINX},
	0xE9: {"SBC", Immediate, 2, (*CPU).opSBC},
	0xEA: {"NOP", Implied, 1, (*CPU).opNOP},
	0xEB: {"SBC", Immediate, 2, (*CPU).opSBC},
	0xEC: {"CPX", Absolute, 3, (*CPU).opCPX},
	0xED: {"SBC", Absolute, 3, (*CPU).opSBC},
	0xEE: {"INC", Absolute, 3, (*CPU).opINC},
	0xEF: {"ISB", Absolute, 3, (*CPU).opISB},
	0xF0: {"BEQ", Relative, 2, (*CPU).opBEQ},
	0xF1: {"SBC", IndirectY, 2, (*CPU).opSBC},
	0xF2: {"HLT", Implied, 1, (*CPU).opHLT},
	0xF3: {"ISB", IndirectY, 2, (*CPU).opISB},
	0xF4: {"NOP", ZeroPageX, 2, (*CPU).opNOP},
	0xF5: {"SBC", ZeroPageX, 2, (*CPU).opSBC},
	0xF6: {"INC", ZeroPageX, 2, (*CPU).opINC},
	0xF7: {"ISB", ZeroPageX, 2, (*CPU).opISB},
	0xF8: {"SED", Implied, 1, (*CPU).opSED},
	0xF9: {"SBC", AbsoluteY, 3, (*CPU).opSBC},
	0xFA: {"NOP", Implied, 1, (*CPU).opNOP},
	0xFB: {"ISB", AbsoluteY, 3, (*CPU).opISB},
	0xFC: {"NOP", AbsoluteX, 3, (*CPU).opNOP},
	0xFD: {"SBC", AbsoluteX, 3, (*CPU).opSBC},
	0xFE: {"INC", AbsoluteX, 3, (*CPU).opINC},
	0xFF: {"ISB", AbsoluteX, 3, (*CPU).opISB},
}
