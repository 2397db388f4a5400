package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOpcodeTableFullyPopulated confirms every one of the 256 opcode byte
// values has a bound Exec function and a nonzero Length. Since this table
// is a literal rather than a runtime registration step, the coverage
// invariant is checked here once, at test time; an opcode byte listed twice
// is a duplicate index in the array literal, which the compiler rejects.
func TestOpcodeTableFullyPopulated(t *testing.T) {
	for i := 0; i < 256; i++ {
		entry := opcodes[i]
		require.NotNilf(t, entry.Exec, "opcode 0x%02X has no Exec function", i)
		assert.NotZerof(t, entry.Length, "opcode 0x%02X has zero Length", i)
		assert.NotEmptyf(t, entry.Mnemonic, "opcode 0x%02X has no Mnemonic", i)
	}
}

// TestOpcodeLengthMatchesMode confirms each entry's declared Length is
// consistent with what its addressing Mode implies (1 opcode byte plus
// operandLength(mode)), catching any table entry with a well-formed but
// mismatched mode/length pair.
func TestOpcodeLengthMatchesMode(t *testing.T) {
	for i := 0; i < 256; i++ {
		entry := opcodes[i]
		want := 1 + operandLength(entry.Mode)
		assert.Equalf(t, want, entry.Length, "opcode 0x%02X (%s, %s): length mismatch", i, entry.Mnemonic, entry.Mode)
	}
}

// TestKnownOfficialOpcodeSamples spot-checks a handful of well-known
// official opcode bindings against the documented matrix.
func TestKnownOfficialOpcodeSamples(t *testing.T) {
	cases := []struct {
		op   uint8
		mnem string
		mode Mode
	}{
		{0xA9, "LDA", Immediate},
		{0x8D, "STA", Absolute},
		{0x4C, "JMP", Absolute},
		{0x6C, "JMP", Indirect},
		{0x20, "JSR", Absolute},
		{0x60, "RTS", Implied},
		{0x00, "BRK", Implied},
		{0xEA, "NOP", Implied},
	}
	for _, tc := range cases {
		entry := opcodes[tc.op]
		assert.Equal(t, tc.mnem, entry.Mnemonic, "opcode 0x%02X", tc.op)
		assert.Equal(t, tc.mode, entry.Mode, "opcode 0x%02X", tc.op)
	}
}

// TestUnofficialOpcodeSamples spot-checks the unofficial opcode families
// the core explicitly commits to supporting.
func TestUnofficialOpcodeSamples(t *testing.T) {
	cases := []struct {
		op   uint8
		mnem string
	}{
		{0xA7, "LAX"}, {0x87, "SAX"}, {0xC7, "DCP"}, {0xE7, "ISB"},
		{0x07, "SLO"}, {0x27, "RLA"}, {0x67, "RRA"}, {0x47, "SRE"},
		{0x02, "HLT"}, {0xAB, "OAL"},
	}
	for _, tc := range cases {
		entry := opcodes[tc.op]
		assert.Equal(t, tc.mnem, entry.Mnemonic, "opcode 0x%02X", tc.op)
	}
}

// TestHLTOccupiesAllTwelveSlots confirms the full JAM/KIL/HLT opcode family
// is bound, since a missing slot would silently behave as a documented
// opcode of a different mnemonic instead of locking the processor.
func TestHLTOccupiesAllTwelveSlots(t *testing.T) {
	hltOpcodes := []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2}
	for _, op := range hltOpcodes {
		assert.Equal(t, "HLT", opcodes[op].Mnemonic, "opcode 0x%02X", op)
	}
}
