// Package ines parses the iNES ROM container format down to the minimum
// this core needs to place PRG-ROM into memory: the 16-byte header and the
// PRG-ROM payload. CHR-ROM, trainers, and mapper numbers beyond detecting
// "is this NROM" are read but not interpreted; mapper logic beyond NROM is
// out of scope.
// https://www.nesdev.org/wiki/INES
package ines

import (
	"io"

	"github.com/pkg/errors"
)

const (
	headerSize = 16
	prgUnit    = 0x4000 // 16 KiB
	chrUnit    = 0x2000 // 8 KiB
	trainerLen = 512
)

var magic = [4]byte{'N', 'E', 'S', 0x1A}

// Mirroring describes how the PPU's two nametables are mapped onto the
// physical nametable memory.
type Mirroring uint8

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorFourScreen
)

func (m Mirroring) String() string {
	switch m {
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	case MirrorFourScreen:
		return "four-screen"
	default:
		return "unknown"
	}
}

// Header is the 16-byte iNES header, decoded field-by-field.
type Header struct {
	PRGUnits uint8 // number of 16KiB PRG-ROM banks
	CHRUnits uint8 // number of 8KiB CHR-ROM banks (0 means CHR-RAM)
	Flags6   uint8
	Flags7   uint8
	Flags8   uint8 // PRG-RAM size in 8KiB units (rarely used extension)
	Flags9   uint8 // TV system (rarely used extension)
	Flags10  uint8 // TV system / PRG-RAM presence (unofficial extension)
}

// HasTrainer reports whether a 512-byte trainer precedes PRG-ROM (flags6
// bit 2).
func (h Header) HasTrainer() bool { return h.Flags6&0x04 != 0 }

// Mapper returns the 8-bit mapper number assembled from the upper nibbles
// of flags6 (low four bits of the number) and flags7 (high four bits).
func (h Header) Mapper() uint8 {
	return (h.Flags7 & 0xF0) | (h.Flags6 >> 4)
}

// IsNROM reports whether this ROM declares mapper 0, the only mapper this
// core's memory package implements.
func (h Header) IsNROM() bool { return h.Mapper() == 0 }

// Mirroring reports the nametable layout declared by flags6: bit 3
// (four-screen) overrides bit 0 (horizontal/vertical) when set.
func (h Header) Mirroring() Mirroring {
	if h.Flags6&0x08 != 0 {
		return MirrorFourScreen
	}
	if h.Flags6&0x01 != 0 {
		return MirrorVertical
	}
	return MirrorHorizontal
}

// ROM holds the parsed PRG-ROM payload (and CHR-ROM, kept for a host PPU
// this core does not implement) from one iNES file.
type ROM struct {
	Header Header
	PRG    []byte
	CHR    []byte
}

// Load reads one complete iNES file from r and returns its parsed form.
// It validates the magic number and that the declared PRG/CHR sizes are
// consistent with what follows the header, but does not validate or
// interpret mapper numbers beyond what IsNROM reports.
func Load(r io.Reader) (*ROM, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "ines: reading ROM")
	}
	return Parse(data)
}

// Parse decodes a complete iNES file already held in memory.
func Parse(data []byte) (*ROM, error) {
	if len(data) < headerSize {
		return nil, errors.Errorf("ines: file too short for header: %d bytes", len(data))
	}
	if [4]byte{data[0], data[1], data[2], data[3]} != magic {
		return nil, errors.Errorf("ines: bad magic number %x", data[0:4])
	}

	h := Header{
		PRGUnits: data[4],
		CHRUnits: data[5],
		Flags6:   data[6],
		Flags7:   data[7],
		Flags8:   data[8],
		Flags9:   data[9],
		Flags10:  data[10],
	}

	off := headerSize
	if h.HasTrainer() {
		off += trainerLen
	}

	prgLen := int(h.PRGUnits) * prgUnit
	if off+prgLen > len(data) {
		return nil, errors.Errorf("ines: PRG-ROM truncated: need %d bytes, have %d", prgLen, len(data)-off)
	}
	prg := data[off : off+prgLen]
	off += prgLen

	chrLen := int(h.CHRUnits) * chrUnit
	if off+chrLen > len(data) {
		return nil, errors.Errorf("ines: CHR-ROM truncated: need %d bytes, have %d", chrLen, len(data)-off)
	}
	chr := data[off : off+chrLen]

	return &ROM{Header: h, PRG: prg, CHR: chr}, nil
}
