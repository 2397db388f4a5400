// Package memory implements the NES CPU memory map: 2KiB of internal RAM
// (mirrored through 0x1FFF), PPU registers (mirrored every 8 bytes through
// 0x3FFF), an opaque APU/IO region, and cartridge PRG-ROM wired in by an
// NROM-style mapper.
package memory

import "fmt"

// Bus is the interface the cpu package depends on. It must be total over
// all 16 bit addresses; Read/Write never fail.
type Bus interface {
	// Read returns the byte stored at addr, after routing/mirroring.
	Read(addr uint16) uint8
	// Write stores val at addr, after routing/mirroring. Writes into
	// cartridge ROM space are silently dropped.
	Write(addr uint16, val uint8)
	// Read16 returns the little-endian 16 bit value at addr, addr+1.
	Read16(addr uint16) uint16
}

// PPUWriter is the notification hook the PPU collaborator implements to
// observe CPU reads/writes into its register window. It is called
// synchronously from Read/Write and must not block.
type PPUWriter interface {
	WritePPU(reg uint8, val uint8)
	ReadPPU(reg uint8) uint8
}

// nopPPU discards writes and reads back zero. Used when no PPU collaborator
// is wired in (the PPU itself is out of scope for this core).
type nopPPU struct{}

func (nopPPU) WritePPU(uint8, uint8) {}
func (nopPPU) ReadPPU(uint8) uint8   { return 0 }

// Cartridge exposes the PRG-ROM image backing the 0x8000-0xFFFF window.
// NROM mapping: prg is 16KiB or 32KiB; a 16KiB image mirrors at 0xC000.
type Cartridge struct {
	prg []uint8
}

// NewCartridge wraps a raw PRG-ROM image sized as NROM expects it.
func NewCartridge(prg []uint8) (*Cartridge, error) {
	switch len(prg) {
	case 0x4000, 0x8000:
	default:
		return nil, fmt.Errorf("memory: unsupported PRG-ROM size %d, want 16384 or 32768", len(prg))
	}
	return &Cartridge{prg: prg}, nil
}

// read returns the byte at a cartridge-window address (0x8000-0xFFFF),
// mirroring a 16KiB bank at 0xC000.
func (c *Cartridge) read(addr uint16) uint8 {
	off := addr - cartStart
	if len(c.prg) == 0x4000 {
		off &= 0x3FFF
	}
	return c.prg[off]
}

const (
	ramSize      = 0x0800
	ramMirrorEnd = 0x1FFF
	ppuMirrorEnd = 0x3FFF
	apuIOEnd     = 0x401F
	cartStart    = 0x8000
)

// NES implements Bus over the standard NES CPU memory map. It owns the 2KiB
// of internal RAM exclusively; the cartridge and PPU collaborators are
// supplied at construction.
type NES struct {
	ram  [ramSize]uint8
	cart *Cartridge
	ppu  PPUWriter
}

// NewBus creates a memory map backed by cart. If ppu is nil, PPU register
// writes are silently discarded and reads return 0 (the PPU is an external
// collaborator this core does not implement).
func NewBus(cart *Cartridge, ppu PPUWriter) *NES {
	if ppu == nil {
		ppu = nopPPU{}
	}
	return &NES{cart: cart, ppu: ppu}
}

// Read implements Bus.
func (b *NES) Read(addr uint16) uint8 {
	switch {
	case addr <= ramMirrorEnd:
		return b.ram[addr&(ramSize-1)]
	case addr <= ppuMirrorEnd:
		return b.ppu.ReadPPU(uint8(addr & 7))
	case addr <= apuIOEnd:
		return 0
	case addr < cartStart:
		// 0x4020-0x7FFF: cartridge-owned expansion/SRAM space this core
		// doesn't model. Opaque MMIO, same treatment as APU/IO.
		return 0
	default:
		if b.cart == nil {
			return 0
		}
		return b.cart.read(addr)
	}
}

// Write implements Bus. Writes into cartridge space are silently dropped.
func (b *NES) Write(addr uint16, val uint8) {
	switch {
	case addr <= ramMirrorEnd:
		b.ram[addr&(ramSize-1)] = val
	case addr <= ppuMirrorEnd:
		b.ppu.WritePPU(uint8(addr&7), val)
	case addr <= apuIOEnd:
		// APU/IO register space: opaque MMIO, no state kept by this core.
	case addr < cartStart:
		// 0x4020-0x7FFF: cartridge-owned expansion/SRAM space this core
		// doesn't model. Opaque MMIO, same treatment as APU/IO.
	default:
		// ROM writes are a documented no-op, not an error.
	}
}

// Read16 implements Bus.
func (b *NES) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}

// Flat is a flat 64KiB address space with no mirroring or routing, used by
// the nestest-style conformance harness where RAM and the PRG image share
// one contiguous space supplied directly by the test fixture.
type Flat struct {
	mem [1 << 16]uint8
}

// NewFlat returns a zeroed 64KiB flat memory.
func NewFlat() *Flat {
	return &Flat{}
}

// Read implements Bus.
func (f *Flat) Read(addr uint16) uint8 { return f.mem[addr] }

// Write implements Bus.
func (f *Flat) Write(addr uint16, val uint8) { f.mem[addr] = val }

// Read16 implements Bus.
func (f *Flat) Read16(addr uint16) uint16 {
	lo := uint16(f.Read(addr))
	hi := uint16(f.Read(addr + 1))
	return hi<<8 | lo
}

// LoadAt copies data into the flat memory starting at addr, wrapping at the
// 64KiB boundary. Used by tests to place a program image.
func (f *Flat) LoadAt(addr uint16, data []uint8) {
	for i, v := range data {
		f.mem[addr+uint16(i)] = v
	}
}
