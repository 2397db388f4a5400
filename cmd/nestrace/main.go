// nestrace loads an iNES ROM, runs the CPU core starting at a configurable
// PC (defaulting to the nestest convention of 0xC000), and prints one
// nestest-format trace line per instruction to stdout until the instruction
// count limit is reached or the processor halts.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nes6502/core/cpu"
	"github.com/nes6502/core/ines"
	"github.com/nes6502/core/memory"
	"github.com/nes6502/core/trace"
)

var (
	startPC     = flag.Int("start_pc", 0xC000, "PC value to start execution at, overriding the ROM's reset vector")
	maxInstr    = flag.Int("max_instructions", 10000, "Stop after executing this many instructions")
	useResetVec = flag.Bool("use_reset_vector", false, "Ignore -start_pc and start from the ROM's reset vector instead")
	printHeader = flag.Bool("header", false, "Print the parsed iNES header before tracing")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("usage: %s [-start_pc <pc>] [-max_instructions <n>] [-header] <rom.nes>", os.Args[0])
	}
	fn := flag.Args()[0]

	f, err := os.Open(fn)
	if err != nil {
		log.Fatalf("can't open %s: %v", fn, err)
	}
	defer f.Close()

	rom, err := ines.Load(f)
	if err != nil {
		log.Fatalf("can't parse %s: %v", fn, err)
	}
	if !rom.Header.IsNROM() {
		log.Fatalf("%s declares mapper %d; only NROM (mapper 0) is supported", fn, rom.Header.Mapper())
	}
	if *printHeader {
		fmt.Printf("PRG: %d x 16KiB, CHR: %d x 8KiB, mapper %d, mirroring=%v, trainer=%v\n",
			rom.Header.PRGUnits, rom.Header.CHRUnits, rom.Header.Mapper(), rom.Header.Mirroring(), rom.Header.HasTrainer())
	}

	cart, err := memory.NewCartridge(rom.PRG)
	if err != nil {
		log.Fatalf("can't load PRG-ROM from %s: %v", fn, err)
	}
	bus := memory.NewBus(cart, nil)

	c := cpu.New(bus)
	c.Reset()
	if !*useResetVec {
		c.PC = uint16(*startPC)
	}

	for i := 0; i < *maxInstr; i++ {
		info, err := c.Step()
		if err != nil {
			if _, halted := err.(*cpu.HaltedError); halted {
				break
			}
			log.Fatalf("step %d: %v", i, err)
		}
		fmt.Printf("%s\n", trace.Line(info))
	}
}
