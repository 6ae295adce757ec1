package emulator

import (
	"context"
	"log"

	"github.com/ezrec/intcode/cpu"
)

// Execute runs a patched copy of the program on a machine with no I/O,
// and returns its final memory.
func (emu *Emulator) Execute(ctx context.Context, patches map[int64]int64) (mem *cpu.Memory, err error) {
	prog := emu.Program.Clone()
	for addr, value := range patches {
		err = prog.Patch(addr, value)
		if err != nil {
			return
		}
	}

	mach := emu.newCpu(prog, nil, nil)
	_, _, err = mach.Run(ctx)
	if err != nil {
		err = runtimeError(0, mach, err)
		return
	}

	mem = mach.Memory
	return
}

// Gravity runs the program with a noun and verb, returning address 0.
func (emu *Emulator) Gravity(ctx context.Context, noun int64, verb int64) (value int64, err error) {
	mem, err := emu.Execute(ctx, map[int64]int64{1: noun, 2: verb})
	if err != nil {
		return
	}

	value, err = mem.Read(0)
	return
}

// SearchGravity finds the noun and verb, each in 0..GRAVITY_MAX, for which
// Gravity returns the target.
func (emu *Emulator) SearchGravity(ctx context.Context, target int64) (noun int64, verb int64, err error) {
	for noun = 0; noun <= GRAVITY_MAX; noun++ {
		for verb = 0; verb <= GRAVITY_MAX; verb++ {
			var value int64
			value, err = emu.Gravity(ctx, noun, verb)
			if err != nil {
				return
			}
			if value == target {
				if emu.Verbose {
					log.Printf("emulator: noun %d verb %d -> %d", noun, verb, value)
				}
				return
			}
		}
	}

	noun, verb = 0, 0
	err = ErrNotFound
	return
}
