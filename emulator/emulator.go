// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/io"
)

const (
	AMPLIFIERS     = 5        // Machines in an amplifier ring.
	GRAVITY_TARGET = 19690720 // Output sought by the gravity assist search.
	GRAVITY_MAX    = 99       // Largest noun or verb tried.
)

// Emulator runs a program on one or more Intcode machines.
type Emulator struct {
	Verbose  bool        // If set, enables verbose logging.
	Program  cpu.Program // Program loaded into every machine.
	Parallel int         // Feedback loops evaluated at once by Sweep; 0 is unlimited.
}

// NewEmulator creates a new emulator for a program.
func NewEmulator(prog cpu.Program) (emu *Emulator) {
	emu = &Emulator{
		Program: prog,
	}

	return
}

// newCpu creates a machine with its own copy of prog.
func (emu *Emulator) newCpu(prog cpu.Program, input io.Receiver, output io.Sender) (mach *cpu.Cpu) {
	mach = cpu.NewCpu(prog, input, output)
	mach.Verbose = emu.Verbose

	return
}

// runtimeError decorates a machine failure.
func runtimeError(index int, mach *cpu.Cpu, err error) error {
	if err == nil {
		return nil
	}

	return &ErrRuntime{Machine: index, Ip: mach.Ip, Err: err}
}

// Run executes the program on a single machine with a fixed list of inputs,
// and returns every value it output.
func (emu *Emulator) Run(ctx context.Context, inputs ...int64) (outputs []int64, err error) {
	in_r, in_w := io.Pipe()
	out_r, out_w := io.Pipe()

	for _, value := range inputs {
		err = in_w.Send(value)
		if err != nil {
			return
		}
	}
	in_w.Close()

	mach := emu.newCpu(emu.Program, in_r, out_w)
	_, _, err = mach.Run(ctx)
	if err != nil {
		err = runtimeError(0, mach, err)
		return
	}

	outputs, err = out_r.Drain(ctx)
	return
}

// Diagnostic runs the program with a single system ID as input, and
// returns the final value it output.
func (emu *Emulator) Diagnostic(ctx context.Context, id int64) (code int64, err error) {
	outputs, err := emu.Run(ctx, id)
	if err != nil {
		return
	}

	if len(outputs) == 0 {
		err = ErrNoSignal
		return
	}

	if emu.Verbose {
		log.Printf("emulator: diagnostic %d: %v", id, outputs)
	}

	code = outputs[len(outputs)-1]
	return
}

// Stream runs the program on a single machine connected to a tape.
// The tape is read concurrently with execution, so programs may
// interleave input and output.
func (emu *Emulator) Stream(ctx context.Context, tape *io.Tape) (err error) {
	in_r, in_w := io.Pipe()
	out_r, out_w := io.Pipe()

	mach := emu.newCpu(emu.Program, in_r, out_w)

	// The feeder is not waited for: it may be blocked reading a tape that
	// the machine no longer needs.
	feed := make(chan error, 1)
	go func() {
		feed <- tape.Feed(in_w)
		in_w.Close()
	}()

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		_, _, err = mach.Run(gctx)
		return runtimeError(0, mach, err)
	})
	group.Go(func() error {
		return tape.Record(gctx, out_r)
	})

	err = group.Wait()

	select {
	case feed_err := <-feed:
		err = errors.Join(feed_err, err)
	default:
	}

	return
}
