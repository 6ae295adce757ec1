package emulator

import (
	"context"
	"errors"
	"log"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/internal"
	"github.com/ezrec/intcode/io"
)

// Amplify runs one machine per phase setting, wired into a ring where
// machine n's output is machine n+1's input, and the last machine's output
// feeds back into the first.
//
// Every machine receives its phase setting before any machine runs, then
// the ring is primed with a 0 signal to the first machine. The result is
// the last value output by the final machine, once every machine has halted.
// ErrNoSignal is returned if any machine halted without output.
//
// If any machine fails, the others are cancelled and the failure is
// returned as an *ErrRuntime.
func (emu *Emulator) Amplify(ctx context.Context, phases []int64) (signal int64, err error) {
	count := len(phases)
	if count == 0 {
		err = ErrNoAmplifiers
		return
	}

	readers := make([]*io.Reader, count)
	writers := make([]*io.Writer, count)
	for n := range count {
		readers[n], writers[n] = io.Pipe()
	}

	// Phase settings first, then prime the ring.
	for n, phase := range phases {
		err = writers[n].Send(phase)
		if err != nil {
			return
		}
	}
	err = writers[0].Send(0)
	if err != nil {
		return
	}

	machs := make([]*cpu.Cpu, count)
	for n := range count {
		machs[n] = emu.newCpu(emu.Program, readers[n], writers[(n+1)%count])
	}

	errs := make([]error, count)
	group, gctx := errgroup.WithContext(ctx)
	for n, mach := range machs {
		group.Go(func() error {
			_, _, err := mach.Run(gctx)
			errs[n] = runtimeError(n, mach, err)
			return errs[n]
		})
	}

	if group.Wait() != nil {
		err = rootCause(errs)
		return
	}

	for _, mach := range machs {
		if _, ok := mach.Result(); !ok {
			err = ErrNoSignal
			return
		}
	}

	signal, _ = machs[count-1].Result()

	if emu.Verbose {
		log.Printf("emulator: phases %v -> %d", phases, signal)
	}

	return
}

// rootCause picks the failure that brought down a ring, rather than one of
// the closed channels or cancellations that followed from it.
func rootCause(errs []error) (err error) {
	for _, e := range errs {
		if e == nil {
			continue
		}
		if err == nil {
			err = e
		}
		if !errors.Is(e, io.ErrChannelClosed) && !errors.Is(e, context.Canceled) {
			return e
		}
	}

	return
}

// Sweep evaluates Amplify for every ordering of the phase settings, and
// returns the largest signal along with the ordering that produced it.
// Orderings that produce no signal are skipped; any other failure aborts
// the whole sweep. Ties go to the ordering generated first.
func (emu *Emulator) Sweep(ctx context.Context, phases []int64) (best int64, order []int64, err error) {
	perms := slices.Collect(internal.Permutations(phases))
	signals := make([]int64, len(perms))
	valid := make([]bool, len(perms))

	group, gctx := errgroup.WithContext(ctx)
	if emu.Parallel > 0 {
		group.SetLimit(emu.Parallel)
	}

	for n, perm := range perms {
		group.Go(func() error {
			signal, err := emu.Amplify(gctx, perm)
			if errors.Is(err, ErrNoSignal) {
				return nil
			}
			if err != nil {
				return err
			}
			signals[n], valid[n] = signal, true
			return nil
		})
	}

	err = group.Wait()
	if err != nil {
		return
	}

	for n, perm := range perms {
		if !valid[n] {
			continue
		}
		if order == nil || signals[n] > best {
			best, order = signals[n], perm
		}
	}

	if order == nil {
		err = ErrNoSignal
		return
	}

	return
}
