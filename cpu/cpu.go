package cpu

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/intcode/io"
)

const (
	CANCEL_TICKS = 1024 // Instructions run between context checks.
)

// State is the execution state of a machine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING  = State(0) // running
	STATE_AWAITING = State(1) // awaiting
	STATE_HALTED   = State(2) // halted
)

// Cpu is the simulation context for a single Intcode machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory       *Memory // Private address space.
	Ip           int64   // Current instruction pointer.
	RelativeBase int64   // Base for relative mode parameters.
	State        State   // Current execution state.

	Output  int64 // Most recent value output.
	Outputs int   // Count of values output.
	Ticks   int   // Instructions executed.

	input  io.Receiver
	output io.Sender
}

// NewCpu creates a machine loaded with a private copy of the program.
// Either channel may be nil: input then reads as closed, and output as
// having no receiver.
func NewCpu(prog Program, input io.Receiver, output io.Sender) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: NewMemory(prog, MEMORY_SIZE),
		input:  input,
		output: output,
	}

	return
}

// Close closes both I/O channels associated with the CPU.
func (cpu *Cpu) Close() (err error) {
	if cpu.input != nil {
		err = errors.Join(err, cpu.input.Close())
	}
	if cpu.output != nil {
		err = errors.Join(err, cpu.output.Close())
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"state", "ip", "base", "output", "ticks"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "state":
			strval = cpu.State.String()
		case "ip":
			strval = fmt.Sprintf("%d", cpu.Ip)
		case "base":
			strval = fmt.Sprintf("%d", cpu.RelativeBase)
		case "output":
			strval = "-"
			if cpu.Outputs > 0 {
				strval = fmt.Sprintf("%d (%d)", cpu.Output, cpu.Outputs)
			}
		case "ticks":
			strval = fmt.Sprintf("%d", cpu.Ticks)
		}
		text += fmt.Sprintf("% 6s: %v\n", reg, strval)
	}

	return
}

// Result returns the last value output, if there was one.
func (cpu *Cpu) Result() (value int64, ok bool) {
	return cpu.Output, cpu.Outputs > 0
}

// FetchCode fetches and decodes the instruction at the instruction pointer,
// along with its raw parameters.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	word, err := cpu.Memory.Read(cpu.Ip)
	if err != nil {
		return
	}

	code, err = Decode(word)
	if err != nil {
		err = errors.Join(ErrOpcode(word), err)
		return
	}

	code.Params = make([]int64, code.Op.Params())
	for n := range code.Params {
		code.Params[n], err = cpu.Memory.Read(cpu.Ip + 1 + int64(n))
		if err != nil {
			err = errors.Join(ErrOpcode(word), err)
			return
		}
	}

	return
}

// Tick executes a single instruction cycle.
func (cpu *Cpu) Tick(ctx context.Context) (err error) {
	if cpu.State == STATE_HALTED {
		err = ErrHalted
		return
	}

	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	err = cpu.Execute(ctx, code)
	return
}

// Run ticks the machine until it halts, then closes its channels.
// The result is the last value output, if any.
func (cpu *Cpu) Run(ctx context.Context) (value int64, ok bool, err error) {
	defer cpu.Close()

	for cpu.State != STATE_HALTED {
		if cpu.Ticks%CANCEL_TICKS == 0 {
			err = ctx.Err()
			if err != nil {
				return
			}
		}
		err = cpu.Tick(ctx)
		if err != nil {
			if cpu.Verbose {
				log.Printf("cpu: %v", err)
			}
			return
		}
	}

	value, ok = cpu.Result()
	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(ctx context.Context, code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code.Word), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%04d: %v", cpu.Ip, code)
	}

	if len(code.Params) != code.Op.Params() {
		err = ErrOpcodeInvalid
		return
	}

	next_ip := cpu.Ip + int64(code.Op.Width())

	switch code.Op {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		var a, b, dst int64
		a, err = cpu.getValue(code, 0)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		b, err = cpu.getValue(code, 1)
		if err != nil {
			err = errors.Join(ErrOpcodeArg2, err)
			return
		}
		dst, err = cpu.getAddress(code, 2)
		if err == nil {
			err = cpu.Memory.Write(dst, cpu.doAlu(code.Op, a, b))
		}
		if err != nil {
			err = errors.Join(ErrOpcodeArg3, err)
			return
		}
	case OP_IN:
		var dst, value int64
		dst, err = cpu.getAddress(code, 0)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		value, err = cpu.receive(ctx)
		if err != nil {
			err = errors.Join(ErrOpcodeIo, err)
			return
		}
		err = cpu.Memory.Write(dst, value)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
	case OP_OUT:
		var value int64
		value, err = cpu.getValue(code, 0)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		cpu.Output = value
		cpu.Outputs++
		err = cpu.send(value)
		if err == io.ErrChannelDropped {
			// Nobody will ever read this; treat as a halt.
			if cpu.Verbose {
				log.Printf("cpu: output %d has no receiver, halting", value)
			}
			err = nil
			cpu.State = STATE_HALTED
			return
		}
		if err != nil {
			err = errors.Join(ErrOpcodeIo, err)
			return
		}
	case OP_JT, OP_JF:
		var cond, target int64
		cond, err = cpu.getValue(code, 0)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		target, err = cpu.getValue(code, 1)
		if err != nil {
			err = errors.Join(ErrOpcodeArg2, err)
			return
		}
		if (cond != 0) == (code.Op == OP_JT) {
			next_ip = target
		}
	case OP_ARB:
		var delta int64
		delta, err = cpu.getValue(code, 0)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		var base int64
		base, err = addRelative(cpu.RelativeBase, delta)
		if err != nil {
			err = errors.Join(ErrOpcodeArg1, err)
			return
		}
		cpu.RelativeBase = base
	case OP_HALT:
		cpu.State = STATE_HALTED
		if cpu.Verbose {
			log.Printf("cpu: halt")
		}
		return
	default:
		err = ErrOpcodeInvalid
		return
	}

	cpu.Ip = next_ip
	cpu.Ticks++

	return
}

// receive blocks on the input channel.
func (cpu *Cpu) receive(ctx context.Context) (value int64, err error) {
	if cpu.input == nil {
		err = io.ErrChannelClosed
		return
	}

	cpu.State = STATE_AWAITING
	value, err = cpu.input.Receive(ctx)
	cpu.State = STATE_RUNNING

	return
}

// send to the output channel.
func (cpu *Cpu) send(value int64) (err error) {
	if cpu.output == nil {
		err = io.ErrChannelDropped
		return
	}

	err = cpu.output.Send(value)
	return
}

// getValue gets the value of parameter n, based on its mode.
func (cpu *Cpu) getValue(code Code, n int) (value int64, err error) {
	param := code.Params[n]

	switch code.Modes[n] {
	case MODE_POSITION:
		value, err = cpu.Memory.Read(param)
	case MODE_IMMEDIATE:
		value = param
	case MODE_RELATIVE:
		var addr int64
		addr, err = addRelative(cpu.RelativeBase, param)
		if err == nil {
			value, err = cpu.Memory.Read(addr)
		}
	default:
		err = ErrModeInvalid
	}

	return
}

// getAddress gets the address parameter n writes to.
func (cpu *Cpu) getAddress(code Code, n int) (addr int64, err error) {
	param := code.Params[n]

	switch code.Modes[n] {
	case MODE_POSITION:
		addr = param
	case MODE_RELATIVE:
		addr, err = addRelative(cpu.RelativeBase, param)
	case MODE_IMMEDIATE:
		err = ErrModeImmediateWrite
	default:
		err = ErrModeInvalid
	}

	return
}

// addRelative offsets base, failing rather than wrapping around.
func addRelative(base int64, offset int64) (addr int64, err error) {
	addr = base + offset
	if (offset > 0 && addr < base) || (offset < 0 && addr > base) {
		addr = 0
		err = ErrAddressRange(base)
	}

	return
}

// doAlu performs the requested arithmetic or comparison.
func (cpu *Cpu) doAlu(op Opcode, a int64, b int64) (output int64) {
	switch op {
	case OP_ADD:
		output = a + b
	case OP_MUL:
		output = a * b
	case OP_LT:
		if a < b {
			output = 1
		}
	case OP_EQ:
		if a == b {
			output = 1
		}
	}

	return
}
