package cpu

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted  = errors.New(f("halted"))
	ErrAddress = errors.New(f("address out of range"))

	// Instruction decode errors
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
	ErrModeInvalid        = errors.New(f("parameter mode invalid"))
	ErrModeImmediateWrite = errors.New(f("immediate mode write"))
	ErrOpcodeArg1         = errors.New(f("arg1"))
	ErrOpcodeArg2         = errors.New(f("arg2"))
	ErrOpcodeArg3         = errors.New(f("arg3"))
	ErrOpcodeIo           = errors.New(f("io"))

	// Program errors
	ErrProgramEmpty = errors.New(f("program empty"))
)

// ErrOpcode wraps the instruction word that failed to decode or execute.
type ErrOpcode int64

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v", int64(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrAddressRange is a memory access outside of [0, capacity).
type ErrAddressRange int64

func (ea ErrAddressRange) Error() string {
	return f("address %v out of range", int64(ea))
}

func (ea ErrAddressRange) Is(err error) bool {
	return err == ErrAddress
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}
