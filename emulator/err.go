package emulator

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrNoSignal     = errors.New(f("no signal"))
	ErrNotFound     = errors.New(f("no noun and verb reach the target"))
	ErrNoAmplifiers = errors.New(f("no amplifiers"))
)

// ErrRuntime indicates which machine failed, and where.
type ErrRuntime struct {
	Machine int
	Ip      int64
	Err     error
}

func (err *ErrRuntime) Error() string {
	return f("machine %d ip %d %v", err.Machine, err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
