package cpu

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/io"
)

func FuzzDecode(f *testing.F) {
	for _, word := range []int64{1, 2, 1002, 21101, 203, 99, 0, -1, 301, 1 << 40} {
		f.Add(word)
	}

	f.Fuzz(func(t *testing.T, word int64) {
		assert := assert.New(t)

		code, err := Decode(word)
		if err != nil {
			assert.True(errors.Is(err, ErrOpcodeInvalid) || errors.Is(err, ErrModeInvalid), err)
			return
		}

		assert.True(code.Op.Valid())
		assert.Equal(int64(code.Op), word%100)

		digits := word / 100
		for n := range code.Op.Params() {
			assert.Equal(Mode(digits%10), code.Modes[n])
			assert.LessOrEqual(code.Modes[n], MODE_RELATIVE)
			digits /= 10
		}
	})
}

func FuzzCpu(f *testing.F) {
	f.Add(int64(1), int64(0), int64(0), int64(0), int64(7))
	f.Add(int64(1107), int64(3), int64(-3), int64(7), int64(0))
	f.Add(int64(1108), int64(5), int64(5), int64(7), int64(0))
	f.Add(int64(109), int64(-3), int64(204), int64(2), int64(1))
	f.Add(int64(3), int64(0), int64(4), int64(0), int64(-9))
	f.Add(int64(1105), int64(1), int64(-1), int64(0), int64(0))

	known := []error{
		ErrOpcodeInvalid,
		ErrModeInvalid,
		ErrModeImmediateWrite,
		ErrAddress,
		io.ErrChannelClosed,
	}

	f.Fuzz(func(t *testing.T, a, b, c, d int64, input int64) {
		assert := assert.New(t)

		prog := Program{a, b, c, d, 99, 0, 0, 0}

		in_r, in_w := io.Pipe()
		assert.NoError(in_w.Send(input))
		in_w.Close()

		cpu := NewCpu(prog, in_r, nil)

		ctx := context.Background()
		for range 64 {
			if cpu.State == STATE_HALTED {
				break
			}
			err := cpu.Tick(ctx)
			if err == nil {
				continue
			}

			matched := false
			for _, want := range known {
				if errors.Is(err, want) {
					matched = true
				}
			}
			assert.True(matched, err.Error())
			return
		}

		// Comparisons only ever store booleans.
		code, err := Decode(a)
		if err == nil && (code.Op == OP_LT || code.Op == OP_EQ) && cpu.Ticks > 0 {
			dst := d
			if code.Modes[2] == MODE_RELATIVE {
				return
			}
			value, err := cpu.Memory.Read(dst)
			if err == nil && dst > 3 {
				assert.Contains([]int64{0, 1}, value)
			}
		}
	})
}
