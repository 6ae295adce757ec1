package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word  int64
		op    Opcode
		modes [MAX_PARAMS]Mode
	}){
		{1002, OP_MUL, [MAX_PARAMS]Mode{MODE_POSITION, MODE_IMMEDIATE, MODE_POSITION}},
		{1, OP_ADD, [MAX_PARAMS]Mode{}},
		{21101, OP_ADD, [MAX_PARAMS]Mode{MODE_IMMEDIATE, MODE_IMMEDIATE, MODE_RELATIVE}},
		{203, OP_IN, [MAX_PARAMS]Mode{MODE_RELATIVE}},
		{104, OP_OUT, [MAX_PARAMS]Mode{MODE_IMMEDIATE}},
		{1205, OP_JT, [MAX_PARAMS]Mode{MODE_RELATIVE, MODE_IMMEDIATE}},
		{6, OP_JF, [MAX_PARAMS]Mode{}},
		{1107, OP_LT, [MAX_PARAMS]Mode{MODE_IMMEDIATE, MODE_IMMEDIATE}},
		{20208, OP_EQ, [MAX_PARAMS]Mode{MODE_RELATIVE, MODE_POSITION, MODE_RELATIVE}},
		{109, OP_ARB, [MAX_PARAMS]Mode{MODE_IMMEDIATE}},
		{99, OP_HALT, [MAX_PARAMS]Mode{}},
		// Unused mode digits are ignored.
		{90104, OP_OUT, [MAX_PARAMS]Mode{MODE_IMMEDIATE}},
		{399, OP_HALT, [MAX_PARAMS]Mode{}},
	}

	for _, entry := range table {
		code, err := Decode(entry.word)
		assert.NoError(err, entry.word)
		assert.Equal(entry.word, code.Word)
		assert.Equal(entry.op, code.Op, entry.word)
		assert.Equal(entry.modes, code.Modes, entry.word)
		assert.Nil(code.Params, entry.word)
	}
}

func TestDecode_Invalid(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []int64{0, 10, 42, 98, 100, 1000, -1, -1002} {
		_, err := Decode(word)
		assert.ErrorIs(err, ErrOpcodeInvalid, word)
	}

	for _, word := range []int64{301, 3002, 40001, 901, 304} {
		_, err := Decode(word)
		assert.ErrorIs(err, ErrModeInvalid, word)
	}
}

func TestOpcode_Width(t *testing.T) {
	assert := assert.New(t)

	widths := map[Opcode]int{
		OP_ADD:  4,
		OP_MUL:  4,
		OP_IN:   2,
		OP_OUT:  2,
		OP_JT:   3,
		OP_JF:   3,
		OP_LT:   4,
		OP_EQ:   4,
		OP_ARB:  2,
		OP_HALT: 1,
	}

	for op, width := range widths {
		assert.True(op.Valid(), op.String())
		assert.Equal(width, op.Width(), op.String())
	}

	assert.False(Opcode(0).Valid())
	assert.False(Opcode(10).Valid())
}

func TestOpcode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("add", OP_ADD.String())
	assert.Equal("eq", OP_EQ.String())
	assert.Equal("arb", OP_ARB.String())
	assert.Equal("halt", OP_HALT.String())
	assert.Equal("Opcode(42)", Opcode(42).String())
	assert.Equal("rel", MODE_RELATIVE.String())
	assert.Equal("awaiting", STATE_AWAITING.String())
}

func TestCode_String(t *testing.T) {
	assert := assert.New(t)

	code := Code{
		Word:   21002,
		Op:     OP_MUL,
		Modes:  [MAX_PARAMS]Mode{MODE_POSITION, MODE_IMMEDIATE, MODE_RELATIVE},
		Params: []int64{12, 3, -1},
	}
	assert.Equal("mul [12] #3 @-1", code.String())

	assert.Equal("halt", Code{Word: 99, Op: OP_HALT}.String())
}
