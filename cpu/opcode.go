package cpu

import (
	"fmt"
	"strings"
)

// Opcode is the operation selector, the low two decimal digits of a word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD  = Opcode(1)  // add
	OP_MUL  = Opcode(2)  // mul
	OP_IN   = Opcode(3)  // in
	OP_OUT  = Opcode(4)  // out
	OP_JT   = Opcode(5)  // jt
	OP_JF   = Opcode(6)  // jf
	OP_LT   = Opcode(7)  // lt
	OP_EQ   = Opcode(8)  // eq
	OP_ARB  = Opcode(9)  // arb
	OP_HALT = Opcode(99) // halt
)

// Mode is a parameter addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_POSITION  = Mode(0) // pos
	MODE_IMMEDIATE = Mode(1) // imm
	MODE_RELATIVE  = Mode(2) // rel
)

// MAX_PARAMS is the most parameters any opcode takes.
const MAX_PARAMS = 3

var _op_params = map[Opcode]int{
	OP_ADD:  3,
	OP_MUL:  3,
	OP_IN:   1,
	OP_OUT:  1,
	OP_JT:   2,
	OP_JF:   2,
	OP_LT:   3,
	OP_EQ:   3,
	OP_ARB:  1,
	OP_HALT: 0,
}

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() (ok bool) {
	_, ok = _op_params[op]
	return
}

// Params returns the number of parameters following the opcode word.
func (op Opcode) Params() int {
	return _op_params[op]
}

// Width returns the instruction width in words, including the opcode word.
func (op Opcode) Width() int {
	return 1 + op.Params()
}

// Code is a decoded instruction with its raw parameters.
type Code struct {
	Word   int64
	Op     Opcode
	Modes  [MAX_PARAMS]Mode
	Params []int64
}

// Decode splits an instruction word into its opcode and parameter modes.
// Memory is never consulted; the parameters are filled in by the fetch.
func Decode(word int64) (code Code, err error) {
	code.Word = word

	if word < 0 {
		err = ErrOpcodeInvalid
		return
	}

	code.Op = Opcode(word % 100)
	if !code.Op.Valid() {
		err = ErrOpcodeInvalid
		return
	}

	digits := word / 100
	for n := range MAX_PARAMS {
		mode := Mode(digits % 10)
		digits /= 10
		if n >= code.Op.Params() {
			continue
		}
		if mode > MODE_RELATIVE {
			err = ErrModeInvalid
			return
		}
		code.Modes[n] = mode
	}

	return
}

// String returns the instruction in a readable form, ie 'mul [12] #3 @-1'.
func (code Code) String() string {
	words := []string{code.Op.String()}
	for n, param := range code.Params {
		switch code.Modes[n] {
		case MODE_IMMEDIATE:
			words = append(words, fmt.Sprintf("#%d", param))
		case MODE_RELATIVE:
			words = append(words, fmt.Sprintf("@%d", param))
		default:
			words = append(words, fmt.Sprintf("[%d]", param))
		}
	}

	return strings.Join(words, " ")
}
