// Package cpu implements the Intcode machine.
//
// A machine consists of a linear memory holding both instructions and data,
// an instruction pointer (IP), a relative base register, and a pair of I/O
// channels. Each instruction word packs a two digit opcode with up to three
// parameter modes (position, immediate, relative) in its higher decimal digits.
//
// Input (opcode 3) blocks on the input channel; output (opcode 4) is sent to
// the output channel, and a send to a channel whose reader has gone away halts
// the machine rather than failing it.
package cpu
