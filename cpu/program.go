package cpu

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
)

// Program is the initial memory image of a machine.
type Program []int64

// Parse reads a list of base 10 integers separated by commas or line
// breaks. Whitespace around each value is ignored.
func Parse(r io.Reader) (prog Program, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	scanner.Split(scanComma)

	for scanner.Scan() {
		lines := strings.FieldsFunc(scanner.Text(), isLineBreak)
		if len(lines) == 0 {
			err = ErrParseNumber("")
			return
		}
		for _, line := range lines {
			word := strings.TrimSpace(line)
			var value int64
			value, err = strconv.ParseInt(word, 10, 64)
			if err != nil {
				err = ErrParseNumber(word)
				return
			}
			prog = append(prog, value)
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if len(prog) == 0 {
		err = ErrProgramEmpty
		return
	}

	return
}

// scanComma is a bufio.SplitFunc for comma separated words.
func scanComma(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(bytes.TrimSpace(data)) == 0 {
		return len(data), nil, nil
	}

	if i := bytes.IndexByte(data, ','); i >= 0 {
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

// Clone returns a private copy of the program.
func (prog Program) Clone() Program {
	return append(Program(nil), prog...)
}

// Patch replaces the word at addr.
func (prog Program) Patch(addr int64, value int64) (err error) {
	if addr < 0 || addr >= int64(len(prog)) {
		err = ErrAddressRange(addr)
		return
	}

	prog[addr] = value
	return
}

// String returns the program in its comma separated form.
func (prog Program) String() string {
	words := make([]string, len(prog))
	for n, value := range prog {
		words[n] = strconv.FormatInt(value, 10)
	}

	return strings.Join(words, ",")
}
