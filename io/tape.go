package io

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Tape connects a machine's channels to text streams.
// Input values are base 10 integers separated by whitespace or commas;
// output values are written one per line.
type Tape struct {
	Input  io.Reader
	Output io.Writer
}

// Feed sends every value read from Input to the writer. The caller closes
// the writer. Feeding stops early, without error, if the reader has gone away.
func (tape *Tape) Feed(w Sender) (err error) {
	if tape.Input == nil {
		return
	}

	scanner := bufio.NewScanner(tape.Input)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		words := strings.FieldsFunc(scanner.Text(), func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		for _, word := range words {
			var value int64
			value, err = strconv.ParseInt(word, 10, 64)
			if err != nil {
				err = ErrParseValue(word)
				return
			}
			err = w.Send(value)
			if err == ErrChannelDropped {
				err = nil
				return
			}
			if err != nil {
				return
			}
		}
	}

	err = scanner.Err()
	return
}

// Record writes every value received from the reader to Output until the
// reader's writer is closed.
func (tape *Tape) Record(ctx context.Context, r Receiver) (err error) {
	for {
		var value int64
		value, err = r.Receive(ctx)
		if err == ErrChannelClosed {
			err = nil
			return
		}
		if err != nil {
			return
		}
		if tape.Output == nil {
			continue
		}
		_, err = fmt.Fprintln(tape.Output, value)
		if err != nil {
			return
		}
	}
}
