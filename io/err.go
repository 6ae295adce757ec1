package io

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelClosed  = errors.New(f("channel closed"))
	ErrChannelDropped = errors.New(f("channel has no receiver"))
)

// ErrParseValue is a tape word that is not an integer.
type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value", string(err))
}
