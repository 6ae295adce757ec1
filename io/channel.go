// Package io provides the channels that connect Intcode machines.
// A channel is an unbounded FIFO of integers with a single producer end
// (Writer) and a single consumer end (Reader), created together by Pipe.
package io

import (
	"context"
)

// Sender is the producer end of a channel.
type Sender interface {
	// Send queues a value. It never blocks, and returns ErrChannelDropped
	// once the consumer end has been closed.
	Send(value int64) error
	// Close marks the end of the stream.
	Close() error
}

// Receiver is the consumer end of a channel.
type Receiver interface {
	// Receive blocks until a value is available, the producer end is
	// closed (ErrChannelClosed), or the context is done.
	Receive(ctx context.Context) (int64, error)
	// Close drops the consumer end; later sends fail.
	Close() error
}
