package io

import (
	"context"
	"sync"
)

type pipe struct {
	mu      sync.Mutex
	queue   []int64
	closed  bool          // Writer closed.
	dropped bool          // Reader closed.
	ready   chan struct{} // Wakes the reader after a state change.
}

// Reader is the consumer end of a Pipe.
type Reader struct {
	p *pipe
}

// Writer is the producer end of a Pipe.
type Writer struct {
	p *pipe
}

var _ Receiver = (*Reader)(nil)
var _ Sender = (*Writer)(nil)

// Pipe creates an unbounded channel, returning its two ends.
func Pipe() (r *Reader, w *Writer) {
	p := &pipe{
		ready: make(chan struct{}, 1),
	}

	r = &Reader{p: p}
	w = &Writer{p: p}

	return
}

// wake the reader; there is only one, so a single pending token is enough.
func (p *pipe) wake() {
	select {
	case p.ready <- struct{}{}:
	default:
	}
}

// Send queues a value for the reader.
func (w *Writer) Send(value int64) (err error) {
	p := w.p

	p.mu.Lock()
	switch {
	case p.dropped:
		err = ErrChannelDropped
	case p.closed:
		err = ErrChannelClosed
	default:
		p.queue = append(p.queue, value)
	}
	p.mu.Unlock()

	if err == nil {
		p.wake()
	}

	return
}

// Close the writer. Values already queued remain readable.
func (w *Writer) Close() (err error) {
	p := w.p

	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.wake()

	return
}

// Receive the next value, blocking until one is available.
func (r *Reader) Receive(ctx context.Context) (value int64, err error) {
	p := r.p

	for {
		p.mu.Lock()
		if len(p.queue) > 0 {
			value = p.queue[0]
			p.queue = p.queue[1:]
			p.mu.Unlock()
			return
		}
		closed := p.closed || p.dropped
		p.mu.Unlock()

		if closed {
			err = ErrChannelClosed
			return
		}

		select {
		case <-p.ready:
		case <-ctx.Done():
			err = ctx.Err()
			return
		}
	}
}

// Close the reader, discarding anything still queued.
func (r *Reader) Close() (err error) {
	p := r.p

	p.mu.Lock()
	p.dropped = true
	p.queue = nil
	p.mu.Unlock()

	return
}

// Len returns the number of values waiting to be received.
func (r *Reader) Len() int {
	p := r.p

	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.queue)
}

// Drain receives until the writer is closed, returning every value.
func (r *Reader) Drain(ctx context.Context) (values []int64, err error) {
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
		values = append(values, value)
	}
}
