package io

import (
	"iter"

	"github.com/ezrec/i8080/cpu"
)

// Sink records output events, oldest first, up to a fixed capacity.
//
// When full, Handle fails with ErrChannelFull, unless Overwrite is set, in
// which case the oldest event is discarded and counted in Dropped. A change
// to Capacity takes effect once the sink is empty.
type Sink struct {
	Capacity  int  // Capacity in events.
	Overwrite bool // If set, a full sink discards its oldest event.
	Dropped   int  // Count of discarded events.

	events []cpu.OutputEvent
	head   int // Index of the oldest event.
	count  int
}

var _ Handler = (*Sink)(nil)

// Len returns the number of recorded events.
func (sink *Sink) Len() int {
	return sink.count
}

// Rewind discards all recorded events.
func (sink *Sink) Rewind() {
	sink.head = 0
	sink.count = 0
	sink.events = make([]cpu.OutputEvent, sink.Capacity)
}

// Handle records the event.
func (sink *Sink) Handle(state *cpu.State, event cpu.OutputEvent) (err error) {
	if sink.count == 0 && len(sink.events) != sink.Capacity {
		sink.Rewind()
	}

	size := len(sink.events)
	if sink.count == size {
		if !sink.Overwrite || size == 0 {
			err = ErrChannelFull
			return
		}
		sink.head = (sink.head + 1) % size
		sink.count--
		sink.Dropped++
	}

	sink.events[(sink.head+sink.count)%size] = event
	sink.count++

	return
}

// Receive returns an iterator that removes and yields recorded events.
func (sink *Sink) Receive() iter.Seq[cpu.OutputEvent] {
	return func(yield func(event cpu.OutputEvent) bool) {
		for sink.count > 0 {
			event := sink.events[sink.head]
			sink.head = (sink.head + 1) % len(sink.events)
			sink.count--
			if !yield(event) {
				return
			}
		}
	}
}

// Tee returns a handler that records each event in the sink before passing
// it on to the next handler.
func (sink *Sink) Tee(next Handler) Handler {
	return HandlerFunc(func(state *cpu.State, event cpu.OutputEvent) (err error) {
		err = sink.Handle(state, event)
		if err != nil {
			return
		}

		err = next.Handle(state, event)
		return
	})
}
