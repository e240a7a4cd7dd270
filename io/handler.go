// Package io provides the output port dispatcher for the 8080 emulator.
// Handlers are registered by port number when the machine is configured,
// and receive each OUT write along with the machine state. Included sinks
// write to a stream (Console), record events (Sink), latch the value into
// the matching input port (Loopback), or run a Starlark script (Script).
package io

import (
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/i8080/cpu"
)

// Handler consumes output port writes.
type Handler interface {
	// Handle one output event. The handler may update the machine state.
	Handle(state *cpu.State, event cpu.OutputEvent) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(state *cpu.State, event cpu.OutputEvent) error

func (hf HandlerFunc) Handle(state *cpu.State, event cpu.OutputEvent) error {
	return hf(state, event)
}

// Registry maps output ports to their handlers.
type Registry struct {
	handler map[uint8]Handler
}

// SetHandler sets the handler for a port. A nil handler removes the port.
func (reg *Registry) SetHandler(device uint8, handler Handler) {
	if handler == nil {
		delete(reg.handler, device)
		return
	}

	if reg.handler == nil {
		reg.handler = make(map[uint8]Handler)
	}
	reg.handler[device] = handler
}

// HandlerFor gets the handler for a port.
func (reg *Registry) HandlerFor(device uint8) (handler Handler, err error) {
	var ok bool
	if reg != nil {
		handler, ok = reg.handler[device]
	}
	if !ok {
		err = ErrDevice(device)
		return
	}

	return
}

// Dispatch an output event to its handler.
func (reg *Registry) Dispatch(state *cpu.State, event cpu.OutputEvent) (err error) {
	handler, err := reg.HandlerFor(event.Device)
	if err != nil {
		return
	}

	err = handler.Handle(state, event)
	return
}

// Devices returns an iterator over the registered ports, in ascending order.
func (reg *Registry) Devices() iter.Seq2[uint8, Handler] {
	return func(yield func(device uint8, handler Handler) bool) {
		for _, device := range slices.Sorted(maps.Keys(reg.handler)) {
			if !yield(device, reg.handler[device]) {
				return
			}
		}
	}
}
