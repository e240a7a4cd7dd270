package io

import (
	"github.com/ezrec/i8080/cpu"
)

// Loopback acknowledges a write by latching the value into the input port
// of the same number, where a following IN will read it.
type Loopback struct {
	Writes int // Count of writes acknowledged.
}

var _ Handler = (*Loopback)(nil)

// Handle latches the event value into the input port.
func (lb *Loopback) Handle(state *cpu.State, event cpu.OutputEvent) (err error) {
	state.Ports[event.Device] = event.Value
	lb.Writes++
	return
}
