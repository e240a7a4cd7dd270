package io

import (
	"io"

	"github.com/ezrec/i8080/cpu"
)

// Console writes each output byte to a stream.
type Console struct {
	Output io.Writer
}

var _ Handler = (*Console)(nil)

// Handle writes the event value to the output.
func (con *Console) Handle(state *cpu.State, event cpu.OutputEvent) (err error) {
	_, err = con.Output.Write([]byte{event.Value})
	return
}
