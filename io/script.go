// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"errors"
	"fmt"
	"io"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/i8080/cpu"
)

// Script handles output writes with a Starlark program.
//
// The program must define a function out(port, value). If it returns an int,
// that value is latched into the input port of the same number; if it returns
// None the machine state is left alone. print() goes to Output, or the log
// if Output is nil.
type Script struct {
	Name   string    // Script file name, used in diagnostics.
	Output io.Writer // Destination of print().

	thread *starlark.Thread
	out    starlark.Callable
}

var _ Handler = (*Script)(nil)

// NewScript compiles a script. The source may be a string, []byte, io.Reader,
// or nil to read the named file.
func NewScript(name string, src any) (script *Script, err error) {
	script = &Script{Name: name}

	script.thread = &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			if script.Output != nil {
				fmt.Fprintln(script.Output, msg)
			} else {
				log.Printf("%v: %v", name, msg)
			}
		},
	}

	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, script.thread, name, src, nil)
	if err != nil {
		script = nil
		return
	}

	out, ok := globals["out"].(starlark.Callable)
	if !ok {
		script = nil
		err = ErrScriptHandler
		return
	}
	script.out = out

	return
}

// Handle calls the script's out(port, value) function.
func (script *Script) Handle(state *cpu.State, event cpu.OutputEvent) (err error) {
	args := starlark.Tuple{
		starlark.MakeInt(int(event.Device)),
		starlark.MakeInt(int(event.Value)),
	}

	rc, err := starlark.Call(script.thread, script.out, args, nil)
	if err != nil {
		return
	}

	switch value := rc.(type) {
	case starlark.NoneType:
		// No acknowledgement.
	case starlark.Int:
		ack, ok := value.Int64()
		if !ok || ack < 0 || ack > 0xff {
			err = errors.Join(ErrScriptResult, fmt.Errorf("%v", value))
			return
		}
		state.Ports[event.Device] = uint8(ack)
	default:
		err = errors.Join(ErrScriptResult, fmt.Errorf("%v", rc.Type()))
	}

	return
}
