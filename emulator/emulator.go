// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"
	"slices"
	"time"

	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/io"
)

const (
	RESET_VECTOR = 0 // Address of the first instruction.

	HOLD_DELAY_MIN = time.Microsecond // First poll interval while held.
	HOLD_DELAY_MAX = time.Millisecond // Longest poll interval while held.
)

// Decoder decodes one instruction from memory.
type Decoder interface {
	Decode(memory []byte, offset int) (cpu.Instruction, error)
}

// Phase is the execution phase of a CpuContext.
type Phase int

const (
	PHASE_PRIMING = Phase(0) // Stopped, waiting to be released.
	PHASE_RUNNING = Phase(1) // Executing instructions.
	PHASE_HALTED  = Phase(2) // Run has returned.
)

func (phase Phase) String() string {
	switch phase {
	case PHASE_PRIMING:
		return "priming"
	case PHASE_RUNNING:
		return "running"
	case PHASE_HALTED:
		return "halted"
	}
	return f("phase %d", int(phase))
}

// CpuContext is the execution engine. It owns the machine state for the
// duration of a run.
type CpuContext struct {
	Verbose  bool         // If set, enables verbose logging.
	State    *cpu.State   // Machine state.
	Decoder  Decoder      // Instruction decoder.
	Registry *io.Registry // Output port handlers.

	signal Signal
	ticks  int
	halted bool
	hold   time.Duration // Current poll interval while held.
}

// New creates an execution engine for a memory image. The image is copied.
// A nil signal never asks the engine to exit.
func New(image []byte, signal Signal) (ctx *CpuContext) {
	if signal == nil {
		signal = never{}
	}

	ctx = &CpuContext{
		State:    cpu.NewState(slices.Clone(image)),
		Decoder:  cpu.InstructionSet{},
		Registry: &io.Registry{},
		signal:   signal,
	}

	return
}

// Ticks returns the number of instructions executed.
func (ctx *CpuContext) Ticks() int {
	return ctx.ticks
}

// Phase returns the current execution phase.
func (ctx *CpuContext) Phase() Phase {
	switch {
	case ctx.halted:
		return PHASE_HALTED
	case ctx.State.Stopped:
		return PHASE_PRIMING
	default:
		return PHASE_RUNNING
	}
}

// StillRunning is false once execution has walked off the end of memory, or
// an instruction has jumped to its own address.
func (ctx *CpuContext) StillRunning() bool {
	state := ctx.State
	return state.Pc < len(state.Memory) && state.Nc != state.Pc
}

// Run the engine until the program halts, the signal asks it to exit, or an
// error occurs.
func (ctx *CpuContext) Run() (err error) {
	defer func() {
		ctx.halted = true
		if ctx.Verbose {
			log.Printf("emulator: halted after %d ticks, err=%v", ctx.ticks, err)
		}
	}()

	if ctx.Verbose {
		log.Printf("emulator: memory %d bytes", len(ctx.State.Memory))
	}

	if ctx.halted || !ctx.StillRunning() {
		return
	}

	for {
		if ctx.signal.ShouldExit() {
			if ctx.Verbose {
				log.Printf("emulator: exit requested")
			}
			return
		}

		if ctx.State.Stopped {
			ctx.prime()
			continue
		}

		err = ctx.Cycle()
		if err != nil {
			return
		}

		if !ctx.StillRunning() {
			return
		}
	}
}

// prime performs the reset step: no instruction executes, and execution
// will resume at the reset vector.
func (ctx *CpuContext) prime() {
	if releaser, ok := ctx.signal.(Releaser); ok && !releaser.ShouldRelease() {
		// Back off while held; the exit signal is still polled between waits.
		ctx.hold = min(max(ctx.hold*2, HOLD_DELAY_MIN), HOLD_DELAY_MAX)
		time.Sleep(ctx.hold)
		return
	}
	ctx.hold = 0

	ctx.State.Nc = RESET_VECTOR
	ctx.State.Stopped = false

	if ctx.Verbose {
		log.Printf("emulator: released")
	}
}

// runtimeError decorates an error with the current address.
func (ctx *CpuContext) runtimeError(err error) error {
	state := ctx.State
	rte := &ErrRuntime{Addr: state.Pc, Err: err}
	if state.Pc >= 0 && state.Pc < len(state.Memory) {
		rte.Op = state.Memory[state.Pc]
	}
	return rte
}

// Cycle performs a single fetch, decode, execute, and dispatch cycle.
func (ctx *CpuContext) Cycle() (err error) {
	state := ctx.State

	state.Pc = state.Nc

	// At the end of memory there is nothing to execute, but pending output
	// is still dispatched.
	if state.Pc < len(state.Memory) {
		if state.Pc >= cpu.MEMORY_MAX {
			return ctx.runtimeError(cpu.ErrAddress{Addr: state.Pc, Pc: state.Pc})
		}

		var inst cpu.Instruction
		inst, err = ctx.Decoder.Decode(state.Memory, state.Pc)
		if err != nil {
			return ctx.runtimeError(err)
		}

		if ctx.Verbose {
			log.Printf("%04x: %v", state.Pc, inst)
		}

		var nc int
		nc, err = inst.Execute(state)
		if err != nil {
			return ctx.runtimeError(err)
		}

		if nc < 0 || nc > len(state.Memory) {
			return ctx.runtimeError(cpu.ErrAddress{Addr: nc, Pc: state.Pc})
		}

		state.Nc = nc
		ctx.ticks++
	}

	event, ok := state.Dequeue()
	if ok {
		if ctx.Verbose {
			log.Printf("%04x: out %d <- 0x%02x", state.Pc, event.Device, event.Value)
		}
		err = ctx.Registry.Dispatch(state, event)
		if err != nil {
			return ctx.runtimeError(errors.Join(ErrDispatch, err))
		}
	}

	return
}
