// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

const (
	MEMORY_MAX = 0x10000 // Size of the 16-bit address space.
)

// PSW flag bit positions.
const (
	FLAG_CY  = uint8(1 << 0) // Carry
	FLAG_ONE = uint8(1 << 1) // Always set in the PSW.
	FLAG_P   = uint8(1 << 2) // Parity
	FLAG_AC  = uint8(1 << 4) // Auxiliary carry
	FLAG_Z   = uint8(1 << 6) // Zero
	FLAG_S   = uint8(1 << 7) // Sign
)

// ConditionCodes are the flags set by the last arithmetic or logic instruction.
type ConditionCodes struct {
	Z  bool // Zero
	S  bool // Sign
	P  bool // Parity (even)
	CY bool // Carry
	AC bool // Auxiliary carry
}

// Byte packs the condition codes into the PSW flag byte.
func (cc ConditionCodes) Byte() (value uint8) {
	value = FLAG_ONE
	if cc.CY {
		value |= FLAG_CY
	}
	if cc.P {
		value |= FLAG_P
	}
	if cc.AC {
		value |= FLAG_AC
	}
	if cc.Z {
		value |= FLAG_Z
	}
	if cc.S {
		value |= FLAG_S
	}
	return
}

// SetByte unpacks a PSW flag byte.
func (cc *ConditionCodes) SetByte(value uint8) {
	cc.CY = (value & FLAG_CY) != 0
	cc.P = (value & FLAG_P) != 0
	cc.AC = (value & FLAG_AC) != 0
	cc.Z = (value & FLAG_Z) != 0
	cc.S = (value & FLAG_S) != 0
}

// OutputEvent is a pending write to an output port.
type OutputEvent struct {
	Device uint8 // Target port.
	Value  uint8 // Accumulator at the time of the OUT.
}

// State is the complete machine state of the processor.
type State struct {
	Memory []byte // Fixed size after load.

	A, B, C, D, E, H, L uint8  // Register file.
	Sp                  uint16 // Stack pointer.

	Cc ConditionCodes // Flags.

	Pc int // Address of the instruction being executed.
	Nc int // Address execution resumes at.

	Stopped    bool // Skip execution until released.
	Interrupts bool // EI/DI latch.

	Ports       [256]uint8    // Input port latches, read by IN.
	OutputQueue []OutputEvent // Pending OUT writes.
}

// NewState creates the machine state for a loaded memory image.
// All condition codes start out set.
func NewState(memory []byte) (state *State) {
	state = &State{
		Memory: memory,
		Cc: ConditionCodes{
			Z:  true,
			S:  true,
			P:  true,
			CY: true,
			AC: true,
		},
		Pc:      0,
		Nc:      1,
		Stopped: true,
	}

	return
}

// Read a byte from memory.
func (state *State) Read(addr uint16) (value uint8, err error) {
	if int(addr) >= len(state.Memory) {
		err = ErrAddress{Addr: int(addr), Pc: state.Pc}
		return
	}

	value = state.Memory[addr]
	return
}

// Write a byte to memory.
func (state *State) Write(addr uint16, value uint8) (err error) {
	if int(addr) >= len(state.Memory) {
		err = ErrAddress{Addr: int(addr), Pc: state.Pc}
		return
	}

	state.Memory[addr] = value
	return
}

// Read16 reads a little-endian word from memory.
func (state *State) Read16(addr uint16) (value uint16, err error) {
	lo, err := state.Read(addr)
	if err != nil {
		return
	}
	hi, err := state.Read(addr + 1)
	if err != nil {
		return
	}

	value = (uint16(hi) << 8) | uint16(lo)
	return
}

// Write16 writes a little-endian word to memory.
func (state *State) Write16(addr uint16, value uint16) (err error) {
	err = state.Write(addr, uint8(value))
	if err != nil {
		return
	}

	err = state.Write(addr+1, uint8(value>>8))
	return
}

// Push a word onto the stack.
func (state *State) Push(value uint16) (err error) {
	err = state.Write16(state.Sp-2, value)
	if err != nil {
		return
	}

	state.Sp -= 2
	return
}

// Pop a word from the stack.
func (state *State) Pop() (value uint16, err error) {
	value, err = state.Read16(state.Sp)
	if err != nil {
		return
	}

	state.Sp += 2
	return
}

// BC register pair.
func (state *State) BC() uint16 { return (uint16(state.B) << 8) | uint16(state.C) }

// DE register pair.
func (state *State) DE() uint16 { return (uint16(state.D) << 8) | uint16(state.E) }

// HL register pair.
func (state *State) HL() uint16 { return (uint16(state.H) << 8) | uint16(state.L) }

func (state *State) SetBC(value uint16) { state.B, state.C = uint8(value>>8), uint8(value) }
func (state *State) SetDE(value uint16) { state.D, state.E = uint8(value>>8), uint8(value) }
func (state *State) SetHL(value uint16) { state.H, state.L = uint8(value>>8), uint8(value) }

// Enqueue a pending output event.
func (state *State) Enqueue(event OutputEvent) {
	state.OutputQueue = append(state.OutputQueue, event)
}

// Dequeue removes the oldest pending output event.
func (state *State) Dequeue() (event OutputEvent, ok bool) {
	if len(state.OutputQueue) == 0 {
		return
	}

	event = state.OutputQueue[0]
	state.OutputQueue = state.OutputQueue[1:]
	ok = true

	return
}

// String returns the current register state as a string.
func (state *State) String() (text string) {
	regs := []string{
		"pc", "nc", "sp",
		"a", "bc", "de", "hl",
		"flags",
		"queue",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%04X", state.Pc)
		case "nc":
			strval = fmt.Sprintf("%04X", state.Nc)
		case "sp":
			strval = fmt.Sprintf("%04X", state.Sp)
		case "a":
			strval = fmt.Sprintf("%02X", state.A)
		case "bc":
			strval = fmt.Sprintf("%04X", state.BC())
		case "de":
			strval = fmt.Sprintf("%04X", state.DE())
		case "hl":
			strval = fmt.Sprintf("%04X", state.HL())
		case "flags":
			// Upper case when set.
			flags := []bool{state.Cc.S, state.Cc.Z, state.Cc.AC, state.Cc.P, state.Cc.CY}
			for n, name := range "szapc" {
				if flags[n] {
					name -= 'a' - 'A'
				}
				strval += string(name)
			}
		case "queue":
			strval = fmt.Sprintf("%d", len(state.OutputQueue))
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}
