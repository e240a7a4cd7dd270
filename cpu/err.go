package cpu

import (
	"errors"

	"github.com/ezrec/i8080/translate"
)

var f = translate.From

var (
	// Decode errors
	ErrDecode = errors.New(f("decode"))

	// Execution errors
	ErrMemory = errors.New(f("memory"))
)

// ErrOpcode is an opcode that does not decode to a known instruction.
type ErrOpcode struct {
	Addr int   // Address of the opcode.
	Op   uint8 // Raw opcode byte.
}

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x at 0x%04x", eo.Op, eo.Addr)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	if err == ErrDecode {
		return true
	}
	_, ok = err.(ErrOpcode)
	return
}

// ErrTruncated is an instruction whose operands run past the end of memory.
type ErrTruncated struct {
	Addr int   // Address of the opcode.
	Op   uint8 // Raw opcode byte.
}

func (et ErrTruncated) Error() string {
	return f("truncated opcode 0x%02x at 0x%04x", et.Op, et.Addr)
}

func (et ErrTruncated) Is(err error) (ok bool) {
	if err == ErrDecode {
		return true
	}
	_, ok = err.(ErrTruncated)
	return
}

// ErrAddress is an access outside of the memory image.
type ErrAddress struct {
	Addr int // Address accessed.
	Pc   int // Instruction performing the access.
}

func (ea ErrAddress) Error() string {
	return f("address 0x%04x out of range at 0x%04x", ea.Addr, ea.Pc)
}

func (ea ErrAddress) Is(err error) (ok bool) {
	if err == ErrMemory {
		return true
	}
	_, ok = err.(ErrAddress)
	return
}
