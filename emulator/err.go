package emulator

import (
	"errors"

	"github.com/ezrec/i8080/translate"
)

var f = translate.From

var (
	ErrDispatch = errors.New(f("dispatch"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Addr int   // Address of the instruction.
	Op   uint8 // Raw opcode byte at the address.
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("0x%04x: [%02x] %v", err.Addr, err.Op, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
