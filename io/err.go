package io

import (
	"errors"

	"github.com/ezrec/i8080/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull = errors.New(f("channel full"))

	// Script errors
	ErrScriptHandler = errors.New(f("script has no out(port, value) function"))
	ErrScriptResult  = errors.New(f("script out() must return None or an int 0..255"))
)

// ErrDevice is an output port with no registered handler.
type ErrDevice uint8

func (ed ErrDevice) Error() string {
	return f("device %d has no handler", uint8(ed))
}
