package rom

import (
	"errors"

	"github.com/ezrec/i8080/translate"
)

var f = translate.From

var (
	ErrLoad = errors.New(f("load"))
)

// ErrCapacity is a program image too large for memory.
type ErrCapacity struct {
	Size     int // Size of the image.
	Capacity int // Memory capacity.
}

func (ec ErrCapacity) Error() string {
	return f("image of %d bytes exceeds capacity of %d bytes", ec.Size, ec.Capacity)
}

func (ec ErrCapacity) Is(err error) bool {
	return err == ErrLoad
}
