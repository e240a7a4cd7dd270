// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package rom loads program images into memory images.
package rom

import (
	"errors"
	"io"
	"os"

	"github.com/ezrec/i8080/cpu"
)

// Load reads a program image from a file.
func Load(path string, capacity int) (image []byte, err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = errors.Join(ErrLoad, err)
		return
	}
	defer inf.Close()

	image, err = Read(inf, capacity)
	return
}

// Read reads a program image from a stream, reading at most one byte past
// the capacity to detect an oversized image.
func Read(in io.Reader, capacity int) (image []byte, err error) {
	if capacity < 0 {
		capacity = 0
	}
	if capacity > cpu.MEMORY_MAX {
		err = ErrCapacity{Size: capacity, Capacity: cpu.MEMORY_MAX}
		return
	}

	image, err = io.ReadAll(io.LimitReader(in, int64(capacity)+1))
	if err != nil {
		image = nil
		err = errors.Join(ErrLoad, err)
		return
	}

	if len(image) > capacity {
		size := len(image)
		if sizer, ok := in.(interface{ Stat() (os.FileInfo, error) }); ok {
			if info, serr := sizer.Stat(); serr == nil {
				size = int(info.Size())
			}
		}
		image = nil
		err = ErrCapacity{Size: size, Capacity: capacity}
		return
	}

	return
}

// FromBytes copies a program image.
func FromBytes(data []byte, capacity int) (image []byte, err error) {
	if capacity > cpu.MEMORY_MAX {
		err = ErrCapacity{Size: capacity, Capacity: cpu.MEMORY_MAX}
		return
	}
	if len(data) > capacity {
		err = ErrCapacity{Size: len(data), Capacity: capacity}
		return
	}

	image = make([]byte, len(data))
	copy(image, data)
	return
}

// Pad extends an image with zeroed memory up to the capacity, which is
// limited to the address space.
func Pad(image []byte, capacity int) (memory []byte) {
	capacity = min(capacity, cpu.MEMORY_MAX)
	if len(image) >= capacity {
		return image
	}

	memory = make([]byte, capacity)
	copy(memory, image)
	return
}
