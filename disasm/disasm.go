// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package disasm prints memory images as hex dumps and instruction listings.
package disasm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ezrec/i8080/cpu"
)

// Decoder decodes one instruction at an offset.
type Decoder interface {
	Decode(memory []byte, offset int) (cpu.Instruction, error)
}

// HexDump writes buf in rows of chunk bytes, each prefixed by its offset.
func HexDump(w io.Writer, buf []byte, chunk int) (err error) {
	if chunk <= 0 {
		chunk = 16
	}

	bw := bufio.NewWriter(w)
	for offset := 0; offset < len(buf); offset += chunk {
		end := min(offset+chunk, len(buf))
		fmt.Fprintf(bw, "%07x ", offset)
		for _, b := range buf[offset:end] {
			fmt.Fprintf(bw, "%02x ", b)
		}
		fmt.Fprintln(bw)
	}

	err = bw.Flush()
	return
}

// Disassemble decodes every instruction in memory, starting at address 0.
func Disassemble(memory []byte, decoder Decoder) (insts []cpu.Instruction, err error) {
	for offset := 0; offset < len(memory); {
		var inst cpu.Instruction
		inst, err = decoder.Decode(memory, offset)
		if err != nil {
			return
		}
		insts = append(insts, inst)
		offset += inst.Len()
	}

	return
}

// Listing writes one line per instruction, prefixed by its address.
func Listing(w io.Writer, insts []cpu.Instruction) (err error) {
	bw := bufio.NewWriter(w)

	var addr int
	for _, inst := range insts {
		fmt.Fprintf(bw, "%04x %v\n", addr, inst)
		addr += inst.Len()
	}

	err = bw.Flush()
	return
}

// WriteListing writes the listing to a file.
func WriteListing(filename string, insts []cpu.Instruction) (err error) {
	ouf, err := os.Create(filename)
	if err != nil {
		return
	}

	err = Listing(ouf, insts)
	cerr := ouf.Close()
	if err == nil {
		err = cerr
	}

	return
}
