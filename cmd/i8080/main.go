// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/disasm"
	"github.com/ezrec/i8080/emulator"
	"github.com/ezrec/i8080/io"
	"github.com/ezrec/i8080/rom"
)

func main() {
	var capacity int
	var pad bool
	var disassemble bool
	var hexdump bool
	var listing string
	var script string
	var port uint
	var undocumented bool
	var timeout time.Duration
	var trace int
	var verbose bool

	flag.IntVar(&capacity, "m", 10000, "Memory capacity, in bytes")
	flag.BoolVar(&pad, "pad", false, "Pad memory with zeros up to the capacity")
	flag.BoolVar(&disassemble, "d", false, "Disassemble the ROM, do not execute")
	flag.BoolVar(&hexdump, "x", false, "Hex dump the ROM, do not execute")
	flag.StringVar(&listing, "l", "", "Write a disassembly listing to a file")
	flag.StringVar(&script, "s", "", ".star script that handles the other output ports")
	flag.UintVar(&port, "p", 1, "Console output port")
	flag.BoolVar(&undocumented, "u", false, "Decode undocumented opcodes")
	flag.DurationVar(&timeout, "t", 0, "Exit after a timeout")
	flag.IntVar(&trace, "trace", 0, "Print the last N output port writes at exit")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: usage: %v [options] file.rom", os.Args[0], os.Args[0])
	}
	if port > 255 {
		log.Fatalf("%v: console port %d out of range", os.Args[0], port)
	}

	path := flag.Arg(0)
	image, err := rom.Load(path, capacity)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	decoder := cpu.InstructionSet{Undocumented: undocumented}

	if hexdump {
		err = disasm.HexDump(os.Stdout, image, 16)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
	}

	if disassemble || len(listing) != 0 {
		insts, err := disasm.Disassemble(image, decoder)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		if disassemble {
			err = disasm.Listing(os.Stdout, insts)
			if err != nil {
				log.Fatalf("%v: %v", path, err)
			}
		}
		if len(listing) != 0 {
			err = disasm.WriteListing(listing, insts)
			if err != nil {
				log.Fatalf("%v: %v", listing, err)
			}
		}
	}

	if hexdump || disassemble {
		return
	}

	if pad {
		image = rom.Pad(image, capacity)
	}

	ctl := emulator.NewController(false)
	emu := emulator.New(image, ctl)
	emu.Verbose = verbose
	emu.Decoder = decoder

	if len(script) != 0 {
		handler, err := io.NewScript(script, nil)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
		handler.Output = os.Stderr
		for device := range 256 {
			emu.Registry.SetHandler(uint8(device), handler)
		}
	}
	emu.Registry.SetHandler(uint8(port), &io.Console{Output: os.Stdout})

	var tracer *io.Sink
	if trace > 0 {
		tracer = &io.Sink{Capacity: trace, Overwrite: true}
		for device, handler := range emu.Registry.Devices() {
			emu.Registry.SetHandler(device, tracer.Tee(handler))
		}
	}

	if verbose {
		ports := 0
		for device := range emu.Registry.Devices() {
			if device == uint8(port) {
				log.Printf("port %d: console", device)
			}
			ports++
		}
		log.Printf("%d output ports", ports)
	}

	sigctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var grp errgroup.Group

	grp.Go(func() (err error) {
		defer ctl.Exit()
		err = emu.Run()
		return
	})

	grp.Go(func() (err error) {
		var expired <-chan time.Time
		if timeout > 0 {
			expired = time.After(timeout)
		}

		select {
		case <-ctl.Done():
		case <-sigctx.Done():
			if verbose {
				log.Printf("interrupted")
			}
		case <-expired:
			if verbose {
				log.Printf("timeout after %v", timeout)
			}
		}

		ctl.Exit()
		return
	})

	err = grp.Wait()

	if tracer != nil {
		if tracer.Dropped != 0 {
			log.Printf("trace: %d earlier writes not shown", tracer.Dropped)
		}
		for event := range tracer.Receive() {
			log.Printf("trace: port %d <- 0x%02x", event.Device, event.Value)
		}
	}

	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	if verbose {
		log.Printf("%v: %d instructions", path, emu.Ticks())
		log.Print(emu.State)
	}
}
