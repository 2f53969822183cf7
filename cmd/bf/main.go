// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/ezrec/brainfriendly/emulator"
	"github.com/ezrec/brainfriendly/tape"
	"github.com/ezrec/brainfriendly/translate"
	"github.com/ezrec/brainfriendly/vm"
)

func main() {
	var compile string
	var input string
	var output string
	var cells string
	var cursor int
	var eof string
	var limit int
	var check bool
	var verbose bool
	var language string

	flag.StringVar(&compile, "c", "", "Program file to run")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.StringVar(&cells, "t", "TAPE_SIZE", "Initial tape expression")
	flag.IntVar(&cursor, "p", 0, "Initial cursor")
	flag.StringVar(&eof, "e", "", "Cell value on end of input, unchanged if empty")
	flag.IntVar(&limit, "n", 0, "Tick limit, 0 for none")
	flag.BoolVar(&check, "s", false, "Check syntax only, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&language, "l", "", "Message language, system locale if empty")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(language) != 0 {
		translate.SetLanguage(language)
	}

	if len(compile) == 0 {
		log.Fatalf("%v: -c program file required", os.Args[0])
	}

	inf, err := os.Open(compile)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	prog, err := vm.Parse(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if check {
		return
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.Cursor = cursor
	emu.Limit = limit

	emu.Cells, err = tape.Parse(cells, emu.Defines())
	if err != nil {
		log.Fatalf("-t %v: %v", cells, err)
	}

	if len(eof) != 0 {
		value, err := strconv.ParseInt(eof, 0, 16)
		if err != nil || value < tape.CELL_MIN || value > 0xff {
			log.Fatalf("-e %v: %v", eof, tape.ErrCellRange)
		}
		emu.EOF = vm.EOFValue(tape.FromByte(byte(value)))
	}

	if input == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	emu.Reset()
	err = emu.Run()
	if err != nil {
		log.Fatal(err)
	}
}
