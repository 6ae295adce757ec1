// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/expr"
	"github.com/ezrec/intcode/internal"
	"github.com/ezrec/intcode/io"
	"github.com/ezrec/intcode/translate"
)

// ErrPatch is a patch that is not in 'addr=value' form.
type ErrPatch string

func (err ErrPatch) Error() string {
	return translate.From("patch '%v' is not addr=value", string(err))
}

// listFlag collects a repeatable string flag.
type listFlag []string

func (lf *listFlag) String() string {
	return strings.Join(*lf, " ")
}

func (lf *listFlag) Set(value string) error {
	*lf = append(*lf, value)
	return nil
}

// parsePatch parses 'addr=expr'.
func parsePatch(text string) (addr int64, value int64, err error) {
	left, right, ok := strings.Cut(text, "=")
	if !ok {
		err = ErrPatch(text)
		return
	}

	addr, err = expr.Eval(left, nil)
	if err != nil {
		return
	}

	value, err = expr.Eval(right, nil)
	return
}

// parsePhases parses a comma separated list of phases, or 'lo-hi'.
func parsePhases(text string) (phases []int64, err error) {
	if lo, hi, ok := strings.Cut(text, "-"); ok && !strings.Contains(text, ",") && len(lo) > 0 {
		var lo_v, hi_v int64
		lo_v, err = expr.Eval(lo, nil)
		if err != nil {
			return
		}
		hi_v, err = expr.Eval(hi, nil)
		if err != nil {
			return
		}
		phases = internal.Range(lo_v, hi_v)
		return
	}

	phases, err = cpu.Parse(strings.NewReader(text))
	return
}

func main() {
	var compile string
	var mode string
	var inputs listFlag
	var patches listFlag
	var phase string
	var target int64
	var answer string
	var parallel int
	var verbose bool

	flag.StringVar(&compile, "c", "-", "Intcode program file")
	flag.StringVar(&mode, "m", "run", "Mode: run, diagnostic, gravity, search, amplify, sweep")
	flag.Var(&inputs, "i", "Input value expression (repeatable); tape input from stdin if none")
	flag.Var(&patches, "p", "Patch addr=value before running (repeatable)")
	flag.StringVar(&phase, "phase", "5-9", "Amplifier phases, as a list or lo-hi range")
	flag.Int64Var(&target, "target", emulator.GRAVITY_TARGET, "Gravity search target")
	flag.StringVar(&answer, "answer", "100 * noun + verb", "Gravity search answer")
	flag.IntVar(&parallel, "j", 0, "Feedback loops to run at once in a sweep (0 is unlimited)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	inf := os.Stdin
	if compile != "-" {
		var err error
		inf, err = os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()
	}

	prog, err := cpu.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	for _, text := range patches {
		addr, value, err := parsePatch(text)
		if err == nil {
			err = prog.Patch(addr, value)
		}
		if err != nil {
			log.Fatalf("-p %v: %v", text, err)
		}
	}

	var values []int64
	for _, text := range inputs {
		value, err := expr.Eval(text, nil)
		if err != nil {
			log.Fatalf("-i %v: %v", text, err)
		}
		values = append(values, value)
	}

	emu := emulator.NewEmulator(prog)
	emu.Verbose = verbose
	emu.Parallel = parallel

	switch mode {
	case "run":
		if len(values) == 0 && compile != "-" {
			tape := &io.Tape{Input: os.Stdin, Output: os.Stdout}
			err = emu.Stream(ctx, tape)
			break
		}
		var outputs []int64
		outputs, err = emu.Run(ctx, values...)
		for _, value := range outputs {
			fmt.Println(value)
		}
	case "diagnostic":
		if len(values) != 1 {
			log.Fatalf("%v: diagnostic needs exactly one -i", mode)
		}
		var code int64
		code, err = emu.Diagnostic(ctx, values[0])
		if err == nil {
			fmt.Println(code)
		}
	case "gravity":
		var mem *cpu.Memory
		var value int64
		mem, err = emu.Execute(ctx, nil)
		if err == nil {
			value, err = mem.Read(0)
		}
		if err == nil {
			fmt.Println(value)
		}
	case "search":
		var noun, verb, value int64
		noun, verb, err = emu.SearchGravity(ctx, target)
		if err == nil {
			value, err = expr.Eval(answer, map[string]int64{"noun": noun, "verb": verb})
		}
		if err == nil {
			fmt.Println(value)
		}
	case "amplify", "sweep":
		var phases []int64
		phases, err = parsePhases(phase)
		if err != nil {
			log.Fatalf("-phase %v: %v", phase, err)
		}
		var value int64
		if mode == "amplify" {
			value, err = emu.Amplify(ctx, phases)
		} else {
			var order []int64
			value, order, err = emu.Sweep(ctx, phases)
			if err == nil && verbose {
				log.Printf("%v: best phases %v", mode, order)
			}
		}
		if err == nil {
			fmt.Println(value)
		}
	default:
		log.Fatalf("%v: unknown mode %v", os.Args[0], mode)
	}

	if err != nil {
		log.Fatal(err)
	}
}
