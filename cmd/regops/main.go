// Command regops validates and runs debugger register operations against a
// simulated register bus.
//
//	regops [-gen NAME] [-in FILE] [-gpcs IDS] [-fbps IDS]
//		[-continue] [-override] [-ctx] [-check] [-v] [OP]...
//
// OP is KIND[@TYPE]:OFFSET[=VALUE[/MASK]], e.g. r32:0x400000 or
// w32@gr_ctx:0x418000=0x5/0xffff. 64-bit values carry the high word in the
// upper half.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/platinasystems/flags"
	"github.com/platinasystems/parms"

	"github.com/wnxd/gpuregops/bus"
	"github.com/wnxd/gpuregops/regops"
	_ "github.com/wnxd/gpuregops/regops/sim"
)

const usage = "regops [-gen NAME] [-in FILE] [-gpcs IDS] [-fbps IDS] [-continue] [-override] [-ctx] [-check] [-v] [OP]..."

func main() {
	if err := run(os.Stdout, os.Args[1:]...); err != nil {
		fmt.Fprintln(os.Stderr, "regops:", err)
		os.Exit(1)
	}
}

func run(w io.Writer, args ...string) error {
	flag, args := flags.New(args, "-continue", "-override", "-ctx", "-check", "-v")
	parm, args := parms.New(args, "-gen", "-in", "-gpcs", "-fbps")

	name := parm.ByName["-gen"]
	if name == "" {
		name = regops.GEN_SIM.String()
	}
	gen, err := regops.ParseGen(name)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	var ops []regops.Op
	if fn := parm.ByName["-in"]; fn != "" {
		b, err := os.ReadFile(fn)
		if err != nil {
			return err
		}
		if ops, err = regops.DecodeOps(b); err != nil {
			return fmt.Errorf("%s: %w", fn, err)
		}
	}
	for _, arg := range args {
		op, err := parseOp(arg)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		ops = append(ops, op)
	}
	if len(ops) == 0 {
		return fmt.Errorf("no operations\nusage: %s", usage)
	}

	topo, err := parseTopology(parm.ByName["-gpcs"], parm.ByName["-fbps"])
	if err != nil {
		return err
	}
	mem := bus.NewMemory()
	cfg := regops.Config{
		Bus:   mem,
		Debug: flag.ByName["-v"],
	}
	if topo != nil {
		cfg.Topology = topo
	}
	hasCtx := flag.ByName["-ctx"]
	if hasCtx {
		cfg.Backend = newCtxImage()
	}
	engine, err := regops.New(gen, cfg)
	if err != nil {
		return err
	}

	mode := regops.MODE_ALL_OR_NONE
	if flag.ByName["-continue"] {
		mode = regops.MODE_CONTINUE_ON_ERROR
	}
	override := flag.ByName["-override"]
	if flag.ByName["-check"] {
		out := engine.Validate(ops, hasCtx, override, nil, mode)
		report(w, ops, &out)
		if !out.Accepted {
			return regops.ErrBatchRejected
		}
		return nil
	}
	out, err := engine.Exec(ops, hasCtx, override, nil, mode)
	report(w, ops, &out)
	if err != nil {
		return err
	}
	if flag.ByName["-v"] {
		for _, t := range mem.Trace() {
			fmt.Fprintf(w, "bus %-5v %08x %08x\n", t.Access, t.Addr, t.Value)
		}
	}
	return nil
}

func report(w io.Writer, ops []regops.Op, out *regops.Outcome) {
	for i := range ops {
		op := &ops[i]
		status := op.Status.String()
		if i >= out.Visited {
			status = "-"
		}
		fmt.Fprintf(w, "%3d %-8v %-11v %08x %08x:%08x %s\n",
			i, op.Kind, op.Type, op.Offset, op.ValueHi, op.ValueLo, status)
		if i < len(out.Errs) && out.Errs[i] != nil {
			fmt.Fprintf(w, "    %v\n", out.Errs[i])
		}
	}
	fmt.Fprintf(w, "accepted: %v, passed: %v, ctx reads: %d, ctx writes: %d\n",
		out.Accepted, out.AllPassed, out.CtxReads, out.CtxWrites)
}
