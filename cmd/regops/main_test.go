package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wnxd/gpuregops/regops"
)

func TestParseOp(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want regops.Op
	}{
		{"r32:0x400000", regops.Op{Kind: regops.OP_READ_32, Offset: 0x400000}},
		{"w32@gr_ctx:0x418000=5/0xffff", regops.Op{Kind: regops.OP_WRITE_32, Type: regops.TYPE_GR_CTX, Offset: 0x418000, ValueLo: 5, MaskLo: 0xffff}},
		{"w32:0x400004=0x10", regops.Op{Kind: regops.OP_WRITE_32, Offset: 0x400004, ValueLo: 0x10, MaskLo: 0xffffffff}},
		{"w64:0x400008=0x100000002", regops.Op{Kind: regops.OP_WRITE_64, Offset: 0x400008, ValueLo: 2, ValueHi: 1, MaskLo: 0xffffffff, MaskHi: 0xffffffff}},
	} {
		got, err := parseOp(tc.in)
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %+v want %+v", tc.in, got, tc.want)
		}
	}
	for _, in := range []string{"r32", "x32:0x10", "r32@bogus:0x10", "r32:0x10=1", "w32:0x10", "w32:0x10=0x100000000"} {
		if _, err := parseOp(in); err == nil {
			t.Errorf("%s: parsed", in)
		}
	}
}

func TestParseTopology(t *testing.T) {
	p, err := parseTopology("2,3", "1")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := p.GPCLogicalID(0, 1), uint32(3); got != want {
		t.Errorf("GPCLogicalID: got %d want %d", got, want)
	}
	if !p.MemoryPartitioned(0) {
		t.Error("memory partitioning off with FBP ids")
	}
	if p, err := parseTopology("", ""); p != nil || err != nil {
		t.Errorf("empty topology: got %v, %v", p, err)
	}
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, "-ctx", "w32:0x400000=0x1234", "r32:0x400000", "w32@gr_ctx:0x418380=7", "r32@gr_ctx:0x418380")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "00000000:00001234 success") {
		t.Errorf("global read missing:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "00000000:00000007 success") {
		t.Errorf("context read missing:\n%s", out.String())
	}
}

func TestRunRejected(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, "r32:0x400000", "r32:0x400001")
	if !errors.Is(err, regops.ErrBatchRejected) {
		t.Errorf("run: got %v want %v", err, regops.ErrBatchRejected)
	}
	err = run(&out, "-check", "-continue", "r32:0x400000", "r32:0x300000")
	if err != nil {
		t.Errorf("check: %v", err)
	}
}

func TestRunWireFile(t *testing.T) {
	b, err := regops.EncodeOps([]regops.Op{{Kind: regops.OP_READ_32, Offset: 0x00009400}})
	if err != nil {
		t.Fatal(err)
	}
	fn := filepath.Join(t.TempDir(), "ops.bin")
	if err = os.WriteFile(fn, b, 0644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err = run(&out, "-in", fn); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "00009400") {
		t.Errorf("output:\n%s", out.String())
	}
}
