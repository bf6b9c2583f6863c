package configs

import (
	"context"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/snek/snekvm"
)

type testLimit int

func (testLimit) SnekConfigurable() {}

type testName string

func (testName) SnekConfigurable() {}

type testRatio float64

func (testRatio) SnekConfigurable() {}

func execGlobals(t *testing.T, instrs ...snekvm.Instr) *snekvm.Interpreter {
	t.Helper()
	interp := snekvm.NewInterpreter(snekvm.NewRuntime())
	_, err := interp.Exec(context.Background(), &snekvm.Code{
		Name:     "<module>",
		Filename: "snek.py",
		Instrs: append(instrs,
			snekvm.Instr{Op: snekvm.OpLoadConst, Arg: snekvm.NoneLit{}},
			snekvm.Instr{Op: snekvm.OpReturnValue},
		),
	})
	if err != nil {
		t.Fatal(err)
	}
	return interp
}

func TestScriptFork(t *testing.T) {
	interp := execGlobals(t,
		snekvm.Instr{Op: snekvm.OpLoadConst, Arg: snekvm.Int64Lit(42)},
		snekvm.Instr{Op: snekvm.OpStoreName, Arg: snekvm.StrLit("testLimit")},
		snekvm.Instr{Op: snekvm.OpLoadConst, Arg: snekvm.Int64Lit(3)},
		snekvm.Instr{Op: snekvm.OpStoreName, Arg: snekvm.StrLit("testRatio")},
	)

	scope := dscope.New(
		dscope.Provide(testLimit(1)),
		dscope.Provide(testName("default")),
		dscope.Provide(testRatio(0.5)),
	)
	scope, err := ScriptFork(scope, interp)
	if err != nil {
		t.Fatal(err)
	}
	if got := dscope.Get[testLimit](scope); got != 42 {
		t.Fatalf("got %v", got)
	}
	if got := dscope.Get[testName](scope); got != "default" {
		t.Fatalf("got %v", got)
	}
	if got := dscope.Get[testRatio](scope); got != 3 {
		t.Fatalf("got %v", got)
	}
}

func TestScriptForkTypeMismatch(t *testing.T) {
	interp := execGlobals(t,
		snekvm.Instr{Op: snekvm.OpLoadConst, Arg: snekvm.Int64Lit(1)},
		snekvm.Instr{Op: snekvm.OpStoreName, Arg: snekvm.StrLit("testName")},
	)
	scope := dscope.New(
		dscope.Provide(testName("default")),
	)
	if _, err := ScriptFork(scope, interp); err == nil {
		t.Fatal("should fail")
	}
}
