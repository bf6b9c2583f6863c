package snekvm

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func ins(op OpCode, arg ...Literal) Instr {
	instr := Instr{Op: op}
	if len(arg) > 0 {
		instr.Arg = arg[0]
	}
	return instr
}

func module(instrs ...Instr) *Code {
	return &Code{
		Name:     "<module>",
		Filename: "test.py",
		Instrs:   instrs,
	}
}

func run(t *testing.T, code *Code) *Interpreter {
	t.Helper()
	interp := NewInterpreter(NewRuntime())
	if _, err := interp.Exec(context.Background(), code); err != nil {
		t.Fatalf("runtime error: %v", err)
	}
	return interp
}

func get(t *testing.T, interp *Interpreter, name string) *Handle {
	t.Helper()
	v, err := interp.Get(name)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func checkRepr(t *testing.T, interp *Interpreter, name string, want string) {
	t.Helper()
	s, err := interp.Runtime().ReprOf(get(t, interp, name))
	if err != nil {
		t.Fatal(err)
	}
	if s != want {
		t.Fatalf("%s = %s, want %s", name, s, want)
	}
}

func TestExecAssignAdd(t *testing.T) {
	interp := run(t, module(
		ins(OpLoadConst, Int64Lit(123)),
		ins(OpStoreName, StrLit("x")),
		ins(OpLoadConst, Int64Lit(45)),
		ins(OpStoreName, StrLit("y")),
		ins(OpLoadName, StrLit("x")),
		ins(OpLoadName, StrLit("y")),
		ins(OpBinaryAdd),
		ins(OpStoreName, StrLit("z")),
	))
	z := get(t, interp, "z")
	rt := interp.Runtime()
	eq, err := rt.Equal(z, rt.IntFromInt64(168))
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Fatalf("got %v", z)
	}
}

func TestExecLen(t *testing.T) {
	interp := run(t, module(
		ins(OpLoadName, StrLit("len")),
		ins(OpLoadConst, NoneLit{}),
		ins(OpLoadConst, Int64Lit(1)),
		ins(OpLoadConst, BoolLit(true)),
		ins(OpBuildTuple, CountLit(3)),
		ins(OpCallFunction, CountLit(1)),
		ins(OpStoreName, StrLit("n")),
	))
	if n := get(t, interp, "n"); !n.Is(interp.Runtime().IntFromInt64(3)) {
		t.Fatalf("got %v", n)
	}
}

func TestExecAttributes(t *testing.T) {
	code := module(
		ins(OpLoadName, StrLit("object")),
		ins(OpCallFunction, CountLit(0)),
		ins(OpStoreName, StrLit("o")),
		ins(OpLoadName, StrLit("setattr")),
		ins(OpLoadName, StrLit("o")),
		ins(OpLoadConst, StrLit("a")),
		ins(OpLoadConst, Int64Lit(5)),
		ins(OpCallFunction, CountLit(3)),
		ins(OpPopTop),
		ins(OpLoadName, StrLit("getattr")),
		ins(OpLoadName, StrLit("o")),
		ins(OpLoadConst, StrLit("a")),
		ins(OpCallFunction, CountLit(2)),
		ins(OpStoreName, StrLit("v")),
		ins(OpLoadName, StrLit("getattr")),
		ins(OpLoadName, StrLit("o")),
		ins(OpLoadConst, StrLit("missing")),
		ins(OpCallFunction, CountLit(2)),
	)
	interp := NewInterpreter(NewRuntime())
	_, err := interp.Exec(context.Background(), code)
	if !errors.Is(err, ErrAttributeError) {
		t.Fatalf("got %v", err)
	}
	if v := get(t, interp, "v"); !v.Is(interp.Runtime().IntFromInt64(5)) {
		t.Fatalf("got %v", v)
	}
}

func TestExecForLoop(t *testing.T) {
	interp := run(t, module(
		ins(OpLoadConst, Int64Lit(0)), // 0
		ins(OpStoreName, StrLit("n")),
		ins(OpBuildList, CountLit(0)),
		ins(OpStoreName, StrLit("seen")),
		ins(OpSetupLoop, CountLit(22)),
		ins(OpLoadConst, NoneLit{}), // 5
		ins(OpLoadConst, Int64Lit(1)),
		ins(OpLoadConst, BoolLit(true)),
		ins(OpBuildList, CountLit(3)),
		ins(OpGetIter),
		ins(OpForIter, CountLit(21)), // 10
		ins(OpStoreName, StrLit("item")),
		ins(OpLoadName, StrLit("seen")),
		ins(OpLoadName, StrLit("item")),
		ins(OpListAppend, CountLit(1)),
		ins(OpPopTop), // 15
		ins(OpLoadName, StrLit("n")),
		ins(OpLoadConst, Int64Lit(1)),
		ins(OpInplaceAdd),
		ins(OpStoreName, StrLit("n")),
		ins(OpJumpAbsolute, CountLit(10)), // 20
		ins(OpPopBlock),
	))
	checkRepr(t, interp, "n", "3")
	checkRepr(t, interp, "seen", "[None, 1, True]")
}

func TestExecEmptyLoop(t *testing.T) {
	interp := run(t, module(
		ins(OpLoadConst, Int64Lit(0)), // 0
		ins(OpStoreName, StrLit("n")),
		ins(OpSetupLoop, CountLit(13)),
		ins(OpBuildList, CountLit(0)),
		ins(OpGetIter),
		ins(OpForIter, CountLit(12)), // 5
		ins(OpPopTop),
		ins(OpLoadName, StrLit("n")),
		ins(OpLoadConst, Int64Lit(1)),
		ins(OpInplaceAdd),
		ins(OpStoreName, StrLit("n")), // 10
		ins(OpJumpAbsolute, CountLit(5)),
		ins(OpPopBlock),
	))
	checkRepr(t, interp, "n", "0")
}

func TestExecBreakContinue(t *testing.T) {
	interp := run(t, module(
		ins(OpLoadConst, Int64Lit(0)), // 0
		ins(OpStoreName, StrLit("total")),
		ins(OpSetupLoop, CountLit(25)),
		ins(OpLoadName, StrLit("range")),
		ins(OpLoadConst, Int64Lit(10)),
		ins(OpCallFunction, CountLit(1)), // 5
		ins(OpGetIter),
		ins(OpForIter, CountLit(24)),
		ins(OpStoreName, StrLit("i")),
		ins(OpLoadName, StrLit("i")),
		ins(OpLoadConst, Int64Lit(7)), // 10
		ins(OpCompareEqual),
		ins(OpPopJumpIfFalse, CountLit(14)),
		ins(OpBreakLoop),
		ins(OpLoadName, StrLit("i")),
		ins(OpLoadConst, Int64Lit(2)), // 15
		ins(OpBinaryModulo),
		ins(OpPopJumpIfFalse, CountLit(19)),
		ins(OpContinueLoop, CountLit(7)),
		ins(OpLoadName, StrLit("total")),
		ins(OpLoadName, StrLit("i")), // 20
		ins(OpInplaceAdd),
		ins(OpStoreName, StrLit("total")),
		ins(OpJumpAbsolute, CountLit(7)),
		ins(OpPopBlock),
		ins(OpLoadConst, NoneLit{}), // 25
		ins(OpReturnValue),
	))
	checkRepr(t, interp, "total", "12")
	checkRepr(t, interp, "i", "7")
}

func TestExecCallNoneFunction(t *testing.T) {
	fn := &Code{
		Name:     "f",
		Filename: "test.py",
		Instrs: []Instr{
			ins(OpLoadConst, NoneLit{}),
			ins(OpReturnValue),
		},
	}
	interp := run(t, module(
		ins(OpLoadConst, CodeLit{Code: fn}),
		ins(OpMakeFunction, CountLit(0)),
		ins(OpStoreName, StrLit("f")),
		ins(OpLoadName, StrLit("f")),
		ins(OpCallFunction, CountLit(0)),
		ins(OpStoreName, StrLit("r")),
		ins(OpLoadConst, Int64Lit(1)),
		ins(OpStoreName, StrLit("after")),
	))
	if r := get(t, interp, "r"); !r.Is(interp.Runtime().None()) {
		t.Fatalf("got %v", r)
	}
	checkRepr(t, interp, "after", "1")
}

func TestExecDefaultsAndKeywords(t *testing.T) {
	add := &Code{
		Name:     "add",
		Filename: "test.py",
		ArgNames: []string{"a", "b"},
		VarNames: []string{"a", "b"},
		Instrs: []Instr{
			ins(OpLoadFast, CountLit(0)),
			ins(OpLoadFast, CountLit(1)),
			ins(OpBinaryAdd),
			ins(OpReturnValue),
		},
	}
	code := module(
		ins(OpLoadConst, Int64Lit(10)),
		ins(OpLoadConst, CodeLit{Code: add}),
		ins(OpMakeFunction, CountLit(1)),
		ins(OpStoreName, StrLit("add")),

		ins(OpLoadName, StrLit("add")),
		ins(OpLoadConst, Int64Lit(1)),
		ins(OpCallFunction, CountLit(1)),
		ins(OpStoreName, StrLit("r1")),

		ins(OpLoadName, StrLit("add")),
		ins(OpLoadConst, Int64Lit(1)),
		ins(OpLoadConst, Int64Lit(2)),
		ins(OpLoadConst, ListLit{StrLit("b")}),
		ins(OpCallFunctionKw, CountLit(2)),
		ins(OpStoreName, StrLit("r2")),

		ins(OpLoadName, StrLit("add")),
		ins(OpLoadConst, ListLit{Int64Lit(3)}),
		ins(OpLoadConst, StrLit("b")),
		ins(OpLoadConst, Int64Lit(4)),
		ins(OpBuildMap, CountLit(1)),
		ins(OpCallFunctionVarKw, CountLit(1)),
		ins(OpStoreName, StrLit("r3")),

		ins(OpLoadName, StrLit("add")),
		ins(OpCallFunction, CountLit(0)),
	)
	interp := NewInterpreter(NewRuntime())
	_, err := interp.Exec(context.Background(), code)
	var e *Error
	if !errors.As(err, &e) || e.Kind != TypeError {
		t.Fatalf("got %v", err)
	}
	if e.Message != "add() missing 1 required positional argument: 'a'" {
		t.Fatalf("got %s", e.Message)
	}
	checkRepr(t, interp, "r1", "11")
	checkRepr(t, interp, "r2", "3")
	checkRepr(t, interp, "r3", "7")
}

func TestExecExcept(t *testing.T) {
	body := func(catch string) *Code {
		return module(
			ins(OpSetupExcept, CountLit(7)), // 0
			ins(OpLoadConst, Int64Lit(1)),
			ins(OpLoadConst, Int64Lit(0)),
			ins(OpBinaryTrueDivide),
			ins(OpStoreName, StrLit("x")),
			ins(OpPopBlock), // 5
			ins(OpJumpAbsolute, CountLit(17)),
			ins(OpDupTop),
			ins(OpLoadName, StrLit(catch)),
			ins(OpCompareExceptionMatch),
			ins(OpPopJumpIfFalse, CountLit(16)), // 10
			ins(OpStoreName, StrLit("e")),
			ins(OpLoadConst, StrLit("caught")),
			ins(OpStoreName, StrLit("status")),
			ins(OpPopExcept),
			ins(OpJumpAbsolute, CountLit(17)), // 15
			ins(OpEndFinally),
			ins(OpLoadConst, NoneLit{}),
			ins(OpReturnValue),
		)
	}

	interp := run(t, body("ZeroDivisionError"))
	checkRepr(t, interp, "status", "'caught'")
	e := get(t, interp, "e")
	if name := interp.Runtime().TypeName(e); name != "ZeroDivisionError" {
		t.Fatalf("got %s", name)
	}

	interp = NewInterpreter(NewRuntime())
	_, err := interp.Exec(context.Background(), body("ValueError"))
	if !errors.Is(err, ErrZeroDivision) {
		t.Fatalf("got %v", err)
	}
	var re *Error
	if !errors.As(err, &re) || len(re.Traceback) != 1 || re.Traceback[0].Name != "<module>" {
		t.Fatalf("got %#v", re)
	}
}

func TestExecReraise(t *testing.T) {
	code := module(
		ins(OpSetupExcept, CountLit(5)), // 0
		ins(OpLoadName, StrLit("KeyError")),
		ins(OpLoadConst, StrLit("k")),
		ins(OpCallFunction, CountLit(1)),
		ins(OpRaiseVarargs, CountLit(1)),
		ins(OpPopTop), // 5
		ins(OpRaiseVarargs, CountLit(0)),
	)
	interp := NewInterpreter(NewRuntime())
	_, err := interp.Exec(context.Background(), code)
	var e *Error
	if !errors.As(err, &e) || e.Kind != KeyError || e.Message != "k" {
		t.Fatalf("got %v", err)
	}

	_, err = interp.Exec(context.Background(), module(
		ins(OpRaiseVarargs, CountLit(0)),
	))
	if !errors.Is(err, ErrRuntimeError) {
		t.Fatalf("got %v", err)
	}
}

func TestExecFinallyReturn(t *testing.T) {
	g := &Code{
		Name:     "g",
		Filename: "test.py",
		Instrs: []Instr{
			ins(OpSetupFinally, CountLit(5)), // 0
			ins(OpLoadConst, Int64Lit(1)),
			ins(OpReturnValue),
			ins(OpPopBlock),
			ins(OpLoadConst, NoneLit{}),
			ins(OpLoadConst, StrLit("done")), // 5
			ins(OpStoreGlobal, StrLit("flag")),
			ins(OpEndFinally),
			ins(OpLoadConst, Int64Lit(2)),
			ins(OpReturnValue),
		},
	}
	interp := run(t, module(
		ins(OpLoadConst, CodeLit{Code: g}),
		ins(OpMakeFunction, CountLit(0)),
		ins(OpCallFunction, CountLit(0)),
		ins(OpStoreName, StrLit("r")),
	))
	checkRepr(t, interp, "r", "1")
	checkRepr(t, interp, "flag", "'done'")
}

func TestExecWith(t *testing.T) {
	rt := NewRuntime()
	var exitArgs []string
	ns := rt.Dict()
	for name, fn := range map[string]NativeFunc{
		"__enter__": func(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
			return rt.Str("entered"), nil
		},
		"__exit__": func(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
			for _, arg := range args {
				s, err := rt.ReprOf(arg)
				if err != nil {
					return nil, err
				}
				exitArgs = append(exitArgs, s)
			}
			return rt.Bool(true), nil
		},
	} {
		if err := rt.SetItem(ns, rt.Str(name), rt.NativeFunction(name, fn)); err != nil {
			t.Fatal(err)
		}
	}
	interp := NewInterpreter(rt)
	if err := rt.SetItem(interp.Globals(), rt.Str("Mgr"), rt.NewType("Mgr", nil, ns)); err != nil {
		t.Fatal(err)
	}

	_, err := interp.Exec(context.Background(), module(
		ins(OpLoadName, StrLit("Mgr")), // 0
		ins(OpCallFunction, CountLit(0)),
		ins(OpSetupWith, CountLit(9)),
		ins(OpStoreName, StrLit("entered")),
		ins(OpLoadName, StrLit("ValueError")),
		ins(OpRaiseVarargs, CountLit(1)), // 5
		ins(OpPopBlock),
		ins(OpLoadConst, NoneLit{}),
		ins(OpNop),
		ins(OpWithCleanup),
		ins(OpEndFinally), // 10
		ins(OpLoadConst, Int64Lit(1)),
		ins(OpStoreName, StrLit("after")),
	))
	if err != nil {
		t.Fatal(err)
	}
	checkRepr(t, interp, "entered", "'entered'")
	checkRepr(t, interp, "after", "1")
	if strings.Join(exitArgs, " ") != "<class 'ValueError'> ValueError() None" {
		t.Fatalf("got %v", exitArgs)
	}
}

func TestExecRecursionLimit(t *testing.T) {
	f := &Code{
		Name:     "f",
		Filename: "test.py",
		Instrs: []Instr{
			ins(OpLoadGlobal, StrLit("f")),
			ins(OpCallFunction, CountLit(0)),
			ins(OpReturnValue),
		},
	}
	interp := NewInterpreter(NewRuntime(), WithRecursionLimit(50))
	_, err := interp.Exec(context.Background(), module(
		ins(OpLoadConst, CodeLit{Code: f}),
		ins(OpMakeFunction, CountLit(0)),
		ins(OpStoreName, StrLit("f")),
		ins(OpLoadName, StrLit("f")),
		ins(OpCallFunction, CountLit(0)),
	))
	var e *Error
	if !errors.As(err, &e) || e.Kind != RecursionError {
		t.Fatalf("got %v", err)
	}
	if len(e.Traceback) != 50 {
		t.Fatalf("got %d entries", len(e.Traceback))
	}
}

func TestExecNativeCallsCode(t *testing.T) {
	initCode := &Code{
		Name:     "__init__",
		Filename: "test.py",
		ArgNames: []string{"self", "v"},
		VarNames: []string{"self", "v"},
		Instrs: []Instr{
			ins(OpLoadFast, CountLit(1)),
			ins(OpLoadFast, CountLit(0)),
			ins(OpStoreAttr, StrLit("v")),
			ins(OpLoadConst, NoneLit{}),
			ins(OpReturnValue),
		},
	}
	interp := run(t, module(
		ins(OpLoadName, StrLit("type")),
		ins(OpLoadConst, StrLit("P")),
		ins(OpBuildTuple, CountLit(0)),
		ins(OpLoadConst, StrLit("__init__")),
		ins(OpLoadConst, CodeLit{Code: initCode}),
		ins(OpMakeFunction, CountLit(0)),
		ins(OpBuildMap, CountLit(1)),
		ins(OpCallFunction, CountLit(3)),
		ins(OpStoreName, StrLit("P")),
		ins(OpLoadName, StrLit("P")),
		ins(OpLoadConst, Int64Lit(5)),
		ins(OpCallFunction, CountLit(1)),
		ins(OpLoadAttr, StrLit("v")),
		ins(OpStoreName, StrLit("r")),
	))
	checkRepr(t, interp, "r", "5")
}

func TestExecTraceback(t *testing.T) {
	f := &Code{
		Name:     "f",
		Filename: "test.py",
		Instrs: []Instr{
			ins(OpSetLineNumber, CountLit(2)),
			ins(OpLoadGlobal, StrLit("undefined")),
			ins(OpReturnValue),
		},
	}
	interp := NewInterpreter(NewRuntime())
	_, err := interp.Exec(context.Background(), module(
		ins(OpSetLineNumber, CountLit(1)),
		ins(OpLoadConst, CodeLit{Code: f}),
		ins(OpMakeFunction, CountLit(0)),
		ins(OpSetLineNumber, CountLit(4)),
		ins(OpCallFunction, CountLit(0)),
	))
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("got %v", err)
	}
	want := `Traceback (most recent call last):
  File "test.py", line 4, in <module>
  File "test.py", line 2, in f
NameError: name 'undefined' is not defined`
	if got := e.FormatTraceback(); got != want {
		t.Fatalf("got %s", got)
	}
}

func TestExecOne(t *testing.T) {
	rt := NewRuntime()
	interp := NewInterpreter(rt)
	ctx := context.Background()

	r, err := interp.ExecOne(ctx, ins(OpLoadConst, Int64Lit(1)))
	if err != nil {
		t.Fatal(err)
	}
	if !r.Is(rt.IntFromInt64(1)) {
		t.Fatalf("got %v", r)
	}
	r, err = interp.ExecOne(ctx, ins(OpStoreName, StrLit("a")))
	if err != nil {
		t.Fatal(err)
	}
	if r != nil {
		t.Fatalf("got %v", r)
	}
	r, err = interp.ExecOne(ctx, ins(OpLoadName, StrLit("a")))
	if err != nil {
		t.Fatal(err)
	}
	if !r.Is(rt.IntFromInt64(1)) {
		t.Fatalf("got %v", r)
	}

	if _, err := interp.ExecOne(ctx, ins(OpJumpAbsolute, CountLit(0))); !errors.Is(err, ErrSystemError) {
		t.Fatalf("got %v", err)
	}
	if _, err := interp.ExecOne(ctx, ins(OpLoadName, StrLit("nope"))); !errors.Is(err, ErrNameError) {
		t.Fatalf("got %v", err)
	}
}

func TestBlockStackOverflow(t *testing.T) {
	var instrs []Instr
	for range MaxBlockDepth + 1 {
		instrs = append(instrs, ins(OpSetupLoop, CountLit(0)))
	}
	defer func() {
		p := recover()
		err, ok := p.(error)
		if !ok || !errors.Is(err, errFatalBlockDepth) {
			t.Fatalf("got %v", p)
		}
	}()
	interp := NewInterpreter(NewRuntime())
	interp.Exec(context.Background(), module(instrs...))
	t.Fatal("should panic")
}

func TestExecCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	interp := NewInterpreter(NewRuntime())
	_, err := interp.Exec(ctx, module(
		ins(OpSetLineNumber, CountLit(1)),
		ins(OpLoadConst, Int64Lit(1)),
		ins(OpStoreName, StrLit("x")),
	))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
	if _, err := interp.Get("x"); !errors.Is(err, ErrNameError) {
		t.Fatalf("got %v", err)
	}
}

func TestPrintExpr(t *testing.T) {
	buf := new(bytes.Buffer)
	rt := NewRuntime(WithStdout(buf))
	interp := NewInterpreter(rt)
	_, err := interp.Exec(context.Background(), module(
		ins(OpLoadConst, StrLit("hi")),
		ins(OpPrintExpr),
		ins(OpLoadConst, NoneLit{}),
		ins(OpPrintExpr),
		ins(OpLoadName, StrLit("print")),
		ins(OpLoadConst, Int64Lit(1)),
		ins(OpLoadConst, StrLit("a")),
		ins(OpLoadConst, StrLit("-")),
		ins(OpLoadConst, ListLit{StrLit("sep")}),
		ins(OpCallFunctionKw, CountLit(3)),
		ins(OpPopTop),
	))
	if err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "'hi'\n1-a\n" {
		t.Fatalf("got %q", got)
	}
}

func TestAssertCondition(t *testing.T) {
	interp := NewInterpreter(NewRuntime())
	_, err := interp.Exec(context.Background(), module(
		ins(OpLoadConst, BoolLit(true)),
		ins(OpAssertCondition, CountLit(1)),
		ins(OpLoadConst, BoolLit(false)),
		ins(OpLoadConst, StrLit("boom")),
		ins(OpAssertCondition, CountLit(2)),
	))
	var e *Error
	if !errors.As(err, &e) || e.Kind != AssertionError || e.Message != "boom" {
		t.Fatalf("got %v", err)
	}
}

func TestUnpackSequence(t *testing.T) {
	interp := run(t, module(
		ins(OpLoadConst, ListLit{Int64Lit(1), Int64Lit(2)}),
		ins(OpUnpackSequence, CountLit(2)),
		ins(OpStoreName, StrLit("a")),
		ins(OpStoreName, StrLit("b")),
	))
	checkRepr(t, interp, "a", "1")
	checkRepr(t, interp, "b", "2")

	interp = NewInterpreter(NewRuntime())
	_, err := interp.Exec(context.Background(), module(
		ins(OpLoadConst, ListLit{Int64Lit(1), Int64Lit(2)}),
		ins(OpUnpackSequence, CountLit(3)),
	))
	var e *Error
	if !errors.As(err, &e) || e.Message != "not enough values to unpack (expected 3, got 2)" {
		t.Fatalf("got %v", err)
	}
}
