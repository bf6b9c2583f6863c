package snekpy

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/snek/snekvm"
)

func run(t *testing.T, src string) *snekvm.Interpreter {
	t.Helper()
	code, err := Compile("test.py", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	interp := snekvm.NewInterpreter(snekvm.NewRuntime())
	if _, err := interp.Exec(context.Background(), code); err != nil {
		t.Fatalf("runtime error: %v", err)
	}
	return interp
}

func runError(t *testing.T, src string) *snekvm.Error {
	t.Helper()
	code, err := Compile("test.py", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	interp := snekvm.NewInterpreter(snekvm.NewRuntime())
	_, err = interp.Exec(context.Background(), code)
	var e *snekvm.Error
	if !errors.As(err, &e) {
		t.Fatalf("got %v", err)
	}
	return e
}

func check(t *testing.T, interp *snekvm.Interpreter, name string, want string) {
	t.Helper()
	v, err := interp.Get(name)
	if err != nil {
		t.Errorf("%s not found", name)
		return
	}
	got, err := interp.Runtime().ReprOf(v)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}

func TestOps(t *testing.T) {
	interp := run(t, `
a = 10
b = 3

c = a + b
d = a - b
e = a * b
f = a / b
g = a // b
h = a % b

j = a == b
k = a != b
l = a < b
m = a <= b
n = a > b
o = a >= b

p = a & b
q = a | b
r = a ^ b
s = a << b
t = a >> b

u = 1 in [1, 2, 3]
v = 1 not in [1, 2, 3]

w = (1 < 2) and (2 < 3)
x = (1 < 2) or (2 > 3)
y = 0 or "default"
z = 1 and None

big = 1 << 100
neg = -7 % 3
fd = -7 // 2
half = 7 / 2
inv = ~5
not_ = not a
s2 = "ab" * 3
`)
	check(t, interp, "c", "13")
	check(t, interp, "d", "7")
	check(t, interp, "e", "30")
	check(t, interp, "f", "3.3333333333333335")
	check(t, interp, "g", "3")
	check(t, interp, "h", "1")
	check(t, interp, "j", "False")
	check(t, interp, "k", "True")
	check(t, interp, "l", "False")
	check(t, interp, "m", "False")
	check(t, interp, "n", "True")
	check(t, interp, "o", "True")
	check(t, interp, "p", "2")
	check(t, interp, "q", "11")
	check(t, interp, "r", "9")
	check(t, interp, "s", "80")
	check(t, interp, "t", "1")
	check(t, interp, "u", "True")
	check(t, interp, "v", "False")
	check(t, interp, "w", "True")
	check(t, interp, "x", "True")
	check(t, interp, "y", "'default'")
	check(t, interp, "z", "None")
	check(t, interp, "big", "1267650600228229401496703205376")
	check(t, interp, "neg", "2")
	check(t, interp, "fd", "-4")
	check(t, interp, "half", "3.5")
	check(t, interp, "inv", "-6")
	check(t, interp, "not_", "False")
	check(t, interp, "s2", "'ababab'")
}

func TestScenarios(t *testing.T) {
	interp := run(t, `
x = 123
y = 45
z = x + y
`)
	check(t, interp, "z", "168")

	interp = run(t, `
n = len((None, 1, True))
`)
	check(t, interp, "n", "3")

	interp = run(t, `
def f():
	pass
r = f()
after = 1
`)
	check(t, interp, "r", "None")
	check(t, interp, "after", "1")
}

func TestControlFlow(t *testing.T) {
	interp := run(t, `
def sign(n):
	if n < 0:
		return -1
	elif n == 0:
		return 0
	else:
		return 1
signs = [sign(-5), sign(0), sign(5)]

total = 0
i = 0
while True:
	i += 1
	if i > 10:
		break
	if i % 2 == 0:
		continue
	total += i

found = None
for row in [[1, 2], [3, 4], [5, 6]]:
	for v in row:
		if v == 4:
			found = v
			break
	if found != None:
		break
`)
	check(t, interp, "signs", "[-1, 0, 1]")
	check(t, interp, "total", "25")
	check(t, interp, "i", "11")
	check(t, interp, "found", "4")
	check(t, interp, "row", "[3, 4]")
}

func TestFunctions(t *testing.T) {
	interp := run(t, `
def add(a, b=10):
	return a + b
r1 = add(1)
r2 = add(1, 2)
r3 = add(b=3, a=4)

def kw(a, *, k, m=2):
	return [a, k, m]
r4 = kw(1, k=5)

def rest(a, *args, **kwargs):
	return [a, args, kwargs]
r5 = rest(1, 2, 3, x=4)
r6 = rest(*[7, 8], **{"y": 9})

def fib(n):
	if n < 2:
		return n
	return fib(n - 1) + fib(n - 2)
r7 = fib(15)

double = lambda x: x * 2
r8 = double(21)

def outer(n):
	def inner(m):
		return m + 1
	return inner(n) * 2
r9 = outer(4)

def noreturn():
	x = 1
r10 = noreturn()

def locals_():
	a = 1
	b, c = 2, 3
	for d in [4]:
		pass
	return [a, b, c, d]
r11 = locals_()
`)
	check(t, interp, "r1", "11")
	check(t, interp, "r2", "3")
	check(t, interp, "r3", "7")
	check(t, interp, "r4", "[1, 5, 2]")
	check(t, interp, "r5", "[1, (2, 3), {'x': 4}]")
	check(t, interp, "r6", "[7, (8,), {'y': 9}]")
	check(t, interp, "r7", "610")
	check(t, interp, "r8", "42")
	check(t, interp, "r9", "10")
	check(t, interp, "r10", "None")
	check(t, interp, "r11", "[1, 2, 3, 4]")
	if _, err := interp.Get("x"); err == nil {
		t.Fatal("function local leaked into globals")
	}
}

func TestFunctionAttributes(t *testing.T) {
	interp := run(t, `
def named(a, b=1):
	return a
name = named.__name__
defaults = named.__defaults__
`)
	check(t, interp, "name", "'named'")
	check(t, interp, "defaults", "(1,)")
}

func TestCallErrors(t *testing.T) {
	for src, msg := range map[string]string{
		"def f(a):\n\tpass\nf()":          "f() missing 1 required positional argument: 'a'",
		"def f(a):\n\tpass\nf(1, 2)":      "f() takes 1 positional argument but 2 were given",
		"def f(a):\n\tpass\nf(1, b=2)":    "f() got an unexpected keyword argument 'b'",
		"def f(a):\n\tpass\nf(1, a=2)":    "f() got multiple values for argument 'a'",
		"def f(*, k):\n\tpass\nf()":       "f() missing 1 required keyword-only argument: 'k'",
		"def f(a, b=1):\n\tpass\nf(1,2,3)": "f() takes from 1 to 2 positional arguments but 3 were given",
	} {
		e := runError(t, src)
		if e.Kind != snekvm.TypeError || e.Message != msg {
			t.Fatalf("%q: got %v", src, e)
		}
	}
}

func TestComprehensions(t *testing.T) {
	interp := run(t, `
squares = [x * x for x in range(6) if x % 2 == 0]
pairs = [(a, b) for a in [1, 2] for b in "xy"]
index = {v: k for k, v in [(1, "one"), (2, "two")]}
def inside():
	return [c for c in [3, 2, 1] if c > 1]
local = inside()
`)
	check(t, interp, "squares", "[0, 4, 16]")
	check(t, interp, "pairs", "[(1, 'x'), (1, 'y'), (2, 'x'), (2, 'y')]")
	check(t, interp, "index", "{'one': 1, 'two': 2}")
	check(t, interp, "local", "[3, 2]")
}

func TestAssignments(t *testing.T) {
	interp := run(t, `
a, b = 1, 2
a, b = b, a
[x, (y, z)] = [1, (2, 3)]

l = [1, 2, 3]
l[0] += 5
l[1] = 9

d = {"k": 10}
d["k"] -= 1
d["new"] = 1

O = type("O", (), {})
o = O()
o.n = 1
o.n += 2

n = 0
for k, v in {"p": 1, "q": 2}.items():
	n += v
`)
	check(t, interp, "a", "2")
	check(t, interp, "b", "1")
	check(t, interp, "x", "1")
	check(t, interp, "z", "3")
	check(t, interp, "l", "[6, 9, 3]")
	check(t, interp, "d", "{'k': 9, 'new': 1}")
	check(t, interp, "n", "3")

	o, err := interp.Get("o")
	if err != nil {
		t.Fatal(err)
	}
	n, err := interp.Runtime().GetAttr(o, "n")
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := interp.Runtime().ReprOf(n); s != "3" {
		t.Fatalf("got %s", s)
	}
}

func TestMethods(t *testing.T) {
	interp := run(t, `
l = []
l.append(1)
l.extend([2, 3])
popped = l.pop()
d = {"a": 1}
got = d.get("a")
missing = d.get("b", 0)
up = "abc".upper()
joined = ", ".join(["x", "y"])
parts = "a b c".split()
`)
	check(t, interp, "l", "[1, 2]")
	check(t, interp, "popped", "3")
	check(t, interp, "got", "1")
	check(t, interp, "missing", "0")
	check(t, interp, "up", "'ABC'")
	check(t, interp, "joined", "'x, y'")
	check(t, interp, "parts", "['a', 'b', 'c']")
}

func TestLoad(t *testing.T) {
	interp := run(t, `
load("builtins", "len", size = "len")
n = size([1, 2]) + len("abc")
`)
	check(t, interp, "n", "5")

	e := runError(t, `load("nowhere", "x")`)
	if e.Kind != snekvm.ModuleNotFoundError {
		t.Fatalf("got %v", e)
	}
}

func TestAssert(t *testing.T) {
	run(t, `assert_(1 == 1)`)

	e := runError(t, `
x = 1
assert_(x == 2, "x is " + str(x))
`)
	if e.Kind != snekvm.AssertionError || e.Message != "x is 1" {
		t.Fatalf("got %v", e)
	}

	_, err := Compile("test.py", strings.NewReader(`assert_()`))
	if !errors.Is(err, snekvm.ErrSyntaxError) {
		t.Fatalf("got %v", err)
	}
}

func TestTraceback(t *testing.T) {
	e := runError(t, `
def inner():
	return undefined

def outer():
	x = 1
	return inner()

outer()
`)
	want := `Traceback (most recent call last):
  File "test.py", line 9, in <module>
  File "test.py", line 7, in outer
  File "test.py", line 3, in inner
NameError: name 'undefined' is not defined`
	if got := e.FormatTraceback(); got != want {
		t.Fatalf("got %s", got)
	}
}

func TestRuntimeErrors(t *testing.T) {
	for src, kind := range map[string]snekvm.ErrorKind{
		"1 / 0":                        snekvm.ZeroDivisionError,
		"[1][5]":                       snekvm.IndexError,
		"{}['k']":                      snekvm.KeyError,
		"1 + 'a'":                      snekvm.TypeError,
		"None.x":                       snekvm.AttributeError,
		"a, b = [1]":                   snekvm.ValueError,
		"def f():\n\treturn f()\nf()": snekvm.RecursionError,
		"int('x')":                     snekvm.ValueError,
		"nope":                         snekvm.NameError,
	} {
		if e := runError(t, src); e.Kind != kind {
			t.Fatalf("%q: got %v", src, e)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{
		"x = ",
		"return 1",
		"break",
		"def f():\n\tcontinue",
		"x = [1, 2][0:1]",
		"None = 1",
	} {
		_, err := Compile("test.py", strings.NewReader(src))
		if !errors.Is(err, snekvm.ErrSyntaxError) {
			t.Fatalf("%q: got %v", src, err)
		}
	}
}

func TestInteractive(t *testing.T) {
	buf := new(bytes.Buffer)
	interp := snekvm.NewInterpreter(snekvm.NewRuntime(snekvm.WithStdout(buf)))
	for _, line := range []string{
		"1 + 1",
		"x = 3",
		"x",
		"None",
		"def f():\n\t5\n\treturn 'done'\n",
		"f()",
	} {
		code, err := CompileInteractive("<stdin>", strings.NewReader(line))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := interp.Exec(context.Background(), code); err != nil {
			t.Fatal(err)
		}
	}
	if got := buf.String(); got != "2\n3\n'done'\n" {
		t.Fatalf("got %q", got)
	}
}

func TestExecOneStraightLine(t *testing.T) {
	code, err := CompileInteractive("<stdin>", strings.NewReader("x = 1\ny = x + 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !code.StraightLine() {
		t.Fatalf("got\n%s", code.Disassemble())
	}
	interp := snekvm.NewInterpreter(snekvm.NewRuntime())
	for _, instr := range code.Instrs {
		if _, err := interp.ExecOne(context.Background(), instr); err != nil {
			t.Fatal(err)
		}
	}
	check(t, interp, "y", "3")

	code, err = Compile("test.py", strings.NewReader("for x in []:\n\tpass\n"))
	if err != nil {
		t.Fatal(err)
	}
	if code.StraightLine() {
		t.Fatal("loop is not straight-line")
	}
}

func TestCompiledRoundTrip(t *testing.T) {
	code, err := Compile("test.py", strings.NewReader(`
def f(a, *rest, k=1):
	return [a, rest, k, b"\x00"]
r = f(1, 2, k=3)
`))
	if err != nil {
		t.Fatal(err)
	}
	for _, format := range []snekvm.Format{snekvm.FormatCBOR, snekvm.FormatYAML} {
		buf := new(bytes.Buffer)
		if err := snekvm.EncodeCode(buf, code, format); err != nil {
			t.Fatal(err)
		}
		decoded, err := snekvm.DecodeCode(buf, format)
		if err != nil {
			t.Fatal(err)
		}
		interp := snekvm.NewInterpreter(snekvm.NewRuntime())
		if _, err := interp.Exec(context.Background(), decoded); err != nil {
			t.Fatal(err)
		}
		check(t, interp, "r", "[1, (2,), 3, b'\\x00']")
	}
}

func TestCancel(t *testing.T) {
	code, err := Compile("test.py", strings.NewReader("while True:\n\tpass\n"))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	interp := snekvm.NewInterpreter(snekvm.NewRuntime())
	if _, err := interp.Exec(ctx, code); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
}
