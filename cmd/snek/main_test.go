package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/snek/modes"
	"github.com/reusee/snek/snekconfigs"
	"github.com/reusee/snek/snekvm"
)

func testScope(t *testing.T, stdout io.Writer, defs ...any) dscope.Scope {
	return dscope.New(new(Module)).Fork(
		append([]any{
			modes.ForTest(t),
			func() Stdout {
				return stdout
			},
		}, defs...)...,
	)
}

func TestRun(t *testing.T) {
	out := new(bytes.Buffer)
	testScope(t, out).Call(func(
		newInterpreter NewInterpreter,
		run Run,
	) {
		interp := newInterpreter(context.Background())
		if err := run(context.Background(), interp, "<string>", strings.NewReader(`
def greet(name):
	return "hello, " + name
print(greet("snek"))
`)); err != nil {
			t.Fatal(err)
		}
		if out.String() != "hello, snek\n" {
			t.Fatalf("got %q", out.String())
		}

		err := run(context.Background(), interp, "<string>", strings.NewReader("1 / 0\n"))
		var e *snekvm.Error
		if !errors.As(err, &e) || e.Kind != snekvm.ZeroDivisionError {
			t.Fatalf("got %v", err)
		}
		buf := new(bytes.Buffer)
		printError(buf, err)
		want := "Traceback (most recent call last):\n" +
			"  File \"<string>\", line 1, in <module>\n" +
			"ZeroDivisionError: division by zero\n"
		if buf.String() != want {
			t.Fatalf("got %q", buf.String())
		}
	})
}

func TestRecursionLimit(t *testing.T) {
	testScope(t, io.Discard,
		func() snekconfigs.RecursionLimit {
			return 20
		},
	).Call(func(
		newInterpreter NewInterpreter,
		run Run,
	) {
		interp := newInterpreter(context.Background())
		err := run(context.Background(), interp, "<string>", strings.NewReader(`
def f(n):
	return f(n + 1)
f(0)
`))
		if !errors.Is(err, snekvm.ErrRecursionError) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestDumpAndRunCompiled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.py")
	if err := os.WriteFile(path, []byte("print([1, 2] + [3])\n"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, format := range []string{"yaml", "cbor"} {
		out := new(bytes.Buffer)
		testScope(t, out,
			func() snekconfigs.DumpFormat {
				return snekconfigs.DumpFormat(format)
			},
		).Call(func(
			newInterpreter NewInterpreter,
			run Run,
		) {
			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			if err := run(context.Background(), newInterpreter(context.Background()), path, f); err != nil {
				t.Fatal(err)
			}

			compiled, err := os.Open(path + compiledSuffix)
			if err != nil {
				t.Fatal(err)
			}
			defer compiled.Close()
			if err := run(context.Background(), newInterpreter(context.Background()), path+compiledSuffix, compiled); err != nil {
				t.Fatal(err)
			}
			if out.String() != "[1, 2, 3]\n[1, 2, 3]\n" {
				t.Fatalf("%s: got %q", format, out.String())
			}
		})
	}
}

func TestDumpStdin(t *testing.T) {
	if err := dumpCode("<stdin>", &snekvm.Code{}, "yaml"); err == nil {
		t.Fatal("should fail")
	}
}

func TestReadStatement(t *testing.T) {
	lines := []string{
		"for i in range(3):",
		"\tprint(i)",
		"",
		"x = 1",
	}
	readLine := func() (string, error) {
		if len(lines) == 0 {
			return "", io.EOF
		}
		line := lines[0]
		lines = lines[1:]
		return line, nil
	}
	continued := 0
	src, err := readStatement(readLine, func() {
		continued++
	})
	if err != nil {
		t.Fatal(err)
	}
	if src != "for i in range(3):\n\tprint(i)\n" {
		t.Fatalf("got %q", src)
	}
	if continued != 1 {
		t.Fatalf("got %v", continued)
	}

	src, err = readStatement(readLine, func() {
		continued++
	})
	if err != nil {
		t.Fatal(err)
	}
	if src != "x = 1\n" || continued != 1 {
		t.Fatalf("got %q", src)
	}

	if _, err := readStatement(readLine, func() {}); !errors.Is(err, io.EOF) {
		t.Fatalf("got %v", err)
	}
}

func TestEvalInteractive(t *testing.T) {
	out := new(bytes.Buffer)
	interp := snekvm.NewInterpreter(snekvm.NewRuntime(snekvm.WithStdout(out)))
	ctx := context.Background()
	for _, src := range []string{
		"x = 2\n",
		"x * 21\n",
		"for i in range(2):\n\tx += i\n",
		"x\n",
	} {
		if err := evalInteractive(ctx, interp, src); err != nil {
			t.Fatal(err)
		}
	}
	if out.String() != "42\n3\n" {
		t.Fatalf("got %q", out.String())
	}

	// the session survives errors
	if err := evalInteractive(ctx, interp, "undefined\n"); !errors.Is(err, snekvm.ErrNameError) {
		t.Fatalf("got %v", err)
	}
	if err := evalInteractive(ctx, interp, "x +\n"); !errors.Is(err, snekvm.ErrSyntaxError) {
		t.Fatalf("got %v", err)
	}
	if err := evalInteractive(ctx, interp, "x\n"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "42\n3\n3\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestDetectFormat(t *testing.T) {
	code := &snekvm.Code{Name: "<module>"}
	for _, format := range []snekvm.Format{snekvm.FormatCBOR, snekvm.FormatYAML} {
		buf := new(bytes.Buffer)
		if err := snekvm.EncodeCode(buf, code, format); err != nil {
			t.Fatal(err)
		}
		if got := detectFormat(buf.Bytes()); got != format {
			t.Fatalf("got %v, want %v", got, format)
		}
	}
}
