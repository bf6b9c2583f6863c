package snekconfigs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/snek/configs"
	"github.com/reusee/snek/modes"
	"github.com/reusee/snek/snekvm"
)

func newScope(t *testing.T, cue string) dscope.Scope {
	return dscope.New(new(Module)).Fork(
		modes.ForTest(t),
		dscope.Provide(configs.NewSourceLoader(func() ([]configs.Source, error) {
			if cue == "" {
				return nil, nil
			}
			return []configs.Source{
				{Name: "snek.cue", Content: []byte(cue)},
			}, nil
		}, schema)),
	)
}

func TestDefaults(t *testing.T) {
	newScope(t, "").Call(func(
		limit RecursionLimit,
		trace TraceInstructions,
		dump DumpFormat,
		prompt Prompt,
	) {
		if limit != snekvm.DefaultRecursionLimit {
			t.Fatalf("got %v", limit)
		}
		if trace {
			t.Fatal()
		}
		if dump != "" {
			t.Fatalf("got %v", dump)
		}
		if prompt != ">>> " {
			t.Fatalf("got %q", prompt)
		}
	})
}

func TestCueConfig(t *testing.T) {
	newScope(t, `
recursion_limit: 64
trace_instructions: true
dump_format: "cbor"
prompt: "snek> "
`).Call(func(
		limit RecursionLimit,
		trace TraceInstructions,
		dump DumpFormat,
		prompt Prompt,
	) {
		if limit != 64 {
			t.Fatalf("got %v", limit)
		}
		if !trace {
			t.Fatal()
		}
		if dump != "cbor" {
			t.Fatalf("got %v", dump)
		}
		if prompt != "snek> " {
			t.Fatalf("got %q", prompt)
		}
	})
}

func TestCueSchema(t *testing.T) {
	scope := newScope(t, `dump_format: "json"`)
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	scope.Call(func(dump DumpFormat) {})
}

func TestScriptConfig(t *testing.T) {
	scope, err := scriptFork(t.Context(), newScope(t, `prompt: "cue> "`), "snek.py", []byte(`
RecursionLimit = 10 * 5
Prompt = "py> "
unrelated = [1, 2]
`))
	if err != nil {
		t.Fatal(err)
	}
	scope.Call(func(
		limit RecursionLimit,
		prompt Prompt,
		trace TraceInstructions,
	) {
		if limit != 50 {
			t.Fatalf("got %v", limit)
		}
		if prompt != "py> " {
			t.Fatalf("got %q", prompt)
		}
		if trace {
			t.Fatal()
		}
	})

	if _, err := scriptFork(t.Context(), scope, "bad.py", []byte("Prompt = 1\n")); err == nil {
		t.Fatal("should fail")
	}
	if _, err := scriptFork(t.Context(), scope, "bad.py", []byte("1 / 0\n")); err == nil {
		t.Fatal("should fail")
	}
}
