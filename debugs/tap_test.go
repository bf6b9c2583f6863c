package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/snek/snekvm"
)

func TestTap(t *testing.T) {
	rt := snekvm.NewRuntime()
	globals := rt.Dict()
	if err := rt.SetItem(globals, rt.Str("foo"), rt.IntFromInt64(42)); err != nil {
		t.Fatal(err)
	}
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		if err := tap(t.Context(), "test", rt, globals); err != nil {
			t.Fatal(err)
		}
		if err := tap(t.Context(), "test", rt, rt.List(nil)); err == nil {
			t.Fatal("should fail")
		}
	})
}

func TestTapGlobals(t *testing.T) {
	rt := snekvm.NewRuntime()
	globals := rt.Dict()
	for name, value := range map[string]*snekvm.Handle{
		"n":            rt.IntFromInt64(1),
		"s":            rt.Str("x"),
		"__builtins__": rt.None(),
	} {
		if err := rt.SetItem(globals, rt.Str(name), value); err != nil {
			t.Fatal(err)
		}
	}
	if err := rt.SetItem(globals, rt.IntFromInt64(1), rt.None()); err != nil {
		t.Fatal(err)
	}
	mappings, err := tapGlobals(rt, globals)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := mappings["__builtins__"]; ok {
		t.Fatal("builtins exposed")
	}
	if got := mappings["n"].String(); got != "1" {
		t.Fatalf("got %v", got)
	}
	if _, ok := mappings["snek_repr"]; !ok {
		t.Fatal()
	}
	if len(mappings) != 3 {
		t.Fatalf("got %v", mappings.Keys())
	}
}
