package debugs

import (
	"math/big"
	"testing"

	"github.com/reusee/snek/snekvm"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	rt := snekvm.NewRuntime()
	large, _ := new(big.Int).SetString("123456789012345678901234567890", 10)

	dict := rt.Dict()
	if err := rt.SetItem(dict, rt.Str("a"), rt.IntFromInt64(1)); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name     string
		input    *snekvm.Handle
		expected starlark.Value
	}{
		{"none", rt.None(), starlark.None},
		{"bool", rt.Bool(true), starlark.True},
		{"int", rt.IntFromInt64(42), starlark.MakeInt(42)},
		{"big int", rt.Int(large), starlark.MakeBigInt(large)},
		{"float", rt.Float(1.5), starlark.Float(1.5)},
		{"str", rt.Str("hello"), starlark.String("hello")},
		{"bytes", rt.Bytes([]byte("abc")), starlark.Bytes("abc")},
		{"tuple", rt.Tuple([]*snekvm.Handle{rt.IntFromInt64(1), rt.Str("a")}),
			starlark.Tuple{starlark.MakeInt(1), starlark.String("a")}},
		{"list", rt.List([]*snekvm.Handle{rt.None(), rt.Bool(false)}),
			starlark.NewList([]starlark.Value{starlark.None, starlark.False})},
		{"dict", dict, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("a"), starlark.MakeInt(1))
			return d
		}()},
		{"complex", rt.Complex(2i), starlark.String("2j")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := toStarlarkValue(rt, tc.input)
			if err != nil {
				t.Fatal(err)
			}
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("got %v, want %v", actual, tc.expected)
			}
		})
	}
}

func TestFromStarlarkValue(t *testing.T) {
	rt := snekvm.NewRuntime()
	d := starlark.NewDict(1)
	d.SetKey(starlark.String("k"), starlark.NewList([]starlark.Value{
		starlark.MakeInt(1),
		starlark.Tuple{starlark.None, starlark.True},
	}))
	h, err := fromStarlarkValue(rt, d)
	if err != nil {
		t.Fatal(err)
	}
	repr, err := rt.ReprOf(h)
	if err != nil {
		t.Fatal(err)
	}
	if repr != "{'k': [1, (None, True)]}" {
		t.Fatalf("got %s", repr)
	}

	if _, err := fromStarlarkValue(rt, starlark.NewSet(0)); err == nil {
		t.Fatal("should fail")
	}
}

func TestCallable(t *testing.T) {
	rt := snekvm.NewRuntime()
	length, err := rt.GetBuiltin("len")
	if err != nil {
		t.Fatal(err)
	}
	fn, err := toStarlarkValue(rt, length)
	if err != nil {
		t.Fatal(err)
	}
	thread := &starlark.Thread{
		Name: "test",
	}
	ret, err := starlark.Call(thread, fn, starlark.Tuple{
		starlark.NewList([]starlark.Value{starlark.None, starlark.None}),
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ret.String() != "2" {
		t.Fatalf("got %v", ret)
	}

	// passing a wrapped callable back unwraps it
	h, err := fromStarlarkValue(rt, fn)
	if err != nil {
		t.Fatal(err)
	}
	if h != length {
		t.Fatal()
	}
}
