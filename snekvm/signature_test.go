package snekvm

import (
	"testing"
)

func TestSignatureBind(t *testing.T) {
	rt := NewRuntime()
	one := rt.IntFromInt64(1)
	two := rt.IntFromInt64(2)
	sig := &Signature{
		Args:           []string{"a", "b", "c"},
		RequiredKwargs: []string{"k"},
		Defaults:       []*Handle{two},
		KwDefaults: map[string]*Handle{
			"k": one,
		},
	}

	slots, err := sig.Bind(rt, "f", []*Handle{one, one}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 4 || !slots[2].Is(two) || !slots[3].Is(one) {
		t.Fatalf("got %v", slots)
	}

	for _, c := range []struct {
		args   []*Handle
		kwargs []KwArg
		msg    string
	}{
		{
			args: []*Handle{one, one, one, one},
			msg:  "f() takes from 2 to 3 positional arguments but 4 were given",
		},
		{
			args: []*Handle{one},
			msg:  "f() missing 1 required positional argument: 'b'",
		},
		{
			msg: "f() missing 2 required positional arguments: 'a' and 'b'",
		},
		{
			args:   []*Handle{one, one},
			kwargs: []KwArg{{Name: "a", Value: one}},
			msg:    "f() got multiple values for argument 'a'",
		},
		{
			args:   []*Handle{one, one},
			kwargs: []KwArg{{Name: "z", Value: one}},
			msg:    "f() got an unexpected keyword argument 'z'",
		},
	} {
		_, err := sig.Bind(rt, "f", c.args, c.kwargs)
		e, ok := err.(*Error)
		if !ok || e.Kind != TypeError || e.Message != c.msg {
			t.Fatalf("got %v, want %s", err, c.msg)
		}
	}

	sig = &Signature{
		Args:           []string{"x"},
		RequiredKwargs: []string{"p", "q"},
	}
	_, err = sig.Bind(rt, "g", []*Handle{one}, nil)
	if e, ok := err.(*Error); !ok || e.Message != "g() missing 2 required keyword-only arguments: 'p' and 'q'" {
		t.Fatalf("got %v", err)
	}
	_, err = sig.Bind(rt, "g", []*Handle{one, one}, nil)
	if e, ok := err.(*Error); !ok || e.Message != "g() takes 1 positional argument but 2 were given" {
		t.Fatalf("got %v", err)
	}
}

func TestSignatureVarArgs(t *testing.T) {
	rt := NewRuntime()
	sig := &Signature{
		Args:    []string{"a"},
		VarArgs: "rest",
		VarKw:   "kw",
	}
	if n := sig.Slots(); n != 3 {
		t.Fatalf("got %d", n)
	}
	slots, err := sig.Bind(rt, "f", []*Handle{
		rt.IntFromInt64(1),
		rt.IntFromInt64(2),
		rt.IntFromInt64(3),
	}, []KwArg{
		{Name: "x", Value: rt.Str("y")},
	})
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []string{"1", "(2, 3)", "{'x': 'y'}"} {
		got, err := rt.ReprOf(slots[i])
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("slot %d: got %s, want %s", i, got, want)
		}
	}

	slots, err = sig.Bind(rt, "f", []*Handle{rt.None()}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := rt.ReprOf(slots[1]); got != "()" {
		t.Fatalf("got %s", got)
	}
}

func TestQuotedList(t *testing.T) {
	for names, want := range map[string]string{
		"a":     "'a'",
		"a b":   "'a' and 'b'",
		"a b c": "'a', 'b', and 'c'",
	} {
		var list []string
		for _, r := range names {
			if r != ' ' {
				list = append(list, string(r))
			}
		}
		if got := quotedList(list); got != want {
			t.Fatalf("got %s, want %s", got, want)
		}
	}
}
