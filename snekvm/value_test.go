package snekvm

import (
	"errors"
	"math"
	"math/big"
	"runtime"
	"testing"
)

func TestIdentity(t *testing.T) {
	rt := NewRuntime()

	for _, h := range []*Handle{
		rt.None(),
		rt.IntFromInt64(3),
		rt.Str("foo"),
		rt.List(nil),
	} {
		if !h.Clone().Is(h) {
			t.Fatalf("got %v", h)
		}
	}

	big1 := rt.Int(new(big.Int).Lsh(big.NewInt(1), 100))
	big2 := rt.Int(new(big.Int).Lsh(big.NewInt(1), 100))
	str1 := rt.Str("hello")
	str2 := rt.Str("hello")
	tuple1 := rt.Tuple([]*Handle{rt.IntFromInt64(1)})
	tuple2 := rt.Tuple([]*Handle{rt.IntFromInt64(1)})
	for _, pair := range [][2]*Handle{
		{big1, big2},
		{str1, str2},
		{tuple1, tuple2},
	} {
		if pair[0].Is(pair[1]) {
			t.Fatalf("got %v is %v", pair[0], pair[1])
		}
		eq, err := rt.Equal(pair[0], pair[1])
		if err != nil {
			t.Fatal(err)
		}
		if !eq {
			t.Fatalf("got %v != %v", pair[0], pair[1])
		}
	}
}

func TestSmallIntCache(t *testing.T) {
	rt := NewRuntime()
	for _, v := range []int64{-5, 0, 1, 256, 1024} {
		if !rt.IntFromInt64(v).Is(rt.IntFromInt64(v)) {
			t.Fatalf("got fresh handle for %d", v)
		}
	}
	for _, v := range []int64{-6, 1025, 1 << 40} {
		a := rt.IntFromInt64(v)
		b := rt.IntFromInt64(v)
		if a.Is(b) {
			t.Fatalf("got cached handle for %d", v)
		}
		eq, err := rt.Equal(a, b)
		if err != nil {
			t.Fatal(err)
		}
		if !eq {
			t.Fatalf("got %v != %v", a, b)
		}
	}
}

func TestSingletons(t *testing.T) {
	rt := NewRuntime()
	if !rt.Bool(true).Is(rt.Bool(true)) || rt.Bool(true).Is(rt.Bool(false)) {
		t.Fatal("bad bool singletons")
	}
	if !rt.Str("").Is(rt.Str("")) {
		t.Fatal("bad empty str")
	}
	if !rt.Tuple(nil).Is(rt.Tuple([]*Handle{})) {
		t.Fatal("bad empty tuple")
	}
	if rt.List(nil).Is(rt.List(nil)) {
		t.Fatal("lists must be fresh")
	}
}

func TestSelfReference(t *testing.T) {
	rt := NewRuntime()
	h := rt.List([]*Handle{rt.None()})
	if !h.Value().Self().Is(h) {
		t.Fatal("bad self reference")
	}
	runtime.KeepAlive(h)
}

func TestWeak(t *testing.T) {
	rt := NewRuntime()
	h := rt.Str("weak")
	w := h.Downgrade()
	got, err := w.Upgrade()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Is(h) {
		t.Fatalf("got %v", got)
	}
	runtime.KeepAlive(h)

	var zero Weak
	if _, err := zero.Upgrade(); !errors.Is(err, ErrDead) {
		t.Fatalf("got %v", err)
	}
}

func TestHashEquality(t *testing.T) {
	rt := NewRuntime()
	pairs := [][2]*Handle{
		{rt.IntFromInt64(1), rt.Float(1)},
		{rt.IntFromInt64(1), rt.Bool(true)},
		{rt.IntFromInt64(0), rt.Bool(false)},
		{rt.Float(2), rt.Complex(2)},
		{rt.IntFromInt64(-1), rt.Float(-1)},
		{rt.Int(new(big.Int).Lsh(big.NewInt(1), 70)), rt.Float(1 << 70)},
		{rt.Str("abc"), rt.Str("abc")},
		{rt.Bytes([]byte("abc")), rt.Bytes([]byte("abc"))},
		{
			rt.Tuple([]*Handle{rt.IntFromInt64(1), rt.Str("a")}),
			rt.Tuple([]*Handle{rt.Float(1), rt.Str("a")}),
		},
	}
	for _, pair := range pairs {
		eq, err := rt.Equal(pair[0], pair[1])
		if err != nil {
			t.Fatal(err)
		}
		if !eq {
			t.Fatalf("got %v != %v", pair[0], pair[1])
		}
		h1, err := rt.Hash(pair[0])
		if err != nil {
			t.Fatal(err)
		}
		h2, err := rt.Hash(pair[1])
		if err != nil {
			t.Fatal(err)
		}
		if h1 != h2 {
			t.Fatalf("hash(%v) = %d, hash(%v) = %d", pair[0], h1, pair[1], h2)
		}
	}
}

func TestUnhashable(t *testing.T) {
	rt := NewRuntime()
	for _, h := range []*Handle{
		rt.Dict(),
		rt.List(nil),
		rt.Set(),
	} {
		_, err := rt.Hash(h)
		if !errors.Is(err, ErrTypeError) {
			t.Fatalf("got %v", err)
		}
	}
}

func TestSequenceMultiply(t *testing.T) {
	rt := NewRuntime()
	seqs := []*Handle{
		rt.Str("ab"),
		rt.Bytes([]byte("ab")),
		rt.Tuple([]*Handle{rt.None(), rt.IntFromInt64(1)}),
		rt.List([]*Handle{rt.None(), rt.IntFromInt64(1)}),
	}
	for _, s := range seqs {
		length, err := rt.Len(s)
		if err != nil {
			t.Fatal(err)
		}

		for _, n := range []int64{0, -3} {
			r, err := rt.Binary(BinMul, s, rt.IntFromInt64(n))
			if err != nil {
				t.Fatal(err)
			}
			if l, _ := rt.Len(r); l != 0 {
				t.Fatalf("got %v", r)
			}
		}

		r, err := rt.Binary(BinMul, s, rt.IntFromInt64(1))
		if err != nil {
			t.Fatal(err)
		}
		if !r.Is(s) {
			t.Fatalf("got %v", r)
		}

		r, err = rt.Binary(BinMul, rt.IntFromInt64(3), s)
		if err != nil {
			t.Fatal(err)
		}
		if l, _ := rt.Len(r); l != length*3 {
			t.Fatalf("got %v", r)
		}
	}

	if r, _ := rt.Binary(BinMul, rt.Str("ab"), rt.IntFromInt64(0)); !r.Is(rt.Str("")) {
		t.Fatal("expected the empty str singleton")
	}
	if r, _ := rt.Binary(BinMul, rt.List(nil), rt.IntFromInt64(0)); r.Is(rt.List(nil)) {
		t.Fatal("expected a fresh list")
	}

	_, err := rt.Binary(BinMul, rt.Str("ab"), rt.Int(new(big.Int).Lsh(big.NewInt(1), 80)))
	if !errors.Is(err, ErrOverflowError) {
		t.Fatalf("got %v", err)
	}
}

func TestSequenceMultiplyLarge(t *testing.T) {
	rt := NewRuntime()
	huge := rt.IntFromInt64(1 << 62)

	for _, s := range []*Handle{
		rt.Str(""),
		rt.Bytes(nil),
		rt.Tuple(nil),
		rt.List(nil),
	} {
		r, err := rt.Binary(BinMul, s, huge)
		if err != nil {
			t.Fatal(err)
		}
		if l, _ := rt.Len(r); l != 0 {
			t.Fatalf("got %v", r)
		}
	}

	for _, s := range []*Handle{
		rt.Str("a"),
		rt.Bytes([]byte("a")),
		rt.Tuple([]*Handle{rt.None()}),
		rt.List([]*Handle{rt.None()}),
	} {
		_, err := rt.Binary(BinMul, s, rt.IntFromInt64(1<<50))
		if !errors.Is(err, ErrOverflowError) {
			t.Fatalf("got %v", err)
		}
		_, err = rt.Binary(BinMul, rt.IntFromInt64(1<<50), s)
		if !errors.Is(err, ErrOverflowError) {
			t.Fatalf("got %v", err)
		}
	}

	list := rt.List([]*Handle{rt.None()})
	if _, err := list.IMul(rt, rt.IntFromInt64(1<<50)); !errors.Is(err, ErrOverflowError) {
		t.Fatalf("got %v", err)
	}
	if l, _ := rt.Len(list); l != 1 {
		t.Fatalf("got %v", list)
	}
	empty := rt.List(nil)
	if r, _ := rt.Binary(BinMul, empty, rt.IntFromInt64(1)); !r.Is(empty) {
		t.Fatal("expected the same list")
	}
}

func TestRangeIteratorBounds(t *testing.T) {
	rt := NewRuntime()
	for _, c := range []struct {
		start, stop, step int
		want              []int
	}{
		{math.MaxInt - 5, math.MaxInt, 10, []int{math.MaxInt - 5}},
		{math.MaxInt - 5, math.MaxInt, 2, []int{math.MaxInt - 5, math.MaxInt - 3, math.MaxInt - 1}},
		{math.MinInt + 5, math.MinInt, -10, []int{math.MinInt + 5}},
		{math.MaxInt, math.MinInt, math.MinInt, []int{math.MaxInt, -1}},
		{0, 10, 3, []int{0, 3, 6, 9}},
		{10, 0, -4, []int{10, 6, 2}},
		{3, 3, 1, nil},
		{3, 5, -1, nil},
	} {
		it, err := rt.RangeIterator(c.start, c.stop, c.step)
		if err != nil {
			t.Fatal(err)
		}
		hint, err := it.NativeLengthHint(rt)
		if err != nil {
			t.Fatal(err)
		}
		if hint != len(c.want) {
			t.Fatalf("got %v, want %v", hint, len(c.want))
		}
		for _, want := range c.want {
			got, err := rt.Next(it)
			if err != nil {
				t.Fatal(err)
			}
			i, err := rt.AsIndex(got)
			if err != nil {
				t.Fatal(err)
			}
			if i != want {
				t.Fatalf("got %v, want %v", i, want)
			}
		}
		if _, err := rt.Next(it); !errors.Is(err, ErrStopIteration) {
			t.Fatalf("got %v", err)
		}
	}

	it, err := rt.RangeIterator(math.MinInt, math.MaxInt, 1)
	if err != nil {
		t.Fatal(err)
	}
	if hint, _ := it.NativeLengthHint(rt); hint != math.MaxInt {
		t.Fatalf("got %v", hint)
	}
}

func TestStrIndexing(t *testing.T) {
	rt := NewRuntime()
	s := rt.Str("añb日")
	for i, want := range []string{"a", "ñ", "b", "日"} {
		for _, key := range []int64{int64(i), int64(i - 4)} {
			got, err := rt.GetItem(s, rt.IntFromInt64(key))
			if err != nil {
				t.Fatal(err)
			}
			if got.Value().(*PyStr).Value != want {
				t.Fatalf("got %v, want %v", got, want)
			}
		}
	}
	if _, err := rt.GetItem(s, rt.IntFromInt64(4)); !errors.Is(err, ErrIndexError) {
		t.Fatalf("got %v", err)
	}
	if _, err := rt.GetItem(rt.Str("abc"), rt.IntFromInt64(-4)); !errors.Is(err, ErrIndexError) {
		t.Fatalf("got %v", err)
	}
}

func TestIndexing(t *testing.T) {
	rt := NewRuntime()
	elems := []*Handle{rt.Str("a"), rt.Str("b"), rt.Str("c")}
	for _, s := range []*Handle{
		rt.Tuple(elems),
		rt.List(elems),
		rt.Str("abc"),
	} {
		const length = 3
		for i := range length {
			a, err := rt.GetItem(s, rt.IntFromInt64(int64(i)))
			if err != nil {
				t.Fatal(err)
			}
			b, err := rt.GetItem(s, rt.IntFromInt64(int64(i-length)))
			if err != nil {
				t.Fatal(err)
			}
			if eq, _ := rt.Equal(a, b); !eq {
				t.Fatalf("got %v and %v", a, b)
			}
		}
		for _, i := range []int64{length, -(length + 1)} {
			if _, err := rt.GetItem(s, rt.IntFromInt64(i)); !errors.Is(err, ErrIndexError) {
				t.Fatalf("got %v", err)
			}
		}
		if _, err := rt.GetItem(s, rt.Str("x")); !errors.Is(err, ErrTypeError) {
			t.Fatalf("got %v", err)
		}
	}
}

func TestIteratorExhaustion(t *testing.T) {
	rt := NewRuntime()

	it, err := rt.Iter(rt.List(nil))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := rt.Next(it); !errors.Is(err, ErrStopIteration) {
		t.Fatalf("got %v", err)
	}

	list := rt.List([]*Handle{rt.None(), rt.IntFromInt64(1), rt.Bool(true)})
	it, err = rt.Iter(list)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range list.Value().(*PyList).Elems {
		got, err := rt.Next(it)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Is(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	// appending after exhaustion does not resurrect
	for range 3 {
		if _, err := rt.Next(it); !errors.Is(err, ErrStopIteration) {
			t.Fatalf("got %v", err)
		}
		if _, err := list.Append(rt, rt.None()); err != nil {
			t.Fatal(err)
		}
	}
}

func TestGetItemIterator(t *testing.T) {
	rt := NewRuntime()
	// native functions in a class dict are not bound, so the key comes first
	getitem := rt.NativeFunction("__getitem__", func(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
		i, err := rt.AsIndex(args[0])
		if err != nil {
			return nil, err
		}
		if i >= 2 {
			return nil, NewError(IndexError, "done")
		}
		return rt.IntFromInt64(int64(i * 10)), nil
	})
	dict := rt.Dict()
	if err := rt.SetItem(dict, rt.Str("__getitem__"), getitem); err != nil {
		t.Fatal(err)
	}
	class := rt.NewType("Seq", nil, dict)
	obj, err := rt.Call(class, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	items, err := rt.Collect(obj)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 || !items[1].Is(rt.IntFromInt64(10)) {
		t.Fatalf("got %v", items)
	}
	ok, err := rt.Contains(obj, rt.IntFromInt64(10))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected 10 in obj")
	}
}

func TestNotImplementedFallback(t *testing.T) {
	rt := NewRuntime()
	_, err := rt.Binary(BinSub, rt.Str("a"), rt.List(nil))
	if !errors.Is(err, ErrTypeError) {
		t.Fatalf("got %v", err)
	}
	_, err = rt.Binary(BinAdd, rt.None(), rt.None())
	if !errors.Is(err, ErrTypeError) {
		t.Fatalf("got %v", err)
	}
	_, err = rt.Compare(CmpLt, rt.Str("a"), rt.IntFromInt64(1))
	if !errors.Is(err, ErrTypeError) {
		t.Fatalf("got %v", err)
	}
	r, err := rt.Compare(CmpEq, rt.Str("a"), rt.IntFromInt64(1))
	if err != nil {
		t.Fatal(err)
	}
	if !r.Is(rt.Bool(false)) {
		t.Fatalf("got %v", r)
	}
}

func TestNumericTower(t *testing.T) {
	rt := NewRuntime()
	cases := []struct {
		op   BinaryOperator
		a, b *Handle
		want string
	}{
		{BinAdd, rt.IntFromInt64(1), rt.Float(0.5), "1.5"},
		{BinAdd, rt.Bool(true), rt.Bool(true), "2"},
		{BinTrueDiv, rt.IntFromInt64(1), rt.IntFromInt64(4), "0.25"},
		{BinFloorDiv, rt.IntFromInt64(-7), rt.IntFromInt64(2), "-4"},
		{BinMod, rt.IntFromInt64(-7), rt.IntFromInt64(2), "1"},
		{BinPow, rt.IntFromInt64(2), rt.IntFromInt64(100), "1267650600228229401496703205376"},
		{BinPow, rt.IntFromInt64(2), rt.IntFromInt64(-1), "0.5"},
		{BinMul, rt.Complex(1i), rt.Complex(1i), "(-1+0j)"},
		{BinAnd, rt.Bool(true), rt.Bool(false), "False"},
		{BinLShift, rt.IntFromInt64(1), rt.IntFromInt64(3), "8"},
	}
	for _, c := range cases {
		r, err := rt.Binary(c.op, c.a, c.b)
		if err != nil {
			t.Fatalf("%v %s %v: %v", c.a, c.op, c.b, err)
		}
		s, err := rt.ReprOf(r)
		if err != nil {
			t.Fatal(err)
		}
		if s != c.want {
			t.Fatalf("%v %s %v: got %s, want %s", c.a, c.op, c.b, s, c.want)
		}
	}

	_, err := rt.Binary(BinTrueDiv, rt.IntFromInt64(1), rt.IntFromInt64(0))
	if !errors.Is(err, ErrZeroDivision) {
		t.Fatalf("got %v", err)
	}
}

func TestAttributes(t *testing.T) {
	rt := NewRuntime()
	o := rt.Object(nil)
	if err := rt.SetAttr(o, "a", rt.IntFromInt64(5)); err != nil {
		t.Fatal(err)
	}
	v, err := rt.GetAttr(o, "a")
	if err != nil {
		t.Fatal(err)
	}
	if !v.Is(rt.IntFromInt64(5)) {
		t.Fatalf("got %v", v)
	}
	_, err = rt.GetAttr(o, "missing")
	if !errors.Is(err, ErrAttributeError) {
		t.Fatalf("got %v", err)
	}

	// method wrappers on builtin kinds
	hash, err := rt.GetAttr(rt.IntFromInt64(42), "__hash__")
	if err != nil {
		t.Fatal(err)
	}
	r, err := rt.Call(hash, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Is(rt.IntFromInt64(42)) {
		t.Fatalf("got %v", r)
	}

	list := rt.List(nil)
	appendMethod, err := rt.GetAttr(list, "append")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := rt.Call(appendMethod, []*Handle{rt.None()}, nil); err != nil {
		t.Fatal(err)
	}
	if n, _ := rt.Len(list); n != 1 {
		t.Fatalf("got %d", n)
	}
	if _, err := rt.Call(appendMethod, nil, nil); !errors.Is(err, ErrTypeError) {
		t.Fatalf("got %v", err)
	}

	_, err = rt.GetAttr(rt.IntFromInt64(1), "append")
	var e *Error
	if !errors.As(err, &e) || e.Message != "'int' object has no attribute 'append'" {
		t.Fatalf("got %v", err)
	}
}

func TestClassLookupOrder(t *testing.T) {
	rt := NewRuntime()
	mark := func(name string) *Handle {
		d := rt.Dict()
		if err := rt.SetItem(d, rt.Str("who"), rt.Str(name)); err != nil {
			t.Fatal(err)
		}
		return d
	}
	a := rt.NewType("A", nil, mark("A"))
	b := rt.NewType("B", []*Handle{a}, nil)
	c := rt.NewType("C", nil, mark("C"))
	d := rt.NewType("D", []*Handle{b, c}, nil)

	obj, err := rt.Call(d, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	v, err := rt.GetAttr(obj, "who")
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := rt.StrOf(v); s != "A" {
		t.Fatalf("got %s", s)
	}
	if !IsSubclass(d, a) || !IsSubclass(d, c) || IsSubclass(a, d) {
		t.Fatal("bad subclass relation")
	}
}

func TestDict(t *testing.T) {
	rt := NewRuntime()
	d := rt.Dict()
	if err := rt.SetItem(d, rt.IntFromInt64(1), rt.Str("one")); err != nil {
		t.Fatal(err)
	}
	v, err := rt.GetItem(d, rt.Float(1))
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := rt.StrOf(v); s != "one" {
		t.Fatalf("got %s", s)
	}
	if err := rt.SetItem(d, rt.Bool(true), rt.Str("true")); err != nil {
		t.Fatal(err)
	}
	if n, _ := rt.Len(d); n != 1 {
		t.Fatalf("got %d", n)
	}
	if err := rt.SetItem(d, rt.List(nil), rt.None()); !errors.Is(err, ErrTypeError) {
		t.Fatalf("got %v", err)
	}
	_, err = rt.GetItem(d, rt.Str("nope"))
	if !errors.Is(err, ErrKeyError) {
		t.Fatalf("got %v", err)
	}
	s, err := rt.ReprOf(d)
	if err != nil {
		t.Fatal(err)
	}
	if s != "{1: 'true'}" {
		t.Fatalf("got %s", s)
	}
}

func TestRecursiveRepr(t *testing.T) {
	rt := NewRuntime()
	list := rt.List(nil)
	if _, err := list.Append(rt, list); err != nil {
		t.Fatal(err)
	}
	s, err := rt.ReprOf(list)
	if err != nil {
		t.Fatal(err)
	}
	if s != "[[...]]" {
		t.Fatalf("got %s", s)
	}
}
