package snekvm

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

type BinaryOperator uint8

const (
	BinAdd BinaryOperator = iota
	BinSub
	BinMul
	BinMatMul
	BinTrueDiv
	BinFloorDiv
	BinMod
	BinDivMod
	BinPow
	BinLShift
	BinRShift
	BinAnd
	BinXor
	BinOr
	numBinaryOperators
)

type handleBinary = func(*Handle, *Runtime, *Handle) (*Handle, error)

var binaryTable = [numBinaryOperators]struct {
	symbol    string
	forward   handleBinary
	reflected handleBinary
	inplace   handleBinary
}{
	BinAdd:      {"+", (*Handle).Add, (*Handle).RAdd, (*Handle).IAdd},
	BinSub:      {"-", (*Handle).Sub, (*Handle).RSub, (*Handle).ISub},
	BinMul:      {"*", (*Handle).Mul, (*Handle).RMul, (*Handle).IMul},
	BinMatMul:   {"@", (*Handle).MatMul, (*Handle).RMatMul, (*Handle).IMatMul},
	BinTrueDiv:  {"/", (*Handle).TrueDiv, (*Handle).RTrueDiv, (*Handle).ITrueDiv},
	BinFloorDiv: {"//", (*Handle).FloorDiv, (*Handle).RFloorDiv, (*Handle).IFloorDiv},
	BinMod:      {"%", (*Handle).Mod, (*Handle).RMod, (*Handle).IMod},
	BinDivMod:   {"divmod()", (*Handle).DivMod, (*Handle).RDivMod, nil},
	BinPow:      {"** or pow()", (*Handle).Pow, (*Handle).RPow, (*Handle).IPow},
	BinLShift:   {"<<", (*Handle).LShift, (*Handle).RLShift, (*Handle).ILShift},
	BinRShift:   {">>", (*Handle).RShift, (*Handle).RRShift, (*Handle).IRShift},
	BinAnd:      {"&", (*Handle).And, (*Handle).RAnd, (*Handle).IAnd},
	BinXor:      {"^", (*Handle).Xor, (*Handle).RXor, (*Handle).IXor},
	BinOr:       {"|", (*Handle).Or, (*Handle).ROr, (*Handle).IOr},
}

func (o BinaryOperator) String() string {
	return binaryTable[o].symbol
}

// Binary applies op with the forward method of a, then the reflected
// method of b.
func (rt *Runtime) Binary(op BinaryOperator, a, b *Handle) (*Handle, error) {
	m := binaryTable[op]
	r, err := m.forward(a, rt, b)
	if !isNotImplemented(err) {
		return r, err
	}
	if a.Kind() != b.Kind() || b.Kind() == KindObject {
		r, err = m.reflected(b, rt, a)
		if !isNotImplemented(err) {
			return r, err
		}
	}
	return nil, typeErrorf("unsupported operand type(s) for %s: '%s' and '%s'",
		m.symbol, rt.TypeName(a), rt.TypeName(b))
}

// Inplace tries the in-place method of a before falling back to Binary.
func (rt *Runtime) Inplace(op BinaryOperator, a, b *Handle) (*Handle, error) {
	if m := binaryTable[op]; m.inplace != nil {
		r, err := m.inplace(a, rt, b)
		if !isNotImplemented(err) {
			return r, err
		}
	}
	return rt.Binary(op, a, b)
}

type CompareOperator uint8

const (
	CmpEq CompareOperator = iota
	CmpNe
	CmpLt
	CmpLe
	CmpGt
	CmpGe
	numCompareOperators
)

var compareTable = [numCompareOperators]struct {
	symbol    string
	method    handleBinary
	reflected CompareOperator
}{
	CmpEq: {"==", (*Handle).Eq, CmpEq},
	CmpNe: {"!=", (*Handle).Ne, CmpNe},
	CmpLt: {"<", (*Handle).Lt, CmpGt},
	CmpLe: {"<=", (*Handle).Le, CmpGe},
	CmpGt: {">", (*Handle).Gt, CmpLt},
	CmpGe: {">=", (*Handle).Ge, CmpLe},
}

func (o CompareOperator) String() string {
	return compareTable[o].symbol
}

func (rt *Runtime) Compare(op CompareOperator, a, b *Handle) (*Handle, error) {
	r, err := compareTable[op].method(a, rt, b)
	if !isNotImplemented(err) {
		return r, err
	}
	r, err = compareTable[compareTable[op].reflected].method(b, rt, a)
	if !isNotImplemented(err) {
		return r, err
	}
	switch op {
	case CmpEq:
		return rt.Bool(a.Is(b)), nil
	case CmpNe:
		eq, err := rt.Compare(CmpEq, a, b)
		if err != nil {
			return nil, err
		}
		t, err := rt.Truthy(eq)
		if err != nil {
			return nil, err
		}
		return rt.Bool(!t), nil
	}
	return nil, typeErrorf("'%s' not supported between instances of '%s' and '%s'",
		compareTable[op].symbol, rt.TypeName(a), rt.TypeName(b))
}

// Equal is container equality: identical handles are always equal.
func (rt *Runtime) Equal(a, b *Handle) (bool, error) {
	if a.Is(b) {
		return true, nil
	}
	r, err := rt.Compare(CmpEq, a, b)
	if err != nil {
		return false, err
	}
	return rt.Truthy(r)
}

func (rt *Runtime) Truthy(h *Handle) (bool, error) {
	b, err := h.NativeBool(rt)
	if !isNotImplemented(err) {
		return b, err
	}
	n, err := h.NativeLen(rt)
	if !isNotImplemented(err) {
		return n != 0, err
	}
	return true, nil
}

func identityHash(h *Handle) uint64 {
	return bits.RotateLeft64(uint64(h.ID()), -4)
}

func (rt *Runtime) Hash(h *Handle) (uint64, error) {
	v, err := h.NativeHash(rt)
	if isNotImplemented(err) {
		return identityHash(h), nil
	}
	return v, err
}

func (rt *Runtime) StrOf(h *Handle) (string, error) {
	s, err := h.NativeStr(rt)
	if isNotImplemented(err) {
		return rt.ReprOf(h)
	}
	return s, err
}

func (rt *Runtime) ReprOf(h *Handle) (string, error) {
	s, err := h.NativeRepr(rt)
	if isNotImplemented(err) {
		return fmt.Sprintf("<%s object at %#x>", rt.TypeName(h), h.ID()), nil
	}
	return s, err
}

func (rt *Runtime) Len(h *Handle) (int, error) {
	n, err := h.NativeLen(rt)
	if isNotImplemented(err) {
		return 0, typeErrorf("object of type '%s' has no len()", rt.TypeName(h))
	}
	return n, err
}

func (rt *Runtime) iterable(h *Handle) bool {
	return h.Supports("__iter__") || h.Supports("__getitem__")
}

func (rt *Runtime) Iter(h *Handle) (*Handle, error) {
	r, err := h.Iter(rt)
	if !isNotImplemented(err) {
		return r, err
	}
	if h.Supports("__getitem__") {
		return rt.Iterator(&PyIterator{
			mode:   iterGetItem,
			source: h,
		}), nil
	}
	return nil, typeErrorf("'%s' object is not iterable", rt.TypeName(h))
}

func (rt *Runtime) Next(h *Handle) (*Handle, error) {
	r, err := h.Next(rt)
	if isNotImplemented(err) {
		return nil, typeErrorf("'%s' object is not an iterator", rt.TypeName(h))
	}
	return r, err
}

// Collect drains an iterable into a fresh slice.
func (rt *Runtime) Collect(h *Handle) ([]*Handle, error) {
	switch v := h.value.(type) {
	case *PyList:
		return append([]*Handle(nil), v.Elems...), nil
	case *PyTuple:
		return append([]*Handle(nil), v.Elems...), nil
	}
	it, err := rt.Iter(h)
	if err != nil {
		return nil, err
	}
	var ret []*Handle
	for {
		item, err := rt.Next(it)
		if isKind(err, StopIteration) {
			return ret, nil
		}
		if err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
}

func (rt *Runtime) GetItem(h, key *Handle) (*Handle, error) {
	r, err := h.GetItem(rt, key)
	if isNotImplemented(err) {
		return nil, typeErrorf("'%s' object is not subscriptable", rt.TypeName(h))
	}
	return r, err
}

func (rt *Runtime) SetItem(h, key, value *Handle) error {
	_, err := h.SetItem(rt, key, value)
	if isNotImplemented(err) {
		return typeErrorf("'%s' object does not support item assignment", rt.TypeName(h))
	}
	return err
}

func (rt *Runtime) DelItem(h, key *Handle) error {
	_, err := h.DelItem(rt, key)
	if isNotImplemented(err) {
		return typeErrorf("'%s' object does not support item deletion", rt.TypeName(h))
	}
	return err
}

func (rt *Runtime) Contains(container, item *Handle) (bool, error) {
	b, err := container.NativeContains(rt, item)
	if !isNotImplemented(err) {
		return b, err
	}
	if !rt.iterable(container) {
		return false, typeErrorf("argument of type '%s' is not iterable", rt.TypeName(container))
	}
	it, err := rt.Iter(container)
	if err != nil {
		return false, err
	}
	for {
		elem, err := rt.Next(it)
		if isKind(err, StopIteration) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		eq, err := rt.Equal(elem, item)
		if err != nil {
			return false, err
		}
		if eq {
			return true, nil
		}
	}
}

type UnaryOperator uint8

const (
	UnaryNeg UnaryOperator = iota
	UnaryPos
	UnaryInvert
	UnaryAbs
	numUnaryOperators
)

type handleUnary = func(*Handle, *Runtime) (*Handle, error)

var unaryTable = [numUnaryOperators]struct {
	message string
	method  handleUnary
}{
	UnaryNeg:    {"bad operand type for unary -: '%s'", (*Handle).Neg},
	UnaryPos:    {"bad operand type for unary +: '%s'", (*Handle).Pos},
	UnaryInvert: {"bad operand type for unary ~: '%s'", (*Handle).Invert},
	UnaryAbs:    {"bad operand type for abs(): '%s'", (*Handle).Abs},
}

func (rt *Runtime) Unary(op UnaryOperator, h *Handle) (*Handle, error) {
	r, err := unaryTable[op].method(h, rt)
	if isNotImplemented(err) {
		return nil, typeErrorf(unaryTable[op].message, rt.TypeName(h))
	}
	return r, err
}

func (rt *Runtime) Call(callee *Handle, args []*Handle, kwargs []KwArg) (*Handle, error) {
	r, err := callee.Call(rt, args, kwargs)
	if isNotImplemented(err) {
		return nil, typeErrorf("'%s' object is not callable", rt.TypeName(callee))
	}
	return r, err
}

func (rt *Runtime) GetAttr(h *Handle, name string) (*Handle, error) {
	r, err := h.GetAttribute(rt, rt.Str(name))
	if !isNotImplemented(err) {
		return r, err
	}
	return rt.builtinAttr(h, name)
}

func (rt *Runtime) HasAttr(h *Handle, name string) (bool, error) {
	_, err := rt.GetAttr(h, name)
	if isKind(err, AttributeError) {
		return false, nil
	}
	return err == nil, err
}

func (rt *Runtime) SetAttr(h *Handle, name string, value *Handle) error {
	_, err := h.SetAttr(rt, rt.Str(name), value)
	if isNotImplemented(err) {
		return rt.attributeError(h, name)
	}
	return err
}

func (rt *Runtime) DelAttr(h *Handle, name string) error {
	_, err := h.DelAttr(rt, rt.Str(name))
	if isNotImplemented(err) {
		return rt.attributeError(h, name)
	}
	return err
}

func (rt *Runtime) attributeError(h *Handle, name string) error {
	return NewError(AttributeError, "'%s' object has no attribute '%s'", rt.TypeName(h), name)
}

// builtinAttr resolves attributes of builtin kinds from the special-name
// table, binding them as method wrappers.
func (rt *Runtime) builtinAttr(h *Handle, name string) (*Handle, error) {
	if name == "__class__" {
		return rt.TypeOf(h), nil
	}
	if s, ok := specials[name]; ok && h.Supports(name) {
		return rt.methodWrapper(h, name, s), nil
	}
	return nil, rt.attributeError(h, name)
}

func (rt *Runtime) methodWrapper(receiver *Handle, name string, s special) *Handle {
	return rt.wrap(&PyFunction{
		Name:     name,
		Type:     FuncMethodWrapper,
		Receiver: receiver,
		Native: func(rt *Runtime, args []*Handle, kwargs []KwArg) (*Handle, error) {
			if s.max >= 0 {
				if len(kwargs) > 0 {
					return nil, typeErrorf("%s() takes no keyword arguments", name)
				}
				if len(args) < s.min || len(args) > s.max {
					return nil, typeErrorf("%s() expected %s, got %d", name, arityText(s.min, s.max), len(args))
				}
			}
			return s.run(rt, receiver, args, kwargs)
		},
	})
}

func arityText(min, max int) string {
	plural := func(n int) string {
		if n == 1 {
			return "1 argument"
		}
		return fmt.Sprintf("%d arguments", n)
	}
	if min == max {
		return plural(min)
	}
	return fmt.Sprintf("%d to %s", min, plural(max))
}

func (rt *Runtime) BigIndex(h *Handle) (*big.Int, error) {
	i, err := h.NativeIndex(rt)
	if isNotImplemented(err) {
		return nil, typeErrorf("'%s' object cannot be interpreted as an integer", rt.TypeName(h))
	}
	return i, err
}

func (rt *Runtime) AsIndex(h *Handle) (int, error) {
	i, err := rt.BigIndex(h)
	if err != nil {
		return 0, err
	}
	if !i.IsInt64() || i.Int64() > math.MaxInt || i.Int64() < math.MinInt {
		return 0, NewError(OverflowError, "cannot fit 'int' into an index-sized integer")
	}
	return int(i.Int64()), nil
}
