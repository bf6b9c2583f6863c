package snekvm

import (
	"math"
	"slices"
)

type PyTuple struct {
	selfRef
	Elems []*Handle
}

func (*PyTuple) Kind() Kind {
	return KindTuple
}

type PyList struct {
	selfRef
	Elems []*Handle
}

func (*PyList) Kind() Kind {
	return KindList
}

// seqIndex normalizes a subscript against a sequence of the given length.
func (rt *Runtime) seqIndex(typeName string, key *Handle, length int) (int, error) {
	if !key.Supports("__index__") {
		return 0, typeErrorf("%s indices must be integers or slices, not %s", typeName, rt.TypeName(key))
	}
	i, err := rt.AsIndex(key)
	if isKind(err, OverflowError) {
		return 0, NewError(IndexError, "cannot fit 'int' into an index-sized integer")
	}
	if err != nil {
		return 0, err
	}
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, NewError(IndexError, "%s index out of range", typeName)
	}
	return i, nil
}

// maxRepeatLen bounds the length of a repeated sequence, in elements or bytes.
const maxRepeatLen = 1 << 30

// repeatCount converts the right operand of sequence repetition. ok is false
// when n is not an integer. Repeating an empty sequence more than once
// counts as zero.
func (rt *Runtime) repeatCount(n *Handle, length int) (count int, ok bool, err error) {
	if !n.Supports("__index__") {
		return 0, false, nil
	}
	c, err := rt.BigIndex(n)
	if err != nil {
		return 0, true, err
	}
	if c.Sign() <= 0 {
		return 0, true, nil
	}
	if !c.IsInt64() || c.Int64() > math.MaxInt {
		return 0, true, NewError(OverflowError, "cannot fit 'int' into an index-sized integer")
	}
	count = int(c.Int64())
	if length == 0 {
		return min(count, 1), true, nil
	}
	if count > maxRepeatLen/length {
		return 0, true, NewError(OverflowError, "repeated sequence is too long")
	}
	return count, true, nil
}

func repeatElems(elems []*Handle, n int) []*Handle {
	ret := make([]*Handle, 0, len(elems)*n)
	for range n {
		ret = append(ret, elems...)
	}
	return ret
}

// seqCompare compares element slices lexicographically.
func (rt *Runtime) seqCompare(op CompareOperator, a, b []*Handle) (bool, error) {
	for i := 0; i < len(a) && i < len(b); i++ {
		eq, err := rt.Equal(a[i], b[i])
		if err != nil {
			return false, err
		}
		if eq {
			continue
		}
		switch op {
		case CmpEq:
			return false, nil
		case CmpNe:
			return true, nil
		}
		r, err := rt.Compare(op, a[i], b[i])
		if err != nil {
			return false, err
		}
		return rt.Truthy(r)
	}
	c := 0
	switch {
	case len(a) < len(b):
		c = -1
	case len(a) > len(b):
		c = 1
	}
	return compareResult(op, c), nil
}

func (rt *Runtime) seqContains(elems []*Handle, item *Handle) (bool, error) {
	for _, elem := range elems {
		eq, err := rt.Equal(elem, item)
		if err != nil {
			return false, err
		}
		if eq {
			return true, nil
		}
	}
	return false, nil
}

func (rt *Runtime) seqCount(elems []*Handle, item *Handle) (*Handle, error) {
	n := 0
	for _, elem := range elems {
		eq, err := rt.Equal(elem, item)
		if err != nil {
			return nil, err
		}
		if eq {
			n++
		}
	}
	return rt.IntFromInt64(int64(n)), nil
}

// tuple

func (t *PyTuple) NativeLen(rt *Runtime) (int, error) {
	return len(t.Elems), nil
}

func (t *PyTuple) GetItem(rt *Runtime, key *Handle) (*Handle, error) {
	i, err := rt.seqIndex("tuple", key, len(t.Elems))
	if err != nil {
		return nil, err
	}
	return t.Elems[i], nil
}

func (t *PyTuple) Iter(rt *Runtime) (*Handle, error) {
	return rt.Iterator(&PyIterator{
		mode:   iterSequence,
		source: t.Self(),
	}), nil
}

func (t *PyTuple) NativeContains(rt *Runtime, item *Handle) (bool, error) {
	return rt.seqContains(t.Elems, item)
}

func (t *PyTuple) Count(rt *Runtime, item *Handle) (*Handle, error) {
	return rt.seqCount(t.Elems, item)
}

// NativeHash sums the element hashes. The empty tuple hashes by identity.
func (t *PyTuple) NativeHash(rt *Runtime) (uint64, error) {
	if len(t.Elems) == 0 {
		return identityHash(t.Self()), nil
	}
	var sum uint64
	for _, elem := range t.Elems {
		h, err := rt.Hash(elem)
		if err != nil {
			return 0, err
		}
		sum += h
	}
	return sum, nil
}

func (t *PyTuple) NativeRepr(rt *Runtime) (string, error) {
	self := t.Self()
	if !rt.enterRepr(self) {
		return "(...)", nil
	}
	defer rt.leaveRepr(self)
	s, err := rt.joinRepr(t.Elems)
	if err != nil {
		return "", err
	}
	if len(t.Elems) == 1 {
		return "(" + s + ",)", nil
	}
	return "(" + s + ")", nil
}

func (t *PyTuple) Add(rt *Runtime, other *Handle) (*Handle, error) {
	o, ok := other.value.(*PyTuple)
	if !ok {
		return nil, notImplemented(other, "__add__")
	}
	return rt.Tuple(slices.Concat(t.Elems, o.Elems)), nil
}

func (t *PyTuple) Mul(rt *Runtime, other *Handle) (*Handle, error) {
	n, ok, err := rt.repeatCount(other, len(t.Elems))
	if !ok {
		return nil, notImplemented(other, "__mul__")
	}
	if err != nil {
		return nil, err
	}
	switch n {
	case 0:
		return rt.emptyTuple, nil
	case 1:
		return t.Self(), nil
	}
	return rt.Tuple(repeatElems(t.Elems, n)), nil
}

func (t *PyTuple) RMul(rt *Runtime, other *Handle) (*Handle, error) {
	return t.Mul(rt, other)
}

func (t *PyTuple) tupleCompare(rt *Runtime, op CompareOperator, other *Handle) (bool, error) {
	o, ok := other.value.(*PyTuple)
	if !ok {
		return false, notImplemented(other, compareAttrs[op])
	}
	return rt.seqCompare(op, t.Elems, o.Elems)
}

func (t *PyTuple) NativeEq(rt *Runtime, other *Handle) (bool, error) {
	return t.tupleCompare(rt, CmpEq, other)
}

func (t *PyTuple) NativeNe(rt *Runtime, other *Handle) (bool, error) {
	return t.tupleCompare(rt, CmpNe, other)
}

func (t *PyTuple) NativeLt(rt *Runtime, other *Handle) (bool, error) {
	return t.tupleCompare(rt, CmpLt, other)
}

func (t *PyTuple) NativeLe(rt *Runtime, other *Handle) (bool, error) {
	return t.tupleCompare(rt, CmpLe, other)
}

func (t *PyTuple) NativeGt(rt *Runtime, other *Handle) (bool, error) {
	return t.tupleCompare(rt, CmpGt, other)
}

func (t *PyTuple) NativeGe(rt *Runtime, other *Handle) (bool, error) {
	return t.tupleCompare(rt, CmpGe, other)
}

// list

func (l *PyList) NativeLen(rt *Runtime) (int, error) {
	return len(l.Elems), nil
}

func (l *PyList) GetItem(rt *Runtime, key *Handle) (*Handle, error) {
	i, err := rt.seqIndex("list", key, len(l.Elems))
	if err != nil {
		return nil, err
	}
	return l.Elems[i], nil
}

func (l *PyList) SetItem(rt *Runtime, key, value *Handle) (*Handle, error) {
	i, err := rt.seqIndex("list assignment", key, len(l.Elems))
	if err != nil {
		return nil, err
	}
	l.Elems[i] = value
	return rt.None(), nil
}

func (l *PyList) DelItem(rt *Runtime, key *Handle) (*Handle, error) {
	i, err := rt.seqIndex("list assignment", key, len(l.Elems))
	if err != nil {
		return nil, err
	}
	l.Elems = slices.Delete(l.Elems, i, i+1)
	return rt.None(), nil
}

func (l *PyList) Iter(rt *Runtime) (*Handle, error) {
	return rt.Iterator(&PyIterator{
		mode:   iterSequence,
		source: l.Self(),
	}), nil
}

func (l *PyList) Reversed(rt *Runtime) (*Handle, error) {
	items := slices.Clone(l.Elems)
	slices.Reverse(items)
	return rt.Iterator(&PyIterator{
		mode:  iterSnapshot,
		items: items,
	}), nil
}

func (l *PyList) NativeContains(rt *Runtime, item *Handle) (bool, error) {
	return rt.seqContains(l.Elems, item)
}

func (l *PyList) NativeHash(rt *Runtime) (uint64, error) {
	return 0, typeErrorf("unhashable type: 'list'")
}

func (l *PyList) NativeRepr(rt *Runtime) (string, error) {
	self := l.Self()
	if !rt.enterRepr(self) {
		return "[...]", nil
	}
	defer rt.leaveRepr(self)
	s, err := rt.joinRepr(l.Elems)
	if err != nil {
		return "", err
	}
	return "[" + s + "]", nil
}

func (l *PyList) Add(rt *Runtime, other *Handle) (*Handle, error) {
	o, ok := other.value.(*PyList)
	if !ok {
		return nil, notImplemented(other, "__add__")
	}
	return rt.List(slices.Concat(l.Elems, o.Elems)), nil
}

func (l *PyList) IAdd(rt *Runtime, other *Handle) (*Handle, error) {
	if _, err := l.Extend(rt, other); err != nil {
		return nil, err
	}
	return l.Self(), nil
}

// Mul returns a fresh empty list for n <= 0 and the list itself for n == 1.
func (l *PyList) Mul(rt *Runtime, other *Handle) (*Handle, error) {
	n, ok, err := rt.repeatCount(other, len(l.Elems))
	if !ok {
		return nil, notImplemented(other, "__mul__")
	}
	if err != nil {
		return nil, err
	}
	switch n {
	case 0:
		return rt.List(nil), nil
	case 1:
		return l.Self(), nil
	}
	return rt.List(repeatElems(l.Elems, n)), nil
}

func (l *PyList) RMul(rt *Runtime, other *Handle) (*Handle, error) {
	return l.Mul(rt, other)
}

func (l *PyList) IMul(rt *Runtime, other *Handle) (*Handle, error) {
	n, ok, err := rt.repeatCount(other, len(l.Elems))
	if !ok {
		return nil, notImplemented(other, "__imul__")
	}
	if err != nil {
		return nil, err
	}
	l.Elems = repeatElems(l.Elems, n)
	return l.Self(), nil
}

func (l *PyList) listCompare(rt *Runtime, op CompareOperator, other *Handle) (bool, error) {
	o, ok := other.value.(*PyList)
	if !ok {
		return false, notImplemented(other, compareAttrs[op])
	}
	return rt.seqCompare(op, l.Elems, o.Elems)
}

func (l *PyList) NativeEq(rt *Runtime, other *Handle) (bool, error) {
	return l.listCompare(rt, CmpEq, other)
}

func (l *PyList) NativeNe(rt *Runtime, other *Handle) (bool, error) {
	return l.listCompare(rt, CmpNe, other)
}

func (l *PyList) NativeLt(rt *Runtime, other *Handle) (bool, error) {
	return l.listCompare(rt, CmpLt, other)
}

func (l *PyList) NativeLe(rt *Runtime, other *Handle) (bool, error) {
	return l.listCompare(rt, CmpLe, other)
}

func (l *PyList) NativeGt(rt *Runtime, other *Handle) (bool, error) {
	return l.listCompare(rt, CmpGt, other)
}

func (l *PyList) NativeGe(rt *Runtime, other *Handle) (bool, error) {
	return l.listCompare(rt, CmpGe, other)
}

func (l *PyList) Append(rt *Runtime, item *Handle) (*Handle, error) {
	l.Elems = append(l.Elems, item)
	return rt.None(), nil
}

func (l *PyList) Extend(rt *Runtime, items *Handle) (*Handle, error) {
	elems, err := rt.Collect(items)
	if err != nil {
		return nil, err
	}
	l.Elems = append(l.Elems, elems...)
	return rt.None(), nil
}

func (l *PyList) Insert(rt *Runtime, index, item *Handle) (*Handle, error) {
	i, err := rt.AsIndex(index)
	if err != nil {
		return nil, err
	}
	if i < 0 {
		i = max(i+len(l.Elems), 0)
	}
	i = min(i, len(l.Elems))
	l.Elems = slices.Insert(l.Elems, i, item)
	return rt.None(), nil
}

func (l *PyList) Pop(rt *Runtime, index *Handle) (*Handle, error) {
	if len(l.Elems) == 0 {
		return nil, NewError(IndexError, "pop from empty list")
	}
	i := len(l.Elems) - 1
	if index != nil {
		var err error
		i, err = rt.AsIndex(index)
		if err != nil {
			return nil, err
		}
		if i < 0 {
			i += len(l.Elems)
		}
		if i < 0 || i >= len(l.Elems) {
			return nil, NewError(IndexError, "pop index out of range")
		}
	}
	item := l.Elems[i]
	l.Elems = slices.Delete(l.Elems, i, i+1)
	return item, nil
}

func (l *PyList) Remove(rt *Runtime, item *Handle) (*Handle, error) {
	for i, elem := range l.Elems {
		eq, err := rt.Equal(elem, item)
		if err != nil {
			return nil, err
		}
		if eq {
			l.Elems = slices.Delete(l.Elems, i, i+1)
			return rt.None(), nil
		}
	}
	return nil, NewError(ValueError, "list.remove(x): x not in list")
}

func (l *PyList) Count(rt *Runtime, item *Handle) (*Handle, error) {
	return rt.seqCount(l.Elems, item)
}

func (l *PyList) Reverse(rt *Runtime) (*Handle, error) {
	slices.Reverse(l.Elems)
	return rt.None(), nil
}

func (l *PyList) Clear(rt *Runtime) (*Handle, error) {
	l.Elems = nil
	return rt.None(), nil
}

func (l *PyList) Copy(rt *Runtime) (*Handle, error) {
	return rt.List(slices.Clone(l.Elems)), nil
}
