package snekvm

import "math"

type iterMode uint8

const (
	iterSequence iterMode = iota
	iterGetItem
	iterSnapshot
	iterRange
)

// PyIterator walks a list or tuple in place, a frozen snapshot of items,
// an object through __getitem__, or an integer range.
// Once exhausted it keeps raising StopIteration.
type PyIterator struct {
	selfRef
	mode   iterMode
	source *Handle
	items  []*Handle
	index  int

	cur  int
	step int
	left uint64

	done bool
}

func (*PyIterator) Kind() Kind {
	return KindIterator
}

// RangeIterator yields start, start+step, ... stopping before stop.
func (rt *Runtime) RangeIterator(start, stop, step int) (*Handle, error) {
	if step == 0 {
		return nil, NewError(ValueError, "range() arg 3 must not be zero")
	}
	return rt.Iterator(&PyIterator{
		mode: iterRange,
		cur:  start,
		step: step,
		left: rangeLen(start, stop, step),
	}), nil
}

// rangeLen counts the values of a range without overflowing.
func rangeLen(start, stop, step int) uint64 {
	switch {
	case step > 0 && start < stop:
		return (uint64(stop)-uint64(start)-1)/uint64(step) + 1
	case step < 0 && start > stop:
		return (uint64(start)-uint64(stop)-1)/(0-uint64(step)) + 1
	}
	return 0
}

func (it *PyIterator) Iter(rt *Runtime) (*Handle, error) {
	return it.Self(), nil
}

func (it *PyIterator) finish() error {
	it.done = true
	it.source = nil
	it.items = nil
	return &Error{Kind: StopIteration}
}

func (it *PyIterator) Next(rt *Runtime) (*Handle, error) {
	if it.done {
		return nil, &Error{Kind: StopIteration}
	}
	switch it.mode {

	case iterSequence:
		var elems []*Handle
		switch v := it.source.value.(type) {
		case *PyList:
			elems = v.Elems
		case *PyTuple:
			elems = v.Elems
		}
		if it.index >= len(elems) {
			return nil, it.finish()
		}
		it.index++
		return elems[it.index-1], nil

	case iterSnapshot:
		if it.index >= len(it.items) {
			return nil, it.finish()
		}
		it.index++
		return it.items[it.index-1], nil

	case iterGetItem:
		v, err := rt.GetItem(it.source, rt.IntFromInt64(int64(it.index)))
		if isKind(err, IndexError) || isKind(err, StopIteration) {
			return nil, it.finish()
		}
		if err != nil {
			return nil, err
		}
		it.index++
		return v, nil

	case iterRange:
		if it.left == 0 {
			return nil, it.finish()
		}
		v := it.cur
		it.left--
		if it.left > 0 {
			it.cur += it.step
		}
		return rt.IntFromInt64(int64(v)), nil
	}
	return nil, it.finish()
}

func (it *PyIterator) NativeLengthHint(rt *Runtime) (int, error) {
	if it.done {
		return 0, nil
	}
	switch it.mode {
	case iterSequence:
		n, err := rt.Len(it.source)
		if err != nil {
			return 0, err
		}
		return max(n-it.index, 0), nil
	case iterSnapshot:
		return len(it.items) - it.index, nil
	case iterRange:
		return int(min(it.left, math.MaxInt)), nil
	}
	return 0, notImplemented(it.Self(), "__length_hint__")
}

func (it *PyIterator) NativeRepr(rt *Runtime) (string, error) {
	switch it.mode {
	case iterRange:
		return "<range_iterator object>", nil
	}
	return "<iterator object>", nil
}
