package snekvm

import "fmt"

type PyFrame struct {
	selfRef
	Back     Weak
	Code     *Code
	Globals  *Handle
	// Locals is the name-op namespace. It is nil in function frames.
	Locals   *Handle
	Builtins *Handle
	Fast     []*Handle
	LastI    int
	Line     int

	stack  []*Handle
	blocks []block
}

func (*PyFrame) Kind() Kind {
	return KindFrame
}

func (f *PyFrame) push(h *Handle) {
	f.stack = append(f.stack, h)
}

func (f *PyFrame) pop() *Handle {
	h := f.stack[len(f.stack)-1]
	f.stack[len(f.stack)-1] = nil
	f.stack = f.stack[:len(f.stack)-1]
	return h
}

func (f *PyFrame) top() *Handle {
	return f.stack[len(f.stack)-1]
}

func (f *PyFrame) peek(i int) *Handle {
	return f.stack[len(f.stack)-1-i]
}

// popN pops n values, returning them in push order.
func (f *PyFrame) popN(n int) []*Handle {
	ret := make([]*Handle, n)
	copy(ret, f.stack[len(f.stack)-n:])
	f.truncate(len(f.stack) - n)
	return ret
}

func (f *PyFrame) truncate(level int) {
	clear(f.stack[level:])
	f.stack = f.stack[:level]
}

func (f *PyFrame) traceEntry() TraceEntry {
	return TraceEntry{
		Filename: f.Code.Filename,
		Line:     f.Line,
		Name:     f.Code.Name,
	}
}

func (f *PyFrame) GetAttribute(rt *Runtime, name *Handle) (*Handle, error) {
	n, err := rt.attrName(name)
	if err != nil {
		return nil, err
	}
	switch n {
	case "f_back":
		back, err := f.Back.Upgrade()
		if err != nil {
			return rt.None(), nil
		}
		return back, nil
	case "f_code":
		return rt.CodeObject(f.Code), nil
	case "f_globals":
		return f.Globals, nil
	case "f_builtins":
		return f.Builtins, nil
	case "f_lasti":
		return rt.IntFromInt64(int64(f.LastI)), nil
	case "f_lineno":
		return rt.IntFromInt64(int64(f.Line)), nil
	}
	return nil, notImplemented(f.Self(), n)
}

func (f *PyFrame) NativeRepr(rt *Runtime) (string, error) {
	return fmt.Sprintf("<frame at %#x, file %q, line %d, code %s>",
		f.Self().ID(), f.Code.Filename, f.Line, f.Code.Name), nil
}
