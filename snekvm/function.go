package snekvm

import (
	"fmt"
	"slices"
)

type FuncType uint8

const (
	// FuncNative is a builtin implemented in Go.
	FuncNative FuncType = iota
	// FuncMethodWrapper binds a special method of a builtin value.
	FuncMethodWrapper
	// FuncCode runs bytecode in a new frame.
	FuncCode
	// FuncBound prepends Receiver to the arguments of Target.
	FuncBound
)

type PyFunction struct {
	selfRef
	Name      string
	Type      FuncType
	Signature *Signature
	Code      *Code
	Globals   *Handle
	Native    NativeFunc
	Receiver  *Handle
	Target    *Handle
}

func (*PyFunction) Kind() Kind {
	return KindFunction
}

func (f *PyFunction) Call(rt *Runtime, args []*Handle, kwargs []KwArg) (*Handle, error) {
	switch f.Type {
	case FuncNative, FuncMethodWrapper:
		return f.Native(rt, args, kwargs)
	case FuncBound:
		return rt.Call(f.Target, slices.Insert(slices.Clone(args), 0, f.Receiver), kwargs)
	case FuncCode:
		if rt.interp == nil {
			return nil, NewError(SystemError, "%s() called without an interpreter", f.Name)
		}
		return rt.interp.callFunction(f.Self(), args, kwargs)
	}
	return nil, NewError(SystemError, "bad function type %d", f.Type)
}

// Bound returns fn bound to receiver.
func (rt *Runtime) Bound(fn, receiver *Handle) *Handle {
	name := ""
	if f, ok := fn.value.(*PyFunction); ok {
		name = f.Name
	}
	return rt.wrap(&PyFunction{
		Name:     name,
		Type:     FuncBound,
		Receiver: receiver,
		Target:   fn,
	})
}

func (f *PyFunction) DescGet(rt *Runtime, instance, owner *Handle) (*Handle, error) {
	if f.Type != FuncCode || instance == nil || instance.Is(rt.None()) {
		return f.Self(), nil
	}
	return rt.Bound(f.Self(), instance), nil
}

func (f *PyFunction) GetAttribute(rt *Runtime, name *Handle) (*Handle, error) {
	n, err := rt.attrName(name)
	if err != nil {
		return nil, err
	}
	switch n {
	case "__name__":
		return rt.Str(f.Name), nil
	case "__code__":
		if f.Code != nil {
			return rt.CodeObject(f.Code), nil
		}
	case "__self__":
		if f.Receiver != nil {
			return f.Receiver, nil
		}
	case "__func__":
		if f.Target != nil {
			return f.Target, nil
		}
	case "__globals__":
		if f.Globals != nil {
			return f.Globals, nil
		}
	case "__defaults__":
		if f.Signature != nil {
			if len(f.Signature.Defaults) == 0 {
				return rt.None(), nil
			}
			return rt.Tuple(slices.Clone(f.Signature.Defaults)), nil
		}
	}
	return nil, notImplemented(f.Self(), n)
}

func (f *PyFunction) NativeRepr(rt *Runtime) (string, error) {
	switch f.Type {
	case FuncNative:
		return "<built-in function " + f.Name + ">", nil
	case FuncMethodWrapper:
		return fmt.Sprintf("<method-wrapper '%s' of %s object at %#x>", f.Name, rt.TypeName(f.Receiver), f.Receiver.ID()), nil
	case FuncBound:
		r, err := rt.ReprOf(f.Receiver)
		if err != nil {
			return "", err
		}
		return "<bound method " + f.Name + " of " + r + ">", nil
	}
	return fmt.Sprintf("<function %s at %#x>", f.Name, f.Self().ID()), nil
}
