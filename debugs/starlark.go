package debugs

import (
	"fmt"

	"github.com/reusee/snek/snekvm"
	"go.starlark.net/starlark"
)

// toStarlarkValue converts a snek value for display in the tap. Callables
// are wrapped so they can be invoked from the tap; other unknown values are
// shown by their repr.
func toStarlarkValue(rt *snekvm.Runtime, h *snekvm.Handle) (starlark.Value, error) {
	switch v := h.Value().(type) {

	case *snekvm.PyNone:
		return starlark.None, nil

	case *snekvm.PyBool:
		return starlark.Bool(v.Value), nil

	case *snekvm.PyInt:
		return starlark.MakeBigInt(v.Value), nil

	case *snekvm.PyFloat:
		return starlark.Float(v.Value), nil

	case *snekvm.PyStr:
		return starlark.String(v.Value), nil

	case *snekvm.PyBytes:
		return starlark.Bytes(v.Value), nil

	case *snekvm.PyTuple:
		elems, err := toStarlarkValues(rt, v.Elems)
		if err != nil {
			return nil, err
		}
		return starlark.Tuple(elems), nil

	case *snekvm.PyList:
		elems, err := toStarlarkValues(rt, v.Elems)
		if err != nil {
			return nil, err
		}
		return starlark.NewList(elems), nil

	case *snekvm.PyDict:
		keys, values := v.Entries()
		d := starlark.NewDict(len(keys))
		for i, key := range keys {
			k, err := toStarlarkValue(rt, key)
			if err != nil {
				return nil, err
			}
			value, err := toStarlarkValue(rt, values[i])
			if err != nil {
				return nil, err
			}
			if err := d.SetKey(k, value); err != nil {
				return nil, err
			}
		}
		return d, nil

	case *snekvm.PySet:
		items, err := rt.Collect(h)
		if err != nil {
			return nil, err
		}
		set := starlark.NewSet(len(items))
		for _, item := range items {
			elem, err := toStarlarkValue(rt, item)
			if err != nil {
				return nil, err
			}
			if err := set.Insert(elem); err != nil {
				return nil, err
			}
		}
		return set, nil

	}

	switch h.Kind() {
	case snekvm.KindFunction, snekvm.KindType:
		return wrapCallable(rt, h), nil
	}

	repr, err := rt.ReprOf(h)
	if err != nil {
		return nil, err
	}
	return starlark.String(repr), nil
}

func toStarlarkValues(rt *snekvm.Runtime, hs []*snekvm.Handle) ([]starlark.Value, error) {
	ret := make([]starlark.Value, len(hs))
	for i, h := range hs {
		v, err := toStarlarkValue(rt, h)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

func fromStarlarkValue(rt *snekvm.Runtime, v starlark.Value) (*snekvm.Handle, error) {
	switch v := v.(type) {

	case starlark.NoneType:
		return rt.None(), nil

	case starlark.Bool:
		return rt.Bool(bool(v)), nil

	case starlark.Int:
		return rt.Int(v.BigInt()), nil

	case starlark.Float:
		return rt.Float(float64(v)), nil

	case starlark.String:
		return rt.Str(string(v)), nil

	case starlark.Bytes:
		return rt.Bytes([]byte(v)), nil

	case starlark.Tuple:
		elems, err := fromStarlarkValues(rt, v)
		if err != nil {
			return nil, err
		}
		return rt.Tuple(elems), nil

	case *starlark.List:
		elems := make([]starlark.Value, v.Len())
		for i := range elems {
			elems[i] = v.Index(i)
		}
		hs, err := fromStarlarkValues(rt, elems)
		if err != nil {
			return nil, err
		}
		return rt.List(hs), nil

	case *starlark.Dict:
		d := rt.Dict()
		for _, item := range v.Items() {
			key, err := fromStarlarkValue(rt, item[0])
			if err != nil {
				return nil, err
			}
			value, err := fromStarlarkValue(rt, item[1])
			if err != nil {
				return nil, err
			}
			if err := rt.SetItem(d, key, value); err != nil {
				return nil, err
			}
		}
		return d, nil

	case *callable:
		return v.handle, nil

	}

	return nil, fmt.Errorf("unsupported starlark value: %s", v.Type())
}

func fromStarlarkValues(rt *snekvm.Runtime, vs []starlark.Value) ([]*snekvm.Handle, error) {
	ret := make([]*snekvm.Handle, len(vs))
	for i, v := range vs {
		h, err := fromStarlarkValue(rt, v)
		if err != nil {
			return nil, err
		}
		ret[i] = h
	}
	return ret, nil
}

// callable exposes a snek function or type to starlark.
type callable struct {
	rt     *snekvm.Runtime
	handle *snekvm.Handle
	name   string
}

var _ starlark.Callable = new(callable)

func wrapCallable(rt *snekvm.Runtime, h *snekvm.Handle) *callable {
	name := h.String()
	switch v := h.Value().(type) {
	case *snekvm.PyFunction:
		name = v.Name
	case *snekvm.PyType:
		name = v.Name
	}
	return &callable{
		rt:     rt,
		handle: h,
		name:   name,
	}
}

func (c *callable) Name() string          { return c.name }
func (c *callable) String() string        { return "<snek " + c.name + ">" }
func (c *callable) Type() string          { return "snek_callable" }
func (c *callable) Freeze()               {}
func (c *callable) Truth() starlark.Bool  { return starlark.True }
func (c *callable) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable: %s", c.Type()) }

func (c *callable) CallInternal(thread *starlark.Thread, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	callArgs, err := fromStarlarkValues(c.rt, args)
	if err != nil {
		return nil, err
	}
	var callKwargs []snekvm.KwArg
	for _, kw := range kwargs {
		value, err := fromStarlarkValue(c.rt, kw[1])
		if err != nil {
			return nil, err
		}
		callKwargs = append(callKwargs, snekvm.KwArg{
			Name:  string(kw[0].(starlark.String)),
			Value: value,
		})
	}
	ret, err := c.rt.Call(c.handle, callArgs, callKwargs)
	if err != nil {
		return nil, err
	}
	return toStarlarkValue(c.rt, ret)
}
