package snekvm

import (
	"context"
	"slices"
)

// call invokes callee from frame f. Code functions get a new frame that the
// run loop enters next; everything else runs to completion here.
func (i *Interpreter) call(f *PyFrame, callee *Handle, args []*Handle, kwargs []KwArg) (signal, error) {
	for {
		fn, ok := callee.value.(*PyFunction)
		if !ok {
			break
		}
		if fn.Type == FuncBound {
			args = slices.Insert(args, 0, fn.Receiver)
			callee = fn.Target
			continue
		}
		if fn.Type == FuncCode {
			fh, err := i.functionFrame(callee, args, kwargs)
			if err != nil {
				return signal{}, err
			}
			return signal{}, i.pushFrame(fh)
		}
		break
	}
	r, err := i.rt.Call(callee, args, kwargs)
	if err != nil {
		return signal{}, err
	}
	f.push(r)
	return signal{}, nil
}

func (i *Interpreter) functionFrame(fnHandle *Handle, args []*Handle, kwargs []KwArg) (*Handle, error) {
	fn := fnHandle.value.(*PyFunction)
	slots, err := fn.Signature.Bind(i.rt, fn.Name, args, kwargs)
	if err != nil {
		return nil, err
	}
	frame := i.newFrame(fn.Code, fn.Globals, nil)
	copy(frame.Fast, slots)
	return i.rt.Frame(frame), nil
}

// callFunction runs a code function called from Go, in a nested run loop.
func (i *Interpreter) callFunction(fn *Handle, args []*Handle, kwargs []KwArg) (*Handle, error) {
	fh, err := i.functionFrame(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	ctx := i.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return i.run(ctx, fh)
}

// makeFunction pops a code object, then keyword-only defaults as name and
// value pairs, then positional defaults. The operand is the positional
// default count, or a list of both counts.
func (i *Interpreter) makeFunction(f *PyFrame, instr Instr) (*Handle, error) {
	rt := i.rt
	var nPos, nKw int
	switch arg := instr.Arg.(type) {
	case nil:
	case CountLit:
		nPos = int(arg)
	case ListLit:
		if len(arg) != 2 {
			return nil, NewError(SystemError, "MakeFunction expects two counts, got %v", arg)
		}
		p, ok1 := arg[0].(CountLit)
		k, ok2 := arg[1].(CountLit)
		if !ok1 || !ok2 {
			return nil, NewError(SystemError, "MakeFunction expects two counts, got %v", arg)
		}
		nPos, nKw = int(p), int(k)
	default:
		return nil, NewError(SystemError, "bad MakeFunction operand %v", instr.Arg)
	}

	codeHandle := f.pop()
	code, ok := codeHandle.value.(*PyCode)
	if !ok {
		return nil, NewError(SystemError, "MakeFunction expects a code object, got %s", rt.TypeName(codeHandle))
	}

	var kwDefaults map[string]*Handle
	if nKw > 0 {
		kwDefaults = make(map[string]*Handle, nKw)
		pairs := f.popN(2 * nKw)
		for j := 0; j < len(pairs); j += 2 {
			name, ok := pairs[j].value.(*PyStr)
			if !ok {
				return nil, NewError(SystemError, "keyword default name must be str")
			}
			kwDefaults[name.Value] = pairs[j+1]
		}
	}
	defaults := f.popN(nPos)
	if nPos > len(code.Code.ArgNames) {
		return nil, NewError(SystemError, "%s: more defaults than parameters", code.Code.Name)
	}

	return rt.Function(&PyFunction{
		Name:      code.Code.Name,
		Type:      FuncCode,
		Code:      code.Code,
		Globals:   f.Globals,
		Signature: SignatureOf(code.Code, defaults, kwDefaults),
	}), nil
}

// keywordArgs converts a mapping into keyword arguments.
func (i *Interpreter) keywordArgs(mapping *Handle) ([]KwArg, error) {
	rt := i.rt
	d, ok := mapping.value.(*PyDict)
	if !ok {
		return nil, typeErrorf("argument after ** must be a mapping, not %s", rt.TypeName(mapping))
	}
	keys, values := d.Entries()
	ret := make([]KwArg, len(keys))
	for j, key := range keys {
		s, ok := key.value.(*PyStr)
		if !ok {
			return nil, typeErrorf("keywords must be strings")
		}
		ret[j] = KwArg{
			Name:  s.Value,
			Value: values[j],
		}
	}
	return ret, nil
}
