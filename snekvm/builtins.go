package snekvm

import (
	"io"
	"math/big"
	"strconv"
	"strings"
)

func checkArity(name string, args []*Handle, kwargs []KwArg, min, max int) error {
	if len(kwargs) > 0 {
		return typeErrorf("%s() takes no keyword arguments", name)
	}
	if len(args) < min || max >= 0 && len(args) > max {
		switch {
		case min == max && min == 0:
			return typeErrorf("%s() takes no arguments (%d given)", name, len(args))
		case min == max && min == 1:
			return typeErrorf("%s() takes exactly one argument (%d given)", name, len(args))
		case len(args) < min:
			return typeErrorf("%s expected at least %s, got %d", name, plural(min, "argument"), len(args))
		default:
			return typeErrorf("%s expected at most %s, got %d", name, plural(max, "argument"), len(args))
		}
	}
	return nil
}

// fixed wraps fn with an arity check.
func fixed(name string, min, max int, fn NativeFunc) NativeFunc {
	return func(rt *Runtime, args []*Handle, kwargs []KwArg) (*Handle, error) {
		if err := checkArity(name, args, kwargs, min, max); err != nil {
			return nil, err
		}
		return fn(rt, args, kwargs)
	}
}

func (rt *Runtime) initBuiltins() {
	module := rt.Module("builtins")
	rt.builtins = module
	rt.builtinsTable = dictOf(module.value.(*PyModule).Dict)

	rt.initConstructors()

	for _, t := range rt.types {
		typ := t.value.(*PyType)
		switch typ.kind {
		case KindNone, KindFunction, KindModule, KindCode, KindFrame, KindIterator:
			continue
		}
		rt.defBuiltin(typ.Name, t)
	}
	rt.defBuiltin("Exception", rt.exception)
	for _, t := range rt.excTypes {
		rt.defBuiltin(t.value.(*PyType).Name, t)
	}
	rt.defBuiltin("None", rt.none)
	rt.defBuiltin("True", rt.trueValue)
	rt.defBuiltin("False", rt.falseValue)

	for _, def := range []struct {
		name string
		fn   NativeFunc
	}{
		{"print", builtinPrint},
		{"len", fixed("len", 1, 1, builtinLen)},
		{"all", fixed("all", 1, 1, builtinAll)},
		{"any", fixed("any", 1, 1, builtinAny)},
		{"globals", fixed("globals", 0, 0, builtinGlobals)},
		{"locals", fixed("locals", 0, 0, builtinLocals)},
		{"hash", fixed("hash", 1, 1, builtinHash)},
		{"id", fixed("id", 1, 1, builtinID)},
		{"repr", fixed("repr", 1, 1, builtinRepr)},
		{"iter", fixed("iter", 1, 1, builtinIter)},
		{"next", fixed("next", 1, 2, builtinNext)},
		{"getattr", fixed("getattr", 2, 3, builtinGetAttr)},
		{"setattr", fixed("setattr", 3, 3, builtinSetAttr)},
		{"hasattr", fixed("hasattr", 2, 2, builtinHasAttr)},
		{"delattr", fixed("delattr", 2, 2, builtinDelAttr)},
		{"isinstance", fixed("isinstance", 2, 2, builtinIsInstance)},
		{"issubclass", fixed("issubclass", 2, 2, builtinIsSubclass)},
		{"range", fixed("range", 1, 3, builtinRange)},
		{"abs", fixed("abs", 1, 1, builtinAbs)},
		{"min", extremum("min", CmpLt)},
		{"max", extremum("max", CmpGt)},
		{"breakpoint", fixed("breakpoint", 0, 0, builtinBreakpoint)},
	} {
		rt.defBuiltin(def.name, rt.NativeFunction(def.name, def.fn))
	}
}

func (rt *Runtime) setConstructor(kind Kind, fn NativeFunc) {
	rt.types[kind].value.(*PyType).construct = fn
}

func (rt *Runtime) initConstructors() {

	rt.setConstructor(KindInt, fixed("int", 0, 2, func(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
		if len(args) == 0 {
			return rt.IntFromInt64(0), nil
		}
		if len(args) == 2 {
			s, ok := args[0].value.(*PyStr)
			if !ok {
				return nil, typeErrorf("int() can't convert non-string with explicit base")
			}
			base, err := rt.AsIndex(args[1])
			if err != nil {
				return nil, err
			}
			return rt.parseInt(s.Value, base)
		}
		if s, ok := args[0].value.(*PyStr); ok {
			return rt.parseInt(s.Value, 10)
		}
		v, err := args[0].NativeInt(rt)
		if isNotImplemented(err) {
			v, err = args[0].NativeIndex(rt)
		}
		if isNotImplemented(err) {
			return nil, typeErrorf("int() argument must be a string, a bytes-like object or a real number, not '%s'", rt.TypeName(args[0]))
		}
		if err != nil {
			return nil, err
		}
		return rt.Int(new(big.Int).Set(v)), nil
	}))

	rt.setConstructor(KindFloat, fixed("float", 0, 1, func(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
		if len(args) == 0 {
			return rt.Float(0), nil
		}
		if s, ok := args[0].value.(*PyStr); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(s.Value), 64)
			if err != nil && !isRangeError(err) {
				return nil, NewError(ValueError, "could not convert string to float: %s", quoteStr(s.Value))
			}
			return rt.Float(f), nil
		}
		v, err := args[0].NativeFloat(rt)
		if isNotImplemented(err) {
			return nil, typeErrorf("float() argument must be a string or a real number, not '%s'", rt.TypeName(args[0]))
		}
		if err != nil {
			return nil, err
		}
		return rt.Float(v), nil
	}))

	rt.setConstructor(KindBool, fixed("bool", 0, 1, func(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
		if len(args) == 0 {
			return rt.Bool(false), nil
		}
		b, err := rt.Truthy(args[0])
		if err != nil {
			return nil, err
		}
		return rt.Bool(b), nil
	}))

	rt.setConstructor(KindStr, fixed("str", 0, 1, func(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
		if len(args) == 0 {
			return rt.emptyStr, nil
		}
		if _, ok := args[0].value.(*PyStr); ok {
			return args[0], nil
		}
		s, err := rt.StrOf(args[0])
		if err != nil {
			return nil, err
		}
		return rt.Str(s), nil
	}))

	rt.setConstructor(KindList, fixed("list", 0, 1, func(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
		if len(args) == 0 {
			return rt.List(nil), nil
		}
		elems, err := rt.Collect(args[0])
		if err != nil {
			return nil, err
		}
		return rt.List(elems), nil
	}))

	rt.setConstructor(KindTuple, fixed("tuple", 0, 1, func(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
		if len(args) == 0 {
			return rt.emptyTuple, nil
		}
		if _, ok := args[0].value.(*PyTuple); ok {
			return args[0], nil
		}
		elems, err := rt.Collect(args[0])
		if err != nil {
			return nil, err
		}
		return rt.Tuple(elems), nil
	}))

	rt.setConstructor(KindDict, func(rt *Runtime, args []*Handle, kwargs []KwArg) (*Handle, error) {
		if len(args) > 1 {
			return nil, typeErrorf("dict expected at most 1 argument, got %d", len(args))
		}
		dict := rt.Dict()
		d := dictOf(dict)
		if len(args) == 1 {
			if _, err := d.Update(rt, args[0]); err != nil {
				return nil, err
			}
		}
		for _, kw := range kwargs {
			if err := d.store(rt, rt.Str(kw.Name), kw.Value); err != nil {
				return nil, err
			}
		}
		return dict, nil
	})

	rt.setConstructor(KindSet, fixed("set", 0, 1, func(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
		set := rt.Set()
		if len(args) == 1 {
			if _, err := set.value.(*PySet).Update(rt, args[0]); err != nil {
				return nil, err
			}
		}
		return set, nil
	}))

	rt.setConstructor(KindObject, fixed("object", 0, 0, func(rt *Runtime, _ []*Handle, _ []KwArg) (*Handle, error) {
		return rt.Object(nil), nil
	}))

	rt.setConstructor(KindType, func(rt *Runtime, args []*Handle, kwargs []KwArg) (*Handle, error) {
		if len(kwargs) > 0 {
			return nil, typeErrorf("type() takes no keyword arguments")
		}
		switch len(args) {
		case 1:
			return rt.TypeOf(args[0]), nil
		case 3:
		default:
			return nil, typeErrorf("type() takes 1 or 3 arguments")
		}
		name, ok := args[0].value.(*PyStr)
		if !ok {
			return nil, typeErrorf("type.__new__() argument 1 must be str, not %s", rt.TypeName(args[0]))
		}
		bases, ok := args[1].value.(*PyTuple)
		if !ok {
			return nil, typeErrorf("type.__new__() argument 2 must be tuple, not %s", rt.TypeName(args[1]))
		}
		for _, base := range bases.Elems {
			if _, ok := base.value.(*PyType); !ok {
				return nil, typeErrorf("bases must be types")
			}
		}
		ns, ok := args[2].value.(*PyDict)
		if !ok {
			return nil, typeErrorf("type.__new__() argument 3 must be dict, not %s", rt.TypeName(args[2]))
		}
		dict, err := ns.Copy(rt)
		if err != nil {
			return nil, err
		}
		return rt.NewType(name.Value, append([]*Handle(nil), bases.Elems...), dict), nil
	})
}

func isRangeError(err error) bool {
	e, ok := err.(*strconv.NumError)
	return ok && e.Err == strconv.ErrRange
}

func (rt *Runtime) parseInt(s string, base int) (*Handle, error) {
	if base != 0 && (base < 2 || base > 36) {
		return nil, NewError(ValueError, "int() base must be >= 2 and <= 36, or 0")
	}
	text := strings.TrimSpace(s)
	if base != 0 {
		text = strings.ReplaceAll(text, "_", "")
	}
	v, ok := new(big.Int).SetString(text, base)
	if !ok || text == "" {
		return nil, NewError(ValueError, "invalid literal for int() with base %d: %s", base, quoteStr(s))
	}
	return rt.Int(v), nil
}

func builtinPrint(rt *Runtime, args []*Handle, kwargs []KwArg) (*Handle, error) {
	sep, end := " ", "\n"
	for _, kw := range kwargs {
		var target *string
		switch kw.Name {
		case "sep":
			target = &sep
		case "end":
			target = &end
		default:
			return nil, typeErrorf("'%s' is an invalid keyword argument for print()", kw.Name)
		}
		if kw.Value.Is(rt.None()) {
			continue
		}
		s, ok := kw.Value.value.(*PyStr)
		if !ok {
			return nil, typeErrorf("%s must be None or a string, not %s", kw.Name, rt.TypeName(kw.Value))
		}
		*target = s.Value
	}
	parts := make([]string, len(args))
	for i, arg := range args {
		s, err := rt.StrOf(arg)
		if err != nil {
			return nil, err
		}
		parts[i] = s
	}
	if _, err := io.WriteString(rt.Stdout, strings.Join(parts, sep)+end); err != nil {
		return nil, NewError(RuntimeError, "print: %v", err)
	}
	return rt.None(), nil
}

func builtinLen(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
	n, err := rt.Len(args[0])
	if err != nil {
		return nil, err
	}
	return rt.IntFromInt64(int64(n)), nil
}

func truthScan(rt *Runtime, iterable *Handle, stopOn bool) (bool, error) {
	it, err := rt.Iter(iterable)
	if err != nil {
		return false, err
	}
	for {
		v, err := rt.Next(it)
		if isKind(err, StopIteration) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		t, err := rt.Truthy(v)
		if err != nil {
			return false, err
		}
		if t == stopOn {
			return true, nil
		}
	}
}

func builtinAll(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
	found, err := truthScan(rt, args[0], false)
	if err != nil {
		return nil, err
	}
	return rt.Bool(!found), nil
}

func builtinAny(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
	found, err := truthScan(rt, args[0], true)
	if err != nil {
		return nil, err
	}
	return rt.Bool(found), nil
}

func builtinGlobals(rt *Runtime, _ []*Handle, _ []KwArg) (*Handle, error) {
	if rt.interp == nil {
		return nil, NewError(SystemError, "globals() called without an interpreter")
	}
	if f := rt.interp.current(); f != nil {
		return f.Globals, nil
	}
	return rt.interp.globals, nil
}

func builtinLocals(rt *Runtime, _ []*Handle, _ []KwArg) (*Handle, error) {
	if rt.interp == nil {
		return nil, NewError(SystemError, "locals() called without an interpreter")
	}
	f := rt.interp.current()
	if f == nil {
		return rt.interp.globals, nil
	}
	if f.Locals != nil {
		return f.Locals, nil
	}
	locals := rt.Dict()
	for i, name := range f.Code.VarNames {
		if f.Fast[i] == nil {
			continue
		}
		if err := dictOf(locals).store(rt, rt.Str(name), f.Fast[i]); err != nil {
			return nil, err
		}
	}
	return locals, nil
}

func builtinHash(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
	h, err := rt.Hash(args[0])
	if err != nil {
		return nil, err
	}
	return rt.hashResult(h), nil
}

func builtinID(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
	return rt.Int(new(big.Int).SetUint64(uint64(args[0].ID()))), nil
}

func builtinRepr(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
	s, err := rt.ReprOf(args[0])
	if err != nil {
		return nil, err
	}
	return rt.Str(s), nil
}

func builtinIter(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
	return rt.Iter(args[0])
}

func builtinNext(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
	v, err := rt.Next(args[0])
	if isKind(err, StopIteration) && len(args) == 2 {
		return args[1], nil
	}
	return v, err
}

func builtinGetAttr(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
	name, err := rt.attrName(args[1])
	if err != nil {
		return nil, err
	}
	v, err := rt.GetAttr(args[0], name)
	if isKind(err, AttributeError) && len(args) == 3 {
		return args[2], nil
	}
	return v, err
}

func builtinSetAttr(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
	name, err := rt.attrName(args[1])
	if err != nil {
		return nil, err
	}
	if err := rt.SetAttr(args[0], name, args[2]); err != nil {
		return nil, err
	}
	return rt.None(), nil
}

func builtinHasAttr(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
	name, err := rt.attrName(args[1])
	if err != nil {
		return nil, err
	}
	ok, err := rt.HasAttr(args[0], name)
	if err != nil {
		return nil, err
	}
	return rt.Bool(ok), nil
}

func builtinDelAttr(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
	name, err := rt.attrName(args[1])
	if err != nil {
		return nil, err
	}
	if err := rt.DelAttr(args[0], name); err != nil {
		return nil, err
	}
	return rt.None(), nil
}

func classMatch(class, spec *Handle, fn string) (bool, error) {
	if tuple, ok := spec.value.(*PyTuple); ok {
		for _, elem := range tuple.Elems {
			ok, err := classMatch(class, elem, fn)
			if err != nil || ok {
				return ok, err
			}
		}
		return false, nil
	}
	if _, ok := spec.value.(*PyType); !ok {
		return false, typeErrorf("%s() arg 2 must be a type or tuple of types", fn)
	}
	return IsSubclass(class, spec), nil
}

func builtinIsInstance(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
	ok, err := classMatch(rt.TypeOf(args[0]), args[1], "isinstance")
	if err != nil {
		return nil, err
	}
	return rt.Bool(ok), nil
}

func builtinIsSubclass(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
	if _, ok := args[0].value.(*PyType); !ok {
		return nil, typeErrorf("issubclass() arg 1 must be a class")
	}
	ok, err := classMatch(args[0], args[1], "issubclass")
	if err != nil {
		return nil, err
	}
	return rt.Bool(ok), nil
}

func builtinRange(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
	bounds := make([]int, len(args))
	for i, arg := range args {
		n, err := rt.AsIndex(arg)
		if err != nil {
			return nil, err
		}
		bounds[i] = n
	}
	switch len(bounds) {
	case 1:
		return rt.RangeIterator(0, bounds[0], 1)
	case 2:
		return rt.RangeIterator(bounds[0], bounds[1], 1)
	}
	return rt.RangeIterator(bounds[0], bounds[1], bounds[2])
}

func builtinAbs(rt *Runtime, args []*Handle, _ []KwArg) (*Handle, error) {
	return rt.Unary(UnaryAbs, args[0])
}

// extremum implements min and max over one iterable or several arguments.
func extremum(name string, op CompareOperator) NativeFunc {
	return func(rt *Runtime, args []*Handle, kwargs []KwArg) (*Handle, error) {
		var fallback *Handle
		for _, kw := range kwargs {
			if kw.Name != "default" {
				return nil, typeErrorf("'%s' is an invalid keyword argument for %s()", kw.Name, name)
			}
			fallback = kw.Value
		}
		var items []*Handle
		switch len(args) {
		case 0:
			return nil, typeErrorf("%s expected at least 1 argument, got 0", name)
		case 1:
			var err error
			items, err = rt.Collect(args[0])
			if err != nil {
				return nil, err
			}
		default:
			if fallback != nil {
				return nil, typeErrorf("Cannot specify a default for %s() with multiple positional arguments", name)
			}
			items = args
		}
		if len(items) == 0 {
			if fallback != nil {
				return fallback, nil
			}
			return nil, NewError(ValueError, "%s() arg is an empty sequence", name)
		}
		best := items[0]
		for _, item := range items[1:] {
			r, err := rt.Compare(op, item, best)
			if err != nil {
				return nil, err
			}
			better, err := rt.Truthy(r)
			if err != nil {
				return nil, err
			}
			if better {
				best = item
			}
		}
		return best, nil
	}
}

func builtinBreakpoint(rt *Runtime, args []*Handle, kwargs []KwArg) (*Handle, error) {
	if rt.Breakpoint == nil {
		return rt.None(), nil
	}
	globals, err := builtinGlobals(rt, args, kwargs)
	if err != nil {
		return nil, err
	}
	if err := rt.Breakpoint(rt, globals); err != nil {
		return nil, NewError(RuntimeError, "breakpoint: %v", err)
	}
	return rt.None(), nil
}
