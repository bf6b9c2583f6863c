package snekvm

import (
	"io"
	"math/big"
	"os"
)

const (
	smallIntMin = -5
	smallIntMax = 1024
)

// Runtime owns the builtin types, the singletons and the builtins module.
// It is the only source of handles.
type Runtime struct {
	none       *Handle
	trueValue  *Handle
	falseValue *Handle
	emptyStr   *Handle
	emptyTuple *Handle
	emptyBytes *Handle
	smallInts  [smallIntMax - smallIntMin + 1]*Handle

	types         [numKinds]*Handle
	exception     *Handle
	excTypes      [numErrorKinds]*Handle
	builtins      *Handle
	builtinsTable *PyDict

	interp  *Interpreter
	repring map[*Handle]bool

	// Stdout receives print output and PrintExpr echoes.
	Stdout io.Writer
	// Breakpoint is called by the breakpoint builtin with the current globals.
	Breakpoint func(rt *Runtime, globals *Handle) error
}

type Option func(*Runtime)

func WithStdout(w io.Writer) Option {
	return func(rt *Runtime) {
		rt.Stdout = w
	}
}

func WithBreakpoint(fn func(rt *Runtime, globals *Handle) error) Option {
	return func(rt *Runtime) {
		rt.Breakpoint = fn
	}
}

func NewRuntime(opts ...Option) *Runtime {
	rt := &Runtime{
		Stdout: os.Stdout,
	}

	rt.initTypes()

	rt.none = rt.wrap(&PyNone{})
	rt.trueValue = rt.wrap(&PyBool{Value: true})
	rt.falseValue = rt.wrap(&PyBool{Value: false})
	for i := range rt.smallInts {
		rt.smallInts[i] = rt.wrap(&PyInt{
			Value: big.NewInt(int64(i + smallIntMin)),
		})
	}
	rt.emptyStr = rt.wrap(&PyStr{})
	rt.emptyTuple = rt.wrap(&PyTuple{})
	rt.emptyBytes = rt.wrap(&PyBytes{Value: []byte{}})

	rt.initBuiltins()

	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

func (rt *Runtime) wrap(v Value) *Handle {
	h := &Handle{
		value: v,
	}
	v.bindSelf(h)
	return h
}

func (rt *Runtime) initTypes() {
	object := rt.wrap(&PyType{
		Name: "object",
		kind: KindObject,
	})
	rt.types[KindObject] = object
	objectBase := []*Handle{object}

	for kind, name := range kindNames {
		if Kind(kind) == KindObject {
			continue
		}
		rt.types[kind] = rt.wrap(&PyType{
			Name:  name,
			Bases: objectBase,
			kind:  Kind(kind),
		})
	}
	// bool is a subclass of int
	rt.types[KindBool].value.(*PyType).Bases = []*Handle{rt.types[KindInt]}

	base := rt.types[KindException].value.(*PyType)
	base.exception = true
	base.errKind = RuntimeError

	rt.exception = rt.wrap(&PyType{
		Name:      "Exception",
		Bases:     []*Handle{rt.types[KindException]},
		kind:      KindException,
		exception: true,
		errKind:   RuntimeError,
	})
	for kind, name := range errorKindNames {
		rt.excTypes[kind] = rt.wrap(&PyType{
			Name:      name,
			Bases:     []*Handle{rt.exception},
			kind:      KindException,
			exception: true,
			errKind:   ErrorKind(kind),
		})
	}

	for _, t := range rt.types {
		t.value.(*PyType).Dict = rt.Dict()
	}
	rt.exception.value.(*PyType).Dict = rt.Dict()
	for _, t := range rt.excTypes {
		t.value.(*PyType).Dict = rt.Dict()
	}
}

func (rt *Runtime) None() *Handle {
	return rt.none
}

func (rt *Runtime) Bool(b bool) *Handle {
	if b {
		return rt.trueValue
	}
	return rt.falseValue
}

// Int takes ownership of v.
func (rt *Runtime) Int(v *big.Int) *Handle {
	if v.IsInt64() {
		if i := v.Int64(); i >= smallIntMin && i <= smallIntMax {
			return rt.smallInts[i-smallIntMin]
		}
	}
	return rt.wrap(&PyInt{
		Value: v,
	})
}

func (rt *Runtime) IntFromInt64(v int64) *Handle {
	if v >= smallIntMin && v <= smallIntMax {
		return rt.smallInts[v-smallIntMin]
	}
	return rt.wrap(&PyInt{
		Value: big.NewInt(v),
	})
}

func (rt *Runtime) hashResult(v uint64) *Handle {
	return rt.IntFromInt64(int64(v))
}

func (rt *Runtime) Float(v float64) *Handle {
	return rt.wrap(&PyFloat{
		Value: v,
	})
}

func (rt *Runtime) Complex(v complex128) *Handle {
	return rt.wrap(&PyComplex{
		Value: v,
	})
}

func (rt *Runtime) Str(s string) *Handle {
	if s == "" {
		return rt.emptyStr
	}
	return rt.wrap(&PyStr{
		Value: s,
	})
}

func (rt *Runtime) Bytes(b []byte) *Handle {
	if len(b) == 0 {
		return rt.emptyBytes
	}
	return rt.wrap(&PyBytes{
		Value: b,
	})
}

// Tuple takes ownership of elems.
func (rt *Runtime) Tuple(elems []*Handle) *Handle {
	if len(elems) == 0 {
		return rt.emptyTuple
	}
	return rt.wrap(&PyTuple{
		Elems: elems,
	})
}

// List takes ownership of elems.
func (rt *Runtime) List(elems []*Handle) *Handle {
	return rt.wrap(&PyList{
		Elems: elems,
	})
}

func (rt *Runtime) Dict() *Handle {
	return rt.wrap(&PyDict{
		table: newTable(),
	})
}

func (rt *Runtime) Set() *Handle {
	return rt.wrap(&PySet{
		table: newTable(),
	})
}

// Object allocates an instance of class with an empty attribute dict.
func (rt *Runtime) Object(class *Handle) *Handle {
	if class == nil {
		class = rt.types[KindObject]
	}
	return rt.wrap(&PyObject{
		Class: class,
		Dict:  rt.Dict(),
	})
}

func (rt *Runtime) NewType(name string, bases []*Handle, dict *Handle) *Handle {
	if len(bases) == 0 {
		bases = []*Handle{rt.types[KindObject]}
	}
	if dict == nil {
		dict = rt.Dict()
	}
	t := &PyType{
		Name:  name,
		Bases: bases,
		Dict:  dict,
		kind:  KindObject,
	}
	for _, base := range bases {
		if b, ok := base.value.(*PyType); ok && b.exception {
			t.exception = true
			t.errKind = b.errKind
			t.kind = KindException
			break
		}
	}
	return rt.wrap(t)
}

func (rt *Runtime) Function(fn *PyFunction) *Handle {
	return rt.wrap(fn)
}

func (rt *Runtime) NativeFunction(name string, fn NativeFunc) *Handle {
	return rt.wrap(&PyFunction{
		Name:   name,
		Type:   FuncNative,
		Native: fn,
	})
}

func (rt *Runtime) Module(name string) *Handle {
	return rt.wrap(&PyModule{
		Name: name,
		Dict: rt.Dict(),
	})
}

func (rt *Runtime) CodeObject(code *Code) *Handle {
	return rt.wrap(&PyCode{
		Code: code,
	})
}

func (rt *Runtime) Frame(f *PyFrame) *Handle {
	return rt.wrap(f)
}

func (rt *Runtime) Iterator(it *PyIterator) *Handle {
	return rt.wrap(it)
}

// Exception creates an instance of the builtin exception type for kind.
func (rt *Runtime) Exception(kind ErrorKind, message string) *Handle {
	return rt.newException(rt.excTypes[kind], kind, message)
}

func (rt *Runtime) newException(class *Handle, kind ErrorKind, message string) *Handle {
	return rt.wrap(&PyException{
		Class:   class,
		ErrKind: kind,
		Message: message,
		Dict:    rt.Dict(),
	})
}

// ExceptionType returns the builtin type of the error kind.
func (rt *Runtime) ExceptionType(kind ErrorKind) *Handle {
	return rt.excTypes[kind]
}

// TypeOf returns the type object of h.
func (rt *Runtime) TypeOf(h *Handle) *Handle {
	switch v := h.value.(type) {
	case *PyObject:
		return v.Class
	case *PyException:
		return v.Class
	}
	return rt.types[h.Kind()]
}

// TypeName is the name used in error messages.
func (rt *Runtime) TypeName(h *Handle) string {
	if t, ok := rt.TypeOf(h).value.(*PyType); ok {
		return t.Name
	}
	return h.Kind().String()
}

func (rt *Runtime) GetBuiltin(name string) (*Handle, error) {
	v, ok, err := rt.builtinsTable.lookup(rt, rt.Str(name))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewError(NameError, "name '%s' is not defined", name)
	}
	return v, nil
}

func (rt *Runtime) ImportModule(name string) (*Handle, error) {
	if name == "builtins" {
		return rt.builtins, nil
	}
	return nil, NewError(ModuleNotFoundError, "No module named '%s'", name)
}

func (rt *Runtime) defBuiltin(name string, value *Handle) {
	if err := rt.builtinsTable.store(rt, rt.Str(name), value); err != nil {
		panic(err)
	}
}
