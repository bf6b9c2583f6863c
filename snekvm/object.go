package snekvm

import (
	"fmt"
	"slices"
)

type PyNone struct {
	selfRef
}

func (*PyNone) Kind() Kind {
	return KindNone
}

func (*PyNone) NativeBool(rt *Runtime) (bool, error) {
	return false, nil
}

func (*PyNone) NativeRepr(rt *Runtime) (string, error) {
	return "None", nil
}

// lookupStr finds a str key without running user code.
func (d *PyDict) lookupStr(name string) (*Handle, bool) {
	for _, i := range d.table.index[strHash(name)] {
		entry := d.table.entries[i]
		if s, ok := entry.key.Key.value.(*PyStr); ok && s.Value == name {
			return entry.value, true
		}
	}
	return nil, false
}

func dictOf(h *Handle) *PyDict {
	return h.value.(*PyDict)
}

// classLookup searches class and its bases depth first, left to right,
// visiting each class once.
func classLookup(class *Handle, name string) (*Handle, bool) {
	seen := make(map[*Handle]bool)
	var visit func(c *Handle) (*Handle, bool)
	visit = func(c *Handle) (*Handle, bool) {
		if seen[c] {
			return nil, false
		}
		seen[c] = true
		t, ok := c.value.(*PyType)
		if !ok {
			return nil, false
		}
		if v, ok := dictOf(t.Dict).lookupStr(name); ok {
			return v, true
		}
		for _, base := range t.Bases {
			if v, ok := visit(base); ok {
				return v, true
			}
		}
		return nil, false
	}
	return visit(class)
}

// IsSubclass reports whether class derives from base.
func IsSubclass(class, base *Handle) bool {
	if class.Is(base) {
		return true
	}
	t, ok := class.value.(*PyType)
	if !ok {
		return false
	}
	return slices.ContainsFunc(t.Bases, func(b *Handle) bool {
		return IsSubclass(b, base)
	})
}

// bindAttr applies the descriptor protocol to a class attribute.
func (rt *Runtime) bindAttr(v, instance, owner *Handle) (*Handle, error) {
	if v.Supports("__get__") {
		return v.DescGet(rt, instance, owner)
	}
	return v, nil
}

type PyObject struct {
	selfRef
	Class *Handle
	Dict  *Handle
}

func (*PyObject) Kind() Kind {
	return KindObject
}

func (o *PyObject) hasSpecial(name string) bool {
	_, ok := classLookup(o.Class, name)
	return ok
}

func (o *PyObject) callSpecial(rt *Runtime, name string, args []*Handle, kwargs []KwArg) (*Handle, error) {
	for len(args) > 0 && args[len(args)-1] == nil {
		args = args[:len(args)-1]
	}
	v, ok := classLookup(o.Class, name)
	if !ok {
		return nil, notImplemented(o.Self(), name)
	}
	fn, err := rt.bindAttr(v, o.Self(), o.Class)
	if err != nil {
		return nil, err
	}
	return rt.Call(fn, args, kwargs)
}

func (rt *Runtime) attrName(name *Handle) (string, error) {
	if s, ok := name.value.(*PyStr); ok {
		return s.Value, nil
	}
	return "", typeErrorf("attribute name must be string, not '%s'", rt.TypeName(name))
}

func (o *PyObject) GetAttribute(rt *Runtime, name *Handle) (*Handle, error) {
	n, err := rt.attrName(name)
	if err != nil {
		return nil, err
	}
	switch n {
	case "__dict__":
		return o.Dict, nil
	case "__class__":
		return o.Class, nil
	}
	if v, ok := dictOf(o.Dict).lookupStr(n); ok {
		return v, nil
	}
	if v, ok := classLookup(o.Class, n); ok {
		return rt.bindAttr(v, o.Self(), o.Class)
	}
	r, err := o.GetAttr(rt, name)
	if isNotImplemented(err) {
		return nil, rt.attributeError(o.Self(), n)
	}
	return r, err
}

func (o *PyObject) SetAttr(rt *Runtime, name, value *Handle) (*Handle, error) {
	n, err := rt.attrName(name)
	if err != nil {
		return nil, err
	}
	if v, ok := classLookup(o.Class, n); ok && v.Supports("__set__") {
		return v.DescSet(rt, o.Self(), value)
	}
	if err := dictOf(o.Dict).store(rt, name, value); err != nil {
		return nil, err
	}
	return rt.None(), nil
}

func (o *PyObject) DelAttr(rt *Runtime, name *Handle) (*Handle, error) {
	n, err := rt.attrName(name)
	if err != nil {
		return nil, err
	}
	if v, ok := classLookup(o.Class, n); ok && v.Supports("__delete__") {
		return v.DescDelete(rt, o.Self())
	}
	_, ok, err := dictOf(o.Dict).remove(rt, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, rt.attributeError(o.Self(), n)
	}
	return rt.None(), nil
}

type PyType struct {
	selfRef
	Name  string
	Bases []*Handle
	Dict  *Handle

	kind      Kind
	exception bool
	errKind   ErrorKind
	construct NativeFunc
}

func (*PyType) Kind() Kind {
	return KindType
}

func (t *PyType) GetAttribute(rt *Runtime, name *Handle) (*Handle, error) {
	n, err := rt.attrName(name)
	if err != nil {
		return nil, err
	}
	switch n {
	case "__name__":
		return rt.Str(t.Name), nil
	case "__bases__":
		return rt.Tuple(slices.Clone(t.Bases)), nil
	case "__dict__":
		return t.Dict, nil
	}
	if v, ok := classLookup(t.Self(), n); ok {
		return rt.bindAttr(v, rt.None(), t.Self())
	}
	if _, ok := specials[n]; ok || n == "__class__" {
		return nil, notImplemented(t.Self(), n)
	}
	return nil, NewError(AttributeError, "type object '%s' has no attribute '%s'", t.Name, n)
}

func (t *PyType) SetAttr(rt *Runtime, name, value *Handle) (*Handle, error) {
	if _, err := rt.attrName(name); err != nil {
		return nil, err
	}
	if err := dictOf(t.Dict).store(rt, name, value); err != nil {
		return nil, err
	}
	return rt.None(), nil
}

func (t *PyType) DelAttr(rt *Runtime, name *Handle) (*Handle, error) {
	n, err := rt.attrName(name)
	if err != nil {
		return nil, err
	}
	_, ok, err := dictOf(t.Dict).remove(rt, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewError(AttributeError, "type object '%s' has no attribute '%s'", t.Name, n)
	}
	return rt.None(), nil
}

func (t *PyType) NativeRepr(rt *Runtime) (string, error) {
	return "<class '" + t.Name + "'>", nil
}

func (t *PyType) Call(rt *Runtime, args []*Handle, kwargs []KwArg) (*Handle, error) {
	if t.construct != nil {
		return t.construct(rt, args, kwargs)
	}
	var instance *Handle
	switch {
	case t.exception:
		message := ""
		switch len(args) {
		case 0:
		case 1:
			s, err := rt.StrOf(args[0])
			if err != nil {
				return nil, err
			}
			message = s
		default:
			s, err := rt.ReprOf(rt.Tuple(slices.Clone(args)))
			if err != nil {
				return nil, err
			}
			message = s
		}
		instance = rt.newException(t.Self(), t.errKind, message)
		instance.value.(*PyException).Args = rt.Tuple(slices.Clone(args))
	case t.kind == KindObject:
		instance = rt.Object(t.Self())
	default:
		return nil, typeErrorf("cannot create '%s' instances", t.Name)
	}

	init, ok := classLookup(t.Self(), "__init__")
	if !ok {
		if !t.exception && (len(args) > 0 || len(kwargs) > 0) {
			return nil, typeErrorf("%s() takes no arguments", t.Name)
		}
		return instance, nil
	}
	fn, err := rt.bindAttr(init, instance, t.Self())
	if err != nil {
		return nil, err
	}
	r, err := rt.Call(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	if !r.Is(rt.None()) {
		return nil, typeErrorf("__init__() should return None, not '%s'", rt.TypeName(r))
	}
	return instance, nil
}

type PyModule struct {
	selfRef
	Name string
	Dict *Handle
}

func (*PyModule) Kind() Kind {
	return KindModule
}

func (m *PyModule) GetAttribute(rt *Runtime, name *Handle) (*Handle, error) {
	n, err := rt.attrName(name)
	if err != nil {
		return nil, err
	}
	switch n {
	case "__name__":
		return rt.Str(m.Name), nil
	case "__dict__":
		return m.Dict, nil
	}
	if v, ok := dictOf(m.Dict).lookupStr(n); ok {
		return v, nil
	}
	if n == "__class__" {
		return nil, notImplemented(m.Self(), n)
	}
	return nil, NewError(AttributeError, "module '%s' has no attribute '%s'", m.Name, n)
}

func (m *PyModule) SetAttr(rt *Runtime, name, value *Handle) (*Handle, error) {
	if _, err := rt.attrName(name); err != nil {
		return nil, err
	}
	if err := dictOf(m.Dict).store(rt, name, value); err != nil {
		return nil, err
	}
	return rt.None(), nil
}

func (m *PyModule) DelAttr(rt *Runtime, name *Handle) (*Handle, error) {
	n, err := rt.attrName(name)
	if err != nil {
		return nil, err
	}
	_, ok, err := dictOf(m.Dict).remove(rt, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewError(AttributeError, "module '%s' has no attribute '%s'", m.Name, n)
	}
	return rt.None(), nil
}

func (m *PyModule) NativeRepr(rt *Runtime) (string, error) {
	return "<module '" + m.Name + "'>", nil
}

type PyCode struct {
	selfRef
	Code *Code
}

func (*PyCode) Kind() Kind {
	return KindCode
}

func (c *PyCode) NativeRepr(rt *Runtime) (string, error) {
	return fmt.Sprintf("<code object %s at %#x, file %q, line %d>",
		c.Code.Name, c.Self().ID(), c.Code.Filename, c.Code.FirstLine), nil
}

type PyException struct {
	selfRef
	Class   *Handle
	ErrKind ErrorKind
	Message string
	Args    *Handle
	Dict    *Handle
	err     *Error
}

func (*PyException) Kind() Kind {
	return KindException
}

func (e *PyException) GetAttribute(rt *Runtime, name *Handle) (*Handle, error) {
	n, err := rt.attrName(name)
	if err != nil {
		return nil, err
	}
	switch n {
	case "args":
		if e.Args != nil {
			return e.Args, nil
		}
		if e.Message == "" {
			return rt.emptyTuple, nil
		}
		return rt.Tuple([]*Handle{rt.Str(e.Message)}), nil
	case "__dict__":
		return e.Dict, nil
	case "__class__":
		return e.Class, nil
	}
	if v, ok := dictOf(e.Dict).lookupStr(n); ok {
		return v, nil
	}
	if v, ok := classLookup(e.Class, n); ok {
		return rt.bindAttr(v, e.Self(), e.Class)
	}
	return nil, notImplemented(e.Self(), n)
}

func (e *PyException) SetAttr(rt *Runtime, name, value *Handle) (*Handle, error) {
	if _, err := rt.attrName(name); err != nil {
		return nil, err
	}
	if err := dictOf(e.Dict).store(rt, name, value); err != nil {
		return nil, err
	}
	return rt.None(), nil
}

func (e *PyException) NativeStr(rt *Runtime) (string, error) {
	return e.Message, nil
}

func (e *PyException) NativeRepr(rt *Runtime) (string, error) {
	name := rt.TypeName(e.Self())
	if e.Message == "" {
		return name + "()", nil
	}
	return name + "(" + quoteStr(e.Message) + ")", nil
}

// exceptionOf returns the exception instance carried by err, creating it
// on first use.
func (rt *Runtime) exceptionOf(err *Error) *Handle {
	if err.Value == nil {
		err.Value = rt.Exception(err.Kind, err.Message)
	}
	if e, ok := err.Value.value.(*PyException); ok && e.err == nil {
		e.err = err
	}
	return err.Value
}

// raise turns an exception instance or class into an error.
func (rt *Runtime) raise(h *Handle) error {
	if t, ok := h.value.(*PyType); ok {
		if !t.exception {
			return typeErrorf("exceptions must derive from BaseException")
		}
		inst, err := rt.Call(h, nil, nil)
		if err != nil {
			return err
		}
		h = inst
	}
	e, ok := h.value.(*PyException)
	if !ok {
		return typeErrorf("exceptions must derive from BaseException")
	}
	if e.err == nil {
		e.err = &Error{
			Kind:    e.ErrKind,
			Message: e.Message,
			Value:   h,
		}
	}
	return e.err
}
