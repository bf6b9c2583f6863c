package snekvm

import (
	"fmt"
	"unsafe"
	"weak"
)

// Handle is a shared reference to a runtime value.
// Handles are only created by Runtime constructors.
type Handle struct {
	value Value
}

func (h *Handle) Value() Value {
	return h.value
}

func (h *Handle) Kind() Kind {
	return h.value.Kind()
}

// Clone returns another strong reference to the same value.
func (h *Handle) Clone() *Handle {
	return h
}

func (h *Handle) Downgrade() Weak {
	return Weak{
		ptr: weak.Make(h),
	}
}

// ID is the identity of the pointee, stable for its lifetime.
func (h *Handle) ID() uintptr {
	return uintptr(unsafe.Pointer(h))
}

func (h *Handle) Is(other *Handle) bool {
	return h == other
}

func (h *Handle) IsNot(other *Handle) bool {
	return h != other
}

// Supports reports whether the value answers the named special method.
func (h *Handle) Supports(name string) bool {
	if obj, ok := h.value.(*PyObject); ok {
		return obj.hasSpecial(name)
	}
	s, ok := specials[name]
	if !ok {
		return false
	}
	return s.has(h.value)
}

func (h *Handle) String() string {
	switch v := h.value.(type) {
	case *PyNone:
		return "None"
	case *PyBool:
		if v.Value {
			return "True"
		}
		return "False"
	case *PyInt:
		return v.Value.String()
	case *PyFloat:
		return formatFloat(v.Value)
	case *PyStr:
		return quoteStr(v.Value)
	}
	return fmt.Sprintf("<%s at %#x>", h.Kind(), h.ID())
}

// Weak observes a value without keeping it alive.
type Weak struct {
	ptr weak.Pointer[Handle]
}

func (w Weak) Upgrade() (*Handle, error) {
	h := w.ptr.Value()
	if h == nil {
		return nil, ErrDead
	}
	return h, nil
}

// selfRef is embedded in every value kind.
type selfRef struct {
	self weak.Pointer[Handle]
}

func (s *selfRef) bindSelf(h *Handle) {
	s.self = weak.Make(h)
}

// Self returns the handle wrapping the value.
func (s *selfRef) Self() *Handle {
	h := s.self.Value()
	if h == nil {
		panic(fmt.Errorf("self reference upgrade: %w", ErrDead))
	}
	return h
}
