package snekvm

import (
	"errors"
	"fmt"
)

type ErrorKind uint8

const (
	NotImplemented ErrorKind = iota
	TypeError
	ValueError
	AttributeError
	NameError
	KeyError
	IndexError
	OverflowError
	ZeroDivisionError
	StopIteration
	ModuleNotFoundError
	SyntaxError
	SystemError
	RecursionError
	AssertionError
	RuntimeError
	numErrorKinds
)

var errorKindNames = [numErrorKinds]string{
	NotImplemented:      "NotImplementedError",
	TypeError:           "TypeError",
	ValueError:          "ValueError",
	AttributeError:      "AttributeError",
	NameError:           "NameError",
	KeyError:            "KeyError",
	IndexError:          "IndexError",
	OverflowError:       "OverflowError",
	ZeroDivisionError:   "ZeroDivisionError",
	StopIteration:       "StopIteration",
	ModuleNotFoundError: "ModuleNotFoundError",
	SyntaxError:         "SyntaxError",
	SystemError:         "SystemError",
	RecursionError:      "RecursionError",
	AssertionError:      "AssertionError",
	RuntimeError:        "RuntimeError",
}

func (k ErrorKind) String() string {
	if k < numErrorKinds {
		return errorKindNames[k]
	}
	return "Exception"
}

// Error is a runtime failure. It unwinds frames through the block stack
// and collects one traceback entry per frame it leaves.
type Error struct {
	Kind      ErrorKind
	Message   string
	Traceback []TraceEntry
	// Value is the exception instance when one was raised or reified.
	Value *Handle
}

func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	name := e.typeName()
	if e.Message == "" {
		return name
	}
	return name + ": " + e.Message
}

func (e *Error) typeName() string {
	if e.Value != nil {
		if exc, ok := e.Value.value.(*PyException); ok {
			if t, ok := exc.Class.value.(*PyType); ok {
				return t.Name
			}
		}
	}
	return e.Kind.String()
}

// Is matches errors of the same kind. The sentinels below carry no message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Message != "" {
		return t == e
	}
	return t.Kind == e.Kind
}

var (
	ErrNotImplemented  = &Error{Kind: NotImplemented}
	ErrTypeError       = &Error{Kind: TypeError}
	ErrValueError      = &Error{Kind: ValueError}
	ErrAttributeError  = &Error{Kind: AttributeError}
	ErrNameError       = &Error{Kind: NameError}
	ErrKeyError        = &Error{Kind: KeyError}
	ErrIndexError      = &Error{Kind: IndexError}
	ErrOverflowError   = &Error{Kind: OverflowError}
	ErrZeroDivision    = &Error{Kind: ZeroDivisionError}
	ErrStopIteration   = &Error{Kind: StopIteration}
	ErrModuleNotFound  = &Error{Kind: ModuleNotFoundError}
	ErrSyntaxError     = &Error{Kind: SyntaxError}
	ErrSystemError     = &Error{Kind: SystemError}
	ErrRecursionError  = &Error{Kind: RecursionError}
	ErrAssertionError  = &Error{Kind: AssertionError}
	ErrRuntimeError    = &Error{Kind: RuntimeError}
	ErrDead            = errors.New("handle is dead")
	errFatalBlockDepth = errors.New("block stack overflow")
)

func isKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func isNotImplemented(err error) bool {
	return isKind(err, NotImplemented)
}

func asError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return NewError(SystemError, "%v", err)
}

func notImplemented(h *Handle, name string) error {
	return NewError(NotImplemented, "%s.%s", h.Kind(), name)
}

func typeErrorf(format string, args ...any) error {
	return NewError(TypeError, format, args...)
}
