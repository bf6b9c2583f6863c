package snekvm

// Value is the closed set of runtime value kinds.
type Value interface {
	Kind() Kind
	Self() *Handle
	bindSelf(*Handle)
}

type Kind uint8

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindFloat
	KindComplex
	KindStr
	KindBytes
	KindTuple
	KindList
	KindDict
	KindSet
	KindObject
	KindType
	KindFunction
	KindModule
	KindCode
	KindFrame
	KindIterator
	KindException
	numKinds
)

var kindNames = [numKinds]string{
	KindNone:      "NoneType",
	KindBool:      "bool",
	KindInt:       "int",
	KindFloat:     "float",
	KindComplex:   "complex",
	KindStr:       "str",
	KindBytes:     "bytes",
	KindTuple:     "tuple",
	KindList:      "list",
	KindDict:      "dict",
	KindSet:       "set",
	KindObject:    "object",
	KindType:      "type",
	KindFunction:  "function",
	KindModule:    "module",
	KindCode:      "code",
	KindFrame:     "frame",
	KindIterator:  "iterator",
	KindException: "BaseException",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "unknown"
}

var (
	_ Value = (*PyNone)(nil)
	_ Value = (*PyBool)(nil)
	_ Value = (*PyInt)(nil)
	_ Value = (*PyFloat)(nil)
	_ Value = (*PyComplex)(nil)
	_ Value = (*PyStr)(nil)
	_ Value = (*PyBytes)(nil)
	_ Value = (*PyTuple)(nil)
	_ Value = (*PyList)(nil)
	_ Value = (*PyDict)(nil)
	_ Value = (*PySet)(nil)
	_ Value = (*PyObject)(nil)
	_ Value = (*PyType)(nil)
	_ Value = (*PyFunction)(nil)
	_ Value = (*PyModule)(nil)
	_ Value = (*PyCode)(nil)
	_ Value = (*PyFrame)(nil)
	_ Value = (*PyIterator)(nil)
	_ Value = (*PyException)(nil)
)
