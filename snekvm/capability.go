package snekvm

import (
	"math"
	"math/big"
)

//go:generate go run ../internal/capgen -out .

// special describes one entry of the special-name table: its arity bounds,
// whether a value kind supports it, and how to invoke it through a handle.
type special struct {
	min int
	max int
	has func(Value) bool
	run func(rt *Runtime, h *Handle, args []*Handle, kwargs []KwArg) (*Handle, error)
}

func argAt(args []*Handle, i int) *Handle {
	if i < len(args) {
		return args[i]
	}
	return nil
}

// KwArg is one keyword argument of a call.
type KwArg struct {
	Name  string
	Value *Handle
}

// NativeFunc is the Go body of a builtin function or method.
type NativeFunc func(rt *Runtime, args []*Handle, kwargs []KwArg) (*Handle, error)

func resultTypeError(r *Handle, name string, want string) error {
	return typeErrorf("%s should return %s, returned %s", name, want, r.Kind())
}

func handleToBool(r *Handle, name string) (bool, error) {
	if v, ok := r.value.(*PyBool); ok {
		return v.Value, nil
	}
	return false, resultTypeError(r, name, "bool")
}

func handleToString(r *Handle, name string) (string, error) {
	if v, ok := r.value.(*PyStr); ok {
		return v.Value, nil
	}
	return "", resultTypeError(r, name, "str")
}

func handleToBytes(r *Handle, name string) ([]byte, error) {
	if v, ok := r.value.(*PyBytes); ok {
		return v.Value, nil
	}
	return nil, resultTypeError(r, name, "bytes")
}

func handleToBigInt(r *Handle, name string) (*big.Int, error) {
	switch v := r.value.(type) {
	case *PyInt:
		return v.Value, nil
	case *PyBool:
		if v.Value {
			return big.NewInt(1), nil
		}
		return new(big.Int), nil
	}
	return nil, resultTypeError(r, name, "int")
}

func handleToHash(r *Handle, name string) (uint64, error) {
	i, err := handleToBigInt(r, name)
	if err != nil {
		return 0, err
	}
	if i.IsInt64() {
		return uint64(i.Int64()), nil
	}
	return intHash(i), nil
}

func handleToInt(r *Handle, name string) (int, error) {
	i, err := handleToBigInt(r, name)
	if err != nil {
		return 0, err
	}
	if !i.IsInt64() || i.Int64() > math.MaxInt || i.Int64() < math.MinInt {
		return 0, NewError(OverflowError, "cannot fit 'int' into an index-sized integer")
	}
	return int(i.Int64()), nil
}

func handleToFloat(r *Handle, name string) (float64, error) {
	if v, ok := r.value.(*PyFloat); ok {
		return v.Value, nil
	}
	return 0, resultTypeError(r, name, "float")
}

func handleToComplex(r *Handle, name string) (complex128, error) {
	if v, ok := r.value.(*PyComplex); ok {
		return v.Value, nil
	}
	return 0, resultTypeError(r, name, "complex")
}
