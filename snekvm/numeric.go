package snekvm

import (
	"math"
	"math/big"
	"math/cmplx"
)

type PyBool struct {
	selfRef
	Value bool
}

func (*PyBool) Kind() Kind {
	return KindBool
}

type PyInt struct {
	selfRef
	Value *big.Int
}

func (*PyInt) Kind() Kind {
	return KindInt
}

type PyFloat struct {
	selfRef
	Value float64
}

func (*PyFloat) Kind() Kind {
	return KindFloat
}

type PyComplex struct {
	selfRef
	Value complex128
}

func (*PyComplex) Kind() Kind {
	return KindComplex
}

type numOp uint8

const (
	numAdd numOp = iota
	numSub
	numMul
	numTrueDiv
	numFloorDiv
	numMod
	numDivMod
	numPow
	numLShift
	numRShift
	numAnd
	numXor
	numOr
)

var numOpAttrs = [...]string{
	numAdd:      "__add__",
	numSub:      "__sub__",
	numMul:      "__mul__",
	numTrueDiv:  "__truediv__",
	numFloorDiv: "__floordiv__",
	numMod:      "__mod__",
	numDivMod:   "__divmod__",
	numPow:      "__pow__",
	numLShift:   "__lshift__",
	numRShift:   "__rshift__",
	numAnd:      "__and__",
	numXor:      "__xor__",
	numOr:       "__or__",
}

type numLevel uint8

const (
	levelNone numLevel = iota
	levelInt
	levelFloat
	levelComplex
)

func numericLevel(h *Handle) numLevel {
	switch h.value.(type) {
	case *PyBool, *PyInt:
		return levelInt
	case *PyFloat:
		return levelFloat
	case *PyComplex:
		return levelComplex
	}
	return levelNone
}

// toBig returns the integer payload of a bool or int.
func toBig(h *Handle) *big.Int {
	switch v := h.value.(type) {
	case *PyInt:
		return v.Value
	case *PyBool:
		if v.Value {
			return big.NewInt(1)
		}
		return new(big.Int)
	}
	return nil
}

func bigToFloat(i *big.Int) (float64, error) {
	if i.IsInt64() {
		return float64(i.Int64()), nil
	}
	f, _ := new(big.Float).SetInt(i).Float64()
	if math.IsInf(f, 0) {
		return 0, NewError(OverflowError, "int too large to convert to float")
	}
	return f, nil
}

func toFloat(h *Handle) (float64, error) {
	if v, ok := h.value.(*PyFloat); ok {
		return v.Value, nil
	}
	return bigToFloat(toBig(h))
}

func toComplex(h *Handle) (complex128, error) {
	if v, ok := h.value.(*PyComplex); ok {
		return v.Value, nil
	}
	f, err := toFloat(h)
	if err != nil {
		return 0, err
	}
	return complex(f, 0), nil
}

func (rt *Runtime) numericBinary(op numOp, a, b *Handle) (*Handle, error) {
	la, lb := numericLevel(a), numericLevel(b)
	if la == levelNone {
		return nil, notImplemented(a, numOpAttrs[op])
	}
	if lb == levelNone {
		return nil, notImplemented(b, numOpAttrs[op])
	}
	switch max(la, lb) {
	case levelInt:
		if x, ok := a.value.(*PyBool); ok {
			if y, ok := b.value.(*PyBool); ok {
				switch op {
				case numAnd:
					return rt.Bool(x.Value && y.Value), nil
				case numOr:
					return rt.Bool(x.Value || y.Value), nil
				case numXor:
					return rt.Bool(x.Value != y.Value), nil
				}
			}
		}
		return rt.intBinary(op, toBig(a), toBig(b))
	case levelFloat:
		x, err := toFloat(a)
		if err != nil {
			return nil, err
		}
		y, err := toFloat(b)
		if err != nil {
			return nil, err
		}
		return rt.floatBinary(op, x, y, a)
	default:
		x, err := toComplex(a)
		if err != nil {
			return nil, err
		}
		y, err := toComplex(b)
		if err != nil {
			return nil, err
		}
		return rt.complexBinary(op, x, y, a)
	}
}

// floorDivMod is integer division rounding toward negative infinity.
func floorDivMod(x, y *big.Int) (*big.Int, *big.Int) {
	q, m := new(big.Int).QuoRem(x, y, new(big.Int))
	if m.Sign() != 0 && m.Sign() != y.Sign() {
		q.Sub(q, big.NewInt(1))
		m.Add(m, y)
	}
	return q, m
}

const maxShift = 1 << 24

func (rt *Runtime) intBinary(op numOp, x, y *big.Int) (*Handle, error) {
	switch op {
	case numAdd:
		return rt.Int(new(big.Int).Add(x, y)), nil
	case numSub:
		return rt.Int(new(big.Int).Sub(x, y)), nil
	case numMul:
		return rt.Int(new(big.Int).Mul(x, y)), nil
	case numTrueDiv:
		if y.Sign() == 0 {
			return nil, NewError(ZeroDivisionError, "division by zero")
		}
		f, _ := new(big.Rat).SetFrac(x, y).Float64()
		if math.IsInf(f, 0) {
			return nil, NewError(OverflowError, "integer division result too large for a float")
		}
		return rt.Float(f), nil
	case numFloorDiv, numMod, numDivMod:
		if y.Sign() == 0 {
			return nil, NewError(ZeroDivisionError, "integer division or modulo by zero")
		}
		q, m := floorDivMod(x, y)
		switch op {
		case numFloorDiv:
			return rt.Int(q), nil
		case numMod:
			return rt.Int(m), nil
		}
		return rt.Tuple([]*Handle{rt.Int(q), rt.Int(m)}), nil
	case numPow:
		if y.Sign() < 0 {
			fx, err := bigToFloat(x)
			if err != nil {
				return nil, err
			}
			fy, err := bigToFloat(y)
			if err != nil {
				return nil, err
			}
			return rt.floatBinary(numPow, fx, fy, nil)
		}
		if y.BitLen() > 32 && x.CmpAbs(big.NewInt(1)) > 0 {
			return nil, NewError(OverflowError, "exponent too large")
		}
		return rt.Int(new(big.Int).Exp(x, y, nil)), nil
	case numLShift, numRShift:
		if y.Sign() < 0 {
			return nil, NewError(ValueError, "negative shift count")
		}
		if op == numRShift {
			if !y.IsInt64() || y.Int64() > int64(x.BitLen()) {
				if x.Sign() < 0 {
					return rt.IntFromInt64(-1), nil
				}
				return rt.IntFromInt64(0), nil
			}
			return rt.Int(new(big.Int).Rsh(x, uint(y.Int64()))), nil
		}
		if x.Sign() == 0 {
			return rt.IntFromInt64(0), nil
		}
		if !y.IsInt64() || y.Int64() > maxShift {
			return nil, NewError(OverflowError, "too many digits in integer")
		}
		return rt.Int(new(big.Int).Lsh(x, uint(y.Int64()))), nil
	case numAnd:
		return rt.Int(new(big.Int).And(x, y)), nil
	case numXor:
		return rt.Int(new(big.Int).Xor(x, y)), nil
	case numOr:
		return rt.Int(new(big.Int).Or(x, y)), nil
	}
	return nil, NewError(SystemError, "bad numeric operator %d", op)
}

func (rt *Runtime) floatBinary(op numOp, x, y float64, self *Handle) (*Handle, error) {
	switch op {
	case numAdd:
		return rt.Float(x + y), nil
	case numSub:
		return rt.Float(x - y), nil
	case numMul:
		return rt.Float(x * y), nil
	case numTrueDiv:
		if y == 0 {
			return nil, NewError(ZeroDivisionError, "float division by zero")
		}
		return rt.Float(x / y), nil
	case numFloorDiv, numMod, numDivMod:
		if y == 0 {
			switch op {
			case numFloorDiv:
				return nil, NewError(ZeroDivisionError, "float floor division by zero")
			case numMod:
				return nil, NewError(ZeroDivisionError, "float modulo by zero")
			}
			return nil, NewError(ZeroDivisionError, "float divmod()")
		}
		m := math.Mod(x, y)
		if m != 0 && (m < 0) != (y < 0) {
			m += y
		}
		q := math.Floor((x - m) / y)
		switch op {
		case numFloorDiv:
			return rt.Float(q), nil
		case numMod:
			return rt.Float(m), nil
		}
		return rt.Tuple([]*Handle{rt.Float(q), rt.Float(m)}), nil
	case numPow:
		if x == 0 && y < 0 {
			return nil, NewError(ZeroDivisionError, "0.0 cannot be raised to a negative power")
		}
		if x < 0 && y != math.Trunc(y) {
			return rt.Complex(cmplx.Pow(complex(x, 0), complex(y, 0))), nil
		}
		r := math.Pow(x, y)
		if math.IsInf(r, 0) && !math.IsInf(x, 0) && !math.IsInf(y, 0) {
			return nil, NewError(OverflowError, "(34, 'Numerical result out of range')")
		}
		return rt.Float(r), nil
	}
	if self == nil {
		return nil, NewError(SystemError, "bad numeric operator %d", op)
	}
	return nil, notImplemented(self, numOpAttrs[op])
}

func (rt *Runtime) complexBinary(op numOp, x, y complex128, self *Handle) (*Handle, error) {
	switch op {
	case numAdd:
		return rt.Complex(x + y), nil
	case numSub:
		return rt.Complex(x - y), nil
	case numMul:
		return rt.Complex(x * y), nil
	case numTrueDiv:
		if y == 0 {
			return nil, NewError(ZeroDivisionError, "complex division by zero")
		}
		return rt.Complex(x / y), nil
	case numPow:
		if x == 0 && (real(y) < 0 || imag(y) != 0) {
			return nil, NewError(ZeroDivisionError, "0.0 to a negative or complex power")
		}
		return rt.Complex(cmplx.Pow(x, y)), nil
	}
	return nil, notImplemented(self, numOpAttrs[op])
}

func (rt *Runtime) numericCompare(op CompareOperator, a, b *Handle) (bool, error) {
	la, lb := numericLevel(a), numericLevel(b)
	if lb == levelNone {
		return false, notImplemented(b, compareAttrs[op])
	}
	var c int
	switch max(la, lb) {
	case levelInt:
		c = toBig(a).Cmp(toBig(b))
	case levelFloat:
		x, err := toFloat(a)
		if err != nil {
			return false, err
		}
		y, err := toFloat(b)
		if err != nil {
			return false, err
		}
		if math.IsNaN(x) || math.IsNaN(y) {
			return op == CmpNe, nil
		}
		switch {
		case x < y:
			c = -1
		case x > y:
			c = 1
		}
	default:
		if op != CmpEq && op != CmpNe {
			return false, notImplemented(a, compareAttrs[op])
		}
		x, err := toComplex(a)
		if err != nil {
			return false, err
		}
		y, err := toComplex(b)
		if err != nil {
			return false, err
		}
		return (x == y) == (op == CmpEq), nil
	}
	return compareResult(op, c), nil
}

var compareAttrs = [numCompareOperators]string{
	CmpEq: "__eq__",
	CmpNe: "__ne__",
	CmpLt: "__lt__",
	CmpLe: "__le__",
	CmpGt: "__gt__",
	CmpGe: "__ge__",
}

func compareResult(op CompareOperator, c int) bool {
	switch op {
	case CmpEq:
		return c == 0
	case CmpNe:
		return c != 0
	case CmpLt:
		return c < 0
	case CmpLe:
		return c <= 0
	case CmpGt:
		return c > 0
	default:
		return c >= 0
	}
}

// bool

func (v *PyBool) NativeHash(rt *Runtime) (uint64, error) {
	if v.Value {
		return 1, nil
	}
	return 0, nil
}

func (v *PyBool) NativeRepr(rt *Runtime) (string, error) {
	if v.Value {
		return "True", nil
	}
	return "False", nil
}

func (v *PyBool) Bool(rt *Runtime) (*Handle, error) {
	return v.Self(), nil
}

func (v *PyBool) NativeInt(rt *Runtime) (*big.Int, error) {
	return toBig(v.Self()), nil
}

func (v *PyBool) NativeIndex(rt *Runtime) (*big.Int, error) {
	return toBig(v.Self()), nil
}

func (v *PyBool) NativeFloat(rt *Runtime) (float64, error) {
	if v.Value {
		return 1, nil
	}
	return 0, nil
}

func (v *PyBool) Neg(rt *Runtime) (*Handle, error) {
	return rt.Int(new(big.Int).Neg(toBig(v.Self()))), nil
}

func (v *PyBool) Pos(rt *Runtime) (*Handle, error) {
	return rt.Int(toBig(v.Self())), nil
}

func (v *PyBool) Abs(rt *Runtime) (*Handle, error) {
	return rt.Int(toBig(v.Self())), nil
}

func (v *PyBool) Invert(rt *Runtime) (*Handle, error) {
	return rt.Int(new(big.Int).Not(toBig(v.Self()))), nil
}

// int

func (v *PyInt) NativeHash(rt *Runtime) (uint64, error) {
	return intHash(v.Value), nil
}

func (v *PyInt) NativeRepr(rt *Runtime) (string, error) {
	return v.Value.String(), nil
}

func (v *PyInt) NativeBool(rt *Runtime) (bool, error) {
	return v.Value.Sign() != 0, nil
}

func (v *PyInt) Int(rt *Runtime) (*Handle, error) {
	return v.Self(), nil
}

func (v *PyInt) Index(rt *Runtime) (*Handle, error) {
	return v.Self(), nil
}

func (v *PyInt) NativeFloat(rt *Runtime) (float64, error) {
	return bigToFloat(v.Value)
}

func (v *PyInt) Neg(rt *Runtime) (*Handle, error) {
	return rt.Int(new(big.Int).Neg(v.Value)), nil
}

func (v *PyInt) Pos(rt *Runtime) (*Handle, error) {
	return v.Self(), nil
}

func (v *PyInt) Abs(rt *Runtime) (*Handle, error) {
	if v.Value.Sign() >= 0 {
		return v.Self(), nil
	}
	return rt.Int(new(big.Int).Abs(v.Value)), nil
}

func (v *PyInt) Invert(rt *Runtime) (*Handle, error) {
	return rt.Int(new(big.Int).Not(v.Value)), nil
}

func (v *PyInt) Round(rt *Runtime, ndigits *Handle) (*Handle, error) {
	if ndigits == nil || ndigits.Is(rt.None()) {
		return v.Self(), nil
	}
	n, err := rt.AsIndex(ndigits)
	if err != nil {
		return nil, err
	}
	if n >= 0 {
		return v.Self(), nil
	}
	if -n > 4300 {
		return rt.IntFromInt64(0), nil
	}
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-n)), nil)
	q, m := floorDivMod(v.Value, pow)
	// round half to even
	twice := new(big.Int).Lsh(m, 1)
	if c := twice.Cmp(pow); c > 0 || c == 0 && q.Bit(0) == 1 {
		q.Add(q, big.NewInt(1))
	}
	return rt.Int(q.Mul(q, pow)), nil
}

// float

func (v *PyFloat) NativeHash(rt *Runtime) (uint64, error) {
	return floatHash(v.Value), nil
}

func (v *PyFloat) NativeRepr(rt *Runtime) (string, error) {
	return formatFloat(v.Value), nil
}

func (v *PyFloat) NativeBool(rt *Runtime) (bool, error) {
	return v.Value != 0, nil
}

func floatToBig(f float64) (*big.Int, error) {
	if math.IsInf(f, 0) {
		return nil, NewError(OverflowError, "cannot convert float infinity to integer")
	}
	if math.IsNaN(f) {
		return nil, NewError(ValueError, "cannot convert float NaN to integer")
	}
	i, _ := big.NewFloat(math.Trunc(f)).Int(nil)
	return i, nil
}

func (v *PyFloat) NativeInt(rt *Runtime) (*big.Int, error) {
	return floatToBig(v.Value)
}

func (v *PyFloat) Float(rt *Runtime) (*Handle, error) {
	return v.Self(), nil
}

func (v *PyFloat) Neg(rt *Runtime) (*Handle, error) {
	return rt.Float(-v.Value), nil
}

func (v *PyFloat) Pos(rt *Runtime) (*Handle, error) {
	return v.Self(), nil
}

func (v *PyFloat) Abs(rt *Runtime) (*Handle, error) {
	return rt.Float(math.Abs(v.Value)), nil
}

func (v *PyFloat) Round(rt *Runtime, ndigits *Handle) (*Handle, error) {
	if ndigits == nil || ndigits.Is(rt.None()) {
		i, err := floatToBig(math.RoundToEven(v.Value))
		if err != nil {
			return nil, err
		}
		return rt.Int(i), nil
	}
	n, err := rt.AsIndex(ndigits)
	if err != nil {
		return nil, err
	}
	if n > 308 || math.IsInf(v.Value, 0) || math.IsNaN(v.Value) {
		return v.Self(), nil
	}
	if n < -308 {
		return rt.Float(math.Copysign(0, v.Value)), nil
	}
	pow := math.Pow(10, float64(n))
	return rt.Float(math.RoundToEven(v.Value*pow) / pow), nil
}

// complex

func (v *PyComplex) NativeHash(rt *Runtime) (uint64, error) {
	return complexHash(v.Value), nil
}

func (v *PyComplex) NativeRepr(rt *Runtime) (string, error) {
	return formatComplex(v.Value), nil
}

func (v *PyComplex) NativeBool(rt *Runtime) (bool, error) {
	return v.Value != 0, nil
}

func (v *PyComplex) Complex(rt *Runtime) (*Handle, error) {
	return v.Self(), nil
}

func (v *PyComplex) Neg(rt *Runtime) (*Handle, error) {
	return rt.Complex(-v.Value), nil
}

func (v *PyComplex) Pos(rt *Runtime) (*Handle, error) {
	return v.Self(), nil
}

func (v *PyComplex) Abs(rt *Runtime) (*Handle, error) {
	return rt.Float(cmplx.Abs(v.Value)), nil
}
