package configs

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/reusee/dscope"
	"github.com/reusee/snek/snekvm"
)

// ScriptFork forks scope with the Configurable values assigned in the
// globals of interp.
func ScriptFork(scope dscope.Scope, interp *snekvm.Interpreter) (dscope.Scope, error) {
	rt := interp.Runtime()
	var defs []any
	for t := range scope.AllTypes() {
		if !t.Implements(configurableType) {
			continue
		}
		value, err := rt.GetItem(interp.Globals(), rt.Str(t.Name()))
		if errors.Is(err, snekvm.ErrKeyError) {
			continue
		}
		if err != nil {
			return scope, err
		}
		ptr := reflect.New(t)
		if err := assign(rt, ptr.Elem(), value); err != nil {
			return scope, fmt.Errorf("%s: %w", t.Name(), err)
		}
		defs = append(defs, ptr.Interface())
	}
	if len(defs) == 0 {
		return scope, nil
	}
	return scope.Fork(defs...), nil
}

func assign(rt *snekvm.Runtime, target reflect.Value, value *snekvm.Handle) error {
	switch target.Kind() {

	case reflect.Bool:
		b, err := rt.Truthy(value)
		if err != nil {
			return err
		}
		target.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, ok := value.Value().(*snekvm.PyInt)
		if !ok {
			return fmt.Errorf("expecting int, got %s", rt.TypeName(value))
		}
		if !v.Value.IsInt64() || target.OverflowInt(v.Value.Int64()) {
			return fmt.Errorf("int out of range: %s", v.Value)
		}
		target.SetInt(v.Value.Int64())
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, ok := value.Value().(*snekvm.PyInt)
		if !ok {
			return fmt.Errorf("expecting int, got %s", rt.TypeName(value))
		}
		if !v.Value.IsUint64() || target.OverflowUint(v.Value.Uint64()) {
			return fmt.Errorf("int out of range: %s", v.Value)
		}
		target.SetUint(v.Value.Uint64())
		return nil

	case reflect.Float32, reflect.Float64:
		switch v := value.Value().(type) {
		case *snekvm.PyFloat:
			target.SetFloat(v.Value)
		case *snekvm.PyInt:
			f, _ := v.Value.Float64()
			if math.IsInf(f, 0) {
				return fmt.Errorf("int out of range: %s", v.Value)
			}
			target.SetFloat(f)
		default:
			return fmt.Errorf("expecting float, got %s", rt.TypeName(value))
		}
		return nil

	case reflect.String:
		v, ok := value.Value().(*snekvm.PyStr)
		if !ok {
			return fmt.Errorf("expecting str, got %s", rt.TypeName(value))
		}
		target.SetString(v.Value)
		return nil

	}
	return fmt.Errorf("unsupported config type: %v", target.Type())
}
