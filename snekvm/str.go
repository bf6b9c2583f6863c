package snekvm

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

type PyStr struct {
	selfRef
	Value string

	// byte offset of each rune, nil for ASCII; filled on first index
	scanned bool
	offsets []int
}

func (*PyStr) Kind() Kind {
	return KindStr
}

type PyBytes struct {
	selfRef
	Value []byte
}

func (*PyBytes) Kind() Kind {
	return KindBytes
}

func (rt *Runtime) strArg(h *Handle, method string) (string, error) {
	if s, ok := h.value.(*PyStr); ok {
		return s.Value, nil
	}
	return "", typeErrorf("%s arg must be str, not %s", method, rt.TypeName(h))
}

func optionalArg(rt *Runtime, h *Handle) bool {
	return h != nil && !h.Is(rt.None())
}

// str

func (s *PyStr) NativeLen(rt *Runtime) (int, error) {
	return utf8.RuneCountInString(s.Value), nil
}

func (s *PyStr) GetItem(rt *Runtime, key *Handle) (*Handle, error) {
	if !s.scanned {
		s.scanOffsets()
	}
	if s.offsets == nil {
		i, err := rt.seqIndex("string", key, len(s.Value))
		if err != nil {
			return nil, err
		}
		return rt.Str(s.Value[i : i+1]), nil
	}
	i, err := rt.seqIndex("string", key, len(s.offsets))
	if err != nil {
		return nil, err
	}
	_, size := utf8.DecodeRuneInString(s.Value[s.offsets[i]:])
	return rt.Str(s.Value[s.offsets[i] : s.offsets[i]+size]), nil
}

func (s *PyStr) scanOffsets() {
	s.scanned = true
	for i := 0; i < len(s.Value); i++ {
		if s.Value[i] < utf8.RuneSelf {
			continue
		}
		s.offsets = make([]int, 0, len(s.Value))
		for offset := range s.Value {
			s.offsets = append(s.offsets, offset)
		}
		return
	}
}

func (s *PyStr) Iter(rt *Runtime) (*Handle, error) {
	var items []*Handle
	for _, r := range s.Value {
		items = append(items, rt.Str(string(r)))
	}
	return rt.Iterator(&PyIterator{
		mode:  iterSnapshot,
		items: items,
	}), nil
}

func (s *PyStr) NativeContains(rt *Runtime, item *Handle) (bool, error) {
	sub, ok := item.value.(*PyStr)
	if !ok {
		return false, typeErrorf("'in <string>' requires string as left operand, not %s", rt.TypeName(item))
	}
	return strings.Contains(s.Value, sub.Value), nil
}

func (s *PyStr) NativeHash(rt *Runtime) (uint64, error) {
	return strHash(s.Value), nil
}

func (s *PyStr) Str(rt *Runtime) (*Handle, error) {
	return s.Self(), nil
}

func (s *PyStr) NativeRepr(rt *Runtime) (string, error) {
	return quoteStr(s.Value), nil
}

func (s *PyStr) NativeBool(rt *Runtime) (bool, error) {
	return s.Value != "", nil
}

func (s *PyStr) Format(rt *Runtime, spec *Handle) (*Handle, error) {
	f, err := rt.strArg(spec, "format()")
	if err != nil {
		return nil, err
	}
	if f != "" {
		return nil, NewError(ValueError, "Unknown format code '%s' for object of type 'str'", f)
	}
	return s.Self(), nil
}

func (s *PyStr) Add(rt *Runtime, other *Handle) (*Handle, error) {
	o, ok := other.value.(*PyStr)
	if !ok {
		return nil, notImplemented(other, "__add__")
	}
	return rt.Str(s.Value + o.Value), nil
}

func (s *PyStr) Mul(rt *Runtime, other *Handle) (*Handle, error) {
	n, ok, err := rt.repeatCount(other, len(s.Value))
	if !ok {
		return nil, notImplemented(other, "__mul__")
	}
	if err != nil {
		return nil, err
	}
	switch n {
	case 0:
		return rt.emptyStr, nil
	case 1:
		return s.Self(), nil
	}
	return rt.Str(strings.Repeat(s.Value, n)), nil
}

func (s *PyStr) RMul(rt *Runtime, other *Handle) (*Handle, error) {
	return s.Mul(rt, other)
}

func (s *PyStr) strCompare(op CompareOperator, other *Handle) (bool, error) {
	o, ok := other.value.(*PyStr)
	if !ok {
		return false, notImplemented(other, compareAttrs[op])
	}
	return compareResult(op, strings.Compare(s.Value, o.Value)), nil
}

func (s *PyStr) NativeEq(rt *Runtime, other *Handle) (bool, error) {
	return s.strCompare(CmpEq, other)
}

func (s *PyStr) NativeNe(rt *Runtime, other *Handle) (bool, error) {
	return s.strCompare(CmpNe, other)
}

func (s *PyStr) NativeLt(rt *Runtime, other *Handle) (bool, error) {
	return s.strCompare(CmpLt, other)
}

func (s *PyStr) NativeLe(rt *Runtime, other *Handle) (bool, error) {
	return s.strCompare(CmpLe, other)
}

func (s *PyStr) NativeGt(rt *Runtime, other *Handle) (bool, error) {
	return s.strCompare(CmpGt, other)
}

func (s *PyStr) NativeGe(rt *Runtime, other *Handle) (bool, error) {
	return s.strCompare(CmpGe, other)
}

func (s *PyStr) Upper(rt *Runtime) (*Handle, error) {
	return rt.Str(strings.ToUpper(s.Value)), nil
}

func (s *PyStr) Lower(rt *Runtime) (*Handle, error) {
	return rt.Str(strings.ToLower(s.Value)), nil
}

func (s *PyStr) Strip(rt *Runtime, chars *Handle) (*Handle, error) {
	if !optionalArg(rt, chars) {
		return rt.Str(strings.TrimSpace(s.Value)), nil
	}
	cs, err := rt.strArg(chars, "strip")
	if err != nil {
		return nil, err
	}
	return rt.Str(strings.Trim(s.Value, cs)), nil
}

func (s *PyStr) Split(rt *Runtime, sep *Handle) (*Handle, error) {
	var parts []string
	if !optionalArg(rt, sep) {
		parts = strings.Fields(s.Value)
	} else {
		sp, err := rt.strArg(sep, "split")
		if err != nil {
			return nil, err
		}
		if sp == "" {
			return nil, NewError(ValueError, "empty separator")
		}
		parts = strings.Split(s.Value, sp)
	}
	elems := make([]*Handle, len(parts))
	for i, part := range parts {
		elems[i] = rt.Str(part)
	}
	return rt.List(elems), nil
}

func (s *PyStr) Join(rt *Runtime, items *Handle) (*Handle, error) {
	elems, err := rt.Collect(items)
	if err != nil {
		return nil, err
	}
	parts := make([]string, len(elems))
	for i, elem := range elems {
		str, ok := elem.value.(*PyStr)
		if !ok {
			return nil, typeErrorf("sequence item %d: expected str instance, %s found", i, rt.TypeName(elem))
		}
		parts[i] = str.Value
	}
	return rt.Str(strings.Join(parts, s.Value)), nil
}

func (s *PyStr) NativeStartsWith(rt *Runtime, prefix *Handle) (bool, error) {
	p, err := rt.strArg(prefix, "startswith")
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(s.Value, p), nil
}

func (s *PyStr) NativeEndsWith(rt *Runtime, suffix *Handle) (bool, error) {
	p, err := rt.strArg(suffix, "endswith")
	if err != nil {
		return false, err
	}
	return strings.HasSuffix(s.Value, p), nil
}

func (s *PyStr) Replace(rt *Runtime, old, repl *Handle) (*Handle, error) {
	o, err := rt.strArg(old, "replace")
	if err != nil {
		return nil, err
	}
	r, err := rt.strArg(repl, "replace")
	if err != nil {
		return nil, err
	}
	return rt.Str(strings.ReplaceAll(s.Value, o, r)), nil
}

func (s *PyStr) Find(rt *Runtime, sub *Handle) (*Handle, error) {
	p, err := rt.strArg(sub, "find")
	if err != nil {
		return nil, err
	}
	i := strings.Index(s.Value, p)
	if i < 0 {
		return rt.IntFromInt64(-1), nil
	}
	return rt.IntFromInt64(int64(utf8.RuneCountInString(s.Value[:i]))), nil
}

func (s *PyStr) Count(rt *Runtime, sub *Handle) (*Handle, error) {
	p, err := rt.strArg(sub, "count")
	if err != nil {
		return nil, err
	}
	return rt.IntFromInt64(int64(strings.Count(s.Value, p))), nil
}

// bytes

func (b *PyBytes) NativeLen(rt *Runtime) (int, error) {
	return len(b.Value), nil
}

func (b *PyBytes) GetItem(rt *Runtime, key *Handle) (*Handle, error) {
	i, err := rt.seqIndex("index", key, len(b.Value))
	if err != nil {
		return nil, err
	}
	return rt.IntFromInt64(int64(b.Value[i])), nil
}

func (b *PyBytes) Iter(rt *Runtime) (*Handle, error) {
	items := make([]*Handle, len(b.Value))
	for i, c := range b.Value {
		items[i] = rt.IntFromInt64(int64(c))
	}
	return rt.Iterator(&PyIterator{
		mode:  iterSnapshot,
		items: items,
	}), nil
}

func (b *PyBytes) NativeContains(rt *Runtime, item *Handle) (bool, error) {
	switch v := item.value.(type) {
	case *PyBytes:
		return bytes.Contains(b.Value, v.Value), nil
	case *PyInt, *PyBool:
		c, err := rt.AsIndex(item)
		if err != nil {
			return false, err
		}
		if c < 0 || c > 255 {
			return false, NewError(ValueError, "byte must be in range(0, 256)")
		}
		return bytes.IndexByte(b.Value, byte(c)) >= 0, nil
	}
	return false, typeErrorf("a bytes-like object is required, not '%s'", rt.TypeName(item))
}

func (b *PyBytes) NativeHash(rt *Runtime) (uint64, error) {
	return bytesHash(b.Value), nil
}

func (b *PyBytes) Bytes(rt *Runtime) (*Handle, error) {
	return b.Self(), nil
}

func (b *PyBytes) NativeRepr(rt *Runtime) (string, error) {
	return quoteBytes(b.Value), nil
}

func (b *PyBytes) NativeBool(rt *Runtime) (bool, error) {
	return len(b.Value) > 0, nil
}

func (b *PyBytes) Add(rt *Runtime, other *Handle) (*Handle, error) {
	o, ok := other.value.(*PyBytes)
	if !ok {
		return nil, notImplemented(other, "__add__")
	}
	return rt.Bytes(append(bytes.Clone(b.Value), o.Value...)), nil
}

func (b *PyBytes) Mul(rt *Runtime, other *Handle) (*Handle, error) {
	n, ok, err := rt.repeatCount(other, len(b.Value))
	if !ok {
		return nil, notImplemented(other, "__mul__")
	}
	if err != nil {
		return nil, err
	}
	switch n {
	case 0:
		return rt.emptyBytes, nil
	case 1:
		return b.Self(), nil
	}
	return rt.Bytes(bytes.Repeat(b.Value, n)), nil
}

func (b *PyBytes) RMul(rt *Runtime, other *Handle) (*Handle, error) {
	return b.Mul(rt, other)
}

func (b *PyBytes) bytesCompare(op CompareOperator, other *Handle) (bool, error) {
	o, ok := other.value.(*PyBytes)
	if !ok {
		return false, notImplemented(other, compareAttrs[op])
	}
	return compareResult(op, bytes.Compare(b.Value, o.Value)), nil
}

func (b *PyBytes) NativeEq(rt *Runtime, other *Handle) (bool, error) {
	return b.bytesCompare(CmpEq, other)
}

func (b *PyBytes) NativeNe(rt *Runtime, other *Handle) (bool, error) {
	return b.bytesCompare(CmpNe, other)
}

func (b *PyBytes) NativeLt(rt *Runtime, other *Handle) (bool, error) {
	return b.bytesCompare(CmpLt, other)
}

func (b *PyBytes) NativeLe(rt *Runtime, other *Handle) (bool, error) {
	return b.bytesCompare(CmpLe, other)
}

func (b *PyBytes) NativeGt(rt *Runtime, other *Handle) (bool, error) {
	return b.bytesCompare(CmpGt, other)
}

func (b *PyBytes) NativeGe(rt *Runtime, other *Handle) (bool, error) {
	return b.bytesCompare(CmpGe, other)
}
