package snekvm

type PyDict struct {
	selfRef
	table *table
}

func (*PyDict) Kind() Kind {
	return KindDict
}

type PySet struct {
	selfRef
	table *table
}

func (*PySet) Kind() Kind {
	return KindSet
}

func (d *PyDict) lookup(rt *Runtime, key *Handle) (*Handle, bool, error) {
	k, err := rt.dictKey(key)
	if err != nil {
		return nil, false, err
	}
	return d.table.get(rt, k)
}

func (d *PyDict) store(rt *Runtime, key, value *Handle) error {
	k, err := rt.dictKey(key)
	if err != nil {
		return err
	}
	return d.table.put(rt, k, value)
}

func (d *PyDict) remove(rt *Runtime, key *Handle) (*Handle, bool, error) {
	k, err := rt.dictKey(key)
	if err != nil {
		return nil, false, err
	}
	return d.table.del(rt, k)
}

// Entries returns the key and value slices in insertion order.
func (d *PyDict) Entries() (keys, values []*Handle) {
	return d.table.keys(), d.table.values()
}

func (rt *Runtime) keyError(key *Handle) error {
	s, err := rt.ReprOf(key)
	if err != nil {
		return err
	}
	return NewError(KeyError, "%s", s)
}

func (d *PyDict) NativeLen(rt *Runtime) (int, error) {
	return d.table.size, nil
}

func (d *PyDict) GetItem(rt *Runtime, key *Handle) (*Handle, error) {
	v, ok, err := d.lookup(rt, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, rt.keyError(key)
	}
	return v, nil
}

func (d *PyDict) SetItem(rt *Runtime, key, value *Handle) (*Handle, error) {
	if err := d.store(rt, key, value); err != nil {
		return nil, err
	}
	return rt.None(), nil
}

func (d *PyDict) DelItem(rt *Runtime, key *Handle) (*Handle, error) {
	_, ok, err := d.remove(rt, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, rt.keyError(key)
	}
	return rt.None(), nil
}

func (d *PyDict) NativeContains(rt *Runtime, key *Handle) (bool, error) {
	_, ok, err := d.lookup(rt, key)
	return ok, err
}

func (d *PyDict) Iter(rt *Runtime) (*Handle, error) {
	return rt.Iterator(&PyIterator{
		mode:  iterSnapshot,
		items: d.table.keys(),
	}), nil
}

func (d *PyDict) NativeHash(rt *Runtime) (uint64, error) {
	return 0, typeErrorf("unhashable type: 'dict'")
}

func (d *PyDict) NativeRepr(rt *Runtime) (string, error) {
	self := d.Self()
	if !rt.enterRepr(self) {
		return "{...}", nil
	}
	defer rt.leaveRepr(self)
	buf := []byte("{")
	var err error
	first := true
	d.table.each(func(key DictKey, value *Handle) bool {
		var k, v string
		if k, err = rt.ReprOf(key.Key); err != nil {
			return false
		}
		if v, err = rt.ReprOf(value); err != nil {
			return false
		}
		if !first {
			buf = append(buf, ", "...)
		}
		first = false
		buf = append(buf, k...)
		buf = append(buf, ": "...)
		buf = append(buf, v...)
		return true
	})
	if err != nil {
		return "", err
	}
	return string(append(buf, '}')), nil
}

func (d *PyDict) dictEqual(rt *Runtime, other *Handle) (bool, error) {
	o, ok := other.value.(*PyDict)
	if !ok {
		return false, notImplemented(other, "__eq__")
	}
	if d.table.size != o.table.size {
		return false, nil
	}
	eq := true
	var err error
	d.table.each(func(key DictKey, value *Handle) bool {
		var v *Handle
		var found bool
		v, found, err = o.table.get(rt, key)
		if err != nil || !found {
			eq = false
			return false
		}
		eq, err = rt.Equal(value, v)
		return err == nil && eq
	})
	return eq, err
}

func (d *PyDict) NativeEq(rt *Runtime, other *Handle) (bool, error) {
	return d.dictEqual(rt, other)
}

func (d *PyDict) NativeNe(rt *Runtime, other *Handle) (bool, error) {
	eq, err := d.dictEqual(rt, other)
	return !eq, err
}

func (d *PyDict) Get(rt *Runtime, key, fallback *Handle) (*Handle, error) {
	v, ok, err := d.lookup(rt, key)
	if err != nil {
		return nil, err
	}
	if ok {
		return v, nil
	}
	if fallback == nil {
		return rt.None(), nil
	}
	return fallback, nil
}

func (d *PyDict) Keys(rt *Runtime) (*Handle, error) {
	return rt.List(d.table.keys()), nil
}

func (d *PyDict) Values(rt *Runtime) (*Handle, error) {
	return rt.List(d.table.values()), nil
}

func (d *PyDict) Items(rt *Runtime) (*Handle, error) {
	items := make([]*Handle, 0, d.table.size)
	d.table.each(func(key DictKey, value *Handle) bool {
		items = append(items, rt.Tuple([]*Handle{key.Key, value}))
		return true
	})
	return rt.List(items), nil
}

func (d *PyDict) Pop(rt *Runtime, key *Handle) (*Handle, error) {
	if key == nil {
		return nil, typeErrorf("pop expected at least 1 argument, got 0")
	}
	v, ok, err := d.remove(rt, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, rt.keyError(key)
	}
	return v, nil
}

func (d *PyDict) PopItem(rt *Runtime) (*Handle, error) {
	i, ok := d.table.last()
	if !ok {
		return nil, NewError(KeyError, "'popitem(): dictionary is empty'")
	}
	entry := d.table.entries[i]
	d.table.removeAt(i)
	return rt.Tuple([]*Handle{entry.key.Key, entry.value}), nil
}

// Update merges a mapping or an iterable of pairs.
func (d *PyDict) Update(rt *Runtime, other *Handle) (*Handle, error) {
	if o, ok := other.value.(*PyDict); ok {
		var err error
		o.table.each(func(key DictKey, value *Handle) bool {
			err = d.table.put(rt, key, value)
			return err == nil
		})
		if err != nil {
			return nil, err
		}
		return rt.None(), nil
	}
	pairs, err := rt.Collect(other)
	if err != nil {
		return nil, err
	}
	for i, pair := range pairs {
		kv, err := rt.Collect(pair)
		if err != nil {
			return nil, typeErrorf("cannot convert dictionary update sequence element #%d to a sequence", i)
		}
		if len(kv) != 2 {
			return nil, NewError(ValueError, "dictionary update sequence element #%d has length %d; 2 is required", i, len(kv))
		}
		if err := d.store(rt, kv[0], kv[1]); err != nil {
			return nil, err
		}
	}
	return rt.None(), nil
}

func (d *PyDict) SetDefault(rt *Runtime, key, fallback *Handle) (*Handle, error) {
	v, ok, err := d.lookup(rt, key)
	if err != nil {
		return nil, err
	}
	if ok {
		return v, nil
	}
	if fallback == nil {
		fallback = rt.None()
	}
	if err := d.store(rt, key, fallback); err != nil {
		return nil, err
	}
	return fallback, nil
}

func (d *PyDict) Clear(rt *Runtime) (*Handle, error) {
	d.table.clear()
	return rt.None(), nil
}

func (d *PyDict) Copy(rt *Runtime) (*Handle, error) {
	return rt.wrap(&PyDict{
		table: d.table.copy(),
	}), nil
}

// set

func (s *PySet) add(rt *Runtime, item *Handle) error {
	k, err := rt.dictKey(item)
	if err != nil {
		return err
	}
	return s.table.put(rt, k, nil)
}

func (s *PySet) has(rt *Runtime, item *Handle) (bool, error) {
	k, err := rt.dictKey(item)
	if err != nil {
		return false, err
	}
	_, ok, err := s.table.get(rt, k)
	return ok, err
}

func (s *PySet) NativeLen(rt *Runtime) (int, error) {
	return s.table.size, nil
}

func (s *PySet) NativeContains(rt *Runtime, item *Handle) (bool, error) {
	return s.has(rt, item)
}

func (s *PySet) Iter(rt *Runtime) (*Handle, error) {
	return rt.Iterator(&PyIterator{
		mode:  iterSnapshot,
		items: s.table.keys(),
	}), nil
}

func (s *PySet) NativeHash(rt *Runtime) (uint64, error) {
	return 0, typeErrorf("unhashable type: 'set'")
}

func (s *PySet) NativeRepr(rt *Runtime) (string, error) {
	if s.table.size == 0 {
		return "set()", nil
	}
	self := s.Self()
	if !rt.enterRepr(self) {
		return "{...}", nil
	}
	defer rt.leaveRepr(self)
	str, err := rt.joinRepr(s.table.keys())
	if err != nil {
		return "", err
	}
	return "{" + str + "}", nil
}

func (s *PySet) SetAdd(rt *Runtime, item *Handle) (*Handle, error) {
	if err := s.add(rt, item); err != nil {
		return nil, err
	}
	return rt.None(), nil
}

func (s *PySet) Discard(rt *Runtime, item *Handle) (*Handle, error) {
	k, err := rt.dictKey(item)
	if err != nil {
		return nil, err
	}
	if _, _, err := s.table.del(rt, k); err != nil {
		return nil, err
	}
	return rt.None(), nil
}

func (s *PySet) Remove(rt *Runtime, item *Handle) (*Handle, error) {
	k, err := rt.dictKey(item)
	if err != nil {
		return nil, err
	}
	_, ok, err := s.table.del(rt, k)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, rt.keyError(item)
	}
	return rt.None(), nil
}

func (s *PySet) Pop(rt *Runtime, index *Handle) (*Handle, error) {
	if index != nil {
		return nil, typeErrorf("set.pop() takes no arguments (1 given)")
	}
	i, ok := s.table.last()
	if !ok {
		return nil, NewError(KeyError, "'pop from an empty set'")
	}
	item := s.table.entries[i].key.Key
	s.table.removeAt(i)
	return item, nil
}

func (s *PySet) Clear(rt *Runtime) (*Handle, error) {
	s.table.clear()
	return rt.None(), nil
}

func (s *PySet) Copy(rt *Runtime) (*Handle, error) {
	return rt.wrap(&PySet{
		table: s.table.copy(),
	}), nil
}

func (s *PySet) Update(rt *Runtime, other *Handle) (*Handle, error) {
	items, err := rt.Collect(other)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := s.add(rt, item); err != nil {
			return nil, err
		}
	}
	return rt.None(), nil
}

func (s *PySet) NativeIsDisjoint(rt *Runtime, other *Handle) (bool, error) {
	items, err := rt.Collect(other)
	if err != nil {
		return false, err
	}
	for _, item := range items {
		ok, err := s.has(rt, item)
		if err != nil || ok {
			return false, err
		}
	}
	return true, nil
}

func (s *PySet) subset(rt *Runtime, o *PySet) (bool, error) {
	var err error
	ret := true
	s.table.each(func(key DictKey, _ *Handle) bool {
		_, ret, err = o.table.get(rt, key)
		return err == nil && ret
	})
	return ret, err
}

func (s *PySet) setCompare(rt *Runtime, op CompareOperator, other *Handle) (bool, error) {
	o, ok := other.value.(*PySet)
	if !ok {
		return false, notImplemented(other, compareAttrs[op])
	}
	switch op {
	case CmpEq, CmpNe:
		eq := s.table.size == o.table.size
		if eq {
			var err error
			if eq, err = s.subset(rt, o); err != nil {
				return false, err
			}
		}
		return eq == (op == CmpEq), nil
	case CmpLe:
		return s.subset(rt, o)
	case CmpLt:
		if s.table.size >= o.table.size {
			return false, nil
		}
		return s.subset(rt, o)
	case CmpGe:
		return o.subset(rt, s)
	default:
		if s.table.size <= o.table.size {
			return false, nil
		}
		return o.subset(rt, s)
	}
}

func (s *PySet) NativeEq(rt *Runtime, other *Handle) (bool, error) {
	return s.setCompare(rt, CmpEq, other)
}

func (s *PySet) NativeNe(rt *Runtime, other *Handle) (bool, error) {
	return s.setCompare(rt, CmpNe, other)
}

func (s *PySet) NativeLt(rt *Runtime, other *Handle) (bool, error) {
	return s.setCompare(rt, CmpLt, other)
}

func (s *PySet) NativeLe(rt *Runtime, other *Handle) (bool, error) {
	return s.setCompare(rt, CmpLe, other)
}

func (s *PySet) NativeGt(rt *Runtime, other *Handle) (bool, error) {
	return s.setCompare(rt, CmpGt, other)
}

func (s *PySet) NativeGe(rt *Runtime, other *Handle) (bool, error) {
	return s.setCompare(rt, CmpGe, other)
}

// setAlgebra builds a new set from the members of s and o selected by keep.
func (s *PySet) setAlgebra(rt *Runtime, other *Handle, attr string, keep func(inS, inO bool) bool) (*Handle, error) {
	o, ok := other.value.(*PySet)
	if !ok {
		return nil, notImplemented(other, attr)
	}
	ret := &PySet{
		table: newTable(),
	}
	var err error
	visit := func(from, against *PySet, fromIsS bool) {
		from.table.each(func(key DictKey, _ *Handle) bool {
			var found bool
			if _, found, err = against.table.get(rt, key); err != nil {
				return false
			}
			inS, inO := fromIsS || found, !fromIsS || found
			if keep(inS, inO) {
				err = ret.table.put(rt, key, nil)
			}
			return err == nil
		})
	}
	visit(s, o, true)
	if err == nil {
		visit(o, s, false)
	}
	if err != nil {
		return nil, err
	}
	return rt.wrap(ret), nil
}

func (s *PySet) Or(rt *Runtime, other *Handle) (*Handle, error) {
	return s.setAlgebra(rt, other, "__or__", func(inS, inO bool) bool {
		return inS || inO
	})
}

func (s *PySet) And(rt *Runtime, other *Handle) (*Handle, error) {
	return s.setAlgebra(rt, other, "__and__", func(inS, inO bool) bool {
		return inS && inO
	})
}

func (s *PySet) Sub(rt *Runtime, other *Handle) (*Handle, error) {
	return s.setAlgebra(rt, other, "__sub__", func(inS, inO bool) bool {
		return inS && !inO
	})
}

func (s *PySet) Xor(rt *Runtime, other *Handle) (*Handle, error) {
	return s.setAlgebra(rt, other, "__xor__", func(inS, inO bool) bool {
		return inS != inO
	})
}
