package snekvm

import (
	"math"
	"math/big"

	"github.com/zeebo/xxh3"
)

const hashModulus = 1<<61 - 1

var hashModulusBig = big.NewInt(hashModulus)

func intHash(v *big.Int) uint64 {
	var m uint64
	neg := v.Sign() < 0
	if v.IsInt64() {
		i := v.Int64()
		mag := uint64(i)
		if neg {
			mag = uint64(-i)
		}
		m = mag % hashModulus
	} else {
		r := new(big.Int).Abs(v)
		r.Mod(r, hashModulusBig)
		m = r.Uint64()
	}
	if neg {
		return uint64(-int64(m))
	}
	return m
}

func floatHash(f float64) uint64 {
	if !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) {
		if math.Abs(f) < 1<<63 {
			return intHash(big.NewInt(int64(f)))
		}
		i, _ := big.NewFloat(f).Int(nil)
		return intHash(i)
	}
	var buf [8]byte
	bits := math.Float64bits(f)
	for i := range buf {
		buf[i] = byte(bits >> (8 * i))
	}
	return xxh3.Hash(buf[:])
}

func complexHash(c complex128) uint64 {
	if imag(c) == 0 {
		return floatHash(real(c))
	}
	return floatHash(real(c)) + 1000003*floatHash(imag(c))
}

func strHash(s string) uint64 {
	return xxh3.HashString(s)
}

func bytesHash(b []byte) uint64 {
	return xxh3.Hash(b)
}

// DictKey pairs a key with the hash computed when it was inserted.
type DictKey struct {
	Hash uint64
	Key  *Handle
}

func (rt *Runtime) dictKey(key *Handle) (DictKey, error) {
	hash, err := rt.Hash(key)
	if err != nil {
		return DictKey{}, err
	}
	return DictKey{
		Hash: hash,
		Key:  key,
	}, nil
}

type tableEntry struct {
	key   DictKey
	value *Handle
	live  bool
}

// table is an insertion-ordered hash table backing dicts and sets.
type table struct {
	entries []tableEntry
	index   map[uint64][]int
	size    int
}

func newTable() *table {
	return &table{
		index: make(map[uint64][]int),
	}
}

func (t *table) find(rt *Runtime, key DictKey) (int, error) {
	for _, i := range t.index[key.Hash] {
		entry := t.entries[i]
		if entry.key.Key.Is(key.Key) {
			return i, nil
		}
		eq, err := rt.Equal(entry.key.Key, key.Key)
		if err != nil {
			return -1, err
		}
		if eq {
			return i, nil
		}
	}
	return -1, nil
}

func (t *table) get(rt *Runtime, key DictKey) (*Handle, bool, error) {
	i, err := t.find(rt, key)
	if err != nil || i < 0 {
		return nil, false, err
	}
	return t.entries[i].value, true, nil
}

func (t *table) put(rt *Runtime, key DictKey, value *Handle) error {
	i, err := t.find(rt, key)
	if err != nil {
		return err
	}
	if i >= 0 {
		t.entries[i].value = value
		return nil
	}
	t.index[key.Hash] = append(t.index[key.Hash], len(t.entries))
	t.entries = append(t.entries, tableEntry{
		key:   key,
		value: value,
		live:  true,
	})
	t.size++
	return nil
}

func (t *table) del(rt *Runtime, key DictKey) (*Handle, bool, error) {
	i, err := t.find(rt, key)
	if err != nil || i < 0 {
		return nil, false, err
	}
	value := t.entries[i].value
	t.removeAt(i)
	return value, true, nil
}

func (t *table) removeAt(i int) {
	hash := t.entries[i].key.Hash
	slots := t.index[hash]
	for j, slot := range slots {
		if slot == i {
			slots = append(slots[:j:j], slots[j+1:]...)
			break
		}
	}
	if len(slots) == 0 {
		delete(t.index, hash)
	} else {
		t.index[hash] = slots
	}
	t.entries[i] = tableEntry{}
	t.size--
	if len(t.entries) > 8 && t.size < len(t.entries)/2 {
		t.compact()
	}
}

func (t *table) compact() {
	entries := make([]tableEntry, 0, t.size)
	index := make(map[uint64][]int, len(t.index))
	for _, entry := range t.entries {
		if !entry.live {
			continue
		}
		index[entry.key.Hash] = append(index[entry.key.Hash], len(entries))
		entries = append(entries, entry)
	}
	t.entries = entries
	t.index = index
}

func (t *table) clear() {
	t.entries = nil
	t.index = make(map[uint64][]int)
	t.size = 0
}

func (t *table) copy() *table {
	ret := newTable()
	for _, entry := range t.entries {
		if !entry.live {
			continue
		}
		ret.index[entry.key.Hash] = append(ret.index[entry.key.Hash], len(ret.entries))
		ret.entries = append(ret.entries, entry)
	}
	ret.size = len(ret.entries)
	return ret
}

// each visits live entries in insertion order until fn returns false.
func (t *table) each(fn func(key DictKey, value *Handle) bool) {
	for _, entry := range t.entries {
		if entry.live && !fn(entry.key, entry.value) {
			return
		}
	}
}

func (t *table) keys() []*Handle {
	ret := make([]*Handle, 0, t.size)
	t.each(func(key DictKey, _ *Handle) bool {
		ret = append(ret, key.Key)
		return true
	})
	return ret
}

func (t *table) values() []*Handle {
	ret := make([]*Handle, 0, t.size)
	t.each(func(_ DictKey, value *Handle) bool {
		ret = append(ret, value)
		return true
	})
	return ret
}

// last returns the most recently inserted live entry.
func (t *table) last() (int, bool) {
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].live {
			return i, true
		}
	}
	return -1, false
}
