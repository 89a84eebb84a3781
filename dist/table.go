package dist

import (
	"cmp"
	"maps"
	"slices"
)

type value interface {
	~int | ~float64
}

// table is an ordered map from quantity to value. Keys are kept sorted in
// parallel with vals; index maps each key to its position.
type table[Q cmp.Ordered, V value] struct {
	index map[Q]int
	keys  []Q
	vals  []V
}

func newTable[Q cmp.Ordered, V value]() table[Q, V] {
	return table[Q, V]{index: make(map[Q]int)}
}

func (t *table[Q, V]) len() int {
	return len(t.keys)
}

func (t *table[Q, V]) get(q Q) (V, bool) {
	i, ok := t.index[q]
	if !ok {
		var zero V
		return zero, false
	}
	return t.vals[i], true
}

// put sets the value for q, inserting q at its sorted position if absent.
func (t *table[Q, V]) put(q Q, v V) {
	if i, ok := t.index[q]; ok {
		t.vals[i] = v
		return
	}

	pos, _ := slices.BinarySearch(t.keys, q)
	t.keys = slices.Insert(t.keys, pos, q)
	t.vals = slices.Insert(t.vals, pos, v)

	// Every key at or after pos moved one slot to the right
	for i := pos; i < len(t.keys); i++ {
		t.index[t.keys[i]] = i
	}
}

func (t *table[Q, V]) clone() table[Q, V] {
	c := table[Q, V]{
		index: make(map[Q]int, len(t.index)),
		keys:  slices.Clone(t.keys),
		vals:  slices.Clone(t.vals),
	}
	maps.Copy(c.index, t.index)
	return c
}

// mode returns the key with the largest value. Keys are scanned in ascending
// order and only a strictly larger value replaces the best, so ties resolve
// to the smallest key.
func (t *table[Q, V]) mode() (Q, error) {
	if len(t.keys) == 0 {
		var zero Q
		return zero, ErrEmpty
	}
	best := 0
	for i := 1; i < len(t.vals); i++ {
		if t.vals[i] > t.vals[best] {
			best = i
		}
	}
	return t.keys[best], nil
}
