package dist

import (
	"cmp"
	"fmt"
	"slices"
)

// HistItem is a quantity together with its count.
type HistItem[Q cmp.Ordered] struct {
	Quantity Q
	Count    int
}

// Hist is a frequency table mapping each distinct quantity to a count.
//
// A Hist is not safe for concurrent use. Concurrent readers are fine as long
// as nothing mutates it; use Copy to hand an independent Hist to another owner.
type Hist[Q cmp.Ordered] struct {
	name  string
	t     table[Q, int]
	total int
}

// NewHist creates an empty Hist.
func NewHist[Q cmp.Ordered](name string) *Hist[Q] {
	return &Hist[Q]{name: name, t: newTable[Q, int]()}
}

// HistFrom tallies the occurrences of each value.
// The resulting total equals len(values).
func HistFrom[Q cmp.Ordered](values []Q, name string) *Hist[Q] {
	h := NewHist[Q](name)
	for _, v := range values {
		c, _ := h.t.get(v)
		h.t.put(v, c+1)
	}
	h.total = len(values)
	return h
}

// Name returns the label of the Hist.
func (h *Hist[Q]) Name() string {
	return h.name
}

// SetName changes the label of the Hist.
func (h *Hist[Q]) SetName(name string) {
	h.name = name
}

// Len returns the number of distinct quantities.
func (h *Hist[Q]) Len() int {
	return h.t.len()
}

// Lookup returns the count for q, or 0 if q was never observed.
func (h *Hist[Q]) Lookup(q Q) int {
	c, _ := h.t.get(q)
	return c
}

// Increment adds amount to the count for q, creating the entry if needed.
// A zero amount never creates an entry. A negative amount is allowed as long
// as the count stays >= 0; otherwise ErrNegativeCount is returned and the
// Hist is not modified. A count decremented to zero keeps its quantity.
func (h *Hist[Q]) Increment(q Q, amount int) error {
	c, ok := h.t.get(q)
	if !ok && amount == 0 {
		return nil
	}
	if c+amount < 0 {
		return fmt.Errorf("%w: %v has count %d, increment %d", ErrNegativeCount, q, c, amount)
	}
	h.t.put(q, c+amount)
	h.total += amount
	return nil
}

// Multiply multiplies every count by factor. A negative factor is rejected
// with ErrNegativeCount.
func (h *Hist[Q]) Multiply(factor int) error {
	if factor < 0 {
		return fmt.Errorf("%w: factor %d", ErrNegativeCount, factor)
	}
	for i := range h.t.vals {
		h.t.vals[i] *= factor
	}
	h.total *= factor
	return nil
}

// Total returns the sum of all counts.
func (h *Hist[Q]) Total() int {
	return h.total
}

// Quantities returns the quantities in ascending order.
func (h *Hist[Q]) Quantities() []Q {
	return slices.Clone(h.t.keys)
}

// Counts returns the counts aligned with Quantities.
func (h *Hist[Q]) Counts() []int {
	return slices.Clone(h.t.vals)
}

// Items returns (quantity, count) pairs in ascending quantity order.
func (h *Hist[Q]) Items() []HistItem[Q] {
	items := make([]HistItem[Q], h.t.len())
	for i, q := range h.t.keys {
		items[i] = HistItem[Q]{Quantity: q, Count: h.t.vals[i]}
	}
	return items
}

// Mode returns the quantity with the largest count. Ties go to the smallest
// quantity. Returns ErrEmpty if the Hist has no quantities.
func (h *Hist[Q]) Mode() (Q, error) {
	return h.t.mode()
}

// Smallest returns the n smallest observed quantities and their counts,
// ascending. Quantities whose count is zero are skipped.
func (h *Hist[Q]) Smallest(n int) []HistItem[Q] {
	items := h.observed()
	return items[:clampN(n, len(items))]
}

// Largest returns the n largest observed quantities and their counts,
// descending. Quantities whose count is zero are skipped.
func (h *Hist[Q]) Largest(n int) []HistItem[Q] {
	items := h.observed()
	items = items[len(items)-clampN(n, len(items)):]
	slices.Reverse(items)
	return items
}

// observed returns the items with a positive count.
func (h *Hist[Q]) observed() []HistItem[Q] {
	return slices.DeleteFunc(h.Items(), func(it HistItem[Q]) bool {
		return it.Count == 0
	})
}

// Pmf returns a normalized Pmf with the same name, each count divided by Total.
func (h *Hist[Q]) Pmf() (*Pmf[Q], error) {
	if h.total == 0 {
		return nil, ErrZeroTotal
	}
	p := NewPmf[Q](h.name)
	p.t.keys = slices.Clone(h.t.keys)
	p.t.vals = make([]float64, len(h.t.vals))
	for i, c := range h.t.vals {
		p.t.index[h.t.keys[i]] = i
		p.t.vals[i] = float64(c) / float64(h.total)
	}
	return p, nil
}

// Copy returns an independent deep copy.
func (h *Hist[Q]) Copy() *Hist[Q] {
	return &Hist[Q]{name: h.name, t: h.t.clone(), total: h.total}
}

func clampN(n, size int) int {
	return max(0, min(n, size))
}
