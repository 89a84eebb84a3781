package dist

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// PmfItem is a quantity together with its probability mass.
type PmfItem[Q cmp.Ordered] struct {
	Quantity Q
	Mass     float64
}

// Pmf is a probability mass function mapping each distinct quantity to a mass.
//
// Masses are not required to sum to 1. Mutations never renormalize; call
// Normalize explicitly. Like Hist, a Pmf is not safe for concurrent mutation.
type Pmf[Q cmp.Ordered] struct {
	name string
	t    table[Q, float64]
}

// NewPmf creates an empty Pmf.
func NewPmf[Q cmp.Ordered](name string) *Pmf[Q] {
	return &Pmf[Q]{name: name, t: newTable[Q, float64]()}
}

// PmfFrom tallies values and normalizes, so the masses sum to 1.
func PmfFrom[Q cmp.Ordered](values []Q, name string) (*Pmf[Q], error) {
	return HistFrom(values, name).Pmf()
}

// PmfFromPairs builds a Pmf from parallel masses and quantities. Masses for a
// repeated quantity accumulate. The result is not normalized.
func PmfFromPairs[Q cmp.Ordered](masses []float64, quantities []Q, name string) (*Pmf[Q], error) {
	if len(masses) != len(quantities) {
		return nil, fmt.Errorf("%w: %d masses, %d quantities", ErrLengthMismatch, len(masses), len(quantities))
	}
	p := NewPmf[Q](name)
	for i, q := range quantities {
		p.Increment(q, masses[i])
	}
	return p, nil
}

// Name returns the label of the Pmf.
func (p *Pmf[Q]) Name() string {
	return p.name
}

// SetName changes the label of the Pmf.
func (p *Pmf[Q]) SetName(name string) {
	p.name = name
}

// Len returns the number of distinct quantities.
func (p *Pmf[Q]) Len() int {
	return p.t.len()
}

// Lookup returns the mass for q, or 0 if q is absent.
func (p *Pmf[Q]) Lookup(q Q) float64 {
	m, _ := p.t.get(q)
	return m
}

// LookupMany returns Lookup(q) for each q, aligned with qs.
func (p *Pmf[Q]) LookupMany(qs []Q) []float64 {
	ms := make([]float64, len(qs))
	for i, q := range qs {
		ms[i] = p.Lookup(q)
	}
	return ms
}

// Set assigns the mass for q, replacing any existing value.
func (p *Pmf[Q]) Set(q Q, mass float64) {
	p.t.put(q, mass)
}

// Increment adds delta to the mass for q, creating the entry if needed.
func (p *Pmf[Q]) Increment(q Q, delta float64) {
	m, _ := p.t.get(q)
	p.t.put(q, m+delta)
}

// Scale multiplies the mass for q by factor. An absent q stays absent.
func (p *Pmf[Q]) Scale(q Q, factor float64) {
	if i, ok := p.t.index[q]; ok {
		p.t.vals[i] *= factor
	}
}

// Multiply multiplies every mass by factor.
func (p *Pmf[Q]) Multiply(factor float64) {
	floats.Scale(factor, p.t.vals)
}

// Sum returns the total mass.
func (p *Pmf[Q]) Sum() float64 {
	return floats.Sum(p.t.vals)
}

// Normalize divides every mass by the total mass and returns that total.
// If the total is exactly zero it returns ErrZeroTotal, and if it is
// infinite or NaN it returns ErrNonFinite. Either way the masses are
// left untouched.
func (p *Pmf[Q]) Normalize() (float64, error) {
	total := p.Sum()
	if total == 0 {
		return 0, ErrZeroTotal
	}
	if math.IsInf(total, 0) || math.IsNaN(total) {
		return total, fmt.Errorf("%w: total %v", ErrNonFinite, total)
	}
	for i := range p.t.vals {
		p.t.vals[i] /= total
	}
	return total, nil
}

// Copy returns an independent deep copy.
func (p *Pmf[Q]) Copy() *Pmf[Q] {
	return &Pmf[Q]{name: p.name, t: p.t.clone()}
}

// Quantities returns the quantities in ascending order.
func (p *Pmf[Q]) Quantities() []Q {
	return slices.Clone(p.t.keys)
}

// Masses returns the masses aligned with Quantities.
func (p *Pmf[Q]) Masses() []float64 {
	return slices.Clone(p.t.vals)
}

// Items returns (quantity, mass) pairs in ascending quantity order.
func (p *Pmf[Q]) Items() []PmfItem[Q] {
	items := make([]PmfItem[Q], p.t.len())
	for i, q := range p.t.keys {
		items[i] = PmfItem[Q]{Quantity: q, Mass: p.t.vals[i]}
	}
	return items
}

// Mode returns the quantity with the largest mass, ties going to the
// smallest quantity.
func (p *Pmf[Q]) Mode() (Q, error) {
	return p.t.mode()
}

// Mean returns the sum of mass*quantity.
func (p *Pmf[Q]) Mean() (float64, error) {
	xs, err := toFloats(p.t.keys)
	if err != nil {
		return 0, err
	}
	return floats.Dot(p.t.vals, xs), nil
}

// Variance returns the sum of mass*(quantity-mean)^2.
// The result is only a variance if the Pmf is normalized.
func (p *Pmf[Q]) Variance() (float64, error) {
	xs, err := p.centered()
	if err != nil {
		return 0, err
	}
	return moment(p.t.vals, xs, 2), nil
}

// Std returns the square root of Variance.
func (p *Pmf[Q]) Std() (float64, error) {
	v, err := p.Variance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Skewness returns the third central moment divided by Std cubed.
// Returns ErrZeroVariance when every quantity with mass sits at the mean.
func (p *Pmf[Q]) Skewness() (float64, error) {
	xs, err := p.centered()
	if err != nil {
		return 0, err
	}
	std := math.Sqrt(moment(p.t.vals, xs, 2))
	if std == 0 {
		return 0, ErrZeroVariance
	}
	return moment(p.t.vals, xs, 3) / (std * std * std), nil
}

// centered returns the quantities shifted by the mean.
func (p *Pmf[Q]) centered() ([]float64, error) {
	xs, err := toFloats(p.t.keys)
	if err != nil {
		return nil, err
	}
	floats.AddConst(-floats.Dot(p.t.vals, xs), xs)
	return xs, nil
}

// moment returns sum(masses[i] * dev[i]^k) for small integer k.
func moment(masses, dev []float64, k int) float64 {
	pow := make([]float64, len(dev))
	copy(pow, dev)
	for j := 1; j < k; j++ {
		floats.Mul(pow, dev)
	}
	return floats.Dot(masses, pow)
}
