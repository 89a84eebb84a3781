package dist

import (
	"cmp"
	"fmt"
)

// Bias returns a new Pmf in which each mass is multiplied by its quantity and
// the result renormalized. This models size-biased sampling: asking members
// of groups, rather than the groups themselves, over-represents large groups
// in proportion to their size.
//
// Quantities must be numeric and non-negative. The input is not modified.
func Bias[Q cmp.Ordered](pmf *Pmf[Q], name string) (*Pmf[Q], error) {
	return reweight(pmf, name, func(q Q, x, m float64) (float64, error) {
		if x < 0 {
			return 0, fmt.Errorf("%w: %v", ErrNegativeQuantity, q)
		}
		return m * x, nil
	})
}

// Unbias is the inverse of Bias: each mass is divided by its quantity and
// the result renormalized. A zero quantity yields ErrZeroQuantity and a
// negative one ErrNegativeQuantity, as in Bias.
func Unbias[Q cmp.Ordered](pmf *Pmf[Q], name string) (*Pmf[Q], error) {
	return reweight(pmf, name, func(q Q, x, m float64) (float64, error) {
		if x == 0 {
			return 0, fmt.Errorf("%w: %v", ErrZeroQuantity, q)
		}
		if x < 0 {
			return 0, fmt.Errorf("%w: %v", ErrNegativeQuantity, q)
		}
		return m / x, nil
	})
}

func reweight[Q cmp.Ordered](pmf *Pmf[Q], name string, weigh func(q Q, x, m float64) (float64, error)) (*Pmf[Q], error) {
	xs, err := toFloats(pmf.t.keys)
	if err != nil {
		return nil, err
	}

	out := pmf.Copy()
	out.name = name
	for i, q := range out.t.keys {
		m, err := weigh(q, xs[i], out.t.vals[i])
		if err != nil {
			return nil, err
		}
		out.t.vals[i] = m
	}

	if _, err := out.Normalize(); err != nil {
		return nil, fmt.Errorf("reweight %q: %w", pmf.name, err)
	}
	return out, nil
}
