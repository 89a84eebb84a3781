// Package effect measures how far apart two groups are.
package effect

import (
	"cmp"
	"errors"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/goexplore/dist"
	"github.com/sartorproj/goexplore/sample"
)

var (
	// ErrEmptyGroup is returned when either group has no observations.
	ErrEmptyGroup = errors.New("effect: group has no observations")

	// ErrZeroPooledVariance is returned when both groups are constant.
	ErrZeroPooledVariance = errors.New("effect: pooled variance is zero")

	// ErrMissingValue is returned when a group still holds NaN observations.
	ErrMissingValue = errors.New("effect: group has missing values, drop NaN first")
)

// CohenEffectSize returns Cohen's d: the difference in means divided by the
// pooled standard deviation. Each group's population variance is weighted by
// its size. Groups containing NaN are rejected with ErrMissingValue; use
// sample.DropNaN beforehand.
func CohenEffectSize(group1, group2 *sample.Sample) (float64, error) {
	n1, n2 := float64(group1.Len()), float64(group2.Len())
	if n1 == 0 || n2 == 0 {
		return 0, ErrEmptyGroup
	}
	if floats.HasNaN(group1.Values) || floats.HasNaN(group2.Values) {
		return 0, ErrMissingValue
	}

	mean1, err := stats.Mean(group1.Values)
	if err != nil {
		return 0, err
	}
	mean2, err := stats.Mean(group2.Values)
	if err != nil {
		return 0, err
	}
	var1, err := stats.PopulationVariance(group1.Values)
	if err != nil {
		return 0, err
	}
	var2, err := stats.PopulationVariance(group2.Values)
	if err != nil {
		return 0, err
	}

	pooled := (n1*var1 + n2*var2) / (n1 + n2)
	if pooled == 0 {
		return 0, ErrZeroPooledVariance
	}
	return (mean1 - mean2) / math.Sqrt(pooled), nil
}

// Diff is the difference in mass at one quantity, in percentage points.
type Diff[Q cmp.Ordered] struct {
	Quantity Q
	Points   float64
}

// Diffs compares two Pmfs quantity by quantity over the union of their
// quantities, in ascending order. Points is 100*(p1-p2); a quantity missing
// from one side counts as zero mass there.
func Diffs[Q cmp.Ordered](p1, p2 *dist.Pmf[Q]) []Diff[Q] {
	qs := mergeSorted(p1.Quantities(), p2.Quantities())

	diffs := make([]Diff[Q], len(qs))
	m1, m2 := p1.LookupMany(qs), p2.LookupMany(qs)
	for i, q := range qs {
		diffs[i] = Diff[Q]{Quantity: q, Points: 100 * (m1[i] - m2[i])}
	}
	return diffs
}

// mergeSorted returns the sorted union of two ascending, duplicate-free slices.
func mergeSorted[Q cmp.Ordered](a, b []Q) []Q {
	out := make([]Q, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := cmp.Compare(a[i], b[j]); {
		case c < 0:
			out = append(out, a[i])
			i++
		case c > 0:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}
