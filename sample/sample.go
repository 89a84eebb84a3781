// Package sample provides an in-memory numeric sample and the cleaning steps
// applied to survey variables before they are tallied.
package sample

import (
	"errors"
	"math"
	"slices"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/goexplore/dist"
)

// ErrLengthMismatch is returned when combining samples of different lengths.
var ErrLengthMismatch = errors.New("sample: samples must have the same length")

// Sample is a named sequence of observations. Missing values are NaN.
type Sample struct {
	Values []float64
	Name   string
}

// New creates a sample holding a copy of values.
func New(values []float64, name string) *Sample {
	return &Sample{
		Values: slices.Clone(values),
		Name:   name,
	}
}

// FromInts creates a sample from integer observations.
func FromInts(values []int, name string) *Sample {
	s := &Sample{Values: make([]float64, len(values)), Name: name}
	for i, v := range values {
		s.Values[i] = float64(v)
	}
	return s
}

// Len returns the number of observations, including NaN.
func (s *Sample) Len() int {
	return len(s.Values)
}

// Mean returns the arithmetic mean, or NaN for an empty sample.
func (s *Sample) Mean() float64 {
	return orNaN(stats.Mean(s.Values))
}

// Variance returns the sample variance (n-1 denominator).
func (s *Sample) Variance() float64 {
	return orNaN(stats.SampleVariance(s.Values))
}

// PopulationVariance returns the variance with an n denominator.
func (s *Sample) PopulationVariance() float64 {
	return orNaN(stats.PopulationVariance(s.Values))
}

// Std returns the sample standard deviation.
func (s *Sample) Std() float64 {
	return orNaN(stats.StandardDeviationSample(s.Values))
}

// Min returns the smallest value, or NaN for an empty sample.
func (s *Sample) Min() float64 {
	return orNaN(stats.Min(s.Values))
}

// Max returns the largest value, or NaN for an empty sample.
func (s *Sample) Max() float64 {
	return orNaN(stats.Max(s.Values))
}

// Median returns the median value.
func (s *Sample) Median() float64 {
	return orNaN(stats.Median(s.Values))
}

// Percentile returns the p-th percentile, 0 < p <= 100.
func (s *Sample) Percentile(p float64) float64 {
	return orNaN(stats.Percentile(s.Values, p))
}

// Copy creates a deep copy of the sample.
func (s *Sample) Copy() *Sample {
	return New(s.Values, s.Name)
}

// Slice returns observations from start to end (exclusive).
func (s *Sample) Slice(start, end int) *Sample {
	start = max(start, 0)
	end = min(end, len(s.Values))
	if start >= end {
		return &Sample{Values: []float64{}, Name: s.Name}
	}
	return New(s.Values[start:end], s.Name)
}

// Replace turns every occurrence of the given codes into NaN. Surveys use
// such codes for answers like "not ascertained" or "refused".
func (s *Sample) Replace(codes ...float64) *Sample {
	out := s.Copy()
	for i, v := range out.Values {
		if slices.Contains(codes, v) {
			out.Values[i] = math.NaN()
		}
	}
	return out
}

// DropNaN removes missing values.
func (s *Sample) DropNaN() *Sample {
	return s.Where(func(_ int, v float64) bool {
		return !math.IsNaN(v)
	})
}

// Where keeps the observations for which keep returns true.
func (s *Sample) Where(keep func(i int, v float64) bool) *Sample {
	out := &Sample{Values: []float64{}, Name: s.Name}
	for i, v := range s.Values {
		if keep(i, v) {
			out.Values = append(out.Values, v)
		}
	}
	return out
}

// Add returns the elementwise sum of two samples of equal length.
func (s *Sample) Add(other *Sample) (*Sample, error) {
	if len(s.Values) != len(other.Values) {
		return nil, ErrLengthMismatch
	}
	out := &Sample{Values: make([]float64, len(s.Values)), Name: s.Name}
	floats.AddTo(out.Values, s.Values, other.Values)
	return out, nil
}

// Scale multiplies every observation by k.
func (s *Sample) Scale(k float64) *Sample {
	out := &Sample{Values: make([]float64, len(s.Values)), Name: s.Name}
	floats.ScaleTo(out.Values, k, s.Values)
	return out
}

// Ints truncates each observation toward zero. Missing values are skipped.
func (s *Sample) Ints() []int {
	ints := make([]int, 0, len(s.Values))
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			ints = append(ints, int(v))
		}
	}
	return ints
}

// Hist tallies the non-missing observations.
func (s *Sample) Hist() *dist.Hist[float64] {
	return dist.HistFrom(s.DropNaN().Values, s.Name)
}

// Pmf returns the normalized distribution of the non-missing observations.
func (s *Sample) Pmf() (*dist.Pmf[float64], error) {
	return s.Hist().Pmf()
}

func orNaN(v float64, err error) float64 {
	if err != nil {
		return math.NaN()
	}
	return v
}
