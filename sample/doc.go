// Package sample holds survey variables as float64 samples and prepares them
// for tallying.
//
// # Cleaning
//
// Survey files encode missing answers with sentinel codes. Replace them with
// NaN, then drop them:
//
//	agepreg := sample.New(raw, "agepreg").Replace(97, 98, 99).DropNaN()
//
// Derived variables combine samples elementwise:
//
//	ounces := sample.New(oz, "birthwgt_oz").Scale(1.0 / 16)
//	total, err := sample.New(lb, "birthwgt_lb").Add(ounces)
//
// # Statistics
//
// Summary statistics return NaN for an empty sample:
//
//	mean := s.Mean()
//	std := s.Std()
//	median := s.Median()
//
// # Distributions
//
//	hist := s.Hist()
//	pmf, err := s.Pmf()
package sample
