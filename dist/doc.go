// Package dist provides empirical discrete distributions.
//
// A Hist counts how many times each distinct quantity was observed. A Pmf
// assigns each quantity a probability mass. Both keep their quantities in
// ascending order and answer lookups of unseen quantities with zero.
//
// # Building distributions
//
//	hist := dist.HistFrom([]int{1, 2, 2, 3, 5}, "sample")
//	hist.Lookup(2)  // 2
//	hist.Lookup(4)  // 0
//
//	pmf, _ := dist.PmfFrom([]int{1, 2, 2, 3, 5}, "sample")
//	pmf.Lookup(2)   // 0.4
//
// A Pmf can also be built from parallel masses and quantities. These are not
// normalized until Normalize is called:
//
//	pmf, _ := dist.PmfFromPairs([]float64{8, 8, 14}, []int{7, 12, 17}, "sizes")
//	total, err := pmf.Normalize()
//
// # Statistics
//
// Mean, Variance, Std and Skewness require numeric quantities and return
// ErrNonNumeric otherwise. Variance and Skewness assume a normalized Pmf.
//
// # The inspection paradox
//
// Bias reweights a Pmf by its quantities, modelling an observer who samples
// by membership:
//
//	biased, _ := dist.Bias(actual, "observed")
//	recovered, _ := dist.Unbias(biased, "actual")
//
// # Errors
//
// Hist.Increment refuses to take a count below zero (ErrNegativeCount).
// Normalizing a zero total returns ErrZeroTotal. Unbias refuses zero
// quantities (ErrZeroQuantity). All errors can be tested with errors.Is.
package dist
