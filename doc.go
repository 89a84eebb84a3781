// Package goexplore provides empirical distributions for exploratory data analysis.
//
// GoExplore covers the first steps of exploring survey data: cleaning a
// variable, tallying it into a histogram, normalizing it into a probability
// mass function, and comparing groups. It follows the methodology from
// "Think Stats: Exploratory Data Analysis".
//
// # Features
//
//   - Frequency tables (Hist) and probability mass functions (Pmf)
//   - Mean, variance, standard deviation, mode and skewness of a Pmf
//   - Size-biased sampling and its inverse (the inspection paradox)
//   - Sentinel-code cleaning and summary statistics for raw samples
//   - Cohen's effect size and per-quantity Pmf differences
//
// # Quick Start
//
// Build a Pmf and look at what a student would report:
//
//	actual, _ := dist.PmfFromPairs(counts, sizes, "actual")
//	actual.Normalize()
//	observed, _ := dist.Bias(actual, "observed")
//	mean, _ := observed.Mean()
//
// Compare two groups:
//
//	d, _ := effect.CohenEffectSize(firsts, others)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - dist: Hist, Pmf, Bias and Unbias
//   - sample: raw samples, cleaning and summary statistics
//   - effect: effect sizes between two groups
//
// # References
//
//   - Downey, A. B. (2014). Think Stats: Exploratory Data Analysis, 2nd ed.
//   - Feld, S. L. (1991). Why your friends have more friends than you do.
package goexplore
