// Package effect summarizes the difference between two groups.
//
// Cohen's d expresses a difference in means in units of standard deviation:
//
//	firsts := prglngth.Where(isFirst)
//	others := prglngth.Where(isOther)
//	d, err := effect.CohenEffectSize(firsts, others)
//
// Diffs compares two distributions quantity by quantity, in percentage
// points, which is what a side-by-side bar chart of two Pmfs shows:
//
//	for _, d := range effect.Diffs(firstPmf, otherPmf) {
//	    fmt.Printf("%d weeks: %+.2f\n", d.Quantity, d.Points)
//	}
package effect
