// Package main walks through the class-size paradox and a first-babies
// effect-size comparison, then exports the distributions for plotting.
package main

import (
	"encoding/json"
	"math"
	"math/rand/v2"
	"os"

	"github.com/op/go-logging"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/goexplore/dist"
	"github.com/sartorproj/goexplore/effect"
	"github.com/sartorproj/goexplore/sample"
)

var log = logging.MustGetLogger("demo")

// ClassSizes defines a reported distribution of class sizes
type ClassSizes struct {
	Name   string
	Counts []float64 // Number of classes in each range
	Sizes  []int     // Midpoint of each range
}

// Cohort defines a synthetic group of pregnancies
type Cohort struct {
	Name    string
	N       int
	Mean    float64 // Pregnancy length in weeks
	Sigma   float64
	Missing float64 // Fraction coded as "not ascertained"
}

// PmfResult is a distribution in plotting order
type PmfResult struct {
	Name       string    `json:"name"`
	Quantities []float64 `json:"quantities"`
	Masses     []float64 `json:"masses"`
	Mean       float64   `json:"mean"`
	Std        float64   `json:"std"`
}

// ParadoxResult holds the class-size analysis
type ParadoxResult struct {
	Name      string    `json:"name"`
	Actual    PmfResult `json:"actual"`
	Observed  PmfResult `json:"observed"`
	Recovered PmfResult `json:"recovered"`
}

// DiffResult is one bar of a two-group difference chart
type DiffResult struct {
	Weeks  int     `json:"weeks"`
	Points float64 `json:"points"`
}

// EffectResult holds the first-vs-others comparison
type EffectResult struct {
	Groups   []PmfResult  `json:"groups"`
	Diffs    []DiffResult `json:"diffs"`
	CohenD   float64      `json:"cohen_d"`
	Smallest []int        `json:"smallest"`
	Largest  []int        `json:"largest"`
}

// OutputData holds all results for visualization
type OutputData struct {
	Paradoxes []ParadoxResult `json:"paradoxes"`
	Effect    *EffectResult   `json:"effect,omitempty"`
}

const notAscertained = 99

func main() {
	setupLogging()
	log.Notice("goexplore demonstration: inspection paradox and effect size")

	classSizes := []ClassSizes{
		{
			Name:   "College class sizes",
			Counts: []float64{8, 8, 14, 4, 6, 12, 8, 3, 2},
			Sizes:  []int{7, 12, 17, 22, 27, 32, 37, 42, 47},
		},
		{
			Name:   "Uniform small seminars",
			Counts: []float64{5, 5, 5, 5},
			Sizes:  []int{4, 8, 12, 16},
		},
	}
	cohorts := []Cohort{
		{Name: "firsts", N: 4413, Mean: 38.60, Sigma: 2.79, Missing: 0.01},
		{Name: "others", N: 4735, Mean: 38.52, Sigma: 2.62, Missing: 0.01},
	}

	output := OutputData{Paradoxes: []ParadoxResult{}}

	for i, cs := range classSizes {
		log.Infof("[%d/%d] %s", i+1, len(classSizes), cs.Name)
		result, err := analyzeParadox(cs)
		if err != nil {
			log.Errorf("analyzeParadox %q: %v", cs.Name, err)
			continue
		}
		output.Paradoxes = append(output.Paradoxes, *result)
	}

	rng := rand.New(rand.NewPCG(17, 2013))
	result, err := analyzeEffect(cohorts, rng)
	if err != nil {
		log.Errorf("analyzeEffect: %v", err)
	} else {
		output.Effect = result
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		log.Errorf("marshal results: %v", err)
		os.Exit(1)
	}
	if err := os.WriteFile("distribution_results.json", data, 0644); err != nil {
		log.Errorf("write results: %v", err)
		os.Exit(1)
	}
	log.Noticef("exported %d paradox analyses to distribution_results.json", len(output.Paradoxes))
}

func setupLogging() {
	format := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{message}`)
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), format)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}

// analyzeParadox compares the distribution the college reports with the one
// students experience
func analyzeParadox(cs ClassSizes) (*ParadoxResult, error) {
	actual, err := dist.PmfFromPairs(cs.Counts, cs.Sizes, "actual")
	if err != nil {
		return nil, err
	}
	if _, err := actual.Normalize(); err != nil {
		return nil, err
	}

	observed, err := dist.Bias(actual, "observed")
	if err != nil {
		return nil, err
	}
	recovered, err := dist.Unbias(observed, "recovered")
	if err != nil {
		return nil, err
	}

	result := &ParadoxResult{Name: cs.Name}
	for _, p := range []struct {
		pmf *dist.Pmf[int]
		out *PmfResult
	}{
		{actual, &result.Actual},
		{observed, &result.Observed},
		{recovered, &result.Recovered},
	} {
		r, err := summarize(p.pmf)
		if err != nil {
			return nil, err
		}
		*p.out = r
	}

	log.Infof("   actual mean %.2f, observed mean %.2f, recovered mean %.2f",
		result.Actual.Mean, result.Observed.Mean, result.Recovered.Mean)
	return result, nil
}

// analyzeEffect draws pregnancy lengths for each cohort, cleans them and
// compares the first two
func analyzeEffect(cohorts []Cohort, rng *rand.Rand) (*EffectResult, error) {
	samples := make([]*sample.Sample, len(cohorts))
	for i, c := range cohorts {
		raw := draw(c, rng)
		samples[i] = raw.Replace(notAscertained).DropNaN()
		log.Infof("   %s: %d drawn, %d after cleaning, mean %.2f weeks",
			c.Name, raw.Len(), samples[i].Len(), samples[i].Mean())
	}

	d, err := effect.CohenEffectSize(samples[0], samples[1])
	if err != nil {
		return nil, err
	}
	log.Infof("   Cohen's d %s vs %s: %.4f", cohorts[0].Name, cohorts[1].Name, d)

	pmfs := make([]*dist.Pmf[int], len(samples))
	result := &EffectResult{CohenD: d}
	for i, s := range samples {
		hist := dist.HistFrom(s.Ints(), s.Name)
		if i == 0 {
			for _, item := range hist.Smallest(5) {
				result.Smallest = append(result.Smallest, item.Quantity)
			}
			for _, item := range hist.Largest(5) {
				result.Largest = append(result.Largest, item.Quantity)
			}
		}

		pmf, err := hist.Pmf()
		if err != nil {
			return nil, err
		}
		pmfs[i] = pmf

		r, err := summarize(pmf)
		if err != nil {
			return nil, err
		}
		result.Groups = append(result.Groups, r)
	}

	for _, diff := range effect.Diffs(pmfs[0], pmfs[1]) {
		if diff.Quantity < 35 || diff.Quantity > 45 {
			continue
		}
		result.Diffs = append(result.Diffs, DiffResult{Weeks: diff.Quantity, Points: diff.Points})
	}
	return result, nil
}

// draw samples a cohort, coding a fraction of answers as not ascertained
func draw(c Cohort, rng *rand.Rand) *sample.Sample {
	normal := distuv.Normal{Mu: c.Mean, Sigma: c.Sigma, Src: rng}
	values := make([]float64, c.N)
	for i := range values {
		if rng.Float64() < c.Missing {
			values[i] = notAscertained
			continue
		}
		values[i] = math.Max(0, math.Round(normal.Rand()))
	}
	return sample.New(values, c.Name)
}

func summarize(pmf *dist.Pmf[int]) (PmfResult, error) {
	mean, err := pmf.Mean()
	if err != nil {
		return PmfResult{}, err
	}
	std, err := pmf.Std()
	if err != nil {
		return PmfResult{}, err
	}

	qs := pmf.Quantities()
	xs := make([]float64, len(qs))
	for i, q := range qs {
		xs[i] = float64(q)
	}
	return PmfResult{
		Name:       pmf.Name(),
		Quantities: xs,
		Masses:     pmf.Masses(),
		Mean:       mean,
		Std:        std,
	}, nil
}
