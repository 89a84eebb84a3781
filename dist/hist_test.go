package dist

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestHistFrom(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		counts map[int]int
	}{
		{"duplicates", []int{1, 2, 2, 3, 5}, map[int]int{1: 1, 2: 2, 3: 1, 5: 1}},
		{"singleton", []int{7}, map[int]int{7: 1}},
		{"all same", []int{4, 4, 4}, map[int]int{4: 3}},
		{"unsorted", []int{9, -1, 3, -1}, map[int]int{-1: 2, 3: 1, 9: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HistFrom(tt.values, tt.name)
			assert.Equal(t, len(tt.values), h.Total())
			assert.Equal(t, len(tt.counts), h.Len())
			for q, c := range tt.counts {
				assert.Equal(t, c, h.Lookup(q), "count for %d", q)
			}
			assert.Equal(t, tt.name, h.Name())
		})
	}
}

func TestHistTotalAndLookupRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	pois := distuv.Poisson{Lambda: 4, Src: r}

	for trial := 0; trial < 20; trial++ {
		n := 1 + r.IntN(200)
		values := make([]int, n)
		want := make(map[int]int)
		for i := range values {
			values[i] = int(pois.Rand())
			want[values[i]]++
		}

		h := HistFrom(values, "poisson")
		require.Equal(t, n, h.Total())
		for q := -1; q < 30; q++ {
			assert.Equal(t, want[q], h.Lookup(q))
		}
	}
}

func TestHistLookupAbsent(t *testing.T) {
	h := HistFrom([]string{"a", "b"}, "letters")
	assert.Equal(t, 0, h.Lookup("z"))
	assert.Equal(t, 2, h.Len())
}

func TestHistOrdering(t *testing.T) {
	h := HistFrom([]int{5, 1, 3, 1, 9, 3, 3}, "")

	assert.Equal(t, []int{1, 3, 5, 9}, h.Quantities())
	assert.Equal(t, []int{2, 3, 1, 1}, h.Counts())
	assert.Equal(t, []HistItem[int]{{1, 2}, {3, 3}, {5, 1}, {9, 1}}, h.Items())
}

func TestHistQuantitiesIsCopy(t *testing.T) {
	h := HistFrom([]int{1, 2}, "")
	qs := h.Quantities()
	qs[0] = 100
	assert.Equal(t, []int{1, 2}, h.Quantities())
}

func TestHistIncrement(t *testing.T) {
	h := NewHist[int]("counts")

	require.NoError(t, h.Increment(3, 1))
	require.NoError(t, h.Increment(3, 4))
	require.NoError(t, h.Increment(1, 2))
	assert.Equal(t, 5, h.Lookup(3))
	assert.Equal(t, 7, h.Total())
	assert.Equal(t, []int{1, 3}, h.Quantities())

	require.NoError(t, h.Increment(3, -5))
	assert.Equal(t, 0, h.Lookup(3))
	assert.Equal(t, 2, h.Total())
}

func TestHistIncrementBelowZero(t *testing.T) {
	h := HistFrom([]int{1, 1, 2}, "")

	err := h.Increment(1, -3)
	assert.ErrorIs(t, err, ErrNegativeCount)
	assert.Equal(t, 2, h.Lookup(1))
	assert.Equal(t, 3, h.Total())

	err = h.Increment(42, -1)
	assert.ErrorIs(t, err, ErrNegativeCount)
	assert.Equal(t, 2, h.Len(), "rejected increment must not create an entry")
}

func TestHistZeroCounts(t *testing.T) {
	h := HistFrom([]int{1, 5, 9}, "")

	require.NoError(t, h.Increment(0, 0))
	assert.Equal(t, []int{1, 5, 9}, h.Quantities(), "zero increment must not create an entry")

	require.NoError(t, h.Increment(1, -1))
	assert.Equal(t, 0, h.Lookup(1))
	assert.Equal(t, []int{1, 5, 9}, h.Quantities(), "decremented quantity keeps its entry")

	assert.Equal(t, []HistItem[int]{{5, 1}, {9, 1}}, h.Smallest(2))
	assert.Equal(t, []HistItem[int]{{9, 1}, {5, 1}}, h.Largest(5))

	require.NoError(t, h.Multiply(0))
	assert.Empty(t, h.Smallest(3))
	assert.Empty(t, h.Largest(3))
}

func TestHistMultiply(t *testing.T) {
	h := HistFrom([]int{1, 2, 2}, "")

	require.NoError(t, h.Multiply(3))
	assert.Equal(t, 3, h.Lookup(1))
	assert.Equal(t, 6, h.Lookup(2))
	assert.Equal(t, 9, h.Total())

	assert.ErrorIs(t, h.Multiply(-1), ErrNegativeCount)
	assert.Equal(t, 9, h.Total())
}

func TestHistMode(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   int
	}{
		{"unique max", []int{1, 2, 2, 3, 5}, 2},
		{"tie picks smallest", []int{7, 7, 3, 3, 5}, 3},
		{"all distinct", []int{9, 4, 6}, 4},
		{"single", []int{42}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := HistFrom(tt.values, "").Mode()
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}

func TestHistModeEmpty(t *testing.T) {
	_, err := NewHist[float64]("").Mode()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestHistSmallestLargest(t *testing.T) {
	// Pregnancy lengths in weeks with a few outliers at each end
	h := HistFrom([]int{0, 4, 9, 39, 39, 39, 40, 40, 41, 43, 44, 48, 50}, "prglngth")

	assert.Equal(t, []HistItem[int]{{0, 1}, {4, 1}, {9, 1}}, h.Smallest(3))
	assert.Equal(t, []HistItem[int]{{50, 1}, {48, 1}, {44, 1}}, h.Largest(3))

	assert.Len(t, h.Smallest(100), h.Len())
	assert.Len(t, h.Largest(100), h.Len())
	assert.Empty(t, h.Smallest(0))
	assert.Empty(t, h.Largest(-2))

	largest := h.Largest(h.Len())
	assert.Equal(t, 50, largest[0].Quantity)
	assert.Equal(t, 0, largest[len(largest)-1].Quantity)
}

func TestHistCopy(t *testing.T) {
	h := HistFrom([]int{1, 2, 2}, "orig")
	c := h.Copy()

	require.NoError(t, c.Increment(2, 5))
	require.NoError(t, c.Increment(8, 1))
	c.SetName("copy")

	assert.Equal(t, 2, h.Lookup(2))
	assert.Equal(t, 0, h.Lookup(8))
	assert.Equal(t, 3, h.Total())
	assert.Equal(t, "orig", h.Name())
	assert.Equal(t, 7, c.Lookup(2))
}

func TestHistPmf(t *testing.T) {
	values := []int{1, 2, 2, 3, 5}
	pmf, err := HistFrom(values, "h").Pmf()
	require.NoError(t, err)

	direct, err := PmfFrom(values, "h")
	require.NoError(t, err)

	assert.Equal(t, direct.Items(), pmf.Items())
	assert.Equal(t, "h", pmf.Name())

	// The Pmf does not share storage with the Hist
	pmf.Set(2, 1)
	assert.InDelta(t, 0.4, direct.Lookup(2), 1e-12)
}

func TestHistPmfZeroTotal(t *testing.T) {
	_, err := NewHist[int]("").Pmf()
	assert.ErrorIs(t, err, ErrZeroTotal)

	h := HistFrom([]int{1, 2}, "")
	require.NoError(t, h.Multiply(0))
	_, err = h.Pmf()
	assert.ErrorIs(t, err, ErrZeroTotal)
}

func TestHistAndPmfModeAgree(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))

	for trial := 0; trial < 50; trial++ {
		values := make([]int, 1+r.IntN(40))
		for i := range values {
			values[i] = r.IntN(6)
		}

		h := HistFrom(values, "")
		pmf, err := h.Pmf()
		require.NoError(t, err)

		hm, err := h.Mode()
		require.NoError(t, err)
		pm, err := pmf.Mode()
		require.NoError(t, err)
		assert.Equal(t, hm, pm, "values %v", values)
	}
}
