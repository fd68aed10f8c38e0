package psort

import (
	"fmt"
	"math/rand"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intLess(a, b int) bool { return a < b }

func randomInts(n int, seed int64) []int {
	rnd := rand.New(rand.NewSource(seed))
	s := make([]int, n)
	for i := range s {
		s[i] = rnd.Intn(n/2 + 1)
	}
	return s
}

func TestSortEdgeCases(t *testing.T) {
	for _, budget := range []int{0, 1, 2, 8} {
		var empty []int
		Sort(empty, intLess, budget)
		assert.Empty(t, empty)

		one := []int{42}
		Sort(one, intLess, budget)
		assert.Equal(t, []int{42}, one)
	}
}

func TestSortBudgets(t *testing.T) {
	for _, n := range []int{2, 3, 1023, 1024, 1025, 4096, 50000} {
		input := randomInts(n, int64(n))
		expected := append([]int(nil), input...)
		sort.Ints(expected)
		for _, budget := range []int{0, 1, 2, 3, 4, 16, DefaultBudget()} {
			s := append([]int(nil), input...)
			Sort(s, intLess, budget)
			require.Equal(t, expected, s, "n=%d budget=%d", n, budget)
		}
	}
}

func TestSortSmallThresholdForcesDeepRecursion(t *testing.T) {
	input := randomInts(3000, 7)
	expected := append([]int(nil), input...)
	sort.Ints(expected)
	for _, threshold := range []int{-1, 0, 1, 2, 5, 64} {
		s := append([]int(nil), input...)
		SortThreshold(s, intLess, 64, threshold)
		require.Equal(t, expected, s, "threshold=%d", threshold)
	}
}

type item struct {
	key, seq int
}

func TestMergeIsStable(t *testing.T) {
	// both halves sorted by key, equal keys across halves
	s := []item{{1, 0}, {2, 1}, {2, 2}, {3, 3}, {1, 4}, {2, 5}, {3, 6}}
	scratch := make([]item, len(s))
	merge(s, 4, scratch, func(a, b item) bool { return a.key < b.key })
	assert.Equal(t, []item{{1, 0}, {1, 4}, {2, 1}, {2, 2}, {2, 5}, {3, 3}, {3, 6}}, s)
	assert.Equal(t, make([]item, len(s)), scratch)
}

func TestSortDescending(t *testing.T) {
	var calls int64
	less := func(a, b int) bool {
		atomic.AddInt64(&calls, 1)
		return a > b
	}
	s := randomInts(20000, 3)
	SortThreshold(s, less, 8, 256)
	assert.True(t, sort.SliceIsSorted(s, func(i, j int) bool { return s[i] > s[j] }))
	assert.Positive(t, atomic.LoadInt64(&calls))
}

func TestDefaultBudget(t *testing.T) {
	assert.GreaterOrEqual(t, DefaultBudget(), 0)
}

func BenchmarkSort(b *testing.B) {
	input := randomInts(1<<18, 1)
	s := make([]int, len(input))
	for _, budget := range []int{0, DefaultBudget()} {
		b.Run(fmt.Sprintf("budget=%d", budget), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(s, input)
				Sort(s, intLess, budget)
			}
		})
	}
}
