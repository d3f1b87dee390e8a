package model

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(n, r uint64) [][]uint64 {
	result := make([][]uint64, 0)
	for combination := range combinations(n, r) {
		result = append(result, slices.Clone(combination))
	}
	return result
}

func TestCombinationsLexicographic(t *testing.T) {
	expected := [][]uint64{
		{1, 2}, {1, 3}, {1, 4},
		{2, 3}, {2, 4},
		{3, 4},
	}
	assert.Equal(t, expected, collect(4, 2))
}

func TestCombinationsEdgeCases(t *testing.T) {
	assert.Equal(t, [][]uint64{{}}, collect(3, 0))
	assert.Equal(t, [][]uint64{{1, 2, 3}}, collect(3, 3))
	assert.Empty(t, collect(3, 4))
	assert.Equal(t, [][]uint64{{1}, {2}, {3}}, collect(3, 1))
}

func TestCombinationsCount(t *testing.T) {
	for n := uint64(0); n <= 10; n++ {
		for r := uint64(0); r <= n+1; r++ {
			assert.Equal(t, binomial(n, r).Int64(), int64(len(collect(n, r))), "C(%d, %d)", n, r)
		}
	}
}

func TestCombinationsAreRestartableAndLazy(t *testing.T) {
	sequence := combinations(20, 10)

	// Stop early
	taken := 0
	for range sequence {
		taken++
		if taken == 3 {
			break
		}
	}
	assert.Equal(t, 3, taken)

	// Restart from the beginning
	for combination := range sequence {
		assert.Equal(t, []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, combination)
		break
	}
}
