package model

import (
	"iter"
	"math/big"
)

// combinations lazily yields every r-sized subset of {1, ..., n} in lexicographic order.
// The yielded slice is reused between iterations, callers must copy it to retain it.
// r = 0 yields a single empty combination and r > n yields nothing.
func combinations(n, r uint64) iter.Seq[[]uint64] {
	return func(yield func([]uint64) bool) {
		if r > n {
			return
		}

		combination := make([]uint64, r)
		for i := range combination {
			combination[i] = uint64(i) + 1
		}

		for {
			if !yield(combination) {
				return
			}

			// Find the rightmost position that has not reached its maximum value
			i := int(r) - 1
			for i >= 0 && combination[i] == n-r+uint64(i)+1 {
				i--
			}
			if i < 0 {
				return
			}

			combination[i]++
			for j := i + 1; j < int(r); j++ {
				combination[j] = combination[j-1] + 1
			}
		}
	}
}

func binomial(n, k uint64) *big.Int {
	return new(big.Int).Binomial(int64(n), int64(k))
}
