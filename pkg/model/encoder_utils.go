package model

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/limaJavier/graphsat/pkg/graph"
	"github.com/limaJavier/graphsat/pkg/sat"
)

// buildSat runs every constraint function on its own goroutine and concatenates their clauses in the given order,
// so the instance is identical for identical inputs
func buildSat(variables uint64, constraints []func(state constraintState) [][]int64, state constraintState) sat.SAT {
	results := make([][][]int64, len(constraints))

	var wg sync.WaitGroup
	for i, constraint := range constraints {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = constraint(state)
		}()
	}
	wg.Wait()

	total := 0
	for _, clauses := range results {
		total += len(clauses)
	}

	satInstance := sat.SAT{
		Variables: variables,
		Clauses:   make([][]int64, 0, total),
	}
	for _, clauses := range results {
		satInstance.Clauses = append(satInstance.Clauses, clauses...)
	}
	return satInstance
}

func validateInput(edges graph.EdgeList, target uint64) error {
	if err := edges.Validate(); err != nil {
		return err
	} else if target == 0 {
		return ErrInvalidTarget
	}
	return nil
}

// checkClauseLimit fails when limit is set (non-zero) and the estimated clause count exceeds it.
// A count beyond uint64 always fails, no instance can declare it
func checkClauseLimit(estimate *big.Int, limit uint64) error {
	if !estimate.IsUint64() {
		return fmt.Errorf("%w: %v clauses estimated, more than a DIMACS header can declare", ErrTooManyClauses, estimate)
	} else if limit != 0 && estimate.Uint64() > limit {
		return fmt.Errorf("%w: %v clauses estimated, limit is %d", ErrTooManyClauses, estimate, limit)
	}
	return nil
}

// ChromaticClauseCount is the number of clauses of the k-coloring instance:
// vertices (coverage) + vertices*C(k,2) (uniqueness) + edges*k (edge)
func ChromaticClauseCount(vertices, edges, colors uint64) *big.Int {
	count := new(big.Int).SetUint64(vertices)
	count.Add(count, new(big.Int).Mul(new(big.Int).SetUint64(vertices), binomial(colors, 2)))
	count.Add(count, new(big.Int).Mul(new(big.Int).SetUint64(edges), new(big.Int).SetUint64(colors)))
	return count
}

// SizeBoundClauseCount is C(vertices, vertices-size+1), the number of size-bound clauses of the clique instance.
// This term dominates the instance unless vertices is small or size is close to vertices
func SizeBoundClauseCount(vertices, size uint64) *big.Int {
	subsetSize := int64(vertices) - int64(size) + 1
	if subsetSize <= 0 {
		return big.NewInt(1)
	}
	return binomial(vertices, uint64(subsetSize))
}

// CliqueClauseCount is the number of clauses of the clique instance:
// non-adjacent pairs + vertices (maximality) + size bound
func CliqueClauseCount(edges graph.EdgeList, size uint64) *big.Int {
	adjacency := edges.AdjacencyMatrix()
	vertices := edges.VertexCount()

	count := new(big.Int).SetUint64(nonAdjacentPairs(adjacency) + vertices)
	return count.Add(count, SizeBoundClauseCount(vertices, size))
}

func nonAdjacentPairs(adjacency [][]bool) uint64 {
	var pairs uint64
	for i := range adjacency {
		for j := i + 1; j < len(adjacency); j++ {
			if !adjacency[i][j] {
				pairs++
			}
		}
	}
	return pairs
}
