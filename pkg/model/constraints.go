package model

import (
	"iter"

	"github.com/limaJavier/graphsat/pkg/graph"
)

type constraintState struct {
	edges     graph.EdgeList
	adjacency [][]bool
	indexer   indexer

	vertices,
	target uint64
}

//** Chromatic number

// Every vertex has at least one color: x(i,0) v ... v x(i,k-1)
func coverageConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0, state.vertices)

	for vertex := range state.vertices {
		clause := make([]int64, 0, state.target)
		for color := range state.target {
			clause = append(clause, int64(state.indexer.Index(vertex, color)))
		}
		clauses = append(clauses, clause)
	}

	return clauses
}

// Every vertex has at most one color: -x(i,j) v -x(i,j') for j < j'
func uniquenessConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0, state.vertices*state.target*(state.target-1)/2)

	for vertex := range state.vertices {
		for color1 := range state.target {
			for color2 := color1 + 1; color2 < state.target; color2++ {
				index1 := state.indexer.Index(vertex, color1)
				index2 := state.indexer.Index(vertex, color2)
				clauses = append(clauses, []int64{-int64(index1), -int64(index2)})
			}
		}
	}

	return clauses
}

// Adjacent vertices do not share a color: -x(u,j) v -x(v,j)
func edgeConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0, uint64(state.edges.Len())*state.target)

	for i := range state.edges.Len() {
		u, v := state.edges.Edge(i)
		for color := range state.target {
			index1 := state.indexer.Index(u, color)
			index2 := state.indexer.Index(v, color)
			clauses = append(clauses, []int64{-int64(index1), -int64(index2)})
		}
	}

	return clauses
}

//** Clique number

// Two distinct members of a clique must be connected by an edge: -y(i) v -y(j) for every non-adjacent i < j
func nonEdgeConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0)

	for i := range state.vertices {
		for j := i + 1; j < state.vertices; j++ {
			if !state.adjacency[i][j] {
				index1 := state.indexer.Index(i, 0)
				index2 := state.indexer.Index(j, 0)
				clauses = append(clauses, []int64{-int64(index1), -int64(index2)})
			}
		}
	}

	return clauses
}

// A vertex connected to every member of a maximal clique is a member too: y(i) v y(j) for every j != i not adjacent to i
func maximalityConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0, state.vertices)

	for i := range state.vertices {
		clause := []int64{int64(state.indexer.Index(i, 0))}
		for j := range state.vertices {
			if i != j && !state.adjacency[i][j] {
				clause = append(clause, int64(state.indexer.Index(j, 0)))
			}
		}
		clauses = append(clauses, clause)
	}

	return clauses
}

// No (vertices - target + 1) vertices are excluded from the clique at once, i.e. it holds at least target members.
// A non-positive subset size leaves a single empty clause, which no assignment satisfies.
// Clauses are generated on demand through one reused buffer, so a single size bound clause is held at a time
func sizeBoundConstraints(state constraintState) iter.Seq[[]int64] {
	subsetSize := int64(state.vertices) - int64(state.target) + 1

	return func(yield func([]int64) bool) {
		if subsetSize <= 0 {
			yield([]int64{})
			return
		}

		clause := make([]int64, subsetSize)
		for combination := range combinations(state.vertices, uint64(subsetSize)) {
			// Combinations hold 1-based vertex ids, which match the clique membership variables
			for i, variable := range combination {
				clause[i] = int64(variable)
			}
			if !yield(clause) {
				return
			}
		}
	}
}
