package model

import (
	"math/bits"
	"math/rand/v2"
	"testing"

	"github.com/limaJavier/graphsat/pkg/graph"
	"github.com/stretchr/testify/require"
)

func mustEdges(t *testing.T, pairs ...[2]uint64) graph.EdgeList {
	t.Helper()
	u, v := make([]uint64, 0, len(pairs)), make([]uint64, 0, len(pairs))
	for _, pair := range pairs {
		u = append(u, pair[0])
		v = append(v, pair[1])
	}
	edges, err := graph.NewEdgeList(u, v)
	require.NoError(t, err)
	return edges
}

// randomGraph returns a graph on exactly vertices vertices, the last two being always connected
func randomGraph(t *testing.T, vertices uint64, density float64) graph.EdgeList {
	pairs := [][2]uint64{{vertices - 2, vertices - 1}}
	for i := range vertices {
		for j := i + 1; j < vertices; j++ {
			if (i != vertices-2 || j != vertices-1) && rand.Float64() < density {
				pairs = append(pairs, [2]uint64{i, j})
			}
		}
	}
	return mustEdges(t, pairs...)
}

// bruteForceCliqueNumber enumerates every vertex subset
func bruteForceCliqueNumber(edges graph.EdgeList) uint64 {
	adjacency := edges.AdjacencyMatrix()
	vertices := len(adjacency)

	best := 0
	for mask := 1; mask < 1<<vertices; mask++ {
		clique := true
		for i := 0; i < vertices && clique; i++ {
			for j := i + 1; j < vertices && clique; j++ {
				if mask&(1<<i) != 0 && mask&(1<<j) != 0 && !adjacency[i][j] {
					clique = false
				}
			}
		}
		if clique {
			best = max(best, bits.OnesCount(uint(mask)))
		}
	}
	return uint64(best)
}

// bruteForceColorable tries every assignment of colors to vertices
func bruteForceColorable(edges graph.EdgeList, colors uint64) bool {
	vertices := edges.VertexCount()
	coloring := make([]uint64, vertices)

	var assign func(vertex uint64) bool
	assign = func(vertex uint64) bool {
		if vertex == vertices {
			for i := range edges.Len() {
				u, v := edges.Edge(i)
				if coloring[u] == coloring[v] {
					return false
				}
			}
			return true
		}
		for color := range colors {
			coloring[vertex] = color
			if assign(vertex + 1) {
				return true
			}
		}
		return false
	}
	return assign(0)
}

func randInt(n int) int {
	return rand.IntN(n)
}
