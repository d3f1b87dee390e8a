package model

import (
	"fmt"
	"slices"

	"github.com/limaJavier/graphsat/pkg/graph"
	"github.com/limaJavier/graphsat/pkg/sat"
	"github.com/samber/lo"
)

type cliqueEncoder struct {
	maxClauses uint64 // 0 stands for no limit
}

// NewCliqueEncoder returns the encoder of "the graph holds a clique of the given size".
// The size-bound clauses grow as C(vertices, vertices-size+1): they are generated lazily, and encoding fails with
// ErrTooManyClauses if the instance would hold more than maxClauses clauses (0 disables the check)
func NewCliqueEncoder(maxClauses uint64) Encoder {
	return &cliqueEncoder{maxClauses: maxClauses}
}

func (encoder *cliqueEncoder) Name() string {
	return "CliqueNum"
}

func (encoder *cliqueEncoder) Encode(edges graph.EdgeList, size uint64) (sat.SAT, error) {
	if err := validateInput(edges, size); err != nil {
		return sat.SAT{}, err
	}

	if err := checkClauseLimit(CliqueClauseCount(edges, size), encoder.maxClauses); err != nil {
		return sat.SAT{}, err
	}

	vertices := edges.VertexCount()
	indexer := newIndexer(vertices, 1)
	state := constraintState{
		edges:     edges,
		adjacency: edges.AdjacencyMatrix(),
		indexer:   indexer,
		vertices:  vertices,
		target:    size,
	}

	// Order matters: non-edge exclusion, maximality closure and then size bound clauses
	constraints := []func(state constraintState) [][]int64{
		nonEdgeConstraints,
		maximalityConstraints,
	}

	satInstance := buildSat(indexer.Variables(), constraints, state)
	// Size bound clauses dominate the instance, they are generated while the instance is written or solved
	satInstance.Generated = sizeBoundConstraints(state)
	satInstance.GeneratedCount = SizeBoundClauseCount(vertices, size).Uint64()
	satInstance.Comments = encoder.Describe("", vertices, size)
	return satInstance, nil
}

func (encoder *cliqueEncoder) Describe(source string, vertices, size uint64) []string {
	comments := []string{"This is a DIMACS SAT-instances file to check the clique number", ""}
	if source != "" {
		comments = append(comments, fmt.Sprintf("The file Name                    : %v", source))
	}
	return append(comments,
		fmt.Sprintf("The number of vertices           : %v", vertices),
		"",
		fmt.Sprintf("The chosen number of clique size : %v", size),
		"",
	)
}

// Decode returns the sorted clique members
func (encoder *cliqueEncoder) Decode(solution sat.SATSolution, edges graph.EdgeList, size uint64) []uint64 {
	indexer := newIndexer(edges.VertexCount(), 1)

	members := lo.FilterMap(solution, func(variable int64, _ int) (uint64, bool) {
		if variable <= 0 || uint64(variable) > indexer.Variables() {
			return 0, false
		}
		vertex, _ := indexer.Attributes(uint64(variable))
		return vertex, true
	})
	members = lo.Uniq(members)
	slices.Sort(members)
	return members
}

// Verify checks that the members are distinct, pairwise adjacent and at least size many
func (encoder *cliqueEncoder) Verify(members []uint64, edges graph.EdgeList, size uint64) bool {
	if uint64(len(members)) < size || len(lo.Uniq(members)) != len(members) {
		return false
	}

	vertices := edges.VertexCount()
	if lo.SomeBy(members, func(member uint64) bool { return member >= vertices }) {
		return false
	}

	adjacency := edges.AdjacencyMatrix()
	for i := range len(members) {
		for j := i + 1; j < len(members); j++ {
			if !adjacency[members[i]][members[j]] {
				return false
			}
		}
	}
	return true
}
