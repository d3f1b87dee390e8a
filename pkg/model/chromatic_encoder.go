package model

import (
	"fmt"
	"math"

	"github.com/limaJavier/graphsat/pkg/graph"
	"github.com/limaJavier/graphsat/pkg/sat"
)

type chromaticEncoder struct {
	maxClauses uint64 // 0 stands for no limit
}

// NewChromaticEncoder returns the encoder of "the graph is properly colorable with k colors".
// Encoding fails with ErrTooManyClauses if the instance would hold more than maxClauses clauses (0 disables the check)
func NewChromaticEncoder(maxClauses uint64) Encoder {
	return &chromaticEncoder{maxClauses: maxClauses}
}

func (encoder *chromaticEncoder) Name() string {
	return "ChromaticNum"
}

func (encoder *chromaticEncoder) Encode(edges graph.EdgeList, colors uint64) (sat.SAT, error) {
	if err := validateInput(edges, colors); err != nil {
		return sat.SAT{}, err
	}

	vertices := edges.VertexCount()
	if err := checkClauseLimit(ChromaticClauseCount(vertices, uint64(edges.Len()), colors), encoder.maxClauses); err != nil {
		return sat.SAT{}, err
	}

	indexer := newIndexer(vertices, colors)
	state := constraintState{
		edges:    edges,
		indexer:  indexer,
		vertices: vertices,
		target:   colors,
	}

	// Order matters: coverage, uniqueness and then edge clauses
	constraints := []func(state constraintState) [][]int64{
		coverageConstraints,
		uniquenessConstraints,
		edgeConstraints,
	}

	satInstance := buildSat(indexer.Variables(), constraints, state)
	satInstance.Comments = encoder.Describe("", vertices, colors)
	return satInstance, nil
}

func (encoder *chromaticEncoder) Describe(source string, vertices, colors uint64) []string {
	comments := []string{"This is a DIMACS SAT-instances file to check the chromatic number", ""}
	if source != "" {
		comments = append(comments, fmt.Sprintf("The file Name               : %v", source))
	}
	return append(comments,
		fmt.Sprintf("The number of vertices      : %v", vertices),
		"",
		fmt.Sprintf("The chosen number of colour : %v", colors),
		"",
	)
}

// Decode returns the color of every vertex, math.MaxUint64 marks an uncolored vertex
func (encoder *chromaticEncoder) Decode(solution sat.SATSolution, edges graph.EdgeList, colors uint64) []uint64 {
	vertices := edges.VertexCount()
	indexer := newIndexer(vertices, colors)

	coloring := make([]uint64, vertices)
	for i := range coloring {
		coloring[i] = math.MaxUint64
	}

	for _, variable := range solution {
		// Acknowledge only positive variables that belong to the variable space
		if variable <= 0 || uint64(variable) > indexer.Variables() {
			continue
		}
		vertex, color := indexer.Attributes(uint64(variable))
		if coloring[vertex] == math.MaxUint64 {
			coloring[vertex] = color
		}
	}

	return coloring
}

// Verify checks that every vertex holds one of the colors and that no edge joins two vertices of the same color
func (encoder *chromaticEncoder) Verify(coloring []uint64, edges graph.EdgeList, colors uint64) bool {
	if uint64(len(coloring)) != edges.VertexCount() {
		return false
	}

	for _, color := range coloring {
		if color >= colors {
			return false
		}
	}

	for i := range edges.Len() {
		u, v := edges.Edge(i)
		if coloring[u] == coloring[v] {
			return false
		}
	}
	return true
}
