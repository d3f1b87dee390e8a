package model

import (
	"errors"

	"github.com/limaJavier/graphsat/pkg/graph"
	"github.com/limaJavier/graphsat/pkg/sat"
)

var (
	ErrInvalidTarget  = errors.New("target must be a positive integer")
	ErrTooManyClauses = errors.New("instance exceeds the clause limit")
)

// Encoder reduces a graph decision problem ("does the graph admit target ...?") to a SAT instance
type Encoder interface {
	// Name identifies the problem in output file names, e.g. "ChromaticNum"
	Name() string

	// Returns the SAT instance that is satisfiable if and only if the graph has the property for target
	Encode(edges graph.EdgeList, target uint64) (sat.SAT, error)

	// Returns the DIMACS comment lines describing the instance built from the source graph file (source may be empty)
	Describe(source string, vertices, target uint64) []string

	// Extracts the witness (coloring or clique) from a satisfying assignment
	Decode(solution sat.SATSolution, edges graph.EdgeList, target uint64) []uint64

	// Checks whether the witness proves the property for target
	Verify(witness []uint64, edges graph.EdgeList, target uint64) bool
}
