package model

import (
	"fmt"

	"github.com/limaJavier/graphsat/pkg/graph"
	"github.com/limaJavier/graphsat/pkg/sat"
)

type Decider interface {
	// Returns the witness proving the property for target, or a nil witness (and nil error) if there is none
	Decide(
		edges graph.EdgeList,
		target uint64,
	) (witness []uint64, variables uint64, clauses uint64, err error)

	Verify(
		witness []uint64,
		edges graph.EdgeList,
		target uint64,
	) bool
}

type satDecider struct {
	encoder Encoder
	solver  sat.SATSolver
}

func NewDecider(encoder Encoder, solver sat.SATSolver) Decider {
	return &satDecider{
		encoder: encoder,
		solver:  solver,
	}
}

func (decider *satDecider) Decide(edges graph.EdgeList, target uint64) ([]uint64, uint64, uint64, error) {
	//** Build SAT instance
	satInstance, err := decider.encoder.Encode(edges, target)
	if err != nil {
		return nil, 0, 0, err
	}
	variables, clauses := satInstance.Variables, satInstance.ClauseCount()

	//** Solve SAT instance
	solution, err := decider.solver.Solve(satInstance)
	if err != nil {
		return nil, variables, clauses, err
	} else if solution == nil { // Return nil if the SAT instance is not satisfiable
		return nil, variables, clauses, nil
	}

	if !sat.Satisfies(satInstance, solution) {
		return nil, variables, clauses, fmt.Errorf("solver returned an assignment that does not satisfy the %v instance", decider.encoder.Name())
	}

	return decider.encoder.Decode(solution, edges, target), variables, clauses, nil
}

func (decider *satDecider) Verify(witness []uint64, edges graph.EdgeList, target uint64) bool {
	return decider.encoder.Verify(witness, edges, target)
}
