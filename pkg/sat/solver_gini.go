package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/samber/lo"
)

// giniSolver solves instances in-process, so it needs no external binary
type giniSolver struct{}

func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(sat SAT) (SATSolution, error) {
	g := gini.NewVc(int(min(sat.Variables, capacityHint)), int(min(sat.ClauseCount(), capacityHint)))
	var maxVariable int64
	for clause := range sat.AllClauses() {
		// An empty clause can never be satisfied
		if len(clause) == 0 {
			return nil, nil
		}
		for _, literal := range lo.Uniq(clause) {
			maxVariable = max(maxVariable, literal, -literal)
			g.Add(z.Dimacs2Lit(int(literal)))
		}
		g.Add(z.LitNull)
	}

	switch g.Solve() {
	case 1:
	case -1:
		return nil, nil
	default:
		return nil, fmt.Errorf("gini could not decide the instance")
	}

	solution := make(SATSolution, 0, sat.Variables)
	for variable := int64(1); variable <= int64(sat.Variables); variable++ {
		// Variables absent from every clause are unconstrained, report them as false
		if variable <= maxVariable && g.Value(z.Var(variable).Pos()) {
			solution = append(solution, variable)
		} else {
			solution = append(solution, -variable)
		}
	}
	return solution, nil
}
