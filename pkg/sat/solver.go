package sat

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

var ErrUnknownSolver = errors.New("unknown SAT solver")

type SATSolver interface {
	Solve(SAT) (SATSolution, error) // Returns a solution of the SAT instance if satisfiable, else returns nil (these are valid outputs where error shall be nil)
}

var solvers = map[string]func(configPath string) SATSolver{
	"gini":          func(string) SATSolver { return NewGiniSolver() },
	"kissat":        NewKissatSolver,
	"cadical":       NewCadicalSolver,
	"cryptominisat": NewCryptominisatSolver,
	"minisat":       NewMinisatSolver,
	"glucosesimp":   NewGlucoseSimpSolver,
	"slime":         NewSlimeSolver,
	"ortoolsat":     NewOrtoolsatSolver,
}

// NewSolver returns the solver registered under name (case-insensitive).
// External solvers look their executable up in the solvers config at configPath (DefaultConfigPath if empty)
func NewSolver(name, configPath string) (SATSolver, error) {
	constructor, ok := solvers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q, allowed values are: %v", ErrUnknownSolver, name, SolverNames())
	}
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	return constructor(configPath), nil
}

func SolverNames() []string {
	names := lo.Keys(solvers)
	slices.Sort(names)
	return names
}
