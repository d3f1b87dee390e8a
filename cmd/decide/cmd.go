package decide

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/limaJavier/graphsat/cmd/solvers"
	"github.com/limaJavier/graphsat/pkg/graph"
	"github.com/limaJavier/graphsat/pkg/model"
)

func NewDecideCommand() *cobra.Command {
	var (
		graphFile  string
		problem    string
		solverName string
		maxClauses uint64
	)

	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Finds the chromatic or clique number of a graph by solving its SAT instances",
		Long: `Finds the chromatic number (smallest k the graph is k-colorable with) or the clique number
(largest size of a clique) by deciding one SAT instance per candidate target.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := graph.EdgeListFromFile(graphFile)
			if err != nil {
				return err
			}
			solver, err := solvers.New(cmd, solverName)
			if err != nil {
				return err
			}

			var (
				number  uint64
				witness []uint64
			)
			switch strings.ToLower(problem) {
			case "chromatic":
				number, witness, err = ChromaticNumber(model.NewDecider(model.NewChromaticEncoder(maxClauses), solver), edges)
			case "clique":
				number, witness, err = CliqueNumber(model.NewDecider(model.NewCliqueEncoder(maxClauses), solver), edges)
			default:
				return fmt.Errorf("%v is not a valid problem, allowed values are: chromatic, clique", problem)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%v number: %d\nwitness: %v\n", problem, number, witness)
			return nil
		},
	}
	cmd.Flags().StringVarP(&graphFile, "graph", "g", "", "Path to the edge list file")
	cmd.Flags().StringVarP(&problem, "problem", "p", "chromatic", "Number to find: \"chromatic\" or \"clique\"")
	cmd.Flags().StringVar(&solverName, "solver", "gini", "SAT solver, "+solvers.Usage())
	cmd.Flags().Uint64Var(&maxClauses, "max-clauses", 0, "Refuse to encode instances with more clauses than this (0 disables the check)")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

// ChromaticNumber returns the smallest k the graph is k-colorable with, along with the coloring
func ChromaticNumber(decider model.Decider, edges graph.EdgeList) (uint64, []uint64, error) {
	for colors := uint64(1); colors <= edges.VertexCount(); colors++ {
		coloring, variables, clauses, err := decider.Decide(edges, colors)
		if err != nil {
			return 0, nil, err
		}
		logrus.WithFields(logrus.Fields{
			"colors":      colors,
			"variables":   variables,
			"clauses":     clauses,
			"satisfiable": coloring != nil,
		}).Debug("chromatic instance decided")

		if coloring != nil {
			if !decider.Verify(coloring, edges, colors) {
				return 0, nil, fmt.Errorf("coloring %v does not verify with %d colors", coloring, colors)
			}
			return colors, coloring, nil
		}
	}
	// Unreachable unless the graph has a self-loop, which no coloring allows
	return 0, nil, fmt.Errorf("graph is not colorable")
}

// CliqueNumber returns the largest clique size of the graph, along with one such clique
func CliqueNumber(decider model.Decider, edges graph.EdgeList) (uint64, []uint64, error) {
	var (
		number uint64
		best   []uint64
	)
	for size := uint64(1); size <= edges.VertexCount(); size++ {
		clique, variables, clauses, err := decider.Decide(edges, size)
		if err != nil {
			return 0, nil, err
		}
		logrus.WithFields(logrus.Fields{
			"size":        size,
			"variables":   variables,
			"clauses":     clauses,
			"satisfiable": clique != nil,
		}).Debug("clique instance decided")

		if clique == nil {
			break
		} else if !decider.Verify(clique, edges, size) {
			return 0, nil, fmt.Errorf("clique %v does not verify with size %d", clique, size)
		}
		number, best = size, clique
	}
	return number, best, nil
}
