package cost

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/limaJavier/graphsat/pkg/graph"
	"github.com/limaJavier/graphsat/pkg/model"
)

func NewCostCommand() *cobra.Command {
	var (
		graphFile string
		colors    uint64
		size      uint64
	)

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Prints the number of variables and clauses the instances of a graph would hold",
		Long: `Prints the number of variables and clauses the instances of a graph would hold without building them.
The clique instance grows as C(vertices, vertices-size+1), use this to guard against runaway instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := graph.EdgeListFromFile(graphFile)
			if err != nil {
				return err
			}
			vertices := edges.VertexCount()

			fmt.Fprintf(cmd.OutOrStdout(), "vertices: %d, edges: %d\n", vertices, edges.Len())
			if colors > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "chromatic (k=%d): variables: %d, clauses: %v\n",
					colors, vertices*colors, model.ChromaticClauseCount(vertices, uint64(edges.Len()), colors))
			}
			if size > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "clique (s=%d): variables: %d, clauses: %v (size bound: %v)\n",
					size, vertices, model.CliqueClauseCount(edges, size), model.SizeBoundClauseCount(vertices, size))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&graphFile, "graph", "g", "", "Path to the edge list file")
	cmd.Flags().Uint64Var(&colors, "colors", 0, "Number of colors of the chromatic instance")
	cmd.Flags().Uint64Var(&size, "size", 0, "Clique size of the clique instance")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
