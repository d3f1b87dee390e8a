// Package solvers shares the solver flags between the sub-commands.
package solvers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/limaJavier/graphsat/pkg/sat"
)

// ConfigFlag is the persistent root flag holding the solvers config path
const ConfigFlag = "solvers-config"

// ConfigPath returns the solvers config given to the command or any of its parents
func ConfigPath(cmd *cobra.Command) string {
	flag := cmd.Flag(ConfigFlag)
	if flag == nil || flag.Value.String() == "" {
		return sat.DefaultConfigPath
	}
	return flag.Value.String()
}

// New builds the named solver with the command's solvers config
func New(cmd *cobra.Command, name string) (sat.SATSolver, error) {
	return sat.NewSolver(name, ConfigPath(cmd))
}

func Usage() string {
	return fmt.Sprintf("one of: %v", strings.Join(sat.SolverNames(), ", "))
}
