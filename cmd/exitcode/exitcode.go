// Package exitcode carries SAT-competition exit codes out of cobra commands.
package exitcode

import "fmt"

const (
	Satisfiable   = 10
	Unsatisfiable = 20
)

// Error makes the process exit with Code without printing anything else
type Error struct {
	Code int
}

func (err Error) Error() string {
	return fmt.Sprintf("exit status %d", err.Code)
}
