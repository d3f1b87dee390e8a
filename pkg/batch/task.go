package batch

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/limaJavier/graphsat/pkg/graph"
	"github.com/limaJavier/graphsat/pkg/model"
	"github.com/limaJavier/graphsat/pkg/sat"
)

type Status string

const (
	Written       Status = "written"
	Satisfiable   Status = "satisfiable"
	Unsatisfiable Status = "unsatisfiable"
)

// Task is a single (graph, problem, target) instance to generate
type Task struct {
	Graph   string
	Edges   graph.EdgeList
	Encoder model.Encoder
	Target  uint64
}

type Result struct {
	Graph     string
	Problem   string
	Target    uint64
	Vertices  uint64
	Variables uint64
	Clauses   uint64
	Output    string
	Status    Status
	Witness   []uint64
	Duration  time.Duration // Time spent by the solver
}

// Tasks loads every job's graph and expands it into one task per positive target, in job order
func Tasks(config Config) ([]Task, error) {
	chromaticEncoder := model.NewChromaticEncoder(config.MaxClauses)
	cliqueEncoder := model.NewCliqueEncoder(config.MaxClauses)

	tasks := make([]Task, 0, 2*len(config.Jobs))
	for _, job := range config.Jobs {
		edges, err := graph.EdgeListFromFile(job.Graph)
		if err != nil {
			return nil, err
		}

		if job.Chromatic > 0 {
			tasks = append(tasks, Task{Graph: job.Graph, Edges: edges, Encoder: chromaticEncoder, Target: job.Chromatic})
		}
		if job.Clique > 0 {
			tasks = append(tasks, Task{Graph: job.Graph, Edges: edges, Encoder: cliqueEncoder, Target: job.Clique})
		}
	}
	return tasks, nil
}

// OutputName derives the instance file name from the graph file, e.g. GraphR1.txt -> GraphR1_ChromaticNum4.cnf
func OutputName(graphFile, problem string, target uint64) string {
	base := filepath.Base(graphFile)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%v_%v%v.cnf", base, problem, target)
}

// Instance encodes the task and describes it with the graph file it comes from
func (task Task) Instance() (sat.SAT, error) {
	instance, err := task.Encoder.Encode(task.Edges, task.Target)
	if err != nil {
		return sat.SAT{}, fmt.Errorf("cannot encode %v for %v: %w", task.Encoder.Name(), task.Graph, err)
	}
	instance.Comments = task.Encoder.Describe(filepath.Base(task.Graph), task.Edges.VertexCount(), task.Target)
	return instance, nil
}

func (task Task) result(instance sat.SAT) Result {
	return Result{
		Graph:     task.Graph,
		Problem:   task.Encoder.Name(),
		Target:    task.Target,
		Vertices:  task.Edges.VertexCount(),
		Variables: instance.Variables,
		Clauses:   instance.ClauseCount(),
		Status:    Written,
	}
}

// Solve runs the solver on the task's instance, then decodes and verifies the witness
func (task Task) Solve(instance sat.SAT, solver sat.SATSolver) (Result, error) {
	result := task.result(instance)

	start := time.Now()
	solution, err := solver.Solve(instance)
	result.Duration = time.Since(start)
	if err != nil {
		return result, fmt.Errorf("cannot solve %v for %v: %w", task.Encoder.Name(), task.Graph, err)
	} else if solution == nil {
		result.Status = Unsatisfiable
		return result, nil
	}

	if !sat.Satisfies(instance, solution) {
		return result, fmt.Errorf("solver returned an assignment that does not satisfy %v for %v", task.Encoder.Name(), task.Graph)
	}

	result.Witness = task.Encoder.Decode(solution, task.Edges, task.Target)
	if !task.Encoder.Verify(result.Witness, task.Edges, task.Target) {
		return result, fmt.Errorf("witness %v does not verify %v for %v", result.Witness, task.Encoder.Name(), task.Graph)
	}
	result.Status = Satisfiable
	return result, nil
}
