package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/limaJavier/graphsat/pkg/sat"
)

// Run writes one DIMACS file per task into the output directory and, if a solver is configured, solves it.
// Up to config.Workers tasks run concurrently (all of them when it is 0); results keep the task order and every
// failure is reported in the joined error
func Run(config Config) ([]Result, error) {
	var solver sat.SATSolver
	if config.Solver != "" {
		var err error
		if solver, err = sat.NewSolver(config.Solver, config.SolversConfig); err != nil {
			return nil, err
		}
	}

	if config.OutputDirectory == "" {
		config.OutputDirectory = "."
	}
	if err := os.MkdirAll(config.OutputDirectory, 0755); err != nil {
		return nil, fmt.Errorf("cannot create output directory: %w", err)
	}

	tasks, err := Tasks(config)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(tasks))
	errs := make([]error, len(tasks))

	var group errgroup.Group
	if config.Workers > 0 {
		group.SetLimit(config.Workers)
	}
	for i, task := range tasks {
		// A failed task must not cancel the others, hence the per-task error slots
		group.Go(func() error {
			results[i], errs[i] = runTask(task, config.OutputDirectory, solver)
			return nil
		})
	}
	_ = group.Wait()

	return results, errors.Join(errs...)
}

func runTask(task Task, outputDirectory string, solver sat.SATSolver) (Result, error) {
	logger := logrus.WithFields(logrus.Fields{
		"graph":   task.Graph,
		"problem": task.Encoder.Name(),
		"target":  task.Target,
	})

	instance, err := task.Instance()
	if err != nil {
		logger.WithError(err).Error("encoding failed")
		return Result{Graph: task.Graph, Problem: task.Encoder.Name(), Target: task.Target}, err
	}

	output := filepath.Join(outputDirectory, OutputName(task.Graph, task.Encoder.Name(), task.Target))
	if err := instance.WriteFile(output); err != nil {
		logger.WithError(err).Error("writing instance failed")
		return task.result(instance), err
	}
	logger.WithFields(logrus.Fields{
		"output":    output,
		"variables": instance.Variables,
		"clauses":   instance.ClauseCount(),
	}).Info("instance written")

	if solver == nil {
		result := task.result(instance)
		result.Output = output
		return result, nil
	}

	result, err := task.Solve(instance, solver)
	result.Output = output
	if err != nil {
		logger.WithError(err).Error("solving failed")
		return result, err
	}
	logger.WithFields(logrus.Fields{
		"status":   result.Status,
		"duration": result.Duration,
	}).Info("instance solved")
	return result, nil
}
