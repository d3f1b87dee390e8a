package sat

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// DefaultConfigPath is the solvers config read when none is given: a JSON object mapping solver path keys
// (e.g. "kissatPath") to executables
const DefaultConfigPath = "config.json"

// parseSolution extracts the model from the "v" lines of a solver's standard output
func parseSolution(solverOutput string) (SATSolution, error) {
	fields := lo.Reduce(
		lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
			return len(line) > 0 && line[0] == 'v'
		}),
		func(values []string, line string, _ int) []string {
			return append(values, strings.Fields(line[1:])...)
		},
		[]string{},
	)
	return parseLiterals(fields)
}

// parseModelFile extracts the model from a minisat-like output file: a "SAT" line followed by the literals
func parseModelFile(output string) (SATSolution, error) {
	fields := lo.Filter(strings.Fields(output), func(field string, _ int) bool {
		return field != "SAT"
	})
	return parseLiterals(fields)
}

func parseLiterals(fields []string) (SATSolution, error) {
	solution := make(SATSolution, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid literal in solver output: %w", err)
		}
		if value == 0 {
			break
		}
		solution = append(solution, value)
	}
	return solution, nil
}

func getExecutablePath(configPath, solver, fallback string) string {
	bytes, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return fallback
	} else if err != nil {
		logrus.WithField("config", configPath).Warnf("cannot read solvers config: %v", err)
		return fallback
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		logrus.WithField("config", configPath).Warnf("cannot parse solvers config: %v", err)
		return fallback
	}

	var config map[string]string
	if err := mapstructure.Decode(inputJson, &config); err != nil {
		logrus.WithField("config", configPath).Warnf("cannot decode solvers config: %v", err)
		return fallback
	}

	path, ok := config[solver]
	if !ok || path == "" {
		return fallback
	}
	return path
}

// Satisfies checks that the solution is consistent and satisfies every clause of the instance
func Satisfies(satInstance SAT, satSolution SATSolution) bool {
	// Make sure there are no duplicates nor contradictions
	literals := make(map[int64]bool)
	for _, literal := range satSolution {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	// Check that all clauses are satisfied
	for clause := range satInstance.AllClauses() {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}
