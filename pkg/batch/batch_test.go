package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/limaJavier/graphsat/pkg/model"
	"github.com/limaJavier/graphsat/pkg/sat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGraph(t *testing.T, directory, name, content string) string {
	t.Helper()
	file := filepath.Join(directory, name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0666))
	return file
}

func TestConfigFromJson(t *testing.T) {
	//** Arrange
	directory := t.TempDir()
	file := writeGraph(t, directory, "config.json", `{
		"outputDirectory": "out",
		"solver": "gini",
		"maxClauses": 1000,
		"workers": 2,
		"jobs": [
			{"graph": "GraphR1.txt", "chromatic": 4, "clique": 3},
			{"graph": "GraphR2.txt", "clique": 2}
		]
	}`)

	//** Act
	config, err := ConfigFromJson(file)

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, Config{
		OutputDirectory: "out",
		Solver:          "gini",
		MaxClauses:      1000,
		Workers:         2,
		Jobs: []Job{
			{Graph: "GraphR1.txt", Chromatic: 4, Clique: 3},
			{Graph: "GraphR2.txt", Clique: 2},
		},
	}, config)
}

func TestConfigValidation(t *testing.T) {
	scenarios := map[string]string{
		"no jobs":       `{"jobs": []}`,
		"missing graph": `{"jobs": [{"chromatic": 3}]}`,
		"no targets":    `{"jobs": [{"graph": "GraphR1.txt"}]}`,
		"invalid json":  `{"jobs": [`,
		"bad workers":   `{"workers": -1, "jobs": [{"graph": "GraphR1.txt", "clique": 2}]}`,
	}

	for name, content := range scenarios {
		t.Run(name, func(t *testing.T) {
			file := writeGraph(t, t.TempDir(), "config.json", content)
			_, err := ConfigFromJson(file)
			assert.Error(t, err)
		})
	}
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "GraphR1_ChromaticNum4.cnf", OutputName("graphs/GraphR1.txt", "ChromaticNum", 4))
	assert.Equal(t, "GraphR5_CliqueNum3.cnf", OutputName("GraphR5.txt", "CliqueNum", 3))
	assert.Equal(t, "edges_CliqueNum2.cnf", OutputName("/tmp/edges", "CliqueNum", 2))
}

func TestRunWritesAndSolvesInstances(t *testing.T) {
	//** Arrange
	directory := t.TempDir()
	// Triangle with a pendant vertex and a path
	graph1 := writeGraph(t, directory, "GraphR1.txt", "0 1\n1 2\n0 2\n2 3\n")
	graph2 := writeGraph(t, directory, "GraphR2.txt", "0 1\n1 2\n")
	config := Config{
		OutputDirectory: filepath.Join(directory, "out"),
		Solver:          "gini",
		Jobs: []Job{
			{Graph: graph1, Chromatic: 3, Clique: 3},
			{Graph: graph2, Chromatic: 1, Clique: 3},
		},
	}

	//** Act
	results, err := Run(config)

	//** Assert
	require.NoError(t, err)
	require.Len(t, results, 4)

	expected := []struct {
		problem string
		status  Status
	}{
		{"ChromaticNum", Satisfiable},
		{"CliqueNum", Satisfiable},
		{"ChromaticNum", Unsatisfiable},
		{"CliqueNum", Unsatisfiable},
	}
	for i, result := range results {
		assert.Equal(t, expected[i].problem, result.Problem)
		assert.Equal(t, expected[i].status, result.Status)

		instance, err := sat.ReadDIMACSFile(result.Output)
		require.NoError(t, err)
		assert.Equal(t, result.Variables, instance.Variables)
		assert.Equal(t, result.Clauses, uint64(len(instance.Clauses)))
	}
	assert.Equal(t, []uint64{0, 1, 2}, results[1].Witness)

	content, err := os.ReadFile(filepath.Join(config.OutputDirectory, "GraphR1_ChromaticNum3.cnf"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "c This is a DIMACS SAT-instances file to check the chromatic number\nc \nc The file Name               : GraphR1.txt\n"))
	assert.Contains(t, string(content), fmt.Sprintf("p cnf %d %d\n", 12, 4+4*3+4*3))
}

func TestRunWithoutSolverOnlyWrites(t *testing.T) {
	directory := t.TempDir()
	graph := writeGraph(t, directory, "GraphR1.txt", "0 1\n1 2\n")

	results, err := Run(Config{
		OutputDirectory: directory,
		Workers:         1,
		Jobs:            []Job{{Graph: graph, Clique: 2}},
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, Written, results[0].Status)
	assert.FileExists(t, filepath.Join(directory, "GraphR1_CliqueNum2.cnf"))
}

func TestRunReportsFailures(t *testing.T) {
	directory := t.TempDir()
	graph := writeGraph(t, directory, "GraphR1.txt", "0 1\n1 2\n2 3\n3 4\n4 5\n5 6\n6 7\n7 8\n8 9\n9 10\n10 11\n")

	// C(12, 7) size bound clauses exceed the limit, the chromatic task still succeeds
	results, err := Run(Config{
		OutputDirectory: directory,
		MaxClauses:      500,
		Jobs:            []Job{{Graph: graph, Chromatic: 2, Clique: 6}},
	})

	assert.ErrorIs(t, err, model.ErrTooManyClauses)
	require.Len(t, results, 2)
	assert.Equal(t, Written, results[0].Status)

	_, err = Run(Config{Solver: "walksat", Jobs: []Job{{Graph: graph, Chromatic: 2}}})
	assert.ErrorIs(t, err, sat.ErrUnknownSolver)

	_, err = Run(Config{OutputDirectory: directory, Jobs: []Job{{Graph: filepath.Join(directory, "missing.txt"), Chromatic: 2}}})
	assert.Error(t, err)
}
