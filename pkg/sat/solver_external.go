package sat

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

type inputMode int

const (
	standardInput   inputMode = iota // DIMACS is fed through stdin and the model read from "v" lines
	fileArgument                     // DIMACS is written to a file passed as last argument, model read from "v" lines
	inputOutputFile                  // Input and output files are passed as arguments, the model is read from the output file
)

// externalSolver runs a SAT-competition compliant binary: exit-code 10 stands for satisfiable and 20 for unsatisfiable
type externalSolver struct {
	name       string
	configPath string
	pathKey    string // Key of the executable path in the solvers config
	args       []string
	input      inputMode
}

func NewKissatSolver(configPath string) SATSolver {
	return &externalSolver{configPath: configPath, name: "kissat", pathKey: "kissatPath", args: []string{"-q", "--relaxed"}, input: standardInput}
}

func NewCadicalSolver(configPath string) SATSolver {
	return &externalSolver{configPath: configPath, name: "cadical", pathKey: "cadicalPath", args: []string{"-q"}, input: standardInput}
}

func NewCryptominisatSolver(configPath string) SATSolver {
	return &externalSolver{configPath: configPath, name: "cryptominisat", pathKey: "cryptominisatPath", args: []string{"--verb", "0"}, input: standardInput}
}

func NewMinisatSolver(configPath string) SATSolver {
	return &externalSolver{configPath: configPath, name: "minisat", pathKey: "minisatPath", args: []string{"-verb=0"}, input: inputOutputFile}
}

func NewGlucoseSimpSolver(configPath string) SATSolver {
	return &externalSolver{configPath: configPath, name: "glucose-simp", pathKey: "glucoseSimpPath", args: []string{"-verb=0"}, input: inputOutputFile}
}

func NewSlimeSolver(configPath string) SATSolver {
	return &externalSolver{configPath: configPath, name: "slime", pathKey: "slimePath", input: fileArgument}
}

func NewOrtoolsatSolver(configPath string) SATSolver {
	return &externalSolver{configPath: configPath, name: "ortoolsat", pathKey: "ortoolsatPath", input: fileArgument}
}

func (solver *externalSolver) executable() string {
	return getExecutablePath(solver.configPath, solver.pathKey, solver.name)
}

func (solver *externalSolver) Solve(sat SAT) (SATSolution, error) {
	cmd := exec.Command(solver.executable(), solver.args...)

	// The instance is streamed to a file, generated clauses are never held in memory at once
	inputFile, err := writeTempFile("dimacs-*.cnf", sat)
	if err != nil {
		return nil, err
	}
	defer removeTempFile(inputFile)

	var outputFile string
	switch solver.input {
	case standardInput:
		input, err := os.Open(inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open temporary file: %w", err)
		}
		defer input.Close()
		cmd.Stdin = input
	case fileArgument, inputOutputFile:
		cmd.Args = append(cmd.Args, inputFile)

		if solver.input == inputOutputFile {
			outputFile, err = createTempFile(solver.name + "_output-*.txt")
			if err != nil {
				return nil, err
			}
			defer removeTempFile(outputFile)
			cmd.Args = append(cmd.Args, outputFile)
		}
	}

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	if err != nil && (cmd.ProcessState == nil || (cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20)) {
		return nil, fmt.Errorf("an error occurred during %v execution: %v : %v", solver.name, err.Error(), stderr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return nil, nil
	}

	if solver.input == inputOutputFile {
		output, err := os.ReadFile(outputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read output file: %w", err)
		}
		return parseModelFile(string(output))
	}
	return parseSolution(stdOut.String())
}

func createTempFile(pattern string) (string, error) {
	file, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return "", fmt.Errorf("failed to close temporary file: %w", err)
	}
	return file.Name(), nil
}

func writeTempFile(pattern string, sat SAT) (string, error) {
	file, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}

	if err := sat.WriteDIMACS(file); err != nil {
		file.Close()
		os.Remove(file.Name())
		return "", fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return "", fmt.Errorf("failed to close temporary file: %w", err)
	}
	return file.Name(), nil
}

func removeTempFile(file string) {
	if err := os.Remove(file); err != nil {
		logrus.WithField("file", file).Warnf("failed to remove temporary file: %v", err)
	}
}
