package benchmark

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/limaJavier/graphsat/cmd/exitcode"
	"github.com/limaJavier/graphsat/cmd/solvers"
	"github.com/limaJavier/graphsat/pkg/batch"
	"github.com/limaJavier/graphsat/pkg/sat"
)

type ResultType int

const (
	solved ResultType = iota
	unsatisfiable
	timeout
)

var resultTypes = map[ResultType]string{
	solved:        "solved",
	unsatisfiable: "unsatisfiable",
	timeout:       "timeout",
}

type Result struct {
	Solver        string
	Instance      batch.Result
	Duration      int64   // Milliseconds
	Memory        float32 // MB, only measured in isolated runs
	CpuPercentage int64   // Only measured in isolated runs
	Result        ResultType
}

type measurer interface {
	measure(task batch.Task, instance sat.SAT, file, solver string) (Result, error)
}

// inProcessMeasurer times the solver call, decoding and verifying its witness
type inProcessMeasurer struct {
	solversConfig string
}

func (measurer inProcessMeasurer) measure(task batch.Task, instance sat.SAT, file, solverName string) (Result, error) {
	solver, err := sat.NewSolver(solverName, measurer.solversConfig)
	if err != nil {
		return Result{}, err
	}

	instanceResult, err := task.Solve(instance, solver)
	if err != nil {
		return Result{}, err
	}
	instanceResult.Output = file

	result := Result{
		Solver:   solverName,
		Instance: instanceResult,
		Duration: instanceResult.Duration.Milliseconds(),
		Result:   solved,
	}
	if instanceResult.Status == batch.Unsatisfiable {
		result.Result = unsatisfiable
	}
	return result, nil
}

// processMeasurer runs "<executable> solve <file>" under GNU time and parses its verbose report
type processMeasurer struct {
	timeCommand   string
	executable    string
	solversConfig string
	timeout       time.Duration
}

// Time given to the killed run to release its output pipes before Wait gives up on them
const waitDelay = time.Second

func (measurer processMeasurer) measure(task batch.Task, instance sat.SAT, file, solverName string) (Result, error) {
	ctx := context.Background()
	if measurer.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, measurer.timeout)
		defer cancel()
	}

	args := []string{"-v", measurer.executable, "solve", file, "--solver", solverName}
	if measurer.solversConfig != "" {
		args = append(args, "--"+solvers.ConfigFlag, measurer.solversConfig)
	}
	cmd := exec.CommandContext(ctx, measurer.timeCommand, args...)
	// GNU time does not forward the kill to the solve process, the whole process group goes down instead
	killProcessGroup(cmd)
	cmd.WaitDelay = waitDelay

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	instanceResult := batch.Result{
		Graph:     task.Graph,
		Problem:   task.Encoder.Name(),
		Target:    task.Target,
		Vertices:  task.Edges.VertexCount(),
		Variables: instance.Variables,
		Clauses:   instance.ClauseCount(),
		Output:    file,
	}
	result := Result{Solver: solverName, Instance: instanceResult}

	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.Duration = measurer.timeout.Milliseconds()
		result.Result = timeout
		return result, nil
	}

	switch cmd.ProcessState.ExitCode() {
	case exitcode.Satisfiable:
		result.Result = solved
		result.Instance.Status = batch.Satisfiable
	case exitcode.Unsatisfiable:
		result.Result = unsatisfiable
		result.Instance.Status = batch.Unsatisfiable
	default:
		return Result{}, fmt.Errorf("an error occurred while solving \"%v\" with solver \"%v\": %v: %v", file, solverName, err, stdErr.String())
	}

	splits := strings.Split(stdErr.String(), "\n")
	getLine := func(substr string) (string, error) {
		line, ok := lo.Find(splits, func(line string) bool {
			return strings.Contains(strings.ToLower(line), substr)
		})
		if !ok {
			return "", fmt.Errorf("substring \"%v\" could not be found in the time report", substr)
		}
		return line, nil
	}

	line, err := getLine("wall clock")
	if err != nil {
		return Result{}, err
	}
	if result.Duration, err = parseDurationLine(line); err != nil {
		return Result{}, err
	}

	if line, err = getLine("maximum resident set size"); err != nil {
		return Result{}, err
	}
	if result.Memory, err = parseMemoryLine(line); err != nil {
		return Result{}, err
	}

	if line, err = getLine("percent of cpu"); err != nil {
		return Result{}, err
	}
	if result.CpuPercentage, err = parseCpuPercentageLine(line); err != nil {
		return Result{}, err
	}

	return result, nil
}

func parseDurationLine(line string) (int64, error) {
	_, durationStr, ok := strings.Cut(line, "(h:mm:ss or m:ss):")
	if !ok {
		return 0, fmt.Errorf("unexpected wall clock line: %v", line)
	}
	return parseDuration(strings.TrimSpace(durationStr))
}

// parseDuration turns an "h:mm:ss.hh" or "m:ss.hh" duration into milliseconds
func parseDuration(durationStr string) (int64, error) {
	parts := strings.Split(durationStr, ":")
	seconds, hundredths, ok := strings.Cut(parts[len(parts)-1], ".")
	if !ok {
		return 0, fmt.Errorf("unexpected duration format: %v", durationStr)
	}

	values := make([]int, 0, len(parts)+1)
	for _, part := range append(slices.Clone(parts[:len(parts)-1]), seconds, hundredths) {
		value, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("unexpected duration format: %v", durationStr)
		}
		values = append(values, value)
	}

	var hours, minutes int
	switch len(parts) {
	case 3: // h:mm:ss
		hours, minutes = values[0], values[1]
	case 2: // m:ss
		minutes = values[0]
	default:
		return 0, fmt.Errorf("unexpected duration format: %v", durationStr)
	}
	secondsValue, hundredthsValue := values[len(values)-2], values[len(values)-1]
	return int64(hours*3600+minutes*60+secondsValue)*1000 + int64(hundredthsValue*10), nil
}

// parseMemoryLine reads the maximum resident set size, reported in KB, as MB
func parseMemoryLine(line string) (float32, error) {
	_, memoryStr, _ := strings.Cut(line, ":")
	memory, err := strconv.ParseFloat(strings.TrimSpace(memoryStr), 32)
	if err != nil {
		return 0, fmt.Errorf("unexpected memory line: %v", line)
	}
	return float32(memory) / 1024, nil
}

func parseCpuPercentageLine(line string) (int64, error) {
	_, percentageStr, _ := strings.Cut(line, ":")
	percentage, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(percentageStr), "%"))
	if err != nil {
		return 0, fmt.Errorf("unexpected cpu line: %v", line)
	}
	return int64(percentage), nil
}
