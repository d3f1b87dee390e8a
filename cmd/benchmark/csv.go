package benchmark

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

var header = []string{"Solver", "Problem", "Graph", "Vertices", "Target", "Variables", "Clauses", "Duration(ms)", "Memory(MB)", "CPU(%)", "Result"}

func toCsv(file string, results []Result) error {
	writer, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer writer.Close()

	if err := writeCsv(writer, results); err != nil {
		return err
	}
	return writer.Close()
}

func writeCsv(w io.Writer, results []Result) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write(record(result)); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func record(result Result) []string {
	return []string{
		result.Solver,
		result.Instance.Problem,
		result.Instance.Graph,
		fmt.Sprintf("%d", result.Instance.Vertices),
		fmt.Sprintf("%d", result.Instance.Target),
		fmt.Sprintf("%d", result.Instance.Variables),
		fmt.Sprintf("%d", result.Instance.Clauses),
		fmt.Sprintf("%d", result.Duration),
		fmt.Sprintf("%.1f", result.Memory),
		fmt.Sprintf("%d", result.CpuPercentage),
		resultTypes[result.Result],
	}
}
