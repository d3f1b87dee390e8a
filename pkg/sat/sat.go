package sat

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strconv"
	"strings"
)

// SATSolution holds one literal per assigned variable (positive if true, negative if false)
type SATSolution []int64

// SAT is a CNF instance: each clause is a disjunction of nonzero literals
type SAT struct {
	Variables uint64
	Clauses   [][]int64
	Comments  []string // Emitted as "c <comment>" lines before the problem line

	// Generated clauses follow Clauses and are produced on demand instead of being held in memory.
	// The sequence must yield GeneratedCount clauses every time it is ranged over; yielded slices may be
	// reused by the sequence, so consumers must copy them to retain them
	Generated      iter.Seq[[]int64]
	GeneratedCount uint64
}

func (s SAT) ClauseCount() uint64 {
	return uint64(len(s.Clauses)) + s.GeneratedCount
}

// AllClauses ranges over Clauses and then over the generated clauses
func (s SAT) AllClauses() iter.Seq[[]int64] {
	return func(yield func([]int64) bool) {
		for _, clause := range s.Clauses {
			if !yield(clause) {
				return
			}
		}
		if s.Generated == nil {
			return
		}
		for clause := range s.Generated {
			if !yield(clause) {
				return
			}
		}
	}
}

// Materialize returns the same instance with every generated clause copied into Clauses
func (s SAT) Materialize() SAT {
	if s.Generated == nil {
		return s
	}

	clauses := make([][]int64, 0, s.ClauseCount())
	clauses = append(clauses, s.Clauses...)
	for clause := range s.Generated {
		clauses = append(clauses, slices.Clone(clause))
	}
	return SAT{Variables: s.Variables, Clauses: clauses, Comments: s.Comments}
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	s.WriteDIMACS(&builder)
	return builder.String()
}

// WriteDIMACS serializes the instance; every clause goes on its own line terminated by 0
func (s SAT) WriteDIMACS(writer io.Writer) error {
	buffered := bufio.NewWriter(writer)

	for _, comment := range s.Comments {
		fmt.Fprintf(buffered, "c %s\n", comment)
	}
	fmt.Fprintf(buffered, "p cnf %d %d\n", s.Variables, s.ClauseCount())

	line := make([]byte, 0, 64)
	for clause := range s.AllClauses() {
		line = line[:0]
		for _, literal := range clause {
			line = strconv.AppendInt(line, literal, 10)
			line = append(line, ' ')
		}
		line = append(line, '0', '\n')
		if _, err := buffered.Write(line); err != nil {
			return err
		}
	}
	return buffered.Flush()
}

func (s SAT) WriteFile(file string) error {
	output, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("cannot create DIMACS file: %w", err)
	}

	if err := s.WriteDIMACS(output); err != nil {
		output.Close()
		return fmt.Errorf("cannot write DIMACS file: %w", err)
	}
	return output.Close()
}
