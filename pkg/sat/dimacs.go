package sat

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

const (
	// Upper bound of any preallocation sized after counts read from untrusted input
	capacityHint = 1 << 16
	// Literals must fit a signed 32-bit integer, as in every DIMACS solver
	maxVariables = math.MaxInt32
)

func ReadDIMACSFile(file string) (SAT, error) {
	reader, err := os.Open(file)
	if err != nil {
		return SAT{}, fmt.Errorf("could not open file: %w", err)
	}
	defer reader.Close()

	return ReadDIMACS(reader)
}

// ReadDIMACS parses a DIMACS CNF instance.
// Clauses may span several lines; a lone 0 is an empty clause.
func ReadDIMACS(reader io.Reader) (SAT, error) {
	var (
		sat       SAT
		header    bool
		declared  int
		clause    []int64
		lineCount int
	)
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		lineCount++
		line := scanner.Text()

		// Comments
		if strings.HasPrefix(line, "c") {
			sat.Comments = append(sat.Comments, strings.TrimPrefix(strings.TrimPrefix(line, "c"), " "))
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		// Problem line
		if fields[0] == "p" {
			if header {
				return SAT{}, pkgerrors.Errorf("line %d: multiple problem lines", lineCount)
			} else if len(fields) != 4 || fields[1] != "cnf" {
				return SAT{}, pkgerrors.Errorf("line %d: invalid problem line %q, expected: p cnf <variables> <clauses>", lineCount, line)
			}
			variables, err := strconv.ParseUint(fields[2], 10, 64)
			if err != nil {
				return SAT{}, pkgerrors.Wrapf(err, "line %d: invalid variable count", lineCount)
			}
			clauses, err := strconv.ParseUint(fields[3], 10, 64)
			if err != nil {
				return SAT{}, pkgerrors.Wrapf(err, "line %d: invalid clause count", lineCount)
			}
			if variables > maxVariables {
				return SAT{}, pkgerrors.Errorf("line %d: variable count %d exceeds the maximum of %d", lineCount, variables, maxVariables)
			} else if clauses > math.MaxInt {
				return SAT{}, pkgerrors.Errorf("line %d: clause count %d exceeds the maximum of %d", lineCount, clauses, math.MaxInt)
			}
			sat.Variables, declared, header = variables, int(clauses), true
			sat.Clauses = make([][]int64, 0, min(declared, capacityHint))
			continue
		}

		if !header {
			return SAT{}, pkgerrors.Errorf("line %d: missing problem line before clauses", lineCount)
		}

		// Clause literals
		for _, field := range fields {
			literal, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return SAT{}, pkgerrors.Wrapf(err, "line %d: invalid literal %q", lineCount, field)
			}
			if literal == 0 {
				if clause == nil {
					clause = []int64{}
				}
				sat.Clauses = append(sat.Clauses, clause)
				clause = nil
				continue
			}
			if uint64(max(literal, -literal)) > sat.Variables {
				return SAT{}, pkgerrors.Errorf("line %d: literal %d exceeds the %d declared variables", lineCount, literal, sat.Variables)
			}
			clause = append(clause, literal)
		}
	}

	if err := scanner.Err(); err != nil {
		return SAT{}, pkgerrors.Wrap(err, "error reading DIMACS input")
	}

	if !header {
		return SAT{}, fmt.Errorf("invalid format: missing problem line")
	} else if clause != nil {
		return SAT{}, fmt.Errorf("invalid format: last clause is not terminated by 0")
	} else if len(sat.Clauses) != declared {
		return SAT{}, fmt.Errorf("invalid format: problem line declares %d clauses but %d were found", declared, len(sat.Clauses))
	}

	return sat, nil
}
