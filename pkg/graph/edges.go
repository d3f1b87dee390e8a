package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/samber/lo"
)

var (
	ErrMismatchedEdges = errors.New("edge endpoint sequences must have the same length")
	ErrEmptyEdgeList   = errors.New("edge list must contain at least one edge")
)

// EdgeList holds undirected edges as two parallel sequences: U[i]-V[i] is an edge.
// Vertex ids are dense and start at 0.
type EdgeList struct {
	U []uint64
	V []uint64
}

func NewEdgeList(u, v []uint64) (EdgeList, error) {
	edges := EdgeList{U: u, V: v}
	if err := edges.Validate(); err != nil {
		return EdgeList{}, err
	}
	return edges, nil
}

// Validate checks the preconditions every encoder relies on
func (edges EdgeList) Validate() error {
	if len(edges.U) != len(edges.V) {
		return fmt.Errorf("%w: %d != %d", ErrMismatchedEdges, len(edges.U), len(edges.V))
	} else if len(edges.U) == 0 {
		return ErrEmptyEdgeList
	}
	return nil
}

func (edges EdgeList) Len() int {
	return len(edges.U)
}

// VertexCount is the largest vertex id seen plus one
func (edges EdgeList) VertexCount() uint64 {
	if len(edges.U) == 0 {
		return 0
	}
	return max(lo.Max(edges.U), lo.Max(edges.V)) + 1
}

// Edge returns the i-th edge's endpoints
func (edges EdgeList) Edge(i int) (u, v uint64) {
	return edges.U[i], edges.V[i]
}

// AdjacencyMatrix returns the symmetric vertexCount x vertexCount matrix of the edge list.
// The diagonal is only set by explicit self-loops.
func (edges EdgeList) AdjacencyMatrix() [][]bool {
	vertices := edges.VertexCount()
	matrix := make([][]bool, vertices)
	for i := range matrix {
		matrix[i] = make([]bool, vertices)
	}

	for i := range edges.Len() {
		u, v := edges.Edge(i)
		matrix[u][v] = true
		matrix[v][u] = true
	}
	return matrix
}

func EdgeListFromFile(file string) (EdgeList, error) {
	reader, err := os.Open(file)
	if err != nil {
		return EdgeList{}, fmt.Errorf("cannot open graph file: %w", err)
	}
	defer reader.Close()

	edges, err := ReadEdgeList(reader)
	if err != nil {
		return EdgeList{}, pkgerrors.Wrapf(err, "cannot parse graph file %q", file)
	}
	return edges, nil
}

// ReadEdgeList parses one edge per line, each line holding two whitespace-separated non-negative integers.
// Blank lines are ignored.
func ReadEdgeList(reader io.Reader) (EdgeList, error) {
	var edges EdgeList
	scanner := bufio.NewScanner(reader)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		} else if len(fields) != 2 {
			return EdgeList{}, pkgerrors.Errorf("line %d: expected 2 vertex ids, found %d", lineNumber, len(fields))
		}

		endpoints := make([]uint64, 2)
		for i, field := range fields {
			id, err := strconv.ParseUint(field, 10, 64)
			if err != nil {
				return EdgeList{}, pkgerrors.Wrapf(err, "line %d: invalid vertex id %q", lineNumber, field)
			}
			endpoints[i] = id
		}
		edges.U = append(edges.U, endpoints[0])
		edges.V = append(edges.V, endpoints[1])
	}

	if err := scanner.Err(); err != nil {
		return EdgeList{}, pkgerrors.Wrap(err, "error reading edge list")
	}

	if err := edges.Validate(); err != nil {
		return EdgeList{}, err
	}
	return edges, nil
}
