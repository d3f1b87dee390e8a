package graph

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEdgeList(t *testing.T) {
	//** Arrange
	input := "0 1\n1 2\n\n2  3\n0 3\n"

	//** Act
	edges, err := ReadEdgeList(strings.NewReader(input))

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 1, 2, 0}, edges.U)
	assert.Equal(t, []uint64{1, 2, 3, 3}, edges.V)
	assert.Equal(t, uint64(4), edges.VertexCount())
	assert.Equal(t, 4, edges.Len())
}

func TestReadEdgeListRejectsMalformedLines(t *testing.T) {
	scenarios := map[string]string{
		"single token":   "0 1\n2\n",
		"three tokens":   "0 1 2\n",
		"negative id":    "0 -1\n",
		"not an integer": "0 a\n",
		"empty input":    "\n\n",
	}

	for name, input := range scenarios {
		t.Run(name, func(t *testing.T) {
			_, err := ReadEdgeList(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestReadEdgeListReportsLine(t *testing.T) {
	_, err := ReadEdgeList(strings.NewReader("0 1\n1 x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestNewEdgeListPreconditions(t *testing.T) {
	_, err := NewEdgeList([]uint64{0, 1}, []uint64{1})
	assert.ErrorIs(t, err, ErrMismatchedEdges)

	_, err = NewEdgeList(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyEdgeList)

	edges, err := NewEdgeList([]uint64{0}, []uint64{5})
	require.NoError(t, err)
	assert.Equal(t, uint64(6), edges.VertexCount())
}

func TestAdjacencyMatrix(t *testing.T) {
	//** Arrange
	edges, err := NewEdgeList([]uint64{0, 2, 3}, []uint64{1, 1, 3})
	require.NoError(t, err)

	//** Act
	matrix := edges.AdjacencyMatrix()

	//** Assert
	require.Len(t, matrix, 4)
	expected := [][]bool{
		{false, true, false, false},
		{true, false, true, false},
		{false, true, false, false},
		{false, false, false, true},
	}
	assert.Equal(t, expected, matrix)

	for i := range matrix {
		for j := range matrix {
			assert.Equal(t, matrix[i][j], matrix[j][i])
		}
	}
}

func TestEdgeListFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "GraphR1.txt")
	require.NoError(t, os.WriteFile(file, []byte("0 1\n1 2\n"), 0666))

	edges, err := EdgeListFromFile(file)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), edges.VertexCount())

	_, err = EdgeListFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
