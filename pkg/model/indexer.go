package model

// indexer interface is design to give a unique DIMACS variable to a (vertex, color) pair and vice versa.
// Variables are laid out in color-major blocks of size vertices: Index(vertex, color) = vertex + color*vertices + 1
type indexer interface {
	// Returns a unique variable for the vertex having the color
	Index(vertex, color uint64) uint64
	// Returns the vertex and color a variable stands for
	Attributes(index uint64) (vertex uint64, color uint64)
	// Returns the size of the variable space
	Variables() uint64
}

// newIndexer builds an indexer over vertices x colors variables.
// With a single color it degenerates to Index(vertex, 0) = vertex + 1, the clique membership numbering
func newIndexer(vertices, colors uint64) indexer {
	return &indexerImplementation{
		vertices: vertices,
		colors:   colors,
	}
}
