package model

type indexerImplementation struct {
	vertices uint64
	colors   uint64
}

func (indexer *indexerImplementation) Index(vertex, color uint64) uint64 {
	return vertex + indexer.vertices*color + 1
}

func (indexer *indexerImplementation) Attributes(index uint64) (vertex, color uint64) {
	index = index - 1
	vertex = index % indexer.vertices
	color = index / indexer.vertices
	return vertex, color
}

func (indexer *indexerImplementation) Variables() uint64 {
	return indexer.vertices * indexer.colors
}
