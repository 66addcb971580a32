package graph

import (
	"github.com/ttpr0/go-evacuation/geo"
)

//*******************************************
// grid graph
//*******************************************

type IGridGraph interface {
	NodeCount() int
	EdgeCount() int
	IsNode(node int32) bool
	ForOutgoingEdges(node int32, callback func(target int32, weight float64))
	GetEdgeWeight(from, to int32) (float64, bool)
}

// GridGraph is a directed weighted graph over raster cells in compressed
// row storage. Node ids are row-major cell indices (row*cols + col).
//
// The graph is immutable after construction and safe for concurrent reads.
type GridGraph struct {
	rows      int
	cols      int
	node_ptr  []int32
	targets   []int32
	weights   []float64
	transform geo.Transform
}

var _ IGridGraph = &GridGraph{}

func (self *GridGraph) NodeCount() int {
	return self.rows * self.cols
}
func (self *GridGraph) EdgeCount() int {
	return len(self.targets)
}
func (self *GridGraph) Rows() int {
	return self.rows
}
func (self *GridGraph) Cols() int {
	return self.cols
}
func (self *GridGraph) Transform() geo.Transform {
	return self.transform
}
func (self *GridGraph) IsNode(node int32) bool {
	return node >= 0 && node < int32(self.rows*self.cols)
}

// Index maps (row, col) to the node id.
func (self *GridGraph) Index(row, col int) int32 {
	return int32(row*self.cols + col)
}

// RowCol maps a node id back to (row, col).
func (self *GridGraph) RowCol(node int32) (int, int) {
	return int(node) / self.cols, int(node) % self.cols
}

// ForOutgoingEdges iterates the adjacency of a node calling the callback
// for every outgoing edge.
func (self *GridGraph) ForOutgoingEdges(node int32, callback func(target int32, weight float64)) {
	start := self.node_ptr[node]
	end := self.node_ptr[node+1]
	for i := start; i < end; i++ {
		callback(self.targets[i], self.weights[i])
	}
}

// GetEdgeWeight returns the weight of the directed edge from -> to.
// The second return is false if no such edge exists.
func (self *GridGraph) GetEdgeWeight(from, to int32) (float64, bool) {
	start := self.node_ptr[from]
	end := self.node_ptr[from+1]
	for i := start; i < end; i++ {
		if self.targets[i] == to {
			return self.weights[i], true
		}
	}
	return 0, false
}

// Degree returns the number of outgoing edges of a node.
func (self *GridGraph) Degree(node int32) int {
	return int(self.node_ptr[node+1] - self.node_ptr[node])
}
