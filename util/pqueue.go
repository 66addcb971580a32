package util

import (
	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

// Binary min-heap keyed by priority.
// Duplicate entries are allowed, stale entries have to be skipped by the caller.
type PriorityQueue[T any, P constraints.Ordered] struct {
	items []Tuple[T, P]
}

func NewPriorityQueue[T any, P constraints.Ordered](cap int) PriorityQueue[T, P] {
	return PriorityQueue[T, P]{
		items: make([]Tuple[T, P], 0, cap),
	}
}

func (self *PriorityQueue[T, P]) Length() int {
	return len(self.items)
}

func (self *PriorityQueue[T, P]) Enqueue(item T, priority P) {
	self.items = append(self.items, MakeTuple(item, priority))
	self.siftUp(len(self.items) - 1)
}

func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	if len(self.items) == 0 {
		var t T
		return t, false
	}
	root := self.items[0]
	last := len(self.items) - 1
	self.items[0] = self.items[last]
	self.items = self.items[:last]
	if len(self.items) > 0 {
		self.siftDown(0)
	}
	return root.A, true
}

func (self *PriorityQueue[T, P]) Peek() (T, bool) {
	if len(self.items) == 0 {
		var t T
		return t, false
	}
	return self.items[0].A, true
}

func (self *PriorityQueue[T, P]) Clear() {
	self.items = self.items[:0]
}

func (self *PriorityQueue[T, P]) siftUp(index int) {
	for index > 0 {
		parent := (index - 1) / 2
		if self.items[index].B >= self.items[parent].B {
			break
		}
		self.items[index], self.items[parent] = self.items[parent], self.items[index]
		index = parent
	}
}

func (self *PriorityQueue[T, P]) siftDown(index int) {
	count := len(self.items)
	for {
		left := 2*index + 1
		right := 2*index + 2
		smallest := index
		if left < count && self.items[left].B < self.items[smallest].B {
			smallest = left
		}
		if right < count && self.items[right].B < self.items[smallest].B {
			smallest = right
		}
		if smallest == index {
			break
		}
		self.items[index], self.items[smallest] = self.items[smallest], self.items[index]
		index = smallest
	}
}
