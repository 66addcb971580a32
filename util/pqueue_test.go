package util

import (
	"testing"
)

func TestPriorityQueueOrder(t *testing.T) {
	queue := NewPriorityQueue[string, float64](4)
	queue.Enqueue("c", 3.0)
	queue.Enqueue("a", 1.0)
	queue.Enqueue("d", 4.0)
	queue.Enqueue("b", 2.0)

	expected := []string{"a", "b", "c", "d"}
	for _, want := range expected {
		item, ok := queue.Dequeue()
		if !ok {
			t.Fatalf("queue.Dequeue() ok = false; want true")
		}
		if item != want {
			t.Errorf("queue.Dequeue() = %v; want %v", item, want)
		}
	}
	if _, ok := queue.Dequeue(); ok {
		t.Errorf("queue.Dequeue() on empty queue ok = true; want false")
	}
}

func TestPriorityQueueDuplicates(t *testing.T) {
	queue := NewPriorityQueue[int, int](4)
	queue.Enqueue(1, 5)
	queue.Enqueue(1, 2)
	queue.Enqueue(2, 3)

	item, _ := queue.Dequeue()
	if item != 1 {
		t.Errorf("queue.Dequeue() = %v; want 1", item)
	}
	item, _ = queue.Dequeue()
	if item != 2 {
		t.Errorf("queue.Dequeue() = %v; want 2", item)
	}
	if queue.Length() != 1 {
		t.Errorf("queue.Length() = %v; want 1", queue.Length())
	}
}

func TestPriorityQueuePeek(t *testing.T) {
	queue := NewPriorityQueue[int, float64](4)
	if _, ok := queue.Peek(); ok {
		t.Errorf("queue.Peek() on empty queue ok = true; want false")
	}
	queue.Enqueue(7, 1.5)
	item, ok := queue.Peek()
	if !ok || item != 7 {
		t.Errorf("queue.Peek() = %v, %v; want 7, true", item, ok)
	}
	if queue.Length() != 1 {
		t.Errorf("queue.Length() after Peek = %v; want 1", queue.Length())
	}
}
