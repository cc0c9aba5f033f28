package memory

import (
	"sync"
)

// compactAfter bounds how far the head index may run ahead of the backing
// slice before consumed prefix space is reclaimed.
const compactAfter = 64

// Queue implements an unbounded, multi-producer, in-memory FIFO. Enqueueing
// never blocks and dequeueing is a single non-blocking attempt, so a queue
// can back a channel edge that is polled cooperatively alongside many
// others. Elements pushed by one producer are observed in push order.
type Queue[T any] struct {
	mu     sync.Mutex
	items  []T
	head   int
	closed bool
}

// NewQueue creates a new empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends an element to the queue. It panics when the queue has been
// closed: a closed edge means the receiving peer departed unexpectedly,
// which is a protocol violation rather than a recoverable condition.
func (q *Queue[T]) Push(element T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		panic("messaging/memory: push on closed queue")
	}
	q.items = append(q.items, element)
}

// TryPop removes and returns the oldest element. The second result is false
// when the queue is empty; a closed queue still drains its remaining
// elements before reporting empty.
func (q *Queue[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var zero T
	if q.head >= len(q.items) {
		return zero, false
	}
	element := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	if q.head >= compactAfter && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return element, true
}

// Close marks the queue closed. Pending elements remain poppable; further
// pushes panic.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
}

// Len returns the current number of pending elements.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}
