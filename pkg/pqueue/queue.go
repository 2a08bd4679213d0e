package pqueue

import (
	"container/heap"

	"github.com/scusemua/reactor-scheduler/pkg/reaction"
)

// PriorityQueue is a min-heap over reactions keyed by precedence Index.
// It performs no internal locking: the level table and scheduler own
// synchronization around whichever queue is the current drain target.
type PriorityQueue struct {
	h reactionHeap
}

// New creates an empty PriorityQueue with the given initial capacity.
func New(initialCapacity int) *PriorityQueue {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &PriorityQueue{h: make(reactionHeap, 0, initialCapacity)}
}

// Insert adds r to the queue in O(log n).
func (q *PriorityQueue) Insert(r *reaction.Reaction) {
	heap.Push(&q.h, r)
}

// Pop removes and returns the dominating reaction in O(log n), or reports
// ok == false if the queue is empty.
func (q *PriorityQueue) Pop() (r *reaction.Reaction, ok bool) {
	if len(q.h) == 0 {
		return nil, false
	}
	return heap.Pop(&q.h).(*reaction.Reaction), true
}

// Size returns the number of reactions currently queued.
func (q *PriorityQueue) Size() int {
	return len(q.h)
}

// Free drops the backing storage. The queue must not be used afterward.
func (q *PriorityQueue) Free() {
	q.h = nil
}

// VerifyOrder reports whether the heap invariant still holds; exposed for
// tests, which check it after every insert and pop of a random workload.
func (q *PriorityQueue) VerifyOrder() bool {
	n := len(q.h)
	for i := 0; i < n; i++ {
		left, right := 2*i+1, 2*i+2
		if left < n && q.h.Less(left, i) {
			return false
		}
		if right < n && q.h.Less(right, i) {
			return false
		}
	}
	return true
}
