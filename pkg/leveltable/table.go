// Package leveltable holds the fixed-size sequence of per-level priority
// queues the scheduler drains one level at a time. It is grounded on the
// source scheduler's `vector_of_reaction_qs` array, generalized from a
// C-style fixed array to a Go slice sized once at construction.
package leveltable

import (
	"fmt"

	"github.com/scusemua/reactor-scheduler/pkg/pqueue"
)

const initialQueueCapacity = 16

// Table is an indexable sequence of MaxLevel+1 priority queues, one per
// precedence level. It owns every per-level queue; ExecutingQ only ever
// holds a non-owning reference into the table, resolving the source's
// "aliasing between executing_q and Q[0]" FIXME around freeing memory.
type Table struct {
	queues     []*pqueue.PriorityQueue
	executing  *pqueue.PriorityQueue
	maxLevel   uint32
}

// New builds a Table with queues for levels [0, maxLevel], with the
// executing queue starting at Q[0], matching the source's
// `executing_q = vector_of_reaction_qs[0]` initialization.
func New(maxLevel uint32) *Table {
	t := &Table{
		queues:   make([]*pqueue.PriorityQueue, maxLevel+1),
		maxLevel: maxLevel,
	}
	for l := range t.queues {
		t.queues[l] = pqueue.New(initialQueueCapacity)
	}
	t.executing = t.queues[0]
	return t
}

// MaxLevel returns the highest valid level index.
func (t *Table) MaxLevel() uint32 { return t.maxLevel }

// At returns the queue for the given level, or a capacity-exceeded error
// if level is out of range. This is a configuration error per the
// scheduler's error taxonomy, not a recoverable condition.
func (t *Table) At(level uint32) (*pqueue.PriorityQueue, error) {
	if level > t.maxLevel {
		return nil, fmt.Errorf("level %d exceeds configured max reaction level %d", level, t.maxLevel)
	}
	return t.queues[level], nil
}

// ExecutingQ returns the queue currently being drained by workers.
func (t *Table) ExecutingQ() *pqueue.PriorityQueue { return t.executing }

// SetExecutingQ repoints the drain target. It does not transfer ownership:
// t still frees every Q[L] in Free.
func (t *Table) SetExecutingQ(q *pqueue.PriorityQueue) { t.executing = q }

// Free releases every per-level queue. Idempotent.
func (t *Table) Free() {
	for _, q := range t.queues {
		if q != nil {
			q.Free()
		}
	}
	t.executing = nil
}
