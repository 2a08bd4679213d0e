// Package pqueue implements the min-heap of reactions the level table is
// built from. It is grounded on the position-tracking heap used by the
// teacher's cluster index (container/heap.Interface with a Swap that keeps
// each element's own notion of its slot up to date), generalized here from
// a keyed-metadata map (the teacher's Host can sit in several indices at
// once) down to a single int field, since a Reaction is only ever a member
// of one level's queue at a time.
package pqueue

import (
	"container/heap"

	"github.com/scusemua/reactor-scheduler/pkg/reaction"
)

// reactionHeap adapts a slice of reactions to container/heap.Interface.
type reactionHeap []*reaction.Reaction

func (h reactionHeap) Len() int { return len(h) }

func (h reactionHeap) Less(i, j int) bool {
	return h[i].Compare(h[j]) < 0
}

func (h reactionHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].SetPos(i)
	h[j].SetPos(j)
}

func (h *reactionHeap) Push(x interface{}) {
	r := x.(*reaction.Reaction)
	r.SetPos(len(*h))
	*h = append(*h, r)
}

func (h *reactionHeap) Pop() interface{} {
	old := *h
	n := len(old)
	r := old[n-1]
	old[n-1] = nil
	r.SetPos(-1)
	*h = old[:n-1]
	return r
}

var _ heap.Interface = (*reactionHeap)(nil)
