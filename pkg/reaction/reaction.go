// Package reaction defines the unit of work the scheduler dispatches: a
// precedence-ordered, idempotently-triggerable side-effecting function.
package reaction

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a Reaction. The scheduler only ever
// drives inactive -> queued (Trigger) and queued -> inactive (Release);
// StatusRunning is reserved for future preemptive variants and is never
// assigned by this scheduler.
type Status int32

const (
	StatusInactive Status = iota
	StatusQueued
	StatusRunning
)

func (s Status) String() string {
	switch s {
	case StatusInactive:
		return "inactive"
	case StatusQueued:
		return "queued"
	case StatusRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Body is the side-effecting behavior a Reaction performs when dispatched.
type Body func(ctx context.Context) error

// Reaction is an externally defined unit of computation triggered by input
// events at a tag. The scheduler owns only Status and the heap position;
// everything else, including Body, belongs to the reactor runtime that
// created the Reaction.
type Reaction struct {
	ID   uuid.UUID
	Name string
	Idx  Index
	Body Body

	status  atomic.Int32
	heapPos int
}

// New creates a Reaction at the given precedence Index. heapPos starts at
// -1 (not contained in any queue).
func New(name string, idx Index, body Body) *Reaction {
	r := &Reaction{
		ID:      uuid.New(),
		Name:    name,
		Idx:     idx,
		Body:    body,
		heapPos: -1,
	}
	r.status.Store(int32(StatusInactive))
	return r
}

// Status returns the current lifecycle state.
func (r *Reaction) Status() Status {
	return Status(r.status.Load())
}

// TryEnqueue attempts the inactive -> queued transition used by the
// scheduler's Trigger operation. It reports whether the transition
// succeeded; a failed transition means the Reaction is already queued (or
// running) and must not be inserted into the level table a second time.
// This is the choke point that enforces "a reaction appears at most once
// in the level table at any time."
func (r *Reaction) TryEnqueue() bool {
	return r.status.CompareAndSwap(int32(StatusInactive), int32(StatusQueued))
}

// Release performs the queued -> inactive transition used by the
// scheduler's DoneWithReaction operation. It reports whether the
// transition succeeded; the caller treats failure as a fatal invariant
// violation.
func (r *Reaction) Release() bool {
	return r.status.CompareAndSwap(int32(StatusQueued), int32(StatusInactive))
}

// Compare orders two reactions by precedence Index, ascending (smallest
// level, then earliest deadline, pops first).
func (r *Reaction) Compare(other *Reaction) int {
	switch {
	case r.Idx.Less(other.Idx):
		return -1
	case other.Idx.Less(r.Idx):
		return 1
	default:
		return 0
	}
}

// Pos returns the reaction's current slot in whichever priority queue
// contains it, or -1 if it is not currently queued.
func (r *Reaction) Pos() int { return r.heapPos }

// SetPos is called exclusively by pkg/pqueue to maintain the heap-position
// hook required by container/heap's Swap.
func (r *Reaction) SetPos(p int) { r.heapPos = p }

func (r *Reaction) String() string {
	return r.Name
}
