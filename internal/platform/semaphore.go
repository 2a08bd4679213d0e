// Package platform supplies the handful of synchronization primitives Go's
// standard library does not ship out of the box: a counting semaphore and
// a bounded, deadline-aware sleep. Raw mutual exclusion, condition
// variables, and atomic compare-and-swap are used directly from sync and
// sync/atomic throughout this module; no file in the reference corpus
// wraps those stdlib types, and wrapping them here would add a layer the
// corpus itself never reaches for.
package platform

import (
	"context"
	"math"

	"golang.org/x/sync/semaphore"
)

// semaphoreCapacity bounds how many permits a Semaphore can ever hold
// outstanding. The scheduler never needs more outstanding permits than
// there are worker goroutines, so this ceiling is never approached in
// practice; it exists because Weighted requires a fixed capacity up front.
const semaphoreCapacity = math.MaxInt32

// Semaphore is a counting semaphore used to park idle workers until the
// scheduler's coordinator has work (or termination) to hand out. It wraps
// golang.org/x/sync/semaphore.Weighted with a fixed weight of 1 per permit,
// matching the init(count)/acquire/release(n) contract of a platform
// counting semaphore.
type Semaphore struct {
	w *semaphore.Weighted
}

// NewSemaphore creates a semaphore with the given number of permits
// immediately available (normally 0, since the scheduler starts with no
// idle workers to wake). It pre-consumes the unused capacity so that
// exactly initialPermits can be acquired before a caller blocks.
func NewSemaphore(initialPermits int64) *Semaphore {
	w := semaphore.NewWeighted(semaphoreCapacity)
	if unused := int64(semaphoreCapacity) - initialPermits; unused > 0 {
		_ = w.Acquire(context.Background(), unused)
	}
	return &Semaphore{w: w}
}

// Acquire blocks until a permit is available or ctx is cancelled.
func (s *Semaphore) Acquire(ctx context.Context) error {
	return s.w.Acquire(ctx, 1)
}

// Release returns n permits to the semaphore, waking up to n waiters.
func (s *Semaphore) Release(n int) {
	if n <= 0 {
		return
	}
	s.w.Release(int64(n))
}
