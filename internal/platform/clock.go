package platform

import (
	"context"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
)

// processStart anchors NowNanos to the wall clock once, at package
// initialization.
var processStart = time.Now()

// NowNanos returns the current time as a nanosecond count on the Unix
// wall-clock scale, suitable for stamping a Tag's logical time. It is
// processStart's wall-clock reading plus the monotonic time elapsed since
// then, so it is nondecreasing across successive calls even if the wall
// clock is adjusted while the process runs.
func NowNanos() int64 {
	return processStart.UnixNano() + int64(time.Since(processStart))
}

// SleepUntil blocks until wall-clock time reaches deadline, or ctx is
// cancelled. Unlike a single time.Sleep call, it never returns early for
// any reason other than cancellation: each retry recomputes the remaining
// duration from the current time rather than trusting a cached "start"
// value, which is the fix the scheduler's design notes call for against
// the source's buggy relative-timeout computation on Windows.
func SleepUntil(ctx context.Context, deadline time.Time) error {
	backoff := wait.Backoff{
		Duration: 10 * time.Millisecond,
		Factor:   1.5,
		Cap:      time.Second,
		Steps:    1 << 30, // effectively unbounded; the loop exits via the deadline check
	}

	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil
		}

		step := remaining
		if waitStep := backoff.Step(); waitStep < step {
			step = waitStep
		}

		timer := time.NewTimer(step)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			// Re-check time.Until(deadline) on the next loop iteration instead of
			// trusting that the timer fired exactly at or after the deadline.
		}
	}
}
