package rti

import (
	"context"
	"time"

	"github.com/Scusemua/go-utils/logger"

	"github.com/scusemua/reactor-scheduler/internal/platform"
	"github.com/scusemua/reactor-scheduler/pkg/reaction"
	"github.com/scusemua/reactor-scheduler/pkg/tag"
)

// Simulator is a minimal stand-in for the reactor runtime's event queue and
// federated RTI, just enough of one to drive the scheduler end to end, not
// a reimplementation of either excluded subsystem. It implements both
// TagAdvancer and TagCompletionNotifier over a single EventQueue.
type Simulator struct {
	queue    *EventQueue
	realTime bool
	log      logger.Logger
}

// NewSimulator creates a Simulator over an empty event queue. When
// realTime is true, NextTagLocked sleeps until wall-clock time reaches a
// tag's logical time before returning it, modeling "wait for physical time
// to catch up"; tests want this disabled so a run completes as fast as the
// reactions themselves allow.
func NewSimulator(realTime bool, log logger.Logger) *Simulator {
	return &Simulator{queue: NewEventQueue(), realTime: realTime, log: log}
}

// Schedule queues r to become ready at tag t. Safe to call concurrently
// with NextTagLocked, matching the source event queue's contract that
// reaction bodies may schedule new events while other reactions run.
func (s *Simulator) Schedule(t tag.Tag, r *reaction.Reaction) {
	s.queue.ScheduleAt(t, r)
}

// NextTagLocked implements rti.TagAdvancer by popping the earliest
// scheduled tag strictly after current. If realTime is set and that tag's
// logical time lies in the future, it blocks until wall-clock time
// catches up, via platform.SleepUntil so it retries correctly on spurious
// wakeups. Returns tag.Forever with no reactions when the queue is
// exhausted, signaling the scheduler to compare current against its
// configured stop tag.
func (s *Simulator) NextTagLocked(ctx context.Context, current tag.Tag) (tag.Tag, []*reaction.Reaction, error) {
	next, ready, ok := s.queue.PopDueBefore(current)
	if !ok {
		return tag.Forever, nil, nil
	}

	if s.realTime {
		deadline := time.Unix(0, next.Time)
		if err := platform.SleepUntil(ctx, deadline); err != nil {
			return tag.Zero, nil, err
		}
	}

	if s.log != nil {
		s.log.Debug("advancing to tag %s with %d ready reaction(s)", next, len(ready))
	}
	return next, ready, nil
}

// LogicalTagComplete implements rti.TagCompletionNotifier. The reference
// simulator has no federated peers to notify; it only logs, matching the
// source's single-process build where this hook is a no-op.
func (s *Simulator) LogicalTagComplete(t tag.Tag) {
	if s.log != nil {
		s.log.Debug("logical tag complete: %s", t)
	}
}
