package scheduler

import (
	"github.com/Scusemua/go-utils/logger"

	"github.com/scusemua/reactor-scheduler/pkg/rti"
	"github.com/scusemua/reactor-scheduler/pkg/tag"
)

// Option configures optional Scheduler collaborators at construction time,
// generalizing the WithX(...) *builder chain the reference corpus uses for
// its scheduler builder into the functional-options idiom, since Scheduler
// has no required fields beyond the two New already takes positionally.
type Option func(*Scheduler)

// WithNotifier attaches the federated RTI's logical_tag_complete hook.
// Ignored unless Config.Federated is set.
func WithNotifier(n rti.TagCompletionNotifier) Option {
	return func(s *Scheduler) {
		s.notifier = n
	}
}

// WithLogger overrides the scheduler's logger, which otherwise defaults to
// one built from Config.LoggerOptions.
func WithLogger(log logger.Logger) Option {
	return func(s *Scheduler) {
		s.log = log
	}
}

// WithMetrics attaches a prometheus-backed metrics recorder. Without this
// option the scheduler runs metrics-free; every call site nil-checks
// s.metrics before touching it.
func WithMetrics(m *Metrics) Option {
	return func(s *Scheduler) {
		s.metrics = m
	}
}

// WithStopTag bounds the run: advanceTagLocked reports stop once
// currentTag reaches or passes t. Defaults to tag.Forever, meaning run
// until the advancer's event queue is exhausted.
func WithStopTag(t tag.Tag) Option {
	return func(s *Scheduler) {
		s.stopTag = t
	}
}

// WithDebugChecks enables the in-flight reaction registry that
// cross-checks the queued/inactive invariant from the outside, for tests
// and race-build diagnostics. Production builds normally omit this: the
// status CAS in reaction.Reaction already enforces the invariant without
// the extra map traffic.
func WithDebugChecks() Option {
	return func(s *Scheduler) {
		s.debugChecks = true
	}
}
