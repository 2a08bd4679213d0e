// Package rti defines the collaborator contracts the scheduler calls out to
// (the reactor runtime's event queue and federated RTI, both explicitly out
// of scope for this module), plus a minimal reference implementation of
// them, EventQueue/Simulator, good enough to drive the scheduler end to end
// in tests and the demo command.
package rti

import (
	"context"

	"github.com/scusemua/reactor-scheduler/pkg/reaction"
	"github.com/scusemua/reactor-scheduler/pkg/tag"
)

// TagAdvancer models next_tag_locked(): given the current tag, it blocks
// (for physical time, or a federated clock grant) until the next logical
// tag is ready, pops every event due at that tag, and returns the
// reactions it triggers. The scheduler calls this with its global mutex
// held, per the design notes' "event queue consistency" requirement.
type TagAdvancer interface {
	NextTagLocked(ctx context.Context, current tag.Tag) (next tag.Tag, ready []*reaction.Reaction, err error)
}

// TagCompletionNotifier models logical_tag_complete(tag), the federated RTI
// hook invoked once per completed tag, before the next advance is
// attempted. Only consulted when the scheduler is built with
// Config.Federated set.
type TagCompletionNotifier interface {
	LogicalTagComplete(t tag.Tag)
}
