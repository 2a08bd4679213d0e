// Package registry tracks which reactions are currently enqueued, purely
// as a debug-mode cross-check of invariant 1 ("a reaction appears at most
// once in the level table at any time"); the status CAS in
// reaction.Reaction is what actually enforces the invariant; this registry
// only lets tests and the race-build assert it from the outside. It is
// grounded on the ConcurrentMap wrapper the teacher builds over
// orcaman/concurrent-map/v2, reworked here around a concrete uuid.UUID key
// instead of a generic comparable type, since this module only ever tracks
// one kind of thing: in-flight reaction IDs.
package registry

import (
	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// InFlight is a concurrency-safe set of reaction IDs currently between
// Trigger and DoneWithReaction.
type InFlight struct {
	ids cmap.ConcurrentMap[string, struct{}]
}

// NewInFlight creates an empty set.
func NewInFlight() *InFlight {
	return &InFlight{ids: cmap.New[struct{}]()}
}

// Add records id as in flight. It reports false if id was already present,
// which signals a double-enqueue, the same condition the status CAS in
// reaction.Reaction is meant to prevent.
func (s *InFlight) Add(id uuid.UUID) bool {
	return s.ids.SetIfAbsent(id.String(), struct{}{})
}

// Remove clears id from the in-flight set.
func (s *InFlight) Remove(id uuid.UUID) {
	s.ids.Remove(id.String())
}

// Len returns the number of reactions currently tracked as in flight.
func (s *InFlight) Len() int {
	return s.ids.Count()
}
