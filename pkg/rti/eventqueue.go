package rti

import (
	"sort"
	"sync"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/scusemua/reactor-scheduler/pkg/reaction"
	"github.com/scusemua/reactor-scheduler/pkg/tag"
)

// EventQueue is a tag-ordered store of pending reactions, generalized from
// a strict FIFO queue to a tag-keyed one: entries are kept in an
// orderedmap so iteration order matches insertion order for events
// scheduled at the same tag, while PopDueBefore re-sorts keys by tag to
// find the next one due, since ScheduleAt calls do not arrive in tag
// order (a reaction executing at tag T may schedule a new event at any
// future tag).
type EventQueue struct {
	mu     sync.Mutex
	events *orderedmap.OrderedMap[tag.Tag, []*reaction.Reaction]
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: orderedmap.NewOrderedMap[tag.Tag, []*reaction.Reaction]()}
}

// ScheduleAt enqueues r to fire at tag t.
func (q *EventQueue) ScheduleAt(t tag.Tag, r *reaction.Reaction) {
	q.mu.Lock()
	defer q.mu.Unlock()

	existing, ok := q.events.Get(t)
	if !ok {
		q.events.Set(t, []*reaction.Reaction{r})
		return
	}
	q.events.Set(t, append(existing, r))
}

// PopDueBefore finds the smallest scheduled tag strictly after current,
// removes it from the queue, and returns it along with the reactions
// scheduled at it. ok is false if no events remain.
func (q *EventQueue) PopDueBefore(current tag.Tag) (next tag.Tag, ready []*reaction.Reaction, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	keys := q.events.Keys()
	if len(keys) == 0 {
		return tag.Zero, nil, false
	}
	sort.Slice(keys, func(i, j int) bool { return tag.Before(keys[i], keys[j]) })

	for _, k := range keys {
		if !tag.After(k, current) {
			continue
		}
		ready, _ = q.events.Get(k)
		q.events.Delete(k)
		return k, ready, true
	}
	return tag.Zero, nil, false
}
