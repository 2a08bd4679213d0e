// Package scheduler implements the Global Earliest-Deadline-First,
// non-preemptive reaction scheduler: a fixed-size table of per-level
// priority queues drained one level at a time by a pool of worker
// goroutines, coordinated by whichever worker goes idle last.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"
	"github.com/pkg/errors"

	"github.com/scusemua/reactor-scheduler/internal/platform"
	"github.com/scusemua/reactor-scheduler/internal/registry"
	"github.com/scusemua/reactor-scheduler/pkg/leveltable"
	"github.com/scusemua/reactor-scheduler/pkg/reaction"
	"github.com/scusemua/reactor-scheduler/pkg/rti"
	"github.com/scusemua/reactor-scheduler/pkg/tag"
)

// ErrInvariantViolated is the fatal error DoneWithReaction panics with when
// a reaction's status was not queued, for example because it was never
// triggered or was handed to two workers at once. With WithDebugChecks set,
// Trigger also returns it for a reaction the in-flight registry already
// holds.
var ErrInvariantViolated = errors.New("reaction status invariant violated: status was not queued")

// Scheduler is the GEDF non-preemptive scheduler core. All exported
// methods are safe for concurrent use by the worker pool.
type Scheduler struct {
	cfg Config

	levels *leveltable.Table

	// executingQMu and globalMu are never held simultaneously; see
	// GetReadyReaction, distributeReady and Trigger for the only places that
	// lock executingQMu, and tryAdvanceOrDistribute for the only place that
	// locks globalMu (around advanceTagLocked, which mutates level-table
	// state through Trigger while nextLevel is 0, so Trigger never takes
	// executingQMu there).
	executingQMu sync.Mutex
	globalMu     sync.Mutex

	currentTag   tag.Tag
	stopTag      tag.Tag
	tagCompleted bool

	idleWorkers atomic.Int32
	nextLevel   atomic.Int32
	stop        atomic.Bool

	sem      *platform.Semaphore
	advancer rti.TagAdvancer
	notifier rti.TagCompletionNotifier

	debugChecks bool
	inFlight    *registry.InFlight

	log     logger.Logger
	metrics *Metrics

	shutdownOnce sync.Once
}

// New builds and initializes a Scheduler: it allocates the level table,
// creates the idle-worker semaphore with zero permits, and clears stop.
// advancer is the required external next_tag_locked collaborator. The
// stop tag defaults to tag.Forever (run until the advancer's event queue
// is exhausted); pass WithStopTag to bound the run explicitly.
func New(cfg Config, advancer rti.TagAdvancer, opts ...Option) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid scheduler configuration")
	}
	if advancer == nil {
		return nil, errors.New("advancer must not be nil")
	}

	s := &Scheduler{
		cfg:      cfg,
		levels:   leveltable.New(cfg.MaxReactionLevel),
		sem:      platform.NewSemaphore(0),
		advancer: advancer,
		stopTag:  tag.Forever,
		inFlight: registry.NewInFlight(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		config.InitLogger(&s.log, s)
	}

	return s, nil
}

// Shutdown frees the level table queues. Idempotent; safe to call more
// than once or concurrently with itself.
func (s *Scheduler) Shutdown() {
	s.shutdownOnce.Do(func() {
		s.stop.Store(true)
		s.levels.Free()
	})
}

// Trigger marks r ready to run. If r's status is not inactive (it is
// already queued or, in a future extension, running), this is a silent
// no-op, matching the source's "CAS fails, do nothing" contract: a
// reaction cannot be queued twice. No wake-up is issued; workers observe
// the reaction the next time their level is drained. A level above the
// configured MaxReactionLevel is a configuration error and panics.
// workerID is -1 for anonymous callers, as when advanceTagLocked triggers
// the reactions of a new tag.
func (s *Scheduler) Trigger(r *reaction.Reaction, workerID int) error {
	if r == nil {
		return nil
	}
	if !r.TryEnqueue() {
		return nil
	}

	level := r.Idx.Level
	q, err := s.levels.At(level)
	if err != nil {
		panic(errors.Wrapf(err, "trigger of reaction %s", r.Name))
	}

	if s.debugChecks && !s.inFlight.Add(r.ID) {
		r.Release()
		return errors.Wrapf(ErrInvariantViolated, "reaction %s already in flight", r.Name)
	}

	drainLevel := s.nextLevel.Load() - 1
	if s.cfg.Federated && drainLevel >= 0 && level == uint32(drainLevel) {
		s.executingQMu.Lock()
		q.Insert(r)
		s.executingQMu.Unlock()
		return nil
	}

	q.Insert(r)
	return nil
}

// GetReadyReaction blocks until a reaction is available at the level
// currently being drained, or the scheduler has stopped, in which case it
// returns (nil, false).
func (s *Scheduler) GetReadyReaction(ctx context.Context, workerID int) (*reaction.Reaction, bool) {
	for !s.stop.Load() {
		s.executingQMu.Lock()
		r, ok := s.levels.ExecutingQ().Pop()
		s.executingQMu.Unlock()
		if ok {
			return r, true
		}

		if err := s.waitForWork(ctx, workerID); err != nil {
			return nil, false
		}
	}
	return nil, false
}

// DoneWithReaction releases r back to the inactive state. A failed CAS
// means r's status was not queued (r was never triggered, or two workers
// picked up the same reaction), violating the scheduler's core invariant,
// which is fatal.
func (s *Scheduler) DoneWithReaction(workerID int, r *reaction.Reaction) {
	if s.debugChecks {
		s.inFlight.Remove(r.ID)
	}
	if !r.Release() {
		panic(errors.Wrapf(ErrInvariantViolated, "worker %d, reaction %s", workerID, r.Name))
	}
}

// waitForWork implements the idle-coordination protocol: the worker that
// observes itself as the last to go idle becomes the coordinator and
// drives try_advance_or_distribute instead of blocking on the semaphore.
func (s *Scheduler) waitForWork(ctx context.Context, workerID int) error {
	old := s.idleWorkers.Add(1) - 1
	s.metrics.setIdleWorkers(old + 1)

	if int(old) == s.cfg.NumberOfWorkers-1 {
		return s.tryAdvanceOrDistribute(ctx)
	}
	return s.sem.Acquire(ctx)
}

// tryAdvanceOrDistribute is run only by the coordinator (the last worker
// to go idle). It alternates between advancing the logical tag and
// distributing the next nonempty level until it either has reactions to
// hand out or the scheduler has been told to stop.
func (s *Scheduler) tryAdvanceOrDistribute(ctx context.Context) error {
	for {
		if uint32(s.nextLevel.Load()) > s.levels.MaxLevel() {
			s.nextLevel.Store(0)

			s.globalMu.Lock()
			stop, err := s.advanceTagLocked(ctx)
			if err != nil {
				s.globalMu.Unlock()
				return err
			}
			if stop {
				s.stop.Store(true)
				if n := s.cfg.NumberOfWorkers; n > 1 {
					s.sem.Release(n - 1)
				}
				s.globalMu.Unlock()
				return nil
			}
			s.globalMu.Unlock()
			continue
		}

		k := s.distributeReady()
		if k > 0 {
			idle := s.idleWorkers.Load()
			workersToWake := int32(k)
			if idle < workersToWake {
				workersToWake = idle
			}
			s.idleWorkers.Add(-workersToWake)
			s.metrics.setIdleWorkers(s.idleWorkers.Load())
			if workersToWake > 1 {
				s.sem.Release(int(workersToWake) - 1)
			}
			return nil
		}
	}
}

// distributeReady scans forward from nextLevel for the smallest level with
// a nonempty queue, makes it the executing queue, and returns its size.
// If every remaining level is empty it leaves nextLevel at MAX_LEVEL+1
// before returning 0, so the outer loop's "nextLevel > MAX_LEVEL" check
// reliably re-triggers a tag advance on its next pass instead of spinning
// at this level forever, the same effect the source gets for free from
// its for-loop's per-iteration increment running all the way to
// MAX_REACTION_LEVEL+1 on a failed scan.
func (s *Scheduler) distributeReady() int {
	start := uint32(s.nextLevel.Load())
	for l := start; l <= s.levels.MaxLevel(); l++ {
		q, err := s.levels.At(l)
		if err != nil {
			break
		}
		if size := q.Size(); size > 0 {
			s.executingQMu.Lock()
			s.levels.SetExecutingQ(q)
			s.executingQMu.Unlock()
			s.nextLevel.Store(int32(l) + 1)
			s.metrics.setQueueDepth(l, size)
			return size
		}
	}
	s.nextLevel.Store(int32(s.levels.MaxLevel()) + 1)
	return 0
}

// advanceTagLocked implements next_tag_locked's caller contract: the
// global mutex is held throughout, including across the external
// advancer.NextTagLocked call, to keep the event queue and tag variables
// consistent with triggers arriving concurrently from reaction bodies.
func (s *Scheduler) advanceTagLocked(ctx context.Context) (stop bool, err error) {
	if s.tagCompleted {
		if s.cfg.Federated && s.notifier != nil {
			s.notifier.LogicalTagComplete(s.currentTag)
		}
		if !tag.Before(s.currentTag, s.stopTag) {
			return true, nil
		}
	}

	s.tagCompleted = true

	next, ready, err := s.advancer.NextTagLocked(ctx, s.currentTag)
	if err != nil {
		return false, fmt.Errorf("next_tag_locked: %w", err)
	}
	s.currentTag = next

	for _, r := range ready {
		if err := s.Trigger(r, -1); err != nil {
			return false, err
		}
	}

	s.metrics.incTagsAdvanced()
	return false, nil
}
