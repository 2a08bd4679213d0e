package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"

	"github.com/scusemua/reactor-scheduler/pkg/scheduler"
)

// Pool owns the fixed-size set of Workers that drain a Scheduler. Its
// running/closed shape mirrors the reference corpus's background-loop
// components: an atomic guard against a double Start, a goroutine per
// worker, and a WaitGroup Stop waits on for clean shutdown.
type Pool struct {
	sched   *scheduler.Scheduler
	workers []*Worker

	running atomic.Bool
	wg      sync.WaitGroup

	log logger.Logger
}

// NewPool builds a Pool of n workers bound to sched. Workers are not
// started until Start is called.
func NewPool(n int, sched *scheduler.Scheduler) *Pool {
	p := &Pool{sched: sched}
	config.InitLogger(&p.log, p)

	p.workers = make([]*Worker, n)
	for i := range p.workers {
		p.workers[i] = New(i, p.log)
	}
	return p
}

// Start spawns one goroutine per worker. Calling Start on an already
// running Pool is a no-op.
func (p *Pool) Start(ctx context.Context) {
	if !p.running.CompareAndSwap(false, true) {
		p.log.Warn("worker pool is already running")
		return
	}

	p.wg.Add(len(p.workers))
	for _, w := range p.workers {
		w := w
		go func() {
			defer p.wg.Done()
			w.Run(ctx, p.sched)
		}()
	}
}

// Stop blocks until every worker goroutine has returned or ctx is done. It
// does not signal the scheduler: ctx's cancellation, or the scheduler
// itself stopping first (e.g. because advanceTagLocked reported stop), is
// what actually unblocks GetReadyReaction; Stop's own job is just to wait.
func (p *Pool) Stop(ctx context.Context) {
	if !p.running.CompareAndSwap(true, false) {
		return
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		p.log.Warn("worker pool stop timed out waiting for workers to exit")
	}
}
