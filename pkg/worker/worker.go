// Package worker runs the per-worker get/execute/done loop against a
// scheduler.Scheduler.
package worker

import (
	"context"

	"github.com/Scusemua/go-utils/logger"

	"github.com/scusemua/reactor-scheduler/pkg/scheduler"
)

// Worker drives reactions to completion, one at a time, on its own
// goroutine.
type Worker struct {
	ID int

	log logger.Logger
}

// New creates a worker with the given ID, used both for log attribution
// and as the workerID argument threaded through the scheduler's API.
func New(id int, log logger.Logger) *Worker {
	return &Worker{ID: id, log: log}
}

// Run executes get/execute/done until the scheduler reports stop (via a
// nil reaction) or ctx is cancelled. A reaction body returning an error is
// logged and otherwise ignored: the scheduler assumes reaction bodies
// return normally, so error handling here is purely diagnostic.
func (w *Worker) Run(ctx context.Context, sched *scheduler.Scheduler) {
	for {
		r, ok := sched.GetReadyReaction(ctx, w.ID)
		if !ok {
			return
		}

		if err := r.Body(ctx); err != nil && w.log != nil {
			w.log.Error("worker %d: reaction %s returned an error: %v", w.ID, r.Name, err)
		}

		sched.DoneWithReaction(w.ID, r)
	}
}
