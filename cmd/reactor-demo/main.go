// Command reactor-demo builds a small toy reactor graph and runs it
// through the scheduler against pkg/rti.Simulator, exercising every
// public scheduler/worker operation in one process.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Scusemua/go-utils/config"
	"github.com/pkg/errors"

	"github.com/scusemua/reactor-scheduler/pkg/reaction"
	"github.com/scusemua/reactor-scheduler/pkg/rti"
	"github.com/scusemua/reactor-scheduler/pkg/scheduler"
	"github.com/scusemua/reactor-scheduler/pkg/tag"
	"github.com/scusemua/reactor-scheduler/pkg/worker"
)

// Options is the demo driver's flag-parsed configuration, embedding the
// scheduler's own options struct the way the reference corpus's top-level
// driver options embed their component's options.
type Options struct {
	scheduler.Config

	NumTags int `name:"num_tags" json:"num_tags" yaml:"num_tags" description:"Number of logical tags to run the demo reactor graph through."`
}

func (o *Options) Validate() error {
	if o.NumTags <= 0 {
		return fmt.Errorf("num_tags must be positive, got %d", o.NumTags)
	}
	return o.Config.Validate()
}

var (
	options      = Options{Config: scheduler.Config{NumberOfWorkers: 4, MaxReactionLevel: 2}, NumTags: 5}
	globalLogger = config.GetLogger("")
	sig          = make(chan os.Signal, 1)
)

func init() {
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
}

func validateOptions() {
	flags, err := config.ValidateOptions(&options)
	if errors.Is(err, config.ErrPrintUsage) {
		flags.PrintDefaults()
		os.Exit(0)
	} else if err != nil {
		globalLogger.Error("invalid options: %v", err)
		os.Exit(1)
	}
}

// buildGraph schedules one reaction per level for each of the first
// numTags logical tags, so every level of the table sees traffic on every
// tag advance.
func buildGraph(sim *rti.Simulator, maxLevel uint32, numTags int) {
	for i := 0; i < numTags; i++ {
		i := i
		t := tag.New(time.Now().Add(time.Duration(i)*10*time.Millisecond), 0)
		for level := uint32(0); level <= maxLevel; level++ {
			level := level
			idx := reaction.Index{Level: level, Deadline: uint32(i)}
			r := reaction.New(fmt.Sprintf("tag-%d/level-%d", i, level), idx, func(ctx context.Context) error {
				globalLogger.Debug("executing reaction at level %d for tag iteration %d", level, i)
				return nil
			})
			sim.Schedule(t, r)
		}
	}
}

func main() {
	validateOptions()

	globalLogger.Info("Starting reactor-demo with %d worker(s), max level %d, %d tag(s).",
		options.NumberOfWorkers, options.MaxReactionLevel, options.NumTags)

	sim := rti.NewSimulator(false, globalLogger)
	buildGraph(sim, options.MaxReactionLevel, options.NumTags)

	sched, err := scheduler.New(options.Config, sim,
		scheduler.WithLogger(globalLogger),
		scheduler.WithNotifier(sim),
		scheduler.WithMetrics(scheduler.NewMetrics(nil)),
	)
	if err != nil {
		globalLogger.Error("failed to build scheduler: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := worker.NewPool(options.NumberOfWorkers, sched)
	pool.Start(ctx)

	var done sync.WaitGroup
	done.Add(1)
	go func() {
		defer done.Done()
		select {
		case <-sig:
			globalLogger.Info("received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	pool.Stop(ctx)
	sched.Shutdown()
	cancel()
	done.Wait()

	globalLogger.Info("reactor-demo finished.")
}
