package worker_test

import (
	"context"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/scusemua/reactor-scheduler/pkg/reaction"
	"github.com/scusemua/reactor-scheduler/pkg/rti/mock_rti"
	"github.com/scusemua/reactor-scheduler/pkg/scheduler"
	"github.com/scusemua/reactor-scheduler/pkg/tag"
	"github.com/scusemua/reactor-scheduler/pkg/worker"
)

var _ = Describe("Worker", func() {
	It("runs a reaction's body to completion and releases it", func() {
		ctrl := gomock.NewController(GinkgoT())
		defer ctrl.Finish()

		t0 := tag.New(time.Now(), 0)

		var ran atomic.Bool
		r := reaction.New("r", reaction.Index{}, func(ctx context.Context) error {
			ran.Store(true)
			return nil
		})

		advancer := mock_rti.NewMockTagAdvancer(ctrl)
		advancer.EXPECT().
			NextTagLocked(gomock.Any(), gomock.Any()).
			Return(t0, []*reaction.Reaction{r}, nil).
			Times(1)

		sched, err := scheduler.New(
			scheduler.Config{NumberOfWorkers: 1, MaxReactionLevel: 0},
			advancer,
			scheduler.WithStopTag(t0),
		)
		Expect(err).NotTo(HaveOccurred())
		defer sched.Shutdown()

		w := worker.New(0, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		done := make(chan struct{})
		go func() {
			w.Run(ctx, sched)
			close(done)
		}()

		Eventually(done, time.Second).Should(BeClosed())
		Expect(ran.Load()).To(BeTrue())
		Expect(r.Status()).To(Equal(reaction.StatusInactive))
	})

	It("returns when the scheduler stops without having executed anything", func() {
		ctrl := gomock.NewController(GinkgoT())
		defer ctrl.Finish()

		t0 := tag.New(time.Now(), 0)

		advancer := mock_rti.NewMockTagAdvancer(ctrl)
		advancer.EXPECT().
			NextTagLocked(gomock.Any(), gomock.Any()).
			Return(t0, nil, nil).
			Times(1)

		sched, err := scheduler.New(
			scheduler.Config{NumberOfWorkers: 1, MaxReactionLevel: 0},
			advancer,
			scheduler.WithStopTag(t0),
		)
		Expect(err).NotTo(HaveOccurred())
		defer sched.Shutdown()

		w := worker.New(0, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		done := make(chan struct{})
		go func() {
			w.Run(ctx, sched)
			close(done)
		}()

		Eventually(done, time.Second).Should(BeClosed())
	})
})
