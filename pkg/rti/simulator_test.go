package rti_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scusemua/reactor-scheduler/pkg/reaction"
	"github.com/scusemua/reactor-scheduler/pkg/rti"
	"github.com/scusemua/reactor-scheduler/pkg/tag"
)

var _ = Describe("Simulator", func() {
	It("returns tag.Forever with no reactions once its event source is exhausted", func() {
		sim := rti.NewSimulator(false, nil)
		next, ready, err := sim.NextTagLocked(context.Background(), tag.Zero)

		Expect(err).NotTo(HaveOccurred())
		Expect(next).To(Equal(tag.Forever))
		Expect(ready).To(BeEmpty())
	})

	It("returns every reaction scheduled at the next due tag", func() {
		sim := rti.NewSimulator(false, nil)
		due := tag.New(time.Unix(0, 10), 0)
		r := reaction.New("r", reaction.Index{}, nil)
		sim.Schedule(due, r)

		next, ready, err := sim.NextTagLocked(context.Background(), tag.Zero)
		Expect(err).NotTo(HaveOccurred())
		Expect(next).To(Equal(due))
		Expect(ready).To(ConsistOf(r))
	})

	It("does not block when realTime is disabled even for a future tag", func() {
		sim := rti.NewSimulator(false, nil)
		due := tag.New(time.Now().Add(time.Hour), 0)
		sim.Schedule(due, reaction.New("r", reaction.Index{}, nil))

		start := time.Now()
		_, _, err := sim.NextTagLocked(context.Background(), tag.Zero)
		Expect(err).NotTo(HaveOccurred())
		Expect(time.Since(start)).To(BeNumerically("<", 100*time.Millisecond))
	})

	It("LogicalTagComplete does not panic without a logger", func() {
		sim := rti.NewSimulator(false, nil)
		Expect(func() { sim.LogicalTagComplete(tag.Zero) }).NotTo(Panic())
	})
})
