package rti_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scusemua/reactor-scheduler/pkg/reaction"
	"github.com/scusemua/reactor-scheduler/pkg/rti"
	"github.com/scusemua/reactor-scheduler/pkg/tag"
)

var _ = Describe("EventQueue", func() {
	It("is empty on creation", func() {
		q := rti.NewEventQueue()

		_, _, ok := q.PopDueBefore(tag.Zero)
		Expect(ok).To(BeFalse())
	})

	It("pops the earliest scheduled tag strictly after current", func() {
		q := rti.NewEventQueue()
		base := time.Unix(0, 1000)

		t1 := tag.New(base, 0)
		t2 := tag.New(base.Add(time.Second), 0)

		r1 := reaction.New("r1", reaction.Index{}, nil)
		r2 := reaction.New("r2", reaction.Index{}, nil)

		q.ScheduleAt(t2, r2)
		q.ScheduleAt(t1, r1)

		next, ready, ok := q.PopDueBefore(tag.Zero)
		Expect(ok).To(BeTrue())
		Expect(next).To(Equal(t1))
		Expect(ready).To(ConsistOf(r1))

		next, ready, ok = q.PopDueBefore(next)
		Expect(ok).To(BeTrue())
		Expect(next).To(Equal(t2))
		Expect(ready).To(ConsistOf(r2))

		_, _, ok = q.PopDueBefore(next)
		Expect(ok).To(BeFalse())
	})

	It("groups multiple reactions scheduled at the same tag", func() {
		q := rti.NewEventQueue()
		t := tag.New(time.Unix(0, 1), 0)

		r1 := reaction.New("r1", reaction.Index{}, nil)
		r2 := reaction.New("r2", reaction.Index{}, nil)

		q.ScheduleAt(t, r1)
		q.ScheduleAt(t, r2)

		_, ready, ok := q.PopDueBefore(tag.Zero)
		Expect(ok).To(BeTrue())
		Expect(ready).To(ConsistOf(r1, r2))
	})
})
