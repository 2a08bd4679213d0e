package pqueue_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scusemua/reactor-scheduler/pkg/pqueue"
	"github.com/scusemua/reactor-scheduler/pkg/reaction"
)

var _ = Describe("PriorityQueue", func() {
	var q *pqueue.PriorityQueue

	BeforeEach(func() {
		q = pqueue.New(4)
	})

	It("starts empty", func() {
		Expect(q.Size()).To(Equal(0))
		_, ok := q.Pop()
		Expect(ok).To(BeFalse())
	})

	It("pops in ascending index order regardless of insertion order", func() {
		deadlines := []uint32{5, 1, 3, 0, 4, 2}
		for _, d := range deadlines {
			q.Insert(reaction.New("r", reaction.Index{Level: 0, Deadline: d}, nil))
		}

		var popped []uint32
		for q.Size() > 0 {
			r, ok := q.Pop()
			Expect(ok).To(BeTrue())
			popped = append(popped, r.Idx.Deadline)
		}

		Expect(popped).To(Equal([]uint32{0, 1, 2, 3, 4, 5}))
	})

	It("orders by level before deadline", func() {
		q.Insert(reaction.New("high-level", reaction.Index{Level: 5, Deadline: 0}, nil))
		q.Insert(reaction.New("low-level", reaction.Index{Level: 0, Deadline: 100}, nil))

		r, ok := q.Pop()
		Expect(ok).To(BeTrue())
		Expect(r.Name).To(Equal("low-level"))
	})

	It("maintains the heap invariant under random insert/pop workloads", func() {
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 200; i++ {
			q.Insert(reaction.New("r", reaction.Index{Level: uint32(rng.Intn(8)), Deadline: uint32(rng.Intn(1000))}, nil))
			Expect(q.VerifyOrder()).To(BeTrue())
			if rng.Intn(3) == 0 {
				q.Pop()
				Expect(q.VerifyOrder()).To(BeTrue())
			}
		}
	})

	It("frees its backing storage", func() {
		q.Insert(reaction.New("r", reaction.Index{}, nil))
		q.Free()
		Expect(q.Size()).To(Equal(0))
	})
})
