package leveltable_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scusemua/reactor-scheduler/pkg/leveltable"
	"github.com/scusemua/reactor-scheduler/pkg/pqueue"
	"github.com/scusemua/reactor-scheduler/pkg/reaction"
)

var _ = Describe("Table", func() {
	It("allocates one queue per level, defaulting the executing queue to level 0", func() {
		table := leveltable.New(3)
		Expect(table.MaxLevel()).To(Equal(uint32(3)))
		Expect(table.ExecutingQ()).To(BeIdenticalTo(mustAt(table, 0)))
	})

	It("rejects levels beyond MaxLevel", func() {
		table := leveltable.New(1)
		_, err := table.At(2)
		Expect(err).To(HaveOccurred())
	})

	It("lets SetExecutingQ repoint the drain target without affecting ownership", func() {
		table := leveltable.New(2)
		q1 := mustAt(table, 1)
		table.SetExecutingQ(q1)
		Expect(table.ExecutingQ()).To(BeIdenticalTo(q1))

		q1.Insert(reaction.New("r", reaction.Index{Level: 1}, nil))
		Expect(mustAt(table, 1).Size()).To(Equal(1))
	})

	It("frees every per-level queue", func() {
		table := leveltable.New(2)
		mustAt(table, 0).Insert(reaction.New("r", reaction.Index{}, nil))
		table.Free()
		// Free is idempotent and must not panic on a second call.
		table.Free()
	})
})

func mustAt(table *leveltable.Table, level uint32) *pqueue.PriorityQueue {
	q, err := table.At(level)
	Expect(err).NotTo(HaveOccurred())
	return q
}
