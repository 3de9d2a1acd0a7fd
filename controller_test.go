package dramsim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/dramsim/internal/signal"
)

func tickUntilResponse(c *Controller, maxCycles int) (*signal.Transaction, bool) {
	for i := 0; i < maxCycles; i++ {
		c.Tick()

		if t, ok := c.PopResponse(); ok {
			return t, true
		}
	}

	return nil, false
}

var _ = Describe("Controller", func() {
	var c *Controller

	BeforeEach(func() {
		c = MakeBuilder().
			WithNumRank(1).
			WithNumBankGroup(1).
			WithNumBank(4).
			Build("MemCtrl")
	})

	It("completes a single read transaction", func() {
		req := &signal.Transaction{
			Type:           signal.TransactionTypeRead,
			RequestID:      "r0",
			Address:        0x1000,
			AccessByteSize: 64,
		}

		Expect(c.Submit(req)).To(BeTrue())

		done, ok := tickUntilResponse(c, 500)
		Expect(ok).To(BeTrue())
		Expect(done.RequestID).To(Equal("r0"))
	})

	It("completes a write transaction", func() {
		req := &signal.Transaction{
			Type:      signal.TransactionTypeWrite,
			RequestID: "w0",
			Address:   0x2000,
			Data:      []byte{1, 2, 3, 4, 5, 6, 7, 8},
		}

		Expect(c.Submit(req)).To(BeTrue())

		done, ok := tickUntilResponse(c, 500)
		Expect(ok).To(BeTrue())
		Expect(done.RequestID).To(Equal("w0"))
	})

	It("services a row-conflicting read after the first, needing a precharge in between", func() {
		first := &signal.Transaction{
			Type:           signal.TransactionTypeRead,
			RequestID:      "r0",
			Address:        0x0,
			AccessByteSize: 64,
		}
		second := &signal.Transaction{
			Type:           signal.TransactionTypeRead,
			RequestID:      "r1",
			Address:        0x8000000,
			AccessByteSize: 64,
		}

		Expect(c.Submit(first)).To(BeTrue())
		Expect(c.Submit(second)).To(BeTrue())

		completed := map[string]bool{}
		for i := 0; i < 1000 && len(completed) < 2; i++ {
			c.Tick()
			if t, ok := c.PopResponse(); ok {
				completed[t.RequestID] = true
			}
		}

		Expect(completed).To(HaveKey("r0"))
		Expect(completed).To(HaveKey("r1"))
	})

	It("reports backpressure when the sub-transaction queue is full", func() {
		small := MakeBuilder().
			WithNumRank(1).
			WithNumBankGroup(1).
			WithNumBank(1).
			WithTransactionQueueSize(1).
			Build("Small")

		first := &signal.Transaction{
			Type:           signal.TransactionTypeRead,
			RequestID:      "r0",
			Address:        0x0,
			AccessByteSize: 64,
		}
		second := &signal.Transaction{
			Type:           signal.TransactionTypeRead,
			RequestID:      "r1",
			Address:        0x100,
			AccessByteSize: 64,
		}

		Expect(small.Submit(first)).To(BeTrue())
		Expect(small.Submit(second)).To(BeFalse())
	})
})
