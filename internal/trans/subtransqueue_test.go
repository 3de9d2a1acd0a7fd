package trans_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/dramsim/internal/addressmapping"
	"github.com/sarchlab/dramsim/internal/bankstate"
	"github.com/sarchlab/dramsim/internal/channelstate"
	"github.com/sarchlab/dramsim/internal/cmdqueue"
	"github.com/sarchlab/dramsim/internal/dramtiming"
	"github.com/sarchlab/dramsim/internal/signal"
	"github.com/sarchlab/dramsim/internal/trans"
)

var _ = Describe("FCFSSubTransactionQueue", func() {
	It("admits sub-transactions in order into the command queue", func() {
		mapper := addressmapping.MakeBuilder().
			WithBurstLength(8).
			WithBusWidth(64).
			WithNumChannel(1).
			WithNumRank(1).
			WithNumBankGroup(1).
			WithNumBank(2).
			WithNumRow(1 << 14).
			WithNumCol(1 << 10).
			Build()

		grid := [][][]bankstate.Bank{{{
			bankstate.NewBankImpl("Bank0"),
			bankstate.NewBankImpl("Bank1"),
		}}}
		channel := channelstate.NewChannelImpl(channelstate.Config{
			NumRank: 1, NumBankGroup: 1, NumBank: 2,
			Timing: dramtiming.MakeTiming(),
		}, grid)
		cq := cmdqueue.NewCommandQueueImpl(cmdqueue.PerBank, 1, 1, 2, 8, channel)

		queue := &trans.FCFSSubTransactionQueue{
			Capacity:   4,
			CmdQueue:   cq,
			CmdCreator: &trans.ClosePageCommandCreator{AddrMapper: mapper},
		}

		Expect(queue.CanPush(2)).To(BeTrue())

		transaction := &signal.Transaction{Type: signal.TransactionTypeRead, Address: 0, AccessByteSize: 128}
		splitter := trans.NewSubTransSplitter(6)
		splitter.Split(transaction)
		queue.Push(transaction)

		Expect(queue.Tick()).To(BeTrue())
		Expect(queue.Tick()).To(BeTrue())
		Expect(queue.Tick()).To(BeFalse())
	})
})
