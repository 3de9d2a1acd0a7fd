package cmdqueue_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/dramsim/internal/addressmapping"
	"github.com/sarchlab/dramsim/internal/cmdqueue"
	"github.com/sarchlab/dramsim/internal/signal"
)

var _ = Describe("CommandQueueImpl against a mocked Channel", func() {
	var (
		mockCtrl *gomock.Controller
		channel  *MockChannel
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		channel = NewMockChannel(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("skips a queue entry the channel reports as not ready", func() {
		queue := cmdqueue.NewCommandQueueImpl(cmdqueue.PerBank, 1, 1, 1, 4, channel)

		loc := addressmapping.Location{Row: 1}
		cmd := &signal.Command{
			Kind:           signal.CmdKindReadPrecharge,
			Location:       loc,
			SubTransaction: &signal.SubTransaction{},
		}
		queue.AddCommand(cmd)

		channel.EXPECT().GetReadyCommand(cmd).Return(nil)

		Expect(queue.GetCommandToIssue()).To(BeNil())
	})

	It("issues and erases a non-synthesized entry once the channel reports it ready", func() {
		queue := cmdqueue.NewCommandQueueImpl(cmdqueue.PerBank, 1, 1, 1, 4, channel)

		loc := addressmapping.Location{Row: 1}
		cmd := &signal.Command{
			Kind:           signal.CmdKindReadPrecharge,
			Location:       loc,
			SubTransaction: &signal.SubTransaction{},
		}
		queue.AddCommand(cmd)

		channel.EXPECT().GetReadyCommand(cmd).Return(cmd)

		Expect(queue.GetCommandToIssue()).To(BeIdenticalTo(cmd))
		Expect(queue.GetCommandToIssue()).To(BeNil())
	})
})
