package refresh_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/dramsim/internal/addressmapping"
	"github.com/sarchlab/dramsim/internal/refresh"
	"github.com/sarchlab/dramsim/internal/signal"
)

type fakeChannel struct {
	rankRefreshCalls int
	bankRefreshCalls int
	idleCycles       []int
	sref             []bool
	sefEnterIssued   []bool
}

func newFakeChannel(numRank int) *fakeChannel {
	return &fakeChannel{
		idleCycles:     make([]int, numRank),
		sref:           make([]bool, numRank),
		sefEnterIssued: make([]bool, numRank),
	}
}

func (f *fakeChannel) RankNeedRefresh(rank int, need bool) {
	if need {
		f.rankRefreshCalls++
	}
}

func (f *fakeChannel) BankNeedRefresh(loc addressmapping.Location, need bool) {
	if need {
		f.bankRefreshCalls++
	}
}

func (f *fakeChannel) RankIdleCycles(rank int) int { return f.idleCycles[rank] }

func (f *fakeChannel) IsRankSelfRefreshing(rank int) bool { return f.sref[rank] }

func (f *fakeChannel) GetReadyCommand(cmd *signal.Command) *signal.Command {
	if cmd.Kind == signal.CmdKindSRefEnter {
		return cmd
	}

	return nil
}

func (f *fakeChannel) UpdateTimingAndStates(cmd *signal.Command) {
	if cmd.Kind == signal.CmdKindSRefEnter {
		f.sefEnterIssued[cmd.Rank()] = true
		f.sref[cmd.Rank()] = true
	}
}

var _ = Describe("Clock", func() {
	It("raises a rank-wide refresh need once per interval", func() {
		channel := newFakeChannel(1)
		clock := refresh.NewClock(refresh.RankLevelSimultaneous, 1, 1, 1, 5, false, 0, channel)

		for i := 0; i < 4; i++ {
			clock.Tick()
		}
		Expect(channel.rankRefreshCalls).To(Equal(0))

		clock.Tick()
		Expect(channel.rankRefreshCalls).To(Equal(1))
	})

	It("raises per-bank refresh need under a bank-level staggered policy", func() {
		channel := newFakeChannel(1)
		clock := refresh.NewClock(refresh.BankLevelStaggered, 1, 2, 2, 3, false, 0, channel)

		for i := 0; i < 3; i++ {
			clock.Tick()
		}

		Expect(channel.bankRefreshCalls).To(Equal(2))
	})

	It("enters Self-Refresh once a rank's idle streak passes the threshold", func() {
		channel := newFakeChannel(1)
		channel.idleCycles[0] = 10
		clock := refresh.NewClock(refresh.RankLevelSimultaneous, 1, 1, 1, 1000, true, 8, channel)

		clock.Tick()

		Expect(channel.sefEnterIssued[0]).To(BeTrue())
	})

	It("does not raise a refresh need for a rank that is self-refreshing", func() {
		channel := newFakeChannel(1)
		channel.sref[0] = true
		clock := refresh.NewClock(refresh.RankLevelSimultaneous, 1, 1, 1, 1, false, 0, channel)

		clock.Tick()
		clock.Tick()

		Expect(channel.rankRefreshCalls).To(Equal(0))
	})
})
