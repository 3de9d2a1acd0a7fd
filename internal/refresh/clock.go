package refresh

import (
	"github.com/sarchlab/dramsim/internal/addressmapping"
	"github.com/sarchlab/dramsim/internal/signal"
)

// Channel is the subset of channelstate.Channel the refresh clock
// drives. Declared locally for the same one-way-dependency reason as
// cmdqueue.Channel.
type Channel interface {
	RankNeedRefresh(rank int, need bool)
	BankNeedRefresh(loc addressmapping.Location, need bool)
	RankIdleCycles(rank int) int
	IsRankSelfRefreshing(rank int) bool
	GetReadyCommand(cmd *signal.Command) *signal.Command
	UpdateTimingAndStates(cmd *signal.Command)
}

// Clock fires refresh orders into a Channel at the configured
// interval and, when enabled, drives Self-Refresh entry once a rank
// has idled past its threshold.
type Clock struct {
	Policy         Policy
	NumRank        int
	NumBankGroup   int
	NumBank        int
	IntervalCycles int

	EnableSelfRefresh bool
	SrefThreshold     int

	Channel Channel

	cyclesSinceRefresh []int
	staggerCursor      []int
}

// NewClock builds a Clock, staggering each rank's initial phase across
// the interval when policy is RankLevelStaggered so ranks never fall
// due for refresh on the same cycle.
func NewClock(policy Policy, numRank, numBankGroup, numBank, intervalCycles int, enableSelfRefresh bool, srefThreshold int, channel Channel) *Clock {
	c := &Clock{
		Policy:            policy,
		NumRank:           numRank,
		NumBankGroup:      numBankGroup,
		NumBank:           numBank,
		IntervalCycles:    intervalCycles,
		EnableSelfRefresh: enableSelfRefresh,
		SrefThreshold:     srefThreshold,
		Channel:           channel,
	}

	c.cyclesSinceRefresh = make([]int, numRank)
	c.staggerCursor = make([]int, numRank)

	if policy == RankLevelStaggered && numRank > 0 && intervalCycles > 0 {
		for r := 0; r < numRank; r++ {
			c.cyclesSinceRefresh[r] = -(r * intervalCycles) / numRank
		}
	}

	return c
}

// Tick advances the clock by one cycle, raising refresh-need flags on
// the channel and attempting Self-Refresh entry where appropriate.
func (c *Clock) Tick() {
	for r := 0; r < c.NumRank; r++ {
		if c.Channel.IsRankSelfRefreshing(r) {
			c.cyclesSinceRefresh[r] = 0
			continue
		}

		c.cyclesSinceRefresh[r]++

		if c.cyclesSinceRefresh[r] >= c.IntervalCycles {
			c.cyclesSinceRefresh[r] = 0
			c.emitRefresh(r)
		}

		if c.EnableSelfRefresh && c.Channel.RankIdleCycles(r) >= c.SrefThreshold {
			c.trySrefEnter(r)
		}
	}
}

func (c *Clock) emitRefresh(rank int) {
	switch c.Policy {
	case RankLevelSimultaneous, RankLevelStaggered:
		c.Channel.RankNeedRefresh(rank, true)
	case BankLevelStaggered:
		group := c.staggerCursor[rank] % c.NumBankGroup
		c.staggerCursor[rank]++

		for b := 0; b < c.NumBank; b++ {
			c.Channel.BankNeedRefresh(addressmapping.Location{Rank: rank, BankGroup: group, Bank: b}, true)
		}
	}
}

func (c *Clock) trySrefEnter(rank int) {
	cmd := &signal.Command{
		Kind:     signal.CmdKindSRefEnter,
		Location: addressmapping.Location{Rank: rank},
	}

	ready := c.Channel.GetReadyCommand(cmd)
	if ready == nil {
		return
	}

	c.Channel.UpdateTimingAndStates(ready)
}
