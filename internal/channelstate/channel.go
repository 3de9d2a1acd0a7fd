// Package channelstate implements the per-channel aggregator: the 3-D
// array of bank states, rank-level self-refresh flags, the tFAW/t32AW
// rolling activation windows, and the pending-refresh queue. It sits
// between the command queue/scheduler and the individual banks.
package channelstate

import (
	"github.com/sarchlab/dramsim/internal/addressmapping"
	"github.com/sarchlab/dramsim/internal/dramtiming"
	"github.com/sarchlab/dramsim/internal/signal"
)

// Channel is the per-channel state aggregator.
type Channel interface {
	// GetReadyCommand resolves cmd against bank state, then, for
	// ACTIVATEs, against the rank's activation windows.
	GetReadyCommand(cmd *signal.Command) *signal.Command

	// UpdateState commits cmd's effect on bank and rank-level state.
	UpdateState(cmd *signal.Command)

	// UpdateTiming propagates cmd's Timing Table entries to every bank
	// each locality scope reaches.
	UpdateTiming(cmd *signal.Command)

	// UpdateTimingAndStates is the commit path called after issue:
	// UpdateState followed by UpdateTiming.
	UpdateTimingAndStates(cmd *signal.Command)

	// ActivationWindowOk reports whether rank may accept another
	// ACTIVATE right now under the tFAW/t32AW rolling windows.
	ActivationWindowOk(rank int) bool

	// UpdateActivationTimes records that rank was just activated.
	UpdateActivationTimes(rank int)

	IsRowOpen(loc addressmapping.Location) bool
	OpenRow(loc addressmapping.Location) int
	RowHitCount(loc addressmapping.Location) int

	IsAllBankIdleInRank(rank int) bool
	IsRankSelfRefreshing(rank int) bool
	IsRefreshWaiting() bool
	IsRWPendingOnRef(cmd *signal.Command) bool
	PendingRefCommand() *signal.Command

	BankNeedRefresh(loc addressmapping.Location, need bool)
	RankNeedRefresh(rank int, need bool)

	// RankIdleCycles returns rank's current consecutive idle-cycle
	// count, used by the refresh clock to decide Self-Refresh entry.
	RankIdleCycles(rank int) int

	// Tick advances every bank's clock by one cycle and ages the
	// per-rank idle-cycle counters.
	Tick()
}

// Config describes the channel's dimensions and timing, everything
// ChannelImpl needs besides the bank grid.
type Config struct {
	NumRank         int
	NumBankGroup    int
	NumBank         int
	IsGDDR          bool
	Timing          dramtiming.Timing
	TFAW            int
	T32AW           int
}
