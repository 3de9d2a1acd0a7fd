// Package cmdqueue implements the per-channel command queue and
// scheduler: sub-queue admission, round-robin issue selection,
// precharge arbitration, write-after-read dependency checking and
// refresh interleaving.
package cmdqueue

import (
	"github.com/sarchlab/dramsim/internal/addressmapping"
	"github.com/sarchlab/dramsim/internal/signal"
)

// Structure selects how commands are split across sub-queues.
type Structure int

// The two queue structures §4.4 supports.
const (
	PerRank Structure = iota
	PerBank
)

// Channel is the subset of channelstate.Channel the scheduler needs.
// Declared locally so this package does not import channelstate
// directly, keeping the dependency direction one-way (channelstate
// never needs to know about queues).
type Channel interface {
	GetReadyCommand(cmd *signal.Command) *signal.Command
	OpenRow(loc addressmapping.Location) int
	RowHitCount(loc addressmapping.Location) int
	IsRefreshWaiting() bool
	PendingRefCommand() *signal.Command
}

// CommandQueue is the scheduler's external contract.
type CommandQueue interface {
	// WillAcceptCommand reports whether the sub-queue that loc maps to
	// has room for one more entry.
	WillAcceptCommand(loc addressmapping.Location) bool

	// AddCommand appends cmd to its target sub-queue. Reports false if
	// the sub-queue was full.
	AddCommand(cmd *signal.Command) bool

	// GetCommandToIssue runs one round of arbitration and returns the
	// command to issue this cycle, or nil if nothing may issue.
	GetCommandToIssue() *signal.Command

	// FinishRefresh drives the refresh at the head of the channel's
	// refresh queue toward issue, returning the PRECHARGE or REFRESH(_BANK)
	// command to issue this cycle, or nil if none is ready yet.
	FinishRefresh() *signal.Command

	// IsInRefresh reports whether ordinary traffic on the sub-queues
	// affected by the in-progress refresh is currently paused.
	IsInRefresh() bool
}
