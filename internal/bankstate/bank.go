// Package bankstate implements the per-(rank, bank group, bank) state
// machine: row-buffer state, the open row, the row-hit counter, and the
// earliest-allowed-cycle table that the channel's Timing Table feeds.
package bankstate

import (
	"github.com/sarchlab/dramsim/internal/hooking"
	"github.com/sarchlab/dramsim/internal/naming"
	"github.com/sarchlab/dramsim/internal/signal"
)

// A Bank is one DRAM bank's row-buffer state machine. It ticks on its
// own clock (Tick), mirroring the rest of this module's components, so
// GetReadyCommand/StartCommand/UpdateTiming never take an explicit cycle
// argument.
type Bank interface {
	naming.Named
	hooking.Hookable

	// GetReadyCommand resolves what should actually happen for cmd right
	// now: cmd itself if it may issue, a synthesized prerequisite command
	// (ACTIVATE/PRECHARGE) if one must run first, or nil if nothing can
	// be done yet.
	GetReadyCommand(cmd *signal.Command) *signal.Command

	// StartCommand commits cmd's effect on the bank's row-buffer state.
	// The caller (ChannelState) is responsible for having verified
	// readiness via GetReadyCommand first.
	StartCommand(cmd *signal.Command)

	// UpdateTiming raises the earliest cycle cmdKind may issue on this
	// bank to at least the bank's current cycle plus cycleNeeded.
	UpdateTiming(cmdKind signal.CommandKind, cycleNeeded int)

	// Tick advances the bank's internal clock by one cycle and reports
	// whether the bank completed an in-flight command's effect this
	// cycle (used only for tracing; correctness never depends on it).
	Tick() bool

	// IsRowOpen, OpenRow and RowHitCount expose read-only state queried
	// by the channel and the scheduler's precharge arbitration.
	IsRowOpen() bool
	OpenRow() int
	RowHitCount() int
}
