// Package dramtiming holds the Timing Table: the precomputed, read-only
// map from a predecessor command kind and locality scope to the list of
// (successor kind, minimum cycle gap) pairs that a channel must respect.
// The table is built once by the root package's Builder and never
// mutated afterwards.
package dramtiming

import "github.com/sarchlab/dramsim/internal/signal"

// Entry is one minimum-gap rule: after the predecessor command this
// entry's Table is indexed by, NextKind may not issue on the target bank
// before MinGap cycles have elapsed.
type Entry struct {
	NextKind signal.CommandKind
	MinGap   int
}

// Table maps a predecessor command kind to the successor rules that
// apply to it, at one locality scope.
type Table map[signal.CommandKind][]Entry

// MakeTable returns an empty Table ready to be filled in.
func MakeTable() Table {
	return make(Table)
}

// Timing is the full, immutable timing table for one channel, split by
// locality scope. SameRank also carries the rules for rank-wide
// commands (REFRESH, SELF_REFRESH_ENTER, SELF_REFRESH_EXIT), which have
// no single owning bank group to exclude — see RankWide.
type Timing struct {
	SameBank              Table
	OtherBanksInBankGroup Table
	SameRank              Table
	OtherRanks            Table
}

// MakeTiming returns a Timing with all four tables initialized empty.
func MakeTiming() Timing {
	return Timing{
		SameBank:              MakeTable(),
		OtherBanksInBankGroup: MakeTable(),
		SameRank:              MakeTable(),
		OtherRanks:            MakeTable(),
	}
}

// RankWide reports whether a command of this kind addresses an entire
// rank rather than one bank, so its SameRank timing entries must
// propagate to every bank in the rank instead of just the banks outside
// its own bank group.
func RankWide(kind signal.CommandKind) bool {
	switch kind {
	case signal.CmdKindRefresh, signal.CmdKindSRefEnter, signal.CmdKindSRefExit:
		return true
	default:
		return false
	}
}
