// Package refresh implements the refresh-order clock: it fires REFRESH
// or REFRESH_BANK orders into the channel state at the configured
// interval, and drives Self-Refresh entry once a rank has been idle
// for long enough.
package refresh

// Policy chooses whether the clock emits REFRESH (rank-wide) or
// REFRESH_BANK (per-bank) orders, and the stagger between them.
type Policy int

// The three refresh policies configuration.h names.
const (
	// RankLevelSimultaneous refreshes every bank of a rank at once,
	// via a single REFRESH order per rank per interval.
	RankLevelSimultaneous Policy = iota

	// RankLevelStaggered still issues one REFRESH order per rank per
	// interval, but staggers which rank refreshes on which cycle
	// within the interval so ranks never refresh in lockstep.
	RankLevelStaggered

	// BankLevelStaggered refreshes one bank group's worth of banks per
	// interval via REFRESH_BANK orders, moving on to the next bank group
	// at each interval, so a rank with N bank groups is fully refreshed
	// once every N intervals.
	BankLevelStaggered
)
