// Package signal defines the wire types the DRAM core schedules and
// tracks: Commands issued to banks, and the Transactions/SubTransactions
// a memory request is split into on its way to becoming Commands.
package signal

import "github.com/sarchlab/dramsim/internal/addressmapping"

// CommandKind enumerates the DRAM command taxonomy from the data model.
type CommandKind int

// The command kinds the core schedules. There is deliberately no
// "invalid" member: an absent/not-ready command is represented by a nil
// *Command, matching how every interface in this module reports
// "nothing to do" (GetCommandToIssue, FinishRefresh, GetReadyCommand all
// return nil rather than a sentinel value).
const (
	CmdKindActivate CommandKind = iota
	CmdKindRead
	CmdKindWrite
	CmdKindReadPrecharge
	CmdKindWritePrecharge
	CmdKindPrecharge
	CmdKindRefresh
	CmdKindRefreshBank
	CmdKindSRefEnter
	CmdKindSRefExit
)

// String returns a short human-readable name, used in panics and traces.
func (k CommandKind) String() string {
	switch k {
	case CmdKindActivate:
		return "ACTIVATE"
	case CmdKindRead:
		return "READ"
	case CmdKindWrite:
		return "WRITE"
	case CmdKindReadPrecharge:
		return "READ_PRECHARGE"
	case CmdKindWritePrecharge:
		return "WRITE_PRECHARGE"
	case CmdKindPrecharge:
		return "PRECHARGE"
	case CmdKindRefresh:
		return "REFRESH"
	case CmdKindRefreshBank:
		return "REFRESH_BANK"
	case CmdKindSRefEnter:
		return "SELF_REFRESH_ENTER"
	case CmdKindSRefExit:
		return "SELF_REFRESH_EXIT"
	default:
		return "UNKNOWN"
	}
}

// IsReadWrite reports whether the command is a plain (non-auto-precharge)
// column access.
func (k CommandKind) IsReadWrite() bool {
	return k == CmdKindRead || k == CmdKindWrite
}

// IsRead reports whether the command reads a row, with or without an
// auto-precharge.
func (k CommandKind) IsRead() bool {
	return k == CmdKindRead || k == CmdKindReadPrecharge
}

// IsWrite reports whether the command writes a row, with or without an
// auto-precharge.
func (k CommandKind) IsWrite() bool {
	return k == CmdKindWrite || k == CmdKindWritePrecharge
}

// IsRefresh reports whether the command is a REFRESH or REFRESH_BANK.
func (k CommandKind) IsRefresh() bool {
	return k == CmdKindRefresh || k == CmdKindRefreshBank
}

// ClosesRow reports whether issuing the command leaves the bank CLOSED.
func (k CommandKind) ClosesRow() bool {
	return k == CmdKindPrecharge || k == CmdKindReadPrecharge ||
		k == CmdKindWritePrecharge
}

// Command is a single DRAM command targeting one Location. A nil
// *Command represents "no command" (§3's invalid Command).
type Command struct {
	ID       string
	Kind     CommandKind
	Location addressmapping.Location

	// SubTransaction is the queue entry the command originated from, if
	// any. Commands synthesized by the core to satisfy a prerequisite
	// (an auto-inserted ACTIVATE or PRECHARGE) leave this nil: they are
	// not queue entries and must not be erased from a sub-queue.
	SubTransaction *SubTransaction
}

// IsSynthesized reports whether cmd was manufactured by the core as a
// prerequisite rather than pulled from a sub-queue entry.
func (c *Command) IsSynthesized() bool {
	return c.SubTransaction == nil
}

// Row returns the command's target row, a small convenience over
// c.Location.Row used throughout the scheduler.
func (c *Command) Row() int {
	return c.Location.Row
}

// Rank returns the command's target rank.
func (c *Command) Rank() int {
	return c.Location.Rank
}

// BankGroup returns the command's target bank group.
func (c *Command) BankGroup() int {
	return c.Location.BankGroup
}

// Bank returns the command's target bank.
func (c *Command) Bank() int {
	return c.Location.Bank
}
