package bankstate

import (
	"github.com/sarchlab/dramsim/internal/hooking"
	"github.com/sarchlab/dramsim/internal/naming"
	"github.com/sarchlab/dramsim/internal/signal"
)

// rowBufferState is the DRAM row-buffer state from §4's data model. PD
// (power-down) is tracked as a distinct state so a caller can tell a
// power-down apart from Self-Refresh, though the DRAM core currently
// only ever drives banks into Closed, Open and SRef.
type rowBufferState int

const (
	stateClosed rowBufferState = iota
	stateOpen
	stateSRef
	statePD
)

// BankImpl is the default Bank implementation.
type BankImpl struct {
	naming.NameBase
	hooking.Base

	// CmdCycles is how many cycles after StartCommand a command's effect
	// is considered "landed" for tracing purposes. It does not gate
	// correctness: every cross-command minimum gap is already enforced
	// through earliest, fed by the channel's Timing Table.
	CmdCycles map[signal.CommandKind]int

	state       rowBufferState
	hasOpenRow  bool
	openRow     int
	rowHitCount int
	earliest    map[signal.CommandKind]int
	now         int

	pendingKind      signal.CommandKind
	pendingRemaining int
	pendingActive    bool
}

// NewBankImpl creates a new, CLOSED bank named name.
func NewBankImpl(name string) *BankImpl {
	b := &BankImpl{
		NameBase:  naming.MakeBase(name),
		CmdCycles: make(map[signal.CommandKind]int),
		earliest:  make(map[signal.CommandKind]int),
	}

	return b
}

// IsRowOpen reports whether the bank currently has a row open.
func (b *BankImpl) IsRowOpen() bool {
	return b.state == stateOpen
}

// OpenRow returns the currently open row, or -1 if none is open.
func (b *BankImpl) OpenRow() int {
	if !b.hasOpenRow {
		return -1
	}

	return b.openRow
}

// RowHitCount returns the number of consecutive accesses served by the
// currently open row.
func (b *BankImpl) RowHitCount() int {
	return b.rowHitCount
}

// GetReadyCommand implements the per-bank resolution rules of §4.2.
func (b *BankImpl) GetReadyCommand(cmd *signal.Command) *signal.Command {
	switch {
	case cmd.Kind.IsReadWrite() || cmd.Kind.IsRead() || cmd.Kind.IsWrite():
		return b.readyForColumnAccess(cmd)
	case cmd.Kind == signal.CmdKindPrecharge:
		return b.readyForPrecharge(cmd)
	case cmd.Kind == signal.CmdKindActivate:
		return b.readyForActivate(cmd)
	case cmd.Kind.IsRefresh():
		return b.readyForRefresh(cmd)
	case cmd.Kind == signal.CmdKindSRefEnter:
		return b.readyForSRefEnter(cmd)
	case cmd.Kind == signal.CmdKindSRefExit:
		return b.readyForSRefExit(cmd)
	default:
		return nil
	}
}

func (b *BankImpl) readyForColumnAccess(cmd *signal.Command) *signal.Command {
	if b.state != stateOpen {
		if b.state != stateClosed {
			return nil
		}

		return &signal.Command{Kind: signal.CmdKindActivate, Location: cmd.Location}
	}

	if b.openRow != cmd.Row() {
		return &signal.Command{Kind: signal.CmdKindPrecharge, Location: cmd.Location}
	}

	if b.now < b.earliest[cmd.Kind] {
		return nil
	}

	return cmd
}

func (b *BankImpl) readyForPrecharge(cmd *signal.Command) *signal.Command {
	if b.state != stateOpen {
		return nil
	}

	if b.now < b.earliest[signal.CmdKindPrecharge] {
		return nil
	}

	return cmd
}

func (b *BankImpl) readyForActivate(cmd *signal.Command) *signal.Command {
	if b.state == stateOpen {
		return &signal.Command{Kind: signal.CmdKindPrecharge, Location: cmd.Location}
	}

	if b.state != stateClosed {
		return nil
	}

	if b.now < b.earliest[signal.CmdKindActivate] {
		return nil
	}

	return cmd
}

func (b *BankImpl) readyForRefresh(cmd *signal.Command) *signal.Command {
	if b.state == stateOpen {
		return &signal.Command{Kind: signal.CmdKindPrecharge, Location: cmd.Location}
	}

	if b.state != stateClosed {
		return nil
	}

	if b.now < b.earliest[cmd.Kind] {
		return nil
	}

	return cmd
}

func (b *BankImpl) readyForSRefEnter(cmd *signal.Command) *signal.Command {
	if b.state == stateOpen {
		return &signal.Command{Kind: signal.CmdKindPrecharge, Location: cmd.Location}
	}

	if b.state != stateClosed {
		return nil
	}

	if b.now < b.earliest[signal.CmdKindSRefEnter] {
		return nil
	}

	return cmd
}

func (b *BankImpl) readyForSRefExit(cmd *signal.Command) *signal.Command {
	if b.state != stateSRef {
		return nil
	}

	if b.now < b.earliest[signal.CmdKindSRefExit] {
		return nil
	}

	return cmd
}

// StartCommand commits cmd's effect on the row-buffer state machine, per
// the transition table of §4.2.
func (b *BankImpl) StartCommand(cmd *signal.Command) {
	switch cmd.Kind {
	case signal.CmdKindActivate:
		b.state = stateOpen
		b.hasOpenRow = true
		b.openRow = cmd.Row()
		b.rowHitCount = 0
	case signal.CmdKindRead, signal.CmdKindWrite:
		b.mustBeOpenOnRow(cmd)
		b.rowHitCount++
	case signal.CmdKindReadPrecharge, signal.CmdKindWritePrecharge:
		b.mustBeOpenOnRow(cmd)
		b.state = stateClosed
		b.hasOpenRow = false
	case signal.CmdKindPrecharge:
		b.state = stateClosed
		b.hasOpenRow = false
		b.rowHitCount = 0
	case signal.CmdKindRefresh, signal.CmdKindRefreshBank:
		// Bank must already be CLOSED; refresh leaves it CLOSED.
	case signal.CmdKindSRefEnter:
		b.state = stateSRef
	case signal.CmdKindSRefExit:
		b.state = stateClosed
	}

	b.startPendingTrace(cmd.Kind)

	b.InvokeHook(hooking.Ctx{
		Domain: b,
		Pos:    hooking.PosBankStateChange,
		Item:   cmd,
	})
}

func (b *BankImpl) mustBeOpenOnRow(cmd *signal.Command) {
	if b.state != stateOpen || b.openRow != cmd.Row() {
		panic("read/write issued to a bank without the matching row open")
	}
}

func (b *BankImpl) startPendingTrace(kind signal.CommandKind) {
	cycles, ok := b.CmdCycles[kind]
	if !ok || cycles <= 0 {
		b.pendingActive = false
		return
	}

	b.pendingKind = kind
	b.pendingRemaining = cycles
	b.pendingActive = true
}

// UpdateTiming raises earliest[cmdKind] to at least now+cycleNeeded. It
// never decreases, satisfying the timing-monotonicity invariant.
func (b *BankImpl) UpdateTiming(cmdKind signal.CommandKind, cycleNeeded int) {
	candidate := b.now + cycleNeeded
	if candidate > b.earliest[cmdKind] {
		b.earliest[cmdKind] = candidate
	}
}

// Tick advances the bank's own clock by one cycle.
func (b *BankImpl) Tick() bool {
	b.now++

	if !b.pendingActive {
		return false
	}

	b.pendingRemaining--
	if b.pendingRemaining > 0 {
		return false
	}

	b.pendingActive = false

	return true
}
