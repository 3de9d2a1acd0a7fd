package dramsim

import (
	"github.com/rs/xid"

	"github.com/sarchlab/dramsim/internal/addressmapping"
	"github.com/sarchlab/dramsim/internal/channelstate"
	"github.com/sarchlab/dramsim/internal/cmdqueue"
	"github.com/sarchlab/dramsim/internal/hooking"
	"github.com/sarchlab/dramsim/internal/naming"
	"github.com/sarchlab/dramsim/internal/refresh"
	"github.com/sarchlab/dramsim/internal/signal"
	"github.com/sarchlab/dramsim/internal/trans"
)

// TaskStart is the Item a PosTaskStart hook receives.
type TaskStart struct {
	RequestID string
	Address   uint64
	Kind      signal.TransactionType
}

// TaskEnd is the Item a PosTaskEnd hook receives.
type TaskEnd struct {
	RequestID string
}

// Controller is a synchronous, self-ticking DRAM channel: it accepts
// Transactions, arbitrates and schedules the Commands they split into
// against the Timing Table and per-bank state, and hands completed
// Transactions back out in the order they finish, one Tick at a time.
//
// It plays the role the teacher's akita-hosted Comp/middleware pair
// plays, minus the port/message plumbing: there is no simulation
// engine driving Tick here, so callers step the clock themselves.
type Controller struct {
	naming.NameBase
	hooking.Base

	addrMapper       addressmapping.Mapper
	subTransSplitter *trans.SubTransSplitter
	subTransQueue    trans.SubTransactionQueue
	cmdQueue         cmdqueue.CommandQueue
	channel          channelstate.Channel
	refreshClock     *refresh.Clock

	inflight []*signal.Transaction
	done     []*signal.Transaction
}

// Submit admits t into the controller, splitting it into
// sub-transactions and queuing them. It reports false, queuing nothing
// and leaving t.SubTransactions empty, if the sub-transaction queue has
// no room for all of t's sub-transactions — the caller should retry on
// a later Tick.
func (c *Controller) Submit(t *signal.Transaction) bool {
	if t.RequestID == "" {
		t.RequestID = xid.New().String()
	}

	c.assignInternalAddress(t)
	c.subTransSplitter.Split(t)

	if !c.subTransQueue.CanPush(len(t.SubTransactions)) {
		t.SubTransactions = nil
		return false
	}

	c.subTransQueue.Push(t)
	c.inflight = append(c.inflight, t)

	c.InvokeHook(hooking.Ctx{
		Domain: c,
		Pos:    hooking.PosTaskStart,
		Item: TaskStart{
			RequestID: t.RequestID,
			Address:   t.GlobalAddress(),
			Kind:      t.Type,
		},
	})

	return true
}

func (c *Controller) assignInternalAddress(t *signal.Transaction) {
	t.InternalAddress = t.GlobalAddress()
}

// Tick advances the channel by one cycle, in the order the ordering
// guarantees of §5 require: completed transactions are handed off
// before new state changes are observable, the channel's own clock
// (bank timing, activation windows, idle tracking) advances before
// this cycle's issue decision is made, then a command is issued, the
// sub-transaction queue tries to admit its head into the command
// queue, and finally the refresh clock evaluates whether a new
// refresh or Self-Refresh order is due. It reports whether anything
// changed.
func (c *Controller) Tick() (madeProgress bool) {
	madeProgress = c.respond() || madeProgress
	c.channel.Tick()
	madeProgress = c.issue() || madeProgress
	madeProgress = c.subTransQueue.Tick() || madeProgress
	c.refreshClock.Tick()

	return madeProgress
}

// issue implements §6's tick/get_command_to_issue/finish_refresh
// interplay: while the channel has a refresh waiting, only refresh
// progress (a synthesized PRECHARGE or the REFRESH/REFRESH_BANK
// itself) may issue; otherwise ordinary traffic is scheduled.
func (c *Controller) issue() (madeProgress bool) {
	var cmd *signal.Command

	if c.channel.IsRefreshWaiting() {
		cmd = c.cmdQueue.FinishRefresh()
	} else {
		cmd = c.cmdQueue.GetCommandToIssue()
	}

	if cmd == nil {
		return false
	}

	c.channel.UpdateTimingAndStates(cmd)

	if cmd.Kind == signal.CmdKindActivate {
		c.channel.UpdateActivationTimes(cmd.Rank())
	}

	if !cmd.IsSynthesized() && (cmd.Kind.IsRead() || cmd.Kind.IsWrite()) {
		cmd.SubTransaction.Completed = true
	}

	return true
}

// respond hands every inflight Transaction whose sub-transactions have
// all completed back to the caller via PopResponse, in submission
// order.
func (c *Controller) respond() (madeProgress bool) {
	remaining := c.inflight[:0]

	for _, t := range c.inflight {
		if t.IsCompleted() {
			c.done = append(c.done, t)
			c.traceTransactionComplete(t)
			madeProgress = true

			continue
		}

		remaining = append(remaining, t)
	}

	c.inflight = remaining

	return madeProgress
}

func (c *Controller) traceTransactionComplete(t *signal.Transaction) {
	c.InvokeHook(hooking.Ctx{
		Domain: c,
		Pos:    hooking.PosTaskEnd,
		Item:   TaskEnd{RequestID: t.RequestID},
	})
}

// PopResponse returns the oldest completed Transaction and true, or
// nil and false if none is waiting.
func (c *Controller) PopResponse() (*signal.Transaction, bool) {
	if len(c.done) == 0 {
		return nil, false
	}

	t := c.done[0]
	c.done = c.done[1:]

	return t, true
}

// InflightCount returns the number of Transactions submitted but not
// yet handed back via PopResponse, counting both those still being
// scheduled and those completed but not yet popped.
func (c *Controller) InflightCount() int {
	return len(c.inflight) + len(c.done)
}
