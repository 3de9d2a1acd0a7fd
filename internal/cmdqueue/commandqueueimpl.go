package cmdqueue

import (
	"github.com/sarchlab/dramsim/internal/addressmapping"
	"github.com/sarchlab/dramsim/internal/signal"
)

// rowHitLimit caps how long a bank may keep serving row hits before a
// queued PRECHARGE is allowed to jump ahead, per §4.4's precharge
// arbitration rule.
const rowHitLimit = 4

// CommandQueueImpl is the default CommandQueue implementation.
type CommandQueueImpl struct {
	Structure     Structure
	NumRank       int
	NumBankGroup  int
	NumBank       int
	Capacity      int
	Channel       Channel

	queues         [][]*signal.Command
	nextQueueIndex int

	isInRef     bool
	refQIndices []int
}

// NewCommandQueueImpl builds a CommandQueueImpl with one sub-queue per
// rank (PerRank) or one per bank (PerBank). It panics on any other
// Structure.
func NewCommandQueueImpl(structure Structure, numRank, numBankGroup, numBank, capacity int, channel Channel) *CommandQueueImpl {
	if structure != PerRank && structure != PerBank {
		panic("unsupported queue structure")
	}

	q := &CommandQueueImpl{
		Structure:    structure,
		NumRank:      numRank,
		NumBankGroup: numBankGroup,
		NumBank:      numBank,
		Capacity:     capacity,
		Channel:      channel,
	}

	numQueues := numRank
	if structure == PerBank {
		numQueues = numRank * numBankGroup * numBank
	}

	q.queues = make([][]*signal.Command, numQueues)
	q.nextQueueIndex = numQueues - 1

	return q
}

func (q *CommandQueueImpl) queueIndex(loc addressmapping.Location) int {
	if q.Structure == PerRank {
		return loc.Rank
	}

	banksPerRank := q.NumBankGroup * q.NumBank

	return loc.Rank*banksPerRank + loc.BankGroup*q.NumBank + loc.Bank
}

// WillAcceptCommand reports whether loc's sub-queue has room.
func (q *CommandQueueImpl) WillAcceptCommand(loc addressmapping.Location) bool {
	return len(q.queues[q.queueIndex(loc)]) < q.Capacity
}

// AddCommand appends cmd to its target sub-queue.
func (q *CommandQueueImpl) AddCommand(cmd *signal.Command) bool {
	idx := q.queueIndex(cmd.Location)
	if len(q.queues[idx]) >= q.Capacity {
		return false
	}

	q.queues[idx] = append(q.queues[idx], cmd)

	return true
}

// GetCommandToIssue implements §4.4's issue-selection algorithm.
func (q *CommandQueueImpl) GetCommandToIssue() *signal.Command {
	n := len(q.queues)

	for i := 0; i < n; i++ {
		qi := q.advanceQueueCursor()

		if q.isInRef && contains(q.refQIndices, qi) {
			continue
		}

		ready, idx, ok := q.firstReadyInQueue(qi)
		if !ok {
			continue
		}

		if !ready.IsSynthesized() {
			q.eraseAt(qi, idx)
		}

		return ready
	}

	return nil
}

func (q *CommandQueueImpl) advanceQueueCursor() int {
	q.nextQueueIndex = (q.nextQueueIndex + 1) % len(q.queues)

	return q.nextQueueIndex
}

func (q *CommandQueueImpl) firstReadyInQueue(qi int) (*signal.Command, int, bool) {
	for idx, entry := range q.queues[qi] {
		ready := q.Channel.GetReadyCommand(entry)
		if ready == nil {
			continue
		}

		if ready.Kind == signal.CmdKindPrecharge {
			if !q.arbitratePrecharge(qi, idx) {
				continue
			}
		}

		if ready.Kind.IsWrite() {
			if q.hasRWDependency(qi, idx, entry) {
				continue
			}
		}

		return ready, idx, true
	}

	return nil, 0, false
}

// arbitratePrecharge implements §4.4's precharge arbitration rule.
func (q *CommandQueueImpl) arbitratePrecharge(qi, idx int) bool {
	entries := q.queues[qi]
	loc := entries[idx].Location

	for j := 0; j < idx; j++ {
		if entries[j].Location.SameBank(loc) {
			return false
		}
	}

	openRow := q.Channel.OpenRow(loc)
	pendingRowHitsExist := false

	for j := idx; j < len(entries); j++ {
		if entries[j].Location.SameBank(loc) && entries[j].Row() == openRow {
			pendingRowHitsExist = true
			break
		}
	}

	rowHitLimitReached := q.Channel.RowHitCount(loc) >= rowHitLimit

	return !pendingRowHitsExist || rowHitLimitReached
}

// hasRWDependency checks write-after-read: a WRITE must not issue
// before any earlier queued READ to the same location.
func (q *CommandQueueImpl) hasRWDependency(qi, idx int, write *signal.Command) bool {
	entries := q.queues[qi]

	for j := 0; j < idx; j++ {
		e := entries[j]
		if e.Kind.IsRead() && e.Location == write.Location {
			return true
		}
	}

	return false
}

func (q *CommandQueueImpl) eraseAt(qi, idx int) {
	entries := q.queues[qi]
	q.queues[qi] = append(entries[:idx], entries[idx+1:]...)
}

// FinishRefresh drives the head-of-line refresh toward issue.
func (q *CommandQueueImpl) FinishRefresh() *signal.Command {
	pending := q.Channel.PendingRefCommand()
	if pending == nil {
		return nil
	}

	if !q.isInRef {
		q.refQIndices = q.computeRefQIndices(pending)
		q.isInRef = true
	}

	ready := q.Channel.GetReadyCommand(pending)
	if ready == nil {
		return nil
	}

	if ready.Kind == pending.Kind {
		q.refQIndices = nil
		q.isInRef = false
	}

	return ready
}

// IsInRefresh reports whether a refresh is currently pausing traffic
// on the sub-queues it affects.
func (q *CommandQueueImpl) IsInRefresh() bool {
	return q.isInRef
}

func (q *CommandQueueImpl) computeRefQIndices(pending *signal.Command) []int {
	if pending.Kind == signal.CmdKindRefreshBank {
		return []int{q.queueIndex(pending.Location)}
	}

	if q.Structure == PerRank {
		return []int{pending.Rank()}
	}

	indices := make([]int, 0, q.NumBankGroup*q.NumBank)
	for g := 0; g < q.NumBankGroup; g++ {
		for b := 0; b < q.NumBank; b++ {
			loc := addressmapping.Location{Rank: pending.Rank(), BankGroup: g, Bank: b}
			indices = append(indices, q.queueIndex(loc))
		}
	}

	return indices
}

func contains(indices []int, target int) bool {
	for _, i := range indices {
		if i == target {
			return true
		}
	}

	return false
}
