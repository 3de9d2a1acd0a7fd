package trans

import (
	"github.com/sarchlab/dramsim/internal/cmdqueue"
	"github.com/sarchlab/dramsim/internal/signal"
)

// A SubTransactionQueue holds sub-transactions that have been split
// off a Transaction but not yet admitted into the command queue.
type SubTransactionQueue interface {
	// CanPush reports whether the queue has room for n more
	// sub-transactions.
	CanPush(n int) bool

	// Push enqueues every sub-transaction of t.
	Push(t *signal.Transaction)

	// Tick attempts to admit the head sub-transaction's command into
	// the command queue, reporting whether it succeeded.
	Tick() bool
}

// FCFSSubTransactionQueue admits sub-transactions into the command
// queue strictly in the order they were split off their transactions.
type FCFSSubTransactionQueue struct {
	Capacity   int
	CmdQueue   cmdqueue.CommandQueue
	CmdCreator CommandCreator

	pending []*signal.SubTransaction
}

// CanPush reports whether there is room for n more sub-transactions.
func (q *FCFSSubTransactionQueue) CanPush(n int) bool {
	return len(q.pending)+n <= q.Capacity
}

// Push enqueues every sub-transaction of t, in order.
func (q *FCFSSubTransactionQueue) Push(t *signal.Transaction) {
	q.pending = append(q.pending, t.SubTransactions...)
}

// Tick tries to admit the head sub-transaction's command.
func (q *FCFSSubTransactionQueue) Tick() bool {
	if len(q.pending) == 0 {
		return false
	}

	head := q.pending[0]
	cmd := q.CmdCreator.Create(head)

	if !q.CmdQueue.WillAcceptCommand(cmd.Location) {
		return false
	}

	q.CmdQueue.AddCommand(cmd)
	q.pending = q.pending[1:]

	return true
}
