// Package trans implements the layer between memory transactions and
// DRAM commands: splitting a transaction into burst-sized
// sub-transactions, queuing them FCFS, and turning each into the
// Command the scheduler will admit.
package trans

import "github.com/sarchlab/dramsim/internal/signal"

// SubTransSplitter splits a Transaction into one SubTransaction per
// burst-sized access unit it touches.
type SubTransSplitter struct {
	numAccessUnitBits uint
}

// NewSubTransSplitter creates a splitter whose access unit is
// 2^numAccessUnitBits bytes — one burst's worth of data.
func NewSubTransSplitter(numAccessUnitBits int) *SubTransSplitter {
	return &SubTransSplitter{numAccessUnitBits: uint(numAccessUnitBits)}
}

// Split populates t.SubTransactions, one entry per access unit that
// [t.GlobalAddress(), t.GlobalAddress()+t.AccessSize()) crosses.
func (s *SubTransSplitter) Split(t *signal.Transaction) {
	unitSize := uint64(1) << s.numAccessUnitBits

	start := t.GlobalAddress()
	size := t.AccessSize()
	if size == 0 {
		size = 1
	}

	startUnit := start >> s.numAccessUnitBits
	endUnit := (start + size - 1) >> s.numAccessUnitBits

	for u := startUnit; u <= endUnit; u++ {
		t.SubTransactions = append(t.SubTransactions, &signal.SubTransaction{
			Transaction: t,
			Address:     u * unitSize,
		})
	}
}
