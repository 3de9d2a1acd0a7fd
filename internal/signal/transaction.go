package signal

import "github.com/sarchlab/dramsim/internal/addressmapping"

// TransactionType distinguishes a read transaction from a write one.
type TransactionType int

// The two transaction types a memory request can be.
const (
	TransactionTypeRead TransactionType = iota
	TransactionTypeWrite
)

// Transaction is the state associated with processing one read or write
// request end to end: the request's own fields plus the SubTransactions
// it was split into.
type Transaction struct {
	Type TransactionType

	RequestID      string
	Address        uint64
	AccessByteSize uint64
	Data           []byte

	InternalAddress uint64
	SubTransactions []*SubTransaction
}

// GlobalAddress returns the address the transaction targets.
func (t *Transaction) GlobalAddress() uint64 {
	return t.Address
}

// AccessSize returns the number of bytes the transaction accesses.
func (t *Transaction) AccessSize() uint64 {
	if t.Type == TransactionTypeRead {
		return t.AccessByteSize
	}

	return uint64(len(t.Data))
}

// IsRead reports whether the transaction is a read.
func (t *Transaction) IsRead() bool {
	return t.Type == TransactionTypeRead
}

// IsWrite reports whether the transaction is a write.
func (t *Transaction) IsWrite() bool {
	return t.Type == TransactionTypeWrite
}

// IsCompleted reports whether every sub-transaction has been serviced.
func (t *Transaction) IsCompleted() bool {
	for _, st := range t.SubTransactions {
		if !st.Completed {
			return false
		}
	}

	return true
}

// SubTransaction is the unit of work the command queue actually
// schedules: one Transaction may be split into several, each targeting
// one burst-sized access unit.
type SubTransaction struct {
	Transaction *Transaction

	// Address is the start byte address of the access unit this
	// sub-transaction covers, before mapping to a bank Location. The
	// unit overlaps the parent Transaction's [Address, Address+AccessSize)
	// range; for an unaligned Transaction the first unit starts below
	// the parent's Address.
	Address uint64

	// Location is filled in once a CommandCreator maps Address to a
	// bank location; it is the zero Location until then.
	Location  addressmapping.Location
	Completed bool
}
