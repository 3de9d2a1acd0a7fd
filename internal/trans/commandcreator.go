package trans

import (
	"github.com/sarchlab/dramsim/internal/addressmapping"
	"github.com/sarchlab/dramsim/internal/signal"
)

// A CommandCreator turns a SubTransaction into the Command that should
// be queued for it, choosing between the plain and auto-precharge
// variants of a column access according to its page policy.
type CommandCreator interface {
	Create(subTrans *signal.SubTransaction) *signal.Command
}

// ClosePageCommandCreator always issues the auto-precharge variant of
// a column access, closing the row as soon as the access completes.
// This is the page policy the DRAM core defaults to: it favors
// fairness across rows over exploiting row-buffer locality across
// transactions.
type ClosePageCommandCreator struct {
	AddrMapper addressmapping.Mapper
}

// Create maps subTrans.Address to a Location and returns the
// corresponding READ_PRECHARGE or WRITE_PRECHARGE command.
func (c *ClosePageCommandCreator) Create(subTrans *signal.SubTransaction) *signal.Command {
	loc := c.AddrMapper.Map(subTrans.Address)
	subTrans.Location = loc

	kind := signal.CmdKindReadPrecharge
	if subTrans.Transaction.IsWrite() {
		kind = signal.CmdKindWritePrecharge
	}

	return &signal.Command{
		Kind:           kind,
		Location:       loc,
		SubTransaction: subTrans,
	}
}
