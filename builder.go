package dramsim

import (
	"fmt"

	"github.com/sarchlab/dramsim/internal/addressmapping"
	"github.com/sarchlab/dramsim/internal/bankstate"
	"github.com/sarchlab/dramsim/internal/channelstate"
	"github.com/sarchlab/dramsim/internal/cmdqueue"
	"github.com/sarchlab/dramsim/internal/dramtiming"
	"github.com/sarchlab/dramsim/internal/hooking"
	"github.com/sarchlab/dramsim/internal/naming"
	"github.com/sarchlab/dramsim/internal/refresh"
	"github.com/sarchlab/dramsim/internal/signal"
	"github.com/sarchlab/dramsim/internal/trans"
)

// QueueStructure selects how the command queue splits work across
// sub-queues.
type QueueStructure = cmdqueue.Structure

// The two queue structures a Builder can be configured with.
const (
	PerRank = cmdqueue.PerRank
	PerBank = cmdqueue.PerBank
)

// RefreshPolicy selects how the refresh clock schedules REFRESH and
// REFRESH_BANK orders.
type RefreshPolicy = refresh.Policy

// The three refresh policies a Builder can be configured with.
const (
	RankLevelSimultaneous = refresh.RankLevelSimultaneous
	RankLevelStaggered    = refresh.RankLevelStaggered
	BankLevelStaggered    = refresh.BankLevelStaggered
)

// Builder builds new DRAM channel Controllers.
type Builder struct {
	hooks []hooking.Hook

	protocol             Protocol
	transactionQueueSize int
	commandQueueSize     int
	busWidth             int
	burstLength          int
	numRank              int
	numBankGroup         int
	numBank              int
	numRow               int
	numCol               int

	queueStructure QueueStructure

	refreshPolicy     RefreshPolicy
	enableSelfRefresh bool
	srefThreshold     int

	burstCycle int
	tAL        int
	tCL        int
	tCWL       int
	tRL        int
	tWL        int
	readDelay  int
	writeDelay int
	tRCD       int
	tRP        int
	tRAS       int
	tCCDL      int
	tCCDS      int
	tRTRS      int
	tRTP       int
	tWTRL      int
	tWTRS      int
	tWR        int
	tPPD       int
	tRC        int
	tRRDL      int
	tRRDS      int
	tRCDRD     int
	tRCDWR     int
	tREFI      int
	tRFC       int
	tRFCb      int
	tCKESR     int
	tXS        int
	tFAW       int
	t32AW      int
}

// MakeBuilder creates a Builder with DDR3-like default configuration.
func MakeBuilder() Builder {
	return Builder{
		protocol:             DDR3,
		transactionQueueSize: 32,
		commandQueueSize:     8,
		busWidth:             64,
		burstLength:          8,
		numRank:              2,
		numBankGroup:         1,
		numBank:              8,
		numRow:               32768,
		numCol:               1024,
		queueStructure:       PerBank,
		refreshPolicy:        RankLevelSimultaneous,
		burstCycle:           4,
		tAL:                  0,
		tCL:                  11,
		tCWL:                 8,
		tRCD:                 11,
		tRP:                  11,
		tRAS:                 28,
		tCCDL:                4,
		tCCDS:                4,
		tRTRS:                1,
		tRTP:                 6,
		tWTRL:                6,
		tWTRS:                6,
		tWR:                  12,
		tPPD:                 0,
		tRRDL:                5,
		tRRDS:                5,
		tRCDRD:               24,
		tRCDWR:               20,
		tREFI:                6240,
		tRFC:                 208,
		tRFCb:                1950,
		tCKESR:               5,
		tXS:                  216,
		tFAW:                 30,
		t32AW:                330,
		srefThreshold:        1000,
	}
}

// WithProtocol sets the DRAM protocol.
func (b Builder) WithProtocol(p Protocol) Builder {
	b.protocol = p
	return b
}

// WithTransactionQueueSize sets the capacity of the sub-transaction queue.
func (b Builder) WithTransactionQueueSize(n int) Builder {
	b.transactionQueueSize = n
	return b
}

// WithCommandQueueSize sets the per-sub-queue command queue capacity.
func (b Builder) WithCommandQueueSize(n int) Builder {
	b.commandQueueSize = n
	return b
}

// WithBusWidth sets the channel's data bus width in bits.
func (b Builder) WithBusWidth(n int) Builder {
	b.busWidth = n
	return b
}

// WithBurstLength sets the burst length in beats.
func (b Builder) WithBurstLength(n int) Builder {
	b.burstLength = n
	return b
}

// WithNumRank sets the number of ranks in the channel.
func (b Builder) WithNumRank(n int) Builder {
	b.numRank = n
	return b
}

// WithNumBankGroup sets the number of bank groups per rank.
func (b Builder) WithNumBankGroup(n int) Builder {
	b.numBankGroup = n
	return b
}

// WithNumBank sets the number of banks per bank group.
func (b Builder) WithNumBank(n int) Builder {
	b.numBank = n
	return b
}

// WithNumRow sets the number of rows per bank.
func (b Builder) WithNumRow(n int) Builder {
	b.numRow = n
	return b
}

// WithNumCol sets the number of columns per row.
func (b Builder) WithNumCol(n int) Builder {
	b.numCol = n
	return b
}

// WithQueueStructure selects PerRank or PerBank sub-queue structure.
func (b Builder) WithQueueStructure(s QueueStructure) Builder {
	b.queueStructure = s
	return b
}

// WithRefreshPolicy selects the refresh clock's scheduling policy.
func (b Builder) WithRefreshPolicy(p RefreshPolicy) Builder {
	b.refreshPolicy = p
	return b
}

// WithSelfRefresh enables Self-Refresh entry once a rank has been idle
// for threshold cycles.
func (b Builder) WithSelfRefresh(threshold int) Builder {
	b.enableSelfRefresh = true
	b.srefThreshold = threshold
	return b
}

// WithAdditionalHooks registers a hook on every bank the built
// Controller owns.
func (b Builder) WithAdditionalHooks(h hooking.Hook) Builder {
	b.hooks = append(b.hooks, h)
	return b
}

// WithTAL sets the added latency in cycles.
func (b Builder) WithTAL(cycle int) Builder { b.tAL = cycle; return b }

// WithTCL sets the CAS latency in cycles.
func (b Builder) WithTCL(cycle int) Builder { b.tCL = cycle; return b }

// WithTCWL sets the CAS write latency in cycles.
func (b Builder) WithTCWL(cycle int) Builder { b.tCWL = cycle; return b }

// WithTRCD sets the RAS-to-CAS delay in cycles.
func (b Builder) WithTRCD(cycle int) Builder { b.tRCD = cycle; return b }

// WithTRP sets the row precharge time in cycles.
func (b Builder) WithTRP(cycle int) Builder { b.tRP = cycle; return b }

// WithTRAS sets the row active time in cycles.
func (b Builder) WithTRAS(cycle int) Builder { b.tRAS = cycle; return b }

// WithTCCDL sets the same-bank-group CAS-to-CAS delay in cycles.
func (b Builder) WithTCCDL(cycle int) Builder { b.tCCDL = cycle; return b }

// WithTCCDS sets the other-bank-group CAS-to-CAS delay in cycles.
func (b Builder) WithTCCDS(cycle int) Builder { b.tCCDS = cycle; return b }

// WithTRTRS sets the rank-to-rank switching time in cycles.
func (b Builder) WithTRTRS(cycle int) Builder { b.tRTRS = cycle; return b }

// WithTRTP sets the read-to-precharge time in cycles.
func (b Builder) WithTRTP(cycle int) Builder { b.tRTP = cycle; return b }

// WithTWTRL sets the same-bank-group write-to-read time in cycles.
func (b Builder) WithTWTRL(cycle int) Builder { b.tWTRL = cycle; return b }

// WithTWTRS sets the other-bank-group write-to-read time in cycles.
func (b Builder) WithTWTRS(cycle int) Builder { b.tWTRS = cycle; return b }

// WithTWR sets the write recovery time in cycles.
func (b Builder) WithTWR(cycle int) Builder { b.tWR = cycle; return b }

// WithTPPD sets the precharge-to-precharge delay in cycles.
func (b Builder) WithTPPD(cycle int) Builder { b.tPPD = cycle; return b }

// WithTRRDL sets the same-bank-group activate-to-activate delay in cycles.
func (b Builder) WithTRRDL(cycle int) Builder { b.tRRDL = cycle; return b }

// WithTRRDS sets the other-bank-group activate-to-activate delay in cycles.
func (b Builder) WithTRRDS(cycle int) Builder { b.tRRDS = cycle; return b }

// WithTRCDRD sets the GDDR/HBM activate-to-read delay in cycles.
func (b Builder) WithTRCDRD(cycle int) Builder { b.tRCDRD = cycle; return b }

// WithTRCDWR sets the GDDR/HBM activate-to-write delay in cycles.
func (b Builder) WithTRCDWR(cycle int) Builder { b.tRCDWR = cycle; return b }

// WithTREFI sets the average refresh interval in cycles.
func (b Builder) WithTREFI(cycle int) Builder { b.tREFI = cycle; return b }

// WithTRFC sets the refresh cycle time in cycles.
func (b Builder) WithTRFC(cycle int) Builder { b.tRFC = cycle; return b }

// WithTRFCb sets the per-bank refresh cycle time in cycles.
func (b Builder) WithTRFCb(cycle int) Builder { b.tRFCb = cycle; return b }

// WithTCKESR sets the Self-Refresh entry-to-exit time in cycles.
func (b Builder) WithTCKESR(cycle int) Builder { b.tCKESR = cycle; return b }

// WithTXS sets the Self-Refresh exit time in cycles.
func (b Builder) WithTXS(cycle int) Builder { b.tXS = cycle; return b }

// WithTFAW sets the four-activation window in cycles.
func (b Builder) WithTFAW(cycle int) Builder { b.tFAW = cycle; return b }

// WithT32AW sets the GDDR 32-activation window in cycles.
func (b Builder) WithT32AW(cycle int) Builder { b.t32AW = cycle; return b }

// Build assembles a Controller, wiring the Timing Table, bank grid,
// channel state, command queue and refresh clock together.
func (b Builder) Build(name string) *Controller {
	b.calculateBurstCycle()

	timing := b.generateTiming()

	banks := make([][][]bankstate.Bank, b.numRank)
	for r := 0; r < b.numRank; r++ {
		banks[r] = make([][]bankstate.Bank, b.numBankGroup)
		for g := 0; g < b.numBankGroup; g++ {
			banks[r][g] = make([]bankstate.Bank, b.numBank)
			for k := 0; k < b.numBank; k++ {
				bankName := fmt.Sprintf("%s.Bank[%d][%d][%d]", name, r, g, k)
				bank := bankstate.NewBankImpl(bankName)
				bank.CmdCycles = b.bankCmdCycles()

				for _, hook := range b.hooks {
					bank.AcceptHook(hook)
				}

				banks[r][g][k] = bank
			}
		}
	}

	channel := channelstate.NewChannelImpl(channelstate.Config{
		NumRank:      b.numRank,
		NumBankGroup: b.numBankGroup,
		NumBank:      b.numBank,
		IsGDDR:       b.protocol.isGDDR(),
		Timing:       timing,
		TFAW:         b.tFAW,
		T32AW:        b.t32AW,
	}, banks)

	cmdQueue := cmdqueue.NewCommandQueueImpl(
		b.queueStructure, b.numRank, b.numBankGroup, b.numBank,
		b.commandQueueSize, channel)

	addrMapper := addressmapping.MakeBuilder().
		WithBurstLength(b.burstLength).
		WithBusWidth(b.busWidth).
		WithNumChannel(1).
		WithNumRank(b.numRank).
		WithNumBankGroup(b.numBankGroup).
		WithNumBank(b.numBank).
		WithNumRow(b.numRow).
		WithNumCol(b.numCol).
		Build()

	numAccessUnitBits, _ := log2(uint64(b.busWidth / 8 * b.burstLength))

	subTransQueue := &trans.FCFSSubTransactionQueue{
		Capacity: b.transactionQueueSize,
		CmdQueue: cmdQueue,
		CmdCreator: &trans.ClosePageCommandCreator{
			AddrMapper: addrMapper,
		},
	}

	refreshClock := refresh.NewClock(
		b.refreshPolicy, b.numRank, b.numBankGroup, b.numBank, b.tREFI,
		b.enableSelfRefresh, b.srefThreshold, channel)

	c := &Controller{
		NameBase:         naming.MakeBase(name),
		channel:          channel,
		cmdQueue:         cmdQueue,
		addrMapper:       addrMapper,
		subTransSplitter: trans.NewSubTransSplitter(int(numAccessUnitBits)),
		subTransQueue:    subTransQueue,
		refreshClock:     refreshClock,
	}

	for _, hook := range b.hooks {
		c.AcceptHook(hook)
	}

	return c
}

func (b Builder) bankCmdCycles() map[signal.CommandKind]int {
	activate := b.tRCD - b.tAL
	if b.protocol.isGDDR() || b.protocol.isHBM() {
		activate = b.tRCDRD - b.tAL
	}

	return map[signal.CommandKind]int{
		signal.CmdKindRead:           b.readDelay,
		signal.CmdKindReadPrecharge:  b.tRP,
		signal.CmdKindWrite:          b.writeDelay,
		signal.CmdKindWritePrecharge: b.tRP,
		signal.CmdKindActivate:       activate,
		signal.CmdKindPrecharge:      b.tRP,
		signal.CmdKindRefreshBank:    1,
		signal.CmdKindRefresh:        1,
		signal.CmdKindSRefEnter:      1,
		signal.CmdKindSRefExit:       1,
	}
}

//nolint:funlen
func (b *Builder) generateTiming() dramtiming.Timing {
	t := dramtiming.MakeTiming()

	b.tRL = b.tAL + b.tCL
	b.tWL = b.tAL + b.tCWL
	b.readDelay = b.tRL + b.burstCycle
	b.writeDelay = b.tRL + b.burstCycle
	b.tRC = b.tRAS + b.tRP

	readToReadL := max(b.burstCycle, b.tCCDL)
	readToReadS := max(b.burstCycle, b.tCCDS)
	readToReadO := b.burstCycle + b.tRTRS
	readToWrite := b.tRL + b.burstCycle - b.tWL + b.tRTRS
	readToWriteO := b.readDelay + b.burstCycle + b.tRTRS - b.writeDelay
	readToPrecharge := b.tAL + b.tRTP
	readpToAct := b.tAL + b.burstCycle + b.tRTP + b.tRP

	writeToReadL := b.writeDelay + b.tWTRL
	writeToReadS := b.writeDelay + b.tWTRS
	writeToReadO := b.writeDelay + b.burstCycle + b.tRTRS - b.readDelay
	writeToWriteL := max(b.burstCycle, b.tCCDL)
	writeToWriteS := max(b.burstCycle, b.tCCDS)
	writeToWriteO := b.burstCycle
	writeToPrecharge := b.tWL + b.burstCycle + b.tWR

	prechargeToActivate := b.tRP
	prechargeToPrecharge := b.tPPD
	readToActivate := readToPrecharge + prechargeToActivate
	writeToActivate := writeToPrecharge + prechargeToActivate

	activateToActivate := b.tRC
	activateToActivateL := b.tRRDL
	activateToActivateS := b.tRRDS
	activateToPrecharge := b.tRAS
	activateToRead := b.tRCD - b.tAL
	activateToWrite := b.tRCD - b.tAL

	if b.protocol.isGDDR() || b.protocol.isHBM() {
		activateToRead = b.tRCDRD
		activateToWrite = b.tRCDWR
	}

	activateToRefresh := b.tRC

	refreshToRefresh := b.tREFI
	refreshToActivate := b.tRFC
	refreshToActivateBank := b.tRFCb

	selfRefreshEntryToExit := b.tCKESR
	selfRefreshExit := b.tXS

	if b.numBankGroup == 1 {
		readToReadL = max(b.burstCycle, b.tCCDS)
		writeToReadL = b.writeDelay + b.tWTRS
		writeToWriteL = max(b.burstCycle, b.tCCDS)
		activateToActivateL = b.tRRDS
	}

	t.SameBank[signal.CmdKindRead] = []dramtiming.Entry{
		{NextKind: signal.CmdKindRead, MinGap: readToReadL},
		{NextKind: signal.CmdKindWrite, MinGap: readToWrite},
		{NextKind: signal.CmdKindReadPrecharge, MinGap: readToReadL},
		{NextKind: signal.CmdKindWritePrecharge, MinGap: readToWrite},
		{NextKind: signal.CmdKindPrecharge, MinGap: readToPrecharge},
	}
	t.OtherBanksInBankGroup[signal.CmdKindRead] = []dramtiming.Entry{
		{NextKind: signal.CmdKindRead, MinGap: readToReadL},
		{NextKind: signal.CmdKindWrite, MinGap: readToWrite},
		{NextKind: signal.CmdKindReadPrecharge, MinGap: readToReadL},
		{NextKind: signal.CmdKindWritePrecharge, MinGap: readToWrite},
	}
	t.SameRank[signal.CmdKindRead] = []dramtiming.Entry{
		{NextKind: signal.CmdKindRead, MinGap: readToReadS},
		{NextKind: signal.CmdKindWrite, MinGap: readToWrite},
		{NextKind: signal.CmdKindReadPrecharge, MinGap: readToReadS},
	}
	t.OtherRanks[signal.CmdKindRead] = []dramtiming.Entry{
		{NextKind: signal.CmdKindRead, MinGap: readToReadO},
		{NextKind: signal.CmdKindWrite, MinGap: readToWriteO},
	}

	t.SameBank[signal.CmdKindWrite] = []dramtiming.Entry{
		{NextKind: signal.CmdKindRead, MinGap: writeToReadL},
		{NextKind: signal.CmdKindWrite, MinGap: writeToWriteL},
		{NextKind: signal.CmdKindReadPrecharge, MinGap: writeToReadL},
		{NextKind: signal.CmdKindPrecharge, MinGap: writeToPrecharge},
	}
	t.OtherBanksInBankGroup[signal.CmdKindWrite] = []dramtiming.Entry{
		{NextKind: signal.CmdKindRead, MinGap: writeToReadL},
		{NextKind: signal.CmdKindWrite, MinGap: writeToWriteL},
		{NextKind: signal.CmdKindReadPrecharge, MinGap: writeToReadL},
	}
	t.SameRank[signal.CmdKindWrite] = []dramtiming.Entry{
		{NextKind: signal.CmdKindRead, MinGap: writeToReadS},
		{NextKind: signal.CmdKindWrite, MinGap: writeToWriteS},
		{NextKind: signal.CmdKindReadPrecharge, MinGap: writeToReadS},
	}
	t.OtherRanks[signal.CmdKindWrite] = []dramtiming.Entry{
		{NextKind: signal.CmdKindRead, MinGap: writeToReadO},
		{NextKind: signal.CmdKindWrite, MinGap: writeToWriteO},
		{NextKind: signal.CmdKindReadPrecharge, MinGap: writeToReadO},
		{NextKind: signal.CmdKindWritePrecharge, MinGap: writeToWriteO},
	}

	t.SameBank[signal.CmdKindReadPrecharge] = []dramtiming.Entry{
		{NextKind: signal.CmdKindActivate, MinGap: readpToAct},
		{NextKind: signal.CmdKindRefresh, MinGap: readToActivate},
		{NextKind: signal.CmdKindRefreshBank, MinGap: readToActivate},
		{NextKind: signal.CmdKindSRefEnter, MinGap: readToActivate},
	}
	t.OtherBanksInBankGroup[signal.CmdKindReadPrecharge] = []dramtiming.Entry{
		{NextKind: signal.CmdKindRead, MinGap: readToReadL},
		{NextKind: signal.CmdKindWrite, MinGap: readToWrite},
		{NextKind: signal.CmdKindReadPrecharge, MinGap: readToReadL},
		{NextKind: signal.CmdKindWritePrecharge, MinGap: readToWrite},
	}
	t.SameRank[signal.CmdKindReadPrecharge] = []dramtiming.Entry{
		{NextKind: signal.CmdKindRead, MinGap: readToReadS},
		{NextKind: signal.CmdKindWrite, MinGap: readToWrite},
		{NextKind: signal.CmdKindReadPrecharge, MinGap: readToReadS},
	}
	t.OtherRanks[signal.CmdKindReadPrecharge] = []dramtiming.Entry{
		{NextKind: signal.CmdKindRead, MinGap: readToReadO},
		{NextKind: signal.CmdKindWrite, MinGap: readToWriteO},
		{NextKind: signal.CmdKindReadPrecharge, MinGap: readToReadO},
		{NextKind: signal.CmdKindWritePrecharge, MinGap: readToWriteO},
	}

	t.SameBank[signal.CmdKindWritePrecharge] = []dramtiming.Entry{
		{NextKind: signal.CmdKindActivate, MinGap: writeToActivate},
		{NextKind: signal.CmdKindRefresh, MinGap: writeToActivate},
		{NextKind: signal.CmdKindRefreshBank, MinGap: writeToActivate},
		{NextKind: signal.CmdKindSRefEnter, MinGap: writeToActivate},
	}
	t.OtherBanksInBankGroup[signal.CmdKindWritePrecharge] = []dramtiming.Entry{
		{NextKind: signal.CmdKindRead, MinGap: writeToReadL},
		{NextKind: signal.CmdKindWrite, MinGap: writeToWriteL},
		{NextKind: signal.CmdKindReadPrecharge, MinGap: writeToReadL},
	}
	t.SameRank[signal.CmdKindWritePrecharge] = []dramtiming.Entry{
		{NextKind: signal.CmdKindRead, MinGap: writeToReadS},
		{NextKind: signal.CmdKindWrite, MinGap: writeToWriteS},
		{NextKind: signal.CmdKindReadPrecharge, MinGap: writeToReadS},
	}
	t.OtherRanks[signal.CmdKindWritePrecharge] = []dramtiming.Entry{
		{NextKind: signal.CmdKindRead, MinGap: writeToReadO},
		{NextKind: signal.CmdKindWrite, MinGap: writeToWriteO},
		{NextKind: signal.CmdKindReadPrecharge, MinGap: writeToReadO},
	}

	t.SameBank[signal.CmdKindActivate] = []dramtiming.Entry{
		{NextKind: signal.CmdKindActivate, MinGap: activateToActivate},
		{NextKind: signal.CmdKindRead, MinGap: activateToRead},
		{NextKind: signal.CmdKindWrite, MinGap: activateToWrite},
		{NextKind: signal.CmdKindReadPrecharge, MinGap: activateToRead},
		{NextKind: signal.CmdKindWritePrecharge, MinGap: activateToWrite},
		{NextKind: signal.CmdKindPrecharge, MinGap: activateToPrecharge},
	}
	t.OtherBanksInBankGroup[signal.CmdKindActivate] = []dramtiming.Entry{
		{NextKind: signal.CmdKindActivate, MinGap: activateToActivateL},
		{NextKind: signal.CmdKindRefreshBank, MinGap: activateToRefresh},
	}
	t.SameRank[signal.CmdKindActivate] = []dramtiming.Entry{
		{NextKind: signal.CmdKindActivate, MinGap: activateToActivateS},
		{NextKind: signal.CmdKindRefreshBank, MinGap: activateToRefresh},
	}

	t.SameBank[signal.CmdKindPrecharge] = []dramtiming.Entry{
		{NextKind: signal.CmdKindActivate, MinGap: prechargeToActivate},
		{NextKind: signal.CmdKindRefresh, MinGap: prechargeToActivate},
		{NextKind: signal.CmdKindRefreshBank, MinGap: prechargeToActivate},
		{NextKind: signal.CmdKindSRefEnter, MinGap: prechargeToActivate},
	}

	if b.protocol.isGDDR() || b.protocol == LPDDR4 {
		t.OtherBanksInBankGroup[signal.CmdKindPrecharge] = []dramtiming.Entry{
			{NextKind: signal.CmdKindPrecharge, MinGap: prechargeToPrecharge},
		}
		t.SameRank[signal.CmdKindPrecharge] = []dramtiming.Entry{
			{NextKind: signal.CmdKindPrecharge, MinGap: prechargeToPrecharge},
		}
	}

	t.SameBank[signal.CmdKindRefreshBank] = []dramtiming.Entry{
		{NextKind: signal.CmdKindActivate, MinGap: refreshToActivateBank},
		{NextKind: signal.CmdKindRefresh, MinGap: refreshToActivateBank},
		{NextKind: signal.CmdKindRefreshBank, MinGap: refreshToActivateBank},
		{NextKind: signal.CmdKindSRefEnter, MinGap: refreshToActivateBank},
	}
	t.OtherBanksInBankGroup[signal.CmdKindRefreshBank] = []dramtiming.Entry{
		{NextKind: signal.CmdKindActivate, MinGap: refreshToActivate},
		{NextKind: signal.CmdKindRefreshBank, MinGap: refreshToRefresh},
	}
	t.SameRank[signal.CmdKindRefreshBank] = []dramtiming.Entry{
		{NextKind: signal.CmdKindActivate, MinGap: refreshToActivate},
		{NextKind: signal.CmdKindRefreshBank, MinGap: refreshToRefresh},
	}

	// REFRESH, SREF_ENTER and SREF_EXIT address the entire rank.
	t.SameRank[signal.CmdKindRefresh] = []dramtiming.Entry{
		{NextKind: signal.CmdKindActivate, MinGap: refreshToActivate},
		{NextKind: signal.CmdKindRefresh, MinGap: refreshToActivate},
		{NextKind: signal.CmdKindSRefEnter, MinGap: refreshToActivate},
	}

	t.SameRank[signal.CmdKindSRefEnter] = []dramtiming.Entry{
		{NextKind: signal.CmdKindSRefExit, MinGap: selfRefreshEntryToExit},
	}

	t.SameRank[signal.CmdKindSRefExit] = []dramtiming.Entry{
		{NextKind: signal.CmdKindActivate, MinGap: selfRefreshExit},
		{NextKind: signal.CmdKindRefresh, MinGap: selfRefreshExit},
		{NextKind: signal.CmdKindRefreshBank, MinGap: selfRefreshExit},
	}

	return t
}

func (b *Builder) calculateBurstCycle() {
	if b.burstLength == 0 {
		panic("burst length cannot be 0")
	}

	switch b.protocol {
	case GDDR5:
		b.burstCycle = b.burstLength / 4
	case GDDR5X:
		b.burstCycle = b.burstLength / 8
	case GDDR6:
		b.burstCycle = b.burstLength / 16
	default:
		b.burstCycle = b.burstLength / 2
	}
}

// log2 returns the log2 of n, and false if n is not a power of two.
func log2(n uint64) (uint64, bool) {
	oneCount := 0
	onePos := uint64(0)

	for i := uint64(0); i < 64; i++ {
		if n&(1<<i) > 0 {
			onePos = i
			oneCount++
		}
	}

	return onePos, oneCount == 1
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
