package channelstate

import (
	"github.com/sarchlab/dramsim/internal/addressmapping"
	"github.com/sarchlab/dramsim/internal/bankstate"
	"github.com/sarchlab/dramsim/internal/dramtiming"
	"github.com/sarchlab/dramsim/internal/signal"
)

// ChannelImpl is the default Channel implementation.
type ChannelImpl struct {
	cfg   Config
	banks [][][]bankstate.Bank

	rankSref            []bool
	bankNeedRefreshFlag [][][]bool
	rankNeedRefreshFlag []bool
	refreshQ            []*signal.Command

	fourAW      [][]int
	thirtyTwoAW [][]int

	rankIdleCycles []int

	// now is the channel's own cycle counter, advanced once per Tick.
	// Bank ticks on the same cadence, but the rolling activation
	// windows are channel-level state and need a clock independent of
	// any single bank.
	now int
}

// NewChannelImpl builds a ChannelImpl over an already-constructed bank
// grid, indexed banks[rank][bankgroup][bank].
func NewChannelImpl(cfg Config, banks [][][]bankstate.Bank) *ChannelImpl {
	c := &ChannelImpl{
		cfg:                 cfg,
		banks:               banks,
		rankSref:            make([]bool, cfg.NumRank),
		rankNeedRefreshFlag: make([]bool, cfg.NumRank),
		fourAW:              make([][]int, cfg.NumRank),
		thirtyTwoAW:         make([][]int, cfg.NumRank),
		rankIdleCycles:      make([]int, cfg.NumRank),
	}

	c.bankNeedRefreshFlag = make([][][]bool, cfg.NumRank)
	for r := 0; r < cfg.NumRank; r++ {
		c.bankNeedRefreshFlag[r] = make([][]bool, cfg.NumBankGroup)
		for g := 0; g < cfg.NumBankGroup; g++ {
			c.bankNeedRefreshFlag[r][g] = make([]bool, cfg.NumBank)
		}
	}

	return c
}

func (c *ChannelImpl) bankAt(loc addressmapping.Location) bankstate.Bank {
	return c.banks[loc.Rank][loc.BankGroup][loc.Bank]
}

// GetReadyCommand implements §4.3: delegate to bank state, and for
// rank-wide commands (REFRESH, SELF_REFRESH_ENTER/EXIT) scan the whole
// rank for a bank that still needs to close first.
func (c *ChannelImpl) GetReadyCommand(cmd *signal.Command) *signal.Command {
	if dramtiming.RankWide(cmd.Kind) {
		return c.getReadyRankWide(cmd)
	}

	ready := c.bankAt(cmd.Location).GetReadyCommand(cmd)
	if ready == nil {
		return nil
	}

	if ready.Kind == signal.CmdKindActivate && !c.ActivationWindowOk(cmd.Rank()) {
		return nil
	}

	return ready
}

func (c *ChannelImpl) getReadyRankWide(cmd *signal.Command) *signal.Command {
	rank := cmd.Rank()

	for g := 0; g < c.cfg.NumBankGroup; g++ {
		for b := 0; b < c.cfg.NumBank; b++ {
			bank := c.banks[rank][g][b]
			if bank.IsRowOpen() {
				return &signal.Command{
					Kind:     signal.CmdKindPrecharge,
					Location: addressmapping.Location{Rank: rank, BankGroup: g, Bank: b},
				}
			}
		}
	}

	rep := c.banks[rank][cmd.BankGroup()][cmd.Bank()]

	return rep.GetReadyCommand(cmd)
}

// UpdateState implements §4.3's state-commit rules.
func (c *ChannelImpl) UpdateState(cmd *signal.Command) {
	switch {
	case dramtiming.RankWide(cmd.Kind):
		c.updateStateRankWide(cmd)
	default:
		c.bankAt(cmd.Location).StartCommand(cmd)
	}

	if cmd.Kind.IsRefresh() {
		c.popRefreshQ(cmd)
	}
}

func (c *ChannelImpl) updateStateRankWide(cmd *signal.Command) {
	rank := cmd.Rank()

	for g := 0; g < c.cfg.NumBankGroup; g++ {
		for b := 0; b < c.cfg.NumBank; b++ {
			c.banks[rank][g][b].StartCommand(cmd)
		}
	}

	switch cmd.Kind {
	case signal.CmdKindSRefEnter:
		c.rankSref[rank] = true
	case signal.CmdKindSRefExit:
		c.rankSref[rank] = false
	case signal.CmdKindRefresh:
		c.rankNeedRefreshFlag[rank] = false
	}
}

func (c *ChannelImpl) popRefreshQ(cmd *signal.Command) {
	if len(c.refreshQ) == 0 {
		return
	}

	head := c.refreshQ[0]
	if head.Kind != cmd.Kind || head.Rank() != cmd.Rank() {
		return
	}

	if cmd.Kind == signal.CmdKindRefreshBank {
		if head.BankGroup() != cmd.BankGroup() || head.Bank() != cmd.Bank() {
			return
		}

		c.bankNeedRefreshFlag[cmd.Rank()][cmd.BankGroup()][cmd.Bank()] = false
	}

	c.refreshQ = c.refreshQ[1:]
}

// UpdateTiming implements §4.3's leaves-out scope iteration: same bank,
// other banks in same group, other groups same rank, other ranks. For a
// rank-wide command, SameRank entries reach every bank in the rank
// uniformly instead.
func (c *ChannelImpl) UpdateTiming(cmd *signal.Command) {
	timing := c.cfg.Timing

	if dramtiming.RankWide(cmd.Kind) {
		c.propagateToRank(cmd.Rank(), timing.SameRank[cmd.Kind])
	} else {
		c.applyEntries(cmd.Location, timing.SameBank[cmd.Kind])
		c.propagateOtherBanksInGroup(cmd, timing.OtherBanksInBankGroup[cmd.Kind])
		c.propagateOtherGroupsSameRank(cmd, timing.SameRank[cmd.Kind])
	}

	c.propagateOtherRanks(cmd, timing.OtherRanks[cmd.Kind])
}

// UpdateTimingAndStates is the commit path called after issue.
func (c *ChannelImpl) UpdateTimingAndStates(cmd *signal.Command) {
	c.UpdateState(cmd)
	c.UpdateTiming(cmd)
}

func (c *ChannelImpl) applyEntries(loc addressmapping.Location, entries []dramtiming.Entry) {
	bank := c.bankAt(loc)
	for _, e := range entries {
		bank.UpdateTiming(e.NextKind, e.MinGap)
	}
}

func (c *ChannelImpl) propagateOtherBanksInGroup(cmd *signal.Command, entries []dramtiming.Entry) {
	if len(entries) == 0 {
		return
	}

	rank, group := cmd.Rank(), cmd.BankGroup()

	for b := 0; b < c.cfg.NumBank; b++ {
		if b == cmd.Bank() {
			continue
		}

		bank := c.banks[rank][group][b]
		for _, e := range entries {
			bank.UpdateTiming(e.NextKind, e.MinGap)
		}
	}
}

func (c *ChannelImpl) propagateOtherGroupsSameRank(cmd *signal.Command, entries []dramtiming.Entry) {
	if len(entries) == 0 {
		return
	}

	rank := cmd.Rank()

	for g := 0; g < c.cfg.NumBankGroup; g++ {
		if g == cmd.BankGroup() {
			continue
		}

		for b := 0; b < c.cfg.NumBank; b++ {
			bank := c.banks[rank][g][b]
			for _, e := range entries {
				bank.UpdateTiming(e.NextKind, e.MinGap)
			}
		}
	}
}

func (c *ChannelImpl) propagateToRank(rank int, entries []dramtiming.Entry) {
	if len(entries) == 0 {
		return
	}

	for g := 0; g < c.cfg.NumBankGroup; g++ {
		for b := 0; b < c.cfg.NumBank; b++ {
			bank := c.banks[rank][g][b]
			for _, e := range entries {
				bank.UpdateTiming(e.NextKind, e.MinGap)
			}
		}
	}
}

func (c *ChannelImpl) propagateOtherRanks(cmd *signal.Command, entries []dramtiming.Entry) {
	if len(entries) == 0 {
		return
	}

	for r := 0; r < c.cfg.NumRank; r++ {
		if r == cmd.Rank() {
			continue
		}

		for g := 0; g < c.cfg.NumBankGroup; g++ {
			for b := 0; b < c.cfg.NumBank; b++ {
				bank := c.banks[r][g][b]
				for _, e := range entries {
					bank.UpdateTiming(e.NextKind, e.MinGap)
				}
			}
		}
	}
}

// ActivationWindowOk implements the tFAW/t32AW rolling-window check.
func (c *ChannelImpl) ActivationWindowOk(rank int) bool {
	c.trimWindow(rank)

	if len(c.fourAW[rank]) >= 4 {
		return false
	}

	if c.cfg.IsGDDR && len(c.thirtyTwoAW[rank]) >= 32 {
		return false
	}

	return true
}

func (c *ChannelImpl) trimWindow(rank int) {
	c.fourAW[rank] = trimAged(c.fourAW[rank], c.now, c.cfg.TFAW)

	if c.cfg.IsGDDR {
		c.thirtyTwoAW[rank] = trimAged(c.thirtyTwoAW[rank], c.now, c.cfg.T32AW)
	}
}

func trimAged(window []int, now, span int) []int {
	i := 0
	for i < len(window) && now >= window[i]+span {
		i++
	}

	return window[i:]
}

// UpdateActivationTimes records that rank was just activated, per
// §4.3's update_activation_times.
func (c *ChannelImpl) UpdateActivationTimes(rank int) {
	now := c.now

	c.fourAW[rank] = append(c.fourAW[rank], now)
	if len(c.fourAW[rank]) > 4 {
		c.fourAW[rank] = c.fourAW[rank][len(c.fourAW[rank])-4:]
	}

	if c.cfg.IsGDDR {
		c.thirtyTwoAW[rank] = append(c.thirtyTwoAW[rank], now)
		if len(c.thirtyTwoAW[rank]) > 32 {
			c.thirtyTwoAW[rank] = c.thirtyTwoAW[rank][len(c.thirtyTwoAW[rank])-32:]
		}
	}
}

func (c *ChannelImpl) IsRowOpen(loc addressmapping.Location) bool {
	return c.bankAt(loc).IsRowOpen()
}

func (c *ChannelImpl) OpenRow(loc addressmapping.Location) int {
	return c.bankAt(loc).OpenRow()
}

func (c *ChannelImpl) RowHitCount(loc addressmapping.Location) int {
	return c.bankAt(loc).RowHitCount()
}

func (c *ChannelImpl) IsAllBankIdleInRank(rank int) bool {
	for g := 0; g < c.cfg.NumBankGroup; g++ {
		for b := 0; b < c.cfg.NumBank; b++ {
			if c.banks[rank][g][b].IsRowOpen() {
				return false
			}
		}
	}

	return true
}

func (c *ChannelImpl) IsRankSelfRefreshing(rank int) bool {
	return c.rankSref[rank]
}

func (c *ChannelImpl) IsRefreshWaiting() bool {
	return len(c.refreshQ) > 0
}

func (c *ChannelImpl) IsRWPendingOnRef(cmd *signal.Command) bool {
	if !cmd.Kind.IsReadWrite() && !cmd.Kind.IsRead() && !cmd.Kind.IsWrite() {
		return false
	}

	if len(c.refreshQ) == 0 {
		return false
	}

	head := c.refreshQ[0]
	if head.Rank() != cmd.Rank() {
		return false
	}

	if head.Kind == signal.CmdKindRefreshBank {
		return head.BankGroup() == cmd.BankGroup() && head.Bank() == cmd.Bank()
	}

	return true
}

func (c *ChannelImpl) PendingRefCommand() *signal.Command {
	if len(c.refreshQ) == 0 {
		return nil
	}

	return c.refreshQ[0]
}

// BankNeedRefresh enqueues a REFRESH_BANK order, idempotently.
func (c *ChannelImpl) BankNeedRefresh(loc addressmapping.Location, need bool) {
	if !need {
		c.bankNeedRefreshFlag[loc.Rank][loc.BankGroup][loc.Bank] = false
		return
	}

	if c.bankNeedRefreshFlag[loc.Rank][loc.BankGroup][loc.Bank] {
		return
	}

	c.bankNeedRefreshFlag[loc.Rank][loc.BankGroup][loc.Bank] = true
	c.refreshQ = append(c.refreshQ, &signal.Command{
		Kind:     signal.CmdKindRefreshBank,
		Location: loc,
	})
}

// RankNeedRefresh enqueues a REFRESH order, idempotently.
func (c *ChannelImpl) RankNeedRefresh(rank int, need bool) {
	if !need {
		c.rankNeedRefreshFlag[rank] = false
		return
	}

	if c.rankNeedRefreshFlag[rank] {
		return
	}

	c.rankNeedRefreshFlag[rank] = true
	c.refreshQ = append(c.refreshQ, &signal.Command{
		Kind:     signal.CmdKindRefresh,
		Location: addressmapping.Location{Rank: rank},
	})
}

func (c *ChannelImpl) RankIdleCycles(rank int) int {
	return c.rankIdleCycles[rank]
}

// Tick advances every bank's clock and ages the per-rank idle-cycle
// counters that drive Self-Refresh entry.
func (c *ChannelImpl) Tick() {
	c.now++

	for r := 0; r < c.cfg.NumRank; r++ {
		for g := 0; g < c.cfg.NumBankGroup; g++ {
			for b := 0; b < c.cfg.NumBank; b++ {
				c.banks[r][g][b].Tick()
			}
		}

		if c.rankSref[r] {
			c.rankIdleCycles[r] = 0
			continue
		}

		if c.IsAllBankIdleInRank(r) {
			c.rankIdleCycles[r]++
		} else {
			c.rankIdleCycles[r] = 0
		}
	}
}
