package bankstate_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/dramsim/internal/addressmapping"
	"github.com/sarchlab/dramsim/internal/bankstate"
	"github.com/sarchlab/dramsim/internal/signal"
)

var _ = Describe("BankImpl", func() {
	var (
		bank *bankstate.BankImpl
		loc  addressmapping.Location
	)

	BeforeEach(func() {
		bank = bankstate.NewBankImpl("Bank")
		loc = addressmapping.Location{Rank: 0, BankGroup: 0, Bank: 0, Row: 5, Column: 0}
	})

	It("starts CLOSED with no open row", func() {
		Expect(bank.IsRowOpen()).To(BeFalse())
		Expect(bank.OpenRow()).To(Equal(-1))
		Expect(bank.RowHitCount()).To(Equal(0))
	})

	It("requests an ACTIVATE before a READ on a closed bank", func() {
		read := &signal.Command{Kind: signal.CmdKindRead, Location: loc}

		ready := bank.GetReadyCommand(read)

		Expect(ready).NotTo(BeNil())
		Expect(ready.Kind).To(Equal(signal.CmdKindActivate))
	})

	It("issues a READ once the row is open and timing allows it", func() {
		activate := &signal.Command{Kind: signal.CmdKindActivate, Location: loc}
		bank.StartCommand(activate)

		read := &signal.Command{Kind: signal.CmdKindRead, Location: loc}
		Expect(bank.GetReadyCommand(read)).To(Equal(read))

		bank.StartCommand(read)
		Expect(bank.RowHitCount()).To(Equal(1))
	})

	It("requests a PRECHARGE on a row-buffer conflict", func() {
		activate := &signal.Command{Kind: signal.CmdKindActivate, Location: loc}
		bank.StartCommand(activate)

		otherRow := loc
		otherRow.Row = loc.Row + 1
		read := &signal.Command{Kind: signal.CmdKindRead, Location: otherRow}

		ready := bank.GetReadyCommand(read)

		Expect(ready).NotTo(BeNil())
		Expect(ready.Kind).To(Equal(signal.CmdKindPrecharge))
	})

	It("holds a command back until its earliest cycle", func() {
		activate := &signal.Command{Kind: signal.CmdKindActivate, Location: loc}
		bank.StartCommand(activate)
		bank.UpdateTiming(signal.CmdKindRead, 3)

		read := &signal.Command{Kind: signal.CmdKindRead, Location: loc}
		Expect(bank.GetReadyCommand(read)).To(BeNil())

		bank.Tick()
		bank.Tick()
		Expect(bank.GetReadyCommand(read)).To(BeNil())

		bank.Tick()
		Expect(bank.GetReadyCommand(read)).To(Equal(read))
	})

	It("never lowers an already-raised earliest cycle", func() {
		bank.UpdateTiming(signal.CmdKindActivate, 10)
		bank.UpdateTiming(signal.CmdKindActivate, 2)

		for i := 0; i < 10; i++ {
			Expect(bank.GetReadyCommand(&signal.Command{Kind: signal.CmdKindActivate, Location: loc})).To(BeNil())
			bank.Tick()
		}

		Expect(bank.GetReadyCommand(&signal.Command{Kind: signal.CmdKindActivate, Location: loc})).NotTo(BeNil())
	})

	It("closes the row on PRECHARGE", func() {
		bank.StartCommand(&signal.Command{Kind: signal.CmdKindActivate, Location: loc})
		bank.StartCommand(&signal.Command{Kind: signal.CmdKindPrecharge, Location: loc})

		Expect(bank.IsRowOpen()).To(BeFalse())
		Expect(bank.RowHitCount()).To(Equal(0))
	})

	It("closes the row on a READ_PRECHARGE", func() {
		bank.StartCommand(&signal.Command{Kind: signal.CmdKindActivate, Location: loc})
		bank.StartCommand(&signal.Command{Kind: signal.CmdKindReadPrecharge, Location: loc})

		Expect(bank.IsRowOpen()).To(BeFalse())
	})

	It("moves into and out of Self-Refresh from CLOSED", func() {
		enter := &signal.Command{Kind: signal.CmdKindSRefEnter, Location: loc}
		Expect(bank.GetReadyCommand(enter)).To(Equal(enter))

		bank.StartCommand(enter)

		exit := &signal.Command{Kind: signal.CmdKindSRefExit, Location: loc}
		Expect(bank.GetReadyCommand(exit)).To(Equal(exit))

		bank.StartCommand(exit)
		Expect(bank.IsRowOpen()).To(BeFalse())
	})

	It("requires a PRECHARGE before Self-Refresh entry from OPEN", func() {
		bank.StartCommand(&signal.Command{Kind: signal.CmdKindActivate, Location: loc})

		enter := &signal.Command{Kind: signal.CmdKindSRefEnter, Location: loc}
		ready := bank.GetReadyCommand(enter)

		Expect(ready).NotTo(BeNil())
		Expect(ready.Kind).To(Equal(signal.CmdKindPrecharge))
	})

	It("fires a hook on StartCommand and reports when the trace countdown lands", func() {
		bank.CmdCycles[signal.CmdKindActivate] = 2

		recorded := []signal.CommandKind{}
		bank.AcceptHook(recordingHook(func(cmd *signal.Command) {
			recorded = append(recorded, cmd.Kind)
		}))

		bank.StartCommand(&signal.Command{Kind: signal.CmdKindActivate, Location: loc})

		Expect(bank.Tick()).To(BeFalse())
		Expect(bank.Tick()).To(BeTrue())
		Expect(recorded).To(ConsistOf(signal.CmdKindActivate))
	})
})
