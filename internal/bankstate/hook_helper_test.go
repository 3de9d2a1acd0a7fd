package bankstate_test

import (
	"github.com/sarchlab/dramsim/internal/hooking"
	"github.com/sarchlab/dramsim/internal/signal"
)

// recordingHook adapts a plain func into a hooking.Hook for tests.
type recordingHook func(cmd *signal.Command)

func (f recordingHook) Func(ctx hooking.Ctx) {
	f(ctx.Item.(*signal.Command))
}
