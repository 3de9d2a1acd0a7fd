// Package dramsim implements a cycle-accurate DRAM channel core: the
// Timing Table, per-bank row-buffer state machines, a per-channel
// state aggregator and a command queue/scheduler, wired together by a
// synchronous Controller.
package dramsim

// Protocol selects which DRAM standard's timing parameters and
// derived behaviors (burst-cycle divisor, tFAW vs t32AW, RCD split
// into read/write variants) apply.
type Protocol int

// The DRAM protocols the core recognizes.
const (
	DDR3 Protocol = iota
	DDR4
	GDDR5
	GDDR5X
	GDDR6
	LPDDR
	LPDDR3
	LPDDR4
	HBM
	HBM2
	HMC
)

// isGDDR reports whether p is one of the GDDR family, which uses the
// t32AW rolling activation window and a burst-cycle divisor other
// than 2.
func (p Protocol) isGDDR() bool {
	return p == GDDR5 || p == GDDR5X || p == GDDR6
}

// isHBM reports whether p is one of the HBM family, which shares
// GDDR's split RCD-to-read/write timing but not its burst divisor or
// activation window.
func (p Protocol) isHBM() bool {
	return p == HBM || p == HBM2
}

func (p Protocol) String() string {
	switch p {
	case DDR3:
		return "DDR3"
	case DDR4:
		return "DDR4"
	case GDDR5:
		return "GDDR5"
	case GDDR5X:
		return "GDDR5X"
	case GDDR6:
		return "GDDR6"
	case LPDDR:
		return "LPDDR"
	case LPDDR3:
		return "LPDDR3"
	case LPDDR4:
		return "LPDDR4"
	case HBM:
		return "HBM"
	case HBM2:
		return "HBM2"
	case HMC:
		return "HMC"
	default:
		return "UNKNOWN"
	}
}
