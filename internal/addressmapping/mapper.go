package addressmapping

import "math/bits"

// defaultMapper implements a fixed "RoRaBgBaCoCh" bit slicing: from
// the least significant bit up, the address is
// [channel][column][bank][bankgroup][rank][row]. Anything fancier
// (permuted schemes, XOR hashing) belongs to the controller's
// configuration layer, which is out of scope for the DRAM core.
type defaultMapper struct {
	channelBits   int
	columnBits    int
	bankBits      int
	bankGroupBits int
	rankBits      int
}

// Builder builds a Mapper from the same sizing parameters the channel
// itself is built from.
type Builder struct {
	burstLength, busWidth int
	numChannel            int
	numRank               int
	numBankGroup          int
	numBank               int
	numRow                int
	numCol                int
}

// MakeBuilder creates a Builder with zero-valued fields; every With*
// method must be called before Build.
func MakeBuilder() Builder {
	return Builder{}
}

// WithBurstLength sets the burst length, in beats, of a single access unit.
func (b Builder) WithBurstLength(n int) Builder {
	b.burstLength = n
	return b
}

// WithBusWidth sets the channel's data bus width in bits.
func (b Builder) WithBusWidth(n int) Builder {
	b.busWidth = n
	return b
}

// WithNumChannel sets the number of channels sharing this address space.
func (b Builder) WithNumChannel(n int) Builder {
	b.numChannel = n
	return b
}

// WithNumRank sets the number of ranks per channel.
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

// Build assembles the Mapper.
func (b Builder) Build() Mapper {
	accessUnitBytes := b.busWidth / 8 * b.burstLength
	if accessUnitBytes <= 0 {
		accessUnitBytes = 1
	}

	return &defaultMapper{
		channelBits:   log2Ceil(b.numChannel),
		columnBits:    log2Ceil(b.numCol) - log2Ceil(accessUnitBytes),
		bankBits:      log2Ceil(b.numBank),
		bankGroupBits: log2Ceil(b.numBankGroup),
		rankBits:      log2Ceil(b.numRank),
	}
}

// Map slices address into a Location using the fixed bit order documented
// on defaultMapper.
func (m *defaultMapper) Map(address uint64) Location {
	pos := m.channelBits

	col := extractBits(address, pos, m.columnBits)
	pos += m.columnBits

	bank := extractBits(address, pos, m.bankBits)
	pos += m.bankBits

	bankGroup := extractBits(address, pos, m.bankGroupBits)
	pos += m.bankGroupBits

	rank := extractBits(address, pos, m.rankBits)
	pos += m.rankBits

	row := extractBits(address, pos, 64-pos)

	return Location{
		Rank:      int(rank),
		BankGroup: int(bankGroup),
		Bank:      int(bank),
		Row:       int(row),
		Column:    int(col),
	}
}

func extractBits(address uint64, offset, width int) uint64 {
	if width <= 0 {
		return 0
	}

	mask := uint64(1)<<uint(width) - 1

	return (address >> uint(offset)) & mask
}

// log2Ceil returns the number of bits needed to enumerate n distinct
// values, treating n <= 1 as needing zero bits.
func log2Ceil(n int) int {
	if n <= 1 {
		return 0
	}

	return bits.Len(uint(n - 1))
}
