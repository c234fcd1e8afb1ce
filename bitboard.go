// bitboard.go implements Bitboard, a 64-bit set of squares, and the
// De Bruijn-sequence bit scan used throughout the package to turn the least
// significant set bit into a square index without a branchy loop.

package chessgen

// Bitboard is a set of squares packed one bit per square, bit i set meaning
// square i is a member. It is a plain value type: all operations return a
// new Bitboard rather than mutating through a pointer; PopLSB returns the
// popped square alongside the reduced set.
type Bitboard uint64

const (
	// Empty is the bitboard with no squares set.
	Empty Bitboard = 0
	// Full is the bitboard with every square set.
	Full Bitboard = 0xFFFFFFFFFFFFFFFF
)

// bitscanMagic is the De Bruijn multiplier used to hash an isolated bit down
// to a 6-bit lookup index, with a >>58 shift.
const bitscanMagic uint64 = 0x07EDD5E59A4E28C2

// bitScanLookup maps the top 6 bits of (isolated-bit * bitscanMagic) to the
// index of that bit. Built once from the reference De Bruijn sequence and
// persisted as a literal table rather than recomputed at init.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// Set returns b with sq added.
func (b Bitboard) Set(sq Square) Bitboard { return b | sq.Bitboard() }

// Clear returns b with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard { return b &^ sq.Bitboard() }

// Has reports whether sq is a member of b.
func (b Bitboard) Has(sq Square) bool { return b&sq.Bitboard() != 0 }

// IsEmpty reports whether b has no members.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// Count returns the number of set bits (the population count) in b.
func (b Bitboard) Count() int {
	cnt := 0
	for ; b > 0; cnt++ {
		b &= b - 1
	}
	return cnt
}

// LSB returns the square of the least significant set bit. The result is
// meaningless (index 63, by the lookup table's convention) if b is empty;
// callers must check IsEmpty first.
func (b Bitboard) LSB() Square {
	isolated := uint64(b) & (-uint64(b))
	return Square(bitScanLookup[isolated*bitscanMagic>>58])
}

// PopLSB removes the least significant set bit from b and returns both the
// reduced bitboard and the square that was removed. It is the primary
// iteration primitive used by every move-generation loop in this package:
//
//	for bb := from; !bb.IsEmpty(); {
//		var sq Square
//		bb, sq = bb.PopLSB()
//		...
//	}
func (b Bitboard) PopLSB() (Bitboard, Square) {
	sq := b.LSB()
	return b & (b - 1), sq
}

// Shift shifts b by n squares (left for n >= 0, right otherwise). It is a
// plain shift: bits moved past either end of the 64-bit word are dropped,
// and file wraparound is not masked; callers combine this with a file mask
// when directional wraparound must be prevented (see tables.go).
func (b Bitboard) Shift(n int) Bitboard {
	if n >= 0 {
		return b << uint(n)
	}
	return b >> uint(-n)
}

// String renders the bitboard as a newline-separated 8x8 grid, rank 8 first,
// file a first within each rank, '1' for occupied and '.' for empty. This is
// a debugging convenience only; it is not used by any production code path.
func (b Bitboard) String() string {
	buf := make([]byte, 0, 8*9)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Has(NewSquare(rank, file)) {
				buf = append(buf, '1')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
