// square.go implements square/file/rank/color algebra: small, pure value
// types with wrap-safe neighbor accessors. Encoding is rank*8+file so that
// index 0 is a1 and index 63 is h8, matching algebraic notation directly.

package chessgen

// Square is a board square index in [0, 64), encoded as rank*8+file.
type Square int8

// NoSquare is the sentinel for "no square" (used for EnPassant and similar
// optional-square fields that don't need the full [OptionalSquare] tag; its
// value lies outside 0..63, so it never coincides with a real square).
const NoSquare Square = -1

// NewSquare builds a square from a zero-based rank and file.
func NewSquare(rank, file int) Square { return Square(rank*8 + file) }

// Index returns the square's 0..63 index.
func (s Square) Index() int { return int(s) }

// Rank returns the square's zero-based rank (0 = rank 1, 7 = rank 8).
func (s Square) Rank() int { return int(s) / 8 }

// File returns the square's zero-based file (0 = file a, 7 = file h).
func (s Square) File() int { return int(s) % 8 }

// Bitboard returns the single-bit bitboard for the square.
func (s Square) Bitboard() Bitboard { return Bitboard(1) << uint(s) }

// String renders the square in algebraic notation, e.g. "a1", "h8".
func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	return squareNames[s]
}

var squareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// OptionalSquare tags a neighbor lookup result, since "none" at the board
// edge is a real outcome rather than a sentinel a caller might forget to
// check. Bitboard-level code doesn't need this (it already respects edges
// via file/rank masks); only square-at-a-time path walking does.
type OptionalSquare struct {
	Square Square
	Ok     bool
}

func some(s Square) OptionalSquare { return OptionalSquare{Square: s, Ok: true} }

var none = OptionalSquare{}

// Up returns the square one rank higher, or "none" on the eighth rank.
func (s Square) Up() OptionalSquare {
	if s.Rank() == 7 {
		return none
	}
	return some(s + 8)
}

// Down returns the square one rank lower, or "none" on the first rank.
func (s Square) Down() OptionalSquare {
	if s.Rank() == 0 {
		return none
	}
	return some(s - 8)
}

// Left returns the square one file to the left, or "none" on the a-file.
func (s Square) Left() OptionalSquare {
	if s.File() == 0 {
		return none
	}
	return some(s - 1)
}

// Right returns the square one file to the right, or "none" on the h-file.
func (s Square) Right() OptionalSquare {
	if s.File() == 7 {
		return none
	}
	return some(s + 1)
}

// Forward returns the square one rank towards the opponent's back rank for
// the given color, or "none" past the edge.
func (s Square) Forward(c Color) OptionalSquare {
	if c == ColorWhite {
		return s.Up()
	}
	return s.Down()
}

// Backward returns the square one rank towards the mover's own back rank for
// the given color, or "none" past the edge.
func (s Square) Backward(c Color) OptionalSquare {
	if c == ColorWhite {
		return s.Down()
	}
	return s.Up()
}

// IsEdge reports whether the square lies on the outer ring of the board.
func (s Square) IsEdge() bool {
	r, f := s.Rank(), s.File()
	return r == 0 || r == 7 || f == 0 || f == 7
}

// Color is white or black. The zero value is ColorWhite.
type Color int8

const (
	ColorWhite Color = iota
	ColorBlack
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

// allSquares is the lazy (here: precomputed, since it's only 64 elements)
// sequence of all squares in index order 0..63.
func allSquares() []Square {
	squares := make([]Square, 64)
	for i := range squares {
		squares[i] = Square(i)
	}
	return squares
}
