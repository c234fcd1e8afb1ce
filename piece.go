// piece.go defines the Piece enum and the castling-rights lattice. Both are
// small value types consumed throughout position.go and movegen.go.

package chessgen

// Piece is a chess piece type, color-agnostic (the color lives alongside it
// in Position.Colors). The zero value is Pawn.
type Piece int8

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	pieceCount = int(King) + 1
)

// NoPiece marks the absence of a piece, e.g. an empty square lookup or a
// move with no promotion.
const NoPiece Piece = -1

// PromotionPieces lists the four pieces a pawn may promote to, in the fixed
// emission order the generator always uses: Queen, Rook, Bishop, Knight.
var PromotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}

func (p Piece) String() string {
	switch p {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// pieceLetters gives the FEN letter for a piece, uppercase (white's letter;
// fen.go lowercases it for black).
var pieceLetters = [pieceCount]byte{
	Pawn:   'P',
	Knight: 'N',
	Bishop: 'B',
	Rook:   'R',
	Queen:  'Q',
	King:   'K',
}

// CastleRights tracks which castling moves are still available to each
// side. Rights only ever clear during play (a monotonically decreasing
// lattice); they never get set back once lost.
type CastleRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// clearFromSquare drops whichever right corresponds to a king or rook
// leaving, or being captured on, one of the six rights-relevant squares
// (a1, h1, e1, a8, h8, e8). It is called once for a move's source and once
// for its destination, per spec: either square losing its piece clears the
// rights tied to it.
func (c *CastleRights) clearFromSquare(sq Square) {
	switch sq {
	case SquareA1:
		c.WhiteQueenside = false
	case SquareH1:
		c.WhiteKingside = false
	case SquareE1:
		c.WhiteKingside = false
		c.WhiteQueenside = false
	case SquareA8:
		c.BlackQueenside = false
	case SquareH8:
		c.BlackKingside = false
	case SquareE8:
		c.BlackKingside = false
		c.BlackQueenside = false
	}
}

// Kingside reports whether color still has the kingside right.
func (c CastleRights) Kingside(color Color) bool {
	if color == ColorWhite {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside reports whether color still has the queenside right.
func (c CastleRights) Queenside(color Color) bool {
	if color == ColorWhite {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// Named squares used by castling-rights bookkeeping and the castling
// tables; kept as a small supplement to the full squareNames table in
// square.go because these six recur in clearFromSquare above and in the
// castling tables of tables.go.
const (
	SquareA1 Square = 0
	SquareE1 Square = 4
	SquareH1 Square = 7
	SquareA8 Square = 56
	SquareE8 Square = 60
	SquareH8 Square = 63
)
