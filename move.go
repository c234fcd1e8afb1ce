// move.go defines ChessMove and the fixed-capacity MoveList the generator
// fills. Castling is represented as a plain two-file king move and
// en-passant as a pawn diagonal onto the ep square; neither gets a distinct
// move "type" tag, so MakeMove recovers them from board geometry instead of
// trusting a flag (see position.go).

package chessgen

// maxLegalMoves is the highest move count reachable from any legal chess
// position (a known result from chess theory, exercised directly by perft
// oracle scenario 7 in this package's tests).
const maxLegalMoves = 218

// ChessMove is a single move: a source square, a destination square, and an
// optional promotion piece (NoPiece when none). Equality is component-wise,
// so two ChessMove values compare equal with ==.
type ChessMove struct {
	Source    Square
	Dest      Square
	Promotion Piece
}

// String renders the move in long algebraic form, e.g. "e2e4", "e7e8q".
func (m ChessMove) String() string {
	s := m.Source.String() + m.Dest.String()
	if m.Promotion == NoPiece {
		return s
	}
	switch m.Promotion {
	case Queen:
		return s + "q"
	case Rook:
		return s + "r"
	case Bishop:
		return s + "b"
	case Knight:
		return s + "n"
	}
	return s
}

// MoveList is a fixed-capacity, stack-allocatable list of moves. The
// generator never allocates on the heap to build one: Moves is a plain
// array, sized for the theoretical maximum, and Len tracks how much of it
// is in use.
type MoveList struct {
	Moves [maxLegalMoves]ChessMove
	Len   int
}

// Push appends a move to the list. Callers never overflow it in practice
// (maxLegalMoves is the proven ceiling for any legal position), so Push
// does not itself bounds-check beyond the array's own capacity.
func (l *MoveList) Push(m ChessMove) {
	l.Moves[l.Len] = m
	l.Len++
}

// Slice returns the list's in-use moves as a plain slice, for callers (like
// perft and tests) that want to range over it without touching Len.
func (l *MoveList) Slice() []ChessMove {
	return l.Moves[:l.Len]
}
