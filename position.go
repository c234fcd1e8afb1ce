// position.go implements Position: the bitboard board state, its
// invariants, and the copy-on-make MakeMove that produces a new position
// from an old one plus a move. Nothing here checks legality; it trusts the
// caller to supply a move the generator itself produced.

package chessgen

// Position is the complete state of a chess game at one point in time. It
// is a small value type (a handful of uint64s and bytes); copying one is
// cheap, which is what makes MakeMove's copy-on-make style affordable.
type Position struct {
	// Pieces[p] is the set of squares occupied by piece type p, regardless
	// of color.
	Pieces [6]Bitboard
	// Colors[c] is the set of squares occupied by color c, regardless of
	// piece type.
	Colors [2]Bitboard
	// Combined is the union of both colors: every occupied square.
	Combined Bitboard

	SideToMove Color
	// EnPassant is the square behind a pawn that just double-stepped, or
	// NoSquare if no en-passant capture is currently available.
	EnPassant    Square
	CastleRights CastleRights

	// Pinned is the set of SideToMove's own pieces absolutely pinned to
	// its king. Checkers is the set of the opponent's pieces currently
	// giving check to SideToMove's king. Both are recomputed from scratch
	// by MakeMove every time a move is applied.
	Pinned   Bitboard
	Checkers Bitboard

	HalfmoveClock int
	FullmoveNum   int
}

// PieceAt reports the piece and color occupying sq, and false if the
// square is empty.
func (p *Position) PieceAt(sq Square) (Piece, Color, bool) {
	bb := sq.Bitboard()
	if p.Combined&bb == 0 {
		return NoPiece, ColorWhite, false
	}
	color := ColorBlack
	if p.Colors[ColorWhite]&bb != 0 {
		color = ColorWhite
	}
	for piece := Pawn; piece <= King; piece++ {
		if p.Pieces[piece]&bb != 0 {
			return piece, color, true
		}
	}
	return NoPiece, color, false
}

// KingSquare returns the square of color's king.
func (p *Position) KingSquare(color Color) Square {
	return (p.Pieces[King] & p.Colors[color]).LSB()
}

// xor toggles bb across one piece type, one color, and Combined in a
// single step, the primitive every board mutation in MakeMove is built
// from.
func (p *Position) xor(piece Piece, bb Bitboard, color Color) {
	p.Pieces[piece] ^= bb
	p.Colors[color] ^= bb
	p.Combined ^= bb
}

// MakeMove applies m to p and returns the resulting position; p itself is
// left untouched. The move is assumed to be one the legal generator would
// produce for p; MakeMove performs no legality check of its own.
func (p Position) MakeMove(m ChessMove) Position {
	next := p
	next.EnPassant = NoSquare
	next.Pinned = Empty
	next.Checkers = Empty

	mover := p.SideToMove
	piece, _, _ := p.PieceAt(m.Source)
	captured, capturedColor, hasCaptured := p.PieceAt(m.Dest)

	sourceBB := m.Source.Bitboard()
	destBB := m.Dest.Bitboard()

	next.xor(piece, sourceBB|destBB, mover)
	if hasCaptured {
		next.xor(captured, destBB, capturedColor)
	}

	next.CastleRights.clearFromSquare(m.Source)
	next.CastleRights.clearFromSquare(m.Dest)

	oppKing := next.KingSquare(mover.Other())

	switch piece {
	case Pawn:
		switch {
		case m.Promotion != NoPiece:
			next.xor(Pawn, destBB, mover)
			next.xor(m.Promotion, destBB, mover)

		case PAWN_SOURCE_DOUBLE_MOVES[mover].Has(m.Source) && PAWN_DEST_DOUBLE_MOVES[mover].Has(m.Dest):
			adjacentEnemyPawn := ADJACENT_FILES[m.Dest.File()] & RANKS[m.Dest.Rank()] &
				next.Pieces[Pawn] & next.Colors[mover.Other()]
			if adjacentEnemyPawn != Empty {
				if back := m.Dest.Backward(mover); back.Ok {
					next.EnPassant = back.Square
				}
			}

		case m.Dest == p.EnPassant:
			if capSq := m.Dest.Forward(mover.Other()); capSq.Ok {
				next.xor(Pawn, capSq.Square.Bitboard(), mover.Other())
			}
		}

	case King:
		if (sourceBB^destBB)&CASTLE_SQUARES == (sourceBB ^ destBB) {
			rank := m.Source.Rank()
			if m.Dest.File() == 6 { // kingside: rook h -> f
				next.xor(Rook, NewSquare(rank, 7).Bitboard()|NewSquare(rank, 5).Bitboard(), mover)
			} else if m.Dest.File() == 2 { // queenside: rook a -> d
				next.xor(Rook, NewSquare(rank, 0).Bitboard()|NewSquare(rank, 3).Bitboard(), mover)
			}
		}
	}

	recomputePinsAndChecks(&next, mover, oppKing)

	next.SideToMove = mover.Other()
	return next
}

// recomputePinsAndChecks finds every mover-colored piece giving check to
// oppKing and every mover-colored slider pinning one of oppKing's own
// defenders to it. Knight and pawn checks are found directly (a leaper
// either attacks the king's square or it doesn't); slider checks and pins
// are found by walking the squares between attacker and king along the
// attacker's ray: an empty gap means check, exactly one piece in the gap
// means that piece is pinned (if it belongs to the king's own side; a
// blocker of the attacker's own color isn't a pin at all, just an attacker
// that can't see the king). This runs uniformly whether next arrived via
// MakeMove or fresh from ParseFEN, so a position loaded mid-check has a
// correct Checkers set even though no move produced it.
func recomputePinsAndChecks(next *Position, mover Color, oppKing Square) {
	defenders := mover.Other()

	next.Checkers |= KNIGHT_MOVES[oppKing] & next.Pieces[Knight] & next.Colors[mover]
	next.Checkers |= PAWN_ATTACKS[defenders][oppKing] & next.Pieces[Pawn] & next.Colors[mover]

	diagAttackers := bishopRays[oppKing] & (next.Pieces[Bishop] | next.Pieces[Queen]) & next.Colors[mover]
	orthoAttackers := rookRays[oppKing] & (next.Pieces[Rook] | next.Pieces[Queen]) & next.Colors[mover]

	attackers := diagAttackers | orthoAttackers
	for attackers != Empty {
		var a Square
		attackers, a = attackers.PopLSB()

		gap := BETWEEN[a][oppKing] & next.Combined
		switch gap.Count() {
		case 0:
			next.Checkers = next.Checkers.Set(a)
		case 1:
			if blocker := gap.LSB(); next.Colors[defenders].Has(blocker) {
				next.Pinned = next.Pinned.Set(blocker)
			}
		}
	}
}

// IsSquareAttacked reports whether any piece of by-color attacks sq, given
// the board occupancy occ. It is the "super-piece" query used for king
// safety: a rook/bishop/queen attack from sq under occ would see the real
// attacker if one exists; likewise for knight, king, and pawn attacks.
func IsSquareAttacked(sq Square, by Color, occ Bitboard, p *Position) bool {
	if KNIGHT_MOVES[sq]&p.Pieces[Knight]&p.Colors[by] != Empty {
		return true
	}
	if KING_MOVES[sq]&p.Pieces[King]&p.Colors[by] != Empty {
		return true
	}
	if PAWN_ATTACKS[by.Other()][sq]&p.Pieces[Pawn]&p.Colors[by] != Empty {
		return true
	}
	if RookAttacks(sq, occ)&(p.Pieces[Rook]|p.Pieces[Queen])&p.Colors[by] != Empty {
		return true
	}
	if BishopAttacks(sq, occ)&(p.Pieces[Bishop]|p.Pieces[Queen])&p.Colors[by] != Empty {
		return true
	}
	return false
}
