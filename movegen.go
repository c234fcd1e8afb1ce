// movegen.go implements legal move generation using magic bitboards for
// sliders and the precomputed Pinned/Checkers bitboards from the current
// Position to filter pseudo-legal moves into legal ones in bulk, without
// making and unmaking each candidate.
//
// Dispatch is staged by how many pieces currently give check (0, 1, or 2+),
// each stage threading a checkMask Bitboard through ordinary function
// arguments rather than a generic type parameter, the same mask-threading
// idiom used by reference bitboard engines for this exact technique.

package chessgen

// GenerateMoves returns every legal move available to pos.SideToMove.
func GenerateMoves(pos *Position) MoveList {
	var list MoveList

	color := pos.SideToMove
	friendly := pos.Colors[color]
	kingSq := pos.KingSquare(color)

	switch pos.Checkers.Count() {
	case 0:
		genPawnMoves(pos, &list, color, Full)
		genPieceMoves(pos, &list, Knight, color, friendly, Full, knightAttacksAt)
		genPieceMoves(pos, &list, Bishop, color, friendly, Full, BishopAttacks)
		genPieceMoves(pos, &list, Rook, color, friendly, Full, RookAttacks)
		genPieceMoves(pos, &list, Queen, color, friendly, Full, QueenAttacks)
		genKingMoves(pos, &list, color, friendly)

	case 1:
		checker := pos.Checkers.LSB()
		checkMask := BETWEEN[checker][kingSq].Set(checker)
		genPawnMoves(pos, &list, color, checkMask)
		genPieceMoves(pos, &list, Knight, color, friendly, checkMask, knightAttacksAt)
		genPieceMoves(pos, &list, Bishop, color, friendly, checkMask, BishopAttacks)
		genPieceMoves(pos, &list, Rook, color, friendly, checkMask, RookAttacks)
		genPieceMoves(pos, &list, Queen, color, friendly, checkMask, QueenAttacks)
		genKingMoves(pos, &list, color, friendly)

	default: // double check: only the king can move
		genKingMoves(pos, &list, color, friendly)
	}

	return list
}

func knightAttacksAt(sq Square, _ Bitboard) Bitboard { return KNIGHT_MOVES[sq] }

// genPieceMoves generates moves for every friendly piece of the given type
// using attacksFn as its pseudo-attack rule. Not-pinned pieces are masked
// by checkMask only; pinned pieces are masked by the king-through-pinner
// line instead, and only when the king isn't currently in check: a pinned
// piece has no legal moves at all while its king is in check, so that
// branch is skipped entirely rather than intersected with checkMask.
func genPieceMoves(pos *Position, list *MoveList, piece Piece, color Color, friendly, checkMask Bitboard, attacksFn func(Square, Bitboard) Bitboard) {
	pieces := pos.Pieces[piece] & pos.Colors[color]
	notPinned := pieces &^ pos.Pinned

	for notPinned != Empty {
		var sq Square
		notPinned, sq = notPinned.PopLSB()
		targets := attacksFn(sq, pos.Combined) &^ friendly & checkMask
		emit(list, sq, targets)
	}

	if checkMask != Full {
		return
	}

	kingSq := pos.KingSquare(color)
	pinned := pieces & pos.Pinned
	for pinned != Empty {
		var sq Square
		pinned, sq = pinned.PopLSB()
		targets := attacksFn(sq, pos.Combined) &^ friendly & LINES[kingSq][sq]
		emit(list, sq, targets)
	}
}

func emit(list *MoveList, source Square, targets Bitboard) {
	for targets != Empty {
		var dest Square
		targets, dest = targets.PopLSB()
		list.Push(ChessMove{Source: source, Dest: dest, Promotion: NoPiece})
	}
}

// promotionRank is the rank a pawn of color sits on the move before it
// promotes: the rank immediately before its promotion rank, per the
// resolved "seventh vs eighth rank" ambiguity (see DESIGN.md).
func promotionRank(color Color) int {
	if color == ColorWhite {
		return 6
	}
	return 1
}

func genPawnMoves(pos *Position, list *MoveList, color Color, checkMask Bitboard) {
	pawns := pos.Pieces[Pawn] & pos.Colors[color]
	notPinned := pawns &^ pos.Pinned
	preRank := promotionRank(color)

	for notPinned != Empty {
		var sq Square
		notPinned, sq = notPinned.PopLSB()
		targets := pawnPseudoLegals(pos, sq, color) &^ pos.Colors[color] & checkMask
		emitPawn(list, sq, targets, preRank)
	}

	if checkMask == Full {
		kingSq := pos.KingSquare(color)
		pinned := pawns & pos.Pinned
		for pinned != Empty {
			var sq Square
			pinned, sq = pinned.PopLSB()
			targets := pawnPseudoLegals(pos, sq, color) &^ pos.Colors[color] & LINES[kingSq][sq]
			emitPawn(list, sq, targets, preRank)
		}
	}

	genEnPassant(pos, list, color, checkMask)
}

// pawnPseudoLegals is the forward-push set (blocked by any occupancy, with
// the double push additionally requiring the intermediate square empty)
// unioned with the diagonal-capture set (only onto enemy occupancy).
func pawnPseudoLegals(pos *Position, sq Square, color Color) Bitboard {
	occ := pos.Combined
	var pushes Bitboard

	single := PAWN_MOVES[color][sq]
	if single != Empty && single&occ == Empty {
		pushes = single
		if PAWN_SOURCE_DOUBLE_MOVES[color].Has(sq) {
			if two := single.LSB().Forward(color); two.Ok {
				if doubleBB := two.Square.Bitboard(); occ&doubleBB == Empty {
					pushes |= doubleBB
				}
			}
		}
	}

	captures := PAWN_ATTACKS[color][sq] & pos.Colors[color.Other()]
	return pushes | captures
}

func emitPawn(list *MoveList, source Square, targets Bitboard, preRank int) {
	promoting := source.Rank() == preRank
	for targets != Empty {
		var dest Square
		targets, dest = targets.PopLSB()
		if !promoting {
			list.Push(ChessMove{Source: source, Dest: dest, Promotion: NoPiece})
			continue
		}
		for _, promo := range PromotionPieces {
			list.Push(ChessMove{Source: source, Dest: dest, Promotion: promo})
		}
	}
}

// genEnPassant handles the en-passant capture separately from the
// pseudo-legal pawn moves above: it is legal iff, after virtually removing
// both the capturing and captured pawns and placing the capturer on the ep
// square, the friendly king is not newly exposed to a rook/queen along a
// rank or file, or a bishop/queen along a diagonal.
func genEnPassant(pos *Position, list *MoveList, color Color, checkMask Bitboard) {
	if pos.EnPassant == NoSquare {
		return
	}
	ep := pos.EnPassant
	enemy := color.Other()

	capturedOpt := ep.Forward(enemy)
	if !capturedOpt.Ok {
		return
	}
	capturedSq := capturedOpt.Square

	if !checkMask.Has(ep) && !checkMask.Has(capturedSq) {
		return
	}

	candidates := PAWN_ATTACKS[enemy][ep] & pos.Pieces[Pawn] & pos.Colors[color]
	for candidates != Empty {
		var sq Square
		candidates, sq = candidates.PopLSB()
		if legalEnPassant(pos, sq, ep, capturedSq, color) {
			list.Push(ChessMove{Source: sq, Dest: ep, Promotion: NoPiece})
		}
	}
}

func legalEnPassant(pos *Position, sq, ep, capturedSq Square, color Color) bool {
	enemy := color.Other()
	occ := pos.Combined.Clear(sq).Clear(capturedSq).Set(ep)
	kingSq := pos.KingSquare(color)

	if RookAttacks(kingSq, occ)&(pos.Pieces[Rook]|pos.Pieces[Queen])&pos.Colors[enemy] != Empty {
		return false
	}
	if BishopAttacks(kingSq, occ)&(pos.Pieces[Bishop]|pos.Pieces[Queen])&pos.Colors[enemy] != Empty {
		return false
	}
	return true
}

func genKingMoves(pos *Position, list *MoveList, color Color, friendly Bitboard) {
	kingSq := pos.KingSquare(color)
	enemy := color.Other()
	occWithoutKing := pos.Combined.Clear(kingSq)

	targets := KING_MOVES[kingSq] &^ friendly
	for targets != Empty {
		var dest Square
		targets, dest = targets.PopLSB()
		if !IsSquareAttacked(dest, enemy, occWithoutKing.Set(dest), pos) {
			list.Push(ChessMove{Source: kingSq, Dest: dest, Promotion: NoPiece})
		}
	}

	if pos.Checkers != Empty {
		return
	}
	genCastling(pos, list, color, kingSq)
}

func genCastling(pos *Position, list *MoveList, color Color, kingSq Square) {
	enemy := color.Other()
	rank := 0
	if color == ColorBlack {
		rank = 7
	}

	if pos.CastleRights.Kingside(color) &&
		pos.Combined&castleEmptySquares[color][castleKingside] == Empty &&
		!anyAttacked(pos, castleSafeSquares[color][castleKingside], enemy) {
		list.Push(ChessMove{Source: kingSq, Dest: NewSquare(rank, 6), Promotion: NoPiece})
	}

	if pos.CastleRights.Queenside(color) &&
		pos.Combined&castleEmptySquares[color][castleQueenside] == Empty &&
		!anyAttacked(pos, castleSafeSquares[color][castleQueenside], enemy) {
		list.Push(ChessMove{Source: kingSq, Dest: NewSquare(rank, 2), Promotion: NoPiece})
	}
}

func anyAttacked(pos *Position, squares Bitboard, by Color) bool {
	for squares != Empty {
		var sq Square
		squares, sq = squares.PopLSB()
		if IsSquareAttacked(sq, by, pos.Combined, pos) {
			return true
		}
	}
	return false
}
