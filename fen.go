// fen.go implements conversions between Forsyth-Edwards Notation (FEN)
// strings and Position values. Functions here expect a well-formed FEN
// string and may panic if one is not given; FEN validity is a parser-level
// concern, not something the move generator itself re-checks.

package chessgen

import (
	"strconv"
	"strings"
)

// StartingPosition is the standard chess starting position in FEN.
const StartingPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Each FEN string consists of six space-separated fields:
//  1. Piece placement: parsed into Pieces/Colors/Combined.
//  2. Active color: "w" or "b".
//  3. Castling rights: "-" or any subset of "KQkq".
//  4. En-passant target square: "-" or an algebraic square.
//  5. Halfmove clock (accepted, not used by move generation).
//  6. Fullmove number (accepted, not used by move generation).

// ParseFEN parses fen into a Position. It panics if fen does not have six
// fields or contains a field that cannot be parsed.
func ParseFEN(fen string) Position {
	fields := strings.SplitN(fen, " ", 6)
	if len(fields) != 6 {
		panic("chessgen: FEN string must have six fields")
	}

	var p Position
	p.Pieces, p.Colors, p.Combined = parsePlacement(fields[0])

	switch fields[1] {
	case "w":
		p.SideToMove = ColorWhite
	case "b":
		p.SideToMove = ColorBlack
	default:
		panic("chessgen: invalid active color field in FEN")
	}

	for i := 0; i < len(fields[2]); i++ {
		switch fields[2][i] {
		case 'K':
			p.CastleRights.WhiteKingside = true
		case 'Q':
			p.CastleRights.WhiteQueenside = true
		case 'k':
			p.CastleRights.BlackKingside = true
		case 'q':
			p.CastleRights.BlackQueenside = true
		case '-':
		default:
			panic("chessgen: invalid castling rights field in FEN")
		}
	}

	p.EnPassant = parseSquare(fields[3])

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		panic("chessgen: cannot parse halfmove clock from FEN")
	}
	p.HalfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		panic("chessgen: cannot parse fullmove number from FEN")
	}
	p.FullmoveNum = fullmove

	recomputePinsAndChecks(&p, p.SideToMove.Other(), p.KingSquare(p.SideToMove))
	return p
}

// SerializeFEN renders p as a FEN string.
func SerializeFEN(p Position) string {
	var b strings.Builder
	b.Grow(72)

	b.WriteString(serializePlacement(p.Pieces, p.Colors))
	b.WriteByte(' ')

	if p.SideToMove == ColorWhite {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}
	b.WriteByte(' ')

	wrote := false
	if p.CastleRights.WhiteKingside {
		b.WriteByte('K')
		wrote = true
	}
	if p.CastleRights.WhiteQueenside {
		b.WriteByte('Q')
		wrote = true
	}
	if p.CastleRights.BlackKingside {
		b.WriteByte('k')
		wrote = true
	}
	if p.CastleRights.BlackQueenside {
		b.WriteByte('q')
		wrote = true
	}
	if !wrote {
		b.WriteByte('-')
	}
	b.WriteByte(' ')

	if p.EnPassant == NoSquare {
		b.WriteByte('-')
	} else {
		b.WriteString(p.EnPassant.String())
	}

	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.HalfmoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.FullmoveNum))

	return b.String()
}

// parsePlacement parses FEN field 1 into the three occupancy views
// Position keeps in sync with each other.
func parsePlacement(placement string) (pieces [6]Bitboard, colors [2]Bitboard, combined Bitboard) {
	rank, file := 7, 0

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			piece, color := pieceFromFENLetter(c)
			sq := NewSquare(rank, file)
			bb := sq.Bitboard()
			pieces[piece] |= bb
			colors[color] |= bb
			combined |= bb
			file++
		}
	}
	return
}

func pieceFromFENLetter(c byte) (Piece, Color) {
	color := ColorWhite
	letter := c
	if c >= 'a' && c <= 'z' {
		color = ColorBlack
		letter = c - 'a' + 'A'
	}
	switch letter {
	case 'P':
		return Pawn, color
	case 'N':
		return Knight, color
	case 'B':
		return Bishop, color
	case 'R':
		return Rook, color
	case 'Q':
		return Queen, color
	case 'K':
		return King, color
	default:
		panic("chessgen: invalid piece letter in FEN")
	}
}

// serializePlacement is ParseFEN's inverse for field 1.
func serializePlacement(pieces [6]Bitboard, colors [2]Bitboard) string {
	var board [64]byte
	for piece := Pawn; piece <= King; piece++ {
		white := pieces[piece] & colors[ColorWhite]
		black := pieces[piece] & colors[ColorBlack]
		for white != Empty {
			var sq Square
			white, sq = white.PopLSB()
			board[sq] = pieceLetters[piece]
		}
		for black != Empty {
			var sq Square
			black, sq = black.PopLSB()
			board[sq] = pieceLetters[piece] - 'A' + 'a'
		}
	}

	var b strings.Builder
	b.Grow(72)
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			c := board[NewSquare(rank, file)]
			if c == 0 {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte('0' + byte(empty))
				empty = 0
			}
			b.WriteByte(c)
		}
		if empty > 0 {
			b.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			b.WriteByte('/')
		}
	}
	return b.String()
}

// parseSquare parses FEN field 4: "-" or an algebraic square such as "e3".
func parseSquare(s string) Square {
	if s == "-" {
		return NoSquare
	}
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		panic("chessgen: invalid square in FEN")
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	return NewSquare(rank, file)
}
