// Package boarddebug renders a chessgen.Position or Bitboard as ASCII art
// for test-failure diagnostics. It is never imported by the public
// library surface, only by this module's own tests.
package boarddebug

import (
	"strings"

	"github.com/arkveil/chessgen"
)

var pieceSymbols = [6]rune{'P', 'N', 'B', 'R', 'Q', 'K'}

// FormatBitboard renders a single bitboard as an 8x8 grid, rank 8 first,
// using symbol for set squares and '.' for clear ones.
func FormatBitboard(bb chessgen.Bitboard, symbol rune) string {
	var out strings.Builder
	for rank := 7; rank >= 0; rank-- {
		out.WriteByte(byte(rank) + '1')
		out.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := chessgen.NewSquare(rank, file)
			r := symbol
			if !bb.Has(sq) {
				r = '.'
			}
			out.WriteRune(r)
			out.WriteString("  ")
		}
		out.WriteByte('\n')
	}
	out.WriteString("   a  b  c  d  e  f  g  h\n")
	return out.String()
}

// FormatPosition renders the full board plus side-to-move, en-passant, and
// castling-rights metadata, for dumping alongside a failing test's FEN.
func FormatPosition(p chessgen.Position) string {
	var out strings.Builder
	for rank := 7; rank >= 0; rank-- {
		out.WriteByte(byte(rank) + '1')
		out.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := chessgen.NewSquare(rank, file)
			symbol := byte('.')
			for piece, letter := range pieceSymbols {
				if p.Pieces[piece].Has(sq) {
					symbol = byte(letter)
					if p.Colors[chessgen.ColorBlack].Has(sq) {
						symbol += 'a' - 'A'
					}
					break
				}
			}
			out.WriteByte(symbol)
			out.WriteString("  ")
		}
		out.WriteByte('\n')
	}

	out.WriteString("   a  b  c  d  e  f  g  h\nActive color: ")
	if p.SideToMove == chessgen.ColorWhite {
		out.WriteString("white\nEn passant: ")
	} else {
		out.WriteString("black\nEn passant: ")
	}

	if p.EnPassant == chessgen.NoSquare {
		out.WriteString("none\nCastling rights: ")
	} else {
		out.WriteString(p.EnPassant.String())
		out.WriteString("\nCastling rights: ")
	}

	if p.CastleRights.WhiteKingside {
		out.WriteByte('K')
	}
	if p.CastleRights.WhiteQueenside {
		out.WriteByte('Q')
	}
	if p.CastleRights.BlackKingside {
		out.WriteByte('k')
	}
	if p.CastleRights.BlackQueenside {
		out.WriteByte('q')
	}

	return out.String()
}
