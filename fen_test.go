package chessgen_test

import "testing"

import "github.com/arkveil/chessgen"

func TestParseFENThenSerializeFENRoundTrips(t *testing.T) {
	testcases := []string{
		chessgen.StartingPosition,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/5bk1/8/2Pp4/8/1K6/8/8 w - d6 0 1",
		"rnbq1bnr/pppppppp/8/8/4k3/8/PPPPPPPP/RNBQKBNR w KQ - 3 2",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
	}

	for _, fen := range testcases {
		pos := chessgen.ParseFEN(fen)
		got := chessgen.SerializeFEN(pos)
		if got != fen {
			t.Errorf("round trip mismatch:\n  in:  %s\n  out: %s", fen, got)
		}
	}
}

func TestParseFENCastlingRightsSubset(t *testing.T) {
	pos := chessgen.ParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")

	if !pos.CastleRights.Kingside(chessgen.ColorWhite) {
		t.Fatalf("expected white kingside right")
	}
	if pos.CastleRights.Queenside(chessgen.ColorWhite) {
		t.Fatalf("did not expect white queenside right")
	}
	if pos.CastleRights.Kingside(chessgen.ColorBlack) || pos.CastleRights.Queenside(chessgen.ColorBlack) {
		t.Fatalf("did not expect any black castling rights")
	}
}

func TestParseFENNoCastlingRights(t *testing.T) {
	pos := chessgen.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if pos.CastleRights.Kingside(chessgen.ColorWhite) || pos.CastleRights.Queenside(chessgen.ColorWhite) ||
		pos.CastleRights.Kingside(chessgen.ColorBlack) || pos.CastleRights.Queenside(chessgen.ColorBlack) {
		t.Fatalf("expected no castling rights, got %+v", pos.CastleRights)
	}
}

func TestParseFENEnPassantSquare(t *testing.T) {
	pos := chessgen.ParseFEN("8/5bk1/8/2Pp4/8/1K6/8/8 w - d6 0 1")
	if pos.EnPassant.String() != "d6" {
		t.Fatalf("en passant square = %s, want d6", pos.EnPassant)
	}
}

func TestParseFENPanicsOnMalformedInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected ParseFEN to panic on a malformed FEN string")
		}
	}()
	chessgen.ParseFEN("not a fen string")
}
