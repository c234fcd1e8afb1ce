package chessgen_test

import (
	"testing"

	"github.com/arkveil/chessgen"
)

// perftScenario is one literal FEN/depth/expected-node-count row from the
// reference perft suite: https://www.chessprogramming.org/Perft_Results.
type perftScenario struct {
	name     string
	fen      string
	depth    int
	expected uint64
	// slow marks scenarios whose node count takes long enough that they're
	// only worth running outside `go test -short`.
	slow bool
}

var perftScenarios = []perftScenario{
	{"startpos", chessgen.StartingPosition, 6, 119_060_324, true},
	{"position2 (rook endgame)", "5k2/8/8/8/8/8/8/4K2R w K - 0 1", 6, 661_072, true},
	{"position3 (en passant pin)", "8/5bk1/8/2Pp4/8/1K6/8/8 w - d6 0 1", 6, 824_064, true},
	{"position4 (kiwipete-adjacent castling)", "r3k2r/1b4bq/8/8/8/8/7B/R3K2R w KQkq - 0 1", 4, 1_274_206, false},
	{"position5 (discovered check castling)", "r3k2r/8/3Q4/8/8/5q2/8/R3K2R b KQkq - 0 1", 4, 1_720_476, false},
	{"position6 (underpromotion)", "4k3/1P6/8/8/8/8/K7/8 w - - 0 1", 6, 217_342, true},
	{"position7 (max legal moves)", "R6R/3Q4/1Q4Q1/4Q3/2Q4Q/Q4Q2/pp1Q4/kBNN1KB1 w - - 0 1", 1, 218, false},
}

func TestPerft(t *testing.T) {
	for _, sc := range perftScenarios {
		sc := sc
		t.Run(sc.name, func(t *testing.T) {
			if sc.slow && testing.Short() {
				t.Skipf("skipping depth-%d perft (%d nodes) in -short mode", sc.depth, sc.expected)
			}
			pos := chessgen.ParseFEN(sc.fen)
			got := chessgen.Perft(pos, sc.depth)
			if got != sc.expected {
				t.Fatalf("Perft(%q, %d) = %d, want %d", sc.fen, sc.depth, got, sc.expected)
			}
		})
	}
}

func TestPerftShallowDepthsMatchKnownStartposCounts(t *testing.T) {
	// Cheap depths 1-3 from the starting position, checked independently of
	// the main table above so a regression surfaces at the shallowest depth
	// that reproduces it rather than only after minutes at depth 6.
	testcases := []struct {
		depth    int
		expected uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8_902},
	}

	pos := chessgen.ParseFEN(chessgen.StartingPosition)
	for _, tc := range testcases {
		if got := chessgen.Perft(pos, tc.depth); got != tc.expected {
			t.Errorf("Perft(startpos, %d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

func BenchmarkPerft(b *testing.B) {
	pos := chessgen.ParseFEN(chessgen.StartingPosition)
	for b.Loop() {
		chessgen.Perft(pos, 5)
	}
}
