package chessgen

import "testing"

func TestNewSquare(t *testing.T) {
	testcases := []struct {
		name       string
		rank, file int
		expected   Square
		str        string
	}{
		{"a1", 0, 0, SquareA1, "a1"},
		{"h1", 0, 7, SquareH1, "h1"},
		{"e1", 0, 4, SquareE1, "e1"},
		{"a8", 7, 0, SquareA8, "a8"},
		{"h8", 7, 7, SquareH8, "h8"},
		{"d4", 3, 3, Square(27), "d4"},
	}

	for _, tc := range testcases {
		got := NewSquare(tc.rank, tc.file)
		if got != tc.expected {
			t.Errorf("%s: NewSquare(%d,%d) = %d, want %d", tc.name, tc.rank, tc.file, got, tc.expected)
		}
		if got.Rank() != tc.rank || got.File() != tc.file {
			t.Errorf("%s: got.Rank()=%d got.File()=%d, want %d,%d", tc.name, got.Rank(), got.File(), tc.rank, tc.file)
		}
		if got.String() != tc.str {
			t.Errorf("%s: String() = %q, want %q", tc.name, got.String(), tc.str)
		}
	}
}

func TestSquareNeighborsEdges(t *testing.T) {
	if up := SquareA8.Up(); up.Ok {
		t.Errorf("a8.Up() should be none on the eighth rank, got %v", up.Square)
	}
	if down := SquareA1.Down(); down.Ok {
		t.Errorf("a1.Down() should be none on the first rank, got %v", down.Square)
	}
	if left := SquareA4.Left(); left.Ok {
		t.Errorf("a4.Left() should be none on the a-file, got %v", left.Square)
	}
	if right := SquareH4.Right(); right.Ok {
		t.Errorf("h4.Right() should be none on the h-file, got %v", right.Square)
	}

	if up := NewSquare(3, 3).Up(); !up.Ok || up.Square != NewSquare(4, 3) {
		t.Errorf("d4.Up() = %v, want d5", up)
	}
}

func TestSquareForwardBackward(t *testing.T) {
	d4 := NewSquare(3, 3)

	if f := d4.Forward(ColorWhite); !f.Ok || f.Square != NewSquare(4, 3) {
		t.Errorf("d4.Forward(white) = %v, want d5", f)
	}
	if f := d4.Forward(ColorBlack); !f.Ok || f.Square != NewSquare(2, 3) {
		t.Errorf("d4.Forward(black) = %v, want d3", f)
	}
	if b := d4.Backward(ColorWhite); !b.Ok || b.Square != NewSquare(2, 3) {
		t.Errorf("d4.Backward(white) = %v, want d3", b)
	}
	if b := d4.Backward(ColorBlack); !b.Ok || b.Square != NewSquare(4, 3) {
		t.Errorf("d4.Backward(black) = %v, want d5", b)
	}
}

func TestColorOther(t *testing.T) {
	if ColorWhite.Other() != ColorBlack {
		t.Errorf("ColorWhite.Other() = %v, want ColorBlack", ColorWhite.Other())
	}
	if ColorBlack.Other() != ColorWhite {
		t.Errorf("ColorBlack.Other() = %v, want ColorWhite", ColorBlack.Other())
	}
}

func TestIsEdge(t *testing.T) {
	testcases := []struct {
		sq       Square
		expected bool
	}{
		{SquareA1, true},
		{SquareH8, true},
		{NewSquare(0, 4), true},
		{NewSquare(3, 3), false},
		{NewSquare(4, 4), false},
	}
	for _, tc := range testcases {
		if got := tc.sq.IsEdge(); got != tc.expected {
			t.Errorf("%s.IsEdge() = %v, want %v", tc.sq, got, tc.expected)
		}
	}
}

// SquareA4 / SquareH4 are declared here for readability; they don't recur
// elsewhere so they don't belong in piece.go's or tables.go's named-square
// blocks.
const (
	SquareA4 Square = 24
	SquareH4 Square = 31
)
