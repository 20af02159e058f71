package testutil

import (
	"slices"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Placement is one piece of a test position.
type Placement struct {
	Kind   chess.Kind
	Colour chess.Colour
	Square chess.Square
}

// W places a white piece at (row, col).
func W(kind chess.Kind, row, col int) Placement {
	return Placement{Kind: kind, Colour: chess.White, Square: chess.Sq(row, col)}
}

// B places a black piece at (row, col).
func B(kind chess.Kind, row, col int) Placement {
	return Placement{Kind: kind, Colour: chess.Black, Square: chess.Sq(row, col)}
}

// BuildBoard places the pieces in order, so ids follow the argument order,
// and validates the result. White is to move.
func BuildBoard(placements ...Placement) (*chess.Board, error) {
	board := chess.NewBoard()
	for _, p := range placements {
		if _, err := board.Place(p.Kind, p.Colour, p.Square); err != nil {
			return nil, err
		}
	}
	if err := board.Validate(); err != nil {
		return nil, err
	}
	return board, nil
}

// MustBoard is BuildBoard that aborts the test on error.
func MustBoard(t testing.TB, placements ...Placement) *chess.Board {
	t.Helper()
	board, err := BuildBoard(placements...)
	if err != nil {
		t.Fatalf("building test board: %v", err)
	}
	return board
}

// SortedSquares returns a copy of squares in row-major order, for comparing
// destination lists regardless of generation order.
func SortedSquares(squares []chess.Square) []chess.Square {
	sorted := slices.Clone(squares)
	slices.SortFunc(sorted, func(a, b chess.Square) int {
		return a.Index() - b.Index()
	})
	return sorted
}

// AssertSquares compares two square lists as sets.
func AssertSquares(t *testing.T, got, want []chess.Square, msgAndArgs ...interface{}) {
	t.Helper()
	AssertEqual(t, chess.SetOf(got...), chess.SetOf(want...), msgAndArgs...)
}
