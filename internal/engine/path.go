package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// axis returns the distance from a to b along one axis and the unit step
// (-1, 0 or 1) that walks from a toward b.
func axis(a, b int) (dist, step int) {
	switch {
	case b > a:
		return b - a, 1
	case b < a:
		return a - b, -1
	}
	return 0, 0
}

// Distance is the number of king steps from a to b.
func Distance(a, b chess.Square) int {
	rows, _ := axis(a.Row, b.Row)
	cols, _ := axis(a.Col, b.Col)
	return max(rows, cols)
}

// Aligned reports whether a and b share a row, a column or a diagonal.
// A square is not aligned with itself.
func Aligned(a, b chess.Square) bool {
	rows, _ := axis(a.Row, b.Row)
	cols, _ := axis(a.Col, b.Col)
	if rows == 0 && cols == 0 {
		return false
	}
	return rows == 0 || cols == 0 || rows == cols
}

// Between returns the squares strictly between a and b, walking from a
// toward b. It is empty when the squares are adjacent or not aligned.
func Between(a, b chess.Square) []chess.Square {
	if !Aligned(a, b) {
		return nil
	}

	_, rowStep := axis(a.Row, b.Row)
	_, colStep := axis(a.Col, b.Col)

	var squares []chess.Square
	for sq := a.Offset(rowStep, colStep); sq != b; sq = sq.Offset(rowStep, colStep) {
		squares = append(squares, sq)
	}
	return squares
}
