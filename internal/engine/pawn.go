package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// appendPawnMoves adds a pawn's destinations: one step forward onto an empty
// square, two steps from the starting row when both squares are empty, and
// a forward diagonal only when an opposing piece stands there.
func appendPawnMoves(dst []chess.Square, board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	dir := colour.Forward()

	one := from.Offset(dir, 0)
	if one.Valid() && board.At(one) == chess.NoPiece {
		dst = append(dst, one)

		// Double push from starting row
		if from.Row == colour.PawnRow() {
			two := from.Offset(2*dir, 0)
			if two.Valid() && board.At(two) == chess.NoPiece {
				dst = append(dst, two)
			}
		}
	}

	// Captures
	for dc := -1; dc <= 1; dc += 2 {
		to := from.Offset(dir, dc)
		if !to.Valid() {
			continue
		}
		if target := board.PieceAt(to); target != nil && target.Colour != colour {
			dst = append(dst, to)
		}
	}

	return dst
}
