package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// direction is a (row, col) step.
type direction [2]int

var (
	straightDirs = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	allDirs      = append(append([]direction{}, straightDirs...), diagonalDirs...)

	knightOffsets = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = allDirs
)

// PseudoLegalMoves returns the destinations piece id may reach by movement
// geometry and same-side blocking alone. Whether the mover's king would be
// left attacked is not considered; see Detector.LegalMoves for that.
// A captured piece has no moves.
func PseudoLegalMoves(board *chess.Board, id chess.PieceID) []chess.Square {
	return appendPseudoLegalMoves(nil, board, id)
}

// appendPseudoLegalMoves appends to dst so the attack map rebuild can reuse
// one buffer across pieces.
func appendPseudoLegalMoves(dst []chess.Square, board *chess.Board, id chess.PieceID) []chess.Square {
	p := board.Piece(id)
	if p.Captured() {
		return dst
	}
	from := p.Square

	switch p.Kind {
	case chess.Pawn:
		return appendPawnMoves(dst, board, from, p.Colour)
	case chess.Knight:
		return appendSteps(dst, board, from, p.Colour, knightOffsets)
	case chess.Bishop:
		return appendRays(dst, board, from, p.Colour, diagonalDirs)
	case chess.Rook:
		return appendRays(dst, board, from, p.Colour, straightDirs)
	case chess.Queen:
		return appendRays(dst, board, from, p.Colour, allDirs)
	case chess.King:
		return appendSteps(dst, board, from, p.Colour, kingOffsets)
	default:
		panic(fmt.Sprintf("engine: piece %d has unknown kind %d", id, p.Kind))
	}
}

// appendRays scans outward along each direction. The scan stops before a
// piece of the mover's colour and stops on (including) an opposing piece.
func appendRays(dst []chess.Square, board *chess.Board, from chess.Square, colour chess.Colour, dirs []direction) []chess.Square {
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to.Valid(); to = to.Offset(dir[0], dir[1]) {
			occupant := board.PieceAt(to)
			if occupant == nil {
				dst = append(dst, to)
				continue
			}
			if occupant.Colour != colour {
				dst = append(dst, to)
			}
			break // Blocked
		}
	}
	return dst
}

// appendSteps adds each fixed offset that lands on the grid and is not
// occupied by the mover's own colour.
func appendSteps(dst []chess.Square, board *chess.Board, from chess.Square, colour chess.Colour, offsets []direction) []chess.Square {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.Valid() {
			continue
		}
		if occupant := board.PieceAt(to); occupant != nil && occupant.Colour == colour {
			continue
		}
		dst = append(dst, to)
	}
	return dst
}
