package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ApplyMove commits a move the caller has already checked with IsLegal and
// updates the board state: side to move, move number and half-move clock.
// The attack maps are rebuilt before it returns.
func (d *Detector) ApplyMove(id chess.PieceID, to chess.Square) chess.Move {
	board := d.board
	piece := board.Piece(id)
	colour := piece.Colour

	m := board.Apply(id, to)

	if piece.Kind == chess.Pawn || m.IsCapture() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()

	d.Update()
	return m
}
