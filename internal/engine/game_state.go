package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Status evaluates the side's check state. It does not change the board.
func (d *Detector) Status(colour chess.Colour) chess.Status {
	if d.IsInCheck(colour) {
		if d.IsCheckmated(colour) {
			return chess.Checkmated
		}
		return chess.InCheck
	}
	if !d.HasLegalMoves(colour) {
		return chess.Stalemated
	}
	return chess.NotInCheck
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func (d *Detector) IsCheckmate() bool {
	return d.IsCheckmated(d.board.ToMove)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func (d *Detector) IsStalemate() bool {
	return d.IsStalemated(d.board.ToMove)
}

// IsStalemated reports whether the side is not in check and has no legal move.
func (d *Detector) IsStalemated(colour chess.Colour) bool {
	return !d.IsInCheck(colour) && !d.HasLegalMoves(colour)
}
