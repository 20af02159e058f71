package engine

import (
	"fmt"
	"slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// TestMove reports whether moving piece id to sq would leave its own king
// safe. The move is applied to the live board, the attack maps are rebuilt
// and inspected, and then the move is undone and the maps rebuilt again, so
// on return the board and maps are exactly as before.
//
// A move onto a king or onto a piece of the mover's colour is never legal
// and is rejected without touching the board, as is a captured mover.
func (d *Detector) TestMove(id chess.PieceID, sq chess.Square) bool {
	piece := d.board.Piece(id)
	if piece.Captured() || !sq.Valid() {
		return false
	}
	if target := d.board.PieceAt(sq); target != nil && (target.Kind == chess.King || target.Colour == piece.Colour) {
		return false
	}

	mover := piece.Colour

	var before uint64
	if d.rollbackCheck {
		before = hashing.GenerateZobristHash(d.board)
	}

	m := d.board.Apply(id, sq)
	defer func() {
		d.board.Undo(m)
		d.Update()
		if d.rollbackCheck {
			if after := hashing.GenerateZobristHash(d.board); after != before {
				panic(fmt.Errorf("speculative %s left hash %016x, want %016x: %w",
					m, after, before, errors.ErrInconsistentState))
			}
		}
	}()

	d.Update()
	return !d.IsInCheck(mover)
}

// LegalMoves returns the destinations of piece id that pass TestMove, in
// generation order. A captured piece has none.
func (d *Detector) LegalMoves(id chess.PieceID) []chess.Square {
	pseudo := PseudoLegalMoves(d.board, id)
	legal := pseudo[:0]
	for _, sq := range pseudo {
		if d.TestMove(id, sq) {
			legal = append(legal, sq)
		}
	}
	return legal
}

// IsLegal reports whether piece id may move to sq.
func (d *Detector) IsLegal(id chess.PieceID, sq chess.Square) bool {
	if !slices.Contains(PseudoLegalMoves(d.board, id), sq) {
		return false
	}
	return d.TestMove(id, sq)
}

// AllLegalMoves returns every legal move of a side, pieces in id order.
func (d *Detector) AllLegalMoves(colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, id := range slices.Clone(d.board.Live(colour)) {
		from := d.board.Piece(id).Square
		for _, to := range d.LegalMoves(id) {
			moves = append(moves, chess.Move{Piece: id, From: from, To: to, Captured: d.board.At(to)})
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (d *Detector) HasLegalMoves(colour chess.Colour) bool {
	for _, id := range slices.Clone(d.board.Live(colour)) {
		for _, sq := range PseudoLegalMoves(d.board, id) {
			if d.TestMove(id, sq) {
				return true
			}
		}
	}
	return false
}
