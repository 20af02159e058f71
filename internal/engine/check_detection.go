package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Detector decides check, checkmate and stalemate for a board. It owns the
// two attack maps, which are only valid for the board state they were last
// built from: call Update after any mutation the Detector did not make itself.
//
// A Detector is not safe for concurrent use, and neither is its board.
type Detector struct {
	board   *chess.Board
	attacks [chess.NumColours]*AttackMap

	rollbackCheck bool
}

// Option configures a Detector.
type Option func(*Detector)

// WithRollbackCheck makes every speculative test hash the board before and
// after and panic with ErrInconsistentState if the two differ.
func WithRollbackCheck() Option {
	return func(d *Detector) {
		d.rollbackCheck = true
	}
}

// NewDetector creates a Detector for board and builds its attack maps.
func NewDetector(board *chess.Board, opts ...Option) *Detector {
	d := &Detector{board: board}
	for _, opt := range opts {
		opt(d)
	}
	d.Update()
	return d
}

// Board returns the board the detector evaluates.
func (d *Detector) Board() *chess.Board {
	return d.board
}

// Update rebuilds both attack maps from the current board.
func (d *Detector) Update() {
	d.attacks[chess.White], d.attacks[chess.Black] = RebuildAttacks(d.board)
}

// Attacks returns the current attack map of a side.
func (d *Detector) Attacks(colour chess.Colour) *AttackMap {
	return d.attacks[colour]
}

// IsInCheck reports whether the side's king stands on a square in the
// opposing attack map, or next to the opposing king.
func (d *Detector) IsInCheck(colour chess.Colour) bool {
	king := d.board.Piece(d.board.King(colour))
	if d.attacks[colour.Opposite()].Attacked(king.Square) {
		return true
	}
	return d.kingsAdjacent()
}

// Checkers returns the pieces giving check to the side's king: the attackers
// of its square plus the opposing king when the two kings touch.
func (d *Detector) Checkers(colour chess.Colour) []chess.PieceID {
	king := d.board.Piece(d.board.King(colour))
	attackers := d.attacks[colour.Opposite()].Attackers(king.Square)

	checkers := make([]chess.PieceID, 0, len(attackers)+1)
	checkers = append(checkers, attackers...)
	if d.kingsAdjacent() {
		checkers = append(checkers, d.board.King(colour.Opposite()))
	}
	return checkers
}

// kingsAdjacent reports whether the two kings touch. Kings are kept out of
// the attack maps, so this is the only way one king checks the other.
func (d *Detector) kingsAdjacent() bool {
	w := d.board.Piece(d.board.King(chess.White)).Square
	b := d.board.Piece(d.board.King(chess.Black)).Square
	return Distance(w, b) <= 1
}

// IsCheckmated reports whether the side is in check with no evade, capture
// or block escape.
func (d *Detector) IsCheckmated(colour chess.Colour) bool {
	if !d.IsInCheck(colour) {
		return false
	}
	return d.resolve(colour, true).Empty()
}

// AllowableSquares returns the destinations that can end the side's check:
// the union of verified evade, capture and block squares. A side not in
// check may move anywhere its pieces allow, which is every square.
func (d *Detector) AllowableSquares(colour chess.Colour) chess.SquareSet {
	if !d.IsInCheck(colour) {
		return chess.AllSquares
	}
	return d.resolve(colour, false)
}

// resolve collects the squares that get the side out of check. With
// stopEarly it returns as soon as one escape is found.
func (d *Detector) resolve(colour chess.Colour, stopEarly bool) chess.SquareSet {
	var squares chess.SquareSet
	board := d.board
	kingID := board.King(colour)
	kingSq := board.Piece(kingID).Square

	// Evade
	for _, to := range PseudoLegalMoves(board, kingID) {
		if d.TestMove(kingID, to) {
			squares = squares.Add(to)
			if stopEarly {
				return squares
			}
		}
	}

	// A double check can only be answered by the king moving.
	checkers := d.Checkers(colour)
	if len(checkers) != 1 {
		return squares
	}
	attacker := board.Piece(checkers[0])

	// Capture. King captures were tried as evasions.
	if !squares.Has(attacker.Square) && d.anyDefenderPasses(colour, attacker.Square) {
		squares = squares.Add(attacker.Square)
		if stopEarly {
			return squares
		}
	}

	// Block
	if !attacker.Kind.IsRay() {
		return squares
	}
	for _, sq := range Between(kingSq, attacker.Square) {
		if d.anyDefenderPasses(colour, sq) {
			squares = squares.Add(sq)
			if stopEarly {
				return squares
			}
		}
	}

	return squares
}

// anyDefenderPasses reports whether any non-king piece of the side that can
// move onto sq survives the speculative test there. The side's own attack
// map already lists exactly those pieces.
func (d *Detector) anyDefenderPasses(colour chess.Colour, sq chess.Square) bool {
	// TestMove rebuilds the maps, so work from a copy of the list.
	candidates := append([]chess.PieceID(nil), d.attacks[colour].Attackers(sq)...)
	for _, id := range candidates {
		if d.TestMove(id, sq) {
			return true
		}
	}
	return false
}
