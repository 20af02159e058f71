package chess

import "fmt"

// Move records one application of a piece to a destination square.
// Captured is the piece that stood on To beforehand (NoPiece if none);
// keeping it is what makes the move reversible.
type Move struct {
	Piece    PieceID
	From     Square
	To       Square
	Captured PieceID
}

// IsCapture reports whether the move removed a piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// String returns the move in coordinate form, e.g. "e2e4" or "d4xe5".
func (m Move) String() string {
	if m.IsCapture() {
		return fmt.Sprintf("%sx%s", m.From, m.To)
	}
	return m.From.String() + m.To.String()
}
