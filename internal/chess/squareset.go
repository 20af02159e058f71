package chess

import (
	"math/bits"
	"strings"
)

// SquareSet is a 64-bit set of squares indexed by Square.Index.
type SquareSet uint64

// AllSquares contains every square of the grid.
const AllSquares SquareSet = ^SquareSet(0)

// SetOf builds a set from the given squares. Off-grid squares are ignored.
func SetOf(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.Add(sq)
	}
	return s
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return sq.Valid() && s&(1<<uint(sq.Index())) != 0
}

// Add returns the set with sq added.
func (s SquareSet) Add(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s | 1<<uint(sq.Index())
}

// Remove returns the set with sq removed.
func (s SquareSet) Remove(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s &^ (1 << uint(sq.Index()))
}

// Empty reports whether the set has no members.
func (s SquareSet) Empty() bool { return s == 0 }

// Len returns the number of squares in the set.
func (s SquareSet) Len() int { return bits.OnesCount64(uint64(s)) }

// Squares returns the members in row-major order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for bb := uint64(s); bb != 0; bb &= bb - 1 {
		out = append(out, SquareAt(bits.TrailingZeros64(bb)))
	}
	return out
}

// String lists the members in algebraic form, e.g. "{e2 e4}".
func (s SquareSet) String() string {
	names := make([]string, 0, s.Len())
	for _, sq := range s.Squares() {
		names = append(names, sq.String())
	}
	return "{" + strings.Join(names, " ") + "}"
}
