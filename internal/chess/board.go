package chess

import (
	"fmt"
	"slices"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Board represents a chess board with all state needed for the game.
//
// The grid exclusively owns occupancy: each slot holds the id of the piece
// standing on it, or NoPiece. Pieces live in an arena indexed by PieceID and
// cache their square; only Apply and Undo move pieces, and both update the
// grid and the cache together.
type Board struct {
	grid   [BoardSize][BoardSize]PieceID
	pieces []Piece

	// Live pieces per colour in ascending id order. Captured pieces are
	// dropped by Prune, normally during an attack map rebuild.
	live [NumColours][]PieceID

	// Who has the next move.
	ToMove Colour

	// The current move number.
	MoveNumber uint

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.grid[row][col] = NoPiece
		}
	}
	return b
}

// SetupInitialPosition clears the board and sets up the standard starting position.
func (b *Board) SetupInitialPosition() {
	*b = *NewBoard()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for _, colour := range []Colour{Black, White} {
		for col := 0; col < BoardSize; col++ {
			b.mustPlace(backRank[col], colour, Sq(colour.BackRow(), col))
			b.mustPlace(Pawn, colour, Sq(colour.PawnRow(), col))
		}
	}
}

func (b *Board) mustPlace(kind Kind, colour Colour, sq Square) {
	if _, err := b.Place(kind, colour, sq); err != nil {
		panic(err)
	}
}

// Place puts a new piece on an empty square and registers it as live.
// Squares off the grid and occupied squares are rejected with ErrMalformedSetup.
func (b *Board) Place(kind Kind, colour Colour, sq Square) (PieceID, error) {
	if kind <= Empty || kind >= NumKinds {
		return NoPiece, fmt.Errorf("unknown piece kind %d: %w", kind, errors.ErrMalformedSetup)
	}
	if !sq.Valid() {
		return NoPiece, fmt.Errorf("square (%d,%d) is off the board: %w", sq.Row, sq.Col, errors.ErrMalformedSetup)
	}
	if occupant := b.grid[sq.Row][sq.Col]; occupant != NoPiece {
		return NoPiece, fmt.Errorf("square %s already holds a %s: %w", sq, &b.pieces[occupant], errors.ErrMalformedSetup)
	}

	id := PieceID(len(b.pieces))
	b.pieces = append(b.pieces, Piece{ID: id, Kind: kind, Colour: colour, Square: sq})
	b.grid[sq.Row][sq.Col] = id
	b.live[colour] = append(b.live[colour], id)
	return id, nil
}

// At returns the id of the piece on sq, or NoPiece if the square is empty
// or off the grid.
func (b *Board) At(sq Square) PieceID {
	if !sq.Valid() {
		return NoPiece
	}
	return b.grid[sq.Row][sq.Col]
}

// PieceAt returns the piece on sq, or nil.
func (b *Board) PieceAt(sq Square) *Piece {
	id := b.At(sq)
	if id == NoPiece {
		return nil
	}
	return &b.pieces[id]
}

// Piece returns the arena entry for id. The pointer stays valid for the
// lifetime of the board; callers must not change its Square directly.
func (b *Board) Piece(id PieceID) *Piece {
	return &b.pieces[id]
}

// NumPieces returns the arena size, including captured pieces.
func (b *Board) NumPieces() int {
	return len(b.pieces)
}

// Live returns the live piece ids of a colour in ascending order.
// The slice is owned by the board and is invalidated by Prune and Revive.
func (b *Board) Live(colour Colour) []PieceID {
	return b.live[colour]
}

// King returns the id of the colour's king. A board without exactly one
// live king of that colour is an invariant violation and panics.
func (b *Board) King(colour Colour) PieceID {
	king := NoPiece
	for _, id := range b.live[colour] {
		p := &b.pieces[id]
		if p.Kind != King || p.Captured() {
			continue
		}
		if king != NoPiece {
			panic(fmt.Errorf("%s has more than one king: %w", colour, errors.ErrInconsistentState))
		}
		king = id
	}
	if king == NoPiece {
		panic(fmt.Errorf("%s has no king: %w", colour, errors.ErrInconsistentState))
	}
	return king
}

// Apply moves piece id to sq, capturing whatever stands there, and returns
// the record needed to undo it. Side to move and clocks are left alone.
func (b *Board) Apply(id PieceID, to Square) Move {
	p := &b.pieces[id]
	from := p.Square
	if !from.Valid() || b.grid[from.Row][from.Col] != id {
		panic(fmt.Errorf("%s thinks it is on %s but the grid disagrees: %w", p, from, errors.ErrInconsistentState))
	}
	if !to.Valid() {
		panic(fmt.Errorf("%s moved off the board: %w", p, errors.ErrInconsistentState))
	}

	captured := b.grid[to.Row][to.Col]
	if captured != NoPiece {
		cp := &b.pieces[captured]
		if cp.Colour == p.Colour {
			panic(fmt.Errorf("%s captured its own %s on %s: %w", p, cp, to, errors.ErrInconsistentState))
		}
		cp.Square = NoSquare
	}

	b.grid[from.Row][from.Col] = NoPiece
	b.grid[to.Row][to.Col] = id
	p.Square = to

	return Move{Piece: id, From: from, To: to, Captured: captured}
}

// Undo reverses Apply. A captured piece returns to the destination square
// and, if it was pruned in the meantime, to its live collection.
func (b *Board) Undo(m Move) {
	p := &b.pieces[m.Piece]
	if p.Square != m.To || b.grid[m.To.Row][m.To.Col] != m.Piece {
		panic(fmt.Errorf("undo of %s expects %s on %s: %w", m, p, m.To, errors.ErrInconsistentState))
	}

	b.grid[m.From.Row][m.From.Col] = m.Piece
	p.Square = m.From

	b.grid[m.To.Row][m.To.Col] = m.Captured
	if m.Captured != NoPiece {
		b.pieces[m.Captured].Square = m.To
		b.Revive(m.Captured)
	}
}

// Prune drops captured pieces from both live collections.
func (b *Board) Prune() {
	for c := range b.live {
		b.live[c] = slices.DeleteFunc(b.live[c], func(id PieceID) bool {
			return b.pieces[id].Captured()
		})
	}
}

// Revive puts id back into its colour's live collection, keeping id order.
// It is a no-op if the piece is already live.
func (b *Board) Revive(id PieceID) {
	colour := b.pieces[id].Colour
	pos, found := slices.BinarySearch(b.live[colour], id)
	if found {
		return
	}
	b.live[colour] = slices.Insert(b.live[colour], pos, id)
}

// Validate checks the construction-time invariants: grid and arena agree,
// every live piece is on the grid, and each side has exactly one king.
func (b *Board) Validate() error {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			id := b.grid[row][col]
			if id == NoPiece {
				continue
			}
			if int(id) >= len(b.pieces) || b.pieces[id].Square != Sq(row, col) {
				return fmt.Errorf("grid slot %s disagrees with its piece: %w", Sq(row, col), errors.ErrMalformedSetup)
			}
		}
	}

	for _, colour := range []Colour{White, Black} {
		kings := 0
		for _, id := range b.live[colour] {
			p := &b.pieces[id]
			if p.Captured() {
				continue
			}
			if b.At(p.Square) != id {
				return fmt.Errorf("%s is not on %s: %w", p, p.Square, errors.ErrMalformedSetup)
			}
			if p.Kind == King {
				kings++
			}
		}
		if kings != 1 {
			return fmt.Errorf("%s has %d kings, want 1: %w", colour, kings, errors.ErrMalformedSetup)
		}
	}
	return nil
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := &Board{}
	nb.RestoreState(b.SaveState())
	return nb
}

// BoardState captures all mutable board state for save/restore operations.
// It is comparable with go-cmp, which makes it the reference for "the board
// is exactly as it was" in tests.
type BoardState struct {
	Grid          [BoardSize][BoardSize]PieceID
	Pieces        []Piece
	White         []PieceID
	Black         []PieceID
	ToMove        Colour
	MoveNumber    uint
	HalfmoveClock uint
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{
		Grid:          b.grid,
		Pieces:        slices.Clone(b.pieces),
		White:         slices.Clone(b.live[White]),
		Black:         slices.Clone(b.live[Black]),
		ToMove:        b.ToMove,
		MoveNumber:    b.MoveNumber,
		HalfmoveClock: b.HalfmoveClock,
	}
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.grid = s.Grid
	b.pieces = slices.Clone(s.Pieces)
	b.live[White] = slices.Clone(s.White)
	b.live[Black] = slices.Clone(s.Black)
	b.ToMove = s.ToMove
	b.MoveNumber = s.MoveNumber
	b.HalfmoveClock = s.HalfmoveClock
}
