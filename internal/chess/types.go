// Package chess provides the core chess types: colours, piece kinds,
// squares, the piece arena and the board grid that owns occupancy.
package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// NumColours is the number of sides.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta a pawn of this colour advances by.
// White starts at the bottom of the grid (row 6) and moves toward row 0.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// PawnRow returns the row on which pawns of this colour start.
func (c Colour) PawnRow() int {
	if c == White {
		return BoardSize - 2
	}
	return 1
}

// BackRow returns the row holding this colour's pieces at game start.
func (c Colour) BackRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// Kind represents a chess piece type.
type Kind int

const (
	Empty Kind = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsRay reports whether the kind slides along rays (bishop, rook, queen).
func (k Kind) IsRay() bool {
	return k == Bishop || k == Rook || k == Queen
}

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Square is a grid coordinate. Row 0 is Black's back rank (rank 8) and
// Col 0 is the a-file, so Sq(7, 4) is e1.
type Square struct {
	Row int
	Col int
}

// NoSquare is the position of a piece that is no longer on the grid.
var NoSquare = Square{Row: -1, Col: -1}

// Sq builds a square from row and column indices.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the 8x8 grid.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square displaced by the given row and column deltas.
// The result may be off the grid; callers check Valid.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// Index returns the row-major index 0..63 of a valid square.
func (s Square) Index() int {
	return s.Row*BoardSize + s.Col
}

// SquareAt is the inverse of Index.
func SquareAt(index int) Square {
	return Square{Row: index / BoardSize, Col: index % BoardSize}
}

// File returns the algebraic file letter of the square.
func (s Square) File() byte {
	return byte(FileBase + s.Col)
}

// Rank returns the algebraic rank digit of the square.
func (s Square) Rank() byte {
	return byte(RankBase + (BoardSize - 1 - s.Row))
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare converts an algebraic name such as "e4" to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	file, rank := name[0], name[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}

// MustParseSquare is like ParseSquare but panics on a bad name.
// It is intended for fixed names in tests and tables.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

// PieceID identifies a piece in a board's arena.
type PieceID int

// NoPiece marks an empty grid slot or an absent capture.
const NoPiece PieceID = -1

// Piece is an arena entry. Square is a cached back-reference kept in step
// with the grid by Board.Apply and Board.Undo; it is NoSquare once captured.
type Piece struct {
	ID     PieceID
	Kind   Kind
	Colour Colour
	Square Square
}

// Captured reports whether the piece has left the grid.
func (p *Piece) Captured() bool {
	return !p.Square.Valid()
}

// String returns e.g. "white knight".
func (p *Piece) String() string {
	return fmt.Sprintf("%s %s", lower(p.Colour.String()), lower(p.Kind.String()))
}

func lower(s string) string {
	b := []byte(s)
	if len(b) > 0 && b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}

// Status is the check state of one side.
type Status int

const (
	NotInCheck Status = iota
	InCheck
	Checkmated
	Stalemated
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case NotInCheck:
		return "NotInCheck"
	case InCheck:
		return "InCheck"
	case Checkmated:
		return "Checkmated"
	case Stalemated:
		return "Stalemated"
	}
	return "Unknown"
}

// Terminal reports whether the side with this status can no longer move.
func (s Status) Terminal() bool {
	return s == Checkmated || s == Stalemated
}
