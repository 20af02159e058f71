// Package game is the synchronous boundary a presentation or input layer
// talks to. A Game owns one board and its Detector, and serialises every
// legality evaluation and move commit behind a single mutex.
package game

import (
	"fmt"
	"slices"
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/storage"
)

// Outcome is the result of AttemptMove.
type Outcome int

const (
	Rejected Outcome = iota
	Applied
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	if o == Applied {
		return "Applied"
	}
	return "Rejected"
}

// Game is a position plus the moves committed to reach it from its start.
type Game struct {
	mu       sync.Mutex
	board    *chess.Board
	detector *engine.Detector
	startFEN string
	history  []chess.Move

	// status of the side to move; refreshed after every commit
	status chess.Status
}

// New starts a game from board, which the Game takes ownership of.
// The board must pass chess.Board.Validate.
func New(board *chess.Board, opts ...engine.Option) (*Game, error) {
	if err := board.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		board:    board,
		detector: engine.NewDetector(board, opts...),
		startFEN: engine.BoardToFEN(board),
	}
	g.status = g.detector.Status(board.ToMove)
	return g, nil
}

// NewStandard starts a game from the initial position.
func NewStandard(opts ...engine.Option) *Game {
	g, err := New(engine.NewInitialBoard(), opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// NewFromFEN starts a game from a FEN setup.
func NewFromFEN(fen string, opts ...engine.Option) (*Game, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return New(board, opts...)
}

// LegalMoves returns the destinations piece id may move to now. Pieces of
// the side not to move, captured pieces and any piece once the game is
// over have none.
func (g *Game) LegalMoves(id chess.PieceID) []chess.Square {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.legalMoves(id)
}

func (g *Game) legalMoves(id chess.PieceID) []chess.Square {
	if id < 0 || int(id) >= g.board.NumPieces() || g.status.Terminal() {
		return nil
	}
	if g.board.Piece(id).Colour != g.board.ToMove {
		return nil
	}
	return g.detector.LegalMoves(id)
}

// LegalMovesFrom is LegalMoves for whatever piece stands on sq.
func (g *Game) LegalMovesFrom(sq chess.Square) []chess.Square {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.board.At(sq)
	if id == chess.NoPiece {
		return nil
	}
	return g.legalMoves(id)
}

// AttemptMove commits id to sq if the move is legal and the destination is
// allowable for the side to move. A rejected move leaves the game untouched.
func (g *Game) AttemptMove(id chess.PieceID, sq chess.Square) Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.attempt(id, sq) != nil {
		return Rejected
	}
	return Applied
}

// Move is AttemptMove addressed by squares. Rejections are *errors.MoveError
// wrapping ErrGameOver or ErrIllegalMove.
func (g *Game) Move(from, to chess.Square) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.board.At(from)
	if id == chess.NoPiece {
		return &errors.MoveError{
			Err:  fmt.Errorf("no piece on %s: %w", from, errors.ErrIllegalMove),
			Ply:  len(g.history) + 1,
			From: squareName(from),
			To:   squareName(to),
		}
	}
	if err := g.attempt(id, to); err != nil {
		return &errors.MoveError{
			Err:   err,
			Ply:   len(g.history) + 1,
			Piece: g.board.Piece(id).String(),
			From:  from.String(),
			To:    squareName(to),
		}
	}
	return nil
}

func squareName(sq chess.Square) string {
	if !sq.Valid() {
		return ""
	}
	return sq.String()
}

func (g *Game) attempt(id chess.PieceID, sq chess.Square) error {
	if g.status.Terminal() {
		return errors.ErrGameOver
	}
	if !slices.Contains(g.legalMoves(id), sq) {
		return errors.ErrIllegalMove
	}
	if !g.detector.AllowableSquares(g.board.ToMove).Has(sq) {
		return errors.ErrIllegalMove
	}

	g.history = append(g.history, g.detector.ApplyMove(id, sq))
	g.status = g.detector.Status(g.board.ToMove)
	return nil
}

// CheckStatus evaluates colour's check state in the current position.
func (g *Game) CheckStatus(colour chess.Colour) chess.Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	if colour == g.board.ToMove {
		return g.status
	}
	return g.detector.Status(colour)
}

// SideToMove returns the colour whose turn it is.
func (g *Game) SideToMove() chess.Colour {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.ToMove
}

// AllowableSquares returns the squares the side to move may move to while
// resolving check; all squares when not in check.
func (g *Game) AllowableSquares() chess.SquareSet {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.detector.AllowableSquares(g.board.ToMove)
}

// History returns the committed moves in order.
func (g *Game) History() []chess.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.history)
}

// FEN returns the current position.
func (g *Game) FEN() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return engine.BoardToFEN(g.board)
}

// StartFEN returns the position the game started from.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Copy()
}

// Over reports whether the side to move is checkmated or stalemated.
func (g *Game) Over() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status.Terminal()
}

// Result returns "1-0", "0-1" or "1/2-1/2" once the game is over, "*" before.
func (g *Game) Result() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.result()
}

func (g *Game) result() string {
	switch g.status {
	case chess.Checkmated:
		if g.board.ToMove == chess.White {
			return "0-1"
		}
		return "1-0"
	case chess.Stalemated:
		return "1/2-1/2"
	}
	return "*"
}

// Record snapshots the game for the archive under id.
func (g *Game) Record(id string) *storage.GameRecord {
	g.mu.Lock()
	defer g.mu.Unlock()

	moves := make([]string, len(g.history))
	for i, m := range g.history {
		moves[i] = m.From.String() + m.To.String()
	}
	return &storage.GameRecord{
		ID:       id,
		StartFEN: g.startFEN,
		Moves:    moves,
		FinalFEN: engine.BoardToFEN(g.board),
		Status:   g.status.String(),
		Result:   g.result(),
	}
}

// Restore rebuilds a game from an archived record by replaying every stored
// move from its start position.
func Restore(rec *storage.GameRecord, opts ...engine.Option) (*Game, error) {
	g, err := NewFromFEN(rec.StartFEN, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "restoring game %q", rec.ID)
	}
	for i, mv := range rec.Moves {
		from, to, err := ParseCoordinateMove(mv)
		if err != nil {
			return nil, errors.Wrapf(err, "restoring game %q", rec.ID)
		}
		if err := g.Move(from, to); err != nil {
			return nil, errors.Wrapf(err, "restoring game %q move %d", rec.ID, i+1)
		}
	}
	return g, nil
}

// ParseCoordinateMove splits a move such as "e2e4" into its squares.
func ParseCoordinateMove(s string) (from, to chess.Square, err error) {
	if len(s) != 4 {
		return chess.NoSquare, chess.NoSquare, fmt.Errorf("move %q: %w", s, errors.ErrIllegalMove)
	}
	if from, err = chess.ParseSquare(s[:2]); err != nil {
		return chess.NoSquare, chess.NoSquare, err
	}
	if to, err = chess.ParseSquare(s[2:]); err != nil {
		return chess.NoSquare, chess.NoSquare, err
	}
	return from, to, nil
}
