package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return b.PieceAt(chess.MustParseSquare("e1")).Kind == chess.King &&
					b.PieceAt(chess.MustParseSquare("e8")).Colour == chess.Black &&
					b.PieceAt(chess.MustParseSquare("e2")).Kind == chess.Pawn &&
					b.ToMove == chess.White &&
					len(b.Live(chess.White)) == 16
			},
		},
		{
			name: "after 1.e4 with en passant field",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.PieceAt(chess.MustParseSquare("e4")) != nil &&
					b.At(chess.MustParseSquare("e2")) == chess.NoPiece &&
					b.ToMove == chess.Black
			},
		},
		{
			name: "clocks",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - - 17 42",
			checkFn: func(b *chess.Board) bool {
				return b.HalfmoveClock == 17 && b.MoveNumber == 42
			},
		},
		{
			name: "placement only",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			checkFn: func(b *chess.Board) bool {
				return b.ToMove == chess.White && b.MoveNumber == 1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN() board check failed")
			}
		})
	}
}

func TestNewBoardFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr error
	}{
		{"empty string", "", chesserrors.ErrInvalidFEN},
		{"bad piece character", "4k3/8/8/8/8/8/8/4X3 w - - 0 1", chesserrors.ErrInvalidFEN},
		{"non-ascii character", "4k3/8/8/8/8/8/8/4K2é w - - 0 1", chesserrors.ErrInvalidFEN},
		{"rank overflow", "4k3/9/8/8/8/8/8/4K3 w - - 0 1", chesserrors.ErrInvalidFEN},
		{"piece past the h-file", "4k3/8/8/8/8/8/8/4K3R w - - 0 1", chesserrors.ErrInvalidFEN},
		{"short rank", "4k3/7/8/8/8/8/8/4K3 w - - 0 1", chesserrors.ErrInvalidFEN},
		{"too many ranks", "4k3/8/8/8/8/8/8/8/4K3 w - - 0 1", chesserrors.ErrInvalidFEN},
		{"too few ranks", "4k3/8/8/8/8/8/4K3 w - - 0 1", chesserrors.ErrInvalidFEN},
		{"bad side to move", "4k3/8/8/8/8/8/8/4K3 x - - 0 1", chesserrors.ErrInvalidFEN},
		{"bad clock", "4k3/8/8/8/8/8/8/4K3 w - - x 1", chesserrors.ErrInvalidFEN},
		{"zero move number", "4k3/8/8/8/8/8/8/4K3 w - - 0 0", chesserrors.ErrInvalidFEN},
		{"missing black king", "8/8/8/8/8/8/8/4K3 w - - 0 1", chesserrors.ErrMalformedSetup},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1", chesserrors.ErrMalformedSetup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoardFromFEN(tt.fen)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewBoardFromFEN(%q) error = %v, want %v", tt.fen, err, tt.wantErr)
			}
		})
	}
}

func TestBoardToFEN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{InitialFEN, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1"},
		{busyFEN, "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w - - 4 4"},
		{"8/8/8/8/8/8/8/k3K3 w - - 0 1", "8/8/8/8/8/8/8/k3K3 w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.in)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if got := BoardToFEN(board); got != tt.want {
				t.Errorf("BoardToFEN() = %q, want %q", got, tt.want)
			}

			again, err := NewBoardFromFEN(BoardToFEN(board))
			if err != nil {
				t.Fatalf("round trip error = %v", err)
			}
			if BoardToFEN(again) != tt.want {
				t.Errorf("round trip changed the FEN: %q", BoardToFEN(again))
			}
		})
	}
}

func TestNewInitialBoard(t *testing.T) {
	board := NewInitialBoard()
	standard := chess.NewBoard()
	standard.SetupInitialPosition()

	if BoardToFEN(board) != BoardToFEN(standard) {
		t.Errorf("NewInitialBoard() = %q, SetupInitialPosition() = %q", BoardToFEN(board), BoardToFEN(standard))
	}
}
