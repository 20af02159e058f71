// Package output provides position reports in text and JSON.
package output

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/crosscheck"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Report describes one analysed position.
type Report struct {
	Index       int                 `json:"index"`
	FEN         string              `json:"fen"`
	SideToMove  string              `json:"sideToMove,omitempty"`
	Status      string              `json:"status,omitempty"`
	Checkers    []string            `json:"checkers,omitempty"`
	MoveCount   int                 `json:"moveCount"`
	LegalMoves  []string            `json:"legalMoves,omitempty"`
	Attacks     map[string][]string `json:"attacks,omitempty"`
	Allowable   []string            `json:"allowable,omitempty"`
	Hash        string              `json:"hash,omitempty"`
	Duplicate   bool                `json:"duplicate,omitempty"`
	DuplicateOf int                 `json:"duplicateOf,omitempty"` // 1-based position number
	Verify      *crosscheck.Report  `json:"verify,omitempty"`
	Error       string              `json:"error,omitempty"`

	board *chess.Board
}

// Analyze builds a report on the detector's current position for the side
// to move. The detector's board is left as it was.
func Analyze(d *engine.Detector, cfg *config.Config) *Report {
	board := d.Board()
	colour := board.ToMove

	r := &Report{
		FEN:        engine.BoardToFEN(board),
		SideToMove: colour.String(),
		Status:     d.Status(colour).String(),
		board:      board.Copy(),
	}

	for _, id := range d.Checkers(colour) {
		r.Checkers = append(r.Checkers, board.Piece(id).Square.String())
	}

	moves := d.AllLegalMoves(colour)
	r.MoveCount = len(moves)
	if cfg.Output.ShowLegalMoves {
		for _, m := range moves {
			r.LegalMoves = append(r.LegalMoves, m.String())
		}
	}

	if cfg.Annotation.AddAttackMaps {
		r.Attacks = map[string][]string{
			chess.White.String(): squareNames(d.Attacks(chess.White).Squares()),
			chess.Black.String(): squareNames(d.Attacks(chess.Black).Squares()),
		}
	}
	if cfg.Annotation.AddAllowable {
		r.Allowable = squareNames(d.AllowableSquares(colour))
	}
	if cfg.Annotation.AddHash {
		r.Hash = fmt.Sprintf("%016x", hashing.GenerateZobristHash(board))
	}
	return r
}

// ErrorReport records a position that could not be analysed.
func ErrorReport(index int, fen string, err error) *Report {
	return &Report{Index: index, FEN: fen, Error: err.Error()}
}

// DuplicateReport stands in for a position that repeats batch entry first.
func DuplicateReport(index int, fen string, first int) *Report {
	return &Report{Index: index, FEN: fen, Duplicate: true, DuplicateOf: first + 1}
}

func squareNames(set chess.SquareSet) []string {
	squares := set.Squares()
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return names
}
