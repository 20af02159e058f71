// Package crosscheck verifies the rules engine against independent move
// generators. dragontoothmg supplies legal move sets and the check flag;
// notnil/chess supplies the checkmate and stalemate verdict.
//
// Positions are compared after a round trip through engine.BoardToFEN, so
// castling and en passant rights are dropped on both sides. Promotions
// collapse to a single from/to pair.
package crosscheck

import (
	"fmt"
	"slices"

	"github.com/dylhunn/dragontoothmg"
	notnil "github.com/notnil/chess"
	"golang.org/x/exp/maps"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Kinds of disagreement.
const (
	KindMissingMove = "missing-move" // the oracle has a move the engine does not
	KindExtraMove   = "extra-move"   // the engine has a move the oracle does not
	KindCheck       = "check"
	KindStatus      = "status"
)

// Discrepancy is one disagreement between the engine and an oracle.
type Discrepancy struct {
	FEN    string `json:"fen"`
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

func (d Discrepancy) String() string {
	return fmt.Sprintf("%s: %s (%s)", d.Kind, d.Detail, d.FEN)
}

// Report summarises a walk.
type Report struct {
	Root           string        `json:"root"`
	Depth          int           `json:"depth"`
	Positions      int           `json:"positions"`
	Transpositions int           `json:"transpositions"`
	Discrepancies  []Discrepancy `json:"discrepancies,omitempty"`
}

// OK reports whether the walk found no discrepancies.
func (r *Report) OK() bool {
	return len(r.Discrepancies) == 0
}

// Compare checks one position. The error is for an unreadable FEN;
// disagreements are returned as discrepancies.
func Compare(fen string) ([]Discrepancy, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return compareDetector(engine.NewDetector(board)), nil
}

func compareDetector(d *engine.Detector) []Discrepancy {
	board := d.Board()
	fen := engine.BoardToFEN(board)
	colour := board.ToMove

	var out []Discrepancy

	ours := make(map[string]bool)
	for _, m := range d.AllLegalMoves(colour) {
		ours[coordinate(m.From, m.To)] = true
	}

	oracle := dragontoothmg.ParseFen(fen)
	theirs := make(map[string]bool)
	for _, m := range oracle.GenerateLegalMoves() {
		theirs[coordinate(fromIndex(m.From()), fromIndex(m.To()))] = true
	}

	for _, mv := range sortedKeys(theirs) {
		if !ours[mv] {
			out = append(out, Discrepancy{FEN: fen, Kind: KindMissingMove, Detail: mv})
		}
	}
	for _, mv := range sortedKeys(ours) {
		if !theirs[mv] {
			out = append(out, Discrepancy{FEN: fen, Kind: KindExtraMove, Detail: mv})
		}
	}

	inCheck := d.IsInCheck(colour)
	if inCheck != oracle.OurKingInCheck() {
		out = append(out, Discrepancy{
			FEN:    fen,
			Kind:   KindCheck,
			Detail: fmt.Sprintf("engine in check %t, dragontoothmg %t", inCheck, !inCheck),
		})
	}

	status := d.Status(colour)
	want, err := referenceStatus(fen, inCheck)
	if err != nil {
		out = append(out, Discrepancy{FEN: fen, Kind: KindStatus, Detail: err.Error()})
	} else if status != want {
		out = append(out, Discrepancy{
			FEN:    fen,
			Kind:   KindStatus,
			Detail: fmt.Sprintf("engine %s, notnil/chess %s", status, want),
		})
	}

	return out
}

// referenceStatus asks notnil/chess for the verdict. Its Position.Status only
// distinguishes the terminal outcomes, so the engine's own check flag splits
// the remaining positions into InCheck and NotInCheck.
func referenceStatus(fen string, inCheck bool) (chess.Status, error) {
	opt, err := notnil.FEN(fen)
	if err != nil {
		return chess.NotInCheck, fmt.Errorf("notnil/chess rejected position: %w", err)
	}
	game := notnil.NewGame(opt)

	switch game.Position().Status() {
	case notnil.Checkmate:
		return chess.Checkmated, nil
	case notnil.Stalemate:
		return chess.Stalemated, nil
	}
	if inCheck {
		return chess.InCheck, nil
	}
	return chess.NotInCheck, nil
}

// Walk compares every position reachable from fen in up to depth plies.
// Positions reached again by transposition are compared once.
func Walk(fen string, depth int) (*Report, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}

	w := &walker{
		detector: engine.NewDetector(board),
		seen:     hashing.NewDuplicateDetector(false, 0),
		report:   &Report{Root: engine.BoardToFEN(board), Depth: depth},
	}
	w.walk(depth)
	w.report.Transpositions = w.seen.DuplicateCount()
	return w.report, nil
}

type walker struct {
	detector *engine.Detector
	seen     *hashing.DuplicateDetector
	report   *Report
}

func (w *walker) walk(depth int) {
	board := w.detector.Board()
	if w.seen.CheckAndAdd(board) {
		return
	}

	w.report.Positions++
	w.report.Discrepancies = append(w.report.Discrepancies, compareDetector(w.detector)...)

	if depth <= 0 {
		return
	}
	for _, m := range w.detector.AllLegalMoves(board.ToMove) {
		saved := board.SaveState()
		w.detector.ApplyMove(m.Piece, m.To)
		w.walk(depth - 1)
		board.RestoreState(saved)
		w.detector.Update()
	}
}

// fromIndex converts a dragontoothmg square index (0 = a1, 63 = h8).
func fromIndex(idx uint8) chess.Square {
	return chess.Sq(chess.BoardSize-1-int(idx)/chess.BoardSize, int(idx)%chess.BoardSize)
}

func coordinate(from, to chess.Square) string {
	return from.String() + to.String()
}

func sortedKeys(m map[string]bool) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
