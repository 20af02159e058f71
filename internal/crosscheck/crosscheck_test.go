package crosscheck

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"initial position", engine.InitialFEN},
		{"open middlegame", "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w - - 4 4"},
		{"scholar's mate", "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b - - 0 4"},
		{"stalemate", "K7/2q5/8/8/8/8/8/4k3 w - - 0 1"},
		{"rook check with lateral escapes", "k7/8/8/8/8/4r3/8/4K3 w - - 0 1"},
		{"pinned knight", "4k3/8/8/8/4r3/8/4N3/4K3 w - - 0 1"},
		{"pawns about to collide", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1"},
		{"black to move in check", "4k3/8/8/1B6/8/8/8/4K3 b - - 0 1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Compare(tt.fen)
			testutil.AssertNoError(t, err)
			if len(got) != 0 {
				t.Errorf("Compare(%q) found %d discrepancies: %v", tt.fen, len(got), got)
			}
		})
	}
}

func TestCompare_InvalidFEN(t *testing.T) {
	if _, err := Compare("8/8/8/8/8/8/8/8 w - - 0 1"); !errors.Is(err, chesserrors.ErrMalformedSetup) {
		t.Errorf("Compare() error = %v, want ErrMalformedSetup", err)
	}
	if _, err := Compare("rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"); !errors.Is(err, chesserrors.ErrInvalidFEN) {
		t.Errorf("Compare() error = %v, want ErrInvalidFEN", err)
	}
}

func TestReferenceStatus(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		inCheck bool
		want    chess.Status
	}{
		{"quiet", engine.InitialFEN, false, chess.NotInCheck},
		{"check", "k7/8/8/8/8/4r3/8/4K3 w - - 0 1", true, chess.InCheck},
		{"checkmate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3", true, chess.Checkmated},
		{"stalemate", "K7/2q5/8/8/8/8/8/4k3 w - - 0 1", false, chess.Stalemated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := referenceStatus(tt.fen, tt.inCheck)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestWalk(t *testing.T) {
	report, err := Walk(engine.InitialFEN, 2)
	testutil.AssertNoError(t, err)

	testutil.AssertTrue(t, report.OK(), "discrepancies: %v", report.Discrepancies)
	testutil.AssertEqual(t, report.Positions, 1+20+400)
	testutil.AssertEqual(t, report.Transpositions, 0)
	testutil.AssertEqual(t, report.Depth, 2)
	testutil.AssertEqual(t, report.Root, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1")
}

func TestWalk_Transpositions(t *testing.T) {
	// Nf3 Kd8 Kf1 and Kf1 Kd8 Nf3 reach the same position.
	report, err := Walk("4k1n1/8/8/8/8/8/8/4K1N1 w - - 0 1", 3)
	testutil.AssertNoError(t, err)

	testutil.AssertTrue(t, report.OK(), "discrepancies: %v", report.Discrepancies)
	testutil.AssertTrue(t, report.Transpositions > 0, "expected repeated positions")
}

func TestWalk_InvalidFEN(t *testing.T) {
	_, err := Walk("", 1)
	testutil.AssertError(t, err)
}

func TestFromIndex(t *testing.T) {
	tests := []struct {
		idx  uint8
		want string
	}{
		{0, "a1"},
		{7, "h1"},
		{12, "e2"},
		{56, "a8"},
		{63, "h8"},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, fromIndex(tt.idx).String(), tt.want, "fromIndex(%d)", tt.idx)
	}
}

func TestDiscrepancyString(t *testing.T) {
	d := Discrepancy{FEN: "fen", Kind: KindExtraMove, Detail: "e2e4"}
	testutil.AssertEqual(t, d.String(), "extra-move: e2e4 (fen)")
}
