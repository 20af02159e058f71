package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestDetector_RookCheck(t *testing.T) {
	board := testutil.MustBoard(t,
		testutil.W(chess.King, 7, 4),
		testutil.B(chess.Rook, 5, 4),
		testutil.B(chess.King, 0, 0),
	)
	d := NewDetector(board)
	king := board.King(chess.White)

	if got := d.Status(chess.White); got != chess.InCheck {
		t.Fatalf("Status(White) = %v, want InCheck", got)
	}

	escapes := sqs([2]int{6, 3}, [2]int{6, 5}, [2]int{7, 3}, [2]int{7, 5})

	t.Run("king leaves the file", func(t *testing.T) {
		testutil.AssertSquares(t, d.LegalMoves(king), escapes)
	})

	t.Run("staying on the file is illegal", func(t *testing.T) {
		if d.TestMove(king, chess.Sq(6, 4)) {
			t.Error("TestMove(king, e2) = true, want false")
		}
	})

	t.Run("allowable squares are the evasions", func(t *testing.T) {
		testutil.AssertEqual(t, d.AllowableSquares(chess.White), chess.SetOf(escapes...))
	})

	t.Run("not checkmated", func(t *testing.T) {
		if d.IsCheckmated(chess.White) {
			t.Error("IsCheckmated(White) = true")
		}
	})

	t.Run("black is not in check", func(t *testing.T) {
		if got := d.Status(chess.Black); got != chess.NotInCheck {
			t.Errorf("Status(Black) = %v, want NotInCheck", got)
		}
	})
}

func TestDetector_Block(t *testing.T) {
	board := testutil.MustBoard(t,
		testutil.W(chess.King, 7, 4),
		testutil.B(chess.Rook, 5, 4),
		testutil.W(chess.Queen, 6, 2),
		testutil.B(chess.King, 0, 0),
	)
	d := NewDetector(board)
	queen := chess.PieceID(2)
	block := chess.Sq(6, 4)

	if !d.TestMove(queen, block) {
		t.Fatal("TestMove(queen, e2) = false, want true")
	}

	testutil.AssertEqual(t, d.LegalMoves(queen), []chess.Square{block})

	allowable := d.AllowableSquares(chess.White)
	if !allowable.Has(block) {
		t.Errorf("AllowableSquares() = %s, missing blocking square e2", allowable)
	}
	if got := d.Status(chess.White); got != chess.InCheck {
		t.Errorf("Status(White) = %v, want InCheck", got)
	}
}

func TestDetector_CaptureTheChecker(t *testing.T) {
	board := testutil.MustBoard(t,
		testutil.W(chess.King, 7, 4),
		testutil.B(chess.Rook, 5, 4),
		testutil.W(chess.Bishop, 3, 2),
		testutil.B(chess.King, 0, 0),
	)
	d := NewDetector(board)

	testutil.AssertEqual(t, d.LegalMoves(2), []chess.Square{chess.Sq(5, 4)})
	if !d.AllowableSquares(chess.White).Has(chess.Sq(5, 4)) {
		t.Error("capturing square e3 not allowable")
	}
}

func TestDetector_CornerMates(t *testing.T) {
	tests := []struct {
		name       string
		placements []testutil.Placement
		want       chess.Status
		checkers   int
	}{
		{
			// The king takes the undefended rook on h2.
			name: "two undefended rooks",
			placements: []testutil.Placement{
				testutil.W(chess.King, 7, 7),
				testutil.B(chess.Rook, 6, 7),
				testutil.B(chess.Rook, 7, 6),
				testutil.B(chess.King, 0, 0),
			},
			want:     chess.InCheck,
			checkers: 2,
		},
		{
			name: "two rooks defended by a knight",
			placements: []testutil.Placement{
				testutil.W(chess.King, 7, 7),
				testutil.B(chess.Rook, 6, 7),
				testutil.B(chess.Rook, 7, 6),
				testutil.B(chess.Knight, 5, 5),
				testutil.B(chess.King, 0, 0),
			},
			want:     chess.Checkmated,
			checkers: 2,
		},
		{
			// White could capture one rook, but the other still gives check.
			name: "double check ignores captures",
			placements: []testutil.Placement{
				testutil.W(chess.King, 7, 7),
				testutil.B(chess.Rook, 6, 7),
				testutil.B(chess.Rook, 7, 6),
				testutil.B(chess.Knight, 5, 5),
				testutil.W(chess.Rook, 6, 1),
				testutil.B(chess.King, 0, 0),
			},
			want:     chess.Checkmated,
			checkers: 2,
		},
		{
			name: "ladder mate",
			placements: []testutil.Placement{
				testutil.W(chess.King, 7, 7),
				testutil.B(chess.Rook, 7, 0),
				testutil.B(chess.Rook, 6, 1),
				testutil.B(chess.King, 0, 0),
			},
			want:     chess.Checkmated,
			checkers: 1,
		},
		{
			name: "ladder mate broken by a blocker",
			placements: []testutil.Placement{
				testutil.W(chess.King, 7, 7),
				testutil.B(chess.Rook, 7, 0),
				testutil.B(chess.Rook, 6, 1),
				testutil.W(chess.Knight, 5, 3),
				testutil.B(chess.King, 0, 0),
			},
			want:     chess.InCheck,
			checkers: 1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := NewDetector(testutil.MustBoard(t, tt.placements...))

			if got := d.Status(chess.White); got != tt.want {
				t.Errorf("Status(White) = %v, want %v", got, tt.want)
			}
			if got := len(d.Checkers(chess.White)); got != tt.checkers {
				t.Errorf("len(Checkers(White)) = %d, want %d", got, tt.checkers)
			}
			mated := tt.want == chess.Checkmated
			if got := d.AllowableSquares(chess.White).Empty(); got != mated {
				t.Errorf("AllowableSquares(White).Empty() = %v, want %v", got, mated)
			}
		})
	}
}

func TestDetector_Stalemate(t *testing.T) {
	board := testutil.MustBoard(t,
		testutil.W(chess.King, 0, 0),
		testutil.B(chess.Queen, 1, 2),
		testutil.B(chess.King, 4, 4),
	)
	d := NewDetector(board)
	king := board.King(chess.White)

	if d.IsInCheck(chess.White) {
		t.Fatal("white king on a8 is in check")
	}
	for _, sq := range PseudoLegalMoves(board, king) {
		if d.TestMove(king, sq) {
			t.Errorf("TestMove(king, %s) = true, want false", sq)
		}
	}
	if got := d.LegalMoves(king); len(got) != 0 {
		t.Errorf("LegalMoves(king) = %v, want none", got)
	}
	if got := d.Status(chess.White); got != chess.Stalemated {
		t.Errorf("Status(White) = %v, want Stalemated", got)
	}
	if d.IsCheckmated(chess.White) {
		t.Error("stalemate reported as checkmate")
	}
	if got := d.AllowableSquares(chess.White); got != chess.AllSquares {
		t.Errorf("AllowableSquares() when not in check = %s, want all squares", got)
	}
}

func TestDetector_DiscoveredCheckAlongRay(t *testing.T) {
	// The rook's ray stops at the king, so f1 is absent from the attack map,
	// but stepping there keeps the king on the rook's rank.
	board := testutil.MustBoard(t,
		testutil.W(chess.King, 7, 4),
		testutil.B(chess.Rook, 7, 0),
		testutil.B(chess.King, 0, 7),
	)
	d := NewDetector(board)

	if d.Attacks(chess.Black).Attacked(chess.Sq(7, 5)) {
		t.Fatal("f1 in the attack map; the scenario needs it shadowed by the king")
	}
	testutil.AssertSquares(t, d.LegalMoves(board.King(chess.White)),
		sqs([2]int{6, 3}, [2]int{6, 4}, [2]int{6, 5}))
}

func TestDetector_PawnPushSquareIsSafe(t *testing.T) {
	// e5 is only reachable by the pawn's forward push, which is not an attack.
	board := testutil.MustBoard(t,
		testutil.W(chess.King, 4, 4),
		testutil.B(chess.Rook, 4, 0),
		testutil.B(chess.Pawn, 2, 4),
		testutil.B(chess.King, 0, 0),
	)
	d := NewDetector(board)

	if !d.Attacks(chess.Black).Attacked(chess.Sq(3, 4)) {
		t.Fatal("e5 not in the black map; the scenario needs the pawn push")
	}
	want := sqs([2]int{3, 4}, [2]int{5, 3}, [2]int{5, 4}, [2]int{5, 5})
	testutil.AssertEqual(t, d.AllowableSquares(chess.White), chess.SetOf(want...))
}

func TestDetector_PawnCheck(t *testing.T) {
	board := testutil.MustBoard(t,
		testutil.W(chess.King, 7, 4),
		testutil.B(chess.Pawn, 6, 3),
		testutil.B(chess.King, 0, 0),
	)
	d := NewDetector(board)

	if !d.IsInCheck(chess.White) {
		t.Fatal("pawn on d2 does not check e1")
	}
	if !d.AllowableSquares(chess.White).Has(chess.Sq(6, 3)) {
		t.Error("king cannot take the checking pawn")
	}
}

func TestDetector_KnightCheckCannotBeBlocked(t *testing.T) {
	board := testutil.MustBoard(t,
		testutil.W(chess.King, 7, 4),
		testutil.B(chess.Knight, 5, 3),
		testutil.W(chess.Rook, 5, 0),
		testutil.W(chess.Pawn, 6, 3),
		testutil.W(chess.Pawn, 6, 4),
		testutil.W(chess.Pawn, 6, 5),
		testutil.W(chess.Bishop, 7, 3),
		testutil.W(chess.Bishop, 7, 5),
		testutil.B(chess.King, 0, 0),
	)
	d := NewDetector(board)

	testutil.AssertEqual(t, d.AllowableSquares(chess.White), chess.SetOf(chess.Sq(5, 3)))
	testutil.AssertEqual(t, d.LegalMoves(2), []chess.Square{chess.Sq(5, 3)})
}

func TestDetector_PinnedPiece(t *testing.T) {
	board := testutil.MustBoard(t,
		testutil.W(chess.King, 7, 4),
		testutil.W(chess.Rook, 6, 4),
		testutil.B(chess.Rook, 2, 4),
		testutil.B(chess.King, 0, 0),
	)
	d := NewDetector(board)

	testutil.AssertSquares(t, d.LegalMoves(1),
		sqs([2]int{5, 4}, [2]int{4, 4}, [2]int{3, 4}, [2]int{2, 4}))
}

func TestDetector_KingProximity(t *testing.T) {
	t.Run("kings may not touch", func(t *testing.T) {
		board := testutil.MustBoard(t,
			testutil.W(chess.King, 4, 4),
			testutil.B(chess.King, 2, 4),
		)
		d := NewDetector(board)

		testutil.AssertSquares(t, d.LegalMoves(0),
			sqs([2]int{4, 3}, [2]int{4, 5}, [2]int{5, 3}, [2]int{5, 4}, [2]int{5, 5}))
	})

	t.Run("touching kings give check", func(t *testing.T) {
		board := testutil.MustBoard(t,
			testutil.W(chess.King, 4, 4),
			testutil.B(chess.King, 3, 4),
		)
		d := NewDetector(board)

		if !d.IsInCheck(chess.White) || !d.IsInCheck(chess.Black) {
			t.Error("adjacent kings not in check")
		}
		testutil.AssertEqual(t, d.Checkers(chess.White), []chess.PieceID{1})
	})

	t.Run("a king is never captured", func(t *testing.T) {
		board := testutil.MustBoard(t,
			testutil.W(chess.King, 7, 4),
			testutil.W(chess.Rook, 0, 0),
			testutil.B(chess.King, 0, 4),
		)
		d := NewDetector(board)

		if d.TestMove(1, chess.Sq(0, 4)) {
			t.Error("TestMove onto the black king = true")
		}
		if d.IsLegal(1, chess.Sq(0, 4)) {
			t.Error("IsLegal onto the black king = true")
		}
	})
}

func TestDetector_StatusIsIdempotent(t *testing.T) {
	board, err := NewBoardFromFEN("r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")
	if err != nil {
		t.Fatal(err)
	}
	d := NewDetector(board)
	before := board.SaveState()

	first := d.Status(chess.Black)
	second := d.Status(chess.Black)
	if first != second {
		t.Errorf("Status() = %v then %v", first, second)
	}
	testutil.AssertEqual(t, board.SaveState(), before, "board changed by Status")
}

func TestDetector_ScholarsMate(t *testing.T) {
	board, err := NewBoardFromFEN("r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4")
	if err != nil {
		t.Fatal(err)
	}
	d := NewDetector(board)

	if !d.IsCheckmate() {
		t.Error("IsCheckmate() = false after Qxf7#")
	}
	if d.IsStalemate() {
		t.Error("IsStalemate() = true after Qxf7#")
	}
	if d.HasLegalMoves(chess.Black) {
		t.Errorf("black has legal moves: %v", d.AllLegalMoves(chess.Black))
	}
}
