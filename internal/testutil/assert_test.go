package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Failures cannot be observed without a fake *testing.T, so these cover the
// passing paths and the helpers behind the messages.

func TestAssertions_Pass(t *testing.T) {
	var board *chess.Board
	sentinel := errors.New("sentinel")

	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.SetOf(chess.Sq(0, 0)), chess.SetOf(chess.Sq(0, 0)), "set of %s", "a8")
	AssertNoError(t, nil)
	AssertError(t, sentinel, "expected error from %s", "operation")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
	AssertContains(t, "Status: Checkmated", "Checkmated")
	AssertContains(t, "anything", "")
	AssertNotContains(t, "Status: InCheck", "Checkmated")
	AssertTrue(t, chess.Sq(7, 4).Valid())
	AssertFalse(t, chess.NoSquare.Valid())
	AssertNil(t, nil)
	AssertNil(t, board)
}

func TestSquareNamesTransformer(t *testing.T) {
	want := chess.SetOf(chess.MustParseSquare("e1"), chess.MustParseSquare("e2"))
	got := chess.SetOf(chess.MustParseSquare("e1"), chess.MustParseSquare("d2"))

	diff := cmp.Diff(want, got, squareNames)
	for _, name := range []string{"e2", "d2"} {
		if !strings.Contains(diff, name) {
			t.Errorf("diff does not name %s:\n%s", name, diff)
		}
	}
	if diff := cmp.Diff(want, want, squareNames); diff != "" {
		t.Errorf("equal sets produced a diff:\n%s", diff)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"plain string", []interface{}{"hello"}, "hello"},
		{"non-string", []interface{}{42}, "42"},
		{"format", []interface{}{"move %s to %s", "e2", "e4"}, "move e2 to e4"},
		{"format with int", []interface{}{"ply %d", 3}, "ply 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := describe(tt.args); got != tt.want {
				t.Errorf("describe(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
