package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// AttackMap maps each square, by index, to the ids of one side's pieces
// that have a pseudo-legal move onto it. Kings never appear in it.
//
// An attack map is derived data. It is only meaningful for the board state
// it was built from and must be rebuilt after any mutation.
type AttackMap [chess.NumSquares][]chess.PieceID

// Attackers returns the pieces that can move onto sq.
func (m *AttackMap) Attackers(sq chess.Square) []chess.PieceID {
	if !sq.Valid() {
		return nil
	}
	return m[sq.Index()]
}

// Attacked reports whether at least one piece can move onto sq.
func (m *AttackMap) Attacked(sq chess.Square) bool {
	return len(m.Attackers(sq)) > 0
}

// Squares returns the set of squares with at least one attacker.
func (m *AttackMap) Squares() chess.SquareSet {
	var set chess.SquareSet
	for i, ids := range m {
		if len(ids) > 0 {
			set = set.Add(chess.SquareAt(i))
		}
	}
	return set
}

// String lists attacked squares with their attacker ids, for debugging.
func (m *AttackMap) String() string {
	var sb strings.Builder
	for _, sq := range m.Squares().Squares() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(sq.String())
		sb.WriteByte(':')
		for i, id := range m.Attackers(sq) {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(int(id)))
		}
	}
	return sb.String()
}

// RebuildAttacks builds both attack maps from scratch. Captured pieces are
// pruned from the live collections first, so every remaining live piece has
// a square. Pieces are visited in id order, which fixes the order of each
// attacker list.
func RebuildAttacks(board *chess.Board) (white, black *AttackMap) {
	board.Prune()
	white, black = new(AttackMap), new(AttackMap)
	var buf []chess.Square
	buildAttackMap(white, board, chess.White, &buf)
	buildAttackMap(black, board, chess.Black, &buf)
	return white, black
}

func buildAttackMap(m *AttackMap, board *chess.Board, colour chess.Colour, buf *[]chess.Square) {
	for _, id := range board.Live(colour) {
		if board.Piece(id).Kind == chess.King {
			continue
		}
		*buf = appendPseudoLegalMoves((*buf)[:0], board, id)
		for _, sq := range *buf {
			i := sq.Index()
			m[i] = append(m[i], id)
		}
	}
}
