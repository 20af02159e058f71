package hashing

import "github.com/lgbarn/chessrules-go/internal/chess"

// zobristSeed fixes the key table so hashes are stable across runs and can
// be stored alongside archived games.
const zobristSeed = 0x9E3779B97F4A7C15

var (
	pieceKeys [chess.NumColours][chess.NumKinds][chess.NumSquares]uint64
	sideKey   uint64
)

func init() {
	state := uint64(zobristSeed)
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = splitmix64(&state)
			}
		}
	}
	sideKey = splitmix64(&state)
}

// splitmix64 advances state and returns the next pseudo-random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// GenerateZobristHash returns the Zobrist hash of the position: every
// occupied square's piece and the side to move. Clocks are not included.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for i := 0; i < chess.NumSquares; i++ {
		p := board.PieceAt(chess.SquareAt(i))
		if p == nil {
			continue
		}
		hash ^= pieceKeys[p.Colour][p.Kind][i]
	}
	if board.ToMove == chess.Black {
		hash ^= sideKey
	}
	return hash
}

// WeakHash is a cheap order-independent signature: the sum of
// (kind, colour, square) codes. Used as a secondary check next to the
// Zobrist hash.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for i := 0; i < chess.NumSquares; i++ {
		p := board.PieceAt(chess.SquareAt(i))
		if p == nil {
			continue
		}
		code := uint32(p.Kind)*2 + uint32(p.Colour)
		hash += code * uint32(i+1)
	}
	return hash
}
