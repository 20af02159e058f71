package hashing

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// SeenSet is a DuplicateDetector shared between goroutines that also
// remembers which batch entry first claimed each position.
type SeenSet struct {
	mu       sync.Mutex
	detector *DuplicateDetector
	first    map[PositionSignature]int
}

// NewSeenSet creates an empty set. maxCapacity of 0 means unlimited.
func NewSeenSet(exactMatch bool, maxCapacity int) *SeenSet {
	return &SeenSet{
		detector: NewDuplicateDetector(exactMatch, maxCapacity),
		first:    make(map[PositionSignature]int),
	}
}

// Claim records board as seen by entry index. If an equal position was
// claimed earlier it returns that entry's index and true. Once the set is
// full, unseen positions are not recorded and every call reports them new.
func (s *SeenSet) Claim(board *chess.Board, index int) (int, bool) {
	key := s.key(board)

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.detector.UniqueCount()
	if s.detector.CheckAndAdd(board) {
		return s.first[key], true
	}
	if s.detector.UniqueCount() > stored {
		s.first[key] = index
	}
	return index, false
}

// key is the signature as the detector compares it.
func (s *SeenSet) key(board *chess.Board) PositionSignature {
	sig := Signature(board)
	if !s.detector.useExactMatch {
		sig.MoveNumber, sig.HalfmoveClock = 0, 0
	}
	return sig
}

// Counts returns the number of distinct positions stored and the number of
// duplicate claims.
func (s *SeenSet) Counts() (unique, duplicates int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detector.UniqueCount(), s.detector.DuplicateCount()
}
