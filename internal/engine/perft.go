package engine

// Perft counts the leaf positions reachable in exactly depth plies from the
// current board, playing every legal move for the side to move. The board is
// restored before Perft returns.
func (d *Detector) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := d.AllLegalMoves(d.board.ToMove)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		saved := d.board.SaveState()
		d.ApplyMove(m.Piece, m.To)
		nodes += d.Perft(depth - 1)
		d.board.RestoreState(saved)
		d.Update()
	}
	return nodes
}
