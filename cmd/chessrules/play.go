package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// loadGame resumes the archived game if one is named, otherwise starts from fen.
func loadGame(ctx *ProcessingContext, fen string) (*game.Game, error) {
	if id := ctx.cfg.Store.ResumeID; id != "" {
		rec, err := ctx.store.LoadGame(id)
		if err != nil {
			return nil, err
		}
		g, err := game.Restore(rec, ctx.detectorOptions()...)
		if err != nil {
			return nil, err
		}
		ctx.logf(1, "Resumed game %q after %d move(s).\n", id, len(rec.Moves))
		return g, nil
	}
	return game.NewFromFEN(fen, ctx.detectorOptions()...)
}

// saveGame archives g when a save id is configured.
func saveGame(ctx *ProcessingContext, g *game.Game) error {
	id := ctx.cfg.Store.SaveID
	if id == "" {
		return nil
	}
	if err := ctx.store.SaveGame(g.Record(id)); err != nil {
		return errors.Wrapf(err, "saving game %q", id)
	}
	ctx.logf(1, "Saved game %q.\n", id)
	return nil
}

// reportGame writes the report on g's current position.
func reportGame(ctx *ProcessingContext, g *game.Game, w output.ReportWriter) error {
	d := engine.NewDetector(g.Board(), ctx.detectorOptions()...)
	return w.WriteReport(analyzeDetector(d, 0, ctx))
}

// runSingle analyses one position, optionally after one attempted move.
func runSingle(ctx *ProcessingContext, fen, from, to string, w output.ReportWriter) error {
	g, err := loadGame(ctx, fen)
	if err != nil {
		return err
	}

	if from != "" || to != "" {
		if err := attemptMove(g, from+to); err != nil {
			return err
		}
		ctx.logf(1, "Applied %s%s.\n", from, to)
	}

	if err := saveGame(ctx, g); err != nil {
		return err
	}
	return reportGame(ctx, g, w)
}

// attemptMove applies a move written as "e2e4" or "e2 e4".
func attemptMove(g *game.Game, text string) error {
	from, to, err := game.ParseCoordinateMove(strings.ReplaceAll(text, " ", ""))
	if err != nil {
		return err
	}
	return g.Move(from, to)
}

// runPlay reads one command per line from in until the game ends, the input
// ends or "quit" is read. Rejected moves are reported and play continues.
func runPlay(ctx *ProcessingContext, fen string, in io.Reader) error {
	g, err := loadGame(ctx, fen)
	if err != nil {
		return err
	}
	out := ctx.cfg.OutputFile

	printStatus(out, g)
	scanner := bufio.NewScanner(in)
	for !g.Over() && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit":
			return finishPlay(ctx, g)
		case "fen":
			fmt.Fprintln(out, g.FEN())
			continue
		case "moves":
			printLegalMoves(out, g)
			continue
		}

		if err := attemptMove(g, line); err != nil {
			fmt.Fprintf(out, "Rejected: %v\n", err)
			continue
		}
		printStatus(out, g)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading moves: %w", err)
	}
	return finishPlay(ctx, g)
}

func finishPlay(ctx *ProcessingContext, g *game.Game) error {
	if g.Over() {
		fmt.Fprintf(ctx.cfg.OutputFile, "Game over: %s\n", g.Result())
	}
	ctx.logf(1, "%d move(s) played.\n", len(g.History()))
	return saveGame(ctx, g)
}

func printStatus(w io.Writer, g *game.Game) {
	side := g.SideToMove()
	status := g.CheckStatus(side)
	if history := g.History(); len(history) > 0 {
		fmt.Fprintf(w, "%d. %s ", len(history), history[len(history)-1])
	}
	fmt.Fprintf(w, "%s to move: %s\n", side, status)
}

func printLegalMoves(w io.Writer, g *game.Game) {
	board := g.Board()
	var moves []string
	for _, id := range board.Live(g.SideToMove()) {
		from := board.Piece(id).Square
		for _, to := range g.LegalMoves(id) {
			moves = append(moves, chess.Move{From: from, To: to, Captured: board.At(to)}.String())
		}
	}
	fmt.Fprintln(w, strings.Join(moves, " "))
}

// runArchive performs the list, stats and delete commands.
func runArchive(ctx *ProcessingContext) error {
	out := ctx.cfg.OutputFile
	store := ctx.cfg.Store

	if store.DeleteID != "" {
		if err := ctx.store.DeleteGame(store.DeleteID); err != nil {
			return err
		}
		ctx.logf(1, "Deleted game %q.\n", store.DeleteID)
	}
	if store.List {
		ids, err := ctx.store.ListGames()
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(out, id)
		}
	}
	if store.Stats {
		stats, err := ctx.store.Stats()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d game(s): %d white win(s), %d black win(s), %d draw(s), %d unfinished.\n",
			stats.Games, stats.WhiteWins, stats.BlackWins, stats.Draws, stats.Unfinished)
	}
	return nil
}
