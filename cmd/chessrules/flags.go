// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

var (
	// Position and moves
	fenString = flag.String("fen", engine.InitialFEN, "Starting position in FEN")
	moveFrom  = flag.String("from", "", "Attempt a move from this square (with -to)")
	moveTo    = flag.String("to", "", "Attempt a move to this square (with -from)")
	playMode  = flag.Bool("play", false, "Read moves (\"e2 e4\" or \"e2e4\") from stdin")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	lineLength = flag.Int("w", 80, "Maximum line length")
	noBoard    = flag.Bool("noboard", false, "Don't draw the board in text reports")
	noMoves    = flag.Bool("nomoves", false, "Don't list legal moves, only count them")

	// Report sections
	showAttacks   = flag.Bool("attacks", false, "Report both sides' attacked squares")
	showHash      = flag.Bool("hash", false, "Report the position hash")
	showAllowable = flag.Bool("allowable", false, "Report the squares that resolve check")

	// Batch analysis
	batchFile         = flag.String("batch", "", "Analyse every FEN in this file, one per line")
	numWorkers        = flag.Int("workers", runtime.NumCPU(), "Number of batch workers")
	keepDuplicates    = flag.Bool("keepdups", false, "Analyse repeated batch positions again")
	duplicateCapacity = flag.Int("duplicate-capacity", 0, "Maximum seen-position entries (0 = unlimited)")

	// Verification
	verify        = flag.Bool("verify", false, "Cross-check against reference move generators")
	verifyDepth   = flag.Int("depth", 1, "Plies to walk when cross-checking")
	checkRollback = flag.Bool("check-rollback", false, "Verify every speculative move restores the board")

	// Archive
	archiveDir = flag.String("db", "", "Game archive directory")
	saveID     = flag.String("save", "", "Archive the game under this id")
	resumeID   = flag.String("resume", "", "Resume the archived game with this id")
	listGames  = flag.Bool("list", false, "List archived game ids")
	deleteID   = flag.String("delete", "", "Delete the archived game with this id")
	showStats  = flag.Bool("stats", false, "Summarise archived results")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	quiet   = flag.Bool("q", false, "Quiet mode")
	verbose = flag.Bool("v", false, "Running commentary")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyAnnotationFlags(cfg)
	applyAnalysisFlags(cfg)
	applyStoreFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyOutputFlags configures report formatting.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSONFormat
	}
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ShowLegalMoves = !*noMoves
}

// applyAnnotationFlags configures optional report sections.
func applyAnnotationFlags(cfg *config.Config) {
	cfg.Annotation.AddAttackMaps = *showAttacks
	cfg.Annotation.AddHash = *showHash
	cfg.Annotation.AddAllowable = *showAllowable
}

// applyAnalysisFlags configures batch and verification settings.
func applyAnalysisFlags(cfg *config.Config) {
	cfg.Analysis.Workers = *numWorkers
	cfg.Analysis.SkipDuplicates = !*keepDuplicates
	cfg.Analysis.DuplicateCapacity = *duplicateCapacity
	cfg.Analysis.RollbackCheck = *checkRollback
	cfg.Analysis.Verify = *verify
	cfg.Analysis.VerifyDepth = *verifyDepth
}

// applyStoreFlags configures the game archive.
func applyStoreFlags(cfg *config.Config) {
	cfg.Store.Dir = *archiveDir
	cfg.Store.SaveID = *saveID
	cfg.Store.ResumeID = *resumeID
	cfg.Store.List = *listGames
	cfg.Store.Stats = *showStats
	cfg.Store.DeleteID = *deleteID
}
