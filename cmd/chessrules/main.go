// chessrules analyses chess positions: legal moves, check, checkmate and
// stalemate. It can also play a game from stdin and archive it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx := &ProcessingContext{cfg: cfg}
	if cfg.Store.Enabled() {
		ctx.store = openArchive(cfg)
		defer ctx.store.Close() //nolint:errcheck // G104: cleanup on exit
	}

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if ctx.store != nil {
			ctx.store.Close() //nolint:errcheck,gosec // G104: cleanup on exit
		}
		os.Exit(1)
	}
}

// run dispatches to the command the flags select.
func run(ctx *ProcessingContext) error {
	cfg := ctx.cfg
	store := cfg.Store

	if store.List || store.Stats || store.DeleteID != "" {
		return runArchive(ctx)
	}

	if *playMode {
		return runPlay(ctx, *fenString, os.Stdin)
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	defer w.Close() //nolint:errcheck // G104: cleanup on exit

	if *batchFile != "" {
		file, err := os.Open(*batchFile) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return fmt.Errorf("opening batch file: %w", err)
		}
		defer file.Close() //nolint:errcheck // G104: cleanup on exit

		if _, err := runBatch(ctx, file, w); err != nil {
			return err
		}
		return w.Flush()
	}

	if err := runSingle(ctx, *fenString, *moveFrom, *moveTo, w); err != nil {
		return err
	}
	return w.Flush()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLogFile(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// openArchive opens the configured game archive.
func openArchive(cfg *config.Config) *storage.Storage {
	var store *storage.Storage
	var err error

	if cfg.Store.InMemory {
		store, err = storage.OpenInMemory()
	} else {
		store, err = storage.Open(cfg.Store.Dir)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening archive %s: %v\n", cfg.Store.Dir, err)
		os.Exit(1)
	}
	return store
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Analyse chess positions and play games by the rules.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chessrules -fen '4k3/8/8/8/8/8/4r3/4K3 w - - 0 1'\n")
	fmt.Fprintf(os.Stderr, "  chessrules -from e2 -to e4 -J\n")
	fmt.Fprintf(os.Stderr, "  chessrules -batch positions.txt -workers 8 -verify -depth 2\n")
	fmt.Fprintf(os.Stderr, "  chessrules -play -db games -save mygame\n")
}
