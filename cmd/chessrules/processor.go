package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/crosscheck"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/storage"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// ProcessingContext holds the state shared by every command.
type ProcessingContext struct {
	cfg   *config.Config
	store *storage.Storage // nil unless an archive option is set
}

// detectorOptions returns the Detector options the configuration asks for.
func (ctx *ProcessingContext) detectorOptions() []engine.Option {
	if ctx.cfg.Analysis.RollbackCheck {
		return []engine.Option{engine.WithRollbackCheck()}
	}
	return nil
}

// logf writes to the log when verbosity is at least level.
func (ctx *ProcessingContext) logf(level int, format string, args ...interface{}) {
	if ctx.cfg.Verbosity >= level {
		fmt.Fprintf(ctx.cfg.LogFile, format, args...)
	}
}

// analyzeDetector reports on the detector's position, cross-checking it when
// verification is on.
func analyzeDetector(d *engine.Detector, index int, ctx *ProcessingContext) *output.Report {
	r := output.Analyze(d, ctx.cfg)
	r.Index = index

	if ctx.cfg.Analysis.Verify {
		report, err := crosscheck.Walk(r.FEN, ctx.cfg.Analysis.VerifyDepth)
		if err != nil {
			r.Error = err.Error()
		}
		r.Verify = report
	}
	return r
}

// batchStats counts what a batch run did.
type batchStats struct {
	Positions     int
	Duplicates    int
	Errors        int
	Discrepancies int
}

// readPositions reads one FEN per line, skipping blank lines and # comments.
func readPositions(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}

// runBatch analyses every position in r on the worker pool and writes each
// report, in input order, as soon as it and every earlier one are ready.
//
// Workers share only the thread-safe seen-set; each parses its own board.
// Which of two identical positions is reported as the duplicate depends on
// scheduling, the number of duplicates does not.
func runBatch(ctx *ProcessingContext, r io.Reader, w output.ReportWriter) (batchStats, error) {
	var stats batchStats

	fens, err := readPositions(r)
	if err != nil {
		return stats, fmt.Errorf("reading positions: %w", err)
	}

	var seen *hashing.SeenSet
	if ctx.cfg.Analysis.SkipDuplicates {
		seen = hashing.NewSeenSet(false, ctx.cfg.Analysis.DuplicateCapacity)
	}

	processFunc := func(item worker.WorkItem) worker.ProcessResult {
		return processPosition(item, seen, ctx)
	}

	bufferSize := len(fens)
	if bufferSize > 100 {
		bufferSize = 100
	}
	emit := func(result worker.ProcessResult) error {
		report, ok := result.Analysis.(*output.Report)
		switch {
		case result.Error != nil:
			stats.Errors++
			report = output.ErrorReport(result.Index, result.FEN, result.Error)
			ctx.logf(1, "Position %d: %v\n", result.Index+1, result.Error)
		case result.Duplicate:
			stats.Duplicates++
		case !ok:
			return nil
		default:
			ctx.logf(2, "Position %d: %s\n", result.Index+1, report.Status)
		}
		stats.Positions++
		if report.Verify != nil {
			stats.Discrepancies += len(report.Verify.Discrepancies)
		}
		return w.WriteReport(report)
	}

	err = worker.Run(fens, processFunc, emit,
		worker.WithWorkers(ctx.cfg.Analysis.Workers),
		worker.WithBufferSize(bufferSize))
	if err != nil {
		return stats, err
	}

	ctx.logf(1, "%d position(s) analysed, %d duplicate(s), %d error(s).\n",
		stats.Positions-stats.Duplicates-stats.Errors, stats.Duplicates, stats.Errors)
	if ctx.cfg.Analysis.Verify {
		ctx.logf(1, "%d discrepancy(ies) found.\n", stats.Discrepancies)
	}
	return stats, nil
}

// processPosition analyses a single position in a worker goroutine.
func processPosition(item worker.WorkItem, seen *hashing.SeenSet, ctx *ProcessingContext) worker.ProcessResult {
	result := worker.ProcessResult{FEN: item.FEN, Index: item.Index}

	board, err := engine.NewBoardFromFEN(item.FEN)
	if err != nil {
		result.Error = err
		return result
	}
	result.Board = board

	if seen != nil {
		if first, dup := seen.Claim(board, item.Index); dup {
			result.Duplicate = true
			result.Analysis = output.DuplicateReport(item.Index, item.FEN, first)
			return result
		}
	}

	result.Analysis = analyzeDetector(engine.NewDetector(board, ctx.detectorOptions()...), item.Index, ctx)
	return result
}
