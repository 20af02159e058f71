package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxVerifyDepth bounds the cross-check walk.
const MaxVerifyDepth = 5

// AnalysisConfig holds settings for position analysis.
type AnalysisConfig struct {
	// Workers is the number of goroutines used in batch mode
	Workers int

	// SkipDuplicates drops positions already seen in the batch
	SkipDuplicates bool

	// DuplicateCapacity caps the seen-set (0 = unlimited)
	DuplicateCapacity int

	// RollbackCheck hashes the board around every speculative move
	RollbackCheck bool

	// Verify cross-checks results against reference move generators
	Verify      bool
	VerifyDepth int
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		Workers:        runtime.NumCPU(),
		SkipDuplicates: true,
	}
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if a.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", a.Workers, errors.ErrInvalidConfig)
	}
	if a.DuplicateCapacity < 0 {
		return fmt.Errorf("duplicate capacity (%d) is negative: %w", a.DuplicateCapacity, errors.ErrInvalidConfig)
	}
	if a.VerifyDepth < 0 || a.VerifyDepth > MaxVerifyDepth {
		return fmt.Errorf("verify depth (%d) outside 0..%d: %w", a.VerifyDepth, MaxVerifyDepth, errors.ErrInvalidConfig)
	}
	return nil
}
