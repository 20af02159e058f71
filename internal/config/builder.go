package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Output.Format = JSONFormat
	} else {
		b.cfg.Output.Format = TextFormat
	}
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithBoard controls whether text reports draw the board.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithLegalMoves controls whether reports list legal moves.
func (b *ConfigBuilder) WithLegalMoves(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowLegalMoves = enabled
	return b
}

// WithAttackMaps enables the attack map section.
func (b *ConfigBuilder) WithAttackMaps(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddAttackMaps = enabled
	return b
}

// WithHash enables the position hash.
func (b *ConfigBuilder) WithHash(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddHash = enabled
	return b
}

// WithAllowable enables the allowable squares section.
func (b *ConfigBuilder) WithAllowable(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddAllowable = enabled
	return b
}

// WithWorkers sets the number of batch workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Analysis.Workers = n
	return b
}

// WithDuplicateSkipping enables skipping repeated positions in a batch.
func (b *ConfigBuilder) WithDuplicateSkipping(enabled bool, capacity int) *ConfigBuilder {
	b.cfg.Analysis.SkipDuplicates = enabled
	b.cfg.Analysis.DuplicateCapacity = capacity
	return b
}

// WithRollbackCheck enables hash verification of speculative moves.
func (b *ConfigBuilder) WithRollbackCheck(enabled bool) *ConfigBuilder {
	b.cfg.Analysis.RollbackCheck = enabled
	return b
}

// WithVerify enables cross-checking to the given depth.
func (b *ConfigBuilder) WithVerify(enabled bool, depth int) *ConfigBuilder {
	b.cfg.Analysis.Verify = enabled
	b.cfg.Analysis.VerifyDepth = depth
	return b
}

// WithArchive sets the archive directory.
func (b *ConfigBuilder) WithArchive(dir string) *ConfigBuilder {
	b.cfg.Store.Dir = dir
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
