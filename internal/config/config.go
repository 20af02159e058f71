// Package config provides configuration for the chessrules command.
package config

import (
	"io"
	"os"
)

// OutputFormat selects how position reports are written.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // Human-readable report with a board diagram
	JSONFormat                     // One JSON document per run
)

// String returns the string representation of an output format.
func (f OutputFormat) String() string {
	if f == JSONFormat {
		return "json"
	}
	return "text"
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	Output     *OutputConfig
	Annotation *AnnotationConfig
	Analysis   *AnalysisConfig
	Store      *StoreConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Annotation: NewAnnotationConfig(),
		Analysis:   NewAnalysisConfig(),
		Store:      NewStoreConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream reports are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the stream progress and diagnostics are written to.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-config. Errors wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := c.Analysis.Validate(); err != nil {
		return err
	}
	return c.Store.Validate()
}
