package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// StoreConfig holds settings for the game archive.
type StoreConfig struct {
	// Dir is the archive directory
	Dir string

	// InMemory keeps the archive for the life of the process only
	InMemory bool

	// SaveID archives the game under this id when play ends
	SaveID string

	// ResumeID replays an archived game before play starts
	ResumeID string

	// List prints the archived game ids
	List bool

	// Stats summarises archived results
	Stats bool

	// DeleteID removes an archived game
	DeleteID string
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{}
}

// Enabled reports whether any option needs the archive open.
func (s *StoreConfig) Enabled() bool {
	return s.SaveID != "" || s.ResumeID != "" || s.DeleteID != "" || s.List || s.Stats
}

// Validate checks that the store configuration is valid.
func (s *StoreConfig) Validate() error {
	if s.Enabled() && s.Dir == "" && !s.InMemory {
		return fmt.Errorf("archive directory required: %w", errors.ErrInvalidConfig)
	}
	if strings.ContainsAny(s.SaveID, "/\n") {
		return fmt.Errorf("invalid game id %q: %w", s.SaveID, errors.ErrInvalidConfig)
	}
	return nil
}
