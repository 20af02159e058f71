package config

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// Format selects text or JSON reports
	Format OutputFormat

	// ShowBoard includes a board diagram in text reports
	ShowBoard bool

	// ShowLegalMoves lists every legal move of the side to move
	ShowLegalMoves bool

	// MaxLineLength wraps square and move lists in text reports
	MaxLineLength uint
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:         TextFormat,
		ShowBoard:      true,
		ShowLegalMoves: true,
		MaxLineLength:  80,
	}
}
