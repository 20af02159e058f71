package config

// AnnotationConfig holds settings for optional report sections.
type AnnotationConfig struct {
	// AddAttackMaps includes both sides' attacked squares
	AddAttackMaps bool

	// AddHash includes the Zobrist hash of the position
	AddHash bool

	// AddAllowable includes the squares that resolve check
	AddAllowable bool
}

// NewAnnotationConfig creates an AnnotationConfig with default values.
// All sections are off by default.
func NewAnnotationConfig() *AnnotationConfig {
	return &AnnotationConfig{}
}
