package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum enabled level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info" validate:"omitempty,oneof=debug info warn error"`
	// Format selects the encoder (json or console).
	Format string `mapstructure:"format" default:"json" validate:"omitempty,oneof=json console"`
}
