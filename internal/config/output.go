package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/easychess-go/internal/errors"
)

// OutputFormat represents the board output formats.
type OutputFormat int

const (
	Text OutputFormat = iota // One line per row
	FEN                      // FEN piece placement (8x8 only)
	JSON                     // JSON document per board
)

var formatNames = []string{"text", "fen", "json"}

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return OutputFormat(i), nil
		}
	}
	return Text, &errors.ConfigError{Err: errors.ErrInvalidConfig, Field: "format", Value: s}
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text, FEN or JSON output
	Format OutputFormat

	// Headers precedes each board with a "# name" line when several boards are written
	Headers bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:  Text,
		Headers: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format < Text || o.Format > JSON {
		return &errors.ConfigError{Err: errors.ErrInvalidConfig, Field: "format", Value: o.Format.String()}
	}
	return nil
}
