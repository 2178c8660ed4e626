package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/easychess-go/internal/errors"
)

// BoardConfig describes the starting board when no input is given, and the
// edits applied to every board.
type BoardConfig struct {
	// Width and Height of an empty starting board; zero means unset
	Width  int
	Height int

	// Standard starts from the standard 8x8 layout
	Standard bool

	// Puts are placement instructions such as "Q@1,1"
	Puts []string

	// Moves are move instructions such as "5,7 5,5"
	Moves []string
}

// NewBoardConfig creates a BoardConfig with default values.
func NewBoardConfig() *BoardConfig {
	return &BoardConfig{}
}

// SetSize parses a "WxH" size such as "8x8".
func (b *BoardConfig) SetSize(s string) error {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return &errors.ConfigError{Err: errors.ErrInvalidConfig, Field: "size", Value: s}
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return &errors.ConfigError{Err: errors.ErrInvalidConfig, Field: "size", Value: s}
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return &errors.ConfigError{Err: errors.ErrInvalidConfig, Field: "size", Value: s}
	}
	b.Width, b.Height = width, height
	return b.Validate()
}

// HasSize reports whether an explicit size was given.
func (b *BoardConfig) HasSize() bool {
	return b.Width != 0 || b.Height != 0
}

// Validate checks that the board configuration is valid.
func (b *BoardConfig) Validate() error {
	if b.HasSize() && (b.Width < 1 || b.Height < 1) {
		return &errors.ConfigError{
			Err:   errors.ErrInvalidConfig,
			Field: "size",
			Value: fmt.Sprintf("%dx%d", b.Width, b.Height),
		}
	}
	if b.HasSize() && b.Standard {
		return fmt.Errorf("size and standard layout are exclusive: %w", errors.ErrInvalidConfig)
	}
	return nil
}
