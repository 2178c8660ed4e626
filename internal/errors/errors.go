// Package errors provides sentinel errors and error types for easychess.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidPiece indicates a character that does not encode a piece.
	ErrInvalidPiece = errors.New("invalid piece character")

	// ErrInconsistentRow indicates a board row whose length differs from the first row.
	ErrInconsistentRow = errors.New("inconsistent row length")

	// ErrOutOfBounds indicates a position outside the board.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrInvalidConfig indicates invalid configuration values, including board dimensions.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidFEN indicates a malformed FEN string or a board FEN cannot describe.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidInstruction indicates a malformed put or move instruction.
	ErrInvalidInstruction = errors.New("invalid instruction")

	// ErrNotFound indicates a missing stored board.
	ErrNotFound = errors.New("not found")
)

// ParseError represents a parsing error with location context.
// Line and Column are 1-based; zero means unknown.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	// Add location
	if e.Line > 0 {
		loc := fmt.Sprintf("line %d", e.Line)
		if e.Column > 0 {
			loc += fmt.Sprintf(", column %d", e.Column)
		}
		if e.File != "" {
			loc = e.File + ": " + loc
		}
		parts = append(parts, loc)
	} else if e.File != "" {
		parts = append(parts, e.File)
	}

	// Add expected/got context
	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// OutOfBoundsError reports a position that falls outside a board.
// It always unwraps to ErrOutOfBounds.
type OutOfBoundsError struct {
	Col    int // Attempted column (1-based)
	Row    int // Attempted row (1-based)
	Width  int // Board width
	Height int // Board height
}

// Error returns the attempted position and the board size.
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("(%d,%d) on %dx%d board: %v", e.Col, e.Row, e.Width, e.Height, ErrOutOfBounds)
}

// Unwrap returns ErrOutOfBounds.
func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// ConfigError reports a rejected configuration value, such as a zero board dimension.
type ConfigError struct {
	Err   error  // The underlying error, normally ErrInvalidConfig
	Field string // Name of the offending setting
	Value string // The rejected value
}

// Error returns the field, value and cause.
func (e *ConfigError) Error() string {
	msg := e.Field
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	if e.Err == nil {
		return msg
	}
	if msg == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
