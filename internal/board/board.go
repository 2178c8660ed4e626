// Package board provides a fixed-size rectangular grid of pieces with
// bounds-checked access, placement and relocation, and a line-per-row text form.
//
// The board is generic over the piece set: any comparable type with a Codec
// that names an empty value and converts to and from a single character can
// be hosted. A Board is not safe for concurrent use.
package board

import (
	"strconv"

	"github.com/lgbarn/easychess-go/internal/errors"
)

// Codec describes a piece set: its empty value and its one-character encoding.
type Codec[P comparable] interface {
	// Empty returns the value of an unoccupied square.
	Empty() P
	// Decode converts a character to a piece.
	Decode(c rune) (P, error)
	// Encode converts a piece to its character.
	Encode(p P) rune
}

// Board is a row-major grid of exactly height rows of width pieces.
type Board[P comparable] struct {
	squares [][]P
	width   int
	height  int
	codec   Codec[P]
}

// New creates a width x height board with every square empty.
// Both dimensions must be at least 1.
func New[P comparable](width, height int, codec Codec[P]) (*Board[P], error) {
	if width < 1 {
		return nil, &errors.ConfigError{Err: errors.ErrInvalidConfig, Field: "width", Value: strconv.Itoa(width)}
	}
	if height < 1 {
		return nil, &errors.ConfigError{Err: errors.ErrInvalidConfig, Field: "height", Value: strconv.Itoa(height)}
	}

	b := &Board[P]{
		squares: make([][]P, height),
		width:   width,
		height:  height,
		codec:   codec,
	}
	empty := codec.Empty()
	for row := range b.squares {
		b.squares[row] = make([]P, width)
		for col := range b.squares[row] {
			b.squares[row][col] = empty
		}
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board[P]) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board[P]) Height() int { return b.height }

// Codec returns the piece set the board was built with.
func (b *Board[P]) Codec() Codec[P] { return b.codec }

// Position returns the position (col, row) if it lies on this board.
func (b *Board[P]) Position(col, row int) (Position, bool) {
	return NewPosition(col, row, b.width, b.height)
}

// check validates pos against the board's own dimensions.
func (b *Board[P]) check(pos Position) error {
	if !pos.In(b.width, b.height) {
		return &errors.OutOfBoundsError{Col: pos.Col, Row: pos.Row, Width: b.width, Height: b.height}
	}
	return nil
}

// Get returns the piece at pos.
func (b *Board[P]) Get(pos Position) (P, error) {
	if err := b.check(pos); err != nil {
		var zero P
		return zero, err
	}
	return b.squares[pos.Row-1][pos.Col-1], nil
}

// Cell returns a write-through handle to the square at pos.
func (b *Board[P]) Cell(pos Position) (Cell[P], error) {
	if err := b.check(pos); err != nil {
		return Cell[P]{}, err
	}
	return Cell[P]{square: &b.squares[pos.Row-1][pos.Col-1], pos: pos}, nil
}

// Put places piece at pos, replacing whatever was there.
// On error the board is unchanged.
func (b *Board[P]) Put(piece P, pos Position) error {
	cell, err := b.Cell(pos)
	if err != nil {
		return err
	}
	cell.Set(piece)
	return nil
}

// Move copies the piece at from to to and empties from.
// Both positions are validated before anything is written; from is reported
// first when both are invalid. Moving a square onto itself leaves it as is.
func (b *Board[P]) Move(from, to Position) error {
	src, err := b.Cell(from)
	if err != nil {
		return err
	}
	dst, err := b.Cell(to)
	if err != nil {
		return err
	}
	if from == to {
		return nil
	}
	dst.Set(src.Piece())
	src.Set(b.codec.Empty())
	return nil
}

// IsEmpty reports whether the square at pos holds the empty piece.
func (b *Board[P]) IsEmpty(pos Position) (bool, error) {
	p, err := b.Get(pos)
	if err != nil {
		return false, err
	}
	return p == b.codec.Empty(), nil
}

// Each calls fn for every square in row-major order, top row first.
func (b *Board[P]) Each(fn func(pos Position, piece P)) {
	for row := range b.squares {
		for col, piece := range b.squares[row] {
			fn(Position{Col: col + 1, Row: row + 1}, piece)
		}
	}
}

// Count returns the number of squares whose piece satisfies match.
func (b *Board[P]) Count(match func(P) bool) int {
	n := 0
	b.Each(func(_ Position, piece P) {
		if match(piece) {
			n++
		}
	})
	return n
}

// Clear empties every square.
func (b *Board[P]) Clear() {
	empty := b.codec.Empty()
	for row := range b.squares {
		for col := range b.squares[row] {
			b.squares[row][col] = empty
		}
	}
}

// Equal reports whether both boards have the same size and the same piece on every square.
func (b *Board[P]) Equal(other *Board[P]) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.width != other.width || b.height != other.height {
		return false
	}
	for row := range b.squares {
		for col := range b.squares[row] {
			if b.squares[row][col] != other.squares[row][col] {
				return false
			}
		}
	}
	return true
}

// Clone creates a deep copy of the board.
func (b *Board[P]) Clone() *Board[P] {
	c := &Board[P]{
		squares: copySquares(b.squares),
		width:   b.width,
		height:  b.height,
		codec:   b.codec,
	}
	return c
}

// Snapshot captures the squares of a board for later restoration.
// It is cheaper than Clone when a caller wants to try a change and undo it.
type Snapshot[P comparable] struct {
	squares [][]P
	width   int
	height  int
}

// Snapshot captures the current squares.
func (b *Board[P]) Snapshot() Snapshot[P] {
	return Snapshot[P]{squares: copySquares(b.squares), width: b.width, height: b.height}
}

// Restore puts the board back to a snapshot taken from a board of the same size.
func (b *Board[P]) Restore(s Snapshot[P]) error {
	if s.width != b.width || s.height != b.height {
		return &errors.ConfigError{
			Err:   errors.ErrInvalidConfig,
			Field: "snapshot size",
			Value: strconv.Itoa(s.width) + "x" + strconv.Itoa(s.height),
		}
	}
	for row := range s.squares {
		copy(b.squares[row], s.squares[row])
	}
	return nil
}

func copySquares[P comparable](src [][]P) [][]P {
	dst := make([][]P, len(src))
	for row := range src {
		dst[row] = make([]P, len(src[row]))
		copy(dst[row], src[row])
	}
	return dst
}
