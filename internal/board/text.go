package board

import (
	"fmt"
	"strings"

	"github.com/lgbarn/easychess-go/internal/errors"
)

// Render returns the text form of the board: one line per row, top row
// first, one encoded character per square, every line ending in '\n'.
func (b *Board[P]) Render() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for _, row := range b.squares {
		for _, piece := range row {
			sb.WriteRune(b.codec.Encode(piece))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String returns the text form of the board.
func (b *Board[P]) String() string {
	return b.Render()
}

// Parse builds a board from its text form. The width is taken from the
// first line and every other line must have the same number of characters;
// row lengths are checked before any character is decoded.
// A single trailing newline is allowed and "\r\n" line endings are accepted.
func Parse[P comparable](text string, codec Codec[P]) (*Board[P], error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, &errors.ConfigError{Err: errors.ErrInvalidConfig, Field: "board", Value: text}
	}

	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, &errors.ParseError{
				Err:      errors.ErrInconsistentRow,
				Line:     i + 1,
				Expected: fmt.Sprintf("%d squares", width),
				Got:      fmt.Sprintf("%d", len(row)),
			}
		}
	}

	b, err := New(width, len(rows), codec)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		for col, c := range row {
			piece, err := codec.Decode(c)
			if err != nil {
				return nil, locate(err, c, i+1, col+1)
			}
			b.squares[i][col] = piece
		}
	}
	return b, nil
}

// locate fills in the position of a decoding failure. Codecs that return
// a *errors.ParseError keep their own message; anything else is wrapped.
func locate(err error, c rune, line, col int) error {
	var pe *errors.ParseError
	if errors.As(err, &pe) {
		located := *pe
		located.Line = line
		located.Column = col
		return &located
	}
	return &errors.ParseError{
		Err:    err,
		Line:   line,
		Column: col,
		Got:    fmt.Sprintf("%q", c),
	}
}

// splitLines splits text into lines, dropping one trailing newline and any
// '\r' that precedes a '\n'.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
