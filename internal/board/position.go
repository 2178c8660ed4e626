package board

import "fmt"

// Position identifies a square by 1-based column and row.
// Column 1 is the leftmost square, row 1 the top line of the text form.
// A Position only means something relative to a particular board size.
type Position struct {
	Col int
	Row int
}

// NewPosition returns the position (col, row) if it lies on a board of the
// given size. ok is false, and the zero Position is returned, otherwise.
func NewPosition(col, row, width, height int) (pos Position, ok bool) {
	if col < 1 || col > width || row < 1 || row > height {
		return Position{}, false
	}
	return Position{Col: col, Row: row}, true
}

// In reports whether p lies on a board of the given size.
func (p Position) In(width, height int) bool {
	return p.Col >= 1 && p.Col <= width && p.Row >= 1 && p.Row <= height
}

// String returns "(col,row)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}
