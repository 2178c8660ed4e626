package board

// Cell is a write-through handle to one square of a Board.
// Writes made with Set are visible in the owning board immediately.
// A Cell must not be retained past the next structural change to the board,
// such as Restore from a differently built board.
type Cell[P comparable] struct {
	square *P
	pos    Position
}

// Position returns the square the handle refers to.
func (c Cell[P]) Position() Position { return c.pos }

// Piece returns the current content of the square.
func (c Cell[P]) Piece() P { return *c.square }

// Set overwrites the square.
func (c Cell[P]) Set(p P) { *c.square = p }

// Valid reports whether the handle refers to a square.
// The zero Cell returned alongside an error is not valid.
func (c Cell[P]) Valid() bool { return c.square != nil }
