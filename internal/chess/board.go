package chess

import (
	"github.com/lgbarn/easychess-go/internal/board"
)

// Board is a board of chess pieces.
type Board = board.Board[Piece]

// Position is a 1-based (column, row) square; row 1 is Black's back rank
// in the standard layout.
type Position = board.Position

// Standard board dimensions.
const (
	BoardSize = 8
)

// StandardLayout is the text form of the standard starting position.
const StandardLayout = "rnbqkbnr\n" +
	"pppppppp\n" +
	"........\n" +
	"........\n" +
	"........\n" +
	"........\n" +
	"PPPPPPPP\n" +
	"RNBQKBNR\n"

// backRank lists the pieces of a back rank from column 1.
var backRank = []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates an empty width x height board.
func NewBoard(width, height int) (*Board, error) {
	return board.New[Piece](width, height, Codec{})
}

// NewStandardBoard creates an 8x8 board in the standard starting position.
func NewStandardBoard() *Board {
	b, _ := NewBoard(BoardSize, BoardSize) // 8x8 is always a valid size
	SetupStandardPosition(b)
	return b
}

// SetupStandardPosition clears b and places both armies on its first two and
// last two rows. Boards narrower than eight columns get the leftmost part of
// each back rank; boards shorter than four rows are only cleared.
func SetupStandardPosition(b *Board) {
	b.Clear()
	if b.Height() < 4 {
		return
	}
	// col <= Width and Height >= 4 keep every square below in bounds.
	for col := 1; col <= b.Width() && col <= len(backRank); col++ {
		kind := backRank[col-1]
		_ = b.Put(B(kind), Position{Col: col, Row: 1})
		_ = b.Put(B(Pawn), Position{Col: col, Row: 2})
		_ = b.Put(W(Pawn), Position{Col: col, Row: b.Height() - 1})
		_ = b.Put(W(kind), Position{Col: col, Row: b.Height()})
	}
}

// ParseBoard builds a chess board from its text form.
func ParseBoard(text string) (*Board, error) {
	return board.Parse[Piece](text, Codec{})
}

// CountSide returns the number of pieces side has on b.
func CountSide(b *Board, side Side) int {
	return b.Count(func(p Piece) bool { return !p.IsEmpty() && p.Side() == side })
}

// FindPiece returns the first square, in row-major order, holding p.
func FindPiece(b *Board, p Piece) (Position, bool) {
	var found Position
	ok := false
	b.Each(func(pos Position, piece Piece) {
		if !ok && piece == p {
			found, ok = pos, true
		}
	})
	return found, ok
}
