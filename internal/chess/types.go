// Package chess provides the chess piece set for the generic board: piece
// kinds, sides, a tagged piece value, its one-letter encoding, and the
// standard starting layout.
package chess

// Side represents the side a piece belongs to.
type Side uint8

const (
	NoSide Side = iota // Only the empty piece has no side
	White
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opposite returns the other side. NoSide has no opposite.
func (s Side) Opposite() Side {
	switch s {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoSide
	}
}

func (s Side) valid() bool { return s == White || s == Black }

// Kind represents a chess piece identity.
type Kind uint8

const (
	NoKind Kind = iota // Only the empty piece has no kind
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
	NumKinds
)

// Kinds lists every real kind in encoding order.
var Kinds = []Kind{King, Queen, Rook, Bishop, Knight, Pawn}

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the lowercase letter of a kind, or 0 for NoKind.
func (k Kind) Letter() rune {
	letters := []rune{0, 'k', 'q', 'r', 'b', 'n', 'p'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return 0
}

func (k Kind) valid() bool { return k > NoKind && k < NumKinds }

// Piece is the content of one square: either empty, or a kind owned by a side.
// The fields are only set together through NewPiece, W and B, so a side
// without a kind or a kind without a side cannot be built.
// The zero value is Empty.
type Piece struct {
	side Side
	kind Kind
}

// Empty is the content of an unoccupied square.
var Empty = Piece{}

// NewPiece returns a piece of the given kind for side.
// An invalid side or kind yields Empty.
func NewPiece(side Side, kind Kind) Piece {
	if !side.valid() || !kind.valid() {
		return Empty
	}
	return Piece{side: side, kind: kind}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// Side returns the side of the piece, NoSide for Empty.
func (p Piece) Side() Side { return p.side }

// Kind returns the kind of the piece, NoKind for Empty.
func (p Piece) Kind() Kind { return p.kind }

// IsEmpty reports whether p is the empty piece.
func (p Piece) IsEmpty() bool { return p == Empty }

// Is reports whether p is a kind piece of side.
func (p Piece) Is(side Side, kind Kind) bool {
	return p.side == side && p.kind == kind && !p.IsEmpty()
}

// String returns e.g. "White King", or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.side.String() + " " + p.kind.String()
}
