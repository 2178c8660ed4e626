package chess

import (
	"fmt"
	"unicode"

	"github.com/lgbarn/easychess-go/internal/board"
	"github.com/lgbarn/easychess-go/internal/errors"
)

// EmptyChar is the character of an unoccupied square.
const EmptyChar = '.'

// Alphabet lists every character Decode accepts.
const Alphabet = ".kqrbnpKQRBNP"

// kindByLetter maps lowercase letters to kinds.
var kindByLetter = map[rune]Kind{
	'k': King,
	'q': Queen,
	'r': Rook,
	'b': Bishop,
	'n': Knight,
	'p': Pawn,
}

// Decode converts a character to a piece. Uppercase letters are White,
// lowercase Black, and '.' is Empty. Any other character returns a
// *errors.ParseError wrapping errors.ErrInvalidPiece.
func Decode(c rune) (Piece, error) {
	if c == EmptyChar {
		return Empty, nil
	}
	kind, ok := kindByLetter[unicode.ToLower(c)]
	if !ok || c > unicode.MaxASCII {
		return Empty, &errors.ParseError{
			Err:      errors.ErrInvalidPiece,
			Expected: "one of " + Alphabet,
			Got:      fmt.Sprintf("%q", c),
		}
	}
	if unicode.IsUpper(c) {
		return W(kind), nil
	}
	return B(kind), nil
}

// Encode converts a piece to its character.
func Encode(p Piece) rune {
	if p.IsEmpty() {
		return EmptyChar
	}
	c := p.kind.Letter()
	if p.side == White {
		c = unicode.ToUpper(c)
	}
	return c
}

// Rune returns the character of the piece.
func (p Piece) Rune() rune {
	return Encode(p)
}

// Codec is the chess piece set for the generic board.
type Codec struct{}

var _ board.Codec[Piece] = Codec{}

// Empty returns the empty piece.
func (Codec) Empty() Piece { return Empty }

// Decode converts a character to a piece.
func (Codec) Decode(c rune) (Piece, error) { return Decode(c) }

// Encode converts a piece to its character.
func (Codec) Encode(p Piece) rune { return Encode(p) }
