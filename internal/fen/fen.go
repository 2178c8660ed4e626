// Package fen converts 8x8 chess boards to and from the piece-placement
// field of Forsyth-Edwards Notation.
//
// Row 1 of a board is rank 8 and column 1 is file a, so the text form of a
// board and its FEN placement list ranks in the same order.
package fen

import (
	"strings"

	chesslib "github.com/corentings/chess/v2"

	"github.com/lgbarn/easychess-go/internal/chess"
	"github.com/lgbarn/easychess-go/internal/errors"
)

// InitialPlacement is the placement field of the standard starting position.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// placementSuffix completes a bare placement field into a full FEN.
const placementSuffix = " w - - 0 1"

var toLibKind = map[chess.Kind]chesslib.PieceType{
	chess.King:   chesslib.King,
	chess.Queen:  chesslib.Queen,
	chess.Rook:   chesslib.Rook,
	chess.Bishop: chesslib.Bishop,
	chess.Knight: chesslib.Knight,
	chess.Pawn:   chesslib.Pawn,
}

var fromLibKind = map[chesslib.PieceType]chess.Kind{
	chesslib.King:   chess.King,
	chesslib.Queen:  chess.Queen,
	chesslib.Rook:   chess.Rook,
	chesslib.Bishop: chess.Bishop,
	chesslib.Knight: chess.Knight,
	chesslib.Pawn:   chess.Pawn,
}

// square converts a board position to a library square.
func square(pos chess.Position) chesslib.Square {
	file := pos.Col - 1
	rank := chess.BoardSize - pos.Row
	return chesslib.Square(file + chess.BoardSize*rank)
}

// Encode returns the FEN placement field for b, which must be 8x8.
func Encode(b *chess.Board) (string, error) {
	if b.Width() != chess.BoardSize || b.Height() != chess.BoardSize {
		return "", errors.Wrapf(errors.ErrInvalidFEN, "board is %dx%d, FEN needs %dx%d",
			b.Width(), b.Height(), chess.BoardSize, chess.BoardSize)
	}

	squares := make(map[chesslib.Square]chesslib.Piece)
	b.Each(func(pos chess.Position, p chess.Piece) {
		if p.IsEmpty() {
			return
		}
		colour := chesslib.White
		if p.Side() == chess.Black {
			colour = chesslib.Black
		}
		squares[square(pos)] = chesslib.NewPiece(toLibKind[p.Kind()], colour)
	})

	return chesslib.NewBoard(squares).String(), nil
}

// Decode builds an 8x8 board from a FEN string. Either a complete FEN or
// only its placement field is accepted; the other fields are ignored.
func Decode(fen string) (*chess.Board, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}
	full := strings.Join(fields, " ")
	if len(fields) == 1 {
		full += placementSuffix
	}

	opt, err := chesslib.FEN(full)
	if err != nil {
		return nil, &errors.ParseError{
			Err:      errors.Wrap(errors.ErrInvalidFEN, err.Error()),
			Got:      fields[0],
			Expected: "FEN placement",
		}
	}
	libBoard := chesslib.NewGame(opt).Position().Board()

	b, err := chess.NewBoard(chess.BoardSize, chess.BoardSize)
	if err != nil {
		return nil, err
	}
	for row := 1; row <= chess.BoardSize; row++ {
		for col := 1; col <= chess.BoardSize; col++ {
			pos := chess.Position{Col: col, Row: row}
			p := libBoard.Piece(square(pos))
			if p == chesslib.NoPiece {
				continue
			}
			side := chess.White
			if p.Color() == chesslib.Black {
				side = chess.Black
			}
			if err := b.Put(chess.NewPiece(side, fromLibKind[p.Type()]), pos); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}
