package output

import (
	"strings"

	"github.com/lgbarn/easychess-go/internal/chess"
	"github.com/lgbarn/easychess-go/internal/fen"
)

// JSONBoard represents a board in JSON format.
type JSONBoard struct {
	Name   string       `json:"name,omitempty"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Rows   []string     `json:"rows"`
	FEN    string       `json:"fen,omitempty"` // 8x8 boards only
	Pieces []JSONSquare `json:"pieces,omitempty"`
}

// JSONSquare represents an occupied square in JSON format.
type JSONSquare struct {
	Col   int    `json:"col"`
	Row   int    `json:"row"`
	Color string `json:"color"` // "white" or "black"
	Piece string `json:"piece"`
}

// JSONOutput holds multiple boards for array output.
type JSONOutput struct {
	Boards []*JSONBoard `json:"boards"`
}

// BoardToJSON converts a board to JSON format.
func BoardToJSON(name string, b *chess.Board) *JSONBoard {
	jb := &JSONBoard{
		Name:   name,
		Width:  b.Width(),
		Height: b.Height(),
		Rows:   strings.Split(strings.TrimSuffix(b.Render(), "\n"), "\n"),
	}

	if placement, err := fen.Encode(b); err == nil {
		jb.FEN = placement
	}

	b.Each(func(pos chess.Position, p chess.Piece) {
		if p.IsEmpty() {
			return
		}
		jb.Pieces = append(jb.Pieces, JSONSquare{
			Col:   pos.Col,
			Row:   pos.Row,
			Color: strings.ToLower(p.Side().String()),
			Piece: strings.ToLower(p.Kind().String()),
		})
	})

	return jb
}
