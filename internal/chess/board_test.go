package chess

import (
	"testing"

	"github.com/lgbarn/easychess-go/internal/errors"
	"github.com/lgbarn/easychess-go/internal/testutil"
)

func TestNewBoard(t *testing.T) {
	b, err := NewBoard(3, 3)
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}

	t.Run("all squares empty", func(t *testing.T) {
		b.Each(func(pos Position, p Piece) {
			if p != Empty {
				t.Errorf("%v = %v; want Empty", pos, p)
			}
		})
	})

	t.Run("zero size rejected", func(t *testing.T) {
		_, err := NewBoard(0, 8)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
	})
}

func TestPutQueenOnEmptyBoard(t *testing.T) {
	b, err := NewBoard(3, 3)
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}

	if err := b.Put(W(Queen), Position{Col: 1, Row: 1}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	testutil.AssertLines(t, b.Render(), "Q..\n...\n...\n")
	if got := CountSide(b, White); got != 1 {
		t.Errorf("CountSide(White) = %d; want 1", got)
	}
}

func TestStandardLayout(t *testing.T) {
	b, err := ParseBoard(StandardLayout)
	if err != nil {
		t.Fatalf("ParseBoard() error = %v", err)
	}

	if b.Width() != 8 || b.Height() != 8 {
		t.Fatalf("size = %dx%d; want 8x8", b.Width(), b.Height())
	}
	testutil.AssertLines(t, b.Render(), StandardLayout, "render reproduces input")

	tests := []struct {
		name     string
		col, row int
		piece    Piece
	}{
		{"black king", 5, 1, B(King)},
		{"white king", 5, 8, W(King)},
		{"black queen", 4, 1, B(Queen)},
		{"white queen", 4, 8, W(Queen)},
		{"black rook", 1, 1, B(Rook)},
		{"white knight", 7, 8, W(Knight)},
		{"black pawn", 3, 2, B(Pawn)},
		{"white pawn", 6, 7, W(Pawn)},
		{"empty", 4, 4, Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Get(Position{Col: tt.col, Row: tt.row})
			if err != nil {
				t.Fatalf("Get(%d,%d) error = %v", tt.col, tt.row, err)
			}
			if got != tt.piece {
				t.Errorf("Get(%d,%d) = %v; want %v", tt.col, tt.row, got, tt.piece)
			}
		})
	}
}

func TestNewStandardBoard(t *testing.T) {
	b := NewStandardBoard()

	parsed, err := ParseBoard(StandardLayout)
	if err != nil {
		t.Fatalf("ParseBoard() error = %v", err)
	}
	testutil.AssertTrue(t, b.Equal(parsed), "NewStandardBoard matches StandardLayout")
	testutil.AssertEqual(t, CountSide(b, White), 16)
	testutil.AssertEqual(t, CountSide(b, Black), 16)
}

func TestSetupStandardPositionOtherSizes(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          string
	}{
		{"narrow", 3, 4, "rnb\nppp\nPPP\nRNB\n"},
		{"wide", 10, 4, "rnbqkbnr..\npppppppp..\nPPPPPPPP..\nRNBQKBNR..\n"},
		{"single column", 1, 4, "r\np\nP\nR\n"},
		{"too short", 3, 3, "...\n...\n...\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoard(tt.width, tt.height)
			if err != nil {
				t.Fatalf("NewBoard() error = %v", err)
			}
			_ = b.Put(W(King), Position{Col: 1, Row: 3})
			SetupStandardPosition(b)
			testutil.AssertLines(t, b.Render(), tt.want)
		})
	}
}

func TestMoveOnStandardBoard(t *testing.T) {
	b := NewStandardBoard()
	from := Position{Col: 5, Row: 7}
	to := Position{Col: 5, Row: 5}

	if err := b.Move(from, to); err != nil {
		t.Fatalf("Move() error = %v", err)
	}

	testutil.AssertLines(t, b.Render(),
		"rnbqkbnr\n"+
			"pppppppp\n"+
			"........\n"+
			"........\n"+
			"....P...\n"+
			"........\n"+
			"PPPP.PPP\n"+
			"RNBQKBNR\n")

	t.Run("failed move leaves board unchanged", func(t *testing.T) {
		before := b.Clone()
		err := b.Move(Position{Col: 1, Row: 8}, Position{Col: 9, Row: 8})
		testutil.AssertErrorIs(t, err, errors.ErrOutOfBounds)
		testutil.AssertTrue(t, b.Equal(before), "board unchanged")
	})

	t.Run("move onto itself", func(t *testing.T) {
		king := Position{Col: 5, Row: 8}
		if err := b.Move(king, king); err != nil {
			t.Fatalf("Move() error = %v", err)
		}
		got, _ := b.Get(king)
		if got != W(King) {
			t.Errorf("Get(%v) = %v; want White King", king, got)
		}
	})
}

func TestCellAssignmentIsObservable(t *testing.T) {
	b := NewStandardBoard()
	pos := Position{Col: 4, Row: 4}

	cell, err := b.Cell(pos)
	if err != nil {
		t.Fatalf("Cell() error = %v", err)
	}
	cell.Set(B(Queen))

	got, err := b.Get(pos)
	testutil.AssertNoError(t, err)
	if got != B(Queen) {
		t.Errorf("Get(%v) = %v; want Black Queen", pos, got)
	}
}

func TestParseBoardErrors(t *testing.T) {
	t.Run("ragged", func(t *testing.T) {
		_, err := ParseBoard("ab\nabc")
		testutil.AssertErrorIs(t, err, errors.ErrInconsistentRow)
	})

	t.Run("invalid character", func(t *testing.T) {
		_, err := ParseBoard("rnbq\npxpp\n")
		testutil.AssertErrorIs(t, err, errors.ErrInvalidPiece)

		var pe *errors.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("error = %T; want *errors.ParseError", err)
		}
		if pe.Line != 2 || pe.Column != 2 {
			t.Errorf("location = %d:%d; want 2:2", pe.Line, pe.Column)
		}
		testutil.AssertContains(t, err.Error(), "'x'")
	})
}

func TestParseRenderRoundTrip(t *testing.T) {
	boards := []string{
		StandardLayout,
		"k\n",
		"K.r\n.b.\nN.p\nQ.q\n",
		"....\n....\n",
	}

	for _, text := range boards {
		b, err := ParseBoard(text)
		if err != nil {
			t.Fatalf("ParseBoard(%q) error = %v", text, err)
		}
		again, err := ParseBoard(b.Render())
		if err != nil {
			t.Fatalf("ParseBoard(Render()) error = %v", err)
		}
		testutil.AssertTrue(t, again.Equal(b), "round trip of %q", text)
	}
}

func TestFindPiece(t *testing.T) {
	b := NewStandardBoard()

	pos, ok := FindPiece(b, W(King))
	testutil.AssertTrue(t, ok, "white king found")
	testutil.AssertEqual(t, pos, Position{Col: 5, Row: 8})

	pos, ok = FindPiece(b, B(Rook))
	testutil.AssertTrue(t, ok, "black rook found")
	testutil.AssertEqual(t, pos, Position{Col: 1, Row: 1}, "first in row-major order")

	_, ok = FindPiece(b, Empty)
	testutil.AssertTrue(t, ok, "empty squares exist")

	empty, _ := NewBoard(2, 2)
	_, ok = FindPiece(empty, W(Queen))
	testutil.AssertFalse(t, ok, "no queen on empty board")
}
