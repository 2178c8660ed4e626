package fen

import (
	"testing"

	chesslib "github.com/corentings/chess/v2"

	"github.com/lgbarn/easychess-go/internal/chess"
	"github.com/lgbarn/easychess-go/internal/errors"
	"github.com/lgbarn/easychess-go/internal/testutil"
)

func TestEncodeStandardBoard(t *testing.T) {
	got, err := Encode(chess.NewStandardBoard())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if got != InitialPlacement {
		t.Errorf("Encode() = %q; want %q", got, InitialPlacement)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{
			name: "initial placement",
			fen:  InitialPlacement,
			want: chess.StandardLayout,
		},
		{
			name: "full FEN after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			want: "rnbqkbnr\npppppppp\n........\n........\n....P...\n........\nPPPP.PPP\nRNBQKBNR\n",
		},
		{
			name: "kings only",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			want: "....k...\n........\n........\n........\n........\n........\n........\n....K...\n",
		},
		{
			name: "surrounding whitespace",
			fen:  "  4k3/8/8/8/8/8/8/K7  ",
			want: "....k...\n........\n........\n........\n........\n........\n........\nK.......\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Decode(tt.fen)
			if err != nil {
				t.Fatalf("Decode(%q) error = %v", tt.fen, err)
			}
			testutil.AssertLines(t, b.Render(), tt.want)
		})
	}
}

func TestDecodeKings(t *testing.T) {
	b, err := Decode(InitialPlacement)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	black, _ := b.Get(chess.Position{Col: 5, Row: 1})
	white, _ := b.Get(chess.Position{Col: 5, Row: 8})
	if black != chess.B(chess.King) {
		t.Errorf("(5,1) = %v; want Black King", black)
	}
	if white != chess.W(chess.King) {
		t.Errorf("(5,8) = %v; want White King", white)
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, fen := range []string{"", "   ", "rnbqkbnr/pppppppp/8", "xnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"} {
		t.Run(fen, func(t *testing.T) {
			b, err := Decode(fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
			testutil.AssertNil(t, b)
		})
	}
}

func TestDecodeKeepsLibraryMessage(t *testing.T) {
	bad := "rnbqkbnr/pppppppp/8"
	_, libErr := chesslib.FEN(bad + placementSuffix)
	if libErr == nil {
		t.Fatal("library accepted a short placement")
	}

	_, err := Decode(bad)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
	testutil.AssertContains(t, err.Error(), libErr.Error())
	testutil.AssertContains(t, err.Error(), "expected FEN placement")
}

func TestEncodeWrongSize(t *testing.T) {
	b, err := chess.NewBoard(3, 3)
	if err != nil {
		t.Fatalf("NewBoard() error = %v", err)
	}
	_, err = Encode(b)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
	testutil.AssertContains(t, err.Error(), "3x3")
}

func TestRoundTrip(t *testing.T) {
	layouts := []string{
		chess.StandardLayout,
		"r...k..r\n........\n..n..q..\n...pP...\n........\n.B....N.\n........\nR...K..R\n",
		"k.......\n........\n........\n........\n........\n........\n........\n.......K\n",
	}

	for _, layout := range layouts {
		b, err := chess.ParseBoard(layout)
		if err != nil {
			t.Fatalf("ParseBoard() error = %v", err)
		}
		placement, err := Encode(b)
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		again, err := Decode(placement)
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", placement, err)
		}
		testutil.AssertTrue(t, again.Equal(b), "round trip through %q", placement)
	}
}
