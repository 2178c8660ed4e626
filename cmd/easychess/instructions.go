// instructions.go - Placement and move instructions from flags and files
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lgbarn/easychess-go/internal/chess"
	"github.com/lgbarn/easychess-go/internal/errors"
)

// instruction is one edit applied to a board.
type instruction struct {
	text  string
	put   bool
	piece chess.Piece
	from  chess.Position
	to    chess.Position
}

func invalidInstruction(text, expected string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidInstruction,
		Expected: expected,
		Got:      fmt.Sprintf("%q", text),
	}
}

// parseCoord parses "x,y" into a 1-based position. Bounds are checked when
// the instruction is applied, since boards differ in size.
func parseCoord(s string) (chess.Position, error) {
	x, y, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return chess.Position{}, invalidInstruction(s, "x,y")
	}
	col, err := strconv.Atoi(strings.TrimSpace(x))
	if err != nil {
		return chess.Position{}, invalidInstruction(s, "x,y")
	}
	row, err := strconv.Atoi(strings.TrimSpace(y))
	if err != nil {
		return chess.Position{}, invalidInstruction(s, "x,y")
	}
	return chess.Position{Col: col, Row: row}, nil
}

// parseMove parses "x,y x,y".
func parseMove(s string) (instruction, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return instruction{}, invalidInstruction(s, "x,y x,y")
	}
	from, err := parseCoord(fields[0])
	if err != nil {
		return instruction{}, err
	}
	to, err := parseCoord(fields[1])
	if err != nil {
		return instruction{}, err
	}
	return instruction{text: s, from: from, to: to}, nil
}

// parsePut parses "P@x,y" where P is a board character; "." clears the square.
func parsePut(s string) (instruction, error) {
	letter, coord, ok := strings.Cut(strings.TrimSpace(s), "@")
	if !ok || utf8.RuneCountInString(letter) != 1 {
		return instruction{}, invalidInstruction(s, "P@x,y")
	}
	c, _ := utf8.DecodeRuneInString(letter)
	piece, err := chess.Decode(c)
	if err != nil {
		return instruction{}, err
	}
	pos, err := parseCoord(coord)
	if err != nil {
		return instruction{}, err
	}
	return instruction{text: s, put: true, piece: piece, to: pos}, nil
}

// parseInstructions parses placements first, then moves, in flag order.
func parseInstructions(puts, moves []string) ([]instruction, error) {
	list := make([]instruction, 0, len(puts)+len(moves))
	for _, s := range puts {
		in, err := parsePut(s)
		if err != nil {
			return nil, err
		}
		list = append(list, in)
	}
	for _, s := range moves {
		in, err := parseMove(s)
		if err != nil {
			return nil, err
		}
		list = append(list, in)
	}
	return list, nil
}

// apply performs the instruction on b.
func (in instruction) apply(b *chess.Board) error {
	if in.put {
		return b.Put(in.piece, in.to)
	}
	return b.Move(in.from, in.to)
}

// loadMovesFile reads move instructions, one per line. Blank lines and lines
// starting with # are skipped; a parse error reports the line number.
func loadMovesFile(filename string) ([]string, error) {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var moves []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := parseMove(line); err != nil {
			var pe *errors.ParseError
			if errors.As(err, &pe) {
				located := *pe
				located.File = filename
				located.Line = lineNum
				return nil, &located
			}
			return nil, err
		}
		moves = append(moves, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return moves, nil
}
