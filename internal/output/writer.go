// Package output writes boards in text, FEN and JSON form.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/easychess-go/internal/chess"
	"github.com/lgbarn/easychess-go/internal/config"
	"github.com/lgbarn/easychess-go/internal/fen"
)

// BoardWriter is the interface for writing boards to output.
// Different implementations handle different output formats.
type BoardWriter interface {
	// WriteBoard writes a single named board to the output.
	WriteBoard(name string, b *chess.Board) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for the configured format.
func NewWriter(w io.Writer, cfg *config.Config) BoardWriter {
	switch cfg.Output.Format {
	case config.FEN:
		return NewFENWriter(w, cfg)
	case config.JSON:
		return NewJSONWriter(w, cfg)
	default:
		return NewTextWriter(w, cfg)
	}
}

// TextWriter writes boards in the textual board format.
type TextWriter struct {
	w       io.Writer
	cfg     *config.Config
	written int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteBoard writes the rendered board, preceded by a "# name" header when
// headers are enabled. Boards are separated by a blank line.
func (tw *TextWriter) WriteBoard(name string, b *chess.Board) error {
	if tw.written > 0 {
		if _, err := io.WriteString(tw.w, "\n"); err != nil {
			return err
		}
	}
	tw.written++
	if tw.cfg.Output.Headers && name != "" {
		if _, err := fmt.Fprintf(tw.w, "# %s\n", name); err != nil {
			return err
		}
	}
	_, err := io.WriteString(tw.w, b.Render())
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// FENWriter writes one FEN placement field per board.
type FENWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewFENWriter creates a new FEN writer.
func NewFENWriter(w io.Writer, cfg *config.Config) *FENWriter {
	return &FENWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteBoard writes the placement field, followed by " ; name" when headers
// are enabled. Boards that are not 8x8 return fen.Encode's error.
func (fw *FENWriter) WriteBoard(name string, b *chess.Board) error {
	placement, err := fen.Encode(b)
	if err != nil {
		return err
	}
	if fw.cfg.Output.Headers && name != "" {
		_, err = fmt.Fprintf(fw.w, "%s ; %s\n", placement, name)
		return err
	}
	_, err = fmt.Fprintln(fw.w, placement)
	return err
}

// Flush is a no-op; lines are written immediately.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close closes the FEN writer.
func (fw *FENWriter) Close() error {
	return nil
}

// JSONWriter writes boards in JSON format.
// It buffers boards and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	boards []*JSONBoard
	single bool // If true, write each board immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches boards and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		boards: make([]*JSONBoard, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each board immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteBoard buffers a board for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteBoard(name string, b *chess.Board) error {
	jb := BoardToJSON(name, b)
	if jw.single {
		return encode(jw.w, jb)
	}
	jw.boards = append(jw.boards, jb)
	return nil
}

// Flush writes all buffered boards as a JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.boards) == 0 {
		return nil
	}

	err := encode(jw.w, &JSONOutput{Boards: jw.boards})

	// Clear buffer after writing
	jw.boards = jw.boards[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
