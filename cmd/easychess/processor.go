// processor.go - Building boards from inputs and applying instructions
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/lgbarn/easychess-go/internal/chess"
	"github.com/lgbarn/easychess-go/internal/config"
	"github.com/lgbarn/easychess-go/internal/errors"
	"github.com/lgbarn/easychess-go/internal/fen"
	"github.com/lgbarn/easychess-go/internal/hashing"
	"github.com/lgbarn/easychess-go/internal/output"
	"github.com/lgbarn/easychess-go/internal/store"
	"github.com/lgbarn/easychess-go/internal/worker"
)

// ProcessingContext holds the state shared by every board being processed.
// Workers only read from it.
type ProcessingContext struct {
	cfg          *config.Config
	store        *store.Store
	detector     *hashing.DuplicateDetector
	instructions []instruction
}

// NewProcessingContext parses the configured instructions.
func NewProcessingContext(cfg *config.Config, st *store.Store) (*ProcessingContext, error) {
	list, err := parseInstructions(cfg.Board.Puts, cfg.Board.Moves)
	if err != nil {
		return nil, err
	}
	ctx := &ProcessingContext{cfg: cfg, store: st, instructions: list}
	if cfg.SuppressDuplicates {
		ctx.detector = hashing.NewDuplicateDetector(cfg.DuplicateCapacity)
	}
	return ctx, nil
}

// isFEN reports whether text is a single FEN line rather than a board.
func isFEN(text string) bool {
	line := strings.TrimSpace(text)
	return line != "" && !strings.Contains(line, "\n") && strings.Contains(line, "/")
}

// decodeBoard reads board text or a FEN line.
func decodeBoard(name, text string) (*chess.Board, error) {
	var (
		b   *chess.Board
		err error
	)
	if isFEN(text) {
		b, err = fen.Decode(text)
	} else {
		b, err = chess.ParseBoard(text)
	}
	if err != nil {
		var pe *errors.ParseError
		if errors.As(err, &pe) && pe.File == "" {
			located := *pe
			located.File = name
			return nil, &located
		}
		return nil, errors.Wrap(err, name)
	}
	return b, nil
}

// applyInstructions runs every instruction against b, stopping at the first
// failure. Notes are collected for verbose logging.
func (ctx *ProcessingContext) applyInstructions(b *chess.Board) ([]string, error) {
	var notes []string
	for _, in := range ctx.instructions {
		if err := in.apply(b); err != nil {
			return notes, errors.Wrapf(err, "instruction %q", in.text)
		}
		if ctx.cfg.Verbosity > 1 {
			notes = append(notes, "applied "+in.text)
		}
	}
	return notes, nil
}

// processJob builds the board for one input and applies the instructions.
func (ctx *ProcessingContext) processJob(job worker.Job) worker.Result {
	result := worker.Result{Index: job.Index, Name: job.Name}

	b, err := decodeBoard(job.Name, job.Text)
	if err != nil {
		result.Err = err
		return result
	}

	notes, err := ctx.applyInstructions(b)
	result.Notes = notes
	if err != nil {
		result.Err = errors.Wrap(err, job.Name)
		return result
	}
	result.Board = b
	return result
}

// startingBoard builds the board used when no input files are given: a stored
// board, the standard layout, an empty board of the configured size, or a
// board read from stdin, in that order of preference.
func (ctx *ProcessingContext) startingBoard(stdin io.Reader) (worker.Result, error) {
	cfg := ctx.cfg
	switch {
	case cfg.Store.Load != "":
		b, err := ctx.store.Load(cfg.Store.Load)
		if err != nil {
			return worker.Result{}, err
		}
		return ctx.finish(cfg.Store.Load, b), nil
	case cfg.Board.Standard:
		return ctx.finish("standard", chess.NewStandardBoard()), nil
	case cfg.Board.HasSize():
		b, err := chess.NewBoard(cfg.Board.Width, cfg.Board.Height)
		if err != nil {
			return worker.Result{}, err
		}
		return ctx.finish(fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height), b), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return worker.Result{}, errors.Wrap(err, "reading stdin")
	}
	return ctx.processJob(worker.Job{Name: "stdin", Text: string(data)}), nil
}

// finish applies the instructions to an already built board.
func (ctx *ProcessingContext) finish(name string, b *chess.Board) worker.Result {
	notes, err := ctx.applyInstructions(b)
	if err != nil {
		return worker.Result{Name: name, Notes: notes, Err: err}
	}
	return worker.Result{Name: name, Board: b, Notes: notes}
}

// duplicates returns the number of boards skipped as duplicates.
func (ctx *ProcessingContext) duplicates() int {
	if ctx.detector == nil {
		return 0
	}
	return ctx.detector.DuplicateCount()
}

// numWorkers picks the pool size for n inputs.
func (ctx *ProcessingContext) numWorkers(n int) int {
	w := ctx.cfg.Workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

// processFiles reads and processes every file; results keep the input order.
// With StopOnError, files after the first failure are not processed.
func (ctx *ProcessingContext) processFiles(filenames []string) []worker.Result {
	var unread []worker.Result
	jobs := make([]worker.Job, 0, len(filenames))

	for i, filename := range filenames {
		data, err := os.ReadFile(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			unread = append(unread, worker.Result{Index: i, Name: filename, Err: err})
			if ctx.cfg.StopOnError {
				break
			}
			continue
		}
		jobs = append(jobs, worker.Job{Index: i, Name: filename, Text: string(data)})
	}

	var opts []worker.Option
	if ctx.cfg.StopOnError {
		opts = append(opts, worker.WithStopOnError())
	}
	results := append(worker.Run(jobs, ctx.numWorkers(len(jobs)), ctx.processJob, opts...), unread...)
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}

// writeResults writes every successful board and logs every failure. With
// duplicate suppression, boards identical to one already written are skipped.
// With StopOnError, nothing after the first failure is written. It returns the
// number of boards written and the number of failures.
func (ctx *ProcessingContext) writeResults(results []worker.Result) (written, failed int) {
	cfg := ctx.cfg
	w := output.NewWriter(cfg.OutputFile, cfg)

	for _, r := range results {
		if failed > 0 && cfg.StopOnError {
			cfg.Logf(1, "Stopped after the first failure.")
			break
		}
		for _, note := range r.Notes {
			cfg.Logf(2, "%s: %s", r.Name, note)
		}
		if r.Err != nil {
			failed++
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", r.Err)
			continue
		}

		var sig hashing.BoardSignature
		if ctx.detector != nil {
			sig = hashing.NewSignature(r.Board)
			if ctx.detector.Seen(sig) {
				cfg.Logf(2, "%s: duplicate board skipped", r.Name)
				continue
			}
		}
		if err := w.WriteBoard(r.Name, r.Board); err != nil {
			failed++
			fmt.Fprintf(cfg.LogFile, "Error writing %s: %v\n", r.Name, err)
			continue
		}
		// Only boards that reached the output count for later duplicates
		if ctx.detector != nil {
			ctx.detector.Add(sig)
		}
		written++
	}

	if err := w.Close(); err != nil {
		failed++
		fmt.Fprintf(cfg.LogFile, "Error writing output: %v\n", err)
	}
	return written, failed
}

// saveResult stores the single successful board under the configured name.
func (ctx *ProcessingContext) saveResult(results []worker.Result) error {
	name := ctx.cfg.Store.Save
	var boards []*chess.Board
	for _, r := range results {
		if r.Err == nil && r.Board != nil {
			boards = append(boards, r.Board)
		}
	}
	if len(boards) != 1 {
		return &errors.ConfigError{
			Err:   errors.ErrInvalidConfig,
			Field: "save",
			Value: fmt.Sprintf("%s (%d boards, need exactly 1)", name, len(boards)),
		}
	}
	if err := ctx.store.Save(name, boards[0]); err != nil {
		return err
	}
	ctx.cfg.Logf(1, "Saved board as %q", name)
	return nil
}

// listStored writes the stored names, one per line.
func (ctx *ProcessingContext) listStored() error {
	names, err := ctx.store.List()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(ctx.cfg.OutputFile, name)
	}
	return nil
}
