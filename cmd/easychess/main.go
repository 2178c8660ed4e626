// easychess is a tool for building, editing and converting rectangular chess boards.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/easychess-go/internal/config"
	"github.com/lgbarn/easychess-go/internal/store"
	"github.com/lgbarn/easychess-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("easychess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		os.Exit(2)
	}

	os.Exit(run(cfg, flag.Args(), os.Stdin))
}

// run processes the inputs and returns the exit status: 0 when every board
// was produced, 1 otherwise.
func run(cfg *config.Config, args []string, stdin io.Reader) int {
	st, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error opening board store %s: %v\n", cfg.Store.Dir, err)
		return 1
	}
	if st != nil {
		defer st.Close()
	}

	ctx, err := NewProcessingContext(cfg, st)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}

	if cfg.Store.List {
		if err := ctx.listStored(); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error listing boards: %v\n", err)
			return 1
		}
		return 0
	}

	var results []worker.Result
	if len(args) == 0 {
		r, err := ctx.startingBoard(stdin)
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			return 1
		}
		results = []worker.Result{r}
	} else {
		results = ctx.processFiles(args)
	}

	written, failed := ctx.writeResults(results)

	if cfg.Store.Save != "" {
		if failed > 0 {
			fmt.Fprintf(cfg.LogFile, "Board not saved as %q: %d input(s) failed\n", cfg.Store.Save, failed)
		} else if err := ctx.saveResult(results); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error saving board: %v\n", err)
			failed++
		}
	}

	if cfg.SuppressDuplicates {
		cfg.Logf(1, "%d board(s) written, %d duplicate(s), %d failed.", written, ctx.duplicates(), failed)
	} else {
		cfg.Logf(1, "%d board(s) written, %d failed.", written, failed)
	}

	if failed > 0 {
		return 1
	}
	return 0
}

// openStore opens the board store when a store operation was requested.
func openStore(cfg *config.Config) (*store.Store, error) {
	if !cfg.Store.Enabled() {
		return nil, nil
	}
	return store.Open(cfg.Store.Dir)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: easychess [options] [board-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Build, edit and convert rectangular chess boards.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nBoard files hold one line per row, top row first, using . k q r b n p K Q R B N P.\n")
	fmt.Fprintf(os.Stderr, "A file holding a single FEN line is read as an 8x8 board.\n")
	fmt.Fprintf(os.Stderr, "\nPositions are 1-based \"column,row\"; row 1 is the top line.\n")
	fmt.Fprintf(os.Stderr, "\nOutput formats (-format):\n")
	fmt.Fprintf(os.Stderr, "  text   One line per row (default)\n")
	fmt.Fprintf(os.Stderr, "  fen    FEN piece placement (8x8 boards only)\n")
	fmt.Fprintf(os.Stderr, "  json   JSON document with rows and pieces\n")
}
