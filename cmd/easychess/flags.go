// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/easychess-go/internal/config"
)

// stringList collects a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, "; ")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

var (
	// Starting board
	standard  = flag.Bool("standard", false, "Start from the standard layout (when no files are given)")
	boardSize = flag.String("size", "", "Start from an empty board of this size, e.g. 8x8")

	// Edits
	puts      stringList
	moves     stringList
	movesFile = flag.String("moves", "", "File of move instructions, one per line (# for comments)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("format", "text", "Output format: text, fen, json")
	noHeaders    = flag.Bool("noheaders", false, "Don't precede each board with its name")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate boards")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum remembered boards for -D (0 = unlimited)")

	// Snapshot store
	storeDir  = flag.String("db", ".easychess", "Board store directory")
	loadName  = flag.String("load", "", "Start from the stored board with this name")
	saveName  = flag.String("save", "", "Store the final board under this name")
	listNames = flag.Bool("list", false, "List stored boards and exit")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Log each instruction as it is applied")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers     = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	stopOnError = flag.Bool("stop", false, "Stop at the first board that fails")
)

func init() {
	flag.Var(&puts, "put", "Place a piece, e.g. Q@1,1 (repeatable; . clears)")
	flag.Var(&moves, "m", "Move a piece, e.g. \"5,7 5,5\" (repeatable)")
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	if err := applyBoardFlags(cfg); err != nil {
		return err
	}
	applyStoreFlags(cfg)

	cfg.Workers = *workers
	cfg.StopOnError = *stopOnError
	cfg.SuppressDuplicates = *suppressDuplicates
	cfg.DuplicateCapacity = *duplicateCapacity
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return cfg.Validate()
}

// applyOutputFlags configures the output format.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.Headers = !*noHeaders
	return nil
}

// applyBoardFlags configures the starting board and its edits.
func applyBoardFlags(cfg *config.Config) error {
	cfg.Board.Standard = *standard
	if *boardSize != "" {
		if err := cfg.Board.SetSize(*boardSize); err != nil {
			return err
		}
	}
	cfg.Board.Puts = append([]string(nil), puts...)
	cfg.Board.Moves = append([]string(nil), moves...)

	if *movesFile != "" {
		fileMoves, err := loadMovesFile(*movesFile)
		if err != nil {
			return err
		}
		cfg.Board.Moves = append(cfg.Board.Moves, fileMoves...)
	}
	return nil
}

// applyStoreFlags configures the snapshot store.
func applyStoreFlags(cfg *config.Config) {
	cfg.Store.Dir = *storeDir
	cfg.Store.Load = *loadName
	cfg.Store.Save = *saveName
	cfg.Store.List = *listNames
}
