package config

import (
	"bytes"
	"os"
	"testing"

	"github.com/lgbarn/easychess-go/internal/errors"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Output == nil || cfg.Board == nil || cfg.Store == nil {
		t.Fatal("sub-configs should be initialized")
	}
	if cfg.Output.Format != Text {
		t.Errorf("Output.Format = %v, want text", cfg.Output.Format)
	}
	if !cfg.Output.Headers {
		t.Error("Output.Headers should default to true")
	}
	if cfg.Board.HasSize() || cfg.Board.Standard {
		t.Error("Board should start unset")
	}
	if cfg.Store.Dir == "" {
		t.Error("Store.Dir should have a default")
	}
	if cfg.OutputFile != os.Stdout {
		t.Error("OutputFile should default to os.Stdout")
	}
	if cfg.LogFile != os.Stderr {
		t.Error("LogFile should default to os.Stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	var out, log bytes.Buffer

	cfg.SetOutput(&out)
	cfg.SetLog(&log)

	if cfg.OutputFile != &out {
		t.Error("OutputFile not set")
	}
	if cfg.LogFile != &log {
		t.Error("LogFile not set")
	}
}

func TestConfig_Logf(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		level     int
		want      string
	}{
		{"below level", 0, 1, ""},
		{"at level", 1, 1, "read 3 boards\n"},
		{"above level", 2, 1, "read 3 boards\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := NewConfigBuilder().WithLog(&buf).WithVerbosity(tt.verbosity).Build()
			cfg.Logf(tt.level, "read %d boards", 3)
			if buf.String() != tt.want {
				t.Errorf("Logf wrote %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"text", Text, false},
		{"fen", FEN, false},
		{"JSON", JSON, false},
		{"pgn", Text, true},
		{"", Text, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				var ce *errors.ConfigError
				if !errors.As(err, &ce) || ce.Field != "format" {
					t.Errorf("expected ConfigError on format, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.String() != formatNames[got] {
				t.Errorf("String() = %q", got.String())
			}
		})
	}
}

func TestOutputFormat_StringUnknown(t *testing.T) {
	if got := OutputFormat(9).String(); got != "OutputFormat(9)" {
		t.Errorf("String() = %q", got)
	}
}

func TestBoardConfig_SetSize(t *testing.T) {
	tests := []struct {
		in      string
		width   int
		height  int
		wantErr bool
	}{
		{"8x8", 8, 8, false},
		{"3X5", 3, 5, false},
		{" 10x2 ", 10, 2, false},
		{"8", 0, 0, true},
		{"ax8", 0, 0, true},
		{"8xb", 0, 0, true},
		{"0x8", 0, 8, true},
		{"8x-1", 8, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			b := NewBoardConfig()
			err := b.SetSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrInvalidConfig) {
					t.Errorf("error should wrap ErrInvalidConfig: %v", err)
				}
				return
			}
			if b.Width != tt.width || b.Height != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", b.Width, b.Height, tt.width, tt.height)
			}
		})
	}
}

func TestBoardConfig_StandardExclusive(t *testing.T) {
	cfg := NewConfigBuilder().WithSize(4, 4).WithStandard(true).Build()
	if err := cfg.Validate(); !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
	}
}

func TestStoreConfig_Validate(t *testing.T) {
	s := NewStoreConfig()
	if s.Enabled() {
		t.Error("store should be disabled by default")
	}

	s.Save = "opening"
	if !s.Enabled() {
		t.Error("Save should enable the store")
	}
	s.Dir = ""
	if err := s.Validate(); !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
	}
}

func TestConfig_ValidateWorkers(t *testing.T) {
	cfg := NewConfigBuilder().WithWorkers(-1).Build()
	if err := cfg.Validate(); !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
	}
}

func TestConfig_ValidateDuplicateCapacity(t *testing.T) {
	cfg := NewConfigBuilder().WithSuppressDuplicates(true).Build()
	cfg.DuplicateCapacity = -5
	if err := cfg.Validate(); !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
	}
}

func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer

	cfg := NewConfigBuilder().
		WithOutputFormat(JSON).
		WithHeaders(false).
		WithSize(5, 6).
		WithPut("Q@1,1").
		WithPut("k@5,6").
		WithMove("1,1 2,2").
		WithStoreDir("/tmp/boards").
		WithWorkers(4).
		WithOutput(&out).
		WithLog(&log).
		WithVerbosity(2).
		WithSuppressDuplicates(true).
		WithStopOnError(true).
		Build()

	if cfg.Output.Format != JSON {
		t.Errorf("Format = %v, want json", cfg.Output.Format)
	}
	if cfg.Output.Headers {
		t.Error("Headers should be disabled")
	}
	if cfg.Board.Width != 5 || cfg.Board.Height != 6 {
		t.Errorf("size = %dx%d, want 5x6", cfg.Board.Width, cfg.Board.Height)
	}
	if len(cfg.Board.Puts) != 2 || cfg.Board.Puts[1] != "k@5,6" {
		t.Errorf("Puts = %v", cfg.Board.Puts)
	}
	if len(cfg.Board.Moves) != 1 {
		t.Errorf("Moves = %v", cfg.Board.Moves)
	}
	if cfg.Store.Dir != "/tmp/boards" {
		t.Errorf("Store.Dir = %q", cfg.Store.Dir)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.OutputFile != &out || cfg.LogFile != &log {
		t.Error("writers not set")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if !cfg.SuppressDuplicates {
		t.Error("SuppressDuplicates should be set")
	}
	if !cfg.StopOnError {
		t.Error("StopOnError should be set")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
