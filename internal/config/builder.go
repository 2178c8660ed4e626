package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithHeaders controls the "# name" line before each board.
func (b *ConfigBuilder) WithHeaders(enabled bool) *ConfigBuilder {
	b.cfg.Output.Headers = enabled
	return b
}

// WithSize starts from an empty width x height board.
func (b *ConfigBuilder) WithSize(width, height int) *ConfigBuilder {
	b.cfg.Board.Width = width
	b.cfg.Board.Height = height
	return b
}

// WithStandard starts from the standard layout.
func (b *ConfigBuilder) WithStandard(enabled bool) *ConfigBuilder {
	b.cfg.Board.Standard = enabled
	return b
}

// WithPut appends a placement instruction.
func (b *ConfigBuilder) WithPut(instruction string) *ConfigBuilder {
	b.cfg.Board.Puts = append(b.cfg.Board.Puts, instruction)
	return b
}

// WithMove appends a move instruction.
func (b *ConfigBuilder) WithMove(instruction string) *ConfigBuilder {
	b.cfg.Board.Moves = append(b.cfg.Board.Moves, instruction)
	return b
}

// WithStoreDir sets the snapshot store directory.
func (b *ConfigBuilder) WithStoreDir(dir string) *ConfigBuilder {
	b.cfg.Store.Dir = dir
	return b
}

// WithWorkers sets the number of parallel workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithSuppressDuplicates drops boards identical to one already written.
func (b *ConfigBuilder) WithSuppressDuplicates(enabled bool) *ConfigBuilder {
	b.cfg.SuppressDuplicates = enabled
	return b
}

// WithStopOnError ends processing at the first failed board.
func (b *ConfigBuilder) WithStopOnError(enabled bool) *ConfigBuilder {
	b.cfg.StopOnError = enabled
	return b
}
