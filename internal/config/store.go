package config

import (
	"fmt"

	"github.com/lgbarn/easychess-go/internal/errors"
)

// StoreConfig holds settings for the board snapshot store.
type StoreConfig struct {
	// Dir is the BadgerDB directory
	Dir string

	// Load names a stored board to start from
	Load string

	// Save names the slot the final board is stored under
	Save string

	// List prints stored names instead of processing boards
	List bool
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{Dir: ".easychess"}
}

// Enabled reports whether any store operation was requested.
func (s *StoreConfig) Enabled() bool {
	return s.Load != "" || s.Save != "" || s.List
}

// Validate checks that the store configuration is valid.
func (s *StoreConfig) Validate() error {
	if s.Enabled() && s.Dir == "" {
		return fmt.Errorf("store directory required: %w", errors.ErrInvalidConfig)
	}
	return nil
}
