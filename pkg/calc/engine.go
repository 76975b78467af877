// Package calc provides the main API for the interactive calculator.
package calc

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/sivchari/calc/internal/config"
	"github.com/sivchari/calc/internal/session"
)

// Engine is the calculator engine.
type Engine struct {
	config *config.Config
}

// NewEngine creates a new calculator engine. A nil config selects the defaults.
func NewEngine(cfg *config.Config) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Engine{
		config: cfg,
	}, nil
}

// Run starts an interactive session reading from in and writing to out.
// It returns when the user quits or the input ends.
func (e *Engine) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	start := time.Now()

	if e.config.Verbose {
		log.Printf("Starting calculator session (allowDecimal=%t, legacyDivision=%t)",
			e.config.Input.AllowDecimal, e.config.Compat.LegacyDivision)
	}

	if err := session.New(e.config, in, out).Run(ctx); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	if e.config.Verbose {
		log.Printf("Calculator session completed in %v", time.Since(start))
	}

	return nil
}
