// Package cli implements the palletpack command-line interface.
//
// This package provides commands for running pallet and container load
// optimizations, comparing what-if scenarios, listing equipment presets,
// and importing carton lists from CSV or Excel files. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - optimize: Compute a pallet and container load plan for one carton
//   - compare: Run what-if scenarios side by side
//   - presets: List the built-in and saved pallet and container presets
//   - import: Load a carton list from a CSV or Excel file and optimize each
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context; with --verbose the optimizer's
// candidate scoring is traced.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/piwi3910/PalletPack/internal/model"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logTracer forwards optimizer events to a logger at debug level. It
// satisfies the engine's tracing hook so that --verbose runs show the
// candidate layouts that were considered and why a fit degenerated.
type logTracer struct {
	logger *log.Logger
}

func (t logTracer) CandidateScored(layout model.LayerLayout, score float64) {
	t.logger.Debug("candidate layout",
		"kind", layout.Kind,
		"orientation", layout.Orientation.Tag,
		"per_layer", layout.CartonsPerLayer,
		"layers", layout.MaxLayers,
		"total", layout.TotalCartons,
		"score", score,
	)
}

func (t logTracer) DegenerateFit(stage, detail string) {
	t.logger.Debug("degenerate fit", "stage", stage, "detail", detail)
}
