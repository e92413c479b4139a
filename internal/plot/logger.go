package plot

import (
	"context"
	"log/slog"
)

// nopHandler discards all log records. Enabled returns false so callers
// skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
// Plotters log nothing unless given a logger via WithLogger.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }
