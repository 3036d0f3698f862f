package slogoutlet

import (
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/ereport"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for a slog-backed outlet.
type Config struct {
	Writer         io.Writer            // default: os.Stdout
	MinLevel       ereport.Level        // translated with ToSlog
	Format         Format               // JSON (default) or Text
	HandlerOptions *slog.HandlerOptions // optional; Level is overwritten from MinLevel
	Formatter      ereport.FieldFormatter
}

// NewFromConfig builds a slog handler from cfg and wraps it.
func NewFromConfig(cfg Config) *Outlet {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	opts := slog.HandlerOptions{}
	if cfg.HandlerOptions != nil {
		opts = *cfg.HandlerOptions
	}
	opts.Level = ToSlog(cfg.MinLevel)

	var h slog.Handler
	if cfg.Format == FormatText {
		h = slog.NewTextHandler(w, &opts)
	} else {
		h = slog.NewJSONHandler(w, &opts)
	}
	return New(h, cfg.Formatter)
}
