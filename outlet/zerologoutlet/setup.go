package zerologoutlet

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/ereport"
)

// Config is an explicit, code-first configuration for a zerolog-backed outlet.
type Config struct {
	Writer            io.Writer // default: os.Stdout
	MinLevel          ereport.Level
	Console           bool   // zerolog.ConsoleWriter instead of JSON
	ConsoleTimeFormat string // only used if Console; default time.RFC3339Nano
	Formatter         ereport.FieldFormatter
}

// NewFromConfig builds a zerolog logger from cfg and wraps it.
func NewFromConfig(cfg Config) *Outlet {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	sink := &errWriter{w: w}
	var zl zerolog.Logger
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: sink, TimeFormat: cfg.ConsoleTimeFormat}
		if cw.TimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(sink)
	}
	o := New(zl.Level(mapLevel(cfg.MinLevel)), cfg.Formatter)
	o.sink = sink
	return o
}
