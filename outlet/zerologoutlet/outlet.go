// Package zerologoutlet forwards Reports to an rs/zerolog logger.
package zerologoutlet

import (
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/ereport"
	"github.com/trickstertwo/ereport/internal/fields"
)

// Outlet bridges ereport to zerolog.
//
//   - Pre-checks GetLevel() so disabled levels allocate no zerolog.Event.
//   - SEVERE and FATAL map to zerolog's Error level; zerolog's Fatal would exit.
//   - Emits are serialized so the write error of each entry can be returned.
type Outlet struct {
	mu        sync.Mutex
	l         zerolog.Logger
	sink      *errWriter // nil for loggers built by the caller
	formatter ereport.FieldFormatter
}

// New wraps l. A nil formatter selects every report field. Write failures of
// a caller-built logger go to zerolog.ErrorHandler; use NewWriter or
// NewFromConfig to have Emit return them.
func New(l zerolog.Logger, f ereport.FieldFormatter) *Outlet {
	if f == nil {
		f = fields.DefaultFormatter()
	}
	return &Outlet{l: l, formatter: f}
}

// NewWriter builds a JSON logger on w whose write errors Emit returns.
func NewWriter(w io.Writer, f ereport.FieldFormatter) *Outlet {
	sink := &errWriter{w: w}
	o := New(zerolog.New(sink), f)
	o.sink = sink
	return o
}

// Emit writes one entry and returns the writer's error, if any.
func (o *Outlet) Emit(r ereport.Report) error {
	zlvl := mapLevel(r.Level)

	o.mu.Lock()
	defer o.mu.Unlock()

	if zlvl < o.l.GetLevel() {
		return nil
	}
	ev := o.l.WithLevel(zlvl)
	if ev == nil {
		return nil
	}
	for _, kv := range fields.Structured(o.formatter, r) {
		ev.Interface(kv.Key, kv.Value)
	}
	ev.Msg(r.Message)
	if o.sink != nil {
		return o.sink.take()
	}
	return nil
}

func (o *Outlet) SetFormatter(f ereport.FieldFormatter) {
	if f == nil {
		return
	}
	o.mu.Lock()
	o.formatter = f
	o.mu.Unlock()
}

// SetMinLevel changes the backend filter.
func (o *Outlet) SetMinLevel(l ereport.Level) {
	o.mu.Lock()
	o.l = o.l.Level(mapLevel(l))
	o.mu.Unlock()
}

// errWriter remembers the first write error since the last take.
// The outlet mutex serializes access.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	n, err := e.w.Write(p)
	if err != nil && e.err == nil {
		e.err = err
	}
	return n, err
}

func (e *errWriter) take() error {
	err := e.err
	e.err = nil
	return err
}

// mapLevel converts an ereport level to zerolog by weight.
func mapLevel(l ereport.Level) zerolog.Level {
	switch {
	case l.Weight <= ereport.LevelTrace.Weight:
		return zerolog.TraceLevel
	case l.Weight <= ereport.LevelDebug.Weight:
		return zerolog.DebugLevel
	case l.Weight <= ereport.LevelInfo.Weight:
		return zerolog.InfoLevel
	case l.Weight <= ereport.LevelWarn.Weight:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
