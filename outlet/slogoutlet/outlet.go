// Package slogoutlet forwards Reports to a log/slog handler.
package slogoutlet

import (
	"context"
	"log/slog"
	"sync"

	"github.com/trickstertwo/ereport"
	"github.com/trickstertwo/ereport/internal/fields"
)

// Outlet hands Reports to a slog.Handler directly, so handler errors reach
// the caller instead of being dropped by slog.Logger.
type Outlet struct {
	h slog.Handler

	mu        sync.RWMutex
	formatter ereport.FieldFormatter
}

// New wraps h. A nil formatter selects every report field.
func New(h slog.Handler, f ereport.FieldFormatter) *Outlet {
	if h == nil {
		h = slog.Default().Handler()
	}
	if f == nil {
		f = fields.DefaultFormatter()
	}
	return &Outlet{h: h, formatter: f}
}

func (o *Outlet) Emit(r ereport.Report) error {
	ctx := context.Background()
	lvl := ToSlog(r.Level)
	if !o.h.Enabled(ctx, lvl) {
		return nil
	}

	o.mu.RLock()
	kvs := fields.Structured(o.formatter, r)
	o.mu.RUnlock()

	attrs := make([]slog.Attr, 0, len(kvs))
	for _, kv := range kvs {
		attrs = append(attrs, slog.Any(kv.Key, kv.Value))
	}
	rec := slog.NewRecord(r.Time, lvl, r.Message, 0)
	rec.AddAttrs(attrs...)
	return o.h.Handle(ctx, rec)
}

func (o *Outlet) SetFormatter(f ereport.FieldFormatter) {
	if f == nil {
		return
	}
	o.mu.Lock()
	o.formatter = f
	o.mu.Unlock()
}

// ToSlog maps ereport levels onto slog's numeric scale, extended with
// Trace (-8) and Fatal (12).
func ToSlog(l ereport.Level) slog.Level {
	switch {
	case l.Weight < ereport.LevelTrace.Weight:
		return slog.Level(-12)
	case l.Weight < ereport.LevelDebug.Weight:
		return slog.Level(-8)
	case l.Weight < ereport.LevelSuccess.Weight:
		return slog.LevelDebug
	case l.Weight < ereport.LevelInfo.Weight:
		return slog.Level(-2)
	case l.Weight < ereport.LevelWarn.Weight:
		return slog.LevelInfo
	case l.Weight < ereport.LevelError.Weight:
		return slog.LevelWarn
	case l.Weight < ereport.LevelSevere.Weight:
		return slog.LevelError
	case l.Weight < ereport.LevelFatal.Weight:
		return slog.Level(10)
	default:
		return slog.Level(12)
	}
}
