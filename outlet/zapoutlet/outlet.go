// Package zapoutlet forwards Reports to a go.uber.org/zap logger.
package zapoutlet

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/ereport"
	"github.com/trickstertwo/ereport/internal/fields"
)

// Outlet bridges ereport to zap.
//
//   - Uses Core.Check so disabled levels build no fields.
//   - Writes through the core directly so write errors reach the caller.
//   - SEVERE and FATAL map to zap's Error level; zap's Fatal would exit.
//   - The ereport level name travels as "severity".
type Outlet struct {
	l    *zap.Logger
	core zapcore.Core

	mu        sync.RWMutex
	formatter ereport.FieldFormatter
}

// New wraps l. A nil formatter selects every report field.
func New(l *zap.Logger, f ereport.FieldFormatter) *Outlet {
	if l == nil {
		l = zap.NewNop()
	}
	if f == nil {
		f = fields.DefaultFormatter()
	}
	return &Outlet{l: l, core: l.Core(), formatter: f}
}

// Emit writes one entry and returns the core's write error, if any.
func (o *Outlet) Emit(r ereport.Report) error {
	ent := zapcore.Entry{
		Level:      toZapLevel(r.Level),
		Time:       r.Time,
		LoggerName: r.ReporterName,
		Message:    r.Message,
	}
	if o.core.Check(ent, nil) == nil {
		return nil
	}
	o.mu.RLock()
	kvs := fields.Structured(o.formatter, r)
	o.mu.RUnlock()

	zfs := make([]zap.Field, 0, len(kvs))
	for _, kv := range kvs {
		zfs = append(zfs, zap.Any(kv.Key, kv.Value))
	}
	return o.core.Write(ent, zfs)
}

func (o *Outlet) SetFormatter(f ereport.FieldFormatter) {
	if f == nil {
		return
	}
	o.mu.Lock()
	o.formatter = f
	o.mu.Unlock()
}

// Sync flushes buffered zap output.
func (o *Outlet) Sync() error { return o.l.Sync() }

// Logger returns the wrapped zap logger.
func (o *Outlet) Logger() *zap.Logger { return o.l }

func toZapLevel(l ereport.Level) zapcore.Level {
	switch {
	case l.Weight <= ereport.LevelDebug.Weight:
		return zapcore.DebugLevel // zap has no trace
	case l.Weight <= ereport.LevelInfo.Weight:
		return zapcore.InfoLevel
	case l.Weight <= ereport.LevelWarn.Weight:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
