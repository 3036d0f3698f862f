package ereport

import (
	"io"
	"testing"
	"time"

	"github.com/trickstertwo/xclock"
)

// blackhole keeps the compiler from discarding emitted reports.
var bhReport Report

type nopOutlet struct{}

func (nopOutlet) Emit(r Report) error {
	bhReport = r
	return nil
}

func newBenchReporter(threshold Level, outs ...Outlet) *Reporter {
	b := NewBuilder("bench").
		WithThreshold(threshold).
		WithClock(xclock.NewFrozen(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	for _, o := range outs {
		b.AddOutlet(o)
	}
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}

func BenchmarkFiltered(b *testing.B) {
	r := newBenchReporter(LevelError, nopOutlet{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Debug("dropped")
	}
}

func BenchmarkEmit_ExplicitSite(b *testing.B) {
	r := newBenchReporter(LevelAll, nopOutlet{})
	site := CallSite{Module: "disk", Function: "flush", Line: 42}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Info("ok", site)
	}
}

func BenchmarkEmit_RuntimeSite(b *testing.B) {
	r := newBenchReporter(LevelAll, nopOutlet{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Info("ok")
	}
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter()
	r := sampleReport()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bhReport.Message = f.Format(r)
	}
}

func BenchmarkWriterOutlet_Discard(b *testing.B) {
	r := newBenchReporter(LevelAll, NewWriterOutlet(io.Discard, NewTextFormatter()))
	site := CallSite{Module: "disk", Function: "flush", Line: 42}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Warn("ok", site)
	}
}

func BenchmarkFiltered_Parallel(b *testing.B) {
	r := newBenchReporter(LevelError, nopOutlet{})
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = r.Trace("dropped")
		}
	})
}
