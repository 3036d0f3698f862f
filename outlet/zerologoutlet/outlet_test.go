package zerologoutlet

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/ereport"
)

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func testReport(level ereport.Level) ereport.Report {
	return ereport.Report{
		Time:         time.Date(2024, 12, 31, 23, 59, 59, 123456000, time.UTC),
		Level:        level,
		Module:       "disk",
		Function:     "flush",
		Line:         42,
		Message:      "disk full",
		ReporterName: "JOBS",
	}
}

func TestZerologOutlet_JSON_EmitsReportFields(t *testing.T) {
	var buf bytes.Buffer
	o := New(zerolog.New(&buf), nil)

	if err := o.Emit(testReport(ereport.LevelError)); err != nil {
		t.Fatalf("emit: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, buf.String())
	}
	// "level" and "message" are zerolog defaults
	if m["level"] != "error" {
		t.Fatalf("level mismatch: %v", m["level"])
	}
	if m["message"] != "disk full" {
		t.Fatalf("message mismatch: %v", m["message"])
	}
	if m["severity"] != "ERROR" {
		t.Fatalf("severity mismatch: %v", m["severity"])
	}
	if m["module"] != "disk" || m["function"] != "flush" || m["line"] != float64(42) {
		t.Fatalf("location mismatch: %v", m)
	}
}

func TestZerologOutlet_SetMinLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	o := NewFromConfig(Config{Writer: &buf, MinLevel: ereport.LevelTrace})
	o.SetMinLevel(ereport.LevelWarn)

	if err := o.Emit(testReport(ereport.LevelSuccess)); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}

	if err := o.Emit(testReport(ereport.LevelFatal)); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected FATAL to pass a WARN filter")
	}
}

func TestZerologOutlet_PropagatesWriteError(t *testing.T) {
	diskFull := errors.New("disk full")
	for _, console := range []bool{false, true} {
		o := NewFromConfig(Config{Writer: failingWriter{err: diskFull}, MinLevel: ereport.LevelTrace, Console: console})
		if err := o.Emit(testReport(ereport.LevelError)); !errors.Is(err, diskFull) {
			t.Fatalf("console=%v: expected write error, got %v", console, err)
		}
	}
}

func TestZerologOutlet_WriteErrorIsPerEntry(t *testing.T) {
	w := &toggleWriter{err: errors.New("disk full")}
	o := NewWriter(w, nil)

	if err := o.Emit(testReport(ereport.LevelWarn)); err == nil {
		t.Fatal("expected write error")
	}
	w.err = nil
	if err := o.Emit(testReport(ereport.LevelWarn)); err != nil {
		t.Fatalf("error leaked into the next entry: %v", err)
	}
	if w.buf.Len() == 0 {
		t.Fatal("expected the second entry to be written")
	}
}

type toggleWriter struct {
	err error
	buf bytes.Buffer
}

func (w *toggleWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	return w.buf.Write(p)
}
