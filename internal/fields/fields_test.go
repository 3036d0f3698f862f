package fields

import (
	"testing"
	"time"

	"github.com/trickstertwo/ereport"
)

func TestStructured_SortedWithoutLevelAndMessage(t *testing.T) {
	f, err := ereport.NewMapFormatter() // all fields
	if err != nil {
		t.Fatalf("new map formatter: %v", err)
	}
	r := ereport.Report{
		Time:         time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Level:        ereport.LevelWarn,
		Module:       "disk",
		Function:     "flush",
		Line:         42,
		Message:      "disk full",
		ReporterName: "JOBS",
	}

	got := Structured(f, r)
	want := []string{SeverityKey, "date_time", "function", "line", "module", "reporter_name"}
	if len(got) != len(want) {
		t.Fatalf("got %d fields, want %d: %+v", len(got), len(want), got)
	}
	for i, k := range want {
		if got[i].Key != k {
			t.Fatalf("field %d: got %q want %q", i, got[i].Key, k)
		}
	}
	if got[0].Value != "WARN" {
		t.Fatalf("severity: got %v", got[0].Value)
	}
}
