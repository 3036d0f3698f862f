package ereport

import (
	"errors"
	"testing"
)

func TestLevelsOrdered(t *testing.T) {
	ls := Levels()
	if len(ls) != 9 {
		t.Fatalf("expected 9 levels, got %d", len(ls))
	}
	if ls[0] != LevelAll || ls[len(ls)-1] != LevelFatal {
		t.Fatalf("unexpected bounds: %v .. %v", ls[0], ls[len(ls)-1])
	}
	for i := 1; i < len(ls); i++ {
		if !ls[i-1].Less(ls[i]) {
			t.Fatalf("%v should be below %v", ls[i-1], ls[i])
		}
	}

	// Levels returns a copy.
	ls[0] = LevelFatal
	if Levels()[0] != LevelAll {
		t.Fatalf("Levels exposed internal state")
	}
}

func TestCanLog(t *testing.T) {
	for _, threshold := range Levels() {
		for _, candidate := range Levels() {
			want := candidate.Weight >= threshold.Weight
			if got := threshold.CanLog(candidate); got != want {
				t.Fatalf("%v.CanLog(%v)=%v want %v", threshold, candidate, got, want)
			}
		}
	}
	if !LevelAll.CanLog(LevelTrace) {
		t.Fatalf("ALL must admit everything")
	}
	if LevelFatal.CanLog(LevelSevere) || !LevelFatal.CanLog(LevelFatal) {
		t.Fatalf("FATAL must admit only FATAL")
	}
}

func TestCompareUsesWeightOnly(t *testing.T) {
	alias := Level{Weight: LevelWarn.Weight, Name: "WARNING"}
	if !alias.Equal(LevelWarn) || alias.Compare(LevelWarn) != 0 {
		t.Fatalf("levels with equal weight must compare equal")
	}
	if LevelDebug.Compare(LevelInfo) != -1 || LevelInfo.Compare(LevelDebug) != 1 {
		t.Fatalf("Compare order wrong")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"info", LevelInfo},
		{"INFO", LevelInfo},
		{" Warn ", LevelWarn},
		{"success", LevelSuccess},
		{"all", LevelAll},
		{"fatal", LevelFatal},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q)=%v want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "verbose", "WARNING", "10"} {
		if _, err := ParseLevel(bad); !errors.Is(err, ErrInvalidLevel) {
			t.Fatalf("ParseLevel(%q) err=%v want ErrInvalidLevel", bad, err)
		}
	}
}

func TestMustParseLevelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustParseLevel("loud")
}
