package ereport

import (
	"fmt"
	"strings"
)

// Level is an ordered severity. Ordering and equality use Weight only;
// Name is presentation.
type Level struct {
	Weight int
	Name   string
}

var (
	LevelAll     = Level{Weight: 0, Name: "ALL"}
	LevelTrace   = Level{Weight: 10, Name: "TRACE"}
	LevelDebug   = Level{Weight: 20, Name: "DEBUG"}
	LevelSuccess = Level{Weight: 30, Name: "SUCCESS"}
	LevelInfo    = Level{Weight: 40, Name: "INFO"}
	LevelWarn    = Level{Weight: 50, Name: "WARN"}
	LevelError   = Level{Weight: 60, Name: "ERROR"}
	LevelSevere  = Level{Weight: 70, Name: "SEVERE"}
	LevelFatal   = Level{Weight: 80, Name: "FATAL"}
)

var levels = [...]Level{
	LevelAll,
	LevelTrace,
	LevelDebug,
	LevelSuccess,
	LevelInfo,
	LevelWarn,
	LevelError,
	LevelSevere,
	LevelFatal,
}

// Levels returns every known level in ascending weight order.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels[:])
	return out
}

// ParseLevel maps a case-insensitive level name to its canonical Level.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, l := range levels {
		if l.Name == name {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// MustParseLevel is ParseLevel for static configuration; it panics on error.
func MustParseLevel(s string) Level {
	l, err := ParseLevel(s)
	if err != nil {
		panic(err)
	}
	return l
}

// CanLog reports whether a threshold l permits a message at candidate.
func (l Level) CanLog(candidate Level) bool {
	return candidate.Weight >= l.Weight
}

// Compare returns -1, 0 or +1 depending on the weights of l and o.
func (l Level) Compare(o Level) int {
	switch {
	case l.Weight < o.Weight:
		return -1
	case l.Weight > o.Weight:
		return 1
	default:
		return 0
	}
}

func (l Level) Equal(o Level) bool { return l.Weight == o.Weight }
func (l Level) Less(o Level) bool  { return l.Weight < o.Weight }

func (l Level) String() string { return l.Name }
