package ereport

import (
	"time"

	"github.com/fatih/color"
	"github.com/trickstertwo/xclock"
)

// Palette maps level weights to a 4-bit foreground color.
type Palette map[int]color.Attribute

var (
	// DayPalette is meant for light terminal backgrounds.
	DayPalette = Palette{
		LevelTrace.Weight:   color.FgHiBlack,
		LevelDebug.Weight:   color.FgBlack,
		LevelSuccess.Weight: color.FgGreen,
		LevelInfo.Weight:    color.FgCyan,
		LevelWarn.Weight:    color.FgYellow,
		LevelError.Weight:   color.FgRed,
		LevelSevere.Weight:  color.FgBlue,
		LevelFatal.Weight:   color.FgMagenta,
	}
	// NightPalette is meant for dark terminal backgrounds.
	NightPalette = Palette{
		LevelTrace.Weight:   color.FgWhite,
		LevelDebug.Weight:   color.FgHiWhite,
		LevelSuccess.Weight: color.FgHiGreen,
		LevelInfo.Weight:    color.FgHiCyan,
		LevelWarn.Weight:    color.FgHiYellow,
		LevelError.Weight:   color.FgHiRed,
		LevelSevere.Weight:  color.FgHiBlue,
		LevelFatal.Weight:   color.FgHiMagenta,
	}
)

// ColorFormatter wraps TextFormatter output in ANSI colors: the header in the
// level's color, the message in the same color and bold. Removing the escape
// sequences yields exactly the TextFormatter line.
type ColorFormatter struct {
	Text    TextFormatter
	Palette Palette
}

// NewColorFormatter returns a formatter using DayPalette.
func NewColorFormatter() *ColorFormatter {
	return &ColorFormatter{Text: *NewTextFormatter(), Palette: DayPalette}
}

func (f *ColorFormatter) Format(r Report) string {
	return colorize(&f.Text, f.Palette, r)
}

func colorize(text *TextFormatter, p Palette, r Report) string {
	fg, ok := p[r.Level.Weight]
	if !ok {
		return text.Format(r)
	}
	head := color.New(fg)
	head.EnableColor()
	msg := color.New(fg, color.Bold)
	msg.EnableColor()
	return head.Sprint(text.header(r)) + msg.Sprint(r.Message)
}

// AdaptiveColorFormatter switches between DayPalette and NightPalette by the
// time of day: day runs from Sunrise (inclusive) to Sunset (exclusive), both
// measured from local midnight.
type AdaptiveColorFormatter struct {
	Text    TextFormatter
	Sunrise time.Duration
	Sunset  time.Duration
	Clock   xclock.Clock // optional; defaults to xclock.Default()
}

// NewAdaptiveColorFormatter returns a formatter with a 07:00-19:00 day.
func NewAdaptiveColorFormatter() *AdaptiveColorFormatter {
	return &AdaptiveColorFormatter{
		Text:    *NewTextFormatter(),
		Sunrise: 7 * time.Hour,
		Sunset:  19 * time.Hour,
	}
}

func (f *AdaptiveColorFormatter) Format(r Report) string {
	return colorize(&f.Text, f.palette(), r)
}

func (f *AdaptiveColorFormatter) palette() Palette {
	var now time.Time
	if f.Clock != nil {
		now = f.Clock.Now()
	} else {
		now = xclock.Now()
	}
	tod := time.Duration(now.Hour())*time.Hour + time.Duration(now.Minute())*time.Minute
	if f.Sunrise <= tod && tod < f.Sunset {
		return DayPalette
	}
	return NightPalette
}
