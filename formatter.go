package ereport

import "strings"

// Formatter renders a Report. Implementations must be pure: the same Report
// always renders the same way and is never modified.
type Formatter interface {
	Format(r Report) string
}

// FieldFormatter additionally renders a Report as a structured mapping for
// sinks that encode fields themselves.
type FieldFormatter interface {
	Formatter
	Fields(r Report) map[string]any
}

// FormatterFunc adapts a plain function to Formatter.
type FormatterFunc func(Report) string

func (f FormatterFunc) Format(r Report) string { return f(r) }

const (
	levelWidth    = 7
	reporterWidth = 8
	lineWidth     = 4
	// DefaultLocationWidth bounds module and function names in text output.
	DefaultLocationWidth = 30
)

// TextFormatter renders the single-line plain format:
//
//	[timestamp] [level] [reporter] [(line) module::function] message
//
// The level is centered in 7 columns, the upper-cased reporter name in 8,
// the line is zero-padded to 4 digits and module and function are cut to
// Width runes. Unless Compact is set, module and function are also padded
// to Width so consecutive lines stay aligned.
type TextFormatter struct {
	Width   int
	Compact bool
}

// NewTextFormatter returns the default aligned formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{Width: DefaultLocationWidth}
}

func (f *TextFormatter) Format(r Report) string {
	buf := getBuf()
	defer putBuf(buf)
	f.writeHeader(buf, r)
	buf.writeString(r.Message)
	return string(buf.b)
}

// writeHeader writes everything before the message, trailing space included.
func (f *TextFormatter) writeHeader(buf *buffer, r Report) {
	width := f.Width
	if width <= 0 {
		width = DefaultLocationWidth
	}
	pad := !f.Compact

	buf.writeByte('[')
	buf.writeString(r.Timestamp())
	buf.writeString("] [")
	buf.writeCentered(r.Level.Name, levelWidth)
	buf.writeString("] [")
	buf.writeCentered(strings.ToUpper(r.ReporterName), reporterWidth)
	buf.writeString("] [(")
	buf.writeZeroPadded(r.Line, lineWidth)
	buf.writeString(") ")
	buf.writeLeft(r.Module, width, pad)
	buf.writeString("::")
	buf.writeLeft(r.Function, width, pad)
	buf.writeString("] ")
}

// header returns the rendered prefix; colored formatters wrap it.
func (f *TextFormatter) header(r Report) string {
	buf := getBuf()
	defer putBuf(buf)
	f.writeHeader(buf, r)
	return string(buf.b)
}
