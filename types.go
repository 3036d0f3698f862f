package ereport

import "time"

// TimestampLayout renders Report timestamps with microsecond precision.
const TimestampLayout = "2006-01-02 15:04:05,000000"

// Report field names, as used by MapFormatter and the structured outlets.
const (
	FieldDateTime     = "date_time"
	FieldLevel        = "level"
	FieldModule       = "module"
	FieldFunction     = "function"
	FieldLine         = "line"
	FieldMessage      = "message"
	FieldReporterName = "reporter_name"
)

// ReportFields lists every Report field name in declaration order.
var ReportFields = []string{
	FieldDateTime,
	FieldLevel,
	FieldModule,
	FieldFunction,
	FieldLine,
	FieldMessage,
	FieldReporterName,
}

// Report is one log event. It is a value: every outlet receives its own copy
// and nothing retains it after Emit returns.
type Report struct {
	Time         time.Time
	Level        Level
	Module       string
	Function     string
	Line         int
	Message      string
	ReporterName string
}

// Timestamp returns Time formatted with TimestampLayout.
func (r Report) Timestamp() string {
	return r.Time.Format(TimestampLayout)
}

// Value returns the field named name and whether such a field exists.
func (r Report) Value(name string) (any, bool) {
	switch name {
	case FieldDateTime:
		return r.Timestamp(), true
	case FieldLevel:
		return r.Level.Name, true
	case FieldModule:
		return r.Module, true
	case FieldFunction:
		return r.Function, true
	case FieldLine:
		return r.Line, true
	case FieldMessage:
		return r.Message, true
	case FieldReporterName:
		return r.ReporterName, true
	}
	return nil, false
}

// CallSite locates a log call. A zero field means "not supplied".
type CallSite struct {
	Module   string
	Function string
	Line     int
}

func (c CallSite) complete() bool {
	return c.Module != "" && c.Function != "" && c.Line > 0
}

// merge fills the empty fields of c from o.
func (c CallSite) merge(o CallSite) CallSite {
	if c.Module == "" {
		c.Module = o.Module
	}
	if c.Function == "" {
		c.Function = o.Function
	}
	if c.Line <= 0 {
		c.Line = o.Line
	}
	return c
}
