package ereport

import (
	"encoding/json"
	"fmt"
)

// MapFormatter renders a Report as a mapping keyed by report field names
// (see ReportFields), restricted to the fields chosen at construction.
// Format encodes that mapping as one JSON object.
type MapFormatter struct {
	keys []string
}

// NewMapFormatter keeps the named fields, or all of them when none are given.
func NewMapFormatter(fields ...string) (*MapFormatter, error) {
	if len(fields) == 0 {
		fields = ReportFields
	}
	keys := make([]string, 0, len(fields))
	for _, k := range fields {
		if _, ok := (Report{}).Value(k); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, k)
		}
		keys = append(keys, k)
	}
	return &MapFormatter{keys: keys}, nil
}

// Keys returns the selected field names.
func (f *MapFormatter) Keys() []string {
	return append([]string(nil), f.keys...)
}

func (f *MapFormatter) Fields(r Report) map[string]any {
	m := make(map[string]any, len(f.keys))
	for _, k := range f.keys {
		m[k], _ = r.Value(k)
	}
	return m
}

func (f *MapFormatter) Format(r Report) string {
	b, err := json.Marshal(f.Fields(r))
	if err != nil {
		// Report values are strings and ints; Marshal cannot fail on them.
		return "{}"
	}
	return string(b)
}
