// Package fields turns Reports into the ordered key/value lists the
// structured outlets hand to their backends.
package fields

import (
	"sort"

	"github.com/trickstertwo/ereport"
)

// SeverityKey carries the ereport level name; backends keep their own "level".
const SeverityKey = "severity"

// KV is one structured field.
type KV struct {
	Key   string
	Value any
}

// DefaultFormatter selects every report field the backends do not encode
// natively (level and message are passed separately).
func DefaultFormatter() ereport.FieldFormatter {
	f, err := ereport.NewMapFormatter(
		ereport.FieldDateTime,
		ereport.FieldModule,
		ereport.FieldFunction,
		ereport.FieldLine,
		ereport.FieldReporterName,
	)
	if err != nil {
		panic(err)
	}
	return f
}

// Structured returns severity followed by the formatter's fields sorted by
// key, without level and message.
func Structured(f ereport.FieldFormatter, r ereport.Report) []KV {
	m := f.Fields(r)
	keys := make([]string, 0, len(m))
	for k := range m {
		if k == ereport.FieldLevel || k == ereport.FieldMessage {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]KV, 0, len(keys)+1)
	out = append(out, KV{Key: SeverityKey, Value: r.Level.Name})
	for _, k := range keys {
		out = append(out, KV{Key: k, Value: m[k]})
	}
	return out
}
