package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/multierr"

	"github.com/trickstertwo/ereport"
	"github.com/trickstertwo/ereport/outlet/slogoutlet"
	"github.com/trickstertwo/ereport/outlet/zapoutlet"
	"github.com/trickstertwo/ereport/outlet/zerologoutlet"
)

// Option tunes how Apply builds outlets.
type Option func(*options)

type options struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
}

// WithFs opens file outlets on fs.
func WithFs(fs afero.Fs) Option {
	return func(o *options) { o.fs = fs }
}

// WithStdout replaces standard output for console and structured outlets.
func WithStdout(w io.Writer) Option {
	return func(o *options) { o.stdout = w }
}

// WithStderr replaces standard error for structured outlets.
func WithStderr(w io.Writer) Option {
	return func(o *options) { o.stderr = w }
}

// Apply registers every reporter of cfg in reg and returns them in document
// order. Reporters already present in reg are returned unchanged; the
// registry's first-writer-wins rule applies. Failures do not stop the
// remaining reporters; they are combined in the returned error.
func Apply(reg *ereport.Registry, cfg *Config, opts ...Option) ([]*ereport.Reporter, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		out  []*ereport.Reporter
		errs error
	)
	for _, rc := range cfg.Reporters {
		def, err := rc.threshold()
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		r, err := reg.GetOrMake(rc.Name, rc.Env, def, func(r *ereport.Reporter) error {
			return o.install(r, rc)
		})
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out = append(out, r)
	}
	return out, errs
}

// install replaces the registry's default outlet with the configured ones.
// Files opened before a failure are closed again.
func (o options) install(r *ereport.Reporter, rc ReporterConfig) (err error) {
	outs, err := o.build(rc)
	if err != nil {
		for _, out := range outs {
			if c, ok := out.(io.Closer); ok {
				err = multierr.Append(err, c.Close())
			}
		}
		return err
	}
	for len(r.Outlets()) > 0 {
		if _, err := r.RemoveOutletAt(0); err != nil {
			return err
		}
	}
	for _, out := range outs {
		r.AddOutlet(out)
	}
	return nil
}

func (o options) build(rc ReporterConfig) ([]ereport.Outlet, error) {
	var outs []ereport.Outlet

	if rc.consoleEnabled() {
		f, err := o.consoleFormatter(rc.Console)
		if err != nil {
			return outs, err
		}
		if o.stdout != nil {
			outs = append(outs, ereport.NewWriterOutlet(o.stdout, f))
		} else {
			outs = append(outs, ereport.NewConsoleOutlet(f))
		}
	}

	for _, fc := range rc.Files {
		f, err := lineFormatter(fc.Format, fc.Fields)
		if err != nil {
			return outs, err
		}
		fopts := []ereport.FileOption{ereport.WithFormatter(f)}
		if o.fs != nil {
			fopts = append(fopts, ereport.WithFs(o.fs))
		}
		fo, err := ereport.NewFileOutlet(fc.Path, fc.Truncate, fopts...)
		if err != nil {
			return outs, err
		}
		outs = append(outs, fo)
	}

	for _, sc := range rc.Structured {
		so, err := o.structured(sc)
		if err != nil {
			return outs, err
		}
		outs = append(outs, so)
	}
	return outs, nil
}

func (o options) consoleFormatter(cc ConsoleConfig) (ereport.Formatter, error) {
	if strings.EqualFold(cc.Format, FormatJSON) {
		return ereport.NewMapFormatter(cc.Fields...)
	}
	switch cc.Color {
	case ColorAlways:
		return ereport.NewAdaptiveColorFormatter(), nil
	case ColorNever:
		return ereport.NewTextFormatter(), nil
	}
	if o.stdout != nil {
		if f, ok := o.stdout.(*os.File); ok && ereport.IsTerminal(f) {
			return ereport.NewAdaptiveColorFormatter(), nil
		}
		return ereport.NewTextFormatter(), nil
	}
	return ereport.DefaultConsoleFormatter(), nil
}

func lineFormatter(format string, fields []string) (ereport.Formatter, error) {
	if strings.EqualFold(format, FormatJSON) {
		return ereport.NewMapFormatter(fields...)
	}
	return ereport.NewTextFormatter(), nil
}

// structured outlets accept everything; the reporter threshold gates.
func (o options) structured(sc StructuredConfig) (ereport.Outlet, error) {
	var ff ereport.FieldFormatter
	if len(sc.Fields) > 0 {
		mf, err := ereport.NewMapFormatter(sc.Fields...)
		if err != nil {
			return nil, err
		}
		ff = mf
	}

	w := o.stdout
	if strings.EqualFold(sc.Target, TargetStderr) {
		w = o.stderr
		if w == nil {
			w = os.Stderr
		}
	}
	if w == nil {
		w = os.Stdout
	}

	switch strings.ToLower(sc.Backend) {
	case BackendZap:
		return zapoutlet.NewFromConfig(zapoutlet.Config{
			Writer:    w,
			MinLevel:  ereport.LevelAll,
			Console:   sc.Console,
			Formatter: ff,
		}), nil
	case BackendZerolog:
		return zerologoutlet.NewFromConfig(zerologoutlet.Config{
			Writer:    w,
			MinLevel:  ereport.LevelAll,
			Console:   sc.Console,
			Formatter: ff,
		}), nil
	case BackendSlog:
		format := slogoutlet.FormatJSON
		if sc.Console {
			format = slogoutlet.FormatText
		}
		return slogoutlet.NewFromConfig(slogoutlet.Config{
			Writer:    w,
			MinLevel:  ereport.LevelAll,
			Format:    format,
			Formatter: ff,
		}), nil
	default:
		return nil, fmt.Errorf("%w: backend %q", ErrInvalidConfig, sc.Backend)
	}
}
