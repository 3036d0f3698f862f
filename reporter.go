package ereport

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xclock"
	"go.uber.org/multierr"
)

// Reporter is a named channel with a severity threshold and an ordered list
// of outlets. It is safe for concurrent use.
type Reporter struct {
	name      string
	threshold atomic.Pointer[Level]
	clock     xclock.Clock // nil means xclock.Default()
	resolve   CallSiteResolver

	// Outlets: lock-free reads via atomic.Value; updates serialized by outMu.
	// The stored []Outlet is never mutated in place.
	outlets atomic.Value // holds []Outlet
	outMu   sync.Mutex

	st stats
}

func newReporter(cfg Config) *Reporter {
	r := &Reporter{
		name:    strings.ToUpper(cfg.Name),
		clock:   cfg.Clock,
		resolve: cfg.Resolver,
	}
	if r.resolve == nil {
		r.resolve = RuntimeCallSite
	}
	lvl := cfg.Threshold
	r.threshold.Store(&lvl)
	outs := make([]Outlet, len(cfg.Outlets))
	copy(outs, cfg.Outlets)
	r.outlets.Store(outs)
	return r
}

// Name returns the upper-cased reporter name.
func (r *Reporter) Name() string { return r.name }

// Level returns the current threshold.
func (r *Reporter) Level() Level { return *r.threshold.Load() }

// SetLevel replaces the threshold.
func (r *Reporter) SetLevel(l Level) { r.threshold.Store(&l) }

// Enabled reports whether a message at level would be emitted.
func (r *Reporter) Enabled(level Level) bool {
	return r.threshold.Load().CanLog(level)
}

// AddOutlet appends o to the outlet list.
func (r *Reporter) AddOutlet(o Outlet) *Reporter {
	if o == nil {
		return r
	}
	r.outMu.Lock()
	defer r.outMu.Unlock()
	cur := r.snapshot()
	next := make([]Outlet, len(cur), len(cur)+1)
	copy(next, cur)
	r.outlets.Store(append(next, o))
	return r
}

// RemoveOutletAt removes the outlet at index i. The removed outlet is not closed.
func (r *Reporter) RemoveOutletAt(i int) (*Reporter, error) {
	r.outMu.Lock()
	defer r.outMu.Unlock()
	cur := r.snapshot()
	if i < 0 || i >= len(cur) {
		return r, fmt.Errorf("%w: %d (have %d)", ErrOutletIndex, i, len(cur))
	}
	next := make([]Outlet, 0, len(cur)-1)
	next = append(next, cur[:i]...)
	next = append(next, cur[i+1:]...)
	r.outlets.Store(next)
	return r, nil
}

// Outlets returns a copy of the current outlet list.
func (r *Reporter) Outlets() []Outlet {
	cur := r.snapshot()
	out := make([]Outlet, len(cur))
	copy(out, cur)
	return out
}

func (r *Reporter) snapshot() []Outlet {
	v, _ := r.outlets.Load().([]Outlet)
	return v
}

// Close closes every outlet that implements io.Closer and returns the
// combined errors. The reporter keeps its outlets.
func (r *Reporter) Close() error {
	var err error
	for _, o := range r.snapshot() {
		if c, ok := o.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}

// Level entry points. An optional CallSite overrides the resolved module,
// function and line field by field.

func (r *Reporter) Trace(msg string, site ...CallSite) error {
	return r.log(1, LevelTrace, msg, site)
}

func (r *Reporter) Debug(msg string, site ...CallSite) error {
	return r.log(1, LevelDebug, msg, site)
}

func (r *Reporter) Success(msg string, site ...CallSite) error {
	return r.log(1, LevelSuccess, msg, site)
}

func (r *Reporter) Info(msg string, site ...CallSite) error {
	return r.log(1, LevelInfo, msg, site)
}

func (r *Reporter) Warn(msg string, site ...CallSite) error {
	return r.log(1, LevelWarn, msg, site)
}

func (r *Reporter) Error(msg string, site ...CallSite) error {
	return r.log(1, LevelError, msg, site)
}

func (r *Reporter) Severe(msg string, site ...CallSite) error {
	return r.log(1, LevelSevere, msg, site)
}

func (r *Reporter) Fatal(msg string, site ...CallSite) error {
	return r.log(1, LevelFatal, msg, site)
}

// Log emits msg at an arbitrary level.
func (r *Reporter) Log(level Level, msg string, site ...CallSite) error {
	return r.log(1, level, msg, site)
}

// log gates, builds the Report and dispatches it to every outlet in order.
// skip counts the frames between log and the user's call.
func (r *Reporter) log(skip int, level Level, msg string, sites []CallSite) error {
	if !r.threshold.Load().CanLog(level) {
		return nil
	}

	var site CallSite
	if len(sites) > 0 {
		site = sites[0]
	}
	if !site.complete() {
		site = site.merge(r.resolve(skip + 1))
	}

	rep := Report{
		Time:         r.now(),
		Level:        level,
		Module:       site.Module,
		Function:     site.Function,
		Line:         site.Line,
		Message:      msg,
		ReporterName: r.name,
	}

	r.st.emitted.Add(1)
	for i, o := range r.snapshot() {
		if err := o.Emit(rep); err != nil {
			r.st.failed.Add(1)
			return fmt.Errorf("ereport: reporter %s: outlet %d: %w", r.name, i, err)
		}
	}
	return nil
}

func (r *Reporter) now() time.Time {
	if r.clock != nil {
		return r.clock.Now()
	}
	return xclock.Now()
}
