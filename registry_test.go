package ereport

import (
	"errors"
	"runtime"
	"sync"
	"testing"
)

func newTestRegistry(env map[string]string, opts ...RegistryOption) *Registry {
	base := []RegistryOption{
		WithDefaultOutlet(func() Outlet { return nil }),
		WithLookupEnv(func(k string) (string, bool) {
			v, ok := env[k]
			return v, ok
		}),
	}
	return NewRegistry(append(base, opts...)...)
}

func TestNormalizeName(t *testing.T) {
	tests := map[string]string{
		"":       MainName,
		"  ":     MainName,
		"jobs":   "JOBS",
		" Jobs ": "JOBS",
		"MAIN":   "MAIN",
	}
	for in, want := range tests {
		if got := NormalizeName(in); got != want {
			t.Fatalf("NormalizeName(%q)=%q want %q", in, got, want)
		}
	}
}

func TestGetOrMakeIdempotent(t *testing.T) {
	reg := newTestRegistry(nil)
	setups := 0
	setup := func(*Reporter) error { setups++; return nil }

	a, err := reg.GetOrMake("jobs", "", LevelWarn, setup)
	if err != nil {
		t.Fatal(err)
	}
	b, err := reg.GetOrMake("JOBS", "", LevelTrace, setup)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("GetOrMake returned distinct reporters for one name")
	}
	if !b.Level().Equal(LevelWarn) {
		t.Fatalf("second call changed threshold to %v", b.Level())
	}
	if setups != 1 {
		t.Fatalf("setup ran %d times", setups)
	}

	m, err := reg.GetOrMake("", "", LevelInfo)
	if err != nil {
		t.Fatal(err)
	}
	if m.Name() != MainName {
		t.Fatalf("empty name registered as %q", m.Name())
	}
	if names := reg.Names(); len(names) != 2 || names[0] != "JOBS" || names[1] != "MAIN" {
		t.Fatalf("names=%v", names)
	}
}

func TestGetOrMakeEnv(t *testing.T) {
	reg := newTestRegistry(map[string]string{
		"JOBS_LEVEL":  "debug",
		"EMPTY_LEVEL": "",
		"BAD_LEVEL":   "chatty",
	})

	r, err := reg.GetOrMake("jobs", "JOBS_LEVEL", LevelError)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Level().Equal(LevelDebug) {
		t.Fatalf("env threshold=%v want DEBUG", r.Level())
	}

	r, err = reg.GetOrMake("empty", "EMPTY_LEVEL", LevelSevere)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Level().Equal(LevelSevere) {
		t.Fatalf("empty env should fall back to default, got %v", r.Level())
	}

	r, err = reg.GetOrMake("unset", "NOPE_LEVEL", LevelTrace)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Level().Equal(LevelTrace) {
		t.Fatalf("unset env should fall back to default, got %v", r.Level())
	}

	if _, err := reg.GetOrMake("bad", "BAD_LEVEL", LevelInfo); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("err=%v want ErrInvalidLevel", err)
	}
	if _, ok := reg.Lookup("bad"); ok {
		t.Fatalf("reporter with invalid env was registered")
	}
}

func TestGetOrMakeExistingIgnoresBadEnv(t *testing.T) {
	env := map[string]string{}
	reg := newTestRegistry(env)
	first, err := reg.GetOrMake("jobs", "JOBS_LEVEL", LevelInfo)
	if err != nil {
		t.Fatal(err)
	}
	env["JOBS_LEVEL"] = "garbage"
	again, err := reg.GetOrMake("jobs", "JOBS_LEVEL", LevelInfo)
	if err != nil || again != first {
		t.Fatalf("existing reporter lookup failed: %v", err)
	}
}

func TestGetOrMakeSetupFailure(t *testing.T) {
	reg := newTestRegistry(nil)
	boom := errors.New("no disk")
	_, err := reg.GetOrMake("jobs", "", LevelInfo, func(*Reporter) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v want %v", err, boom)
	}
	if _, ok := reg.Lookup("jobs"); ok {
		t.Fatalf("failed reporter registered")
	}
	r, err := reg.GetOrMake("jobs", "", LevelInfo)
	if err != nil || r == nil {
		t.Fatalf("retry after failed setup: %v", err)
	}
}

func TestGetOrMakeSetupConfiguresGivenReporter(t *testing.T) {
	reg := newTestRegistry(nil)
	out := &recordingOutlet{}
	var seen *Reporter
	r, err := reg.GetOrMake("jobs", "", LevelError, func(r *Reporter) error {
		seen = r
		r.SetLevel(LevelDebug)
		r.AddOutlet(out)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if seen != r || !r.Level().Equal(LevelDebug) || len(r.Outlets()) != 1 {
		t.Fatalf("setup did not configure the returned reporter")
	}
	if err := r.Debug("ready"); err != nil || out.count() != 1 {
		t.Fatalf("configured outlet not used: %v", err)
	}
}

func TestGetOrMakeDefaultOutlet(t *testing.T) {
	made := 0
	reg := NewRegistry(WithDefaultOutlet(func() Outlet {
		made++
		return &recordingOutlet{}
	}))
	a, _ := reg.GetOrMake("a", "", LevelInfo)
	b, _ := reg.GetOrMake("b", "", LevelInfo)
	if made != 2 || len(a.Outlets()) != 1 || a.Outlets()[0] == b.Outlets()[0] {
		t.Fatalf("each reporter should get its own default outlet")
	}
}

func TestGetOrMakeConcurrent(t *testing.T) {
	reg := newTestRegistry(nil)
	const n = 32
	got := make([]*Reporter, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := reg.GetOrMake("shared", "", LevelInfo)
			if err != nil {
				t.Error(err)
				return
			}
			got[i] = r
		}(i)
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		if got[i] != got[0] {
			t.Fatalf("concurrent GetOrMake produced two reporters")
		}
	}
}

func TestFacadeResolvesCaller(t *testing.T) {
	m := Main()
	if m != Main() || m.Name() != MainName {
		t.Fatalf("Main not cached")
	}
	if r, ok := DefaultRegistry().Lookup(""); !ok || r != m {
		t.Fatalf("MAIN not registered in the default registry")
	}

	saved, savedLevel := m.Outlets(), m.Level()
	for len(m.Outlets()) > 0 {
		_, _ = m.RemoveOutletAt(0)
	}
	out := &recordingOutlet{}
	m.AddOutlet(out)
	m.SetLevel(LevelTrace)
	defer func() {
		_, _ = m.RemoveOutletAt(0)
		for _, o := range saved {
			m.AddOutlet(o)
		}
		m.SetLevel(savedLevel)
	}()

	line := callerLine() + 1
	if err := Warn("from facade"); err != nil {
		t.Fatal(err)
	}
	if err := Trace("override", CallSite{Module: "svc"}); err != nil {
		t.Fatal(err)
	}

	got := out.reports[0]
	if got.Module != "registry_test" || got.Function != "TestFacadeResolvesCaller" || got.Line != line {
		t.Fatalf("site=%s::%s:%d want registry_test::TestFacadeResolvesCaller:%d", got.Module, got.Function, got.Line, line)
	}
	if got.Level != LevelWarn || got.ReporterName != MainName {
		t.Fatalf("report=%+v", got)
	}
	if out.reports[1].Module != "svc" || out.reports[1].Function != "TestFacadeResolvesCaller" {
		t.Fatalf("override site=%+v", out.reports[1])
	}
}

func callerLine() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}
