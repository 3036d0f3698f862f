package ereport

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/trickstertwo/xclock"
)

// MainName is the name used when GetOrMake is called with an empty name.
const MainName = "MAIN"

// Registry maps normalized names to Reporters. Entries live as long as the
// Registry; there is no removal.
type Registry struct {
	mu        sync.Mutex
	reporters map[string]*Reporter

	lookupEnv     func(string) (string, bool)
	clock         xclock.Clock
	resolver      CallSiteResolver
	defaultOutlet func() Outlet
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLookupEnv replaces os.LookupEnv when resolving threshold variables.
func WithLookupEnv(fn func(string) (string, bool)) RegistryOption {
	return func(r *Registry) { r.lookupEnv = fn }
}

// WithRegistryClock sets the clock given to every Reporter the registry makes.
func WithRegistryClock(c xclock.Clock) RegistryOption {
	return func(r *Registry) { r.clock = c }
}

// WithRegistryResolver sets the call-site resolver of every Reporter the registry makes.
func WithRegistryResolver(fn CallSiteResolver) RegistryOption {
	return func(r *Registry) { r.resolver = fn }
}

// WithDefaultOutlet sets the factory for the single outlet new Reporters
// start with. A factory returning nil yields Reporters with no outlets.
func WithDefaultOutlet(fn func() Outlet) RegistryOption {
	return func(r *Registry) { r.defaultOutlet = fn }
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		reporters:     make(map[string]*Reporter),
		lookupEnv:     os.LookupEnv,
		defaultOutlet: func() Outlet { return NewConsoleOutlet(nil) },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NormalizeName returns the registry key for name.
func NormalizeName(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return MainName
	}
	return name
}

// GetOrMake returns the Reporter registered under name, creating it on first
// use. Later calls ignore envVar, def and setup. On creation the threshold is
// the level named by envVar when that variable is set and non-empty, def
// otherwise; an unparsable value fails with ErrInvalidLevel. setup functions
// run once, in order, before the Reporter becomes visible; if one fails
// nothing is registered. Setup runs with the registry locked: it must only
// configure the Reporter it is given and must not call the registry
// (GetOrMake, Lookup, Names, or Main on the default registry), which would
// deadlock.
func (g *Registry) GetOrMake(name, envVar string, def Level, setup ...func(*Reporter) error) (*Reporter, error) {
	key := NormalizeName(name)

	g.mu.Lock()
	defer g.mu.Unlock()

	if r, ok := g.reporters[key]; ok {
		return r, nil
	}

	threshold := def
	if envVar != "" {
		if v, ok := g.lookupEnv(envVar); ok && v != "" {
			lvl, err := ParseLevel(v)
			if err != nil {
				return nil, fmt.Errorf("ereport: reporter %s: %s: %w", key, envVar, err)
			}
			threshold = lvl
		}
	}

	cfg := Config{
		Name:      key,
		Threshold: threshold,
		Clock:     g.clock,
		Resolver:  g.resolver,
	}
	if g.defaultOutlet != nil {
		if o := g.defaultOutlet(); o != nil {
			cfg.Outlets = []Outlet{o}
		}
	}
	r := newReporter(cfg)
	for _, fn := range setup {
		if err := fn(r); err != nil {
			return nil, fmt.Errorf("ereport: reporter %s: setup: %w", key, err)
		}
	}
	g.reporters[key] = r
	return r, nil
}

// Lookup returns the Reporter registered under name, if any.
func (g *Registry) Lookup(name string) (*Reporter, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.reporters[NormalizeName(name)]
	return r, ok
}

// Names returns the registered keys in sorted order.
func (g *Registry) Names() []string {
	g.mu.Lock()
	names := make([]string, 0, len(g.reporters))
	for k := range g.reporters {
		names = append(names, k)
	}
	g.mu.Unlock()
	sort.Strings(names)
	return names
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the process-wide Registry, creating it on first use.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// GetOrMake is DefaultRegistry().GetOrMake. The same setup restriction
// applies: setup must not call the registry or Main.
func GetOrMake(name, envVar string, def Level, setup ...func(*Reporter) error) (*Reporter, error) {
	return DefaultRegistry().GetOrMake(name, envVar, def, setup...)
}
