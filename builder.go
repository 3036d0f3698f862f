package ereport

import (
	"strings"

	"github.com/trickstertwo/xclock"
)

// Config for constructing a Reporter outside a Registry.
type Config struct {
	Name      string
	Threshold Level
	Outlets   []Outlet
	Clock     xclock.Clock     // optional; defaults to xclock.Default()
	Resolver  CallSiteResolver // optional; defaults to RuntimeCallSite
}

// Builder separates construction from representation.
type Builder struct {
	cfg Config
}

// NewBuilder starts a Reporter named name with threshold INFO and no outlets.
func NewBuilder(name string) *Builder {
	return &Builder{cfg: Config{Name: name, Threshold: LevelInfo}}
}

func (b *Builder) WithThreshold(l Level) *Builder {
	b.cfg.Threshold = l
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

func (b *Builder) WithResolver(fn CallSiteResolver) *Builder {
	b.cfg.Resolver = fn
	return b
}

func (b *Builder) AddOutlet(o Outlet) *Builder {
	b.cfg.Outlets = append(b.cfg.Outlets, o)
	return b
}

// Build constructs the Reporter. The result is not registered anywhere.
func (b *Builder) Build() (*Reporter, error) {
	if strings.TrimSpace(b.cfg.Name) == "" {
		return nil, ErrEmptyName
	}
	for _, o := range b.cfg.Outlets {
		if o == nil {
			return nil, ErrNilOutlet
		}
	}
	return newReporter(b.cfg), nil
}
