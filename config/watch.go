package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/trickstertwo/ereport"
)

// ErrorHandler receives reload failures.
type ErrorHandler func(error)

// Watcher re-applies reporter thresholds when the watched file changes.
// Outlets are left alone.
type Watcher struct {
	v   *viper.Viper
	reg *ereport.Registry

	onError  ErrorHandler
	onReload func(*Config)
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithErrorHandler replaces the default handler, which reports through MAIN.
func WithErrorHandler(h ErrorHandler) WatchOption {
	return func(w *Watcher) { w.onError = h }
}

// WithReloadHook is called after every successful reload.
func WithReloadHook(fn func(*Config)) WatchOption {
	return func(w *Watcher) { w.onReload = fn }
}

// NewWatcher returns a Watcher for v. Call Start to begin watching.
func NewWatcher(v *viper.Viper, reg *ereport.Registry, opts ...WatchOption) *Watcher {
	w := &Watcher{
		v:       v,
		reg:     reg,
		onError: reportToMain,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start registers the change callback and starts viper's fsnotify watch.
func (w *Watcher) Start() {
	w.v.OnConfigChange(w.handle)
	w.v.WatchConfig()
}

func (w *Watcher) handle(e fsnotify.Event) {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return
	}
	if err := w.Reload(); err != nil {
		if h := w.onError; h != nil {
			h(fmt.Errorf("config: reload %s: %w", e.Name, err))
		}
	}
}

// Reload decodes the current viper state and applies each document level to
// the registered reporter of that name. A reporter's env variable is read
// only when the reporter is created, so a reload applies the document level
// even where env overrode it at creation. Reporters absent from the registry
// are skipped. An invalid document changes nothing.
func (w *Watcher) Reload() error {
	cfg, err := Load(w.v)
	if err != nil {
		return err
	}

	levels := make(map[string]ereport.Level, len(cfg.Reporters))
	for _, rc := range cfg.Reporters {
		lvl, err := rc.threshold()
		if err != nil {
			return err
		}
		levels[ereport.NormalizeName(rc.Name)] = lvl
	}

	for name, lvl := range levels {
		if r, ok := w.reg.Lookup(name); ok {
			r.SetLevel(lvl)
		}
	}

	if w.onReload != nil {
		w.onReload(cfg)
	}
	return nil
}

func reportToMain(err error) {
	_ = ereport.Main().Error(err.Error(), ereport.CallSite{Module: "config", Function: "Watcher.Reload"})
}
