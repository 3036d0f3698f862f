package cmd

import (
	"github.com/spf13/pflag"

	"github.com/trickstertwo/ereport"
)

// levelValue lets pflag parse level names directly.
type levelValue struct{ l *ereport.Level }

func (v levelValue) String() string {
	if v.l == nil {
		return ""
	}
	return v.l.Name
}

func (v levelValue) Set(s string) error {
	l, err := ereport.ParseLevel(s)
	if err != nil {
		return err
	}
	*v.l = l
	return nil
}

func (levelValue) Type() string { return "level" }

var _ pflag.Value = levelValue{}

func addSiteFlags(fs *pflag.FlagSet, site *ereport.CallSite) {
	fs.StringVar(&site.Module, "module", "", "module reported for the message (default: resolved)")
	fs.StringVar(&site.Function, "function", "", "function reported for the message (default: resolved)")
	fs.IntVar(&site.Line, "line", 0, "line reported for the message (default: resolved)")
}
