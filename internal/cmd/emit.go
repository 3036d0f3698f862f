package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/trickstertwo/ereport"
	"github.com/trickstertwo/ereport/config"
)

type emitOptions struct {
	configPath string
	reporter   string
	level      ereport.Level
	site       ereport.CallSite
}

// NewEmitCommand returns the emit subcommand.
func NewEmitCommand() *cobra.Command {
	opts := emitOptions{level: ereport.LevelInfo}
	c := &cobra.Command{
		Use:   "emit [flags] MESSAGE...",
		Short: "Emit one message through a reporter",
		Long: `Emit one message through a reporter.

Reporters declared in --config are built first; a reporter not declared
there writes plain text to standard output with the threshold from
LOGGING_LEVEL (default INFO).

Examples:
  ereport emit --reporter jobs --level error disk full
  ereport emit -c logging.yaml -r jobs --module disk --function flush --line 42 disk full`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runEmit(c.OutOrStdout(), opts, strings.Join(args, " "))
		},
	}
	fs := c.Flags()
	fs.StringVarP(&opts.configPath, "config", "c", "", "reporter config file (yaml, toml or json)")
	fs.StringVarP(&opts.reporter, "reporter", "r", ereport.MainName, "reporter name")
	fs.VarP(levelValue{&opts.level}, "level", "l", "message level")
	addSiteFlags(fs, &opts.site)
	return c
}

func runEmit(out io.Writer, opts emitOptions, msg string) (err error) {
	reg := ereport.NewRegistry(ereport.WithDefaultOutlet(func() ereport.Outlet {
		return ereport.NewWriterOutlet(out, ereport.NewTextFormatter())
	}))

	if opts.configPath != "" {
		cfg, _, readErr := config.ReadFile(opts.configPath)
		if readErr != nil {
			return readErr
		}
		reps, applyErr := config.Apply(reg, cfg, config.WithStdout(out))
		defer func() {
			for _, r := range reps {
				err = multierr.Append(err, r.Close())
			}
		}()
		if applyErr != nil {
			return applyErr
		}
	}

	r, err := reg.GetOrMake(opts.reporter, ereport.DefaultLevelEnv, ereport.LevelInfo)
	if err != nil {
		return err
	}
	if err := r.Log(opts.level, msg, opts.site); err != nil {
		return fmt.Errorf("emit: %w", err)
	}
	return nil
}
