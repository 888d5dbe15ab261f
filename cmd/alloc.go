package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gfpro/gestor"
	"github.com/google/subcommands"
)

// allocCmd holds the flags for the 'alloc' subcommand.
type allocCmd struct {
	targets map[gestor.AssetClass]*float64
}

func (*allocCmd) Name() string     { return "alloc" }
func (*allocCmd) Synopsis() string { return "show or set the allocation targets" }
func (*allocCmd) Usage() string {
	return `gfp alloc [-equity <pct>] [-reit <pct>] [-international <pct>] [-fixed_income <pct>] [-crypto <pct>] [-other <pct>]

  Without flags, shows the configured allocation targets. With flags,
  updates the given classes. Targets should add up to 100%; a deviation
  is reported as a warning, never an error.
`
}

func (c *allocCmd) SetFlags(f *flag.FlagSet) {
	c.targets = make(map[gestor.AssetClass]*float64)
	for _, class := range gestor.AssetClasses() {
		c.targets[class] = f.Float64(string(class), -1, fmt.Sprintf("Target percentage for the %s class.", class))
	}
}

func (c *allocCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := Store()
	cfg := s.Config()

	changed := false
	for class, pct := range c.targets {
		if *pct < 0 {
			continue
		}
		if cfg.AllocationTargets == nil {
			cfg.AllocationTargets = make(map[gestor.AssetClass]float64)
		}
		cfg.AllocationTargets[class] = *pct
		changed = true
	}

	if changed {
		if err := s.SaveConfig(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving allocation targets: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	for _, class := range gestor.AssetClasses() {
		fmt.Printf("%-14s %6.1f%%\n", class, cfg.AllocationTargets[class])
	}
	if warning := cfg.AllocationWarning(); warning != "" {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
	return subcommands.ExitSuccess
}
