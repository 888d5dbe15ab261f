// Package cmd implements the gfp CLI to manage the personal finance records.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/gfpro/gestor"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "reports")
	c.Register(&portfolioCmd{}, "reports")
	c.Register(&goalsCmd{}, "reports")
	c.Register(&txCmd{}, "transactions")
	c.Register(&addCmd{}, "transactions")
	c.Register(&delCmd{}, "transactions")
	c.Register(&exportCmd{}, "transactions")
	c.Register(&recCmd{}, "recurring")
	c.Register(&recAddCmd{}, "recurring")
	c.Register(&recDelCmd{}, "recurring")
	c.Register(&assetAddCmd{}, "portfolio")
	c.Register(&assetDelCmd{}, "portfolio")
	c.Register(&goalAddCmd{}, "goals")
	c.Register(&goalDelCmd{}, "goals")
	c.Register(&allocCmd{}, "settings")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", "data", "Path to the data directory containing the collection files")
var noHooks = flag.Bool("no-hooks", false, "Skip the startup daily backup and recurring materialization")

var appStore *gestor.Store

// Store returns the collection store of the selected data directory.
func Store() *gestor.Store {
	if appStore == nil {
		appStore = gestor.NewStore(*dataDir)
	}
	return appStore
}

var priceService *gestor.PriceService

// Prices returns the shared quote cache.
func Prices() *gestor.PriceService {
	if priceService == nil {
		priceService = gestor.NewPriceService(gestor.NewYahooProvider())
	}
	return priceService
}

// Startup runs the idempotent session-start routines: the daily backup
// and the monthly recurring materialization. Failures are surfaced as
// warnings; both routines retry on the next session.
func Startup() {
	if *noHooks {
		return
	}
	s := Store()
	if err := s.RunDailyBackup(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: daily backup failed, will retry next session: %v\n", err)
	}
	n, err := s.MaterializeForCurrentMonth()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: recurring materialization incomplete, will retry next session: %v\n", err)
	} else if n > 0 {
		fmt.Fprintf(os.Stderr, "Added %d recurring transaction(s) for this month.\n", n)
	}
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parseAmount parses a positive decimal amount from a flag value.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}
