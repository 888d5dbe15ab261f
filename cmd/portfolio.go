package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gfpro/gestor"
	"github.com/gfpro/gestor/renderer"
	"github.com/google/subcommands"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	offline bool
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the valued investment portfolio" }
func (*portfolioCmd) Usage() string {
	return `gfp portfolio [-offline]

  Displays cost basis, market value and gain/loss of every holding, plus
  the allocation by asset class compared with the configured targets.
  Holdings without a live quote are valued at cost.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Skip the quote lookup and value everything at cost.")
}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := Store()

	var valuation gestor.PortfolioValuation
	if c.offline {
		valuation = gestor.Valuate(s.Holdings(), nil)
	} else {
		valuation = s.ValuePortfolio(Prices())
	}

	cfg := s.Config()
	view := renderer.NewPortfolio(valuation, cfg.AllocationTargets, cfg.AllocationWarning())
	printMarkdown(renderer.PortfolioMarkdown(view))
	return subcommands.ExitSuccess
}

// assetAddCmd holds the flags for the 'asset-add' subcommand.
type assetAddCmd struct {
	ticker string
	class  string
	qty    string
	cost   string
	id     string
}

func (*assetAddCmd) Name() string     { return "asset-add" }
func (*assetAddCmd) Synopsis() string { return "add or edit a holding" }
func (*assetAddCmd) Usage() string {
	return `gfp asset-add -t <ticker> -q <quantity> -p <average cost> [-class <class>] [-id <id>]

  Records a holding. Classes: equity, reit, international, fixed_income,
  crypto, other. Only equity and reit holdings are quoted on the market.
`
}

func (c *assetAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker of the asset, e.g. PETR4.")
	f.StringVar(&c.class, "class", string(gestor.Equity), "Asset class of the holding.")
	f.StringVar(&c.qty, "q", "", "Quantity held, a non-negative decimal.")
	f.StringVar(&c.cost, "p", "", "Average purchase price per unit, a positive decimal.")
	f.StringVar(&c.id, "id", "", "Id of an existing holding to replace.")
}

func (c *assetAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	class, err := gestor.ParseAssetClass(c.class)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	qty, err := parseAmount(c.qty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	cost, err := parseAmount(c.cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	holding := gestor.NewHolding(c.ticker, class, qty, cost)
	if c.id != "" {
		holding.ID = c.id
	}

	saved, err := Store().UpsertHolding(holding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving holding: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved holding %s (%s, %s units)\n", saved.ID, saved.Ticker, saved.Quantity)
	return subcommands.ExitSuccess
}

// assetDelCmd holds the flags for the 'asset-del' subcommand.
type assetDelCmd struct {
	id string
}

func (*assetDelCmd) Name() string     { return "asset-del" }
func (*assetDelCmd) Synopsis() string { return "delete a holding" }
func (*assetDelCmd) Usage() string {
	return `gfp asset-del -id <id>

  Deletes the holding with the given id.
`
}

func (c *assetDelCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the holding to delete.")
}

func (c *assetDelCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	if err := Store().DeleteHolding(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting holding: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted holding %s\n", c.id)
	return subcommands.ExitSuccess
}
