package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gfpro/gestor"
	"github.com/gfpro/gestor/date"
	"github.com/gfpro/gestor/renderer"
	"github.com/google/subcommands"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	month string
	year  int
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display income, expense and balance totals" }
func (*dashboardCmd) Usage() string {
	return `gfp dashboard [-m <YYYY-MM>] [-y <year>]

  Displays the income/expense totals and the expense breakdown by
  category, for the current month by default.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to report on, in YYYY-MM format. Defaults to the current month.")
	f.IntVar(&c.year, "y", 0, "Year to report on. Overrides -m.")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	transactions := Store().Transactions()

	var summary gestor.Summary
	switch {
	case c.year != 0:
		summary = gestor.SummarizeYear(transactions, c.year)
	case c.month != "":
		month, err := date.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitUsageError
		}
		summary = gestor.SummarizeMonth(transactions, month)
	default:
		summary = gestor.SummarizeMonth(transactions, date.ThisMonth())
	}

	printMarkdown(renderer.DashboardMarkdown(renderer.NewDashboard(summary)))
	return subcommands.ExitSuccess
}
