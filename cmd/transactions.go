package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/gfpro/gestor"
	"github.com/gfpro/gestor/date"
	"github.com/gfpro/gestor/renderer"
	"github.com/google/subcommands"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	month string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `gfp tx [-m <YYYY-MM>]

  Lists transactions, most recent first. With -m, only the given month.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to list, in YYYY-MM format. Lists everything by default.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	transactions := Store().Transactions()
	title := "Transactions"

	if c.month != "" {
		month, err := date.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitUsageError
		}
		filtered := transactions[:0:0]
		for _, t := range transactions {
			if month.Contains(t.Date) {
				filtered = append(filtered, t)
			}
		}
		transactions = filtered
		title = fmt.Sprintf("Transactions %s", month)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[j].Date.Before(transactions[i].Date)
	})

	printMarkdown(renderer.TransactionsMarkdown(renderer.NewTransactions(title, transactions)))
	return subcommands.ExitSuccess
}

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	date     string
	kind     string
	category string
	amount   string
	note     string
	id       string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add or edit a transaction" }
func (*addCmd) Usage() string {
	return `gfp add -c <category> -a <amount> [-k expense|income] [-d <date>] [-n <note>] [-id <id>]

  Records a transaction. With -id, replaces the stored transaction with
  that id instead of creating a new one.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the transaction.")
	f.StringVar(&c.kind, "k", string(gestor.Expense), "Kind of transaction: expense or income.")
	f.StringVar(&c.category, "c", "", "Category label, e.g. Rent, Salary.")
	f.StringVar(&c.amount, "a", "", "Amount, a positive decimal.")
	f.StringVar(&c.note, "n", "", "Free-text note.")
	f.StringVar(&c.id, "id", "", "Id of an existing transaction to replace.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	kind, err := gestor.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := gestor.NewTransaction(on, kind, c.category, amount)
	if c.id != "" {
		tx.ID = c.id
	}
	tx.Note = c.note

	saved, err := Store().UpsertTransaction(tx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved transaction %s (%s %s on %s)\n", saved.ID, saved.Kind, saved.Category, saved.Date)
	return subcommands.ExitSuccess
}

// delCmd holds the flags for the 'del' subcommand.
type delCmd struct {
	id string
}

func (*delCmd) Name() string     { return "del" }
func (*delCmd) Synopsis() string { return "delete a transaction" }
func (*delCmd) Usage() string {
	return `gfp del -id <id>

  Deletes the transaction with the given id.
`
}

func (c *delCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the transaction to delete.")
}

func (c *delCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	if err := Store().DeleteTransaction(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted transaction %s\n", c.id)
	return subcommands.ExitSuccess
}
