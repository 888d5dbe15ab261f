package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gfpro/gestor"
	"github.com/google/subcommands"
)

// recCmd holds the flags for the 'rec' subcommand.
type recCmd struct{}

func (*recCmd) Name() string     { return "rec" }
func (*recCmd) Synopsis() string { return "list recurring transaction templates" }
func (*recCmd) Usage() string {
	return `gfp rec

  Lists the recurring transaction templates. Each template generates one
  transaction per month on its anchor day (clamped to the month length).
`
}

func (c *recCmd) SetFlags(f *flag.FlagSet) {}

func (c *recCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	templates := Store().Recurring()
	if len(templates) == 0 {
		fmt.Println("No recurring templates.")
		return subcommands.ExitSuccess
	}
	for _, t := range templates {
		fmt.Printf("%s  %-8s %-20s %10s  day %d\n", t.ID, t.Kind, t.Category, t.Amount, t.AnchorDay)
	}
	return subcommands.ExitSuccess
}

// recAddCmd holds the flags for the 'rec-add' subcommand.
type recAddCmd struct {
	kind     string
	category string
	amount   string
	day      int
	id       string
}

func (*recAddCmd) Name() string     { return "rec-add" }
func (*recAddCmd) Synopsis() string { return "add or edit a recurring template" }
func (*recAddCmd) Usage() string {
	return `gfp rec-add -c <category> -a <amount> -day <1..31> [-k expense|income] [-id <id>]

  Records a recurring transaction template. With -id, replaces the stored
  template with that id.
`
}

func (c *recAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", string(gestor.Expense), "Kind of transaction: expense or income.")
	f.StringVar(&c.category, "c", "", "Category label.")
	f.StringVar(&c.amount, "a", "", "Amount, a positive decimal.")
	f.IntVar(&c.day, "day", 1, "Anchor day of the month (1-31); clamped in shorter months.")
	f.StringVar(&c.id, "id", "", "Id of an existing template to replace.")
}

func (c *recAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	template := gestor.NewRecurringTemplate(kind, c.category, amount, c.day)
	if c.id != "" {
		template.ID = c.id
	}

	saved, err := Store().UpsertRecurring(template)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving template: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved recurring template %s (%s %s, day %d)\n", saved.ID, saved.Kind, saved.Category, saved.AnchorDay)
	return subcommands.ExitSuccess
}

// recDelCmd holds the flags for the 'rec-del' subcommand.
type recDelCmd struct {
	id string
}

func (*recDelCmd) Name() string     { return "rec-del" }
func (*recDelCmd) Synopsis() string { return "delete a recurring template" }
func (*recDelCmd) Usage() string {
	return `gfp rec-del -id <id>

  Deletes the recurring template with the given id. Transactions already
  materialized from it are kept.
`
}

func (c *recDelCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the template to delete.")
}

func (c *recDelCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	if err := Store().DeleteRecurring(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting template: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted recurring template %s\n", c.id)
	return subcommands.ExitSuccess
}
