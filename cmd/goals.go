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

// goalsCmd holds the flags for the 'goals' subcommand.
type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "display savings goals and their progress" }
func (*goalsCmd) Usage() string {
	return `gfp goals

  Displays each goal with the progress accumulated from expense
  transactions whose category mentions the goal's name.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	progress := Store().GoalProgress()
	printMarkdown(renderer.GoalsMarkdown(renderer.NewGoals(progress)))
	return subcommands.ExitSuccess
}

// goalAddCmd holds the flags for the 'goal-add' subcommand.
type goalAddCmd struct {
	name   string
	target string
	id     string
}

func (*goalAddCmd) Name() string     { return "goal-add" }
func (*goalAddCmd) Synopsis() string { return "add or edit a savings goal" }
func (*goalAddCmd) Usage() string {
	return `gfp goal-add -name <name> -target <amount> [-id <id>]

  Records a savings goal. Track it by recording expenses whose category
  contains the goal's name, e.g. goal "Travel" and category "Travel - Japan".
`
}

func (c *goalAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the goal, e.g. Emergency Fund.")
	f.StringVar(&c.target, "target", "", "Target amount, a positive decimal.")
	f.StringVar(&c.id, "id", "", "Id of an existing goal to replace.")
}

func (c *goalAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	target, err := parseAmount(c.target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	goal := gestor.NewGoal(c.name, target)
	if c.id != "" {
		goal.ID = c.id
	}

	saved, err := Store().UpsertGoal(goal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving goal: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved goal %s (%s, target %s)\n", saved.ID, saved.Name, saved.Target)
	return subcommands.ExitSuccess
}

// goalDelCmd holds the flags for the 'goal-del' subcommand.
type goalDelCmd struct {
	id string
}

func (*goalDelCmd) Name() string     { return "goal-del" }
func (*goalDelCmd) Synopsis() string { return "delete a savings goal" }
func (*goalDelCmd) Usage() string {
	return `gfp goal-del -id <id>

  Deletes the goal with the given id.
`
}

func (c *goalDelCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the goal to delete.")
}

func (c *goalDelCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	if err := Store().DeleteGoal(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting goal: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted goal %s\n", c.id)
	return subcommands.ExitSuccess
}
