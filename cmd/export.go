package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gfpro/gestor"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export transactions as CSV" }
func (*exportCmd) Usage() string {
	return `gfp export [-o <file>]

  Writes the transaction collection as CSV to the given file, or to
  stdout by default.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Destination file. Writes to stdout by default.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	if err := gestor.ExportCSV(out, Store().Transactions()); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Exported transactions to %s\n", c.output)
	}
	return subcommands.ExitSuccess
}
