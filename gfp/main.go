package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/gfpro/gestor/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: this returns immediately unless the shell is
	// asking for completions.
	completion().Complete("gfp")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.Startup()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"data":     predict.Dirs("*"),
			"no-hooks": predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"dashboard": {},
			"portfolio": {},
			"goals":     {},
			"tx":        {},
			"add":       {},
			"del":       {},
			"export":    {},
			"rec":       {},
			"rec-add":   {},
			"rec-del":   {},
			"asset-add": {},
			"asset-del": {},
			"goal-add":  {},
			"goal-del":  {},
			"alloc":     {},
		},
	}
}
