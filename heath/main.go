// Command heath keeps a ledger of work hours in plain text files.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/heath/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	if err := cmd.Setup(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	cmd.Complete(commander, "heath")

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if ran, code := cmd.RunExtension(name, flag.Args()[1:]); ran {
			cmd.Sync()
			os.Exit(code)
		}
	}

	status := commander.Execute(context.Background())
	cmd.Sync()
	os.Exit(int(status))
}

// registered reports whether name is a built-in subcommand.
func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		if sub.Name() == name {
			found = true
		}
	})
	return found
}
