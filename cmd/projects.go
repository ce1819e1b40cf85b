package cmd

import (
	"context"
	"flag"

	"github.com/etnz/heath/renderer"
	"github.com/google/subcommands"
)

type projectsCmd struct{}

func (*projectsCmd) Name() string     { return "projects" }
func (*projectsCmd) Synopsis() string { return "list all known projects" }
func (*projectsCmd) Usage() string {
	return `heath projects

  Lists the projects declared in the projects file of the ledger folder.
`
}

func (*projectsCmd) SetFlags(f *flag.FlagSet) {}

func (*projectsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, ledger, err := openLedger()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ProjectsMarkdown(ledger.Projects()))
	return subcommands.ExitSuccess
}
