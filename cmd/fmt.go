package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/heath"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	force bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `heath fmt [-force]

  Validates the ledger folder and writes every month file and the projects
  file back in their canonical form. Files already in canonical form are left
  untouched.

  Lines that cannot be read would be lost by formatting, so the command
  refuses to run when there are any, unless -force is given.

Usage Examples:
$ heath fmt
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Format even if some lines cannot be read, dropping them")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	folder := heath.Folder{Path: FolderPath()}
	ledger, diags, err := folder.Load()
	if err != nil {
		return fail(fmt.Errorf("could not load ledger: %w", err))
	}
	if len(diags) > 0 && !c.force {
		for _, d := range diags {
			fmt.Fprintf(os.Stderr, "%s\n", d)
		}
		return fail(fmt.Errorf("%d lines cannot be read, fix them or use -force", len(diags)))
	}

	written := 0
	for _, m := range ledger.Months() {
		ok, err := folder.SaveMonth(m)
		if err != nil {
			return fail(err)
		}
		if ok {
			written++
			printDone("formatted %s", filepath.Base(folder.MonthPath(m.Year, m.Month)))
		}
	}
	if len(ledger.Projects()) > 0 {
		ok, err := folder.SaveProjects(ledger.Projects())
		if err != nil {
			return fail(err)
		}
		if ok {
			written++
			printDone("formatted %s", heath.ProjectsFile)
		}
	}
	if written == 0 {
		printInfo("all files already formatted")
	}
	return subcommands.ExitSuccess
}
