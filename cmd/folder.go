package cmd

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/etnz/heath"
	"github.com/google/subcommands"
)

type folderCmd struct {
	list bool
}

func (*folderCmd) Name() string     { return "folder" }
func (*folderCmd) Synopsis() string { return "show the ledger folder in use" }
func (*folderCmd) Usage() string {
	return `heath folder [-l]

  Prints the absolute path of the ledger folder in use, selected by -f,
  $HEATH_FOLDER, the config file or the current directory, in that order.
  With -l it also lists the ledger files it holds.

  It fails when the folder is not a valid ledger folder.
`
}

func (c *folderCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "l", false, "List the ledger files")
}

func (c *folderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	folder := heath.Folder{Path: FolderPath()}
	path, err := filepath.Abs(folder.Path)
	if err != nil {
		return fail(err)
	}
	fmt.Println(path)
	if !folder.Valid() {
		return fail(fmt.Errorf("ledger folder %q not valid", folder.Path))
	}
	if !c.list {
		return subcommands.ExitSuccess
	}
	files, err := folder.Files()
	if err != nil {
		return fail(err)
	}
	for _, name := range files {
		fmt.Println(name)
	}
	return subcommands.ExitSuccess
}
