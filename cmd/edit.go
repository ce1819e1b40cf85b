package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type editCmd struct{}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a month file in an external editor" }
func (*editCmd) Usage() string {
	return `heath edit [<month> [<year>]]

  Opens the file of a month, the latest month of the ledger by default, in
  the editor set by $HEATH_EDITOR, $EDITOR or the config file.

  The ledger is read again once the editor exits, and lines that cannot be
  read are reported.
`
}

func (*editCmd) SetFlags(f *flag.FlagSet) {}

func (*editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now, err := today()
	if err != nil {
		return usage(err)
	}
	year, month, given, err := monthArgs(f.Args(), now)
	if err != nil {
		return usage(err)
	}
	folder, ledger, err := openLedger()
	if err != nil {
		return fail(err)
	}
	if cur := ledger.CurrentMonth(); !given && cur != nil {
		year, month = cur.Year, cur.Month
	}
	if ledger.Month(year, month) == nil {
		return fail(fmt.Errorf("ledger has no month file for %d-%d", year, month))
	}
	path := folder.MonthPath(year, month)

	if err := runEditor(ctx, config.Editor, path); err != nil {
		return fail(err)
	}

	_, diags, err := folder.Load()
	if err != nil {
		return fail(fmt.Errorf("ledger not valid after edit: %w", err))
	}
	for _, d := range diags {
		logger.Warn("line skipped", zap.String("file", d.File), zap.Int("line", d.Line), zap.String("reason", d.Reason))
	}
	return subcommands.ExitSuccess
}

// runEditor opens path in editor, a command line that may carry arguments.
func runEditor(ctx context.Context, editor, path string) error {
	args := strings.Fields(editor)
	if len(args) == 0 {
		return fmt.Errorf("no editor configured")
	}
	cmd := exec.CommandContext(ctx, args[0], append(args[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	logger.Debug("launching editor", zap.Strings("command", cmd.Args))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q failed: %w", editor, err)
	}
	return nil
}
