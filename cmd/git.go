package cmd

import (
	"bufio"
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/etnz/heath"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// gitRepo runs git commands in a ledger folder.
type gitRepo struct {
	dir string
}

// run executes git with args and returns its standard output.
func (g gitRepo) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", g.dir}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	logger.Debug("running git", zap.Strings("args", cmd.Args))
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// check fails when the folder is not inside a git work tree.
func (g gitRepo) check(ctx context.Context) error {
	if _, err := g.run(ctx, "rev-parse", "--is-inside-work-tree"); err != nil {
		return fmt.Errorf("ledger %q is not a git repository", g.dir)
	}
	return nil
}

// fileStatus is a ledger file with pending changes.
type fileStatus struct {
	Name   string
	Staged bool
	New    bool
}

// status returns the ledger files with pending changes.
func (g gitRepo) status(ctx context.Context, files []string) ([]fileStatus, error) {
	out, err := g.run(ctx, append([]string{"status", "--porcelain", "--untracked-files=all", "--"}, files...)...)
	if err != nil {
		return nil, err
	}
	return parseStatus(out), nil
}

// parseStatus reads the short format of git status.
func parseStatus(out string) []fileStatus {
	var changes []fileStatus
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		x, y, name := line[0], line[1], strings.TrimSpace(line[3:])
		switch {
		case x == '?' && y == '?':
			changes = append(changes, fileStatus{Name: name, New: true})
		default:
			changes = append(changes, fileStatus{Name: name, Staged: x != ' ' && y == ' '})
		}
	}
	return changes
}

type pushCmd struct {
	message string
	yes     bool
}

func (*pushCmd) Name() string     { return "push" }
func (*pushCmd) Synopsis() string { return "commit the ledger changes and push them" }
func (*pushCmd) Usage() string {
	return `heath push [-m <message>] [-y]

  Lists the ledger files with pending changes, asks for confirmation, commits
  them and pushes to the configured remote. The commit message defaults to
  today's date.
`
}

func (c *pushCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.message, "m", "", "Commit message, defaults to today's date")
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *pushCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	folder := heath.Folder{Path: FolderPath()}
	repo := gitRepo{dir: folder.Path}
	if err := repo.check(ctx); err != nil {
		return fail(err)
	}
	files, err := folder.Files()
	if err != nil {
		return fail(err)
	}
	changes, err := repo.status(ctx, files)
	if err != nil {
		return fail(err)
	}
	if len(changes) == 0 {
		printInfo("nothing to commit")
		return subcommands.ExitSuccess
	}
	printChanges(os.Stdout, changes)

	if !c.yes && !confirm(os.Stdin, os.Stdout, "Commit?") {
		return fail(fmt.Errorf("aborting"))
	}

	names := make([]string, len(changes))
	for i, ch := range changes {
		names[i] = ch.Name
	}
	if _, err := repo.run(ctx, append([]string{"add", "--"}, names...)...); err != nil {
		return fail(err)
	}
	message := c.message
	if message == "" {
		now, err := today()
		if err != nil {
			return fail(err)
		}
		message = now.String()
	}
	if _, err := repo.run(ctx, "commit", "-m", message); err != nil {
		return fail(err)
	}
	if _, err := repo.run(ctx, "push", "--force-with-lease", config.Git.Remote); err != nil {
		return fail(err)
	}
	printDone("pushed %d files to %s", len(names), config.Git.Remote)
	return subcommands.ExitSuccess
}

// printChanges lists the changes grouped as git shows them.
func printChanges(w io.Writer, changes []fileStatus) {
	groups := []struct {
		title string
		keep  func(fileStatus) bool
	}{
		{"Already staged files:", func(s fileStatus) bool { return s.Staged }},
		{"Changed files:", func(s fileStatus) bool { return !s.Staged && !s.New }},
		{"New files:", func(s fileStatus) bool { return s.New }},
	}
	for _, g := range groups {
		i := slices.IndexFunc(changes, g.keep)
		if i < 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", g.title)
		for _, s := range changes[i:] {
			if g.keep(s) {
				fmt.Fprintf(w, " - %s\n", s.Name)
			}
		}
	}
	fmt.Fprintln(w)
}

// confirm asks a yes/no question, yes being the default.
func confirm(r io.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s [Y/n]: ", question)
	answer, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y", "yes", "j", "ja":
		return true
	default:
		return false
	}
}

type pullCmd struct{}

func (*pullCmd) Name() string     { return "pull" }
func (*pullCmd) Synopsis() string { return "pull the ledger from its remote" }
func (*pullCmd) Usage() string {
	return `heath pull

  Pulls the ledger folder from the configured remote, rebasing local commits.
`
}

func (*pullCmd) SetFlags(f *flag.FlagSet) {}

func (*pullCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo := gitRepo{dir: FolderPath()}
	if err := repo.check(ctx); err != nil {
		return fail(err)
	}
	if _, err := repo.run(ctx, "pull", "--rebase", config.Git.Remote); err != nil {
		return fail(fmt.Errorf("could not pull, check git status: %w", err))
	}
	printDone("pulled from %s", config.Git.Remote)
	return subcommands.ExitSuccess
}
