package cmd

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"
)

const testProjects = `[P]
Name: Project P
Report: P-1
AllDay: False

[Q]
Name: Project Q
Report: Q-1
AllDay: False

[Vacation]
Name: Vacation
Report:
AllDay: True
`

// useFolder writes files into a new ledger folder, selects it, freezes the
// clock at now and prints markdown as is.
func useFolder(t *testing.T, now string, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	oldFolder, oldConfig := *folderPath, config
	*folderPath = dir
	config = DefaultConfig()
	config.Style = plainStyle
	t.Cleanup(func() { *folderPath, config = oldFolder, oldConfig })

	t.Setenv(EnvTestingNow, now)
	return dir
}

// execute runs the subcommand c with args as the command line does.
func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	return c.Execute(context.Background(), fs)
}

// captureStdout returns what fn prints to the standard output.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	out := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		out <- buf.String()
	}()
	fn()
	w.Close()
	return <-out
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(content)
}
