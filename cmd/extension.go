package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
)

// ExtensionPrefix prefixes the binaries run as extension subcommands.
const ExtensionPrefix = "heath-"

// RunExtension attempts to find and execute an external heath-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := ExtensionPrefix + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logger.Debug("external command not found in PATH", zap.String("command", externalCmdName), zap.Error(err))
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the settings passed to extensions. The folder is
// absolute so that extensions may change directory.
func extensionEnv() []string {
	folder := FolderPath()
	if abs, err := filepath.Abs(folder); err == nil {
		folder = abs
	}
	return []string{
		EnvFolder + "=" + folder,
		EnvEditor + "=" + config.Editor,
		EnvStyle + "=" + config.Style,
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
	}
}
