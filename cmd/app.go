// Package cmd implements the heath command line: reports on the ledger, live
// updates of the current day and housekeeping of the ledger folder.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/etnz/heath"
	"github.com/etnz/heath/date"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range reportCommands() {
		c.Register(cmd, "reports")
	}
	c.Register(&projectsCmd{}, "reports")

	for _, cmd := range liveCommands() {
		c.Register(cmd, "live")
	}

	c.Register(&editCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")
	c.Register(&folderCmd{}, "ledger")
	c.Register(&pushCmd{}, "ledger")
	c.Register(&pullCmd{}, "ledger")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var folderPath = flag.String("f", "", "Path to the ledger folder. Defaults to $HEATH_FOLDER, the config file, then the current directory.")

// Verbose turns on debug logging.
var Verbose = flag.Bool("v", false, "Log debug messages")

var (
	logger = zap.NewNop()
	config = DefaultConfig()
)

// Setup builds the logger and loads the configuration. It must be called
// after the global flags are parsed.
func Setup() error {
	l, err := newLogger(*Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l

	path, err := ConfigPath()
	if err != nil {
		logger.Debug("no config directory", zap.Error(err))
		config = DefaultConfig()
		config.applyEnvOverrides()
		return nil
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", zap.String("path", path), zap.String("folder", cfg.Folder))
	config = cfg
	return nil
}

// Sync flushes the logger.
func Sync() { _ = logger.Sync() }

// newLogger returns a console logger writing to stderr.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// FolderPath returns the ledger folder selected by the flag, the environment
// or the configuration, in that order.
func FolderPath() string {
	switch {
	case *folderPath != "":
		return *folderPath
	case config.Folder != "":
		return config.Folder
	default:
		return "."
	}
}

// openLedger loads the ledger folder. Skipped lines are logged as warnings.
func openLedger() (heath.Folder, *heath.Ledger, error) {
	folder := heath.Folder{Path: FolderPath()}
	ledger, diags, err := folder.Load()
	for _, d := range diags {
		logger.Warn("line skipped",
			zap.String("file", filepath.Base(d.File)),
			zap.Int("line", d.Line),
			zap.String("reason", d.Reason),
			zap.String("text", d.Text))
	}
	if err != nil {
		return folder, nil, err
	}
	clock, err := testingClock()
	if err != nil {
		return folder, nil, err
	}
	if clock != nil {
		ledger.SetClock(clock)
	}
	logger.Debug("ledger loaded", zap.String("folder", folder.Path), zap.Int("months", len(ledger.Months())))
	return folder, ledger, nil
}

// testingClock returns the clock frozen by $HEATH_TESTING_NOW, or nil.
func testingClock() (date.Clock, error) {
	now := os.Getenv(EnvTestingNow)
	if now == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02 15:04", strings.TrimSpace(now))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvTestingNow, err)
	}
	return date.Fixed(t), nil
}

// saveMonth writes m back to the folder and reports it on stderr.
func saveMonth(folder heath.Folder, m *heath.Month) error {
	if m == nil {
		return errors.New("no month to save")
	}
	written, err := folder.SaveMonth(m)
	if err != nil {
		return err
	}
	name := filepath.Base(folder.MonthPath(m.Year, m.Month))
	if written {
		logger.Debug("month written", zap.String("file", name))
	} else {
		logger.Debug("month unchanged", zap.String("file", name))
	}
	return nil
}

// fail prints err to stderr and returns the matching exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// usage prints err to stderr and returns the usage error status.
func usage(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitUsageError
}
