package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// plainStyle prints markdown as is.
const plainStyle = "plain"

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	infoStyle = lipgloss.NewStyle().Faint(true)
)

// printMarkdown renders md for the terminal with the configured style.
func printMarkdown(md string) {
	out, err := renderMarkdown(md, config.Style)
	if err != nil {
		logger.Debug("markdown rendering failed, printing raw markdown", zap.Error(err))
		out = md
	}
	fmt.Print(out)
}

func renderMarkdown(md, style string) (string, error) {
	var opt glamour.TermRendererOption
	switch style {
	case plainStyle:
		return md, nil
	case "", "auto":
		opt = glamour.WithAutoStyle()
	default:
		opt = glamour.WithStylePath(style)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// printDone prints the one line confirmation of a change to the ledger.
func printDone(format string, args ...any) {
	fmt.Println(okStyle.Render("✓") + " " + fmt.Sprintf(format, args...))
}

// printInfo prints a one line message that changes nothing.
func printInfo(format string, args ...any) {
	fmt.Println(infoStyle.Render(fmt.Sprintf(format, args...)))
}
