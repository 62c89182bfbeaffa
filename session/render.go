package session

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zero-day-ai/toolsmith/rules"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	commandStyle = lipgloss.NewStyle().Bold(true)
)

// RenderReport formats a validation report for the terminal: errors in
// red, warnings in yellow, and a green confirmation when the selection
// passed cleanly.
func RenderReport(report *rules.Report) string {
	var b strings.Builder

	for _, e := range report.Errors {
		fmt.Fprintf(&b, "%s %s\n", errorStyle.Render("Error:"), e)
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(&b, "%s %s\n", warnStyle.Render("Warning:"), w)
	}
	if report.Valid && len(report.Warnings) == 0 && len(report.Errors) == 0 {
		b.WriteString(okStyle.Render("Selection is valid.") + "\n")
	}

	return b.String()
}
