// Package report renders classification warnings and run summaries for
// the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/tsawler/ocrsift/model"
)

var (
	// warnLabelStyle for the reversed yellow WARNING label
	warnLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("220"))

	// idStyle for line and page identifiers
	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("81"))

	// dimStyle for the quoted line text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// errorStyle for fatal errors
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	// successStyle for written files
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

// describe returns what the warning suspects the element to be.
func describe(kind model.WarningKind) string {
	switch kind {
	case model.HeaderWarning:
		return "Might be a HEADER but was left in output"
	case model.SignatureWarning:
		return "Might be a SIGNATURE but was left in output"
	case model.PageNumberWarning:
		return "Page number does not follow the previous one"
	default:
		return "Unclassified warning"
	}
}

// Warnings writes one entry per warning, in the given order.
func Warnings(w io.Writer, warnings []model.Warning) {
	for _, warn := range warnings {
		fmt.Fprintf(w, "%s %s : '%s':\n\t%s\n",
			warnLabelStyle.Render("WARNING:"),
			describe(warn.Kind),
			idStyle.Render(warn.ID),
			dimStyle.Render(warn.Text),
		)
	}
}

// Error writes a fatal error.
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render("Error"), err)
}

// Written reports an output file.
func Written(w io.Writer, kind, path string) {
	fmt.Fprintf(w, "%s %s %s\n", successStyle.Render("wrote"), dimStyle.Render(kind), path)
}

// Summary writes a one-line count of pages, lines and warnings.
func Summary(w io.Writer, input string, pages, bodyLines, extracted, warnings int) {
	fmt.Fprintf(w, "%s %s %d pages, %d body lines, %d extracted, %d warnings\n",
		dimStyle.Render("processed"), input, pages, bodyLines, extracted, warnings)
}
