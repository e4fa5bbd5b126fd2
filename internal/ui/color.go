package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	wroteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	idStyle    = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func WroteLine(w io.Writer, path string) {
	fmt.Fprintln(w, wroteStyle.Render("wrote")+"  "+path)
}

func WarnLine(w io.Writer, msg string) {
	fmt.Fprintln(w, warnStyle.Render("warning:")+" "+msg)
}

func SummaryLine(w io.Writer, count int) {
	fmt.Fprintf(w, "compiled %d journeys\n", count)
}

func ListRow(w io.Writer, id, name, owner, criticality string, steps, idWidth, nameWidth, ownerWidth int) {
	paddedID := fmt.Sprintf("%-*s", idWidth, id)
	fmt.Fprintf(w, "%s  %-*s  %-*s  %-16s  %d steps\n",
		idStyle.Render(paddedID), nameWidth, name, ownerWidth, owner, criticality, steps)
}

func ShowHeader(w io.Writer, id, name string) {
	fmt.Fprintln(w, idStyle.Render(id)+"  "+name)
}

func StepLine(w io.Writer, number int, does, shows string) {
	fmt.Fprintf(w, "  %d. %s\n", number, does)
	fmt.Fprintln(w, faintStyle.Render("     -> "+shows))
}
