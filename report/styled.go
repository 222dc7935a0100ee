package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mnemonicStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("123")).Width(5)
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Align(lipgloss.Right).Width(8)
	totalStyle = lipgloss.NewStyle().Bold(true)
	haltStyle = lipgloss.NewStyle().Faint(true)
)

// WriteStyled renders the same data WritePlain does, as a lipgloss table,
// for interactive terminals. Callers that can't confirm the output is a
// color-capable TTY should use WritePlain instead.
func WriteStyled(w io.Writer, s Summary) error {
	var rows []string
	rows = append(rows, headerStyle.Render("op    count   clocks"))

	for _, stat := range s.Opcodes {
		if stat.Count == 0 {
			continue
		}
		rows = append(rows, fmt.Sprintf("%s %s %s",
			mnemonicStyle.Render(stat.Mnemonic),
			numberStyle.Render(fmt.Sprintf("%d", stat.Count)),
			numberStyle.Render(fmt.Sprintf("%d", stat.Cycles)),
		))
	}

	rows = append(rows, totalStyle.Render(fmt.Sprintf(
		"total %d instructions, %d clocks, avg CPI %.2f",
		s.TotalInstructions, s.TotalCycles, s.AverageCPI(),
	)))
	rows = append(rows, haltStyle.Render("halt: "+s.HaltReason.String()))

	_, err := fmt.Fprintln(w, strings.Join(rows, "\n"))
	return err
}
