package console

import (
	"encoding/json"
	"fmt"
	"io"

	"intraeng/internal/config"
	"intraeng/internal/ranking"
	"intraeng/internal/student"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
)

const outputJSON = config.OutputJSON

type styles struct {
	err     lipgloss.Style
	success lipgloss.Style
	winner  lipgloss.Style
}

// newStyles binds the styles to w, so colors are dropped when w is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		err:     r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		winner:  r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	}
}

func renderStudents(w io.Writer, students []*student.Student) {
	if len(students) == 0 {
		_, _ = fmt.Fprintln(w, "(no students)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Age", "Enrollment code", "Class"})
	for _, s := range students {
		t.AppendRow(table.Row{s.ID(), s.Name(), s.Age(), s.EnrollmentCode(), s.ClassName()})
	}
	t.Render()
}

func renderRanking(w io.Writer, standings []ranking.Standing) {
	if len(standings) == 0 {
		_, _ = fmt.Fprintln(w, "(no classes)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Class", "Points"})
	for i, s := range standings {
		t.AppendRow(table.Row{i + 1, s.ClassName, s.Score})
	}
	t.Render()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
