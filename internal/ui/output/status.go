package output

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/ui/style"
)

const columnGap = 2

// RemoteStatus is one row of the status table. State is nil for remotes the
// project was never synced with.
type RemoteStatus struct {
	Remote domain.Remote
	State  *domain.RemoteState
}

// StatusView is everything the status command shows.
type StatusView struct {
	Project  string
	LocalEnv string
	Remotes  []RemoteStatus
}

// RenderStatus writes the status table.
func RenderStatus(w io.Writer, view StatusView) error {
	r := NewRenderer(w)
	label := r.NewStyle().Foreground(style.Slate)
	header := r.NewStyle().Bold(true).Foreground(style.Iris)
	name := r.NewStyle().Bold(true)
	never := r.NewStyle().Foreground(style.Yellow)

	var b strings.Builder
	b.WriteString(label.Render("Project:") + " " + view.Project + "\n")
	env := view.LocalEnv
	if env == "" {
		env = "-"
	}
	b.WriteString(label.Render("Environment:") + " " + env + "\n")

	if len(view.Remotes) == 0 {
		b.WriteString("\nNo remotes configured.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	rows := [][]string{{"REMOTE", "HOST", "ENVIRONMENT", "FILES PATH", "LAST FILES SYNC", "LAST ENV SYNC"}}
	for _, rs := range view.Remotes {
		row := []string{rs.Remote.Name, rs.Remote.Address(), "-", "-", style.Never, style.Never}
		if rs.State != nil {
			row[2] = rs.State.EnvName
			row[3] = rs.State.FilesPath
			row[4] = timestamp(rs.State.LastFilesSync)
			row[5] = timestamp(rs.State.LastEnvSync)
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	b.WriteString("\n")
	for n, row := range rows {
		for i, cell := range row {
			st := r.NewStyle()
			switch {
			case n == 0:
				st = header
			case i == 0:
				st = name
			case cell == style.Never:
				st = never
			}
			b.WriteString(st.Render(cell))
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+columnGap))
			}
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func timestamp(t *time.Time) string {
	if t == nil {
		return style.Never
	}
	return t.UTC().Format(style.TimeLayout)
}
