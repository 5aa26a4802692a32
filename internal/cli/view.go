package cli

import (
	"fmt"
	"strings"

	"kanban-cli/internal/model"
)

// boardView is a snapshot with a plain-text rendering for --format text.
type boardView struct {
	model.Snapshot `yaml:",inline"`
}

func (b boardView) Text() string {
	if len(b.Columns) == 0 {
		return "(no columns)"
	}

	var sb strings.Builder
	known := make(map[model.ID]bool, len(b.Columns))
	for i, c := range b.Columns {
		known[c.ID] = true
		tasks := tasksIn(b.Tasks, c.ID)
		title := strings.TrimSpace(c.Title)
		if title == "" {
			title = "(untitled)"
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s (%d)  [%s]\n", title, len(tasks), c.ID)
		for _, t := range tasks {
			writeTaskLine(&sb, t)
		}
	}

	var orphans []model.Task
	for _, t := range b.Tasks {
		if !known[t.ColumnID] {
			orphans = append(orphans, t)
		}
	}
	if len(orphans) > 0 {
		fmt.Fprintf(&sb, "\n(no column) (%d)\n", len(orphans))
		for _, t := range orphans {
			writeTaskLine(&sb, t)
		}
	}
	return sb.String()
}

func writeTaskLine(sb *strings.Builder, t model.Task) {
	content := strings.TrimSpace(t.Content)
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		content = strings.TrimSpace(content[:i]) + " …"
	}
	fmt.Fprintf(sb, "  - %s  [%s]\n", content, t.ID)
}

type columnView struct {
	model.Column `yaml:",inline"`
	Tasks        int `json:"tasks" yaml:"tasks"`
}

func (c columnView) Text() string {
	return fmt.Sprintf("%s (%d)  [%s]", c.Title, c.Tasks, c.ID)
}

type columnsView []columnView

func (cs columnsView) Text() string {
	if len(cs) == 0 {
		return "(no columns)"
	}
	lines := make([]string, 0, len(cs))
	for _, c := range cs {
		lines = append(lines, c.Text())
	}
	return strings.Join(lines, "\n")
}

type taskView struct {
	model.Task `yaml:",inline"`
}

func (t taskView) Text() string {
	return fmt.Sprintf("[%s] in %s\n\n%s", t.ID, t.ColumnID, t.Content)
}

type tasksView []model.Task

func (ts tasksView) Text() string {
	if len(ts) == 0 {
		return "(no tasks)"
	}
	var sb strings.Builder
	for _, t := range ts {
		writeTaskLine(&sb, t)
	}
	return sb.String()
}

func tasksIn(tasks []model.Task, columnID model.ID) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if t.ColumnID == columnID {
			out = append(out, t)
		}
	}
	return out
}

func columnViews(s model.Snapshot) columnsView {
	out := make(columnsView, 0, len(s.Columns))
	for _, c := range s.Columns {
		out = append(out, columnView{Column: c, Tasks: len(tasksIn(s.Tasks, c.ID))})
	}
	return out
}
