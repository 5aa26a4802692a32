package publish

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"kanban-cli/internal/model"
)

type RenderOptions struct {
	// Title heads the index page ("Board" when empty).
	Title string
	// LinkTasks makes index entries link to per-task pages (tasks/<id>.md).
	LinkTasks bool
}

// RenderBoardMarkdown renders the board as one page: a section per column,
// tasks as a list in board order. Tasks whose column is gone are listed last.
func RenderBoardMarkdown(snap model.Snapshot, opt RenderOptions) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	title := strings.TrimSpace(opt.Title)
	if title == "" {
		title = "Board"
	}
	writeLn("# " + title)
	writeLn("")

	if len(snap.Columns) == 0 {
		writeLn("_No columns._")
		return buf.String()
	}

	known := make(map[model.ID]bool, len(snap.Columns))
	for _, c := range snap.Columns {
		known[c.ID] = true
		tasks := tasksIn(snap.Tasks, c.ID)
		writeLn(fmt.Sprintf("## %s (%d)", columnTitle(c), len(tasks)))
		writeLn("")
		if len(tasks) == 0 {
			writeLn("_Empty._")
			writeLn("")
			continue
		}
		for _, t := range tasks {
			writeLn("- " + taskEntry(t, opt.LinkTasks))
		}
		writeLn("")
	}

	var orphans []model.Task
	for _, t := range snap.Tasks {
		if !known[t.ColumnID] {
			orphans = append(orphans, t)
		}
	}
	if len(orphans) > 0 {
		writeLn(fmt.Sprintf("## No column (%d)", len(orphans)))
		writeLn("")
		for _, t := range orphans {
			writeLn("- " + taskEntry(t, opt.LinkTasks))
		}
		writeLn("")
	}
	return strings.TrimRight(buf.String(), "\n") + "\n"
}

// RenderTaskMarkdown renders one task page: a heading from its first line,
// a meta list, and the full content.
func RenderTaskMarkdown(snap model.Snapshot, taskID model.ID) (string, error) {
	var task *model.Task
	for i := range snap.Tasks {
		if snap.Tasks[i].ID == taskID {
			task = &snap.Tasks[i]
			break
		}
	}
	if task == nil {
		return "", fmt.Errorf("task not found: %s", taskID)
	}

	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# " + headline(task.Content))
	writeLn("")
	writeLn("## Meta")
	writeLn("")
	writeLn("- ID: " + task.ID.String())
	colLabel := task.ColumnID.String()
	for _, c := range snap.Columns {
		if c.ID == task.ColumnID {
			colLabel = columnTitle(c) + " (" + c.ID.String() + ")"
			break
		}
	}
	writeLn("- Column: " + colLabel)
	writeLn("")

	if body := strings.TrimSpace(task.Content); body != "" {
		writeLn("## Content")
		writeLn("")
		writeLn(body)
	}
	return buf.String(), nil
}

func taskEntry(t model.Task, link bool) string {
	h := headline(t.Content)
	if link {
		return fmt.Sprintf("[%s](tasks/%s)", escapeLinkText(h), url.PathEscape(pageName(t.ID)))
	}
	return fmt.Sprintf("%s `%s`", h, t.ID)
}

func headline(content string) string {
	s := strings.TrimSpace(content)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	s = strings.TrimLeft(s, "# ")
	if s == "" {
		return "(empty task)"
	}
	return s
}

func columnTitle(c model.Column) string {
	if t := strings.TrimSpace(c.Title); t != "" {
		return t
	}
	return "(untitled)"
}

func escapeLinkText(s string) string {
	return strings.NewReplacer("[", `\[`, "]", `\]`).Replace(s)
}

func tasksIn(tasks []model.Task, columnID model.ID) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.ColumnID == columnID {
			out = append(out, t)
		}
	}
	return out
}
