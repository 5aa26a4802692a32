package publish

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kanban-cli/internal/model"
)

func sampleBoard() model.Snapshot {
	return model.Snapshot{
		Columns: []model.Column{{ID: "col-a", Title: "Todo"}, {ID: "col-b", Title: ""}},
		Tasks: []model.Task{
			{ID: "task-1", ColumnID: "col-a", Content: "# Ship it\n\nSome **markdown**."},
			{ID: "task-2", ColumnID: "col-gone", Content: "orphan"},
		},
	}
}

func TestRenderBoardMarkdown_SectionsPerColumn(t *testing.T) {
	t.Parallel()

	md := RenderBoardMarkdown(sampleBoard(), RenderOptions{Title: "Release"})
	for _, want := range []string{"# Release", "## Todo (1)", "- Ship it `task-1`", "## (untitled) (0)", "_Empty._", "## No column (1)", "- orphan `task-2`"} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected %q in:\n%s", want, md)
		}
	}
	if strings.Index(md, "## Todo") > strings.Index(md, "## (untitled)") {
		t.Fatalf("expected columns in board order:\n%s", md)
	}
}

func TestRenderBoardMarkdown_EmptyBoard(t *testing.T) {
	t.Parallel()

	md := RenderBoardMarkdown(model.Snapshot{}, RenderOptions{})
	if !strings.Contains(md, "# Board") || !strings.Contains(md, "_No columns._") {
		t.Fatalf("unexpected empty board markdown:\n%s", md)
	}
}

func TestRenderTaskMarkdown_IncludesMetaAndContent(t *testing.T) {
	t.Parallel()

	md, err := RenderTaskMarkdown(sampleBoard(), "task-1")
	if err != nil {
		t.Fatalf("RenderTaskMarkdown: %v", err)
	}
	if !strings.Contains(md, "# Ship it") || !strings.Contains(md, "- Column: Todo (col-a)") {
		t.Fatalf("expected heading and meta, got:\n%s", md)
	}
	if !strings.Contains(md, "## Content") || !strings.Contains(md, "Some **markdown**.") {
		t.Fatalf("expected content section, got:\n%s", md)
	}
	if _, err := RenderTaskMarkdown(sampleBoard(), "task-nope"); err == nil {
		t.Fatalf("expected error for unknown task")
	}
}

func TestWriteBoard_WritesIndexAndTaskPages(t *testing.T) {
	t.Parallel()

	to := t.TempDir()
	res, err := WriteBoard(sampleBoard(), to, WriteOptions{Tasks: true})
	if err != nil {
		t.Fatalf("WriteBoard: %v", err)
	}
	if len(res.Written) != 3 {
		t.Fatalf("expected index + 2 task pages, got %v", res.Written)
	}
	index, err := os.ReadFile(filepath.Join(to, "index.md"))
	if err != nil {
		t.Fatalf("read index.md: %v", err)
	}
	if !strings.Contains(string(index), "[Ship it](tasks/task-1.md)") {
		t.Fatalf("expected linked entry, got:\n%s", index)
	}
	if _, err := os.Stat(filepath.Join(to, "tasks", "task-2.md")); err != nil {
		t.Fatalf("stat task-2.md: %v", err)
	}

	if _, err := WriteBoard(sampleBoard(), to, WriteOptions{}); err == nil {
		t.Fatalf("expected refusal to overwrite without Overwrite")
	}
	if _, err := WriteBoard(sampleBoard(), to, WriteOptions{Overwrite: true}); err != nil {
		t.Fatalf("WriteBoard overwrite: %v", err)
	}
}

func TestWriteBoard_DistinctIDsGetDistinctPages(t *testing.T) {
	t.Parallel()

	snap := model.Snapshot{
		Columns: []model.Column{{ID: "col-a", Title: "Todo"}},
		Tasks: []model.Task{
			{ID: "a/b", ColumnID: "col-a", Content: "slash"},
			{ID: "a_b", ColumnID: "col-a", Content: "underscore"},
			{ID: "..", ColumnID: "col-a", Content: "dots"},
		},
	}
	to := t.TempDir()
	res, err := WriteBoard(snap, to, WriteOptions{Tasks: true, Overwrite: true})
	if err != nil {
		t.Fatalf("WriteBoard: %v", err)
	}
	if len(res.Written) != 4 {
		t.Fatalf("expected index + 3 task pages, got %v", res.Written)
	}
	entries, err := os.ReadDir(filepath.Join(to, "tasks"))
	if err != nil {
		t.Fatalf("read tasks dir: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(entries))
	}
	for id, want := range map[string]string{"a%2Fb.md": "slash", "a_b.md": "underscore", "...md": "dots"} {
		b, err := os.ReadFile(filepath.Join(to, "tasks", id))
		if err != nil {
			t.Fatalf("read %s: %v", id, err)
		}
		if !strings.Contains(string(b), want) {
			t.Fatalf("%s: expected %q, got:\n%s", id, want, b)
		}
	}
	index, _ := os.ReadFile(filepath.Join(to, "index.md"))
	if !strings.Contains(string(index), "[slash](tasks/a%252Fb.md)") {
		t.Fatalf("expected escaped link, got:\n%s", index)
	}
}
