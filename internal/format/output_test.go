package format

import (
	"bytes"
	"strings"
	"testing"

	"kanban-cli/internal/model"
)

type boardText struct{ model.Snapshot }

func (b boardText) Text() string { return "Todo (1)\n  - write tests\n" }

func TestWrite_Formats(t *testing.T) {
	t.Parallel()

	snap := model.Snapshot{
		Columns: []model.Column{{ID: "col-1", Title: "Todo"}},
		Tasks:   []model.Task{{ID: "task-1", ColumnID: "col-1", Content: "write tests"}},
	}

	tests := []struct {
		name   string
		format string
		v      any
		want   string
	}{
		{
			name:   "json",
			format: "json",
			v:      snap,
			want:   `{"columns":[{"id":"col-1","title":"Todo"}],"tasks":[{"id":"task-1","columnId":"col-1","content":"write tests"}]}` + "\n",
		},
		{
			name:   "yaml",
			format: "yaml",
			v:      snap,
			want:   "columns:\n  - id: col-1\n    title: Todo\ntasks:\n  - id: task-1\n    columnId: col-1\n    content: write tests\n",
		},
		{
			name:   "text",
			format: "text",
			v:      boardText{snap},
			want:   "Todo (1)\n  - write tests\n",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := Write(&buf, tt.v, tt.format, false); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if buf.String() != tt.want {
				t.Fatalf("output:\n got: %q\nwant: %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWrite_PrettyJSONAndUnknownFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, map[string]int{"a": 1}, "", true); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"a\": 1\n") {
		t.Fatalf("expected indented json, got %q", buf.String())
	}
	if err := Write(&buf, 1, "edn", false); err == nil {
		t.Fatalf("expected unknown format error")
	}
}
