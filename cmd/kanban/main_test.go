package main

import (
	"reflect"
	"testing"

	"kanban-cli/internal/cli"
)

func TestRewriteDirectTaskLookupArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"kanban"},
			want: []string{"kanban"},
		},
		{
			name: "direct task id first token",
			in:   []string{"kanban", "task-abc123"},
			want: []string{"kanban", "tasks", "show", "task-abc123"},
		},
		{
			name: "direct task id after value flag",
			in:   []string{"kanban", "--data-dir", "./tmp-board", "task-abc123"},
			want: []string{"kanban", "--data-dir", "./tmp-board", "tasks", "show", "task-abc123"},
		},
		{
			name: "direct task id after equals flag",
			in:   []string{"kanban", "--backend=file", "task-abc123"},
			want: []string{"kanban", "--backend=file", "tasks", "show", "task-abc123"},
		},
		{
			name: "direct task id after bool flag",
			in:   []string{"kanban", "--pretty", "task-abc123"},
			want: []string{"kanban", "--pretty", "tasks", "show", "task-abc123"},
		},
		{
			name: "direct task id after double dash",
			in:   []string{"kanban", "--", "task-abc123"},
			want: []string{"kanban", "--", "tasks", "show", "task-abc123"},
		},
		{
			name: "bare prefix is not an id",
			in:   []string{"kanban", "task-"},
			want: []string{"kanban", "task-"},
		},
		{
			name: "legacy integer id",
			in:   []string{"kanban", "2002"},
			want: []string{"kanban", "tasks", "show", "2002"},
		},
		{
			name: "legacy integer id after redis flag",
			in:   []string{"kanban", "--backend", "redis", "--redis-addr", "localhost:6379", "2002"},
			want: []string{"kanban", "--backend", "redis", "--redis-addr", "localhost:6379", "tasks", "show", "2002"},
		},
		{
			name: "flag value is not taken for an id",
			in:   []string{"kanban", "--key", "1234", "columns", "list"},
			want: []string{"kanban", "--key", "1234", "columns", "list"},
		},
		{
			name: "negative number is not an id",
			in:   []string{"kanban", "-5"},
			want: []string{"kanban", "-5"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"kanban", "tasks", "show", "task-abc123"},
			want: []string{"kanban", "tasks", "show", "task-abc123"},
		},
		{
			name: "column id not rewritten",
			in:   []string{"kanban", "col-abc123"},
			want: []string{"kanban", "col-abc123"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectTaskLookupArgs(cli.NewRootCmd(), tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteDirectTaskLookupArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
