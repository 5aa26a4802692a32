package kv

import (
	"context"
	"reflect"
	"testing"

	"kanban-cli/internal/model"
)

func TestSnapshot_SaveLoadRoundTripAllBackends(t *testing.T) {
	want := model.Snapshot{
		Columns: []model.Column{{ID: "col-a", Title: "Todo"}, {ID: "col-b", Title: "Done"}},
		Tasks: []model.Task{
			{ID: "task-1", ColumnID: "col-a", Content: "write *markdown*"},
			{ID: "task-2", ColumnID: "col-b", Content: ""},
		},
	}
	for name, s := range backends(t) {
		s := s
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := SaveSnapshot(ctx, s, DefaultKey, want); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := LoadSnapshot(ctx, s, DefaultKey)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("round trip mismatch:\n got: %#v\nwant: %#v", got, want)
			}
		})
	}
}

func TestLoadSnapshot_MissingKeyYieldsEmpty(t *testing.T) {
	t.Parallel()

	got, err := LoadSnapshot(context.Background(), NewMemory(), DefaultKey)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.Empty() || got.Columns == nil || got.Tasks == nil {
		t.Fatalf("expected empty non-nil snapshot, got %#v", got)
	}
}

func TestLoadSnapshot_MalformedYieldsEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemory()
	for _, raw := range []string{`not json`, `{"columns":"nope"}`, `{"columns":[{"id":1.5}]}`} {
		if err := s.Write(ctx, DefaultKey, []byte(raw)); err != nil {
			t.Fatalf("write: %v", err)
		}
		got, err := LoadSnapshot(ctx, s, DefaultKey)
		if err != nil {
			t.Fatalf("load %q: %v", raw, err)
		}
		if !got.Empty() {
			t.Fatalf("expected empty snapshot for %q, got %#v", raw, got)
		}
	}
}

func TestLoadSnapshot_BackendErrorIsReturned(t *testing.T) {
	t.Parallel()

	s := NewMemory()
	_ = s.Close()
	if _, err := LoadSnapshot(context.Background(), s, DefaultKey); err == nil {
		t.Fatalf("expected error from closed store")
	}
}

func TestEncodeSnapshot_EmptyBoard(t *testing.T) {
	t.Parallel()

	b, err := EncodeSnapshot(model.Snapshot{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(b) != `{"columns":[],"tasks":[]}` {
		t.Fatalf("unexpected encoding: %s", b)
	}
}
