package controller

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"kanban-cli/internal/board"
	"kanban-cli/internal/kv"
	"kanban-cli/internal/model"
)

// countingKV wraps a KV and counts writes; failWrites makes every write fail.
type countingKV struct {
	kv.KV
	writes     int
	failWrites bool
}

func (s *countingKV) Write(ctx context.Context, key string, value []byte) error {
	s.writes++
	if s.failWrites {
		return errors.New("quota exceeded")
	}
	return s.KV.Write(ctx, key, value)
}

func newTestController(t *testing.T) (*Controller, *countingKV) {
	t.Helper()
	store := &countingKV{KV: kv.NewMemory()}
	c := New(store, WithIDs(&board.SequenceIDs{}))
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return c, store
}

func persisted(t *testing.T, store kv.KV) model.Snapshot {
	t.Helper()
	snap, err := kv.LoadSnapshot(context.Background(), store, kv.DefaultKey)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	return snap
}

func TestController_LoadSeedsFromStoreAndIgnoresDragState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kv.NewMemory()
	raw := `{"columns":[{"id":1,"title":"A"}],"tasks":[{"id":2,"columnId":1,"content":"x"}],"activeTask":{"id":2}}`
	if err := store.Write(ctx, kv.DefaultKey, []byte(raw)); err != nil {
		t.Fatalf("write: %v", err)
	}

	c := New(store)
	if err := c.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	st := c.State()
	if len(st.Columns) != 1 || st.Columns[0].ID != "1" || len(st.Tasks) != 1 {
		t.Fatalf("unexpected state: %+v", st)
	}
	if st.Dragging() {
		t.Fatalf("expected no active drag after load")
	}
}

func TestController_FirstRunLoadsEmptyBoard(t *testing.T) {
	t.Parallel()

	c, store := newTestController(t)
	if st := c.State(); len(st.Columns) != 0 || len(st.Tasks) != 0 {
		t.Fatalf("expected empty board, got %+v", st)
	}
	if store.writes != 0 {
		t.Fatalf("loading must not write, got %d writes", store.writes)
	}
}

func TestController_IntentsPersistEveryChange(t *testing.T) {
	t.Parallel()

	c, store := newTestController(t)
	c.CreateColumn()
	col := c.State().Columns[0]
	c.UpdateColumn(col.ID, "Todo")
	c.CreateTask(col.ID)
	task := c.State().Tasks[0]
	c.UpdateTask(task.ID, "ship it")

	if store.writes != 4 {
		t.Fatalf("expected 4 writes, got %d", store.writes)
	}
	want := model.Snapshot{
		Columns: []model.Column{{ID: col.ID, Title: "Todo"}},
		Tasks:   []model.Task{{ID: task.ID, ColumnID: col.ID, Content: "ship it"}},
	}
	if got := persisted(t, store); !reflect.DeepEqual(got, want) {
		t.Fatalf("persisted:\n got: %+v\nwant: %+v", got, want)
	}

	c.DeleteColumn(col.ID)
	if got := persisted(t, store); !got.Empty() {
		t.Fatalf("expected cascade delete persisted, got %+v", got)
	}
}

func TestController_NoOpsAndDragStateDoNotWrite(t *testing.T) {
	t.Parallel()

	c, store := newTestController(t)
	c.CreateColumn()
	c.CreateColumn()
	before := store.writes
	cols := c.State().Columns

	c.DeleteTask("missing")
	c.UpdateColumn("missing", "x")
	c.DragStart(board.DragEvent{Active: board.ColumnItem(cols[0])})
	if !c.State().Dragging() {
		t.Fatalf("expected drag in progress")
	}
	// Abandoned gesture: no target.
	c.DragEnd(board.DragEvent{Active: board.ColumnItem(cols[0])})

	if store.writes != before {
		t.Fatalf("expected no writes, got %d", store.writes-before)
	}
	if c.State().Dragging() {
		t.Fatalf("expected drag cleared")
	}
	if got := persisted(t, store); !reflect.DeepEqual(got.Columns, cols) {
		t.Fatalf("persisted columns changed: %+v", got.Columns)
	}
}

func TestController_ColumnDragGesturePersistsOrder(t *testing.T) {
	t.Parallel()

	c, store := newTestController(t)
	for i := 0; i < 3; i++ {
		c.CreateColumn()
	}
	cols := c.State().Columns
	over := board.ColumnItem(cols[2])

	c.DragStart(board.DragEvent{Active: board.ColumnItem(cols[0])})
	c.DragOver(board.DragEvent{Active: board.ColumnItem(cols[0]), Over: &over})
	c.DragEnd(board.DragEvent{Active: board.ColumnItem(cols[0]), Over: &over})

	want := []model.ID{cols[1].ID, cols[2].ID, cols[0].ID}
	if got := c.ColumnIDs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("column order: got %v want %v", got, want)
	}
	if got := persisted(t, store); got.Columns[2].ID != cols[0].ID {
		t.Fatalf("expected reordered columns persisted, got %+v", got.Columns)
	}
}

func TestController_WriteFailuresAreSwallowed(t *testing.T) {
	t.Parallel()

	c, store := newTestController(t)
	store.failWrites = true

	st := c.CreateColumn()
	if len(st.Columns) != 1 {
		t.Fatalf("expected in-memory state to advance, got %+v", st)
	}
	c.CreateTask(st.Columns[0].ID)
	if c.WriteFailures() != 2 {
		t.Fatalf("expected 2 write failures, got %d", c.WriteFailures())
	}
	if len(c.TasksIn(st.Columns[0].ID)) != 1 {
		t.Fatalf("expected task in memory")
	}
}

func TestController_OnChangeSeesEachNewState(t *testing.T) {
	t.Parallel()

	c, _ := newTestController(t)
	var seen []int
	c.OnChange(func(s board.State) { seen = append(seen, len(s.Columns)) })

	c.CreateColumn()
	c.DeleteColumn("missing")
	c.CreateColumn()

	if !reflect.DeepEqual(seen, []int{1, 2}) {
		t.Fatalf("unexpected notifications: %v", seen)
	}
}

func TestController_ResetDeletesPersistedBoard(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, store := newTestController(t)
	c.CreateColumn()

	if err := c.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if _, ok, _ := store.Read(ctx, kv.DefaultKey); ok {
		t.Fatalf("expected key deleted")
	}
	if len(c.State().Columns) != 0 {
		t.Fatalf("expected empty board after reset")
	}
}

func TestController_ImportReplacesBoard(t *testing.T) {
	t.Parallel()

	c, store := newTestController(t)
	c.CreateColumn()
	snap := model.Snapshot{Columns: []model.Column{{ID: "x", Title: "Imported"}}}

	c.Import(snap)

	want := model.Snapshot{Columns: []model.Column{{ID: "x", Title: "Imported"}}, Tasks: []model.Task{}}
	if got := persisted(t, store); !reflect.DeepEqual(got, want) {
		t.Fatalf("persisted:\n got: %+v\nwant: %+v", got, want)
	}
}
