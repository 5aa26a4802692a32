package board

import "kanban-cli/internal/model"

// DragKind is the type tag a drag source/target registers with.
type DragKind string

const (
	DragKindColumn DragKind = "Column"
	DragKindTask   DragKind = "Task"
)

// DragItem identifies one registered draggable/droppable element and carries
// the payload the engine attached to it.
type DragItem struct {
	ID     model.ID
	Kind   DragKind
	Column *model.Column
	Task   *model.Task
}

// DragEvent is what the drag engine emits on start/over/end. Over is nil when
// the pointer is not over any registered target (or the gesture was abandoned).
type DragEvent struct {
	Active DragItem
	Over   *DragItem
}

func ColumnItem(c model.Column) DragItem {
	return DragItem{ID: c.ID, Kind: DragKindColumn, Column: &c}
}

func TaskItem(t model.Task) DragItem {
	return DragItem{ID: t.ID, Kind: DragKindTask, Task: &t}
}

// targetsSelf reports whether the event has no target or targets the dragged
// element itself; both cases leave the collections untouched.
func (e DragEvent) targetsSelf() bool {
	return e.Over == nil || e.Over.ID == e.Active.ID
}
