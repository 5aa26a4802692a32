// Package board holds the canonical kanban state and the reducer that applies
// actions to it.
//
// Reduce never mutates the state it is given: every changed sequence is a
// fresh slice, so callers may keep old snapshots around (for diffing, or for
// persisting asynchronously) without defensive copies.
package board

import (
	"slices"

	"kanban-cli/internal/model"
)

type State struct {
	Columns []model.Column
	Tasks   []model.Task

	// ActiveColumn/ActiveTask name the item currently being dragged. They are
	// transient: never persisted and cleared by DragEnd.
	ActiveColumn *model.Column
	ActiveTask   *model.Task
}

// Snapshot returns the persisted slice of the state (columns and tasks only).
func (s State) Snapshot() model.Snapshot {
	return model.Snapshot{Columns: s.Columns, Tasks: s.Tasks}.Normalized()
}

// Dragging reports whether a drag gesture is in progress.
func (s State) Dragging() bool {
	return s.ActiveColumn != nil || s.ActiveTask != nil
}

func (s State) ColumnIndex(id model.ID) int {
	return slices.IndexFunc(s.Columns, func(c model.Column) bool { return c.ID == id })
}

func (s State) TaskIndex(id model.ID) int {
	return slices.IndexFunc(s.Tasks, func(t model.Task) bool { return t.ID == id })
}

func (s State) Column(id model.ID) (model.Column, bool) {
	if i := s.ColumnIndex(id); i >= 0 {
		return s.Columns[i], true
	}
	return model.Column{}, false
}

func (s State) Task(id model.ID) (model.Task, bool) {
	if i := s.TaskIndex(id); i >= 0 {
		return s.Tasks[i], true
	}
	return model.Task{}, false
}

// TasksIn returns the tasks of a column in global order.
func (s State) TasksIn(columnID model.ID) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range s.Tasks {
		if t.ColumnID == columnID {
			out = append(out, t)
		}
	}
	return out
}

func (s State) ColumnIDs() []model.ID {
	out := make([]model.ID, 0, len(s.Columns))
	for _, c := range s.Columns {
		out = append(out, c.ID)
	}
	return out
}

// SameItems reports whether a and b hold equal columns and tasks, in order.
// Active drag state is ignored.
func SameItems(a, b State) bool {
	return slices.Equal(a.Columns, b.Columns) && slices.Equal(a.Tasks, b.Tasks)
}
