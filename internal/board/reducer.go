package board

import (
	"fmt"
	"slices"

	"kanban-cli/internal/model"
)

// Reducer applies actions to a State. IDs mints identifiers for created
// columns/tasks; when nil, RandomIDs is used.
type Reducer struct {
	IDs IDGenerator
}

func NewReducer(ids IDGenerator) Reducer {
	return Reducer{IDs: ids}
}

func (r Reducer) ids() IDGenerator {
	if r.IDs == nil {
		return RandomIDs{}
	}
	return r.IDs
}

// Reduce returns the state after applying a. It never fails: unknown actions
// and actions naming missing ids return the state unchanged.
func (r Reducer) Reduce(s State, a Action) State {
	switch a := a.(type) {
	case LoadFromStorage:
		s.Columns = slices.Clone(a.Columns)
		s.Tasks = slices.Clone(a.Tasks)
		return s

	case CreateColumn:
		id := r.ids().NewID(columnIDPrefix, func(id model.ID) bool { return s.ColumnIndex(id) >= 0 })
		s.Columns = append(slices.Clip(s.Columns), model.Column{
			ID:    id,
			Title: fmt.Sprintf("Column %d", len(s.Columns)+1),
		})
		return s

	case DeleteColumn:
		s.Columns = slices.DeleteFunc(slices.Clone(s.Columns), func(c model.Column) bool { return c.ID == a.ID })
		s.Tasks = slices.DeleteFunc(slices.Clone(s.Tasks), func(t model.Task) bool { return t.ColumnID == a.ID })
		return s

	case UpdateColumn:
		i := s.ColumnIndex(a.ID)
		if i < 0 {
			return s
		}
		s.Columns = slices.Clone(s.Columns)
		s.Columns[i].Title = a.Title
		return s

	case CreateTask:
		id := r.ids().NewID(taskIDPrefix, func(id model.ID) bool { return s.TaskIndex(id) >= 0 })
		s.Tasks = append(slices.Clip(s.Tasks), model.Task{
			ID:       id,
			ColumnID: a.ColumnID,
			Content:  fmt.Sprintf("Task %d", len(s.Tasks)+1),
		})
		return s

	case DeleteTask:
		s.Tasks = slices.DeleteFunc(slices.Clone(s.Tasks), func(t model.Task) bool { return t.ID == a.ID })
		return s

	case UpdateTask:
		i := s.TaskIndex(a.ID)
		if i < 0 {
			return s
		}
		s.Tasks = slices.Clone(s.Tasks)
		s.Tasks[i].Content = a.Content
		return s

	case DragStart:
		return dragStart(s, a.Event)

	case DragOver:
		return dragOver(s, a.Event)

	case DragEnd:
		return dragEnd(s, a.Event)

	default:
		return s
	}
}

// dragStart records the dragged item for the overlay. Starting a drag of one
// kind clears any stale active item of the other kind.
func dragStart(s State, ev DragEvent) State {
	switch ev.Active.Kind {
	case DragKindColumn:
		c, ok := activeColumn(s, ev.Active)
		if !ok {
			return s
		}
		s.ActiveColumn = &c
		s.ActiveTask = nil
	case DragKindTask:
		t, ok := activeTask(s, ev.Active)
		if !ok {
			return s
		}
		s.ActiveTask = &t
		s.ActiveColumn = nil
	}
	return s
}

// dragEnd finalizes a gesture: it clears the active items and, when a column
// was dropped onto another column, moves it there. Task moves were already
// applied by dragOver.
func dragEnd(s State, ev DragEvent) State {
	s.ActiveColumn = nil
	s.ActiveTask = nil
	if ev.targetsSelf() {
		return s
	}
	if ev.Active.Kind != DragKindColumn || ev.Over.Kind != DragKindColumn {
		return s
	}
	from := s.ColumnIndex(ev.Active.ID)
	to := s.ColumnIndex(ev.Over.ID)
	if from < 0 || to < 0 {
		return s
	}
	s.Columns = arrayMove(s.Columns, from, to)
	return s
}

// dragOver applies live reparenting while a task is dragged: over another
// task it joins that task's column and takes its position; over a column it
// joins the column and keeps its position.
func dragOver(s State, ev DragEvent) State {
	if ev.targetsSelf() || ev.Active.Kind != DragKindTask {
		return s
	}
	from := s.TaskIndex(ev.Active.ID)
	if from < 0 {
		return s
	}

	switch ev.Over.Kind {
	case DragKindTask:
		to := s.TaskIndex(ev.Over.ID)
		if to < 0 {
			return s
		}
		tasks := slices.Clone(s.Tasks)
		tasks[from].ColumnID = tasks[to].ColumnID
		s.Tasks = arrayMove(tasks, from, to)
		return s

	case DragKindColumn:
		if s.Tasks[from].ColumnID == ev.Over.ID {
			return s
		}
		tasks := slices.Clone(s.Tasks)
		tasks[from].ColumnID = ev.Over.ID
		s.Tasks = tasks
		return s
	}
	return s
}

// activeColumn prefers the engine's payload and falls back to the board's
// copy, so events built from bare ids still drive the overlay.
func activeColumn(s State, it DragItem) (model.Column, bool) {
	if it.Column != nil {
		return *it.Column, true
	}
	return s.Column(it.ID)
}

func activeTask(s State, it DragItem) (model.Task, bool) {
	if it.Task != nil {
		return *it.Task, true
	}
	return s.Task(it.ID)
}
