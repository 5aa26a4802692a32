package tui

import (
	"kanban-cli/internal/board"
	"kanban-cli/internal/model"
)

type boardSelection struct {
	Col int
	// Task indexes the column's tasks; -1 selects the column itself.
	Task int
	// TaskID keeps focus on the same task across reorders and reparenting;
	// it wins over Col/Task when the task still exists.
	TaskID model.ID
}

func (s boardSelection) clamp(st board.State) boardSelection {
	if len(st.Columns) == 0 {
		return boardSelection{Col: 0, Task: -1}
	}

	if s.TaskID != "" {
		if t, ok := st.Task(s.TaskID); ok {
			if ci := st.ColumnIndex(t.ColumnID); ci >= 0 {
				s.Col = ci
				s.Task = indexOfTask(st.TasksIn(t.ColumnID), s.TaskID)
				return s
			}
		}
		s.TaskID = ""
	}

	if s.Col < 0 {
		s.Col = 0
	}
	if s.Col >= len(st.Columns) {
		s.Col = len(st.Columns) - 1
	}
	tasks := st.TasksIn(st.Columns[s.Col].ID)
	if s.Task >= len(tasks) {
		s.Task = len(tasks) - 1
	}
	if s.Task < -1 {
		s.Task = -1
	}
	if s.Task >= 0 {
		s.TaskID = tasks[s.Task].ID
	}
	return s
}

func (s boardSelection) column(st board.State) (model.Column, bool) {
	s = s.clamp(st)
	if s.Col < 0 || s.Col >= len(st.Columns) {
		return model.Column{}, false
	}
	return st.Columns[s.Col], true
}

func (s boardSelection) task(st board.State) (model.Task, bool) {
	s = s.clamp(st)
	if s.TaskID == "" {
		return model.Task{}, false
	}
	return st.Task(s.TaskID)
}

func indexOfTask(tasks []model.Task, id model.ID) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
