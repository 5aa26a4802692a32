package tui

import (
	"kanban-cli/internal/board"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// dragSession is the keyboard rendition of a pointer gesture: grabbing emits
// DragStart, each cursor step emits DragOver for the element crossed, and
// dropping (or releasing) emits DragEnd.
type dragSession struct {
	active board.DragItem
	over   *board.DragItem
}

func (m *appModel) startDrag() {
	st := m.ctrl.State()
	var item board.DragItem
	if t, ok := m.sel.task(st); ok {
		item = board.TaskItem(t)
	} else if c, ok := m.sel.column(st); ok {
		item = board.ColumnItem(c)
	} else {
		return
	}
	m.drag = dragSession{active: item}
	m.ctrl.DragStart(board.DragEvent{Active: item})
	m.mode = modeDrag
}

func (m appModel) updateDrag(msg tea.KeyMsg) appModel {
	switch {
	case key.Matches(msg, m.keys.Grab), msg.Type == tea.KeyEnter:
		m.endDrag(true)
	case key.Matches(msg, m.keys.Cancel):
		m.endDrag(false)
	case key.Matches(msg, m.keys.Left):
		m.hover(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.hover(1, 0)
	case key.Matches(msg, m.keys.Up):
		m.hover(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.hover(0, 1)
	}
	return m
}

func (m *appModel) hover(dCol, dTask int) {
	switch m.drag.active.Kind {
	case board.DragKindColumn:
		if dCol != 0 {
			m.hoverColumn(dCol)
		}
	case board.DragKindTask:
		m.hoverTask(dCol, dTask)
	}
}

// hoverColumn walks the drop target across columns. The reducer ignores
// column-over-column events; the order only changes on drop.
func (m *appModel) hoverColumn(dCol int) {
	st := m.ctrl.State()
	cur := st.ColumnIndex(m.drag.active.ID)
	if m.drag.over != nil {
		if i := st.ColumnIndex(m.drag.over.ID); i >= 0 {
			cur = i
		}
	}
	if cur < 0 {
		return
	}
	next := cur + dCol
	if next < 0 || next >= len(st.Columns) {
		return
	}
	target := board.ColumnItem(st.Columns[next])
	m.drag.over = &target
	m.ctrl.DragOver(board.DragEvent{Active: m.drag.active, Over: &target})
	m.sel = boardSelection{Col: next, Task: -1}
}

// hoverTask moves the grabbed task one step. Vertical steps cross the
// neighbouring task; horizontal steps land on the task at the same row in the
// adjacent column, or on the column itself when it has no tasks.
func (m *appModel) hoverTask(dCol, dTask int) {
	st := m.ctrl.State()
	task, ok := st.Task(m.drag.active.ID)
	if !ok {
		m.endDrag(false)
		return
	}
	ci := st.ColumnIndex(task.ColumnID)
	if ci < 0 {
		return
	}

	var target board.DragItem
	if dCol != 0 {
		next := ci + dCol
		if next < 0 || next >= len(st.Columns) {
			return
		}
		col := st.Columns[next]
		tasks := st.TasksIn(col.ID)
		if len(tasks) == 0 {
			target = board.ColumnItem(col)
		} else {
			row := min(max(m.sel.Task, 0), len(tasks)-1)
			target = board.TaskItem(tasks[row])
		}
	} else {
		tasks := st.TasksIn(task.ColumnID)
		next := indexOfTask(tasks, task.ID) + dTask
		if next < 0 || next >= len(tasks) {
			return
		}
		target = board.TaskItem(tasks[next])
	}

	m.drag.over = &target
	st = m.ctrl.DragOver(board.DragEvent{Active: m.drag.active, Over: &target})
	m.sel = boardSelection{TaskID: task.ID}.clamp(st)
}

// endDrag emits DragEnd. A drop carries the last target; a release carries
// none, so columns stay put. Task moves already happened on hover and stay.
func (m *appModel) endDrag(drop bool) {
	ev := board.DragEvent{Active: m.drag.active}
	if drop {
		ev.Over = m.drag.over
	}
	st := m.ctrl.DragEnd(ev)

	switch m.drag.active.Kind {
	case board.DragKindColumn:
		m.sel = boardSelection{Col: st.ColumnIndex(m.drag.active.ID), Task: -1}
	case board.DragKindTask:
		m.sel = boardSelection{TaskID: m.drag.active.ID}
	}
	m.sel = m.sel.clamp(st)
	m.drag = dragSession{}
	m.mode = modeBoard
}
