package tui

import (
	"kanban-cli/internal/board"
	"kanban-cli/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func inputLineStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSurfaceFg).Background(colorInputBg).Padding(0, 1)
}

// editSession is an inline edit of one column title or task content. There is
// no draft: every keystroke is dispatched, so the board on disk always
// matches what is on screen.
type editSession struct {
	kind  board.DragKind
	id    model.ID
	input textinput.Model
}

func newEditSession(kind board.DragKind, id model.ID, value string) (editSession, tea.Cmd) {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 0
	in.SetValue(value)
	in.CursorEnd()
	cmd := in.Focus()
	return editSession{kind: kind, id: id, input: in}, cmd
}

func (m *appModel) startEdit() tea.Cmd {
	st := m.ctrl.State()
	if t, ok := m.sel.task(st); ok {
		s, cmd := newEditSession(board.DragKindTask, t.ID, t.Content)
		m.edit, m.mode = s, modeEdit
		return cmd
	}
	if c, ok := m.sel.column(st); ok {
		s, cmd := newEditSession(board.DragKindColumn, c.ID, c.Title)
		m.edit, m.mode = s, modeEdit
		return cmd
	}
	return nil
}

func (m appModel) updateEdit(msg tea.Msg) (appModel, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.edit.input.Blur()
			m.edit = editSession{}
			m.mode = modeBoard
			return m, nil
		}
	}

	before := m.edit.input.Value()
	var cmd tea.Cmd
	m.edit.input, cmd = m.edit.input.Update(msg)
	if v := m.edit.input.Value(); v != before {
		switch m.edit.kind {
		case board.DragKindColumn:
			m.ctrl.UpdateColumn(m.edit.id, v)
		case board.DragKindTask:
			m.ctrl.UpdateTask(m.edit.id, v)
		}
	}
	return m, cmd
}
