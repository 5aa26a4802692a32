package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kanban-cli/internal/board"
	"kanban-cli/internal/controller"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type mode int

const (
	modeBoard mode = iota
	modeEdit
	modeDrag
	modePreview
)

const flashTTL = 3 * time.Second

type flashClearMsg struct{ seq int }

type appModel struct {
	ctrl *controller.Controller
	opts Options
	keys keyMap
	help help.Model

	width  int
	height int

	mode mode
	sel  boardSelection
	edit editSession
	drag dragSession

	flash    string
	flashSeq int
}

func newAppModel(ctrl *controller.Controller, opts Options) appModel {
	m := appModel{
		ctrl: ctrl,
		opts: opts,
		keys: defaultKeyMap(),
		help: help.New(),
		sel:  boardSelection{Col: 0, Task: -1},
	}
	m.sel = m.sel.clamp(ctrl.State())
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case flashClearMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if m.mode == modeDrag {
				m.endDrag(false)
			}
			return m, tea.Quit
		}
		switch m.mode {
		case modeEdit:
			next, cmd := m.updateEdit(msg)
			return next, cmd
		case modeDrag:
			return m.updateDrag(msg), nil
		case modePreview:
			if key.Matches(msg, m.keys.Cancel, m.keys.Preview, m.keys.Quit) || msg.Type == tea.KeyEnter {
				m.mode = modeBoard
			}
			return m, nil
		}
		return m.updateBoard(msg)
	}

	if m.mode == modeEdit {
		next, cmd := m.updateEdit(msg)
		return next, cmd
	}
	return m, nil
}

func (m appModel) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	st := m.ctrl.State()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.sel.Col--
		m.sel.TaskID = ""
	case key.Matches(msg, m.keys.Right):
		m.sel.Col++
		m.sel.TaskID = ""
	case key.Matches(msg, m.keys.Up):
		if m.sel.Task >= 0 {
			m.sel.Task--
			m.sel.TaskID = ""
		}
	case key.Matches(msg, m.keys.Down):
		m.sel.Task++
		m.sel.TaskID = ""
	case key.Matches(msg, m.keys.AddColumn):
		st = m.ctrl.CreateColumn()
		m.sel = boardSelection{Col: len(st.Columns) - 1, Task: -1}
	case key.Matches(msg, m.keys.AddTask):
		col, ok := m.sel.column(st)
		if !ok {
			cmd = m.setFlash("add a column first (C)")
			break
		}
		st = m.ctrl.CreateTask(col.ID)
		m.sel = boardSelection{TaskID: st.Tasks[len(st.Tasks)-1].ID}
	case key.Matches(msg, m.keys.Edit):
		cmd = m.startEdit()
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.sel.task(st); ok {
			m.ctrl.DeleteTask(t.ID)
			m.sel.TaskID = ""
		} else if c, ok := m.sel.column(st); ok {
			m.ctrl.DeleteColumn(c.ID)
		}
	case key.Matches(msg, m.keys.Grab):
		m.startDrag()
	case key.Matches(msg, m.keys.Preview):
		if _, ok := m.sel.task(st); ok {
			m.mode = modePreview
		}
	case key.Matches(msg, m.keys.Reload):
		if err := m.ctrl.Load(context.Background()); err != nil {
			cmd = m.setFlash("reload failed: " + err.Error())
		} else {
			cmd = m.setFlash("reloaded")
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.sel = m.sel.clamp(m.ctrl.State())
	return m, cmd
}

func (m *appModel) setFlash(s string) tea.Cmd {
	m.flashSeq++
	seq := m.flashSeq
	m.flash = s
	return tea.Tick(flashTTL, func(time.Time) tea.Msg { return flashClearMsg{seq: seq} })
}

func (m appModel) frame() boardFrame {
	f := boardFrame{state: m.ctrl.State(), sel: m.sel, overColumn: -1}
	if m.mode == modeEdit {
		f.editing = m.edit.id
		f.inputView = m.edit.input.View()
	}
	if m.mode == modeDrag {
		f.dragging = m.drag.active.ID
		if m.drag.over != nil && m.drag.active.Kind == board.DragKindColumn {
			f.overColumn = f.state.ColumnIndex(m.drag.over.ID)
		}
	}
	return f
}

func (m appModel) View() string {
	w, h := m.width, m.height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	st := m.ctrl.State()

	header := m.viewHeader(w)
	var status string
	if m.mode == modeDrag {
		status = dragOverlay(st, m.drag.over, w)
	} else if m.flash != "" {
		status = lipgloss.NewStyle().Foreground(colorFlashWarnFg).Render(truncateText(m.flash, w))
	}

	var footer string
	if m.mode == modeDrag {
		footer = m.help.View(dragHelp{k: m.keys})
	} else {
		footer = m.help.View(m.keys)
	}

	bodyH := h - lipgloss.Height(header) - 1 - lipgloss.Height(footer)
	if bodyH < 1 {
		bodyH = 1
	}

	var body string
	if m.mode == modePreview {
		body = m.viewPreview(w, bodyH)
	} else {
		body = renderBoard(m.frame(), w, bodyH)
	}
	return strings.Join([]string{header, body, normalizePane(status, w, 1), footer}, "\n")
}

func (m appModel) viewHeader(w int) string {
	st := m.ctrl.State()
	left := lipgloss.NewStyle().Bold(true).Render("Kanban")
	left += styleMuted().Render(fmt.Sprintf("  %d columns · %d tasks", len(st.Columns), len(st.Tasks)))

	right := ""
	if n := m.ctrl.WriteFailures(); n > 0 {
		right = lipgloss.NewStyle().Foreground(colorFlashWarnFg).Render(fmt.Sprintf("%d unsaved writes", n))
	} else if m.opts.StoreLabel != "" {
		right = styleMuted().Render(m.opts.StoreLabel)
	}

	gap := w - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return truncateText(left, w)
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m appModel) viewPreview(w, h int) string {
	t, ok := m.sel.task(m.ctrl.State())
	if !ok {
		return normalizePane("", w, h)
	}
	innerW := max(10, w-4)
	body := renderMarkdown(t.Content, innerW)
	if body == "" {
		body = styleMuted().Render("(empty task)")
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Padding(0, 1).
		Width(w - 2).
		Render(body)
	return normalizePane(box, w, h)
}
