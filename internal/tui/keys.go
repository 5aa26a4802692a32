package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	AddColumn key.Binding
	AddTask   key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Grab      key.Binding
	Cancel    key.Binding
	Preview   key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		AddColumn: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "add column")),
		AddTask:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete:    key.NewBinding(key.WithKeys("x", "d", "delete"), key.WithHelp("x", "delete")),
		Grab:      key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "grab/drop")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Preview:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view task")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddColumn, k.AddTask, k.Edit, k.Delete, k.Grab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.AddColumn, k.AddTask, k.Edit, k.Delete},
		{k.Grab, k.Cancel, k.Preview, k.Reload},
		{k.Help, k.Quit},
	}
}

// dragHelp is shown while a gesture is in progress.
type dragHelp struct{ k keyMap }

func (d dragHelp) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right", "up", "down"), key.WithHelp("arrows", "move")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "drop")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "release")),
	}
}

func (d dragHelp) FullHelp() [][]key.Binding { return [][]key.Binding{d.ShortHelp()} }
