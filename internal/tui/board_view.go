package tui

import (
	"fmt"
	"strings"

	"kanban-cli/internal/board"
	"kanban-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	boardColGap  = 2
	boardMinColW = 18
)

// boardFrame is everything the column renderer needs; it is built from the
// app model so rendering stays testable without a program.
type boardFrame struct {
	state board.State
	sel   boardSelection

	// editing names the item whose text is replaced by inputView.
	editing   model.ID
	inputView string

	// dragging is the active drag item id; overColumn is the column index a
	// column drag currently points at (-1 when not dragging a column).
	dragging   model.ID
	overColumn int
}

// visibleColumns returns the [start, end) window of columns that fit in
// width, keeping the selected column in view.
func visibleColumns(n, selCol, width int) (int, int) {
	if n <= 0 {
		return 0, 0
	}
	vis := (width + boardColGap) / (boardMinColW + boardColGap)
	if vis < 1 {
		vis = 1
	}
	if vis > n {
		vis = n
	}
	start := 0
	if selCol >= vis {
		start = selCol - vis + 1
	}
	if start+vis > n {
		start = n - vis
	}
	return start, start + vis
}

func renderBoard(f boardFrame, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	st := f.state
	n := len(st.Columns)
	if n == 0 {
		msg := styleMuted().Render("No columns yet. Press C to add one.")
		return normalizePane(msg, width, height)
	}
	sel := f.sel.clamp(st)

	start, end := visibleColumns(n, sel.Col, width)
	vis := end - start
	colW := (width - boardColGap*(vis-1)) / vis
	if colW < 10 {
		colW = 10
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Background(colorControlBg)
	headerSelectedStyle := lipgloss.NewStyle().Bold(true).Foreground(colorSelectedFg).Background(colorSelectedBg)
	headerDropStyle := lipgloss.NewStyle().Bold(true).Foreground(colorAccentFg).Background(colorDropTarget)
	muted := styleMuted()

	// Whitespace defines the card, not borders.
	itemStyle := lipgloss.NewStyle().Width(colW).Padding(0, 1)
	itemSelectedStyle := itemStyle.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	itemDraggedStyle := itemStyle.Foreground(colorAccentFg).Background(colorAccent).Bold(true)
	itemInnerW := max(0, colW-2)

	renderCard := func(t model.Task, selected bool) string {
		if t.ID == f.editing {
			return " " + renderInputLine(itemInnerW, f.inputView) + " "
		}
		content := strings.TrimSpace(t.Content)
		if content == "" {
			content = "(empty task)"
		}
		prefix := "  "
		if t.ID == f.dragging {
			prefix = "» "
		}
		lines := wrapText(content, itemInnerW, prefix, "  ")
		inner := normalizePane(strings.Join(lines, "\n"), itemInnerW, 0)
		switch {
		case t.ID == f.dragging:
			return itemDraggedStyle.Render(inner)
		case selected:
			return itemSelectedStyle.Render(inner)
		default:
			return itemStyle.Render(inner)
		}
	}

	renderCol := func(colIdx int, c model.Column) string {
		tasks := st.TasksIn(c.ID)
		lines := make([]string, 0, max(2, height))

		if c.ID == f.editing {
			lines = append(lines, renderInputLine(colW, f.inputView))
		} else {
			title := strings.TrimSpace(c.Title)
			if title == "" {
				title = "(untitled)"
			}
			head := fmt.Sprintf("%s (%d)", title, len(tasks))
			if c.ID == f.dragging {
				head = "» " + head
			}
			head = truncateText(head, colW)
			hs := headerStyle
			switch {
			case f.overColumn == colIdx && c.ID != f.dragging:
				hs = headerDropStyle
			case c.ID == f.dragging:
				hs = styleAccent()
			case colIdx == sel.Col:
				hs = headerSelectedStyle
			}
			lines = append(lines, hs.Width(colW).Render(head))
		}

		if len(tasks) == 0 {
			lines = append(lines, muted.Render("(empty)"))
			return normalizePane(strings.Join(lines, "\n"), colW, height)
		}

		lines = append(lines, "")
		for i, t := range tasks {
			card := renderCard(t, colIdx == sel.Col && i == sel.Task)
			lines = append(lines, strings.Split(card, "\n")...)
			if i < len(tasks)-1 {
				sep := " " + strings.Repeat("─", max(0, colW-2)) + " "
				lines = append(lines, muted.Render(sep))
			}
		}
		return normalizePane(strings.Join(lines, "\n"), colW, height)
	}

	out := ""
	gap := strings.Repeat(" ", boardColGap)
	for i := start; i < end; i++ {
		col := renderCol(i, st.Columns[i])
		if i == start {
			out = col
			continue
		}
		// JoinHorizontal has no inter-column spacing.
		out = lipgloss.JoinHorizontal(lipgloss.Top, out, gap, col)
	}
	return normalizePane(out, width, height)
}

// dragOverlay describes the gesture in progress, or "" when idle. It reads
// the controller's active items, so it mirrors what the reducer recorded.
func dragOverlay(st board.State, over *board.DragItem, width int) string {
	var subject string
	switch {
	case st.ActiveTask != nil:
		c := strings.TrimSpace(st.ActiveTask.Content)
		if c == "" {
			c = "(empty task)"
		}
		subject = "task: " + firstLine(c)
	case st.ActiveColumn != nil:
		subject = "column: " + strings.TrimSpace(st.ActiveColumn.Title)
		if over != nil && over.ID != st.ActiveColumn.ID {
			if c, ok := st.Column(over.ID); ok {
				subject += "  → " + strings.TrimSpace(c.Title)
			}
		}
	default:
		return ""
	}
	badge := styleAccent().Render(" moving ")
	return truncateText(badge+" "+subject, width)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
