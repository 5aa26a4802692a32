package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// normalizePane pads/cuts s to exactly width x height cells (height 0 keeps
// the line count). Wide lines are cut with an ellipsis.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i, ln := range lines {
		w := xansi.StringWidth(ln)
		if w > width {
			ln = truncateText(ln, width)
			w = xansi.StringWidth(ln)
		}
		if w < width {
			ln += strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}
	return strings.Join(lines, "\n")
}

func truncateText(s string, width int) string {
	switch {
	case width <= 0:
		return ""
	case xansi.StringWidth(s) <= width:
		return s
	case width == 1:
		return xansi.Cut(s, 0, 1)
	default:
		return xansi.Cut(s, 0, width-1) + "…"
	}
}

// wrapText word-wraps s to maxW cells, hard-cutting words wider than a line.
// The first line gets firstPrefix, the rest contPrefix.
func wrapText(s string, maxW int, firstPrefix, contPrefix string) []string {
	if maxW <= 0 {
		return []string{""}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{firstPrefix}
	}
	firstAvail := max(1, maxW-xansi.StringWidth(firstPrefix))
	contAvail := max(1, maxW-xansi.StringWidth(contPrefix))

	lines := make([]string, 0, 4)
	prefix, avail := firstPrefix, firstAvail
	cur, curW := "", 0
	flush := func() {
		lines = append(lines, prefix+cur)
		prefix, avail = contPrefix, contAvail
		cur, curW = "", 0
	}
	// cutLong emits full-width chunks of w and returns the remainder.
	cutLong := func(w string) string {
		for xansi.StringWidth(w) > avail {
			lines = append(lines, prefix+xansi.Cut(w, 0, avail))
			w = xansi.Cut(w, avail, xansi.StringWidth(w))
			prefix, avail = contPrefix, contAvail
		}
		return w
	}

	for _, w := range strings.Fields(s) {
		wordW := xansi.StringWidth(w)
		if cur != "" && curW+1+wordW <= avail {
			cur += " " + w
			curW += 1 + wordW
			continue
		}
		if cur != "" {
			flush()
		}
		cur = cutLong(w)
		curW = xansi.StringWidth(cur)
	}
	if cur != "" || len(lines) == 0 {
		lines = append(lines, prefix+cur)
	}
	return lines
}

func renderInputLine(bodyW int, inputView string) string {
	if bodyW < 4 {
		bodyW = 4
	}
	// Keep the input on a single visual line; a stray newline would look like
	// the keystroke inserted one.
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")
	line := inputLineStyle().Width(bodyW).Render(inputView)
	if xansi.StringWidth(line) > bodyW {
		// Terminate ANSI styling so the cut doesn't bleed into the next cell.
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}
