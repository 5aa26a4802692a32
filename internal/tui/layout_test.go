package tui

import (
	"reflect"
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestWrapText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		maxW int
		want []string
	}{
		{name: "fits", in: "buy milk", maxW: 20, want: []string{"- buy milk"}},
		{name: "wraps on words", in: "buy milk and eggs", maxW: 10, want: []string{"- buy milk", "  and eggs"}},
		{name: "hard cuts long words", in: "abcdefghij", maxW: 6, want: []string{"- abcd", "  efgh", "  ij"}},
		{name: "empty", in: "   ", maxW: 10, want: []string{"- "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := wrapText(tc.in, tc.maxW, "- ", "  "); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("hello", 10); got != "hello" {
		t.Fatalf("expected unchanged, got %q", got)
	}
	if got := truncateText("hello world", 6); got != "hello…" {
		t.Fatalf("expected ellipsis, got %q", got)
	}
	if got := truncateText("hello", 0); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestNormalizePane_PadsAndCuts(t *testing.T) {
	out := normalizePane("a\nthis line is too long", 8, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, ln := range lines {
		if w := xansi.StringWidth(ln); w != 8 {
			t.Fatalf("line %d: expected width 8, got %d (%q)", i, w, ln)
		}
	}
}
