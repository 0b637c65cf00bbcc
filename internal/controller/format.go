package controller

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/mouse-blink/grepnav/internal/domain"
	m "github.com/mouse-blink/grepnav/internal/model"
)

const ellipsis = "…"

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}

	return fmt.Sprintf("%d %s", n, many)
}

// formatSummary renders the status line of a successful search, e.g.
// "2 matches in 1 file (120ms)".
func formatSummary(outcome domain.SearchOutcome) string {
	return fmt.Sprintf("%s in %s (%s)",
		plural(outcome.Index.Count(), "match", "matches"),
		plural(outcome.Index.Len(), "file", "files"),
		formatDuration(outcome.Duration),
	)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.String()
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	default:
		return d.Round(10 * time.Millisecond).String()
	}
}

func formatScope(paths []m.Path, root m.Path) string {
	if len(paths) == 0 {
		return "scope: whole root"
	}

	if len(paths) == 1 {
		return "scope: " + paths[0].Rel(root)
	}

	return "scope: " + plural(len(paths), "path", "paths")
}

// truncate shortens text to fit width terminal cells.
func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if runewidth.StringWidth(text) <= width {
		return text
	}

	if width <= 1 {
		return ellipsis
	}

	return runewidth.Truncate(text, width, ellipsis)
}

// visiblePrefix returns the longest byte prefix of text that fits width cells
// and whether text had to be cut (leaving one cell for an ellipsis).
func visiblePrefix(text string, width int) (string, bool) {
	if width <= 0 {
		return "", text != ""
	}

	if runewidth.StringWidth(text) <= width {
		return text, false
	}

	return runewidth.Truncate(text, width-1, ""), true
}

func nodeIcon(node m.TreeNode) string {
	if !node.IsDir {
		return " "
	}

	switch {
	case node.ChildrenState == m.ChildrenLoading:
		return "…"
	case node.Expanded:
		return "▾"
	default:
		return "▸"
	}
}
