package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/grepnav/internal/model"
)

// chrome is the number of lines outside the panes: title, query bar,
// preview, status and help.
const chrome = 5

var (
	accentColor = lipgloss.Color("6")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	previewStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(accentColor).
			Bold(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	dirStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	fileStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	countStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	lineNoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	matchStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	plainStyle     = lipgloss.NewStyle()
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func paneStyle(focused bool) lipgloss.Style {
	border := lipgloss.Color("8")
	if focused {
		border = accentColor
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

func (m appModel) paneHeight() int {
	return max(m.height-chrome-2, 1)
}

func (m appModel) treeWidth() int {
	return max(m.width/3, 20)
}

func (m appModel) resultsWidth() int {
	return max(m.width-m.treeWidth(), 20)
}

func (m appModel) View() string {
	sections := []string{
		m.viewTitle(),
		m.viewQueryBar(),
		previewStyle.Render(truncate("$ "+m.preview, m.width)),
		lipgloss.JoinHorizontal(lipgloss.Top, m.viewTree(), m.viewResults()),
		m.viewStatus(),
		m.help.View(m.keys),
	}

	return strings.Join(sections, "\n")
}

func (m appModel) viewTitle() string {
	root := string(m.session.Root())
	if root == "" {
		root = "(no root)"
	}

	scope := formatScope(m.session.Scope.Checked(), m.session.Root())

	return titleStyle.Render("grepnav") + "  " + truncate(root, m.width/2) + "  " + mutedStyle.Render(scope)
}

func (m appModel) viewQueryBar() string {
	if m.focus == focusRoot {
		return labelStyle.Render("Open root: ") + m.root.View()
	}

	caseLabel := "aa"
	if m.caseSens {
		caseLabel = "Aa"
	}

	return labelStyle.Render("Query: ") + m.query.View() +
		"  " + labelStyle.Render("Ext: ") + m.exts.View() +
		"  " + mutedStyle.Render("["+caseLabel+"]")
}

func (m appModel) viewTree() string {
	width := m.treeWidth() - 2
	height := m.paneHeight()

	lines := make([]string, 0, height)

	switch {
	case m.session.Root() == "":
		lines = append(lines, mutedStyle.Render(truncate("No root selected", width)))
	case len(m.nodes) == 0:
		lines = append(lines, mutedStyle.Render(truncate("(empty directory)", width)))
	}

	end := min(m.treeOffset+height, len(m.nodes))

	for i := m.treeOffset; i < end; i++ {
		lines = append(lines, m.renderNode(i, width))
	}

	return paneStyle(m.focus == focusTree).
		Width(width).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

func (m appModel) renderNode(i, width int) string {
	node := m.nodes[i]

	check := "[ ]"
	if m.session.Scope.IsChecked(node.Path) {
		check = "[x]"
	}

	line := truncate(fmt.Sprintf("%s%s %s %s", strings.Repeat("  ", node.Depth), check, nodeIcon(node), node.Name), width)

	switch {
	case i == m.treeCursor && m.focus == focusTree:
		return selectedStyle.Render(line)
	case node.Highlighted:
		return highlightStyle.Render(line)
	case node.IsDir:
		return dirStyle.Render(line)
	default:
		return line
	}
}

func (m appModel) viewResults() string {
	width := m.resultsWidth() - 2
	height := m.paneHeight()

	var body string

	switch {
	case m.searching:
		body = m.spinner.View() + " Searching…"
	case m.searchErr != nil:
		body = renderError(m.searchErr, width)
	case m.index == nil:
		body = mutedStyle.Render(truncate("Type a query and press enter.", width))
	case m.index.Count() == 0:
		body = warnStyle.Render("No results")
	default:
		body = m.renderRows(width, height)
	}

	return paneStyle(m.focus == focusResults).
		Width(width).
		Height(height).
		Render(body)
}

func renderError(err error, width int) string {
	lines := strings.Split(strings.TrimRight(err.Error(), "\n"), "\n")
	out := make([]string, 0, len(lines)+1)
	out = append(out, errorStyle.Render("Error"))

	for _, line := range lines {
		out = append(out, truncate(line, width))
	}

	return strings.Join(out, "\n")
}

func (m appModel) renderRows(width, height int) string {
	groups := m.index.Groups()
	end := min(m.resOffset+height, len(m.rows))
	lines := make([]string, 0, end-m.resOffset)

	for i := m.resOffset; i < end; i++ {
		row := m.rows[i]
		group := groups[row.group]
		selected := i == m.resCursor && m.focus == focusResults

		if row.match < 0 {
			header := truncate(group.DisplayPath, width-8)
			if selected {
				lines = append(lines, selectedStyle.Render(fmt.Sprintf("%s (%d)", header, len(group.Matches))))
			} else {
				lines = append(lines, fileStyle.Render(header)+countStyle.Render(fmt.Sprintf(" (%d)", len(group.Matches))))
			}

			continue
		}

		match := group.Matches[row.match]
		prefix := fmt.Sprintf("%6d ", match.LineNumber)

		if selected {
			content, _ := visiblePrefix(match.Content, width-len(prefix))
			lines = append(lines, selectedStyle.Render(prefix+content))

			continue
		}

		lines = append(lines, lineNoStyle.Render(prefix)+renderMatchLine(match.Content, match.Submatches, width-len(prefix)))
	}

	return strings.Join(lines, "\n")
}

// renderMatchLine fits content into width cells and highlights the matched
// byte spans that remain visible.
func renderMatchLine(content string, spans []model.Span, width int) string {
	visible, cut := visiblePrefix(content, width)

	var b strings.Builder

	pos := 0

	for _, span := range spans {
		start := max(span.Start, pos)
		end := min(span.End, len(visible))

		if start >= end {
			continue
		}

		b.WriteString(plainStyle.Render(visible[pos:start]))
		b.WriteString(matchStyle.Render(visible[start:end]))
		pos = end
	}

	if pos < len(visible) {
		b.WriteString(plainStyle.Render(visible[pos:]))
	}

	if cut {
		b.WriteString(mutedStyle.Render(ellipsis))
	}

	return b.String()
}

func (m appModel) viewStatus() string {
	text := truncate(m.status, m.width)

	switch m.statusKind {
	case statusError:
		return errorStyle.Render(text)
	case statusWarn:
		return warnStyle.Render(text)
	case statusInfo:
		return mutedStyle.Render(text)
	default:
		return text
	}
}
