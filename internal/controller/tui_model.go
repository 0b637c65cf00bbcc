package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/grepnav/internal/domain"
	"github.com/mouse-blink/grepnav/internal/model"
)

type focusArea int

const (
	focusQuery focusArea = iota
	focusExtensions
	focusTree
	focusResults
	focusRoot
)

// cycle order for tab / shift+tab; focusRoot is a modal prompt.
var focusOrder = []focusArea{focusQuery, focusExtensions, focusTree, focusResults}

type statusKind int

const (
	statusInfo statusKind = iota
	statusWarn
	statusError
)

// resultRow is one line of the results pane: a file header (match == -1) or
// one match of that file.
type resultRow struct {
	group int
	match int
}

// appModel is the interactive two-pane model: directory tree on the left,
// grouped results on the right, query bar on top.
type appModel struct {
	ctx     context.Context
	session *domain.Session
	keys    keyMap

	width  int
	height int
	focus  focusArea
	back   focusArea

	query    textinput.Model
	exts     textinput.Model
	root     textinput.Model
	spinner  spinner.Model
	help     help.Model
	caseSens bool
	extra    string
	preview  string

	nodes      []model.TreeNode
	treeCursor int
	treeOffset int

	searching  bool
	runID      string
	index      *domain.ResultIndex
	searchErr  error
	rows       []resultRow
	resCursor  int
	resOffset  int
	status     string
	statusKind statusKind
}

func newAppModel(cfg StartConfig) appModel {
	query := textinput.New()
	query.Prompt = ""
	query.Placeholder = "search text or regex"
	query.SetValue(cfg.query)
	query.Focus()

	exts := textinput.New()
	exts.Prompt = ""
	exts.Placeholder = "go, md"
	exts.Width = 16
	exts.SetValue(cfg.defaults.Extensions)

	root := textinput.New()
	root.Prompt = ""
	root.Placeholder = "/path/to/project"

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	am := appModel{
		ctx:      cfg.ctx,
		session:  cfg.session,
		keys:     defaultKeyMap(),
		width:    100,
		height:   30,
		focus:    focusQuery,
		query:    query,
		exts:     exts,
		root:     root,
		spinner:  spin,
		help:     help.New(),
		caseSens: cfg.defaults.CaseSensitive,
		extra:    cfg.defaults.ExtraArgs,
	}

	am.refreshTree()
	am.updatePreview()

	if am.session.Root() == "" {
		am.setStatus(statusInfo, "No root selected. Press ctrl+o to open one.")
	}

	return am
}

func (m appModel) Init() tea.Cmd {
	if m.query.Value() != "" {
		return tea.Batch(textinput.Blink, m.searchCmd())
	}

	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.query.Width = max(msg.Width-40, 10)
		m.treeOffset = ensureVisible(m.treeCursor, m.treeOffset, m.paneHeight())
		m.resOffset = ensureVisible(m.resCursor, m.resOffset, m.paneHeight())

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.searching {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case searchBlockedMsg:
		m.setStatus(statusWarn, blockedText(msg.err))
		return m, nil

	case searchStartedMsg:
		return m.handleSearchStarted(msg)

	case searchFinishedMsg:
		return m.handleSearchFinished(msg), nil

	case treeChangedMsg:
		m.refreshTree()

		if msg.err != nil {
			m.setStatus(statusError, msg.err.Error())
		}

		return m, nil

	case rootChosenMsg:
		return m.handleRootChosen(msg), nil

	case revealedMsg:
		m.applyReveal(msg.result)
		return m, nil

	case matchOpenedMsg:
		m.applyReveal(msg.result)

		if msg.err != nil {
			m.setStatus(statusError, msg.err.Error())
		} else {
			m.setStatus(statusInfo, fmt.Sprintf("opened %s:%d", msg.match.FilePath.Rel(m.session.Root()), msg.match.LineNumber))
		}

		return m, nil
	}

	return m.updateInputs(msg)
}

func (m appModel) handleSearchStarted(msg searchStartedMsg) (tea.Model, tea.Cmd) {
	m.searching = true
	m.runID = msg.runID
	m.index = nil
	m.searchErr = nil
	m.rows = nil
	m.resCursor = 0
	m.resOffset = 0
	m.setStatus(statusInfo, fmt.Sprintf("searching %q (%s)", msg.req.Query, formatScope(m.session.Scope.Checked(), msg.req.Root)))

	return m, m.spinner.Tick
}

func (m appModel) handleSearchFinished(msg searchFinishedMsg) appModel {
	outcome := msg.outcome
	if m.runID != "" && outcome.RunID != m.runID {
		return m
	}

	m.searching = false

	// finished after the root changed
	if outcome.Request.Root != m.session.Root() {
		return m
	}

	if outcome.Err != nil {
		m.searchErr = outcome.Err
		m.index = nil
		m.rows = nil
		m.setStatus(statusError, "search failed")

		return m
	}

	m.index = outcome.Index
	m.rows = buildRows(outcome.Index)
	m.resCursor = 0
	m.resOffset = 0

	if outcome.Index.Count() == 0 {
		m.setStatus(statusInfo, "No results")
	} else {
		m.setStatus(statusInfo, formatSummary(outcome))
	}

	return m
}

func (m appModel) handleRootChosen(msg rootChosenMsg) appModel {
	if msg.err != nil {
		m.setStatus(statusError, msg.err.Error())
		return m
	}

	m.treeCursor = 0
	m.treeOffset = 0
	m.index = nil
	m.searchErr = nil
	m.rows = nil
	m.refreshTree()
	m.updatePreview()
	m.setStatus(statusInfo, "root: "+string(msg.root))

	return m
}

func buildRows(idx *domain.ResultIndex) []resultRow {
	rows := make([]resultRow, 0, idx.Len()+idx.Count())

	for g, group := range idx.Groups() {
		rows = append(rows, resultRow{group: g, match: -1})
		for i := range group.Matches {
			rows = append(rows, resultRow{group: g, match: i})
		}
	}

	return rows
}

//nolint:cyclop // key dispatch depends on the focused area
func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.focus == focusRoot {
		return m.handleRootKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.NextFocus):
		m.setFocus(m.nextFocus(1))
		return m, nil
	case key.Matches(msg, m.keys.PrevFocus):
		m.setFocus(m.nextFocus(-1))
		return m, nil
	case key.Matches(msg, m.keys.OpenRoot):
		m.back = m.focus
		m.root.SetValue(string(m.session.Root()))
		m.root.CursorEnd()
		m.setFocus(focusRoot)

		return m, nil
	case key.Matches(msg, m.keys.Case):
		m.caseSens = !m.caseSens
		m.updatePreview()

		return m, nil
	}

	switch m.focus {
	case focusQuery, focusExtensions:
		return m.handleInputKey(msg)
	case focusTree:
		return m.handleTreeKey(msg)
	case focusResults:
		return m.handleResultsKey(msg)
	case focusRoot:
	}

	return m, nil
}

func (m appModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return m, m.searchCmd()
	}

	if key.Matches(msg, m.keys.Cancel) {
		m.setFocus(focusTree)
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m appModel) handleRootKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.setFocus(m.back)
		return m, nil
	case msg.Type == tea.KeyEnter:
		value := strings.TrimSpace(m.root.Value())
		m.setFocus(focusTree)

		return m, chooseRootCmd(m.ctx, m.session, value)
	}

	var cmd tea.Cmd
	m.root, cmd = m.root.Update(msg)

	return m, cmd
}

func (m appModel) handleTreeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveTree(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveTree(1)
	case key.Matches(msg, m.keys.Expand):
		node, ok := m.currentNode()
		if !ok || !node.IsDir {
			return m, nil
		}

		return m, toggleCmd(m.ctx, m.session.Tree, node.Path)
	case key.Matches(msg, m.keys.Collapse):
		m.collapseOrParent()
	case key.Matches(msg, m.keys.Check):
		if node, ok := m.currentNode(); ok {
			m.session.Scope.Toggle(node.Path)
			m.updatePreview()
			m.setStatus(statusInfo, formatScope(m.session.Scope.Checked(), m.session.Root()))
		}
	case key.Matches(msg, m.keys.ClearScope):
		m.session.Scope.ClearAll()
		m.updatePreview()
		m.setStatus(statusInfo, formatScope(nil, m.session.Root()))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Cancel):
		m.setFocus(focusQuery)
	case msg.String() == "q":
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveResults(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveResults(1)
	case key.Matches(msg, m.keys.Open):
		group, match, ok := m.currentResult()
		if !ok {
			return m, nil
		}

		if match == nil {
			return m, revealCmd(m.ctx, m.session, group.Path)
		}

		return m, openMatchCmd(m.ctx, m.session, *match)
	case key.Matches(msg, m.keys.Reveal):
		if group, _, ok := m.currentResult(); ok {
			return m, revealCmd(m.ctx, m.session, group.Path)
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Cancel):
		m.setFocus(focusQuery)
	case msg.String() == "q":
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case focusQuery:
		m.query, cmd = m.query.Update(msg)
	case focusExtensions:
		m.exts, cmd = m.exts.Update(msg)
	case focusRoot:
		m.root, cmd = m.root.Update(msg)
	case focusTree, focusResults:
		return m, nil
	}

	m.updatePreview()

	return m, cmd
}

func (m *appModel) setFocus(f focusArea) {
	m.focus = f
	m.query.Blur()
	m.exts.Blur()
	m.root.Blur()

	switch f {
	case focusQuery:
		m.query.Focus()
	case focusExtensions:
		m.exts.Focus()
	case focusRoot:
		m.root.Focus()
	case focusTree, focusResults:
	}
}

func (m appModel) nextFocus(step int) focusArea {
	pos := 0

	for i, f := range focusOrder {
		if f == m.focus {
			pos = i
			break
		}
	}

	pos = (pos + step + len(focusOrder)) % len(focusOrder)

	return focusOrder[pos]
}

func (m *appModel) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

func (m appModel) searchOptions() domain.SearchOptions {
	return domain.SearchOptions{
		Query:         m.query.Value(),
		Extensions:    m.exts.Value(),
		CaseSensitive: m.caseSens,
		ExtraArgs:     m.extra,
	}
}

func (m *appModel) updatePreview() {
	if m.session.Root() == "" {
		m.preview = ""
		return
	}

	m.preview = m.session.Searcher.Preview(m.searchOptions())
}

// refreshTree re-reads the visible nodes and keeps the cursor on the same
// path when it is still visible.
func (m *appModel) refreshTree() {
	var current model.Path
	if node, ok := m.currentNode(); ok {
		current = node.Path
	}

	m.nodes = m.session.Tree.Visible()

	if current != "" {
		for i, node := range m.nodes {
			if node.Path == current {
				m.treeCursor = i
				break
			}
		}
	}

	m.treeCursor = clampIndex(m.treeCursor, len(m.nodes))
	m.treeOffset = ensureVisible(m.treeCursor, m.treeOffset, m.paneHeight())
}

func (m *appModel) applyReveal(result domain.RevealResult) {
	// A miss still clears the previous highlight.
	m.refreshTree()

	if !result.Found {
		return
	}

	for i, node := range m.nodes {
		if node.Path == result.Node.Path {
			m.treeCursor = i
			break
		}
	}

	m.treeOffset = ensureVisible(m.treeCursor, m.treeOffset, m.paneHeight())
}

func (m appModel) currentNode() (model.TreeNode, bool) {
	if m.treeCursor < 0 || m.treeCursor >= len(m.nodes) {
		return model.TreeNode{}, false
	}

	return m.nodes[m.treeCursor], true
}

func (m appModel) currentResult() (domain.FileGroup, *model.Match, bool) {
	if m.resCursor < 0 || m.resCursor >= len(m.rows) {
		return domain.FileGroup{}, nil, false
	}

	row := m.rows[m.resCursor]
	group := m.index.Groups()[row.group]

	if row.match < 0 {
		return group, nil, true
	}

	match := group.Matches[row.match]

	return group, &match, true
}

func (m *appModel) moveTree(delta int) {
	m.treeCursor = clampIndex(m.treeCursor+delta, len(m.nodes))
	m.treeOffset = ensureVisible(m.treeCursor, m.treeOffset, m.paneHeight())
}

func (m *appModel) moveResults(delta int) {
	m.resCursor = clampIndex(m.resCursor+delta, len(m.rows))
	m.resOffset = ensureVisible(m.resCursor, m.resOffset, m.paneHeight())
}

func (m *appModel) collapseOrParent() {
	node, ok := m.currentNode()
	if !ok {
		return
	}

	if node.IsDir && node.Expanded {
		if err := m.session.Tree.ToggleExpand(m.ctx, node.Path); err != nil {
			m.setStatus(statusError, err.Error())
		}

		m.refreshTree()

		return
	}

	for i := m.treeCursor - 1; i >= 0; i-- {
		if m.nodes[i].ID == node.Parent {
			m.treeCursor = i
			m.treeOffset = ensureVisible(m.treeCursor, m.treeOffset, m.paneHeight())

			return
		}
	}
}

func (m appModel) searchCmd() tea.Cmd {
	ctx, session, opts := m.ctx, m.session, m.searchOptions()

	return func() tea.Msg {
		// State changes reach the model through the searcher's listener.
		_, _ = session.Search(ctx, opts)
		return nil
	}
}

func toggleCmd(ctx context.Context, tree *domain.Tree, path model.Path) tea.Cmd {
	return func() tea.Msg {
		return treeChangedMsg{path: path, err: tree.ToggleExpand(ctx, path)}
	}
}

func chooseRootCmd(ctx context.Context, session *domain.Session, root string) tea.Cmd {
	return func() tea.Msg {
		err := session.ChooseRoot(ctx, root)
		return rootChosenMsg{root: session.Root(), err: err}
	}
}

func revealCmd(ctx context.Context, session *domain.Session, path model.Path) tea.Cmd {
	return func() tea.Msg {
		return revealedMsg{result: session.Reveal.Reveal(ctx, path)}
	}
}

func openMatchCmd(ctx context.Context, session *domain.Session, match model.Match) tea.Cmd {
	return func() tea.Msg {
		result, err := session.OpenMatch(ctx, match)
		return matchOpenedMsg{result: result, match: match, err: err}
	}
}

func blockedText(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyQuery):
		return "Enter a query first."
	case errors.Is(err, domain.ErrNoRoot):
		return "Choose a root directory first (ctrl+o)."
	case errors.Is(err, domain.ErrSearchInProgress):
		return "A search is already running."
	default:
		return err.Error()
	}
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}

	if i >= n {
		return n - 1
	}

	return i
}

// ensureVisible returns the scroll offset that keeps cursor inside a window
// of height rows.
func ensureVisible(cursor, offset, height int) int {
	if height <= 0 {
		return 0
	}

	if cursor < offset {
		return cursor
	}

	if cursor >= offset+height {
		return cursor - height + 1
	}

	return offset
}
