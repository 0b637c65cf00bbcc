package controller

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mouse-blink/grepnav/internal/domain"
	"github.com/mouse-blink/grepnav/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	input   io.Reader
	mu      sync.Mutex
	program *tea.Program
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start runs the interactive UI until the user quits. It registers the TUI
// as the session's search listener.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)
	if cfg.session == nil {
		return errors.New("interactive UI needs a session")
	}

	opts := []tea.ProgramOption{
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
		tea.WithContext(cfg.ctx),
	}
	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}

	program := tea.NewProgram(newAppModel(cfg), opts...)

	t.mu.Lock()
	t.program = program
	t.mu.Unlock()

	cfg.session.Searcher.SetListener(t)
	defer cfg.session.Searcher.SetListener(nil)

	_, err := program.Run()

	t.mu.Lock()
	t.program = nil
	t.mu.Unlock()

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	return nil
}

// Close stops a running program.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Quit()
	}
}

// SearchBlocked forwards the rejection to the running program.
func (t *TUI) SearchBlocked(err error) {
	t.send(searchBlockedMsg{err: err})
}

// SearchStarted forwards the start of a search to the running program.
func (t *TUI) SearchStarted(runID string, req model.SearchRequest) {
	t.send(searchStartedMsg{runID: runID, req: req})
}

// SearchFinished forwards the outcome to the running program.
func (t *TUI) SearchFinished(outcome domain.SearchOutcome) {
	t.send(searchFinishedMsg{outcome: outcome})
}

// DisplayTree prints a styled, indented tree without starting the program.
func (t *TUI) DisplayTree(root model.Path, nodes []model.TreeNode) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render(string(root)))
	b.WriteString("\n")

	for _, node := range nodes {
		line := strings.Repeat("  ", node.Depth) + nodeIcon(node) + " " + node.Name
		if node.IsDir {
			line = dirStyle.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d entries", len(nodes))))
	b.WriteString("\n")

	_, err := io.WriteString(t.output, b.String())

	return err
}

// DisplayPreview prints the search command preview.
func (t *TUI) DisplayPreview(preview string) {
	_, _ = fmt.Fprintln(t.output, previewStyle.Render("$ "+preview))
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}
