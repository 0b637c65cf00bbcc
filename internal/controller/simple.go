package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/grepnav/internal/domain"
	m "github.com/mouse-blink/grepnav/internal/model"
)

const maxSimpleLineWidth = 100

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start registers the UI as the session's search listener. Output happens
// as notifications arrive, so Start itself does not block.
func (s *SimpleUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)
	if cfg.session != nil {
		cfg.session.Searcher.SetListener(s)
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// SearchBlocked prints why a search was rejected.
func (s *SimpleUI) SearchBlocked(err error) {
	s.errorf("search not started: %v\n", err)
}

// SearchStarted prints the searched scope.
func (s *SimpleUI) SearchStarted(_ string, req m.SearchRequest) {
	paths := make([]string, 0, len(req.Paths))
	for _, p := range req.Paths {
		paths = append(paths, p.Rel(req.Root))
	}

	s.errorf("searching %q in %s\n", req.Query, strings.Join(paths, ", "))
}

// SearchFinished prints the grouped results, "No results", or the error.
func (s *SimpleUI) SearchFinished(outcome domain.SearchOutcome) {
	if outcome.Err != nil {
		s.printf("Search failed: %v\n", outcome.Err)
		return
	}

	if outcome.Index.Count() == 0 {
		s.printf("No results (%s)\n", formatDuration(outcome.Duration))
		return
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Line", "Match"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for _, group := range outcome.Index.Groups() {
		for i, match := range group.Matches {
			file := ""
			if i == 0 {
				file = group.DisplayPath
			}

			table.Append([]string{
				file,
				strconv.Itoa(match.LineNumber),
				truncate(strings.TrimSpace(match.Content), maxSimpleLineWidth),
			})
		}
	}

	table.SetFooter([]string{
		plural(outcome.Index.Len(), "file", "files"),
		"",
		plural(outcome.Index.Count(), "match", "matches"),
	})

	table.Render()
	s.printf("%s", tableBuffer.String())
	s.printf("%s\n", formatSummary(outcome))
}

// DisplayTree prints the visible nodes as an indented table.
func (s *SimpleUI) DisplayTree(root m.Path, nodes []m.TreeNode) error {
	s.printf("%s\n", root)

	if len(nodes) == 0 {
		s.printf("(empty)\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Name", "Kind", "Children"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	dirs := 0

	for _, node := range nodes {
		kind := "file"
		children := ""

		if node.IsDir {
			kind = "dir"
			dirs++

			if node.Loaded() {
				children = strconv.Itoa(len(node.Children))
			} else {
				children = "-"
			}
		}

		name := strings.Repeat("  ", node.Depth) + nodeIcon(node) + " " + node.Name
		table.Append([]string{name, kind, children})
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d entries", len(nodes)),
		plural(dirs, "dir", "dirs"),
		"",
	})

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayPreview prints the search command preview.
func (s *SimpleUI) DisplayPreview(preview string) {
	s.printf("%s\n", preview)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
