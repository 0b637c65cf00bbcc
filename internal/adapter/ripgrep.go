package adapter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/grepnav/internal/logger"
	m "github.com/mouse-blink/grepnav/internal/model"
)

// SearchExecutor runs a text search over a set of target paths.
type SearchExecutor interface {
	// Search runs the request and returns the matches in the order the
	// underlying tool produced them. An error carries a human readable
	// message suitable for showing verbatim.
	Search(ctx context.Context, req m.SearchRequest) (m.SearchResult, error)

	// Preview renders the command line Search would run, for display only.
	Preview(req m.SearchRequest) string
}

// exitNoMatches is ripgrep's exit status when nothing matched.
const exitNoMatches = 1

// RipgrepExecutor implements SearchExecutor by spawning ripgrep in JSON mode.
type RipgrepExecutor struct {
	binary string
	log    logger.Logger
}

// NewRipgrepExecutor constructs a RipgrepExecutor for the given executable.
func NewRipgrepExecutor(binary string, log logger.Logger) *RipgrepExecutor {
	if binary == "" {
		binary = "rg"
	}

	return &RipgrepExecutor{binary: binary, log: logger.OrNop(log)}
}

// Search runs ripgrep and collects every match event.
func (r *RipgrepExecutor) Search(ctx context.Context, req m.SearchRequest) (m.SearchResult, error) {
	bin, err := exec.LookPath(r.binary)
	if err != nil {
		return m.SearchResult{}, fmt.Errorf("ripgrep executable not found (%s): %w", r.binary, err)
	}

	args := buildRipgrepArgs(req)
	r.log.Debugf("running %s", r.Preview(req))

	cmd := exec.CommandContext(ctx, bin, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return m.SearchResult{}, fmt.Errorf("failed to open ripgrep stdout: %w", err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return m.SearchResult{}, fmt.Errorf("failed to open ripgrep stderr: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return m.SearchResult{}, fmt.Errorf("failed to start ripgrep: %w", err)
	}

	var (
		matches []m.Match
		errText bytes.Buffer
		g       errgroup.Group
	)

	g.Go(func() error {
		var parseErr error
		matches, parseErr = parseRipgrepJSON(stdout, req.Root)
		_, _ = io.Copy(io.Discard, stdout)

		return parseErr
	})
	g.Go(func() error {
		_, copyErr := io.Copy(&errText, stderr)

		return copyErr
	})

	drainErr := g.Wait()
	waitErr := cmd.Wait()

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) && exitErr.ExitCode() == exitNoMatches {
			return m.SearchResult{Matches: matches}, nil
		}

		msg := strings.TrimSpace(errText.String())

		// ripgrep reports unreadable entries with exit status 2 but still
		// prints the matches it found elsewhere.
		if len(matches) > 0 && ctx.Err() == nil {
			r.log.Warnf("ripgrep finished with %v: %s", waitErr, msg)

			return m.SearchResult{Matches: matches}, nil
		}

		if msg != "" {
			return m.SearchResult{}, errors.New(msg)
		}

		return m.SearchResult{}, fmt.Errorf("ripgrep failed: %w", waitErr)
	}

	if drainErr != nil {
		return m.SearchResult{}, fmt.Errorf("failed to read ripgrep output: %w", drainErr)
	}

	return m.SearchResult{Matches: matches}, nil
}

// Preview returns the ripgrep command line for req with shell-style quoting.
func (r *RipgrepExecutor) Preview(req m.SearchRequest) string {
	parts := make([]string, 0, 8)
	parts = append(parts, quoteArg(r.binary))

	for _, arg := range buildRipgrepArgs(req) {
		parts = append(parts, quoteArg(arg))
	}

	return strings.Join(parts, " ")
}

// buildRipgrepArgs builds the argv (without the executable) for req.
func buildRipgrepArgs(req m.SearchRequest) []string {
	args := []string{"--json"}

	if !req.CaseSensitive {
		args = append(args, "-i")
	}

	for _, ext := range splitExtensions(req.Extensions) {
		args = append(args, "-g", "*."+ext)
	}

	args = append(args, strings.Fields(req.ExtraArgs)...)
	args = append(args, "-e", req.Query)

	for _, p := range req.Paths {
		args = append(args, string(p))
	}

	return args
}

// splitExtensions turns "go, .md,,txt" into ["go", "md", "txt"].
func splitExtensions(extensions string) []string {
	var out []string

	for _, part := range strings.Split(extensions, ",") {
		ext := strings.TrimPrefix(strings.TrimSpace(part), "*.")
		ext = strings.TrimPrefix(ext, ".")

		if ext != "" {
			out = append(out, ext)
		}
	}

	return out
}

func quoteArg(arg string) string {
	if arg == "" {
		return `""`
	}

	if strings.ContainsAny(arg, " \t\n\"'\\$`*?;&|<>()") {
		return strconv.Quote(arg)
	}

	return arg
}

// rgText is ripgrep's encoding of possibly non-UTF-8 data: either text or
// base64 bytes.
type rgText struct {
	Text  *string `json:"text"`
	Bytes []byte  `json:"bytes"`
}

func (t rgText) String() string {
	if t.Text != nil {
		return *t.Text
	}

	return string(t.Bytes)
}

type rgSubmatch struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type rgMatchData struct {
	Path       rgText       `json:"path"`
	Lines      rgText       `json:"lines"`
	LineNumber int          `json:"line_number"`
	Submatches []rgSubmatch `json:"submatches"`
}

type rgEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// parseRipgrepJSON reads ripgrep's --json stream and keeps the match events.
// Lines that do not decode are skipped.
func parseRipgrepJSON(r io.Reader, root m.Path) ([]m.Match, error) {
	var matches []m.Match

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		var event rgEvent
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			continue
		}

		if event.Type != "match" {
			continue
		}

		var data rgMatchData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			continue
		}

		matches = append(matches, toMatch(data, root))
	}

	if err := scanner.Err(); err != nil {
		return matches, err
	}

	return matches, nil
}

func toMatch(data rgMatchData, root m.Path) m.Match {
	path := m.Path(data.Path.String())
	if !filepath.IsAbs(string(path)) && root != "" {
		path = root.Join(string(path))
	}

	content := sanitizeLine(data.Lines.String())

	spans := make([]m.Span, 0, len(data.Submatches))
	for _, sm := range data.Submatches {
		start, end := clamp(sm.Start, len(content)), clamp(sm.End, len(content))
		if end > start {
			spans = append(spans, m.Span{Start: start, End: end})
		}
	}

	return m.Match{
		FilePath:    path.Clean(),
		DisplayPath: path.Rel(root),
		LineNumber:  data.LineNumber,
		Content:     content,
		Submatches:  spans,
	}
}

// sanitizeLine strips the line terminator and replaces control characters
// byte for byte, so submatch offsets stay valid.
func sanitizeLine(line string) string {
	line = strings.TrimRight(line, "\r\n")

	b := []byte(line)
	for i, c := range b {
		switch {
		case c == '\t':
			b[i] = ' '
		case c < 0x20 || c == 0x7f:
			b[i] = '?'
		}
	}

	return string(b)
}

func clamp(v, upper int) int {
	if v < 0 {
		return 0
	}

	if v > upper {
		return upper
	}

	return v
}
