package domain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mouse-blink/grepnav/internal/adapter"
	"github.com/mouse-blink/grepnav/internal/logger"
	m "github.com/mouse-blink/grepnav/internal/model"
)

// Session is the state of one running grepnav instance: the chosen root, its
// tree, the scope selection and the searcher. Nothing here is global, so
// tests can build as many sessions as they need.
type Session struct {
	Tree     *Tree
	Scope    *ScopeSelector
	Reveal   *RevealResolver
	Searcher *Searcher

	editor adapter.EditorOpener
	log    logger.Logger
}

// NewSession wires a session around the given collaborators. editor may be
// nil when files are never opened (e.g. the plain search command).
func NewSession(
	lister adapter.DirectoryLister,
	executor adapter.SearchExecutor,
	editor adapter.EditorOpener,
	log logger.Logger,
	opts ...SearcherOption,
) *Session {
	log = logger.OrNop(log)
	tree := NewTree(lister, log)
	scope := NewScopeSelector()

	return &Session{
		Tree:     tree,
		Scope:    scope,
		Reveal:   NewRevealResolver(tree, log),
		Searcher: NewSearcher(executor, tree, scope, log, opts...),
		editor:   editor,
		log:      log,
	}
}

// Root returns the chosen root directory, or "" when none was chosen.
func (s *Session) Root() m.Path {
	return s.Tree.Root()
}

// ChooseRoot replaces the root. The tree is rebuilt from scratch and the
// scope selection is cleared, since nothing from the previous root carries
// over. Relative paths are resolved against the working directory.
func (s *Session) ChooseRoot(ctx context.Context, root string) error {
	if root == "" {
		return ErrNoRoot
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("failed to open root: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("root %s is not a directory", abs)
	}

	s.log.Infof("root set to %s", abs)
	s.Scope.ClearAll()

	return s.Tree.LoadRoot(ctx, m.Path(abs))
}

// Search runs a search with the session's root and scope.
func (s *Session) Search(ctx context.Context, opts SearchOptions) (SearchOutcome, error) {
	return s.Searcher.Run(ctx, opts)
}

// OpenMatch reveals the match's file in the tree and opens it in the editor
// at the match line, using the root as the editor workspace.
func (s *Session) OpenMatch(ctx context.Context, match m.Match) (RevealResult, error) {
	revealed := s.Reveal.Reveal(ctx, match.FilePath)

	if s.editor == nil {
		return revealed, nil
	}

	if err := s.editor.Open(ctx, match.FilePath, match.LineNumber, s.Root()); err != nil {
		return revealed, err
	}

	return revealed, nil
}
