package domain

import (
	"sync"

	m "github.com/mouse-blink/grepnav/internal/model"
)

// ScopeSelector tracks the checked paths that narrow a search.
type ScopeSelector struct {
	mu      sync.Mutex
	checked map[m.Path]struct{}
	order   []m.Path
}

// NewScopeSelector creates a selector with nothing checked.
func NewScopeSelector() *ScopeSelector {
	return &ScopeSelector{
		checked: make(map[m.Path]struct{}),
	}
}

// Check adds path to the selection. Checking a path twice keeps its original
// position.
func (s *ScopeSelector) Check(path m.Path) {
	path = path.Clean()
	if path == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.checked[path]; ok {
		return
	}

	s.checked[path] = struct{}{}
	s.order = append(s.order, path)
}

// Uncheck removes path from the selection.
func (s *ScopeSelector) Uncheck(path m.Path) {
	path = path.Clean()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.checked[path]; !ok {
		return
	}

	delete(s.checked, path)

	for i, p := range s.order {
		if p == path {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Toggle flips the checked state of path and returns the new state.
func (s *ScopeSelector) Toggle(path m.Path) bool {
	if s.IsChecked(path) {
		s.Uncheck(path)
		return false
	}

	s.Check(path)

	return true
}

// IsChecked reports whether path is checked.
func (s *ScopeSelector) IsChecked(path m.Path) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.checked[path.Clean()]

	return ok
}

// ClearAll unchecks everything. It only visits checked paths.
func (s *ScopeSelector) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.order {
		delete(s.checked, p)
	}

	s.order = nil
}

// Checked returns the checked paths in the order they were checked.
func (s *ScopeSelector) Checked() []m.Path {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]m.Path(nil), s.order...)
}

// EffectiveScope returns the paths handed to the search executor. An empty
// selection, or one that contains root itself, searches the whole root;
// otherwise exactly the checked paths are searched.
func (s *ScopeSelector) EffectiveScope(root m.Path) []m.Path {
	root = root.Clean()

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.order) == 0 {
		return []m.Path{root}
	}

	if _, ok := s.checked[root]; ok {
		return []m.Path{root}
	}

	return append([]m.Path(nil), s.order...)
}
