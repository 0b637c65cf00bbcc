package domain

import (
	"context"
	"fmt"
	"sync"

	"github.com/mouse-blink/grepnav/internal/adapter"
	"github.com/mouse-blink/grepnav/internal/logger"
	m "github.com/mouse-blink/grepnav/internal/model"
)

// Tree is the lazily loaded directory tree below the session root.
//
// Children of a directory are fetched from the DirectoryLister the first time
// the directory is expanded and kept afterwards, so collapsing and expanding
// again never lists twice. The lock is released while the lister runs; a
// directory in the loading state ignores further expand requests, and a load
// that finishes after the root changed is dropped.
//
// Every accessor returns copies of the nodes, so callers can render them
// without holding the lock.
type Tree struct {
	mu          sync.Mutex
	lister      adapter.DirectoryLister
	log         logger.Logger
	registry    *Registry
	root        m.Path
	roots       []m.NodeID
	generation  uint64
	highlighted m.NodeID
}

// NewTree creates an empty Tree backed by lister.
func NewTree(lister adapter.DirectoryLister, log logger.Logger) *Tree {
	return &Tree{
		lister:      lister,
		log:         logger.OrNop(log),
		registry:    NewRegistry(),
		highlighted: m.NoNode,
	}
}

// Root returns the current root path, or "" before LoadRoot.
func (t *Tree) Root() m.Path {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.root
}

// LoadRoot discards every node and materializes the immediate children of
// root at depth 0, all collapsed and unloaded.
func (t *Tree) LoadRoot(ctx context.Context, root m.Path) error {
	root = root.Clean()

	t.mu.Lock()
	t.generation++
	gen := t.generation
	t.registry.Clear()
	t.root = root
	t.roots = nil
	t.highlighted = m.NoNode
	t.mu.Unlock()

	t.log.Debugf("loading root %s", root)

	entries, err := t.lister.List(ctx, root)
	if err != nil {
		return fmt.Errorf("failed to load root %s: %w", root, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.generation {
		t.log.Debugf("dropping stale listing of %s", root)
		return nil
	}

	t.roots = t.attach(entries, m.NoNode, 0)

	return nil
}

// ToggleExpand collapses an expanded directory, or expands a collapsed one,
// loading its children on first use. Toggling a file is a no-op.
func (t *Tree) ToggleExpand(ctx context.Context, path m.Path) error {
	t.mu.Lock()

	node, ok := t.registry.Get(path)
	if !ok {
		t.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownNode, path)
	}

	if node.IsDir && node.Expanded {
		node.Expanded = false
		t.mu.Unlock()

		return nil
	}

	t.mu.Unlock()

	return t.Expand(ctx, path)
}

// Expand makes sure a directory is expanded, loading its children when they
// have never been fetched. It never collapses. A failed listing leaves the
// directory collapsed and unloaded so the next attempt lists again.
func (t *Tree) Expand(ctx context.Context, path m.Path) error {
	t.mu.Lock()

	node, ok := t.registry.Get(path)
	if !ok {
		t.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownNode, path)
	}

	if !node.IsDir || node.Expanded {
		t.mu.Unlock()
		return nil
	}

	switch node.ChildrenState {
	case m.ChildrenLoaded:
		node.Expanded = true
		t.mu.Unlock()

		return nil
	case m.ChildrenLoading:
		t.mu.Unlock()
		return nil
	case m.ChildrenUnloaded:
	}

	node.ChildrenState = m.ChildrenLoading
	gen := t.generation
	dir := node.Path
	t.mu.Unlock()

	t.log.Tracef("listing %s", dir)

	entries, err := t.lister.List(ctx, dir)

	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.generation {
		t.log.Debugf("dropping stale listing of %s", dir)
		return nil
	}

	if err != nil {
		node.ChildrenState = m.ChildrenUnloaded
		return fmt.Errorf("failed to expand %s: %w", dir, err)
	}

	node.Children = t.attach(entries, node.ID, node.Depth+1)
	node.ChildrenState = m.ChildrenLoaded
	node.Expanded = true

	return nil
}

// attach upserts entries below parent and returns their IDs in listing order.
// The caller holds the lock.
func (t *Tree) attach(entries []m.Entry, parent m.NodeID, depth int) []m.NodeID {
	ids := make([]m.NodeID, 0, len(entries))
	seen := make(map[m.NodeID]struct{}, len(entries))

	for _, entry := range entries {
		node := t.registry.Upsert(entry, parent, depth)
		if _, dup := seen[node.ID]; dup {
			continue
		}

		seen[node.ID] = struct{}{}
		ids = append(ids, node.ID)
	}

	return ids
}

// Get returns a copy of the node materialized for path.
func (t *Tree) Get(path m.Path) (m.TreeNode, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	node, ok := t.registry.Get(path)
	if !ok {
		return m.TreeNode{}, false
	}

	return snapshot(node), true
}

// Roots returns the depth 0 nodes in listing order.
func (t *Tree) Roots() []m.TreeNode {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]m.TreeNode, 0, len(t.roots))

	for _, id := range t.roots {
		if node, ok := t.registry.Node(id); ok {
			out = append(out, snapshot(node))
		}
	}

	return out
}

// Visible returns the nodes a renderer shows, depth first: every root and,
// below each expanded directory, its children.
func (t *Tree) Visible() []m.TreeNode {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]m.TreeNode, 0, t.registry.Len())

	var walk func(ids []m.NodeID)

	walk = func(ids []m.NodeID) {
		for _, id := range ids {
			node, ok := t.registry.Node(id)
			if !ok {
				continue
			}

			out = append(out, snapshot(node))

			if node.Expanded && node.Loaded() {
				walk(node.Children)
			}
		}
	}

	walk(t.roots)

	return out
}

// Len returns the number of materialized nodes.
func (t *Tree) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.registry.Len()
}

// Highlight marks the node for path as the single highlighted node.
func (t *Tree) Highlight(path m.Path) (m.TreeNode, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	node, ok := t.registry.Get(path)
	if !ok {
		return m.TreeNode{}, false
	}

	t.clearHighlight()
	node.Highlighted = true
	t.highlighted = node.ID

	return snapshot(node), true
}

// ClearHighlight removes the highlight, if any.
func (t *Tree) ClearHighlight() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.clearHighlight()
}

// Highlighted returns the highlighted node.
func (t *Tree) Highlighted() (m.TreeNode, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	node, ok := t.registry.Node(t.highlighted)
	if !ok {
		return m.TreeNode{}, false
	}

	return snapshot(node), true
}

func (t *Tree) clearHighlight() {
	if node, ok := t.registry.Node(t.highlighted); ok {
		node.Highlighted = false
	}

	t.highlighted = m.NoNode
}

func snapshot(node *m.TreeNode) m.TreeNode {
	c := *node
	c.Children = append([]m.NodeID(nil), node.Children...)

	return c
}
