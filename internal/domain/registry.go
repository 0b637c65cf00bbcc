// Package domain holds grepnav's navigation core: the lazily loaded directory
// tree, scope selection, result grouping, reveal and the search state machine.
package domain

import (
	m "github.com/mouse-blink/grepnav/internal/model"
)

// Registry is the arena of materialized tree nodes, indexed by absolute path.
// Exactly one node exists per path; re-inserting a path returns the node that
// is already there. Registry is not synchronized; Tree guards it.
type Registry struct {
	nodes  []*m.TreeNode
	byPath map[m.Path]m.NodeID
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byPath: make(map[m.Path]m.NodeID),
	}
}

// Get returns the node materialized for path.
func (r *Registry) Get(path m.Path) (*m.TreeNode, bool) {
	id, ok := r.byPath[path.Clean()]
	if !ok {
		return nil, false
	}

	return r.nodes[id], true
}

// Node returns the node with the given arena ID.
func (r *Registry) Node(id m.NodeID) (*m.TreeNode, bool) {
	if id < 0 || int(id) >= len(r.nodes) {
		return nil, false
	}

	return r.nodes[id], true
}

// Upsert returns the node for entry.Path, creating it under parent at depth
// when it does not exist yet. An existing node keeps its identity, children
// and expansion state; only its display name is refreshed.
func (r *Registry) Upsert(entry m.Entry, parent m.NodeID, depth int) *m.TreeNode {
	path := entry.Path.Clean()

	name := entry.Name
	if name == "" {
		name = path.Base()
	}

	if id, ok := r.byPath[path]; ok {
		node := r.nodes[id]
		node.Name = name

		return node
	}

	node := &m.TreeNode{
		ID:            m.NodeID(len(r.nodes)),
		Parent:        parent,
		Depth:         depth,
		Path:          path,
		Name:          name,
		IsDir:         entry.IsDir,
		ChildrenState: m.ChildrenUnloaded,
	}

	r.nodes = append(r.nodes, node)
	r.byPath[path] = node.ID

	return node
}

// Clear drops every node.
func (r *Registry) Clear() {
	r.nodes = nil
	r.byPath = make(map[m.Path]m.NodeID)
}

// Len returns the number of materialized nodes.
func (r *Registry) Len() int {
	return len(r.nodes)
}
