package model

// NodeID identifies a TreeNode inside the registry arena.
type NodeID int

// NoNode marks the absence of a node (e.g. the parent of a top-level entry).
const NoNode NodeID = -1

// Entry is one immediate child reported by a directory listing.
type Entry struct {
	Path  Path
	Name  string
	IsDir bool
}

// ChildrenState tracks whether a directory's children have been fetched.
type ChildrenState int

const (
	// ChildrenUnloaded means no listing has been performed yet.
	ChildrenUnloaded ChildrenState = iota
	// ChildrenLoading means a listing is in flight.
	ChildrenLoading
	// ChildrenLoaded means the listing completed, possibly with no entries.
	ChildrenLoaded
)

func (s ChildrenState) String() string {
	switch s {
	case ChildrenUnloaded:
		return "unloaded"
	case ChildrenLoading:
		return "loading"
	case ChildrenLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// TreeNode is a filesystem entry materialized in the directory tree.
type TreeNode struct {
	ID            NodeID
	Parent        NodeID
	Depth         int
	Path          Path
	Name          string
	IsDir         bool
	Children      []NodeID
	ChildrenState ChildrenState
	Expanded      bool
	Highlighted   bool
}

// Loaded reports whether the node's children have been fetched.
func (n *TreeNode) Loaded() bool {
	return n.ChildrenState == ChildrenLoaded
}
