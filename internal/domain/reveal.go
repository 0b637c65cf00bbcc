package domain

import (
	"context"

	"github.com/mouse-blink/grepnav/internal/logger"
	m "github.com/mouse-blink/grepnav/internal/model"
)

// RevealResult names the node a reveal landed on. Found is false when the
// target could not be resolved in the currently known tree.
type RevealResult struct {
	Node  m.TreeNode
	Found bool
}

// RevealResolver locates a path referenced by a search result in the tree,
// expanding collapsed ancestors on the way, and highlights it.
type RevealResolver struct {
	tree *Tree
	log  logger.Logger
}

// NewRevealResolver creates a resolver working on tree.
func NewRevealResolver(tree *Tree, log logger.Logger) *RevealResolver {
	return &RevealResolver{
		tree: tree,
		log:  logger.OrNop(log),
	}
}

// Reveal highlights the node for target. Targets outside the tree root leave
// the current highlight untouched. A target that cannot be resolved (missing
// ancestor, file in the middle of the path, failed listing) clears the
// highlight and reports Found=false; misses are never errors.
func (r *RevealResolver) Reveal(ctx context.Context, target m.Path) RevealResult {
	root := r.tree.Root()
	target = target.Clean()

	if root == "" || !target.Within(root) {
		r.log.Tracef("reveal of %s ignored: outside root %s", target, root)
		return RevealResult{}
	}

	r.tree.ClearHighlight()

	if node, ok := r.tree.Highlight(target); ok {
		return RevealResult{Node: node, Found: true}
	}

	segments := target.Segments(root)
	current := root

	for i, segment := range segments {
		current = current.Join(segment)

		node, ok := r.tree.Get(current)
		if !ok {
			r.log.Debugf("reveal of %s stopped at %s: not loaded", target, current)
			return RevealResult{}
		}

		if i == len(segments)-1 {
			node, ok = r.tree.Highlight(current)

			return RevealResult{Node: node, Found: ok}
		}

		if !node.IsDir {
			r.log.Debugf("reveal of %s stopped at %s: not a directory", target, current)
			return RevealResult{}
		}

		if node.Expanded {
			continue
		}

		if err := r.tree.Expand(ctx, current); err != nil {
			r.log.Debugf("reveal of %s stopped at %s: %v", target, current, err)
			return RevealResult{}
		}
	}

	return RevealResult{}
}
