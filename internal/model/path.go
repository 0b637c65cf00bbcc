// Package model defines the data structures shared by the navigation core,
// its adapters and the user interfaces.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents an absolute file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Clean returns the lexically cleaned form of the path.
func (p Path) Clean() Path {
	if p == "" {
		return ""
	}

	return Path(filepath.Clean(string(p)))
}

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// Join appends elements to the path.
func (p Path) Join(elem ...string) Path {
	parts := append([]string{string(p)}, elem...)

	return Path(filepath.Join(parts...))
}

// Within reports whether p equals root or lies below it. The comparison is
// segment aware, so "/proj2/a" is not within "/proj".
func (p Path) Within(root Path) bool {
	if root == "" || p == "" {
		return false
	}

	cp, cr := p.Clean(), root.Clean()
	if cp == cr {
		return true
	}

	prefix := string(cr)
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	return strings.HasPrefix(string(cp), prefix)
}

// Segments returns the path elements of p below root, in root-to-leaf order.
// It returns nil when p is not within root or equals it.
func (p Path) Segments(root Path) []string {
	if !p.Within(root) {
		return nil
	}

	rel, err := filepath.Rel(string(root.Clean()), string(p.Clean()))
	if err != nil || rel == "." {
		return nil
	}

	return strings.Split(rel, string(filepath.Separator))
}

// Rel returns p relative to root, or p itself when it is not within root.
func (p Path) Rel(root Path) string {
	if !p.Within(root) {
		return string(p)
	}

	rel, err := filepath.Rel(string(root.Clean()), string(p.Clean()))
	if err != nil {
		return string(p)
	}

	return rel
}
