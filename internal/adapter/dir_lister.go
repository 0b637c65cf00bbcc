// Package adapter contains the infrastructure adapters grepnav talks to:
// directory listing, the ripgrep search executor and the editor opener.
package adapter

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	m "github.com/mouse-blink/grepnav/internal/model"
)

// DirectoryLister lists the immediate children of a directory. Implementations
// must not recurse; the tree model loads deeper levels lazily.
type DirectoryLister interface {
	List(ctx context.Context, dir m.Path) ([]m.Entry, error)
}

// LocalDirectoryLister lists directories on the local filesystem. Entries are
// returned directories first, then by case-insensitive name.
type LocalDirectoryLister struct {
	skipNames map[string]struct{}
}

// NewLocalDirectoryLister constructs a LocalDirectoryLister. Entries whose
// base name is in skip (e.g. ".git") are left out of every listing.
func NewLocalDirectoryLister(skip ...string) *LocalDirectoryLister {
	names := make(map[string]struct{}, len(skip))
	for _, name := range skip {
		if name = strings.TrimSpace(name); name != "" {
			names[name] = struct{}{}
		}
	}

	return &LocalDirectoryLister{skipNames: names}
}

// List reads dir and returns its immediate children.
func (l *LocalDirectoryLister) List(ctx context.Context, dir m.Path) ([]m.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	entries := make([]m.Entry, 0, len(dirEntries))

	for _, de := range dirEntries {
		if _, skip := l.skipNames[de.Name()]; skip {
			continue
		}

		path := dir.Join(de.Name())

		entries = append(entries, m.Entry{
			Path:  path,
			Name:  de.Name(),
			IsDir: isDirEntry(de, path),
		})
	}

	sortEntries(entries)

	return entries, nil
}

// isDirEntry resolves symlinks so a link to a directory can be expanded.
func isDirEntry(de os.DirEntry, path m.Path) bool {
	if de.Type()&os.ModeSymlink == 0 {
		return de.IsDir()
	}

	info, err := os.Stat(string(path))
	if err != nil {
		return false
	}

	return info.IsDir()
}

func sortEntries(entries []m.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}

		li, lj := strings.ToLower(entries[i].Name), strings.ToLower(entries[j].Name)
		if li != lj {
			return li < lj
		}

		return entries[i].Name < entries[j].Name
	})
}
