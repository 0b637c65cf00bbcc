package domain

import (
	m "github.com/mouse-blink/grepnav/internal/model"
)

// FileGroup is the set of matches found in one file.
type FileGroup struct {
	Path        m.Path
	DisplayPath string
	Matches     []m.Match
}

// ResultIndex groups the matches of one search by file. Files are ordered by
// their first appearance in the executor's output and matches keep the order
// they were received in. Nothing is sorted, merged or deduplicated.
type ResultIndex struct {
	groups []FileGroup
	byPath map[m.Path]int
	count  int
}

// BuildResultIndex groups matches by FilePath.
func BuildResultIndex(matches []m.Match) *ResultIndex {
	idx := &ResultIndex{
		byPath: make(map[m.Path]int),
		count:  len(matches),
	}

	for _, match := range matches {
		pos, ok := idx.byPath[match.FilePath]
		if !ok {
			display := match.DisplayPath
			if display == "" {
				display = string(match.FilePath)
			}

			pos = len(idx.groups)
			idx.byPath[match.FilePath] = pos
			idx.groups = append(idx.groups, FileGroup{Path: match.FilePath, DisplayPath: display})
		}

		idx.groups[pos].Matches = append(idx.groups[pos].Matches, match)
	}

	return idx
}

// Count returns the total number of matches across all files.
func (r *ResultIndex) Count() int {
	if r == nil {
		return 0
	}

	return r.count
}

// Len returns the number of files with at least one match.
func (r *ResultIndex) Len() int {
	if r == nil {
		return 0
	}

	return len(r.groups)
}

// Groups returns the file groups in first-seen order.
func (r *ResultIndex) Groups() []FileGroup {
	if r == nil {
		return nil
	}

	return r.groups
}

// Group returns the matches for one file.
func (r *ResultIndex) Group(path m.Path) (FileGroup, bool) {
	if r == nil {
		return FileGroup{}, false
	}

	pos, ok := r.byPath[path]
	if !ok {
		return FileGroup{}, false
	}

	return r.groups[pos], true
}
